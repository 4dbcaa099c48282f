package tutor

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/learnpal/internal/api"
	"github.com/abhisek/learnpal/internal/audio"
	"github.com/abhisek/learnpal/internal/conversation"
	"github.com/abhisek/learnpal/internal/credentials"
	"github.com/abhisek/learnpal/internal/session"
	"github.com/abhisek/learnpal/internal/speech"
)

type fakeAuth struct{}

func (fakeAuth) Me(ctx context.Context) (*api.User, error) {
	return &api.User{ID: 1, Email: "parent@example.com"}, nil
}
func (fakeAuth) Login(ctx context.Context, email, password string) (string, error) {
	return "tok", nil
}
func (fakeAuth) Signup(ctx context.Context, reg api.Registration) (string, error) {
	return "tok", nil
}

type fakeTutorGateway struct {
	replies int
}

func (f *fakeTutorGateway) Lesson(ctx context.Context, learnerID int, userText string) (*api.LessonReply, error) {
	f.replies++
	return &api.LessonReply{Type: "lesson", Content: "Four! Great question.", LatencyMs: 120}, nil
}

func (f *fakeTutorGateway) Feedback(ctx context.Context, learnerID, rating int, latencyMs int64) error {
	return nil
}

type fakeSynth struct{}

func (fakeSynth) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return []byte("pcm"), nil
}

// fakeRecognizer recognizes a fixed utterance as soon as listening
// starts, unless hold keeps the capture live.
type fakeRecognizer struct {
	utterance string
	hold      bool
	stopped   bool
}

func (r *fakeRecognizer) Start(onResult func(string)) error {
	if !r.hold {
		onResult(r.utterance)
	}
	return nil
}

func (r *fakeRecognizer) Stop() { r.stopped = true }

func newTestTutor(t *testing.T) (*TutorScreen, *fakeRecognizer) {
	t.Helper()

	gateway := &fakeTutorGateway{}
	pipeline := audio.NewPipeline(fakeSynth{}, nil)
	rec := &fakeRecognizer{utterance: "what is two plus two"}
	voice := speech.NewCaptureService(func() (speech.Recognizer, error) {
		return rec, nil
	})

	ctrl := session.NewController(fakeAuth{}, credentials.NewMemStore("tok"), func(l api.Learner) *conversation.Session {
		return conversation.New(l, gateway, pipeline, nil)
	})
	ctrl.Bootstrap(context.Background())
	ctrl.SelectLearner(api.Learner{ID: 7, Name: "Sam", DOB: "2017-03"})

	return New(ctrl, voice, pipeline), rec
}

func ready(t *testing.T, s *TutorScreen) *TutorScreen {
	t.Helper()
	updated, _ := s.Update(s.initConversation()())
	return updated.(*TutorScreen)
}

func TestGreetingShownAfterInit(t *testing.T) {
	s, _ := newTestTutor(t)
	s = ready(t, s)

	view := s.View(100, 30)
	if !strings.Contains(view, "Sam") {
		t.Errorf("greeting should contain the learner's name, got:\n%s", view)
	}
}

func TestSendRendersReplyWithLatency(t *testing.T) {
	s, _ := newTestTutor(t)
	s = ready(t, s)

	s.input.SetValue("what is 2+2?")
	cmd := s.send()
	updated, _ := s.Update(cmd())
	s = updated.(*TutorScreen)

	view := s.View(100, 40)
	if !strings.Contains(view, "Four! Great question.") {
		t.Error("expected tutor reply in transcript")
	}
	if !strings.Contains(view, "0.1s") {
		t.Error("expected latency marker in transcript")
	}
	if s.input.Value() != "" {
		t.Errorf("input should clear on send, got %q", s.input.Value())
	}
}

func TestVoiceTranscriptLandsInInput(t *testing.T) {
	s, _ := newTestTutor(t)
	s = ready(t, s)

	s.toggleMic()
	updated, _ := s.Update(tickMsg(time.Now()))
	s = updated.(*TutorScreen)

	if got := s.input.Value(); got != "what is two plus two" {
		t.Errorf("expected transcript in input, got %q", got)
	}
	if s.voice.Listening() {
		t.Error("single-utterance capture should end after a result")
	}
}

func TestLeavingStopsCapture(t *testing.T) {
	s, rec := newTestTutor(t)
	s = ready(t, s)

	rec.hold = true
	s.toggleMic()
	if !s.voice.Listening() {
		t.Fatal("expected live capture")
	}

	s.teardown()
	if s.voice.Listening() {
		t.Error("teardown should end the capture")
	}
	if !rec.stopped {
		t.Error("teardown should stop the recognizer")
	}
}

func TestRatingSettles(t *testing.T) {
	s, _ := newTestTutor(t)
	s = ready(t, s)

	cmd := s.rate(1)
	msg, ok := cmd().(ratedMsg)
	if !ok || msg.Err != nil {
		t.Fatalf("expected a clean rating result, got %#v", msg)
	}

	updated, _ := s.Update(msg)
	s = updated.(*TutorScreen)
	if !strings.Contains(s.renderStatus(), "Thanks") {
		t.Error("expected a thank-you confirmation in the status line")
	}
}
