package conversation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/learnpal/internal/api"
)

type fakeTutor struct {
	mu       sync.Mutex
	reply    *api.LessonReply
	err      error
	block    chan struct{} // when set, Lesson blocks until closed
	lessons  []string
	ratings  []int
	rateErr  error
	latencys []int64
}

func (f *fakeTutor) Lesson(_ context.Context, _ int, userText string) (*api.LessonReply, error) {
	f.mu.Lock()
	f.lessons = append(f.lessons, userText)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeTutor) Feedback(_ context.Context, _ int, rating int, latencyMs int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ratings = append(f.ratings, rating)
	f.latencys = append(f.latencys, latencyMs)
	return f.rateErr
}

type fakeSpeaker struct {
	mu     sync.Mutex
	spoken []string
}

func (f *fakeSpeaker) Speak(_ context.Context, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
}

func sam() api.Learner {
	return api.Learner{ID: 7, Name: "Sam", DOB: "2018-05"}
}

func TestInitializeAppendsGreetingOnce(t *testing.T) {
	speaker := &fakeSpeaker{}
	s := New(sam(), &fakeTutor{}, speaker, nil)

	s.Initialize(context.Background())
	s.Initialize(context.Background()) // idempotent

	turns := s.Turns()
	if len(turns) != 1 {
		t.Fatalf("expected exactly one greeting turn, got %d", len(turns))
	}
	g := turns[0]
	if !g.Greeting || g.Status != StatusCompleted || g.UserText != "" {
		t.Errorf("unexpected greeting turn %+v", g)
	}
	if !strings.Contains(g.BotText, "Sam") {
		t.Errorf("greeting should reference the learner name, got %q", g.BotText)
	}
	if len(speaker.spoken) != 1 {
		t.Errorf("expected greeting spoken once, got %d", len(speaker.spoken))
	}
}

func TestSendCompletesTurnWithServerLatency(t *testing.T) {
	tutor := &fakeTutor{reply: &api.LessonReply{Content: "A noun is a naming word.", LatencyMs: 120}}
	speaker := &fakeSpeaker{}
	s := New(sam(), tutor, speaker, nil)

	if err := s.Send(context.Background(), "What is a noun?"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	turns := s.Turns()
	if len(turns) != 1 {
		t.Fatalf("expected one turn, got %d", len(turns))
	}
	turn := turns[len(turns)-1]
	if turn.Status != StatusCompleted {
		t.Errorf("expected completed, got %v", turn.Status)
	}
	if turn.BotText != "A noun is a naming word." {
		t.Errorf("unexpected bot text %q", turn.BotText)
	}
	if turn.LatencyMs != 120 {
		t.Errorf("expected server latency 120, got %d", turn.LatencyMs)
	}
	if len(speaker.spoken) != 1 || speaker.spoken[0] != "A noun is a naming word." {
		t.Errorf("expected reply spoken once, got %v", speaker.spoken)
	}
}

func TestSendMeasuresLatencyWhenServerOmitsIt(t *testing.T) {
	tutor := &fakeTutor{reply: &api.LessonReply{Content: "ok"}}
	s := New(sam(), tutor, nil, nil)

	if err := s.Send(context.Background(), "hi"); err != nil {
		t.Fatal(err)
	}
	if turn := s.Turns()[0]; turn.LatencyMs < 0 {
		t.Errorf("expected measured latency >= 0, got %d", turn.LatencyMs)
	}
}

func TestSendFailureMarksErroredWithApologyAndNoSpeech(t *testing.T) {
	tutor := &fakeTutor{err: errors.New("network down")}
	speaker := &fakeSpeaker{}
	s := New(sam(), tutor, speaker, nil)

	if err := s.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("Send should consume the failure, got %v", err)
	}

	turn := s.Turns()[0]
	if turn.Status != StatusErrored {
		t.Errorf("expected errored, got %v", turn.Status)
	}
	if turn.BotText != Apology {
		t.Errorf("expected apology string, got %q", turn.BotText)
	}
	if len(speaker.spoken) != 0 {
		t.Error("errored turns must not be spoken")
	}

	// The thread stays usable.
	tutor.err = nil
	tutor.reply = &api.LessonReply{Content: "back again"}
	if err := s.Send(context.Background(), "retry"); err != nil {
		t.Fatalf("Send after failure: %v", err)
	}
	if got := s.Turns(); len(got) != 2 || got[1].Status != StatusCompleted {
		t.Errorf("expected a second completed turn, got %+v", got)
	}
}

func TestSendRejectedWhilePending(t *testing.T) {
	block := make(chan struct{})
	tutor := &fakeTutor{reply: &api.LessonReply{Content: "ok"}, block: block}
	s := New(sam(), tutor, nil, nil)

	done := make(chan error, 1)
	go func() { done <- s.Send(context.Background(), "first") }()

	// Wait for the first send to go in flight.
	deadline := time.Now().Add(5 * time.Second)
	for !s.Pending() {
		if time.Now().After(deadline) {
			t.Fatal("first send never went pending")
		}
		time.Sleep(time.Millisecond)
	}

	if err := s.Send(context.Background(), "2+2=4"); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
	if got := len(s.Turns()); got != 1 {
		t.Errorf("rejected send must not grow the thread, got %d turns", got)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first send: %v", err)
	}
}

func TestSingleFlightInvariant(t *testing.T) {
	tutor := &fakeTutor{reply: &api.LessonReply{Content: "ok"}}
	s := New(sam(), tutor, nil, nil)
	s.Initialize(context.Background())

	for i := 0; i < 5; i++ {
		s.Send(context.Background(), "question")
		pending := 0
		for _, turn := range s.Turns() {
			if turn.Status == StatusPending {
				pending++
			}
		}
		if pending > 1 {
			t.Fatalf("observed %d pending turns, want 0 or 1", pending)
		}
	}
}

func TestSendRejectsBlankText(t *testing.T) {
	s := New(sam(), &fakeTutor{}, nil, nil)
	for _, in := range []string{"", "   ", "\n\t"} {
		if err := s.Send(context.Background(), in); !errors.Is(err, ErrEmpty) {
			t.Errorf("Send(%q): expected ErrEmpty, got %v", in, err)
		}
	}
	if len(s.Turns()) != 0 {
		t.Error("blank sends must not append turns")
	}
}

func TestRateUsesMostRecentLatency(t *testing.T) {
	tutor := &fakeTutor{reply: &api.LessonReply{Content: "ok", LatencyMs: 450}}
	s := New(sam(), tutor, nil, nil)

	s.Send(context.Background(), "q1")
	if err := s.Rate(context.Background(), 1); err != nil {
		t.Fatalf("Rate: %v", err)
	}

	if len(tutor.ratings) != 1 || tutor.ratings[0] != 1 {
		t.Errorf("expected one +1 rating, got %v", tutor.ratings)
	}
	if tutor.latencys[0] != 450 {
		t.Errorf("expected latency 450, got %d", tutor.latencys[0])
	}
}

func TestRateFailureIsNonFatal(t *testing.T) {
	tutor := &fakeTutor{rateErr: errors.New("503")}
	s := New(sam(), tutor, nil, nil)

	if err := s.Rate(context.Background(), -1); err != nil {
		t.Errorf("feedback failure must be dropped, got %v", err)
	}
}

func TestRateRejectsOtherValues(t *testing.T) {
	s := New(sam(), &fakeTutor{}, nil, nil)
	if err := s.Rate(context.Background(), 2); err == nil {
		t.Error("expected error for rating 2")
	}
	if err := s.Rate(context.Background(), 0); err == nil {
		t.Error("expected error for rating 0")
	}
}
