// Package conversation manages one learner's turn-by-turn chat thread
// with the remote tutor: turn lifecycle, latency tracking, and the
// handoff of replies to spoken playback.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learnpal/internal/api"
	"github.com/abhisek/learnpal/internal/store"
)

// Apology is the fixed reply shown when the tutor request fails.
const Apology = "Oops! I had trouble thinking just now. Can you ask me again?"

// ErrEmpty rejects a send whose text is empty after trimming.
var ErrEmpty = errors.New("message is empty")

// ErrBusy rejects a send while another turn is still pending. A session
// processes at most one in-flight exchange at a time.
var ErrBusy = errors.New("a reply is still on its way")

// Tutor is the slice of the gateway a conversation needs.
// *api.Client satisfies this.
type Tutor interface {
	Lesson(ctx context.Context, learnerID int, userText string) (*api.LessonReply, error)
	Feedback(ctx context.Context, learnerID, rating int, latencyMs int64) error
}

// Speaker voices tutor replies. *audio.Pipeline satisfies this.
type Speaker interface {
	Speak(ctx context.Context, text string)
}

// Session owns the conversation thread for one (guardian, learner)
// pair. Created on entering the tutoring stage, discarded on leaving it.
type Session struct {
	id      string
	learner api.Learner
	tutor   Tutor
	speaker Speaker
	events  store.EventRepo // may be nil

	mu          sync.Mutex
	turns       []Turn
	pending     bool
	lastLatency int64
}

// New creates a Session scoped to learner. speaker and events may be
// nil; spoken feedback and event logging are then skipped.
func New(learner api.Learner, tutor Tutor, speaker Speaker, events store.EventRepo) *Session {
	return &Session{
		id:      uuid.New().String(),
		learner: learner,
		tutor:   tutor,
		speaker: speaker,
		events:  events,
	}
}

// ID is the UUID grouping this session's events.
func (s *Session) ID() string { return s.id }

// Learner returns the learner this session tutors.
func (s *Session) Learner() api.Learner { return s.learner }

// Turns returns a copy of the thread in order. Turns are appended by
// sends and never reordered or deleted within the session's lifetime.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Pending reports whether an exchange is in flight.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Initialize seeds the thread with a greeting turn and speaks it.
// Runs at most once per session instance; a no-op when the thread is
// already non-empty.
func (s *Session) Initialize(ctx context.Context) {
	greeting := fmt.Sprintf("Hi %s! I'm your tutor. What would you like to work on today?", s.learner.Name)

	s.mu.Lock()
	if len(s.turns) > 0 {
		s.mu.Unlock()
		return
	}
	s.turns = append(s.turns, Turn{
		BotText:  greeting,
		Status:   StatusCompleted,
		Greeting: true,
	})
	s.mu.Unlock()

	s.logSession(ctx, "start")
	s.logTurn(ctx, Turn{BotText: greeting, Status: StatusCompleted, Greeting: true})

	if s.speaker != nil {
		s.speaker.Speak(ctx, greeting)
	}
}

// Send runs one exchange: appends a pending turn, asks the tutor, and
// resolves the turn in place by index. Rejected with ErrEmpty for blank
// text and ErrBusy while another turn is pending. A failed request marks
// the turn errored with the fixed apology and is not spoken; the thread
// stays usable for further sends.
func (s *Session) Send(ctx context.Context, userText string) error {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return ErrEmpty
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return ErrBusy
	}
	s.pending = true
	s.turns = append(s.turns, Turn{UserText: userText, Status: StatusPending})
	idx := len(s.turns) - 1
	s.mu.Unlock()

	start := time.Now()
	reply, err := s.tutor.Lesson(ctx, s.learner.ID, userText)

	s.mu.Lock()
	s.pending = false
	if err != nil {
		s.turns[idx].Status = StatusErrored
		s.turns[idx].BotText = Apology
		resolved := s.turns[idx]
		s.mu.Unlock()

		// Do not speak failure text: a repeated spoken apology alarms
		// a young learner more than a quiet retry.
		s.logTurn(ctx, resolved)
		return nil
	}

	latency := reply.LatencyMs
	if latency <= 0 {
		latency = time.Since(start).Milliseconds()
	}
	s.turns[idx].Status = StatusCompleted
	s.turns[idx].BotText = reply.Content
	s.turns[idx].LatencyMs = latency
	s.lastLatency = latency
	resolved := s.turns[idx]
	s.mu.Unlock()

	s.logTurn(ctx, resolved)

	if s.speaker != nil {
		s.speaker.Speak(ctx, reply.Content)
	}
	return nil
}

// Rate submits a thumbs rating (+1 or -1) referencing the most recent
// latency measurement. Fire-and-forget: delivery failure is logged and
// otherwise ignored.
func (s *Session) Rate(ctx context.Context, value int) error {
	if value != 1 && value != -1 {
		return fmt.Errorf("rating must be +1 or -1, got %d", value)
	}

	s.mu.Lock()
	latency := s.lastLatency
	s.mu.Unlock()

	err := s.tutor.Feedback(ctx, s.learner.ID, value, latency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: feedback not delivered: %v\n", err)
	}

	if s.events != nil {
		logErr := s.events.AppendFeedback(ctx, store.FeedbackEventData{
			LearnerID: s.learner.ID,
			Rating:    value,
			LatencyMs: latency,
			Delivered: err == nil,
		})
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log feedback event: %v\n", logErr)
		}
	}
	return nil
}

// End records the session end. Abandoning a session does not cancel an
// in-flight request; a late response resolves into this discarded
// session's thread and is never observed again.
func (s *Session) End(ctx context.Context) {
	s.logSession(ctx, "end")
}

func (s *Session) logSession(ctx context.Context, action string) {
	if s.events == nil {
		return
	}
	err := s.events.AppendSession(ctx, store.SessionEventData{
		SessionID:   s.id,
		LearnerID:   s.learner.ID,
		LearnerName: s.learner.Name,
		Action:      action,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log session event: %v\n", err)
	}
}

func (s *Session) logTurn(ctx context.Context, t Turn) {
	if s.events == nil {
		return
	}
	err := s.events.AppendTurn(ctx, store.TurnEventData{
		SessionID: s.id,
		LearnerID: s.learner.ID,
		UserText:  t.UserText,
		BotText:   t.BotText,
		Status:    t.Status.String(),
		LatencyMs: t.LatencyMs,
		Greeting:  t.Greeting,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log turn event: %v\n", err)
	}
}
