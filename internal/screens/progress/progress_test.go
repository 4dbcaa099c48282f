package progress

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnpal/internal/api"
	"github.com/abhisek/learnpal/internal/conversation"
	"github.com/abhisek/learnpal/internal/credentials"
	"github.com/abhisek/learnpal/internal/screen"
	"github.com/abhisek/learnpal/internal/session"
	"github.com/abhisek/learnpal/internal/ui/theme"
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

type fakeReporter struct {
	report api.ProgressReport
	err    error
}

func (f *fakeReporter) Progress(ctx context.Context, learnerID int) (api.ProgressReport, error) {
	return f.report, f.err
}

func newTestProgress(rep *fakeReporter) (*ProgressScreen, *session.Controller) {
	ctrl := session.NewController(fakeAuth{}, credentials.NewMemStore("tok"), func(l api.Learner) *conversation.Session {
		return conversation.New(l, nil, nil, nil)
	})
	ctrl.Bootstrap(context.Background())
	ctrl.ShowProgress(api.Learner{ID: 7, Name: "Sam"})

	s := New(ctrl, rep)
	updated, _ := s.Update(s.load()())
	return updated.(*ProgressScreen), ctrl
}

func escKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEscape}
}

func TestReportRendered(t *testing.T) {
	rep := &fakeReporter{report: api.ProgressReport{
		"fractions":      {Correct: 9, Attempts: 10},
		"multiplication": {Correct: 3, Attempts: 10},
	}}
	s, _ := newTestProgress(rep)

	view := s.View(100, 40)
	for _, want := range []string{"fractions", "multiplication", "9 of 10 correct", "90%", "30%"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestAccuracyBands(t *testing.T) {
	cases := []struct {
		accuracy float64
		attempts int
		want     string
	}{
		{0.95, 20, "strong"},
		{0.8, 10, "strong"},
		{0.6, 10, "working"},
		{0.2, 10, "struggling"},
		{0, 0, "untried"},
	}
	for _, tc := range cases {
		got := accuracyColor(tc.accuracy, tc.attempts)
		switch tc.want {
		case "strong":
			if got != theme.Success {
				t.Errorf("accuracy %.2f: expected success color", tc.accuracy)
			}
		case "working":
			if got != theme.Accent {
				t.Errorf("accuracy %.2f: expected accent color", tc.accuracy)
			}
		case "struggling":
			if got != theme.Error {
				t.Errorf("accuracy %.2f: expected error color", tc.accuracy)
			}
		case "untried":
			if got != theme.TextDim {
				t.Errorf("zero attempts: expected neutral color, got %v", got)
			}
		}
	}
}

func TestBackReturnsToSelect(t *testing.T) {
	s, ctrl := newTestProgress(&fakeReporter{})

	_, cmd := s.Update(escKey())
	if cmd == nil {
		t.Fatal("expected a stage change command")
	}
	msg := cmd().(screen.StageChangedMsg)
	if msg.Stage != session.StageSelect {
		t.Errorf("expected select stage, got %s", msg.Stage)
	}
	if ctrl.Learner() != nil {
		t.Error("expected active learner cleared on leaving progress")
	}
}

func TestRejectedCredentialRoutesToLogin(t *testing.T) {
	ctrl := session.NewController(fakeAuth{}, credentials.NewMemStore("tok"), func(l api.Learner) *conversation.Session {
		return conversation.New(l, nil, nil, nil)
	})
	ctrl.Bootstrap(context.Background())
	ctrl.ShowProgress(api.Learner{ID: 7, Name: "Sam"})

	s := New(ctrl, &fakeReporter{err: api.ErrUnauthorized})
	_, cmd := s.Update(s.load()())
	if cmd == nil {
		t.Fatal("expected a stage change command")
	}
	msg := cmd().(screen.StageChangedMsg)
	if msg.Stage != session.StageLogin {
		t.Errorf("expected login stage, got %s", msg.Stage)
	}
}
