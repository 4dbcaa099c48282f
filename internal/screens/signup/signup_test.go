package signup

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/learnpal/internal/api"
	"github.com/abhisek/learnpal/internal/conversation"
	"github.com/abhisek/learnpal/internal/credentials"
	"github.com/abhisek/learnpal/internal/screen"
	"github.com/abhisek/learnpal/internal/session"
)

type fakeAuth struct {
	signupCalls int
}

func (f *fakeAuth) Me(ctx context.Context) (*api.User, error) {
	return &api.User{ID: 1, Email: "parent@example.com"}, nil
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (string, error) {
	return "tok-login", nil
}

func (f *fakeAuth) Signup(ctx context.Context, reg api.Registration) (string, error) {
	f.signupCalls++
	return "tok-signup", nil
}

func newTestSignup() (*SignupScreen, *fakeAuth, *session.Controller) {
	auth := &fakeAuth{}
	ctrl := session.NewController(auth, credentials.NewMemStore(""), func(l api.Learner) *conversation.Session {
		return conversation.New(l, nil, nil, nil)
	})
	ctrl.Bootstrap(context.Background())
	ctrl.SwitchToSignup()
	return New(ctrl), auth, ctrl
}

func fill(s *SignupScreen, email, password, confirm, tenant string) {
	s.inputs[fieldEmail].SetValue(email)
	s.inputs[fieldPassword].SetValue(password)
	s.inputs[fieldConfirm].SetValue(confirm)
	s.inputs[fieldTenant].SetValue(tenant)
}

func TestInvalidFormNeverReachesService(t *testing.T) {
	s, auth, _ := newTestSignup()
	fill(s, "parent@example.com", "secret1", "different", "Smith Family")

	cmd := s.submit()
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	updated, _ := s.Update(cmd())
	s = updated.(*SignupScreen)

	if auth.signupCalls != 0 {
		t.Errorf("expected no signup call, got %d", auth.signupCalls)
	}

	view := s.View(100, 40)
	if !strings.Contains(view, "Passwords do not match") {
		t.Error("expected mismatch message in view")
	}
}

func TestAllFieldErrorsShown(t *testing.T) {
	s, _, _ := newTestSignup()
	fill(s, "", "abc", "xyz", "")

	cmd := s.submit()
	updated, _ := s.Update(cmd())
	s = updated.(*SignupScreen)

	view := s.View(100, 40)
	for _, want := range []string{
		"Email is required",
		"Password must be at least 6 characters",
		"Passwords do not match",
		"Organization name is required",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestValidFormMovesToSelect(t *testing.T) {
	s, auth, ctrl := newTestSignup()
	fill(s, "parent@example.com", "secret1", "secret1", "Smith Family")

	cmd := s.submit()
	updated, next := s.Update(cmd())
	s = updated.(*SignupScreen)

	if auth.signupCalls != 1 {
		t.Fatalf("expected one signup call, got %d", auth.signupCalls)
	}
	if next == nil {
		t.Fatal("expected a stage change command")
	}
	msg, ok := next().(screen.StageChangedMsg)
	if !ok {
		t.Fatalf("expected StageChangedMsg, got %T", next())
	}
	if msg.Stage != session.StageSelect {
		t.Errorf("expected select stage, got %s", msg.Stage)
	}
	if ctrl.Stage() != session.StageSelect {
		t.Errorf("controller should be at select, got %s", ctrl.Stage())
	}
}

func TestEscReturnsToLogin(t *testing.T) {
	s, _, ctrl := newTestSignup()

	cmd := s.switchToLogin()
	if cmd == nil {
		t.Fatal("expected a stage change command")
	}
	msg := cmd().(screen.StageChangedMsg)
	if msg.Stage != session.StageLogin {
		t.Errorf("expected login stage, got %s", msg.Stage)
	}
	if ctrl.Stage() != session.StageLogin {
		t.Errorf("controller should be at login, got %s", ctrl.Stage())
	}
}
