package login

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
	loginCalls int
	loginErr   error
}

func (f *fakeAuth) Me(ctx context.Context) (*api.User, error) {
	return &api.User{ID: 1, Email: "parent@example.com"}, nil
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (string, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return "tok-login", nil
}

func (f *fakeAuth) Signup(ctx context.Context, reg api.Registration) (string, error) {
	return "tok-signup", nil
}

func newTestLogin(auth *fakeAuth) *LoginScreen {
	ctrl := session.NewController(auth, credentials.NewMemStore(""), func(l api.Learner) *conversation.Session {
		return conversation.New(l, nil, nil, nil)
	})
	ctrl.Bootstrap(context.Background())
	return New(ctrl)
}

func TestEmptyFormRejectedLocally(t *testing.T) {
	auth := &fakeAuth{}
	s := newTestLogin(auth)

	if cmd := s.submit(); cmd != nil {
		t.Fatal("empty form should not produce a command")
	}
	if auth.loginCalls != 0 {
		t.Errorf("expected no login call, got %d", auth.loginCalls)
	}
	if !strings.Contains(s.View(100, 30), "Email and password are required") {
		t.Error("expected required-fields message in view")
	}
}

func TestSuccessfulLoginMovesToSelect(t *testing.T) {
	auth := &fakeAuth{}
	s := newTestLogin(auth)
	s.email.SetValue("parent@example.com")
	s.password.SetValue("secret1")

	cmd := s.submit()
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	updated, next := s.Update(cmd())
	s = updated.(*LoginScreen)

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
}

func TestRejectedCredentialShowsFriendlyError(t *testing.T) {
	auth := &fakeAuth{loginErr: api.ErrUnauthorized}
	s := newTestLogin(auth)
	s.email.SetValue("parent@example.com")
	s.password.SetValue("wrong")

	cmd := s.submit()
	updated, next := s.Update(cmd())
	s = updated.(*LoginScreen)

	if next != nil {
		t.Error("a failed login should not change stage")
	}
	if !strings.Contains(s.View(100, 30), "Incorrect email or password") {
		t.Error("expected rejection message in view")
	}
}
