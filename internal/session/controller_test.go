package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/learnpal/internal/api"
	"github.com/abhisek/learnpal/internal/conversation"
	"github.com/abhisek/learnpal/internal/credentials"
)

type fakeAuth struct {
	user      *api.User
	meErr     error
	token     string
	loginErr  error
	signupErr error
	meCalls   int
}

func (f *fakeAuth) Me(context.Context) (*api.User, error) {
	f.meCalls++
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.user, nil
}

func (f *fakeAuth) Login(context.Context, string, string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAuth) Signup(context.Context, api.Registration) (string, error) {
	if f.signupErr != nil {
		return "", f.signupErr
	}
	return f.token, nil
}

func newTestController(auth *fakeAuth, tokens credentials.Store) *Controller {
	factory := func(learner api.Learner) *conversation.Session {
		return conversation.New(learner, &nullTutor{}, nil, nil)
	}
	return NewController(auth, tokens, factory)
}

type nullTutor struct{}

func (nullTutor) Lesson(context.Context, int, string) (*api.LessonReply, error) {
	return &api.LessonReply{Content: "ok"}, nil
}
func (nullTutor) Feedback(context.Context, int, int, int64) error { return nil }

func TestBootstrapNoCredential(t *testing.T) {
	auth := &fakeAuth{}
	c := newTestController(auth, credentials.NewMemStore(""))

	if got := c.Bootstrap(t.Context()); got != StageLogin {
		t.Errorf("expected login stage, got %v", got)
	}
	if auth.meCalls != 0 {
		t.Error("no /me call expected without a credential")
	}
}

func TestBootstrapValidCredential(t *testing.T) {
	auth := &fakeAuth{user: &api.User{ID: 1, Email: "a@b.com"}}
	c := newTestController(auth, credentials.NewMemStore("tok"))

	if got := c.Bootstrap(t.Context()); got != StageSelect {
		t.Errorf("expected select stage, got %v", got)
	}
	if u := c.User(); u == nil || u.Email != "a@b.com" {
		t.Errorf("expected user a@b.com, got %+v", u)
	}
}

func TestBootstrapRejectedCredentialIsCleared(t *testing.T) {
	auth := &fakeAuth{meErr: api.ErrUnauthorized}
	tokens := credentials.NewMemStore("expired")
	c := newTestController(auth, tokens)

	if got := c.Bootstrap(t.Context()); got != StageLogin {
		t.Errorf("expected login stage, got %v", got)
	}
	if _, ok := tokens.Token(); ok {
		t.Error("expected rejected credential cleared")
	}
}

func TestBootstrapTransientFailureKeepsCredential(t *testing.T) {
	auth := &fakeAuth{meErr: &api.ServiceError{StatusCode: 503}}
	tokens := credentials.NewMemStore("tok")
	c := newTestController(auth, tokens)

	if got := c.Bootstrap(t.Context()); got != StageLogin {
		t.Errorf("expected login stage, got %v", got)
	}
	if _, ok := tokens.Token(); !ok {
		t.Error("transient failure must not clear the credential")
	}
}

func TestLoginSuccessStoresTokenAndMovesToSelect(t *testing.T) {
	auth := &fakeAuth{token: "fresh", user: &api.User{Email: "a@b.com"}}
	tokens := credentials.NewMemStore("")
	c := newTestController(auth, tokens)
	c.Bootstrap(t.Context())

	if err := c.Login(t.Context(), "a@b.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if c.Stage() != StageSelect {
		t.Errorf("expected select, got %v", c.Stage())
	}
	if tok, _ := tokens.Token(); tok != "fresh" {
		t.Errorf("expected stored token, got %q", tok)
	}
}

func TestLoginFailureStaysOnLogin(t *testing.T) {
	auth := &fakeAuth{loginErr: api.ErrUnauthorized}
	c := newTestController(auth, credentials.NewMemStore(""))
	c.Bootstrap(t.Context())

	if err := c.Login(t.Context(), "a@b.com", "wrong"); err == nil {
		t.Fatal("expected login error")
	}
	if c.Stage() != StageLogin {
		t.Errorf("expected stage unchanged, got %v", c.Stage())
	}
}

func TestSignupValidationBlocksNetworkCall(t *testing.T) {
	auth := &fakeAuth{token: "tok"}
	c := newTestController(auth, credentials.NewMemStore(""))
	c.Bootstrap(t.Context())
	c.SwitchToSignup()

	err := c.Signup(t.Context(), api.Registration{Email: "not-an-email", Password: "abc"}, "xyz")
	var ferr *FieldErrors
	if !errors.As(err, &ferr) {
		t.Fatalf("expected *FieldErrors, got %v", err)
	}
	for _, field := range []string{"email", "password", "confirm_password", "tenant_name"} {
		if _, ok := ferr.Fields[field]; !ok {
			t.Errorf("expected a message for field %q", field)
		}
	}
	if c.Stage() != StageSignup {
		t.Errorf("expected stage unchanged, got %v", c.Stage())
	}
}

func TestSignupSuccess(t *testing.T) {
	auth := &fakeAuth{token: "tok", user: &api.User{Email: "a@b.com"}}
	c := newTestController(auth, credentials.NewMemStore(""))
	c.Bootstrap(t.Context())
	c.SwitchToSignup()

	reg := api.Registration{Email: "a@b.com", Password: "secret", TenantName: "Smith Family"}
	if err := c.Signup(t.Context(), reg, "secret"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if c.Stage() != StageSelect {
		t.Errorf("expected select, got %v", c.Stage())
	}
}

func TestSelectLearnerEntersTutorWithGreeting(t *testing.T) {
	auth := &fakeAuth{user: &api.User{Email: "a@b.com"}}
	c := newTestController(auth, credentials.NewMemStore("tok"))
	c.Bootstrap(t.Context())

	c.SelectLearner(api.Learner{ID: 7, Name: "Sam"})

	if c.Stage() != StageTutor {
		t.Fatalf("expected tutor stage, got %v", c.Stage())
	}
	if l := c.Learner(); l == nil || l.ID != 7 {
		t.Fatalf("expected learner 7 active, got %+v", l)
	}

	convo := c.Conversation()
	if convo == nil {
		t.Fatal("expected a conversation session")
	}
	convo.Initialize(t.Context())
	turns := convo.Turns()
	if len(turns) != 1 || !turns[0].Greeting {
		t.Fatalf("expected exactly one greeting turn, got %+v", turns)
	}
	if want := "Sam"; !strings.Contains(turns[0].BotText, want) {
		t.Errorf("greeting %q should contain %q", turns[0].BotText, want)
	}
}

func TestShowProgressDoesNotCreateConversation(t *testing.T) {
	auth := &fakeAuth{user: &api.User{}}
	c := newTestController(auth, credentials.NewMemStore("tok"))
	c.Bootstrap(t.Context())

	c.ShowProgress(api.Learner{ID: 7, Name: "Sam"})

	if c.Stage() != StageProgress {
		t.Errorf("expected progress stage, got %v", c.Stage())
	}
	if c.Conversation() != nil {
		t.Error("ShowProgress must not create a conversation")
	}
}

func TestBackToSelectDiscardsConversation(t *testing.T) {
	auth := &fakeAuth{user: &api.User{}}
	c := newTestController(auth, credentials.NewMemStore("tok"))
	c.Bootstrap(t.Context())
	c.SelectLearner(api.Learner{ID: 7, Name: "Sam"})

	c.BackToSelect(t.Context())

	if c.Stage() != StageSelect {
		t.Errorf("expected select, got %v", c.Stage())
	}
	if c.Learner() != nil || c.Conversation() != nil {
		t.Error("expected learner and conversation cleared")
	}
}

func TestLogoutFromAnyStage(t *testing.T) {
	stages := []func(c *Controller){
		func(c *Controller) {}, // select
		func(c *Controller) { c.SelectLearner(api.Learner{ID: 1, Name: "A"}) },
		func(c *Controller) { c.ShowProgress(api.Learner{ID: 1, Name: "A"}) },
	}

	for i, enter := range stages {
		auth := &fakeAuth{user: &api.User{Email: "a@b.com"}}
		tokens := credentials.NewMemStore("tok")
		c := newTestController(auth, tokens)
		c.Bootstrap(t.Context())
		enter(c)

		if got := c.Logout(t.Context()); got != StageLogin {
			t.Errorf("case %d: expected login after logout, got %v", i, got)
		}
		if _, ok := tokens.Token(); ok {
			t.Errorf("case %d: expected credential cleared", i)
		}
		if c.User() != nil || c.Learner() != nil || c.Conversation() != nil {
			t.Errorf("case %d: expected in-memory state cleared", i)
		}
	}
}

func TestInvalidTransitionPanics(t *testing.T) {
	auth := &fakeAuth{user: &api.User{}}
	c := newTestController(auth, credentials.NewMemStore("tok"))
	c.Bootstrap(t.Context()) // -> select

	defer func() {
		if recover() == nil {
			t.Error("expected panic on select -> signup")
		}
	}()
	c.SwitchToSignup()
}

func TestProgressOnlyReachableFromSelect(t *testing.T) {
	auth := &fakeAuth{user: &api.User{}}
	c := newTestController(auth, credentials.NewMemStore("tok"))
	c.Bootstrap(t.Context())
	c.SelectLearner(api.Learner{ID: 7, Name: "Sam"}) // -> tutor

	defer func() {
		if recover() == nil {
			t.Error("expected panic on tutor -> progress")
		}
	}()
	c.ShowProgress(api.Learner{ID: 7, Name: "Sam"})
}
