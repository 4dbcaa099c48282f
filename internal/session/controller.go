// Package session owns the top-level stage state machine: where the
// application is (login, signup, learner select, tutoring, progress)
// and the authentication and selection state that justifies being there.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/abhisek/learnpal/internal/api"
	"github.com/abhisek/learnpal/internal/conversation"
	"github.com/abhisek/learnpal/internal/credentials"
)

// Authenticator is the slice of the gateway the controller needs.
// *api.Client satisfies this.
type Authenticator interface {
	Me(ctx context.Context) (*api.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, reg api.Registration) (string, error)
}

// ConversationFactory builds the tutoring session when a learner is
// selected. Injected so the controller stays free of audio and store
// wiring.
type ConversationFactory func(learner api.Learner) *conversation.Session

// Controller is the stage state machine. It is the only mutator of the
// session: authenticated user, active learner, and current stage.
type Controller struct {
	gateway  Authenticator
	tokens   credentials.Store
	newConvo ConversationFactory

	mu      sync.Mutex
	stage   Stage
	user    *api.User
	learner *api.Learner
	convo   *conversation.Session
}

// NewController creates a Controller in the transient booting stage.
func NewController(gateway Authenticator, tokens credentials.Store, newConvo ConversationFactory) *Controller {
	return &Controller{
		gateway:  gateway,
		tokens:   tokens,
		newConvo: newConvo,
		stage:    StageBooting,
	}
}

// Stage returns the current stage.
func (c *Controller) Stage() Stage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage
}

// User returns the authenticated guardian, nil before login.
func (c *Controller) User() *api.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Learner returns the active learner, nil outside tutor/progress stages.
func (c *Controller) Learner() *api.Learner {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.learner
}

// Conversation returns the active tutoring session, nil outside the
// tutor stage.
func (c *Controller) Conversation() *conversation.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.convo
}

// Bootstrap attempts silent re-authentication with the persisted
// credential. No credential routes to login; a credential the service
// rejects is cleared before routing to login; a valid one routes to
// select. One attempt, no retries.
func (c *Controller) Bootstrap(ctx context.Context) Stage {
	if _, ok := c.tokens.Token(); !ok {
		return c.moveTo(StageLogin)
	}

	user, err := c.gateway.Me(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			c.clearToken()
		}
		return c.moveTo(StageLogin)
	}

	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
	return c.moveTo(StageSelect)
}

// Login exchanges credentials for a token, persists it, and moves to
// select. On failure the stage stays at login and the error surfaces to
// the form.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	token, err := c.gateway.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return c.adopt(ctx, token)
}

// Signup validates the registration locally, then creates the account
// and moves to select. Validation failures are returned as *FieldErrors
// before any network call.
func (c *Controller) Signup(ctx context.Context, reg api.Registration, confirmPassword string) error {
	if errs := ValidateRegistration(reg, confirmPassword); len(errs) > 0 {
		return &FieldErrors{Fields: errs}
	}

	token, err := c.gateway.Signup(ctx, reg)
	if err != nil {
		return err
	}
	return c.adopt(ctx, token)
}

// SwitchToSignup moves from the login form to the signup form.
func (c *Controller) SwitchToSignup() Stage { return c.moveTo(StageSignup) }

// SwitchToLogin moves from the signup form back to the login form.
func (c *Controller) SwitchToLogin() Stage { return c.moveTo(StageLogin) }

// SelectLearner makes learner active, moves to the tutor stage, and
// instantiates a fresh conversation scoped to that learner.
func (c *Controller) SelectLearner(learner api.Learner) Stage {
	c.mu.Lock()
	l := learner
	c.learner = &l
	c.convo = c.newConvo(learner)
	c.mu.Unlock()
	return c.moveTo(StageTutor)
}

// ShowProgress makes learner active and moves to the progress stage.
// Only reachable from select; leaving goes through BackToSelect.
func (c *Controller) ShowProgress(learner api.Learner) Stage {
	c.mu.Lock()
	l := learner
	c.learner = &l
	c.mu.Unlock()
	return c.moveTo(StageProgress)
}

// BackToSelect clears the active learner and discards the current
// conversation. An in-flight request is abandoned, not canceled; its
// late result lands in the discarded session and is never observed.
func (c *Controller) BackToSelect(ctx context.Context) Stage {
	c.mu.Lock()
	if c.convo != nil {
		c.convo.End(ctx)
	}
	c.learner = nil
	c.convo = nil
	c.mu.Unlock()
	return c.moveTo(StageSelect)
}

// Logout clears the persisted credential and all in-memory session
// state. Valid from every stage.
func (c *Controller) Logout(ctx context.Context) Stage {
	c.clearToken()
	c.mu.Lock()
	if c.convo != nil {
		c.convo.End(ctx)
	}
	c.user = nil
	c.learner = nil
	c.convo = nil
	c.mu.Unlock()
	return c.moveTo(StageLogin)
}

// Invalidate handles a credential rejection observed after bootstrap:
// same cleanup as logout. The only failure allowed to force a stage
// transition.
func (c *Controller) Invalidate(ctx context.Context) Stage {
	return c.Logout(ctx)
}

// adopt stores a fresh token, fetches the guardian record, and moves to
// select. A failed /me fetch after a successful auth is tolerated; the
// user record stays nil until the next bootstrap.
func (c *Controller) adopt(ctx context.Context, token string) error {
	if err := c.tokens.SetToken(token); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	if user, err := c.gateway.Me(ctx); err == nil {
		c.mu.Lock()
		c.user = user
		c.mu.Unlock()
	}

	c.moveTo(StageSelect)
	return nil
}

func (c *Controller) clearToken() {
	if err := c.tokens.Clear(); err != nil {
		// Nothing actionable for the caller; the in-memory session is
		// reset regardless.
		fmt.Fprintln(os.Stderr, "warning: failed to clear credential:", err)
	}
}

func (c *Controller) moveTo(to Stage) Stage {
	c.mu.Lock()
	defer c.mu.Unlock()
	mustTransition(c.stage, to)
	c.stage = to
	return to
}
