package selectlearner

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

type fakeDirectory struct {
	learners  []api.Learner
	listErr   error
	createErr error
}

func (f *fakeDirectory) Learners(ctx context.Context) ([]api.Learner, error) {
	return f.learners, f.listErr
}

func (f *fakeDirectory) CreateLearner(ctx context.Context, name, dob string) (*api.Learner, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	l := api.Learner{ID: len(f.learners) + 1, Name: name, DOB: dob}
	f.learners = append(f.learners, l)
	return &l, nil
}

func newTestSelect(dir *fakeDirectory) (*SelectScreen, *session.Controller) {
	ctrl := session.NewController(fakeAuth{}, credentials.NewMemStore("tok"), func(l api.Learner) *conversation.Session {
		return conversation.New(l, nil, nil, nil)
	})
	ctrl.Bootstrap(context.Background())

	s := New(ctrl, dir)
	updated, _ := s.Update(s.loadLearners()())
	return updated.(*SelectScreen), ctrl
}

func TestRosterRendered(t *testing.T) {
	dir := &fakeDirectory{learners: []api.Learner{
		{ID: 1, Name: "Sam", DOB: "2017-03"},
		{ID: 2, Name: "Ada", DOB: "2015-11"},
	}}
	s, _ := newTestSelect(dir)

	view := s.View(100, 30)
	for _, want := range []string{"Sam", "Ada", "born 2017-03"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestSelectingLearnerStartsTutoring(t *testing.T) {
	dir := &fakeDirectory{learners: []api.Learner{{ID: 1, Name: "Sam"}}}
	s, ctrl := newTestSelect(dir)

	cmd := s.menu.Items[0].Action()
	msg := cmd().(screen.StageChangedMsg)

	if msg.Stage != session.StageTutor {
		t.Errorf("expected tutor stage, got %s", msg.Stage)
	}
	if ctrl.Conversation() == nil {
		t.Error("expected a conversation for the selected learner")
	}
	if got := ctrl.Learner(); got == nil || got.Name != "Sam" {
		t.Errorf("expected Sam active, got %+v", got)
	}
}

func TestEmptyRosterPromptsAdd(t *testing.T) {
	s, _ := newTestSelect(&fakeDirectory{})

	view := s.View(100, 30)
	if !strings.Contains(view, "No learners yet") {
		t.Error("expected empty-roster message")
	}
}

func TestRejectedCredentialRoutesToLogin(t *testing.T) {
	dir := &fakeDirectory{listErr: api.ErrUnauthorized}
	ctrl := session.NewController(fakeAuth{}, credentials.NewMemStore("tok"), func(l api.Learner) *conversation.Session {
		return conversation.New(l, nil, nil, nil)
	})
	ctrl.Bootstrap(context.Background())

	s := New(ctrl, dir)
	updated, cmd := s.Update(s.loadLearners()())
	_ = updated

	if cmd == nil {
		t.Fatal("expected a stage change command")
	}
	msg := cmd().(screen.StageChangedMsg)
	if msg.Stage != session.StageLogin {
		t.Errorf("expected login stage, got %s", msg.Stage)
	}
}

func TestInvalidLearnerFormStaysLocal(t *testing.T) {
	dir := &fakeDirectory{}
	s, _ := newTestSelect(dir)

	s.adding = true
	s.inputs[formName].SetValue("Sam")
	s.inputs[formDOB].SetValue("March 2017")

	if cmd := s.saveLearner(); cmd != nil {
		t.Fatal("invalid form should not produce a command")
	}
	if s.fieldErrs["dob"] != "Please use YYYY-MM format" {
		t.Errorf("expected dob format error, got %q", s.fieldErrs["dob"])
	}
	if len(dir.learners) != 0 {
		t.Error("nothing should have been created")
	}
}
