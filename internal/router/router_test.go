package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnpal/internal/screen"
)

type fakeScreen struct {
	name    string
	initRan bool
	gotMsgs int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	f.gotMsgs++
	return f, nil
}
func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func active(t *testing.T, r *Router, want string) {
	t.Helper()
	if got := r.Active().Title(); got != want {
		t.Fatalf("active screen = %q, want %q", got, want)
	}
}

func TestPushAndPop(t *testing.T) {
	login := &fakeScreen{name: "login"}
	r := New(login)

	tutor := &fakeScreen{name: "tutor"}
	r.Push(tutor)
	if !tutor.initRan {
		t.Error("pushed screen was not initialized")
	}
	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	active(t, r, "tutor")

	r.Pop()
	active(t, r, "login")

	// Popping the last screen is a no-op.
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth after bottom pop = %d, want 1", r.Depth())
	}
	active(t, r, "login")
}

func TestReplaceSwapsActiveInPlace(t *testing.T) {
	login := &fakeScreen{name: "login"}
	r := New(login)
	r.Push(&fakeScreen{name: "select"})

	tutor := &fakeScreen{name: "tutor"}
	r.Replace(tutor)

	if !tutor.initRan {
		t.Error("replacement screen was not initialized")
	}
	if r.Depth() != 2 {
		t.Errorf("depth after replace = %d, want 2", r.Depth())
	}
	active(t, r, "tutor")
}

func TestReplaceScreenMsgRoutesToReplace(t *testing.T) {
	r := New(&fakeScreen{name: "login"})

	next := &fakeScreen{name: "signup"}
	r.Update(ReplaceScreenMsg{Screen: next})

	if !next.initRan {
		t.Error("screen swapped via message was not initialized")
	}
	active(t, r, "signup")
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	login := &fakeScreen{name: "login"}
	r := New(login)
	tutor := &fakeScreen{name: "tutor"}
	r.Push(tutor)

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if tutor.gotMsgs != 1 {
		t.Errorf("active screen saw %d messages, want 1", tutor.gotMsgs)
	}
	if login.gotMsgs != 0 {
		t.Errorf("covered screen saw %d messages, want 0", login.gotMsgs)
	}
}
