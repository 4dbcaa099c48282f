package tutor

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learnpal/internal/audio"
	"github.com/abhisek/learnpal/internal/conversation"
	"github.com/abhisek/learnpal/internal/screen"
	"github.com/abhisek/learnpal/internal/session"
	"github.com/abhisek/learnpal/internal/speech"
	"github.com/abhisek/learnpal/internal/ui/components"
	"github.com/abhisek/learnpal/internal/ui/layout"
)

const tickInterval = 250 * time.Millisecond

// TutorScreen is the live tutoring conversation.
type TutorScreen struct {
	ctrl   *session.Controller
	convo  *conversation.Session
	voice  *speech.CaptureService
	player *audio.Pipeline

	input     components.TextInput
	tickCount int
	ready     bool
	hint      string
	micErr    string
	rated     int // last rating shown transiently, 0 when none
	ratedAt   time.Time
}

var _ screen.Screen = (*TutorScreen)(nil)
var _ screen.KeyHintProvider = (*TutorScreen)(nil)

// New creates the tutor screen for the controller's active conversation.
func New(ctrl *session.Controller, voice *speech.CaptureService, player *audio.Pipeline) *TutorScreen {
	return &TutorScreen{
		ctrl:   ctrl,
		convo:  ctrl.Conversation(),
		voice:  voice,
		player: player,
		input:  components.NewTextInput("Ask your tutor anything...", 500),
	}
}

func (s *TutorScreen) Title() string {
	if l := s.ctrl.Learner(); l != nil {
		return "Tutoring " + l.Name
	}
	return "Tutoring"
}

func (s *TutorScreen) Init() tea.Cmd {
	return tea.Batch(
		s.initConversation(),
		s.input.Init(),
		tick(),
	)
}

func (s *TutorScreen) KeyHints() []layout.KeyHint {
	mic := "Speak"
	if s.voice.Listening() {
		mic = "Stop mic"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+R", Description: mic},
		{Key: "Ctrl+Y/Ctrl+N", Description: "Rate reply"},
		{Key: "Esc", Description: "Switch learner"},
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// initConversation records and speaks the greeting off the update loop.
func (s *TutorScreen) initConversation() tea.Cmd {
	return func() tea.Msg {
		s.convo.Initialize(context.Background())
		return convoReadyMsg{}
	}
}

func (s *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case convoReadyMsg:
		s.ready = true
		return s, nil

	case sendDoneMsg:
		switch {
		case errors.Is(msg.Err, conversation.ErrBusy):
			s.hint = "One question at a time! Wait for your tutor."
		case errors.Is(msg.Err, conversation.ErrEmpty):
			// Nothing was sent; nothing to show.
		}
		return s, nil

	case ratedMsg:
		if msg.Err == nil {
			s.rated = msg.Value
			s.ratedAt = time.Now()
		}
		return s, nil

	case tickMsg:
		s.tickCount++
		if s.rated != 0 && time.Since(s.ratedAt) > 3*time.Second {
			s.rated = 0
		}
		// A finished voice capture lands in the transcript; move it
		// into the input box so the learner can edit before sending.
		if t := s.voice.Transcript(); t != "" {
			s.input.SetValue(t)
			s.voice.SetTranscript("")
		}
		return s, tick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TutorScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return s, s.send()

	case "ctrl+r":
		s.toggleMic()
		return s, nil

	case "ctrl+y":
		return s, s.rate(1)

	case "ctrl+n":
		return s, s.rate(-1)

	case "esc":
		s.teardown()
		stage := s.ctrl.BackToSelect(context.Background())
		return s, func() tea.Msg { return screen.StageChangedMsg{Stage: stage} }

	case "ctrl+l":
		s.teardown()
		stage := s.ctrl.Logout(context.Background())
		return s, func() tea.Msg { return screen.StageChangedMsg{Stage: stage} }
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// teardown silences the microphone and speaker. Runs on every path
// that leaves the screen.
func (s *TutorScreen) teardown() {
	s.voice.Stop()
	s.player.Stop()
}

func (s *TutorScreen) send() tea.Cmd {
	text := s.input.Value()
	s.input.Reset()
	s.hint = ""
	return func() tea.Msg {
		err := s.convo.Send(context.Background(), text)
		return sendDoneMsg{Err: err}
	}
}

func (s *TutorScreen) rate(value int) tea.Cmd {
	return func() tea.Msg {
		err := s.convo.Rate(context.Background(), value)
		return ratedMsg{Value: value, Err: err}
	}
}

func (s *TutorScreen) toggleMic() {
	if s.voice.Listening() {
		s.voice.Stop()
		return
	}
	if err := s.voice.Start(); err != nil {
		if errors.Is(err, speech.ErrUnavailable) {
			s.micErr = "Voice input isn't available on this machine"
		} else {
			s.micErr = "Couldn't start the microphone"
		}
		return
	}
	s.micErr = ""
}
