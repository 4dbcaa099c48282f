package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpal/internal/api"
	"github.com/abhisek/learnpal/internal/audio"
	"github.com/abhisek/learnpal/internal/router"
	"github.com/abhisek/learnpal/internal/screen"
	"github.com/abhisek/learnpal/internal/screens/login"
	"github.com/abhisek/learnpal/internal/screens/progress"
	"github.com/abhisek/learnpal/internal/screens/selectlearner"
	"github.com/abhisek/learnpal/internal/screens/signup"
	"github.com/abhisek/learnpal/internal/screens/tutor"
	"github.com/abhisek/learnpal/internal/session"
	"github.com/abhisek/learnpal/internal/speech"
	"github.com/abhisek/learnpal/internal/ui/layout"
)

// Options carries the wired services the screens need.
type Options struct {
	Controller *session.Controller
	Gateway    *api.Client
	Voice      *speech.CaptureService
	Audio      *audio.Pipeline
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel showing the boot screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		opts:   opts,
		router: router.New(bootScreen{}),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.bootstrap()
}

// bootstrap runs silent re-authentication and reports the landing stage.
func (m AppModel) bootstrap() tea.Cmd {
	ctrl := m.opts.Controller
	return func() tea.Msg {
		stage := ctrl.Bootstrap(context.Background())
		return screen.StageChangedMsg{Stage: stage}
	}
}

// screenFor maps a session stage to its screen.
func (m AppModel) screenFor(stage session.Stage) screen.Screen {
	switch stage {
	case session.StageLogin:
		return login.New(m.opts.Controller)
	case session.StageSignup:
		return signup.New(m.opts.Controller)
	case session.StageSelect:
		return selectlearner.New(m.opts.Controller, m.opts.Gateway)
	case session.StageTutor:
		return tutor.New(m.opts.Controller, m.opts.Voice, m.opts.Audio)
	case session.StageProgress:
		return progress.New(m.opts.Controller, m.opts.Gateway)
	}
	return bootScreen{}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StageChangedMsg:
		return m, m.router.Replace(m.screenFor(msg.Stage))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.opts.Voice.Stop()
			m.opts.Audio.Stop()
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStatus(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			footerHints = append(hints, footerHints...)
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// headerStatus is the right side of the header: who is signed in.
func (m AppModel) headerStatus() string {
	if user := m.opts.Controller.User(); user != nil {
		return user.Email + "  "
	}
	return ""
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
