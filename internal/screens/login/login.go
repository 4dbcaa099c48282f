package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpal/internal/api"
	"github.com/abhisek/learnpal/internal/screen"
	"github.com/abhisek/learnpal/internal/session"
	"github.com/abhisek/learnpal/internal/ui/components"
	"github.com/abhisek/learnpal/internal/ui/layout"
	"github.com/abhisek/learnpal/internal/ui/theme"
)

const (
	fieldEmail = iota
	fieldPassword
	fieldSubmit
	fieldCount
)

// LoginScreen is the guardian sign-in form.
type LoginScreen struct {
	ctrl       *session.Controller
	email      components.TextInput
	password   components.TextInput
	focus      int
	submitting bool
	errMsg     string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates the login screen bound to the session controller.
func New(ctrl *session.Controller) *LoginScreen {
	email := components.NewTextInput("you@example.com", 80)
	password := components.NewPasswordInput("password", 80)
	password.Blur()
	return &LoginScreen{
		ctrl:     ctrl,
		email:    email,
		password: password,
	}
}

func (s *LoginScreen) Title() string {
	return "Sign In"
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.email.Init()
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+S", Description: "Create account"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		s.submitting = false
		if msg.Err != nil {
			s.errMsg = friendlyAuthError(msg.Err)
			return s, nil
		}
		stage := s.ctrl.Stage()
		return s, func() tea.Msg { return screen.StageChangedMsg{Stage: stage} }

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		case "enter":
			return s, s.submit()
		case "ctrl+s":
			stage := s.ctrl.SwitchToSignup()
			return s, func() tea.Msg { return screen.StageChangedMsg{Stage: stage} }
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldEmail:
		s.email, cmd = s.email.Update(msg)
	case fieldPassword:
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) setFocus(field int) tea.Cmd {
	s.focus = field
	s.email.Blur()
	s.password.Blur()
	switch field {
	case fieldEmail:
		return s.email.Focus()
	case fieldPassword:
		return s.password.Focus()
	}
	return nil
}

// submit runs the credential exchange off the update loop.
func (s *LoginScreen) submit() tea.Cmd {
	if s.submitting {
		return nil
	}
	email := strings.TrimSpace(s.email.Value())
	password := s.password.Value()
	if email == "" || password == "" {
		s.errMsg = "Email and password are required"
		return nil
	}
	s.errMsg = ""
	s.submitting = true
	return func() tea.Msg {
		err := s.ctrl.Login(context.Background(), email, password)
		return authDoneMsg{Err: err}
	}
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(60).Render("Welcome back!"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(60).Render("Sign in to start tutoring"))
	b.WriteString("\n\n")

	b.WriteString(fieldLabel("Email", s.focus == fieldEmail))
	b.WriteString("\n")
	b.WriteString(s.email.View())
	b.WriteString("\n\n")
	b.WriteString(fieldLabel("Password", s.focus == fieldPassword))
	b.WriteString("\n")
	b.WriteString(s.password.View())
	b.WriteString("\n\n")
	b.WriteString(components.NewButton("Sign In", s.focus == fieldSubmit, nil).View())
	b.WriteString("\n\n")

	if s.submitting {
		b.WriteString(theme.Hint.Render("Signing in..."))
	} else if s.errMsg != "" {
		b.WriteString(theme.FieldError.Render(s.errMsg))
	} else {
		b.WriteString(theme.Hint.Render("New here? Press Ctrl+S to create an account"))
	}

	card := theme.Card.Width(64).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func fieldLabel(label string, focused bool) string {
	if focused {
		return theme.Selected.Render(label)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}

// friendlyAuthError keeps server detail when the service rejected the
// request and falls back to a generic line for transport faults.
func friendlyAuthError(err error) string {
	var vErr *api.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Detail
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return "Incorrect email or password"
	}
	return "Could not reach the tutoring service. Is it running?"
}
