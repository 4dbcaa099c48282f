package signup

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
	fieldConfirm
	fieldTenant
	fieldCount
)

// fieldKeys maps form positions to the validation error keys.
var fieldKeys = [fieldCount]string{"email", "password", "confirm_password", "tenant_name"}

// SignupScreen is the guardian account creation form.
type SignupScreen struct {
	ctrl       *session.Controller
	inputs     [fieldCount]components.TextInput
	focus      int
	submitting bool
	fieldErrs  map[string]string
	errMsg     string
}

var _ screen.Screen = (*SignupScreen)(nil)
var _ screen.KeyHintProvider = (*SignupScreen)(nil)

// New creates the signup screen bound to the session controller.
func New(ctrl *session.Controller) *SignupScreen {
	s := &SignupScreen{ctrl: ctrl}
	s.inputs[fieldEmail] = components.NewTextInput("you@example.com", 80)
	s.inputs[fieldPassword] = components.NewPasswordInput("at least 6 characters", 80)
	s.inputs[fieldConfirm] = components.NewPasswordInput("repeat password", 80)
	s.inputs[fieldTenant] = components.NewTextInput("family or school name", 80)
	for i := 1; i < fieldCount; i++ {
		s.inputs[i].Blur()
	}
	return s
}

func (s *SignupScreen) Title() string {
	return "Create Account"
}

func (s *SignupScreen) Init() tea.Cmd {
	return s.inputs[fieldEmail].Init()
}

func (s *SignupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Create account"},
		{Key: "Esc", Description: "Back to sign in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SignupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		s.submitting = false
		if msg.Err != nil {
			var fieldErrs *session.FieldErrors
			if errors.As(msg.Err, &fieldErrs) {
				s.fieldErrs = fieldErrs.Fields
				return s, nil
			}
			s.errMsg = friendlySignupError(msg.Err)
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
		case "esc":
			return s, s.switchToLogin()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *SignupScreen) switchToLogin() tea.Cmd {
	stage := s.ctrl.SwitchToLogin()
	return func() tea.Msg { return screen.StageChangedMsg{Stage: stage} }
}

func (s *SignupScreen) setFocus(field int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = field
	return s.inputs[s.focus].Focus()
}

// submit runs local validation and then the registration call off the
// update loop. Validation failures never leave the process.
func (s *SignupScreen) submit() tea.Cmd {
	if s.submitting {
		return nil
	}
	reg := api.Registration{
		Email:      strings.TrimSpace(s.inputs[fieldEmail].Value()),
		Password:   s.inputs[fieldPassword].Value(),
		TenantName: strings.TrimSpace(s.inputs[fieldTenant].Value()),
	}
	confirm := s.inputs[fieldConfirm].Value()

	s.errMsg = ""
	s.fieldErrs = nil
	s.submitting = true
	return func() tea.Msg {
		err := s.ctrl.Signup(context.Background(), reg, confirm)
		return registerDoneMsg{Err: err}
	}
}

func (s *SignupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(60).Render("Join LearnPal"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(60).Render("One account for your whole family"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Email", "Password", "Confirm password", "Organization"}
	for i := 0; i < fieldCount; i++ {
		b.WriteString(fieldLabel(labels[i], s.focus == i))
		b.WriteString("\n")
		b.WriteString(s.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := s.fieldErrs[fieldKeys[i]]; ok {
			b.WriteString(theme.FieldError.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.submitting {
		b.WriteString(theme.Hint.Render("Creating your account..."))
	} else if s.errMsg != "" {
		b.WriteString(theme.FieldError.Render(s.errMsg))
	} else {
		b.WriteString(theme.Hint.Render("Press Enter to create your account"))
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

func friendlySignupError(err error) string {
	var vErr *api.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Detail
	}
	return "Could not reach the tutoring service. Is it running?"
}
