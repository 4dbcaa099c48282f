package selectlearner

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

// Directory is the slice of the gateway this screen needs.
// *api.Client satisfies this.
type Directory interface {
	Learners(ctx context.Context) ([]api.Learner, error)
	CreateLearner(ctx context.Context, name, dob string) (*api.Learner, error)
}

const (
	formName = iota
	formDOB
	formCount
)

// SelectScreen lists the account's learners and starts a tutoring
// session for the chosen one.
type SelectScreen struct {
	ctrl    *session.Controller
	gateway Directory

	learners []api.Learner
	menu     components.Menu
	loading  bool
	errMsg   string

	// add-learner form
	adding    bool
	saving    bool
	inputs    [formCount]components.TextInput
	formFocus int
	fieldErrs map[string]string
	formErr   string
}

var _ screen.Screen = (*SelectScreen)(nil)
var _ screen.KeyHintProvider = (*SelectScreen)(nil)

// New creates the learner select screen.
func New(ctrl *session.Controller, gateway Directory) *SelectScreen {
	s := &SelectScreen{
		ctrl:    ctrl,
		gateway: gateway,
		loading: true,
	}
	s.inputs[formName] = components.NewTextInput("name", 60)
	s.inputs[formDOB] = components.NewTextInput("YYYY-MM", 7)
	s.inputs[formDOB].Blur()
	return s
}

func (s *SelectScreen) Title() string {
	return "Who's Learning?"
}

func (s *SelectScreen) Init() tea.Cmd {
	return s.loadLearners()
}

func (s *SelectScreen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start tutoring"},
		{Key: "P", Description: "Progress"},
		{Key: "A", Description: "Add learner"},
		{Key: "Ctrl+L", Description: "Log out"},
	}
}

func (s *SelectScreen) loadLearners() tea.Cmd {
	return func() tea.Msg {
		learners, err := s.gateway.Learners(context.Background())
		return learnersLoadedMsg{Learners: learners, Err: err}
	}
}

func (s *SelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case learnersLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			return s.handleGatewayError(msg.Err)
		}
		s.learners = msg.Learners
		s.rebuildMenu()
		return s, nil

	case learnerCreatedMsg:
		s.saving = false
		if msg.Err != nil {
			if errors.Is(msg.Err, api.ErrUnauthorized) {
				stage := s.ctrl.Invalidate(context.Background())
				return s, func() tea.Msg { return screen.StageChangedMsg{Stage: stage} }
			}
			var vErr *api.ValidationError
			if errors.As(msg.Err, &vErr) {
				s.formErr = vErr.Detail
			} else {
				s.formErr = "Couldn't save. Check the connection and try again."
			}
			return s, nil
		}
		s.adding = false
		s.learners = append(s.learners, *msg.Learner)
		s.rebuildMenu()
		s.menu.Selected = len(s.learners) - 1
		return s, nil

	case tea.KeyMsg:
		if s.adding {
			return s.updateForm(msg)
		}
		return s.updateList(msg)
	}

	if s.adding {
		var cmd tea.Cmd
		s.inputs[s.formFocus], cmd = s.inputs[s.formFocus].Update(msg)
		return s, cmd
	}
	return s, nil
}

// handleGatewayError clears the session on a rejected credential and
// keeps the screen usable for anything else.
func (s *SelectScreen) handleGatewayError(err error) (screen.Screen, tea.Cmd) {
	if errors.Is(err, api.ErrUnauthorized) {
		stage := s.ctrl.Invalidate(context.Background())
		return s, func() tea.Msg { return screen.StageChangedMsg{Stage: stage} }
	}
	var vErr *api.ValidationError
	if errors.As(err, &vErr) {
		s.errMsg = vErr.Detail
	} else {
		s.errMsg = "Could not reach the tutoring service. Press R to retry."
	}
	return s, nil
}

// rebuildMenu remakes the roster menu after the learner list changes.
func (s *SelectScreen) rebuildMenu() {
	items := make([]components.MenuItem, 0, len(s.learners))
	for _, l := range s.learners {
		learner := l
		detail := ""
		if learner.DOB != "" {
			detail = "born " + learner.DOB
		}
		items = append(items, components.MenuItem{
			Label:  learner.Name,
			Detail: detail,
			Action: func() tea.Cmd {
				stage := s.ctrl.SelectLearner(learner)
				return func() tea.Msg { return screen.StageChangedMsg{Stage: stage} }
			},
		})
	}
	s.menu = components.NewMenu(items)
}

func (s *SelectScreen) updateList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "p":
		if s.menu.Selected < len(s.learners) {
			stage := s.ctrl.ShowProgress(s.learners[s.menu.Selected])
			return s, func() tea.Msg { return screen.StageChangedMsg{Stage: stage} }
		}
		return s, nil
	case "a":
		s.adding = true
		s.fieldErrs = nil
		s.formErr = ""
		s.errMsg = ""
		s.inputs[formName].Reset()
		s.inputs[formDOB].Reset()
		return s, s.setFormFocus(formName)
	case "r":
		s.loading = true
		s.errMsg = ""
		return s, s.loadLearners()
	case "ctrl+l":
		stage := s.ctrl.Logout(context.Background())
		return s, func() tea.Msg { return screen.StageChangedMsg{Stage: stage} }
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SelectScreen) updateForm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.adding = false
		s.fieldErrs = nil
		return s, nil
	case "tab", "down":
		return s, s.setFormFocus((s.formFocus + 1) % formCount)
	case "shift+tab", "up":
		return s, s.setFormFocus((s.formFocus + formCount - 1) % formCount)
	case "enter":
		return s, s.saveLearner()
	}

	var cmd tea.Cmd
	s.inputs[s.formFocus], cmd = s.inputs[s.formFocus].Update(msg)
	return s, cmd
}

func (s *SelectScreen) setFormFocus(field int) tea.Cmd {
	s.inputs[s.formFocus].Blur()
	s.formFocus = field
	return s.inputs[s.formFocus].Focus()
}

func (s *SelectScreen) saveLearner() tea.Cmd {
	if s.saving {
		return nil
	}
	name := strings.TrimSpace(s.inputs[formName].Value())
	dob := strings.TrimSpace(s.inputs[formDOB].Value())
	if errs := session.ValidateLearner(name, dob); errs != nil {
		s.fieldErrs = errs
		return nil
	}
	s.fieldErrs = nil
	s.saving = true
	return func() tea.Msg {
		learner, err := s.gateway.CreateLearner(context.Background(), name, dob)
		return learnerCreatedMsg{Learner: learner, Err: err}
	}
}

func (s *SelectScreen) View(width, height int) string {
	if s.adding {
		return s.viewForm(width, height)
	}
	return s.viewList(width, height)
}

func (s *SelectScreen) viewList(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(56).Render("Who's learning today?"))
	b.WriteString("\n\n")

	switch {
	case s.loading:
		b.WriteString(theme.Hint.Render("Loading learners..."))
	case s.errMsg != "":
		b.WriteString(theme.FieldError.Render(s.errMsg))
	case len(s.learners) == 0:
		b.WriteString(theme.Body.Render("No learners yet."))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press A to add your first learner"))
	default:
		b.WriteString(s.menu.View())
	}

	card := theme.Card.Width(60).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *SelectScreen) viewForm(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(56).Render("Add a learner"))
	b.WriteString("\n\n")

	labels := [formCount]string{"Name", "Birth month"}
	keys := [formCount]string{"name", "dob"}
	for i := 0; i < formCount; i++ {
		if s.formFocus == i {
			b.WriteString(theme.Selected.Render(labels[i]))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(labels[i]))
		}
		b.WriteString("\n")
		b.WriteString(s.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := s.fieldErrs[keys[i]]; ok {
			b.WriteString(theme.FieldError.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch {
	case s.saving:
		b.WriteString(theme.Hint.Render("Saving..."))
	case s.formErr != "":
		b.WriteString(theme.FieldError.Render(s.formErr))
	default:
		b.WriteString(theme.Hint.Render("Only the birth year and month are stored"))
	}

	card := theme.Card.Width(60).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
