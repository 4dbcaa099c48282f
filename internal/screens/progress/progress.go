package progress

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"sort"
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

// Accuracy bands for the per-concept bars.
const (
	strongThreshold  = 0.8
	workingThreshold = 0.5
)

// Reporter is the slice of the gateway this screen needs.
// *api.Client satisfies this.
type Reporter interface {
	Progress(ctx context.Context, learnerID int) (api.ProgressReport, error)
}

// ProgressScreen shows per-concept accuracy for the active learner.
type ProgressScreen struct {
	ctrl    *session.Controller
	gateway Reporter

	report  api.ProgressReport
	loading bool
	errMsg  string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates the progress screen for the controller's active learner.
func New(ctrl *session.Controller, gateway Reporter) *ProgressScreen {
	return &ProgressScreen{
		ctrl:    ctrl,
		gateway: gateway,
		loading: true,
	}
}

func (s *ProgressScreen) Title() string {
	if l := s.ctrl.Learner(); l != nil {
		return l.Name + "'s Progress"
	}
	return "Progress"
}

func (s *ProgressScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "R", Description: "Refresh"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ProgressScreen) load() tea.Cmd {
	learner := s.ctrl.Learner()
	if learner == nil {
		return func() tea.Msg {
			return reportLoadedMsg{Err: errors.New("no active learner")}
		}
	}
	id := learner.ID
	return func() tea.Msg {
		report, err := s.gateway.Progress(context.Background(), id)
		return reportLoadedMsg{Report: report, Err: err}
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		s.loading = false
		if msg.Err != nil {
			if errors.Is(msg.Err, api.ErrUnauthorized) {
				stage := s.ctrl.Invalidate(context.Background())
				return s, func() tea.Msg { return screen.StageChangedMsg{Stage: stage} }
			}
			s.errMsg = "Couldn't load progress. Press R to retry."
			return s, nil
		}
		s.report = msg.Report
		s.errMsg = ""
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			stage := s.ctrl.BackToSelect(context.Background())
			return s, func() tea.Msg { return screen.StageChangedMsg{Stage: stage} }
		case "r":
			s.loading = true
			return s, s.load()
		case "ctrl+l":
			stage := s.ctrl.Logout(context.Background())
			return s, func() tea.Msg { return screen.StageChangedMsg{Stage: stage} }
		}
	}

	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(64).Render(s.Title()))
	b.WriteString("\n\n")

	switch {
	case s.loading:
		b.WriteString(theme.Hint.Render("Loading progress..."))
	case s.errMsg != "":
		b.WriteString(theme.FieldError.Render(s.errMsg))
	case len(s.report) == 0:
		b.WriteString(theme.Body.Render("Nothing practiced yet."))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Progress shows up after a few tutoring questions"))
	default:
		s.renderReport(&b)
	}

	card := theme.Card.Width(68).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *ProgressScreen) renderReport(b *strings.Builder) {
	concepts := make([]string, 0, len(s.report))
	for concept := range s.report {
		concepts = append(concepts, concept)
	}
	sort.Strings(concepts)

	for _, concept := range concepts {
		stat := s.report[concept]
		accuracy := 0.0
		if stat.Attempts > 0 {
			accuracy = float64(stat.Correct) / float64(stat.Attempts)
		}

		bar := components.ProgressBar{
			Label:       padConcept(concept),
			Percent:     accuracy,
			ShowPercent: true,
			Width:       56,
			Color:       accuracyColor(accuracy, stat.Attempts),
		}
		b.WriteString(bar.View())
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d of %d correct", stat.Correct, stat.Attempts)))
		b.WriteString("\n\n")
	}
}

func padConcept(concept string) string {
	const w = 16
	if len(concept) >= w {
		return concept[:w]
	}
	return concept + strings.Repeat(" ", w-len(concept))
}

func accuracyColor(accuracy float64, attempts int) color.Color {
	switch {
	case attempts == 0:
		// Untried is neutral, not failing.
		return theme.TextDim
	case accuracy >= strongThreshold:
		return theme.Success
	case accuracy >= workingThreshold:
		return theme.Accent
	default:
		return theme.Error
	}
}
