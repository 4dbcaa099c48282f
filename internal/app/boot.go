package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpal/internal/screen"
	"github.com/abhisek/learnpal/internal/ui/theme"
)

// bootScreen is shown while bootstrap decides where to land.
type bootScreen struct{}

var _ screen.Screen = bootScreen{}

func (bootScreen) Init() tea.Cmd                            { return nil }
func (b bootScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return b, nil }
func (bootScreen) Title() string                            { return "" }

func (bootScreen) View(width, height int) string {
	content := theme.Title.Render("LearnPal") + "\n\n" +
		theme.Hint.Render("Checking your account...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
