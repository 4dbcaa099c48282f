package tutor

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learnpal/internal/conversation"
	"github.com/abhisek/learnpal/internal/ui/theme"
)

var thinkingFrames = []string{"∙∙∙", "●∙∙", "∙●∙", "∙∙●"}

func (s *TutorScreen) View(width, height int) string {
	if !s.ready {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Waking up your tutor...")
	}

	bubbleWidth := width - 12
	if bubbleWidth > 70 {
		bubbleWidth = 70
	}
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var b strings.Builder
	for _, turn := range s.convo.Turns() {
		s.renderTurn(&b, turn, bubbleWidth)
	}
	transcript := strings.TrimRight(b.String(), "\n")

	statusLine := s.renderStatus()
	inputLine := "  " + s.input.View()

	// The transcript gets whatever height the status and input lines
	// leave over; older turns scroll off the top.
	reserved := 3
	avail := height - reserved
	if avail < 1 {
		avail = 1
	}
	lines := strings.Split(transcript, "\n")
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}
	transcript = strings.Join(lines, "\n")

	pad := avail - len(lines)
	if pad < 0 {
		pad = 0
	}

	return transcript + strings.Repeat("\n", pad+1) + statusLine + "\n" + inputLine
}

func (s *TutorScreen) renderTurn(b *strings.Builder, turn conversation.Turn, bubbleWidth int) {
	if turn.UserText != "" {
		b.WriteString("  " + theme.BubbleLabel.Render("You"))
		b.WriteString("\n")
		b.WriteString("  " + theme.LearnerBubble.Width(bubbleWidth).Render(turn.UserText))
		b.WriteString("\n")
	}

	label := "Tutor"
	if turn.Greeting {
		label = "Tutor says hi!"
	}

	switch turn.Status {
	case conversation.StatusPending:
		frame := thinkingFrames[s.tickCount%len(thinkingFrames)]
		b.WriteString("  " + theme.BubbleLabel.Render("Tutor is thinking "+frame))
		b.WriteString("\n")
	case conversation.StatusErrored:
		b.WriteString("  " + theme.BubbleLabel.Render(label))
		b.WriteString("\n")
		b.WriteString("  " + theme.TutorBubble.Width(bubbleWidth).BorderForeground(theme.Error).Render(turn.BotText))
		b.WriteString("\n")
	default:
		header := label
		if turn.LatencyMs > 0 {
			header += "  " + fmt.Sprintf("%.1fs", float64(turn.LatencyMs)/1000)
		}
		b.WriteString("  " + theme.BubbleLabel.Render(header))
		b.WriteString("\n")
		b.WriteString("  " + theme.TutorBubble.Width(bubbleWidth).Render(turn.BotText))
		b.WriteString("\n")
	}
}

func (s *TutorScreen) renderStatus() string {
	switch {
	case s.micErr != "":
		return "  " + theme.FieldError.Render(s.micErr)
	case s.voice.Listening():
		return "  " + lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("● listening") +
			theme.Hint.Render("  press Ctrl+R when you're done")
	case s.hint != "":
		return "  " + theme.Hint.Render(s.hint)
	case s.rated > 0:
		return "  " + lipgloss.NewStyle().Foreground(theme.Success).Render("Thanks for the thumbs up!")
	case s.rated < 0:
		return "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("Got it, we'll do better.")
	case s.player.Playing():
		return "  " + theme.Hint.Render("♪ speaking")
	}
	return ""
}
