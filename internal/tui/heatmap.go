package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CHARAN123567888880/SyntaxRush/internal/keystats"
)

var (
	keyNeutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	keyCorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#73D13D"))
	keyWrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	keyCurrentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#C89A3A")).
			Bold(true)
)

// renderHeatMap renders the frequency-ordered key row with one styled
// box per tracked key.
func renderHeatMap(tracker *keystats.Tracker, currentKey rune) string {
	var b strings.Builder
	for i, k := range keystats.Alphabet {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(keyStyleFor(tracker.State(k, currentKey)).Render(string(k)))
	}
	return b.String()
}

func keyStyleFor(state keystats.KeyState) lipgloss.Style {
	switch state {
	case keystats.StateCurrent:
		return keyCurrentStyle
	case keystats.StateCorrect:
		return keyCorrectStyle
	case keystats.StateWrong:
		return keyWrongStyle
	default:
		return keyNeutralStyle
	}
}
