// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	isBreak bool
}

// buildStyledRunes styles each target rune against the typed input.
// Newlines become visible return marks and force line breaks so code
// snippets keep their shape.
func buildStyledRunes(targetRunes, inputRunes []rune, cursorIndex int) []styledRune {
	out := make([]styledRune, 0, len(targetRunes))
	for i, target := range targetRunes {
		displayed := target
		if target == '\n' {
			displayed = '↵'
		} else if target == '\t' {
			displayed = '→'
		}
		style := pendingStyle
		if i < len(inputRunes) {
			switch {
			case target == ' ' && inputRunes[i] != ' ':
				displayed = '•'
				style = incorrectStyle
			case inputRunes[i] == target:
				style = correctStyle
			default:
				style = incorrectStyle
			}
		}
		if i == cursorIndex && i >= len(inputRunes) {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isBreak: target == '\n',
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks at target newlines and hard-wraps lines that
// exceed the width.
func wrapStyledRunes(runes []styledRune, width int) string {
	var out strings.Builder
	lineWidth := 0
	for _, item := range runes {
		if item.isBreak {
			out.WriteString(item.s)
			out.WriteRune('\n')
			lineWidth = 0
			continue
		}
		if width > 0 && lineWidth+item.width > width && lineWidth > 0 {
			out.WriteRune('\n')
			lineWidth = 0
		}
		out.WriteString(item.s)
		lineWidth += item.width
	}
	return out.String()
}
