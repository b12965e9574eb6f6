package tui

import (
	"strings"
	"testing"
)

func plainRunes(text string) []styledRune {
	out := make([]styledRune, 0, len(text))
	for _, r := range text {
		out = append(out, styledRune{s: string(r), width: 1, isBreak: r == '\n'})
	}
	return out
}

func TestBuildStyledRunesMarksNewlineAndTab(t *testing.T) {
	runes := buildStyledRunes([]rune("a\n\tb"), nil, 0)
	if len(runes) != 4 {
		t.Fatalf("expected 4 styled runes, got %d", len(runes))
	}
	if !strings.Contains(runes[1].s, "↵") {
		t.Fatalf("newline must render as return mark, got %q", runes[1].s)
	}
	if !runes[1].isBreak {
		t.Fatalf("newline must force a line break")
	}
	if !strings.Contains(runes[2].s, "→") {
		t.Fatalf("tab must render as arrow, got %q", runes[2].s)
	}
	if runes[2].isBreak {
		t.Fatalf("tab must not force a line break")
	}
}

func TestBuildStyledRunesMarksMistypedSpace(t *testing.T) {
	runes := buildStyledRunes([]rune("a b"), []rune("axb"), 3)
	if !strings.Contains(runes[1].s, "•") {
		t.Fatalf("mistyped space must render as bullet, got %q", runes[1].s)
	}
	// Correctly typed space keeps its glyph.
	runes = buildStyledRunes([]rune("a b"), []rune("a b"), 3)
	if strings.Contains(runes[1].s, "•") {
		t.Fatalf("correct space must not render as bullet, got %q", runes[1].s)
	}
}

func TestWrapBreaksAtNewlines(t *testing.T) {
	got := wrapStyledRunes(plainRunes("ab\ncd"), 80)
	if got != "ab\n\ncd" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapHardWrapsLongLines(t *testing.T) {
	got := wrapStyledRunes(plainRunes("abcdef"), 4)
	if got != "abcd\nef" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapZeroWidthNeverWraps(t *testing.T) {
	got := wrapStyledRunes(plainRunes("abcdef"), 0)
	if got != "abcdef" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}
