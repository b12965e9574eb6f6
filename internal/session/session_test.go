package session

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/CHARAN123567888880/SyntaxRush/internal/catalog"
	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
)

func fixedClock(at *time.Time) func() time.Time {
	return func() time.Time { return *at }
}

func startedChallenge(t *testing.T, at *time.Time, expected string) *Challenge {
	t.Helper()
	c := NewWithClock(fixedClock(at))
	c.StartSnippet(model.LangJavaScript, model.Snippet{Title: "t", Code: expected, Language: model.LangJavaScript})
	return c
}

func TestStartUnknownLanguage(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewWithClock(fixedClock(&now))
	_, err := c.Start(catalog.New(), model.Language("rust"))
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
	if c.Expected != "" || !c.StartedAt.IsZero() {
		t.Fatalf("failed start must not change state")
	}
}

func TestStartPicksFromCatalog(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewWithClock(fixedClock(&now))
	snippet, err := c.Start(catalog.New(), model.LangPython)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if snippet.Language != model.LangPython {
		t.Fatalf("unexpected language: %s", snippet.Language)
	}
	if c.Expected != snippet.Code {
		t.Fatalf("expected text not set from snippet")
	}
	if !c.StartedAt.Equal(now) {
		t.Fatalf("start time not recorded")
	}
}

func TestAccuracyOverFullExpectedLength(t *testing.T) {
	now := time.Unix(0, 0)
	c := startedChallenge(t, &now, "abcd")

	p := c.RecordInput("ab")
	if math.Abs(p.Accuracy-50) > 1e-9 {
		t.Fatalf("expected 50%% accuracy for half-typed text, got %f", p.Accuracy)
	}

	p = c.RecordInput("abcd")
	if p.Accuracy != 100 {
		t.Fatalf("expected 100%% accuracy for exact match, got %f", p.Accuracy)
	}
}

func TestAccuracyCountsOnlyMatchingPositions(t *testing.T) {
	now := time.Unix(0, 0)
	c := startedChallenge(t, &now, "abcd")
	p := c.RecordInput("axcd")
	if math.Abs(p.Accuracy-75) > 1e-9 {
		t.Fatalf("expected 75%% accuracy, got %f", p.Accuracy)
	}
}

func TestAccuracyEmptyExpected(t *testing.T) {
	now := time.Unix(0, 0)
	c := startedChallenge(t, &now, "")
	if p := c.RecordInput("anything"); p.Accuracy != 100 {
		t.Fatalf("empty expected text must clamp accuracy to 100, got %f", p.Accuracy)
	}
}

func TestWPMClampsZeroElapsed(t *testing.T) {
	now := time.Unix(0, 0)
	c := startedChallenge(t, &now, "abcdefghij")
	// No time has passed: elapsed clamps to one second.
	p := c.RecordInput("abcde")
	want := math.Round((5.0 / 5.0) / (1.0 / 60.0))
	if p.WPM != want {
		t.Fatalf("expected wpm %f, got %f", want, p.WPM)
	}
}

func TestWPMAfterOneMinute(t *testing.T) {
	now := time.Unix(0, 0)
	c := startedChallenge(t, &now, "abcdefghij")
	now = now.Add(time.Minute)
	p := c.RecordInput("abcdefghij")
	if p.WPM != 2 {
		t.Fatalf("expected 2 wpm for 10 chars in a minute, got %f", p.WPM)
	}
}

func TestGrossWPMNeverNegative(t *testing.T) {
	if got := GrossWPM(0, 0); got != 0 {
		t.Fatalf("expected 0 wpm for no typing, got %f", got)
	}
	if got := GrossWPM(25, 30*time.Second); got != 10 {
		t.Fatalf("expected 10 wpm, got %f", got)
	}
}
