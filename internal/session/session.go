// Package session tracks a single typing challenge.
package session

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/CHARAN123567888880/SyntaxRush/internal/catalog"
	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
)

// ErrUnknownLanguage is returned when a challenge is started for a
// language absent from the catalog.
var ErrUnknownLanguage = errors.New("unknown language")

// minElapsed is the elapsed-time floor used for speed computations so a
// challenge that just started never divides by zero.
const minElapsed = time.Second

// Progress reports accuracy and speed for the current typed text.
type Progress struct {
	Accuracy float64
	WPM      float64
}

// Challenge holds the state of one typing challenge.
type Challenge struct {
	Language  model.Language
	Snippet   model.Snippet
	Expected  string
	Typed     string
	StartedAt time.Time

	now func() time.Time
	rnd *rand.Rand
}

// New returns an idle challenge using the wall clock.
func New() *Challenge {
	return NewWithClock(time.Now)
}

// NewWithClock returns an idle challenge with an injected clock.
func NewWithClock(now func() time.Time) *Challenge {
	return &Challenge{
		now: now,
		rnd: rand.New(rand.NewSource(now().UnixNano())),
	}
}

// Start picks a uniformly random snippet for the language and records
// the start time. State is untouched when the language is unknown.
func (c *Challenge) Start(cat *catalog.Catalog, lang model.Language) (*model.Snippet, error) {
	snippets, ok := cat.Snippets(lang)
	if !ok || len(snippets) == 0 {
		return nil, ErrUnknownLanguage
	}
	snippet := snippets[c.rnd.Intn(len(snippets))]
	c.StartSnippet(lang, snippet)
	return &snippet, nil
}

// StartSnippet begins a challenge on a specific snippet, used for
// uploaded files and generated snippets.
func (c *Challenge) StartSnippet(lang model.Language, snippet model.Snippet) {
	c.Language = lang
	c.Snippet = snippet
	c.Expected = snippet.Code
	c.Typed = ""
	c.StartedAt = c.now()
}

// RecordInput replaces the typed text and reports progress.
func (c *Challenge) RecordInput(typed string) Progress {
	c.Typed = typed
	return Progress{
		Accuracy: c.accuracy(),
		WPM:      c.wpm(),
	}
}

// accuracy counts matching positions over the overlapping prefix but
// divides by the full expected length, so an unfinished attempt shows
// less than 100% even with no mistakes.
func (c *Challenge) accuracy() float64 {
	expected := []rune(c.Expected)
	typed := []rune(c.Typed)
	if len(expected) == 0 {
		return 100
	}
	limit := len(expected)
	if len(typed) < limit {
		limit = len(typed)
	}
	correct := 0
	for i := 0; i < limit; i++ {
		if expected[i] == typed[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(expected)) * 100
}

func (c *Challenge) wpm() float64 {
	elapsed := c.now().Sub(c.StartedAt)
	return math.Round(GrossWPM(len([]rune(c.Typed)), elapsed))
}

// GrossWPM computes words per minute from a character count, clamping
// elapsed time to a one-second minimum.
func GrossWPM(chars int, elapsed time.Duration) float64 {
	if elapsed < minElapsed {
		elapsed = minElapsed
	}
	minutes := elapsed.Minutes()
	return (float64(chars) / 5.0) / minutes
}
