// Package driver runs the challenge state machine.
package driver

import (
	"context"
	"math"
	"time"
	"unicode"

	"github.com/CHARAN123567888880/SyntaxRush/internal/catalog"
	"github.com/CHARAN123567888880/SyntaxRush/internal/keystats"
	"github.com/CHARAN123567888880/SyntaxRush/internal/leaderboard"
	"github.com/CHARAN123567888880/SyntaxRush/internal/metrics"
	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
	"github.com/CHARAN123567888880/SyntaxRush/internal/session"
)

// State is the driver's lifecycle state.
type State int

// Driver states. Reset returns to Idle from any state.
const (
	StateIdle State = iota
	StateActive
)

// Recorder persists completed sessions. The SQLite store satisfies it.
type Recorder interface {
	InsertSession(ctx context.Context, record model.SessionRecord, keys []model.KeySessionStats) (int64, error)
}

// Driver owns one challenge at a time and reacts to two inbound
// messages: Keystroke and Tick. All methods run on a single logical
// thread; the event loop serializes calls.
type Driver struct {
	catalog   *catalog.Catalog
	challenge *session.Challenge
	keys      *keystats.Tracker
	presenter *metrics.Presenter
	now       func() time.Time

	state             State
	totalKeystrokes   int
	correctKeystrokes int
	streak            int
	lastTypedKey      rune

	view metrics.View
}

// New returns an idle driver using the wall clock.
func New(cat *catalog.Catalog, presenter *metrics.Presenter) *Driver {
	return NewWithClock(cat, presenter, time.Now)
}

// NewWithClock returns an idle driver with an injected clock.
func NewWithClock(cat *catalog.Catalog, presenter *metrics.Presenter, now func() time.Time) *Driver {
	return &Driver{
		catalog:   cat,
		challenge: session.NewWithClock(now),
		keys:      keystats.NewTracker(),
		presenter: presenter,
		now:       now,
	}
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// View returns the most recently published metrics view.
func (d *Driver) View() metrics.View {
	return d.view
}

// Challenge exposes the active challenge for rendering.
func (d *Driver) Challenge() *session.Challenge {
	return d.challenge
}

// Keys exposes the per-key tracker for heat-map rendering.
func (d *Driver) Keys() *keystats.Tracker {
	return d.keys
}

// Streak returns the current run of consecutive correct keystrokes.
func (d *Driver) Streak() int {
	return d.streak
}

// Start picks a random snippet for the language, clears every counter,
// and publishes the initial zeroed metrics. An unknown language leaves
// the driver state untouched.
func (d *Driver) Start(lang model.Language) (*model.Snippet, error) {
	snippet, err := d.challenge.Start(d.catalog, lang)
	if err != nil {
		return nil, err
	}
	d.begin()
	return snippet, nil
}

// StartSnippet begins a challenge on a caller-supplied snippet
// (uploaded file or generated code).
func (d *Driver) StartSnippet(lang model.Language, snippet model.Snippet) {
	d.challenge.StartSnippet(lang, snippet)
	d.begin()
}

func (d *Driver) begin() {
	d.state = StateActive
	d.totalKeystrokes = 0
	d.correctKeystrokes = 0
	d.streak = 0
	d.lastTypedKey = 0
	d.keys.Reset()
	d.publish(0, 0)
}

// Keystroke classifies one typed key against the expected text at the
// given cursor offset. Keys outside the tracked alphabet leave all
// counters and the streak unchanged. Ignored when Idle.
func (d *Driver) Keystroke(key rune, offset int) {
	if d.state != StateActive {
		return
	}
	if !d.keys.Contains(key) {
		return
	}
	d.lastTypedKey = unicode.ToUpper(key)

	correct := d.isExpectedAt(key, offset)
	if correct {
		d.correctKeystrokes++
		d.streak++
	} else {
		d.streak = 0
	}
	d.totalKeystrokes++

	elapsed := d.now().Sub(d.challenge.StartedAt)
	wpm := session.GrossWPM(d.totalKeystrokes, elapsed)
	d.keys.Record(key, correct, wpm)
	d.publish(wpm, elapsed.Minutes())
}

// Tick recomputes the metrics from accumulated totals and republishes
// them with the most recently typed key. Ignored when Idle, so no
// updates fire after Reset.
func (d *Driver) Tick() {
	if d.state != StateActive {
		return
	}
	elapsed := d.now().Sub(d.challenge.StartedAt)
	wpm := session.GrossWPM(d.totalKeystrokes, elapsed)
	d.publish(wpm, elapsed.Minutes())
}

// Reset returns to Idle from any state and publishes the zero view.
func (d *Driver) Reset() {
	d.state = StateIdle
	d.streak = 0
	d.lastTypedKey = 0
	d.view = d.presenter.Update(metrics.Sample{Accuracy: 100})
}

// Finish submits the current result to the leaderboard and records the
// session history. It is an explicit capability: no state transition
// triggers it automatically.
func (d *Driver) Finish(ctx context.Context, username string, board *leaderboard.Store, rec Recorder) error {
	endedAt := d.now()
	elapsed := endedAt.Sub(d.challenge.StartedAt)
	wpm := session.GrossWPM(d.totalKeystrokes, elapsed)
	accuracy := d.instantAccuracy()
	score := d.score(accuracy)

	if board != nil {
		if err := board.AddScore(username, d.challenge.Language, score, wpm, accuracy); err != nil {
			return err
		}
	}
	if rec != nil {
		record := model.SessionRecord{
			StartedAt:  d.challenge.StartedAt,
			EndedAt:    endedAt,
			Language:   d.challenge.Language,
			Title:      d.challenge.Snippet.Title,
			Correct:    d.correctKeystrokes,
			Total:      d.totalKeystrokes,
			WPM:        wpm,
			Accuracy:   accuracy,
			Score:      score,
			DurationMs: elapsed.Milliseconds(),
		}
		if _, err := rec.InsertSession(ctx, record, d.keys.Snapshot()); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) isExpectedAt(key rune, offset int) bool {
	expected := []rune(d.challenge.Expected)
	if offset < 0 || offset >= len(expected) {
		return false
	}
	return unicode.ToUpper(expected[offset]) == unicode.ToUpper(key)
}

// instantAccuracy is correct/total over classified keystrokes,
// defaulting to 100 before any keystroke.
func (d *Driver) instantAccuracy() float64 {
	if d.totalKeystrokes == 0 {
		return 100
	}
	return float64(d.correctKeystrokes) / float64(d.totalKeystrokes) * 100
}

func (d *Driver) score(accuracy float64) int {
	return int(math.Round(float64(d.correctKeystrokes) * accuracy / 100))
}

func (d *Driver) publish(wpm, minutes float64) {
	accuracy := d.instantAccuracy()
	d.view = d.presenter.Update(metrics.Sample{
		WPM:              wpm,
		Accuracy:         accuracy,
		Score:            d.score(accuracy),
		CurrentKey:       d.lastTypedKey,
		Streak:           d.streak,
		TopSpeed:         d.keys.TopSpeed(),
		MinutesPracticed: minutes,
	})
}
