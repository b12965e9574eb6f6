// Package keystats tracks per-key accuracy and speed.
package keystats

import (
	"unicode"

	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
)

// Alphabet lists the tracked keys, English letters ordered by frequency.
const Alphabet = "ENIARLTOSUDYCGHPMKBWFVZXQJ"

// KeyState classifies a key for heat-map rendering.
type KeyState int

// Heat-map states, in precedence order.
const (
	StateNeutral KeyState = iota
	StateWrong
	StateCorrect
	StateCurrent
)

// KeyStat holds counters for a single tracked key.
type KeyStat struct {
	Correct   int
	Wrong     int
	LastSpeed float64
	TopSpeed  float64
}

// Tracker accumulates per-key stats for one session.
type Tracker struct {
	keys     map[rune]*KeyStat
	topSpeed float64
}

// NewTracker returns a tracker with zeroed stats for the alphabet.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.Reset()
	return t
}

// Reset zeroes all per-key counters and the session top speed.
func (t *Tracker) Reset() {
	t.keys = make(map[rune]*KeyStat, len(Alphabet))
	for _, k := range Alphabet {
		t.keys[k] = &KeyStat{}
	}
	t.topSpeed = 0
}

// Contains reports whether the key belongs to the tracked alphabet.
// Comparison is case-insensitive.
func (t *Tracker) Contains(key rune) bool {
	_, ok := t.keys[unicode.ToUpper(key)]
	return ok
}

// Record registers a classified keystroke and the instantaneous WPM at
// the time it was typed. Top speeds never decrease within a session.
func (t *Tracker) Record(key rune, correct bool, instWPM float64) {
	stat, ok := t.keys[unicode.ToUpper(key)]
	if !ok {
		return
	}
	if correct {
		stat.Correct++
	} else {
		stat.Wrong++
	}
	stat.LastSpeed = instWPM
	if instWPM > stat.TopSpeed {
		stat.TopSpeed = instWPM
	}
	if instWPM > t.topSpeed {
		t.topSpeed = instWPM
	}
}

// Stat returns a copy of the counters for a tracked key.
func (t *Tracker) Stat(key rune) (KeyStat, bool) {
	stat, ok := t.keys[unicode.ToUpper(key)]
	if !ok {
		return KeyStat{}, false
	}
	return *stat, true
}

// TopSpeed returns the session-wide top speed.
func (t *Tracker) TopSpeed() float64 {
	return t.topSpeed
}

// State classifies a key for display: current beats correct-ever beats
// wrong-ever beats neutral.
func (t *Tracker) State(key, currentKey rune) KeyState {
	k := unicode.ToUpper(key)
	stat, ok := t.keys[k]
	if !ok {
		return StateNeutral
	}
	switch {
	case k == unicode.ToUpper(currentKey) && currentKey != 0:
		return StateCurrent
	case stat.Correct > 0:
		return StateCorrect
	case stat.Wrong > 0:
		return StateWrong
	default:
		return StateNeutral
	}
}

// Snapshot returns per-key rows for keys that saw any keystroke, in
// alphabet order.
func (t *Tracker) Snapshot() []model.KeySessionStats {
	var out []model.KeySessionStats
	for _, k := range Alphabet {
		stat := t.keys[k]
		if stat.Correct == 0 && stat.Wrong == 0 {
			continue
		}
		out = append(out, model.KeySessionStats{
			Key:      string(k),
			Correct:  stat.Correct,
			Wrong:    stat.Wrong,
			TopSpeed: stat.TopSpeed,
		})
	}
	return out
}
