// Package metrics derives and formats the numbers shown next to the
// typing area.
package metrics

import (
	"fmt"
	"math"
)

// learningRate is a static placeholder, not a computed trend.
const learningRate = 0.1

// Snapshot is the previous sample used for delta computation.
type Snapshot struct {
	WPM      float64
	Accuracy float64
	Score    int
}

// Sample carries the values published by the session driver.
type Sample struct {
	WPM              float64
	Accuracy         float64
	Score            int
	CurrentKey       rune
	Streak           int
	TopSpeed         float64
	MinutesPracticed float64
}

// View holds display-ready metric strings and values.
type View struct {
	WPM      float64
	Accuracy float64
	Score    int

	WPMDelta      string
	AccuracyDelta string
	ScoreDelta    string

	LastSpeed    string
	TopSpeed     string
	LearningRate string
	StreakText   string

	// GoalPercent is the raw rounded percentage, GoalBarPercent is
	// capped at 100 for the progress bar width.
	GoalPercent    int
	GoalBarPercent float64
	GoalMinutes    float64

	CurrentKey rune
}

// Presenter owns the last-sample snapshot and the daily goal.
type Presenter struct {
	goalMinutes float64
	last        Snapshot
}

// NewPresenter returns a presenter with the initial snapshot of
// 0 wpm, 100% accuracy, 0 score.
func NewPresenter(goalMinutes float64) *Presenter {
	return &Presenter{
		goalMinutes: goalMinutes,
		last:        Snapshot{Accuracy: 100},
	}
}

// Update derives deltas against the previous sample, formats the view,
// and overwrites the stored snapshot.
func (p *Presenter) Update(s Sample) View {
	v := View{
		WPM:            s.WPM,
		Accuracy:       s.Accuracy,
		Score:          s.Score,
		WPMDelta:       formatDelta(s.WPM - p.last.WPM),
		AccuracyDelta:  formatDelta(s.Accuracy - p.last.Accuracy),
		ScoreDelta:     formatDelta(float64(s.Score - p.last.Score)),
		LastSpeed:      fmt.Sprintf("%.1fwpm", p.last.WPM),
		TopSpeed:       fmt.Sprintf("%.1fwpm", s.TopSpeed),
		LearningRate:   fmt.Sprintf("+%.1fwpm/lesson", learningRate),
		StreakText:     streakText(s.Streak),
		GoalPercent:    goalPercent(s.MinutesPracticed, p.goalMinutes),
		GoalBarPercent: goalBarPercent(s.MinutesPracticed, p.goalMinutes),
		GoalMinutes:    p.goalMinutes,
		CurrentKey:     s.CurrentKey,
	}
	p.last = Snapshot{WPM: s.WPM, Accuracy: s.Accuracy, Score: s.Score}
	return v
}

// Last returns the stored snapshot.
func (p *Presenter) Last() Snapshot {
	return p.last
}

// formatDelta renders "(+1.2)" or "(-1.2)"; zero deltas are blank.
func formatDelta(delta float64) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("(+%.1f)", delta)
	case delta < 0:
		return fmt.Sprintf("(%.1f)", delta)
	default:
		return ""
	}
}

func streakText(streak int) string {
	if streak > 0 {
		return fmt.Sprintf("%d correct", streak)
	}
	return "No accuracy streaks."
}

func goalPercent(minutes, goal float64) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(minutes / goal * 100))
}

func goalBarPercent(minutes, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(100, minutes/goal*100)
}
