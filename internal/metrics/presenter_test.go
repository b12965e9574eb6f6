package metrics

import "testing"

func TestUpdateDeltas(t *testing.T) {
	p := NewPresenter(30)

	v := p.Update(Sample{WPM: 10, Accuracy: 100, Score: 5})
	if v.WPMDelta != "(+10.0)" {
		t.Fatalf("unexpected wpm delta: %q", v.WPMDelta)
	}
	if v.AccuracyDelta != "" {
		t.Fatalf("zero delta must be blank, got %q", v.AccuracyDelta)
	}

	v = p.Update(Sample{WPM: 8, Accuracy: 90, Score: 5})
	if v.WPMDelta != "(-2.0)" {
		t.Fatalf("unexpected wpm delta: %q", v.WPMDelta)
	}
	if v.AccuracyDelta != "(-10.0)" {
		t.Fatalf("unexpected accuracy delta: %q", v.AccuracyDelta)
	}
	if v.ScoreDelta != "" {
		t.Fatalf("unchanged score delta must be blank, got %q", v.ScoreDelta)
	}
}

func TestLastSpeedIsPreviousSample(t *testing.T) {
	p := NewPresenter(30)
	p.Update(Sample{WPM: 42.5, Accuracy: 100})
	v := p.Update(Sample{WPM: 50, Accuracy: 100})
	if v.LastSpeed != "42.5wpm" {
		t.Fatalf("expected last speed from previous sample, got %q", v.LastSpeed)
	}
	if v.TopSpeed != "0.0wpm" {
		t.Fatalf("expected top speed from sample, got %q", v.TopSpeed)
	}
}

func TestStreakText(t *testing.T) {
	p := NewPresenter(30)
	if v := p.Update(Sample{Streak: 7}); v.StreakText != "7 correct" {
		t.Fatalf("unexpected streak text: %q", v.StreakText)
	}
	if v := p.Update(Sample{Streak: 0}); v.StreakText != "No accuracy streaks." {
		t.Fatalf("unexpected streak text: %q", v.StreakText)
	}
}

func TestGoalPercentCappedAndRaw(t *testing.T) {
	p := NewPresenter(30)
	v := p.Update(Sample{MinutesPracticed: 45})
	if v.GoalPercent != 150 {
		t.Fatalf("raw goal percent must be uncapped, got %d", v.GoalPercent)
	}
	if v.GoalBarPercent != 100 {
		t.Fatalf("goal bar percent must cap at 100, got %f", v.GoalBarPercent)
	}

	v = p.Update(Sample{MinutesPracticed: 3})
	if v.GoalPercent != 10 {
		t.Fatalf("expected 10%%, got %d", v.GoalPercent)
	}
	if v.GoalBarPercent != 10 {
		t.Fatalf("expected 10%% bar, got %f", v.GoalBarPercent)
	}
}

func TestLearningRateIsStatic(t *testing.T) {
	p := NewPresenter(30)
	v := p.Update(Sample{})
	if v.LearningRate != "+0.1wpm/lesson" {
		t.Fatalf("unexpected learning rate label: %q", v.LearningRate)
	}
}

func TestSnapshotOverwritten(t *testing.T) {
	p := NewPresenter(30)
	p.Update(Sample{WPM: 10, Accuracy: 80, Score: 3})
	last := p.Last()
	if last.WPM != 10 || last.Accuracy != 80 || last.Score != 3 {
		t.Fatalf("snapshot not overwritten: %+v", last)
	}
}
