package history

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
)

const sparkChars = " .:-=+*#%@"

// RenderReport prints the full history report sized to the given width.
func RenderReport(w io.Writer, report Report, width int) error {
	if err := RenderSummary(w, report.Sessions); err != nil {
		return err
	}
	if len(report.Sessions) > 1 {
		values := make([]float64, len(report.Sessions))
		for i, s := range report.Sessions {
			values[i] = s.WPM
		}
		if _, err := fmt.Fprintln(w, "WPM trend"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, Sparkline(values, width)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, ""); err != nil {
			return err
		}
	}
	if err := RenderKeyTable(w, report.Keys); err != nil {
		return err
	}
	return renderWeakKeys(w, report.Keys)
}

// RenderSummary prints aggregate numbers for stored sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalWPM, totalAcc, totalMinutes float64
	bestWPM := 0.0
	bestScore := 0
	for _, s := range sessions {
		totalWPM += s.WPM
		totalAcc += s.Accuracy
		totalMinutes += float64(s.DurationMs) / 60000.0
		if s.WPM > bestWPM {
			bestWPM = s.WPM
		}
		if s.Score > bestScore {
			bestScore = s.Score
		}
	}
	count := float64(len(sessions))
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sessions: %d\n", len(sessions)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %.2f\n", totalWPM/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %.2f\n", bestWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.2f%%\n", totalAcc/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best Score: %d\n", bestScore); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Minutes Practiced: %.1f\n", totalMinutes); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderKeyTable prints per-key aggregates sorted by lowest accuracy.
func RenderKeyTable(w io.Writer, aggs []model.KeyAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No key stats found.")
		return err
	}
	type row struct {
		key      string
		acc      float64
		topSpeed float64
		correct  int
		wrong    int
	}
	rows := make([]row, 0, len(aggs))
	for _, agg := range aggs {
		total := agg.Correct + agg.Wrong
		acc := 0.0
		if total > 0 {
			acc = float64(agg.Correct) / float64(total)
		}
		rows = append(rows, row{
			key:      agg.Key,
			acc:      acc,
			topSpeed: agg.TopSpeed,
			correct:  agg.Correct,
			wrong:    agg.Wrong,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].acc == rows[j].acc {
			return rows[i].key < rows[j].key
		}
		return rows[i].acc < rows[j].acc
	})

	if _, err := fmt.Fprintln(w, "Per-Key (Recent Sessions)"); err != nil {
		return err
	}

	headers := []string{"Key", "Accuracy", "Top Speed", "Correct", "Wrong"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			r.key,
			fmt.Sprintf("%.2f%%", r.acc*100),
			fmt.Sprintf("%.1fwpm", r.topSpeed),
			fmt.Sprintf("%d", r.correct),
			fmt.Sprintf("%d", r.wrong),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	lines := formatTable(headers, tableRows, rightAlign)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

func renderWeakKeys(w io.Writer, aggs []model.KeyAggregate) error {
	weak := WeakKeys(aggs, 5)
	if len(weak) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "Keys to practice: %s\n", strings.Join(weak, " "))
	return err
}

// WeakKeys selects the lowest-accuracy keys from aggregates.
func WeakKeys(aggs []model.KeyAggregate, top int) []string {
	if len(aggs) == 0 || top <= 0 {
		return nil
	}
	candidates := make([]model.KeyAggregate, len(aggs))
	copy(candidates, aggs)
	sort.Slice(candidates, func(i, j int) bool {
		ai := keyAccuracy(candidates[i])
		aj := keyAccuracy(candidates[j])
		if ai == aj {
			return candidates[i].Key < candidates[j].Key
		}
		return ai < aj
	})
	if top > len(candidates) {
		top = len(candidates)
	}
	out := make([]string, 0, top)
	for i := 0; i < top; i++ {
		out = append(out, candidates[i].Key)
	}
	return out
}

func keyAccuracy(agg model.KeyAggregate) float64 {
	total := agg.Correct + agg.Wrong
	if total == 0 {
		return 1.0
	}
	return float64(agg.Correct) / float64(total)
}

// Sparkline renders a single-line ASCII sparkline, resampled to fit the
// given width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}
	if width > 0 && len(values) > width {
		values = resample(values, width)
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

func resample(values []float64, width int) []float64 {
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		out[i] = values[int(math.Round(pos))]
	}
	return out
}
