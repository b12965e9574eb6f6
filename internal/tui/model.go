// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CHARAN123567888880/SyntaxRush/internal/driver"
	"github.com/CHARAN123567888880/SyntaxRush/internal/leaderboard"
	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
)

const goalBarWidth = 20

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	metricStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	positiveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#73D13D"))
	negativeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	goalBarFilled  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

type tickMsg time.Time

// Model implements the Bubble Tea typing UI around the session driver.
type Model struct {
	cfg      model.PlayConfig
	driver   *driver.Driver
	board    *leaderboard.Store
	recorder driver.Recorder

	width  int
	height int

	targetRunes []rune
	inputRunes  []rune

	finished  bool
	submitted bool
	statusMsg string
}

// NewModel constructs the typing UI over an already-started driver.
func NewModel(cfg model.PlayConfig, drv *driver.Driver, board *leaderboard.Store, recorder driver.Recorder) *Model {
	return &Model{
		cfg:         cfg,
		driver:      drv,
		board:       board,
		recorder:    recorder,
		targetRunes: []rune(drv.Challenge().Expected),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.driver.State() == driver.StateActive {
			m.driver.Tick()
		}
		return m, tickCmd()
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.reset()
			return m, nil
		case tea.KeyBackspace, tea.KeyDelete:
			m.handleBackspace()
			return m, nil
		case tea.KeyEnter:
			if m.finished && !m.submitted {
				m.submit()
				return m, nil
			}
			m.handleRunes([]rune{'\n'})
			return m, nil
		case tea.KeyTab:
			m.handleRunes([]rune{'\t'})
			return m, nil
		case tea.KeySpace:
			m.handleRunes([]rune{' '})
			return m, nil
		case tea.KeyRunes:
			m.handleRunes(msg.Runes)
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.targetRunes) == 0 {
		return ""
	}
	cursorIndex := -1
	if len(m.inputRunes) < len(m.targetRunes) {
		cursorIndex = len(m.inputRunes)
	}
	styledRunes := buildStyledRunes(m.targetRunes, m.inputRunes, cursorIndex)

	contentWidth := m.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	sections := []string{
		titleStyle.Render(fmt.Sprintf("%s — %s", m.driver.Challenge().Snippet.Title, m.driver.Challenge().Language)),
		"",
		wrapStyledRunes(styledRunes, contentWidth),
		"",
		m.renderMetrics(),
		renderHeatMap(m.driver.Keys(), m.driver.View().CurrentKey),
		"",
		m.renderFooter(),
	}
	content := strings.Join(sections, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) handleBackspace() {
	if len(m.inputRunes) == 0 || m.finished {
		return
	}
	m.inputRunes = m.inputRunes[:len(m.inputRunes)-1]
}

func (m *Model) handleRunes(runes []rune) {
	if m.driver.State() != driver.StateActive || m.finished {
		return
	}
	for _, r := range runes {
		if len(m.inputRunes) >= len(m.targetRunes) {
			return
		}
		pos := len(m.inputRunes)
		m.inputRunes = append(m.inputRunes, r)
		m.driver.Keystroke(r, pos)
		m.driver.Challenge().RecordInput(string(m.inputRunes))
		if len(m.inputRunes) == len(m.targetRunes) {
			m.finished = true
			m.statusMsg = "Challenge complete — enter submits your score"
		}
	}
}

// reset abandons the attempt and restarts the same snippet fresh.
func (m *Model) reset() {
	m.driver.Reset()
	challenge := m.driver.Challenge()
	m.driver.StartSnippet(challenge.Language, challenge.Snippet)
	m.inputRunes = nil
	m.finished = false
	m.submitted = false
	m.statusMsg = ""
}

func (m *Model) submit() {
	if err := m.driver.Finish(context.Background(), m.cfg.Username, m.board, m.recorder); err != nil {
		logErrf("failed to submit score: %v\n", err)
		m.statusMsg = "Could not save your score."
		return
	}
	m.submitted = true
	m.statusMsg = fmt.Sprintf("Score saved for %s.", m.cfg.Username)
}

func (m *Model) renderMetrics() string {
	v := m.driver.View()

	line1 := fmt.Sprintf("WPM %.0f %s  Accuracy %.1f%% %s  Score %d %s",
		v.WPM, styleDelta(v.WPMDelta),
		v.Accuracy, styleDelta(v.AccuracyDelta),
		v.Score, styleDelta(v.ScoreDelta))
	line2 := fmt.Sprintf("Last %s  Top %s  Learning %s", v.LastSpeed, v.TopSpeed, v.LearningRate)
	line3 := fmt.Sprintf("Streak: %s", v.StreakText)
	line4 := fmt.Sprintf("Daily goal: %d%%/%.0f minutes %s", v.GoalPercent, v.GoalMinutes, renderGoalBar(v.GoalBarPercent))

	return metricStyle.Render(line1) + "\n" +
		metricStyle.Render(line2) + "\n" +
		metricStyle.Render(line3) + "\n" +
		metricStyle.Render(line4) + "\n"
}

func styleDelta(delta string) string {
	if delta == "" {
		return ""
	}
	if strings.HasPrefix(delta, "(+") {
		return positiveStyle.Render(delta)
	}
	return negativeStyle.Render(delta)
}

func renderGoalBar(percent float64) string {
	filled := int(percent / 100 * goalBarWidth)
	if filled > goalBarWidth {
		filled = goalBarWidth
	}
	bar := goalBarFilled.Render(strings.Repeat("█", filled)) + strings.Repeat("░", goalBarWidth-filled)
	return "[" + bar + "]"
}

func (m *Model) renderFooter() string {
	if m.statusMsg != "" {
		return footerStyle.Render(m.statusMsg)
	}
	progress := 0
	if len(m.targetRunes) > 0 {
		progress = int(float64(len(m.inputRunes)) / float64(len(m.targetRunes)) * 100)
	}
	return footerStyle.Render(fmt.Sprintf("Progress %d%%  esc reset · ctrl+c quit", progress))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
