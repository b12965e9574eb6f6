// Package boardui provides the Bubble Tea leaderboard interface.
package boardui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CHARAN123567888880/SyntaxRush/internal/leaderboard"
	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	boxStyle    = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// Model implements the Bubble Tea leaderboard UI.
type Model struct {
	board     *leaderboard.Store
	languages []model.Language
	active    int
	table     table.Model

	width  int
	height int
}

// NewModel constructs a leaderboard viewer starting on the given
// language when present.
func NewModel(board *leaderboard.Store, languages []model.Language, start model.Language) *Model {
	m := &Model{board: board, languages: languages}
	for i, lang := range languages {
		if lang == start {
			m.active = i
		}
	}
	m.rebuildTable()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "left", "h":
			m.switchLanguage(-1)
			return m, nil
		case "right", "l":
			m.switchLanguage(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.languages) == 0 {
		return "No leaderboard entries yet."
	}
	header := headerStyle.Render(fmt.Sprintf("Leaderboard — %s", m.languages[m.active]))
	footer := footerStyle.Render("←/→ language · q quit")
	content := header + "\n" + boxStyle.Render(m.table.View()) + "\n" + footer
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) switchLanguage(delta int) {
	if len(m.languages) == 0 {
		return
	}
	m.active = (m.active + delta + len(m.languages)) % len(m.languages)
	m.rebuildTable()
}

func (m *Model) rebuildTable() {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 7},
		{Title: "WPM", Width: 7},
		{Title: "Accuracy", Width: 9},
		{Title: "When", Width: 11},
	}
	var rows []table.Row
	if len(m.languages) > 0 {
		for i, e := range m.board.Leaderboard(m.languages[m.active]) {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				e.Username,
				fmt.Sprintf("%d", e.Score),
				fmt.Sprintf("%.1f", e.WPM),
				fmt.Sprintf("%.1f%%", e.Accuracy),
				time.UnixMilli(e.Timestamp).Format("2006-01-02"),
			})
		}
	}
	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(12),
		table.WithFocused(true),
	)
}
