package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/railrunner/internal/leaderboard"
)

// Scoreboard renders the leaderboard as a table.
type Scoreboard struct {
	entries []leaderboard.Entry
	table   table.Model
	width   int
	height  int
}

// NewScoreboard creates a scoreboard sized for a width x height area.
func NewScoreboard(width, height int) Scoreboard {
	s := Scoreboard{width: width, height: height}
	s.table = s.createTable()
	return s
}

// createTable creates a new table with appropriate columns.
func (s *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(min(leaderboard.MaxEntries+1, max(s.height-8, 3))),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return t
}

// SetEntries replaces the displayed entries.
func (s *Scoreboard) SetEntries(entries []leaderboard.Entry) {
	s.entries = entries
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.Date,
		}
	}
	s.table.SetRows(rows)
	s.table.GotoTop()
}

// Entries returns the displayed entries.
func (s *Scoreboard) Entries() []leaderboard.Entry {
	return s.entries
}

// Resize adapts the table to a new area.
func (s *Scoreboard) Resize(width, height int) {
	s.width = width
	s.height = height
	s.table = s.createTable()
	s.SetEntries(s.entries)
}

// Scroll passes up/down keys to the table.
func (s *Scoreboard) Scroll(msg tea.KeyMsg) {
	km := s.table.KeyMap
	if key.Matches(msg, km.LineUp, km.LineDown) {
		s.table, _ = s.table.Update(msg)
	}
}

// View renders the scoreboard centered in its area.
func (s Scoreboard) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("HIGH SCORES"))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(s.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No scores recorded yet.\nFinish a run to set a high score!")))
	} else {
		b.WriteString(tableStyle.Render(s.table.View()))
	}

	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, b.String())
}

// RenderScores formats entries as plain text for the command line.
func RenderScores(entries []leaderboard.Entry) string {
	if len(entries) == 0 {
		return "No scores recorded yet.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(&b, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, e := range entries {
		fmt.Fprintf(&b, "  %-4d  %-10d  %s\n", i+1, e.Score, e.Date)
	}
	return b.String()
}
