package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/railrunner/internal/config"
)

func menuUpdate(t *testing.T, m DifficultyModel, msg tea.Msg) (DifficultyModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(DifficultyModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return dm, cmd
}

func TestDifficultyMenuSelect(t *testing.T) {
	m := NewDifficultyModel(config.DifficultyNormal, 80, 24)

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Error("select should quit the menu program")
	}
	if got := m.Selected(); got == nil || *got != config.DifficultyHard {
		t.Errorf("Selected() = %v, expected hard", got)
	}
}

func TestDifficultyMenuCursorBounds(t *testing.T) {
	m := NewDifficultyModel(config.DifficultyEasy, 80, 24)

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}

	for i := 0; i < 10; i++ {
		m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(difficultyOptions)-1 {
		t.Errorf("cursor = %d, expected last option", m.cursor)
	}
}

func TestDifficultyMenuQuit(t *testing.T) {
	m := NewDifficultyModel(config.DifficultyNormal, 80, 24)
	m, _ = menuUpdate(t, m, runeKey('q'))

	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("q should quit without a selection")
	}
}

func TestDifficultyMenuView(t *testing.T) {
	m := NewDifficultyModel(config.DifficultyHard, 80, 24)
	view := m.View()

	if !strings.Contains(view, "> Hard") {
		t.Errorf("cursor not on the initial preset:\n%s", view)
	}
}
