package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/railrunner/internal/input"
)

// DefaultHoldTicks is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats but never releases.
const DefaultHoldTicks = 8

// Command is a discrete session command.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandStart
	CommandPause
	CommandRestart
	CommandLeaderboard
	CommandScreenshot
)

// Control is a movement key.
type Control int

const (
	ControlNone Control = iota
	ControlLeft
	ControlRight
	ControlJump
	ControlCrawl
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Jump        key.Binding
	Crawl       key.Binding
	Start       key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Leaderboard key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Crawl, k.Start, k.Pause, k.Restart, k.Leaderboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Crawl},
		{k.Start, k.Pause, k.Restart, k.Leaderboard},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "space", "w", "up"),
			key.WithHelp("space", "jump"),
		),
		Crawl: key.NewBinding(
			key.WithKeys("c", "down"),
			key.WithHelp("c", "crawl"),
		),
		Start: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Map translates a key message to either a command or a control.
func (k KeyMap) Map(msg tea.KeyMsg) (Command, Control) {
	switch {
	case key.Matches(msg, k.Quit):
		return CommandQuit, ControlNone
	case key.Matches(msg, k.Screenshot):
		return CommandScreenshot, ControlNone
	case key.Matches(msg, k.Start):
		return CommandStart, ControlNone
	case key.Matches(msg, k.Pause):
		return CommandPause, ControlNone
	case key.Matches(msg, k.Restart):
		return CommandRestart, ControlNone
	case key.Matches(msg, k.Leaderboard):
		return CommandLeaderboard, ControlNone
	case key.Matches(msg, k.Left):
		return CommandNone, ControlLeft
	case key.Matches(msg, k.Right):
		return CommandNone, ControlRight
	case key.Matches(msg, k.Jump):
		return CommandNone, ControlJump
	case key.Matches(msg, k.Crawl):
		return CommandNone, ControlCrawl
	}
	return CommandNone, ControlNone
}

// HeldKeys turns key presses into a held-key input.Source. A control
// stays down for holdTicks polls after its last press; jump is reported
// once per hold.
type HeldKeys struct {
	holdTicks int
	left      int
	right     int
	crawl     int
	jump      int
	jumpEdge  input.Edge
}

// NewHeldKeys creates a source with the given hold window.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HeldKeys{holdTicks: holdTicks}
}

// Press records a key press.
func (h *HeldKeys) Press(c Control) {
	switch c {
	case ControlLeft:
		h.left = h.holdTicks
		h.right = 0
	case ControlRight:
		h.right = h.holdTicks
		h.left = 0
	case ControlJump:
		h.jump = h.holdTicks
	case ControlCrawl:
		h.crawl = h.holdTicks
	}
}

// Poll returns the held state and ages every hold by one tick.
func (h *HeldKeys) Poll() input.State {
	s := input.State{
		Left:  h.left > 0,
		Right: h.right > 0,
		Crawl: h.crawl > 0,
		Jump:  h.jumpEdge.Update(h.jump > 0),
	}
	h.left = max(h.left-1, 0)
	h.right = max(h.right-1, 0)
	h.crawl = max(h.crawl-1, 0)
	h.jump = max(h.jump-1, 0)
	return s
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	h.left, h.right, h.crawl, h.jump = 0, 0, 0, 0
	h.jumpEdge.Reset()
}

var _ input.Source = (*HeldKeys)(nil)
