// Package session tracks the run lifecycle and the frame score.
package session

import "fmt"

// State is the session lifecycle state.
type State int

const (
	Idle State = iota
	Running
	Paused
	GameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// GameOverHook is notified once per run when the run ends.
type GameOverHook func(score uint64)

// Machine is the session state machine. It owns the score and frame
// counters; the score is the number of frames survived while running.
type Machine struct {
	state  State
	score  uint64
	frames uint64
	hooks  []GameOverHook
}

// New creates a machine in the Idle state.
func New() *Machine {
	return &Machine{}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Score returns the current score.
func (m *Machine) Score() uint64 {
	return m.score
}

// Frames returns the number of frames advanced in this run.
func (m *Machine) Frames() uint64 {
	return m.frames
}

// Running reports whether ticks should advance the simulation.
func (m *Machine) Running() bool {
	return m.state == Running
}

// OnGameOver registers a hook. Hooks run in registration order.
func (m *Machine) OnGameOver(h GameOverHook) {
	m.hooks = append(m.hooks, h)
}

// Start moves Idle to Running. Reports whether the state changed.
func (m *Machine) Start() bool {
	if m.state != Idle {
		return false
	}
	m.state = Running
	return true
}

// TogglePause flips between Running and Paused. Other states are left
// alone.
func (m *Machine) TogglePause() bool {
	switch m.state {
	case Running:
		m.state = Paused
	case Paused:
		m.state = Running
	default:
		return false
	}
	return true
}

// Advance counts one frame. Only valid while running.
func (m *Machine) Advance() {
	if m.state != Running {
		return
	}
	m.frames++
	m.score++
}

// End moves Running to GameOver and fires the hooks with the final score.
func (m *Machine) End() bool {
	if m.state != Running {
		return false
	}
	m.state = GameOver
	for _, h := range m.hooks {
		h(m.score)
	}
	return true
}

// Reset clears the counters and returns to Idle from any state.
func (m *Machine) Reset() {
	m.state = Idle
	m.score = 0
	m.frames = 0
}

// Restart resets and starts a new run.
func (m *Machine) Restart() {
	m.Reset()
	m.Start()
}
