// Package input merges discrete keys and analog sticks into a single
// horizontal movement intent.
package input

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/railrunner/internal/core"
)

// Default aggregation parameters.
const (
	DefaultDeadZone   = 0.1
	DefaultStickScale = 3
	DefaultKeySpeed   = 2
)

// State is one tick's worth of input.
// Sticks read zero when no analog device is present.
type State struct {
	Left, Right bool
	Crawl       bool
	Jump        bool // Edge-triggered: true only on the tick the press happened
	LeftStick   mgl32.Vec2
	RightStick  mgl32.Vec2
}

// Source is polled once per tick for the current input state.
type Source interface {
	Poll() State
}

// Aggregator converts an input State to a horizontal velocity intent.
type Aggregator struct {
	DeadZone   float32
	StickScale float32
	KeySpeed   float32
}

// NewAggregator creates an aggregator with the default parameters.
func NewAggregator() Aggregator {
	return Aggregator{
		DeadZone:   DefaultDeadZone,
		StickScale: DefaultStickScale,
		KeySpeed:   DefaultKeySpeed,
	}
}

// Aggregate applies the default aggregator to s.
func Aggregate(s State) float32 {
	return NewAggregator().Intent(s)
}

// Intent returns the x-velocity intent for s.
// The left stick wins over the right stick, and sticks win over keys.
// With both keys held, right wins.
func (a Aggregator) Intent(s State) float32 {
	if core.AbsF32(s.LeftStick.X()) > a.DeadZone {
		return s.LeftStick.X() * a.StickScale
	}
	if core.AbsF32(s.RightStick.X()) > a.DeadZone {
		return s.RightStick.X() * a.StickScale
	}

	var x float32
	if s.Left {
		x = -a.KeySpeed
	}
	if s.Right {
		x = a.KeySpeed
	}
	return x
}

// Static is a Source that always returns the same state.
// Used by the headless runner and tests.
type Static State

// Poll implements Source.
func (s Static) Poll() State {
	return State(s)
}

// Script is a Source that replays a fixed sequence of states, then returns
// the zero state.
type Script struct {
	frames []State
	pos    int
}

// NewScript creates a scripted source.
func NewScript(frames ...State) *Script {
	return &Script{frames: frames}
}

// Poll implements Source.
func (s *Script) Poll() State {
	if s.pos >= len(s.frames) {
		return State{}
	}
	st := s.frames[s.pos]
	s.pos++
	return st
}

// Autopilot is a Source that jumps every JumpEvery ticks and alternates
// between steering left and right every SwayEvery ticks. A zero period
// disables that behavior.
type Autopilot struct {
	JumpEvery int
	SwayEvery int
	tick      int
}

// Poll implements Source.
func (a *Autopilot) Poll() State {
	a.tick++
	var s State
	if a.JumpEvery > 0 && a.tick%a.JumpEvery == 0 {
		s.Jump = true
	}
	if a.SwayEvery > 0 {
		if (a.tick/a.SwayEvery)%2 == 0 {
			s.Left = true
		} else {
			s.Right = true
		}
	}
	return s
}
