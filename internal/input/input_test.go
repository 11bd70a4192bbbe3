package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected float32
	}{
		{"no input", State{}, 0},
		{"left key", State{Left: true}, -2},
		{"right key", State{Right: true}, 2},
		{"both keys right wins", State{Left: true, Right: true}, 2},
		{"left stick", State{LeftStick: mgl32.Vec2{0.5, 0}}, 1.5},
		{"left stick negative", State{LeftStick: mgl32.Vec2{-1, 0}}, -3},
		{"left stick beats keys", State{Left: true, LeftStick: mgl32.Vec2{0.5, 0}}, 1.5},
		{"left stick beats right stick", State{LeftStick: mgl32.Vec2{-0.5, 0}, RightStick: mgl32.Vec2{1, 0}}, -1.5},
		{"right stick when left idle", State{RightStick: mgl32.Vec2{0.5, 0}}, 1.5},
		{"dead zone falls back to keys", State{Left: true, LeftStick: mgl32.Vec2{0.1, 0}, RightStick: mgl32.Vec2{-0.05, 0}}, -2},
		{"stick y ignored", State{LeftStick: mgl32.Vec2{0, 1}}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Aggregate(tc.state); got != tc.expected {
				t.Errorf("Aggregate() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAggregatorCustomScale(t *testing.T) {
	a := Aggregator{DeadZone: 0.2, StickScale: 10, KeySpeed: 4}

	if got := a.Intent(State{LeftStick: mgl32.Vec2{0.15, 0}, Right: true}); got != 4 {
		t.Errorf("Intent() = %v, expected 4 below custom dead zone", got)
	}
	if got := a.Intent(State{LeftStick: mgl32.Vec2{0.5, 0}}); got != 5 {
		t.Errorf("Intent() = %v, expected 5", got)
	}
}

func TestEdge(t *testing.T) {
	var e Edge
	sequence := []struct {
		down, pressed bool
	}{
		{false, false},
		{true, true},
		{true, false},
		{true, false},
		{false, false},
		{true, true},
	}

	for i, step := range sequence {
		if got := e.Update(step.down); got != step.pressed {
			t.Errorf("step %d: Update(%v) = %v, expected %v", i, step.down, got, step.pressed)
		}
	}

	e.Reset()
	if !e.Update(true) {
		t.Error("press after Reset should register")
	}
}

func TestScript(t *testing.T) {
	s := NewScript(State{Jump: true}, State{Left: true})

	if !s.Poll().Jump {
		t.Error("first poll should jump")
	}
	if !s.Poll().Left {
		t.Error("second poll should hold left")
	}
	if s.Poll() != (State{}) {
		t.Error("exhausted script should return zero state")
	}

	var src Source = Static(State{Crawl: true})
	if !src.Poll().Crawl {
		t.Error("static source should repeat its state")
	}
}

func TestAutopilot(t *testing.T) {
	a := &Autopilot{JumpEvery: 3, SwayEvery: 2}

	var jumps, lefts, rights int
	for i := 0; i < 12; i++ {
		s := a.Poll()
		if s.Jump {
			jumps++
		}
		if s.Left {
			lefts++
		}
		if s.Right {
			rights++
		}
		if s.Left && s.Right {
			t.Fatalf("tick %d: both directions held", i+1)
		}
	}

	if jumps != 4 {
		t.Errorf("jumps = %d, expected 4", jumps)
	}
	if lefts+rights != 12 || lefts == 0 || rights == 0 {
		t.Errorf("lefts = %d, rights = %d, expected both directions every tick", lefts, rights)
	}
}

func TestAutopilotDisabled(t *testing.T) {
	a := &Autopilot{}
	for i := 0; i < 5; i++ {
		if s := a.Poll(); s != (State{}) {
			t.Fatalf("Poll() = %+v, expected zero state", s)
		}
	}
}
