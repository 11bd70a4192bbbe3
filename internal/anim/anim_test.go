package anim

import (
	"math"
	"math/rand"
	"testing"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		onGround bool
		velY     float32
		xIntent  float32
		crawl    bool
		expected State
	}{
		{"rising", false, 5, 0, false, Jump},
		{"falling", false, -1, 2, false, Fall},
		{"apex counts as falling", false, 0, 0, false, Fall},
		{"airborne ignores crawl", false, 3, 0, true, Jump},
		{"crawl overrides side", true, 0, -2, true, Crawl},
		{"left", true, 0, -2, false, Left},
		{"right", true, 0, 2, false, Right},
		{"small intent is forward", true, 0, 0.1, false, Forward},
		{"no intent", true, 0, 0, false, Forward},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Select(tc.onGround, tc.velY, tc.xIntent, tc.crawl); got != tc.expected {
				t.Errorf("Select() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestStateClips(t *testing.T) {
	expected := map[State]string{
		Idle:    "Alto",
		Forward: "Adelante",
		Left:    "Izquierdo",
		Right:   "Derecho",
		Jump:    "Saltar",
		Fall:    "Caer",
		Crawl:   "Arrastre",
	}
	for state, clip := range expected {
		if got := state.Clip(); got != clip {
			t.Errorf("%v.Clip() = %q, expected %q", state, got, clip)
		}
		if got, ok := StateForClip(clip); !ok || got != state {
			t.Errorf("StateForClip(%q) = (%v, %v), expected %v", clip, got, ok, state)
		}
	}
	if _, ok := StateForClip("Bailar"); ok {
		t.Error("unknown clip should not resolve")
	}
	if State(42).String() != "unknown" {
		t.Error("out of range state should stringify as unknown")
	}
}

func TestSelectorRequest(t *testing.T) {
	tests := []struct {
		name     string
		from     State
		to       State
		onGround bool
		velY     float32
		accepted bool
	}{
		{"same state is a no-op", Forward, Forward, true, 0, false},
		{"grounded switch", Forward, Left, true, 0, true},
		{"no forward while airborne", Jump, Forward, false, 3, false},
		{"jump while rising", Forward, Jump, false, 3, true},
		{"no fall while rising", Jump, Fall, false, 3, false},
		{"fall while falling", Jump, Fall, false, -1, true},
		{"no jump while falling", Fall, Jump, false, -1, false},
		{"apex allows fall", Jump, Fall, false, 0, true},
		{"apex allows jump", Fall, Jump, false, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSelector(DefaultCrossFade)
			if tc.from != Idle && !s.Request(tc.from, true, 0) {
				t.Fatalf("setup: cannot enter %v", tc.from)
			}

			if got := s.Request(tc.to, tc.onGround, tc.velY); got != tc.accepted {
				t.Errorf("Request(%v) = %v, expected %v", tc.to, got, tc.accepted)
			}
			want := tc.from
			if tc.accepted {
				want = tc.to
			}
			if s.Current() != want {
				t.Errorf("Current() = %v, expected %v", s.Current(), want)
			}
		})
	}
}

func TestSelectorCrossFade(t *testing.T) {
	s := NewSelector(0.1)
	s.Advance(0.5)

	if !s.Request(Forward, true, 0) {
		t.Fatal("Request(Forward) rejected")
	}
	if a := s.Action(Forward); a.Weight != 0 || a.Time != 0 {
		t.Errorf("incoming action = %+v, expected weight 0 and time 0", a)
	}
	if !s.Fading() {
		t.Error("cross-fade should be in progress")
	}

	s.Advance(0.05)
	in, out := s.Action(Forward), s.Action(Idle)
	if math.Abs(in.Weight-0.5) > 1e-9 || math.Abs(out.Weight-0.5) > 1e-9 {
		t.Errorf("mid-fade weights in=%v out=%v, expected 0.5 each", in.Weight, out.Weight)
	}

	s.Advance(0.1)
	if s.Action(Forward).Weight != 1 || s.Action(Idle).Weight != 0 {
		t.Errorf("fade did not complete: in=%v out=%v", s.Action(Forward).Weight, s.Action(Idle).Weight)
	}
	if s.Fading() {
		t.Error("cross-fade should be finished")
	}
	if got := s.Action(Forward).Time; math.Abs(got-0.15) > 1e-9 {
		t.Errorf("incoming clip time = %v, expected 0.15", got)
	}
}

func TestSelectorInstantSwitch(t *testing.T) {
	s := NewSelector(0)
	s.Request(Right, true, 0)

	if s.Action(Right).Weight != 1 || s.Action(Idle).Weight != 0 {
		t.Error("zero cross-fade should switch weights instantly")
	}
}

func TestSelectorReset(t *testing.T) {
	s := NewSelector(DefaultCrossFade)
	s.RegisterClip("Saltar")
	s.Request(Jump, false, 4)
	s.Advance(1)

	s.Reset()

	if s.Current() != Idle {
		t.Errorf("Current() = %v after Reset, expected idle", s.Current())
	}
	if s.Action(Idle).Weight != 1 || s.Action(Jump).Weight != 0 {
		t.Error("Reset should give Idle full weight")
	}
	if !s.Registered(Jump) {
		t.Error("Reset should keep clip registrations")
	}
}

func TestSelectorWeightsOnlyRegistered(t *testing.T) {
	s := NewSelector(DefaultCrossFade)

	// Switching is logical even before the clip arrives
	if !s.Request(Forward, true, 0) {
		t.Fatal("Request(Forward) rejected with unregistered clip")
	}
	s.Advance(1)
	if len(s.Weights()) != 0 {
		t.Errorf("Weights() = %v, expected none before registration", s.Weights())
	}

	if !s.RegisterClip("Adelante") {
		t.Fatal("RegisterClip(Adelante) failed")
	}
	if s.RegisterClip("Bailar") {
		t.Error("unknown clip should not register")
	}
	w := s.Weights()
	if len(w) != 1 || w[Forward] != 1 {
		t.Errorf("Weights() = %v, expected forward only", w)
	}
}

func TestSelectorExclusivity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSelector(DefaultCrossFade)

	for i := 0; i < 2000; i++ {
		state := States[rng.Intn(len(States))]
		onGround := rng.Intn(2) == 0
		velY := float32(rng.Intn(3) - 1)
		s.Request(state, onGround, velY)
		s.Advance(1.0 / 60)

		targets := 0
		for _, st := range States {
			if s.actions[st].target == 1 {
				targets++
			}
		}
		if targets != 1 || s.actions[s.Current()].target != 1 {
			t.Fatalf("tick %d: %d states targeted, current %v", i, targets, s.Current())
		}
	}
}
