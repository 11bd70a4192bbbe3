package anim

// DefaultCrossFade is the cross-fade duration in seconds.
const DefaultCrossFade = 0.1

// Action is the playback state of one clip in the mixer.
type Action struct {
	Weight float64 // Current blend weight, 0 to 1
	Time   float64 // Clip clock in seconds
	target float64
}

// Selector holds the current animation state and blends clips between
// state switches.
type Selector struct {
	current   State
	crossFade float64
	actions   [len(clipNames)]Action
	clips     map[State]bool
}

// NewSelector creates a selector in the Idle state.
// A non-positive crossFade switches clips instantly.
func NewSelector(crossFade float64) *Selector {
	s := &Selector{
		crossFade: crossFade,
		clips:     make(map[State]bool),
	}
	s.Reset()
	return s
}

// Current returns the current state.
func (s *Selector) Current() State {
	return s.current
}

// Reset forces Idle with full weight and rewinds every clip.
// Clip registrations are kept.
func (s *Selector) Reset() {
	for i := range s.actions {
		s.actions[i] = Action{}
	}
	s.current = Idle
	s.actions[Idle] = Action{Weight: 1, target: 1}
}

// Request switches to state unless it is already current or contradicts the
// vertical motion. Airborne, only the pose matching the sign of velY is
// accepted; at the apex both Jump and Fall are.
func (s *Selector) Request(state State, onGround bool, velY float32) bool {
	if state == s.current || state < 0 || int(state) >= len(s.actions) {
		return false
	}

	if !onGround {
		switch {
		case !state.Airborne():
			return false
		case velY > 0 && state != Jump:
			return false
		case velY < 0 && state != Fall:
			return false
		}
	}

	s.actions[s.current].target = 0

	s.current = state
	s.actions[state].target = 1
	s.actions[state].Time = 0
	if s.crossFade <= 0 {
		s.snap()
	} else {
		s.actions[state].Weight = 0
	}
	return true
}

// Advance moves the clip clocks and fade weights forward by dt seconds.
func (s *Selector) Advance(dt float64) {
	if dt <= 0 {
		return
	}

	if s.crossFade <= 0 {
		s.snap()
	}

	step := dt / s.crossFade
	for i := range s.actions {
		a := &s.actions[i]
		if a.Weight > 0 || a.target > 0 {
			a.Time += dt
		}
		switch {
		case a.Weight < a.target:
			a.Weight = min(a.Weight+step, a.target)
		case a.Weight > a.target:
			a.Weight = max(a.Weight-step, a.target)
		}
	}
}

// snap applies the target weights immediately.
func (s *Selector) snap() {
	for i := range s.actions {
		s.actions[i].Weight = s.actions[i].target
	}
}

// Fading reports whether a cross-fade is in progress.
func (s *Selector) Fading() bool {
	for _, a := range s.actions {
		if a.Weight != a.target {
			return true
		}
	}
	return false
}

// Action returns the mixer state of a clip.
func (s *Selector) Action(state State) Action {
	if state < 0 || int(state) >= len(s.actions) {
		return Action{}
	}
	return s.actions[state]
}

// RegisterClip marks a clip as loaded. Unknown clip names are ignored and
// reported as false.
func (s *Selector) RegisterClip(name string) bool {
	state, ok := StateForClip(name)
	if !ok {
		return false
	}
	s.clips[state] = true
	return true
}

// Registered reports whether the clip for state has been loaded.
func (s *Selector) Registered(state State) bool {
	return s.clips[state]
}

// Weights returns the blend weights of the registered clips that currently
// contribute to the pose.
func (s *Selector) Weights() map[State]float64 {
	w := make(map[State]float64)
	for state := range s.clips {
		if a := s.actions[state]; a.Weight > 0 {
			w[state] = a.Weight
		}
	}
	return w
}
