// Package anim selects the player's animation state from physics and input
// and cross-fades between animation clips.
package anim

// State is one of the player's animation poses.
type State int

const (
	Idle State = iota
	Forward
	Left
	Right
	Jump
	Fall
	Crawl
)

// States lists every state in declaration order.
var States = []State{Idle, Forward, Left, Right, Jump, Fall, Crawl}

// DefaultThreshold is the minimum |xIntent| that selects a side pose.
const DefaultThreshold = 0.1

var stateNames = [...]string{"idle", "forward", "left", "right", "jump", "fall", "crawl"}

// clipNames are the clip names used by the player model.
var clipNames = [...]string{"Alto", "Adelante", "Izquierdo", "Derecho", "Saltar", "Caer", "Arrastre"}

// String returns the lowercase state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Clip returns the clip name that animates this state.
func (s State) Clip() string {
	if s < 0 || int(s) >= len(clipNames) {
		return ""
	}
	return clipNames[s]
}

// Airborne reports whether the state is allowed while off the ground.
func (s State) Airborne() bool {
	return s == Jump || s == Fall
}

// StateForClip looks up the state animated by a clip name.
func StateForClip(name string) (State, bool) {
	for i, c := range clipNames {
		if c == name {
			return State(i), true
		}
	}
	return Idle, false
}

// Select picks the pose for the current physics and input state.
func Select(onGround bool, velY, xIntent float32, crawl bool) State {
	return SelectWithThreshold(onGround, velY, xIntent, crawl, DefaultThreshold)
}

// SelectWithThreshold is Select with a custom side-pose threshold.
func SelectWithThreshold(onGround bool, velY, xIntent float32, crawl bool, threshold float32) State {
	if !onGround {
		if velY > 0 {
			return Jump
		}
		return Fall
	}

	switch {
	case crawl:
		return Crawl
	case xIntent < -threshold:
		return Left
	case xIntent > threshold:
		return Right
	default:
		return Forward
	}
}
