// Package spawn schedules obstacle spawns and the track speed ramp.
package spawn

import "github.com/vovakirdan/railrunner/internal/config"

// Kind is an obstacle variant. Kinds share the same physics and differ only
// in dimensions and model.
type Kind int

const (
	Train Kind = iota
	Barrier
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Train:
		return "train"
	case Barrier:
		return "barrier"
	default:
		return "unknown"
	}
}

// Preset returns the dimension preset for the kind.
func (k Kind) Preset(cfg config.ObstaclesConfig) config.ObstaclePreset {
	if k == Train {
		return cfg.Train
	}
	return cfg.Barrier
}
