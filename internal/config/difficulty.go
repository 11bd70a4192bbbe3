package config

import "strings"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// presetValues holds the starting spawn interval and track speed of a preset.
type presetValues struct {
	interval uint32
	speed    float32
}

var presets = map[DifficultyPreset]presetValues{
	DifficultyEasy:   {interval: 180, speed: 8},
	DifficultyNormal: {interval: 150, speed: 10},
	DifficultyHard:   {interval: 120, speed: 12},
	DifficultyFixed:  {interval: 150, speed: 10},
}

// ParsePreset converts a CLI value to a preset. Empty or unknown values
// return ok == false, meaning the config file decides.
func ParsePreset(s string) (DifficultyPreset, bool) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	_, ok := presets[p]
	return p, ok
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	v, ok := presets[preset]
	if !ok {
		return
	}

	cfg.Difficulty.Preset = string(preset)
	cfg.Spawn.InitialInterval = v.interval
	cfg.Difficulty.InitialSpeed = v.speed

	if IsFixedPreset(preset) {
		cfg.Difficulty.SpeedRamp = false
		cfg.Difficulty.IntervalDecay = false
	} else {
		cfg.Difficulty.SpeedRamp = true
		cfg.Difficulty.IntervalDecay = true
	}
}
