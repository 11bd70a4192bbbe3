package config

import (
	_ "embed"
)

//go:embed defaults/railrunner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			Gravity:     -0.25,
			JumpSpeed:   6,
			MaxDelta:    0.05,
			GracePeriod: 1,
		},
		Player: PlayerConfig{
			Width:         20,
			Height:        25,
			Depth:         10,
			StartX:        0,
			StartY:        12.5,
			StartZ:        100,
			StartVelY:     -0.01,
			EdgeMargin:    15,
			Model:         "models/player.yaml",
			StickScale:    3,
			KeySpeed:      2,
			StickDeadZone: 0.1,
		},
		Track: TrackConfig{
			Width:           300,
			Length:          3000,
			GroundY:         -5,
			GroundHeight:    5,
			Lanes:           3,
			Origin:          0,
			SpawnDistance:   1000,
			DespawnDistance: 400,
			ScrollScale:     10,
			Model:           "models/track.yaml",
		},
		Spawn: SpawnConfig{
			Enabled:         true,
			InitialInterval: 150,
			IntervalStep:    2,
			MinInterval:     50,
			Jitter:          5,
			TrainChance:     0.5,
		},
		Obstacles: ObstaclesConfig{
			Train: ObstaclePreset{
				Width:  80,
				Height: 90,
				Depth:  600,
				SpawnY: 45,
				Model:  "models/train.yaml",
			},
			Barrier: ObstaclePreset{
				Width:  70,
				Height: 10,
				Depth:  5,
				SpawnY: 25,
				Model:  "models/barrier.yaml",
			},
		},
		Animation: AnimationConfig{
			CrossFade: 0.1,
			Threshold: 0.1,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
			Loop:    true,
		},
		Difficulty: DifficultyConfig{
			Preset:        string(DifficultyNormal),
			InitialSpeed:  10,
			SpeedStep:     0.3,
			RampEvery:     1000,
			SpeedRamp:     true,
			IntervalDecay: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
