// Package config provides YAML/TOML configuration loading and difficulty
// presets for the rail runner.
package config

import (
	"fmt"
	"math"
)

// RunnerConfig contains every tunable of the simulation.
type RunnerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Track      TrackConfig      `yaml:"track" toml:"track"`
	Spawn      SpawnConfig      `yaml:"spawn" toml:"spawn"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles" toml:"obstacles"`
	Animation  AnimationConfig  `yaml:"animation" toml:"animation"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PhysicsConfig defines integration parameters.
type PhysicsConfig struct {
	Gravity     float32 `yaml:"gravity" toml:"gravity"`           // Added to velocity.y every tick (negative)
	JumpSpeed   float32 `yaml:"jump_speed" toml:"jump_speed"`     // Launch velocity.y
	MaxDelta    float64 `yaml:"max_delta" toml:"max_delta"`       // Frame delta clamp in seconds
	GracePeriod float64 `yaml:"grace_period" toml:"grace_period"` // Seconds without steering or spawning
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	Width         float32 `yaml:"width" toml:"width"`
	Height        float32 `yaml:"height" toml:"height"`
	Depth         float32 `yaml:"depth" toml:"depth"`
	StartX        float32 `yaml:"start_x" toml:"start_x"`
	StartY        float32 `yaml:"start_y" toml:"start_y"`
	StartZ        float32 `yaml:"start_z" toml:"start_z"`
	StartVelY     float32 `yaml:"start_vel_y" toml:"start_vel_y"`
	EdgeMargin    float32 `yaml:"edge_margin" toml:"edge_margin"` // Extra distance kept from the track edge
	Model         string  `yaml:"model" toml:"model"`
	StickScale    float32 `yaml:"stick_scale" toml:"stick_scale"` // Analog intent multiplier
	KeySpeed      float32 `yaml:"key_speed" toml:"key_speed"`     // Discrete intent magnitude
	StickDeadZone float32 `yaml:"stick_dead_zone" toml:"stick_dead_zone"`
}

// TrackConfig defines the ground slab and lane layout.
type TrackConfig struct {
	Width           float32 `yaml:"width" toml:"width"`
	Length          float32 `yaml:"length" toml:"length"`
	GroundY         float32 `yaml:"ground_y" toml:"ground_y"`
	GroundHeight    float32 `yaml:"ground_height" toml:"ground_height"`
	Lanes           int     `yaml:"lanes" toml:"lanes"`
	Origin          float32 `yaml:"origin" toml:"origin"`
	SpawnDistance   float32 `yaml:"spawn_distance" toml:"spawn_distance"`
	DespawnDistance float32 `yaml:"despawn_distance" toml:"despawn_distance"`
	ScrollScale     float32 `yaml:"scroll_scale" toml:"scroll_scale"`
	Model           string  `yaml:"model" toml:"model"`
}

// SpawnConfig defines obstacle spawning.
type SpawnConfig struct {
	Enabled         bool    `yaml:"enabled" toml:"enabled"`
	InitialInterval uint32  `yaml:"initial_interval" toml:"initial_interval"`
	IntervalStep    uint32  `yaml:"interval_step" toml:"interval_step"`
	MinInterval     uint32  `yaml:"min_interval" toml:"min_interval"`
	Jitter          float32 `yaml:"jitter" toml:"jitter"`             // Total width of the random x offset
	TrainChance     float64 `yaml:"train_chance" toml:"train_chance"` // Probability threshold for trains
}

// ObstaclePreset defines the fixed dimensions of one obstacle kind.
type ObstaclePreset struct {
	Width  float32 `yaml:"width" toml:"width"`
	Height float32 `yaml:"height" toml:"height"`
	Depth  float32 `yaml:"depth" toml:"depth"`
	SpawnY float32 `yaml:"spawn_y" toml:"spawn_y"`
	Model  string  `yaml:"model" toml:"model"`
}

// ObstaclesConfig holds the per-kind presets.
type ObstaclesConfig struct {
	Train   ObstaclePreset `yaml:"train" toml:"train"`
	Barrier ObstaclePreset `yaml:"barrier" toml:"barrier"`
}

// AnimationConfig defines the pose selector parameters.
type AnimationConfig struct {
	CrossFade float64 `yaml:"cross_fade" toml:"cross_fade"` // Seconds
	Threshold float32 `yaml:"threshold" toml:"threshold"`   // Minimum |xIntent| for a side pose
}

// AudioConfig defines background music.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Volume  float32 `yaml:"volume" toml:"volume"` // 0.0 to 1.0
	Loop    bool    `yaml:"loop" toml:"loop"`
	Music   string  `yaml:"music" toml:"music"` // Optional MP3 path, synthesized loop when empty
}

// DifficultyConfig defines track speed and spawn ramping.
type DifficultyConfig struct {
	Preset        string  `yaml:"preset" toml:"preset"`
	InitialSpeed  float32 `yaml:"initial_speed" toml:"initial_speed"`
	SpeedStep     float32 `yaml:"speed_step" toml:"speed_step"`
	RampEvery     uint64  `yaml:"ramp_every" toml:"ramp_every"` // Frames between speed increases
	SpeedRamp     bool    `yaml:"speed_ramp" toml:"speed_ramp"`
	IntervalDecay bool    `yaml:"interval_decay" toml:"interval_decay"`
}

// Validate rejects values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Physics.Gravity >= 0:
		return fmt.Errorf("config: physics.gravity must be negative, got %v", c.Physics.Gravity)
	case math.IsNaN(c.Physics.MaxDelta) || c.Physics.MaxDelta <= 0:
		return fmt.Errorf("config: physics.max_delta must be positive, got %v", c.Physics.MaxDelta)
	case c.Difficulty.SpeedStep < 0:
		return fmt.Errorf("config: difficulty.speed_step must not be negative, got %v", c.Difficulty.SpeedStep)
	case c.Spawn.MinInterval > c.Spawn.InitialInterval:
		return fmt.Errorf("config: spawn.min_interval %d exceeds initial_interval %d",
			c.Spawn.MinInterval, c.Spawn.InitialInterval)
	case c.Track.Lanes < 1:
		return fmt.Errorf("config: track.lanes must be at least 1, got %d", c.Track.Lanes)
	}
	return nil
}
