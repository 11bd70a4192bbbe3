package spawn

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/railrunner/internal/config"
)

// Spawn describes an obstacle the scheduler wants created.
type Spawn struct {
	Kind     Kind
	Lane     int
	Position mgl32.Vec3
	Velocity mgl32.Vec3
}

// Scheduler owns the spawn interval, the track speed and the spawn RNG.
// Within a session the interval never grows and the speed never shrinks.
type Scheduler struct {
	spawn      config.SpawnConfig
	track      config.TrackConfig
	obstacles  config.ObstaclesConfig
	difficulty config.DifficultyConfig

	interval uint32
	speed    float32
	rng      *rand.Rand
}

// NewScheduler creates a scheduler from cfg seeded with seed.
func NewScheduler(cfg config.RunnerConfig, seed int64) *Scheduler {
	s := &Scheduler{
		spawn:      cfg.Spawn,
		track:      cfg.Track,
		obstacles:  cfg.Obstacles,
		difficulty: cfg.Difficulty,
	}
	if s.track.Lanes < 1 {
		s.track.Lanes = 1
	}
	if s.spawn.InitialInterval == 0 {
		s.spawn.InitialInterval = 1
	}
	s.Reset(seed)
	return s
}

// Reset restores the initial interval and speed and reseeds the RNG.
func (s *Scheduler) Reset(seed int64) {
	s.interval = s.spawn.InitialInterval
	s.speed = s.difficulty.InitialSpeed
	s.rng = rand.New(rand.NewSource(seed))
}

// Interval returns the current spawn interval in frames.
func (s *Scheduler) Interval() uint32 {
	return s.interval
}

// Speed returns the current track speed.
func (s *Scheduler) Speed() float32 {
	return s.speed
}

// SetSpeed overrides the track speed. Lower values than the current speed
// are ignored.
func (s *Scheduler) SetSpeed(speed float32) {
	if speed > s.speed {
		s.speed = speed
	}
}

// RampSpeed increases the track speed on every RampEvery-th frame.
// A non-positive step never changes the speed. Reports whether the speed
// changed.
func (s *Scheduler) RampSpeed(frames uint64) bool {
	if !s.difficulty.SpeedRamp || s.difficulty.RampEvery == 0 || frames == 0 {
		return false
	}
	if s.difficulty.SpeedStep <= 0 {
		return false
	}
	if frames%s.difficulty.RampEvery != 0 {
		return false
	}
	s.speed += s.difficulty.SpeedStep
	return true
}

// Tick evaluates the spawn trigger for the given frame count. It must only
// be called once the grace period is over.
func (s *Scheduler) Tick(frames uint64) (Spawn, bool) {
	if !s.spawn.Enabled || frames == 0 || frames%uint64(s.interval) != 0 {
		return Spawn{}, false
	}

	floor := max(s.spawn.MinInterval, 1)
	if s.difficulty.IntervalDecay && s.interval > floor {
		s.interval -= min(s.spawn.IntervalStep, s.interval-floor)
	}

	lane := s.rng.Intn(s.track.Lanes)
	kind := Barrier
	if s.rng.Float64() > 1-s.spawn.TrainChance {
		kind = Train
	}
	jitter := float32(s.rng.Float64()-0.5) * s.spawn.Jitter

	preset := kind.Preset(s.obstacles)
	return Spawn{
		Kind: kind,
		Lane: lane,
		Position: mgl32.Vec3{
			LaneX(lane, s.track.Lanes, s.track.Width) + jitter,
			preset.SpawnY,
			s.track.Origin - s.track.SpawnDistance,
		},
		Velocity: mgl32.Vec3{0, 0, s.speed},
	}, true
}

// LaneX returns the center x coordinate of lane i on a track of the given
// width split into lanes equal lanes.
func LaneX(i, lanes int, width float32) float32 {
	spacing := width / float32(lanes)
	return -width/2 + spacing/2 + float32(i)*spacing
}
