package spawn

import (
	"testing"

	"github.com/vovakirdan/railrunner/internal/config"
)

func TestLaneX(t *testing.T) {
	tests := []struct {
		lane     int
		expected float32
	}{
		{0, -100},
		{1, 0},
		{2, 100},
	}

	for _, tc := range tests {
		if got := LaneX(tc.lane, 3, 300); got != tc.expected {
			t.Errorf("LaneX(%d) = %v, expected %v", tc.lane, got, tc.expected)
		}
	}
}

func TestSchedulerInitialState(t *testing.T) {
	s := NewScheduler(config.DefaultRunnerConfig(), 1)

	if s.Interval() != 150 {
		t.Errorf("Interval() = %d, expected 150", s.Interval())
	}
	if s.Speed() != 10 {
		t.Errorf("Speed() = %v, expected 10", s.Speed())
	}
}

func TestSchedulerSpawn(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewScheduler(cfg, 42)

	if _, ok := s.Tick(149); ok {
		t.Error("Tick(149) should not spawn with interval 150")
	}

	sp, ok := s.Tick(150)
	if !ok {
		t.Fatal("Tick(150) should spawn")
	}
	if s.Interval() != 148 {
		t.Errorf("Interval() = %d after spawn, expected 148", s.Interval())
	}

	preset := sp.Kind.Preset(cfg.Obstacles)
	if sp.Position.Y() != preset.SpawnY {
		t.Errorf("spawn y = %v, expected %v", sp.Position.Y(), preset.SpawnY)
	}
	if sp.Position.Z() != -1000 {
		t.Errorf("spawn z = %v, expected -1000", sp.Position.Z())
	}
	if sp.Velocity.Z() != s.Speed() {
		t.Errorf("spawn vz = %v, expected track speed %v", sp.Velocity.Z(), s.Speed())
	}
	center := LaneX(sp.Lane, cfg.Track.Lanes, cfg.Track.Width)
	if d := sp.Position.X() - center; d < -2.5 || d > 2.5 {
		t.Errorf("spawn x jitter %v out of range", d)
	}
}

func TestSchedulerDeterminism(t *testing.T) {
	a := NewScheduler(config.DefaultRunnerConfig(), 99)
	b := NewScheduler(config.DefaultRunnerConfig(), 99)

	for frame := uint64(1); frame <= 20000; frame++ {
		sa, oka := a.Tick(frame)
		sb, okb := b.Tick(frame)
		if oka != okb || sa != sb {
			t.Fatalf("frame %d: schedulers diverged: %+v vs %+v", frame, sa, sb)
		}
	}
}

func TestSchedulerKindsAndLanes(t *testing.T) {
	s := NewScheduler(config.DefaultRunnerConfig(), 5)
	kinds := map[Kind]int{}
	lanes := map[int]int{}

	for frame := uint64(1); frame <= 200000; frame++ {
		if sp, ok := s.Tick(frame); ok {
			kinds[sp.Kind]++
			lanes[sp.Lane]++
		}
	}

	if kinds[Train] == 0 || kinds[Barrier] == 0 {
		t.Errorf("expected both kinds, got %v", kinds)
	}
	for lane := 0; lane < 3; lane++ {
		if lanes[lane] == 0 {
			t.Errorf("lane %d never chosen: %v", lane, lanes)
		}
	}
	if len(lanes) != 3 {
		t.Errorf("lanes out of range: %v", lanes)
	}
}

func TestSchedulerMonotonic(t *testing.T) {
	s := NewScheduler(config.DefaultRunnerConfig(), 3)
	prevInterval, prevSpeed := s.Interval(), s.Speed()

	for frame := uint64(1); frame <= 50000; frame++ {
		s.RampSpeed(frame)
		s.Tick(frame)

		if s.Interval() > prevInterval {
			t.Fatalf("frame %d: interval grew from %d to %d", frame, prevInterval, s.Interval())
		}
		if s.Interval() < 50 {
			t.Fatalf("frame %d: interval %d below floor", frame, s.Interval())
		}
		if s.Speed() < prevSpeed {
			t.Fatalf("frame %d: speed dropped from %v to %v", frame, prevSpeed, s.Speed())
		}
		prevInterval, prevSpeed = s.Interval(), s.Speed()
	}

	if s.Interval() != 50 {
		t.Errorf("Interval() = %d after a long run, expected floor 50", s.Interval())
	}
	if s.Speed() <= 10 {
		t.Errorf("Speed() = %v, expected ramped speed", s.Speed())
	}
}

func TestSchedulerRampSpeed(t *testing.T) {
	s := NewScheduler(config.DefaultRunnerConfig(), 1)

	if s.RampSpeed(999) {
		t.Error("RampSpeed(999) should not ramp")
	}
	if !s.RampSpeed(1000) {
		t.Error("RampSpeed(1000) should ramp")
	}
	want := float32(10)
	want += 0.3
	if s.Speed() != want {
		t.Errorf("Speed() = %v, expected %v", s.Speed(), want)
	}
}

func TestSchedulerRampSpeedIgnoresNegativeStep(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Difficulty.SpeedStep = -0.3
	s := NewScheduler(cfg, 1)

	before := s.Speed()
	if s.RampSpeed(1000) {
		t.Error("RampSpeed should not ramp with a negative step")
	}
	if s.Speed() != before {
		t.Errorf("track speed changed: %v -> %v", before, s.Speed())
	}
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler(config.DefaultRunnerConfig(), 1)
	for frame := uint64(1); frame <= 5000; frame++ {
		s.RampSpeed(frame)
		s.Tick(frame)
	}

	s.Reset(1)

	if s.Interval() != 150 || s.Speed() != 10 {
		t.Errorf("after Reset: interval=%d speed=%v, expected 150 and 10", s.Interval(), s.Speed())
	}
}

func TestSchedulerPresets(t *testing.T) {
	tests := []struct {
		preset   config.DifficultyPreset
		interval uint32
		speed    float32
		ramps    bool
	}{
		{config.DifficultyEasy, 180, 8, true},
		{config.DifficultyHard, 120, 12, true},
		{config.DifficultyFixed, 150, 10, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := config.DefaultRunnerConfig()
			config.ApplyPreset(&cfg, tc.preset)
			s := NewScheduler(cfg, 1)

			if s.Interval() != tc.interval || s.Speed() != tc.speed {
				t.Errorf("initial interval=%d speed=%v, expected %d and %v", s.Interval(), s.Speed(), tc.interval, tc.speed)
			}

			if got := s.RampSpeed(1000); got != tc.ramps {
				t.Errorf("RampSpeed(1000) = %v, expected %v", got, tc.ramps)
			}
			if _, ok := s.Tick(uint64(tc.interval)); !ok {
				t.Fatal("expected a spawn")
			}
			decayed := s.Interval() < tc.interval
			if decayed != tc.ramps {
				t.Errorf("interval decay = %v, expected %v", decayed, tc.ramps)
			}
		})
	}
}

func TestSchedulerDisabled(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.Enabled = false
	s := NewScheduler(cfg, 1)

	for frame := uint64(1); frame <= 1000; frame++ {
		if _, ok := s.Tick(frame); ok {
			t.Fatalf("frame %d: disabled scheduler spawned", frame)
		}
	}
}

func TestKind(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Obstacles
	if Train.Preset(cfg).Depth != 600 || Barrier.Preset(cfg).Height != 10 {
		t.Error("kind presets do not match config")
	}
	if Train.String() != "train" || Barrier.String() != "barrier" {
		t.Error("unexpected kind names")
	}
}
