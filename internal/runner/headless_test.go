package runner

import (
	"testing"

	"github.com/vovakirdan/railrunner/internal/input"
	"github.com/vovakirdan/railrunner/internal/session"
)

func TestSimulateStopsAtTickLimit(t *testing.T) {
	env := newTestEnv(t, noSpawn)

	res := Simulate(env.game, input.Static{}, 500, tick)

	if res.Ticks != 500 || res.Score != 500 {
		t.Errorf("Simulate() = %+v, expected 500 ticks and score", res)
	}
	if res.State != session.Running || res.HitID != 0 {
		t.Errorf("Simulate() = %+v, expected a surviving run", res)
	}
}

func TestSimulateStopsOnCollision(t *testing.T) {
	env := newTestEnv(t, noSpawn)
	env.game.Start()
	env.run(5, input.State{})
	id := env.game.SpawnObstacle(trainAt(0, 99))

	res := Simulate(env.game, input.Static{}, 100, tick)

	if res.State != session.GameOver || res.HitID != id {
		t.Errorf("Simulate() = %+v, expected game over by obstacle %d", res, id)
	}
	if res.Ticks != 1 || res.Score != 5 {
		t.Errorf("Simulate() = %+v, expected 1 tick and score 5", res)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	run := func() SimResult {
		env := newTestEnv(t, nil)
		return Simulate(env.game, &input.Autopilot{JumpEvery: 45, SwayEvery: 200}, 5000, tick)
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
}
