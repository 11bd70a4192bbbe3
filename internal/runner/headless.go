package runner

import (
	"github.com/vovakirdan/railrunner/internal/input"
	"github.com/vovakirdan/railrunner/internal/session"
)

// SimResult summarizes a headless run.
type SimResult struct {
	Ticks     int
	Score     uint64
	State     session.State
	HitID     uint64 // Obstacle that ended the run, 0 if it survived
	Elapsed   float64
	Speed     float32
	Interval  uint32
	Obstacles int
}

// Simulate starts g if it is idle and steps it with input from src at a
// fixed dt until the run ends or maxTicks ticks have passed.
func Simulate(g *Game, src input.Source, maxTicks int, dt float64) SimResult {
	if g.State() == session.Idle {
		g.Start()
	}

	var res SimResult
	for res.Ticks < maxTicks && g.State() == session.Running {
		step := g.Step(dt, src.Poll())
		res.Ticks++
		if step.Collided {
			res.HitID = step.HitID
		}
	}

	res.Score = g.Score()
	res.State = g.State()
	res.Elapsed = g.Elapsed()
	res.Speed = g.sched.Speed()
	res.Interval = g.sched.Interval()
	res.Obstacles = len(g.obstacles)
	return res
}
