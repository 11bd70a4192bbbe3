package runner

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/railrunner/internal/leaderboard"
	"github.com/vovakirdan/railrunner/internal/session"
)

// Start begins a run from Idle.
func (g *Game) Start() bool {
	if !g.session.Start() {
		return false
	}
	g.elapsed = 0
	g.anim.Reset()
	g.audio.Play()
	g.render()
	return true
}

// TogglePause pauses or resumes the run.
func (g *Game) TogglePause() bool {
	if !g.session.TogglePause() {
		return false
	}
	if g.session.State() == session.Paused {
		g.audio.Pause()
	} else {
		g.audio.Play()
	}
	g.render()
	return true
}

// Restart tears down the current run from any state and starts a new one.
func (g *Game) Restart() {
	g.audio.Stop()
	g.clearObstacles()
	g.drainInbox()

	g.runs++
	g.sched.Reset(g.seed + g.runs)
	g.session.Reset()
	g.anim.Reset()

	g.player.Place(g.playerStart(), mgl32.Vec3{0, g.cfg.Player.StartVelY, 0})
	g.visualPos = g.player.Position
	if g.playerVisual != nil {
		g.playerVisual.SetPosition(g.visualPos)
	}
	g.elapsed = 0
	g.scroll = 0

	g.Start()
}

// Retry restarts after a game over. Other states are left alone.
func (g *Game) Retry() bool {
	if g.session.State() != session.GameOver {
		return false
	}
	g.Restart()
	return true
}

// ToggleLeaderboard shows or hides the leaderboard, reloading it when
// shown.
func (g *Game) ToggleLeaderboard() (bool, []leaderboard.Entry) {
	g.boardVisible = !g.boardVisible
	if g.boardVisible {
		g.entries = g.board.Load()
	}
	g.render()
	return g.boardVisible, g.entries
}

// Resize forwards a viewport change to the scene.
func (g *Game) Resize(w, h int) {
	g.scene.Resize(w, h)
}
