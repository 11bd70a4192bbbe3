package runner

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/railrunner/internal/anim"
	"github.com/vovakirdan/railrunner/internal/leaderboard"
	"github.com/vovakirdan/railrunner/internal/session"
)

// Frame is a snapshot of everything a Scene needs to draw one frame.
type Frame struct {
	State   session.State
	Score   uint64
	Best    uint64
	Elapsed float64

	TrackSpeed    float32
	SpawnInterval uint32
	Scroll        float32 // Track scroll offset in [0, Track.Length)
	TrackWidth    float32
	TrackLength   float32
	Lanes         int
	GroundTop     float32
	SpawnZ        float32 // Where new obstacles enter the track

	Player       mgl32.Vec3 // Collision body center
	PlayerSize   mgl32.Vec3
	PlayerVisual mgl32.Vec3 // Smoothed position of the player model
	OnGround     bool
	Anim         anim.State
	AnimWeights  map[anim.State]float64

	Obstacles []ObstacleView

	LeaderboardVisible bool
	Leaderboard        []leaderboard.Entry
}

// StepResult reports the outcome of one Step call.
type StepResult struct {
	State    session.State
	Score    uint64
	Advanced bool   // The simulation moved forward this call
	Collided bool   // This tick ended the run
	HitID    uint64 // Obstacle that ended the run
}

// Frame builds a snapshot of the current state.
func (g *Game) Frame() Frame {
	obstacles := make([]ObstacleView, 0, len(g.obstacles))
	for _, o := range g.obstacles {
		obstacles = append(obstacles, o.view())
	}

	return Frame{
		State:   g.session.State(),
		Score:   g.session.Score(),
		Best:    g.best,
		Elapsed: g.elapsed,

		TrackSpeed:    g.sched.Speed(),
		SpawnInterval: g.sched.Interval(),
		Scroll:        g.scroll,
		TrackWidth:    g.cfg.Track.Width,
		TrackLength:   g.cfg.Track.Length,
		Lanes:         g.cfg.Track.Lanes,
		GroundTop:     g.ground.Top,
		SpawnZ:        g.cfg.Track.Origin - g.cfg.Track.SpawnDistance,

		Player:       g.player.Position,
		PlayerSize:   mgl32.Vec3{g.player.Width, g.player.Height, g.player.Depth},
		PlayerVisual: g.visualPos,
		OnGround:     g.player.OnGround,
		Anim:         g.anim.Current(),
		AnimWeights:  g.anim.Weights(),

		Obstacles: obstacles,

		LeaderboardVisible: g.boardVisible,
		Leaderboard:        g.entries,
	}
}

func (g *Game) render() {
	g.scene.RenderFrame(g.Frame())
}
