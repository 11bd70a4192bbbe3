// Package runner runs the rail runner simulation: one Step per frame
// integrates the player and obstacles, detects collisions, drives the
// animation selector and the spawn scheduler.
package runner

import (
	"context"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/railrunner/internal/anim"
	"github.com/vovakirdan/railrunner/internal/assets"
	"github.com/vovakirdan/railrunner/internal/config"
	"github.com/vovakirdan/railrunner/internal/core"
	"github.com/vovakirdan/railrunner/internal/input"
	"github.com/vovakirdan/railrunner/internal/leaderboard"
	"github.com/vovakirdan/railrunner/internal/session"
	"github.com/vovakirdan/railrunner/internal/spawn"
)

// visualLerp is the fraction of the gap the player model closes per tick.
const visualLerp = 0.3

// Options configures a Game. Only Config is required.
type Options struct {
	Config config.RunnerConfig
	Seed   int64
	Loader AssetLoader
	Audio  Audio
	Scene  Scene
	Board  *leaderboard.Board
	Logger *log.Logger
}

// Game owns the player, the ground and the live obstacles of one session.
// Step and the command methods must be called from a single goroutine.
type Game struct {
	cfg    config.RunnerConfig
	seed   int64
	runs   int64
	logger *log.Logger

	loader AssetLoader
	audio  Audio
	scene  Scene
	board  *leaderboard.Board

	session *session.Machine
	sched   *spawn.Scheduler
	anim    *anim.Selector
	agg     input.Aggregator

	player    *core.Body
	ground    core.Box
	obstacles []*Obstacle
	pending   []*Obstacle
	nextID    uint64

	elapsed float64
	scroll  float32

	ctx          context.Context
	cancel       context.CancelFunc
	inbox        chan completion
	models       map[string]*assets.Model
	playerVisual VisualHandle
	trackVisual  VisualHandle
	visualPos    mgl32.Vec3

	boardVisible bool
	entries      []leaderboard.Entry
	best         uint64
}

// New creates a game in the Idle state and starts loading the player and
// track models.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg.Physics.MaxDelta <= 0 {
		cfg.Physics.MaxDelta = 0.05
	}

	g := &Game{
		cfg:     cfg,
		seed:    opts.Seed,
		logger:  opts.Logger,
		loader:  opts.Loader,
		audio:   opts.Audio,
		scene:   opts.Scene,
		board:   opts.Board,
		session: session.New(),
		sched:   spawn.NewScheduler(cfg, opts.Seed),
		anim:    anim.NewSelector(cfg.Animation.CrossFade),
		agg: input.Aggregator{
			DeadZone:   cfg.Player.StickDeadZone,
			StickScale: cfg.Player.StickScale,
			KeySpeed:   cfg.Player.KeySpeed,
		},
		inbox:  make(chan completion, inboxSize),
		models: make(map[string]*assets.Model),
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.audio == nil {
		g.audio = nopAudio{}
	}
	if g.scene == nil {
		g.scene = NopScene{}
	}
	if g.board == nil {
		g.board = leaderboard.New(nil, g.logger)
	}
	g.ctx, g.cancel = context.WithCancel(context.Background())

	g.ground = core.NewBox(
		mgl32.Vec3{0, cfg.Track.GroundY, 0},
		cfg.Track.Width, cfg.Track.GroundHeight, cfg.Track.Length,
	)
	g.player = core.NewBody(g.playerStart(), cfg.Player.Width, cfg.Player.Height, cfg.Player.Depth)
	g.player.Gravity = cfg.Physics.Gravity
	g.player.Velocity = mgl32.Vec3{0, cfg.Player.StartVelY, 0}
	g.visualPos = g.player.Position

	g.audio.SetLoop(cfg.Audio.Loop)
	g.audio.SetVolume(cfg.Audio.Volume)

	g.best = g.board.Best()

	// Game over: stop the music, record the score, then log
	g.session.OnGameOver(func(uint64) { g.audio.Stop() })
	g.session.OnGameOver(func(score uint64) {
		g.entries = g.board.Save(score)
		if len(g.entries) > 0 && g.entries[0].Score > g.best {
			g.best = g.entries[0].Score
		}
	})
	g.session.OnGameOver(func(score uint64) {
		g.logger.Info("game over", "score", score, "speed", g.sched.Speed(), "obstacles", len(g.obstacles))
	})

	g.requestModel(targetPlayer, 0, cfg.Player.Model)
	g.requestModel(targetTrack, 0, cfg.Track.Model)
	return g
}

// OnGameOver registers an extra hook that runs after the built-in ones.
func (g *Game) OnGameOver(h session.GameOverHook) {
	g.session.OnGameOver(h)
}

func (g *Game) playerStart() mgl32.Vec3 {
	p := g.cfg.Player
	return mgl32.Vec3{p.StartX, p.StartY, p.StartZ}
}

// State returns the session state.
func (g *Game) State() session.State {
	return g.session.State()
}

// Score returns the current score.
func (g *Game) Score() uint64 {
	return g.session.Score()
}

// Player returns the player body. Callers must not keep it across ticks.
func (g *Game) Player() *core.Body {
	return g.player
}

// Obstacles returns the live obstacles in insertion order.
func (g *Game) Obstacles() []*Obstacle {
	return g.obstacles
}

// Scheduler returns the spawn scheduler.
func (g *Game) Scheduler() *spawn.Scheduler {
	return g.sched
}

// Animation returns the animation selector.
func (g *Game) Animation() *anim.Selector {
	return g.anim
}

// Elapsed returns the simulated seconds since the run started.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// RunSeed returns the seed the scheduler of the current run was reset with.
func (g *Game) RunSeed() int64 {
	return g.seed + g.runs
}

// Step advances the simulation by dt seconds with the given input.
// Outside the Running state nothing advances.
func (g *Game) Step(dt float64, in input.State) StepResult {
	g.drainInbox()

	if !g.session.Running() {
		return g.result(false)
	}

	dt = math.Max(0, math.Min(dt, g.cfg.Physics.MaxDelta))
	g.elapsed += dt
	fdt := float32(dt)

	g.anim.Advance(dt)

	p := g.player
	if in.Jump && p.Jump(g.cfg.Physics.JumpSpeed) {
		g.anim.Request(anim.Jump, false, p.Velocity.Y())
	}

	p.Velocity[0] = 0
	p.Velocity[2] = 0

	if g.elapsed >= g.cfg.Physics.GracePeriod {
		frames := g.session.Frames()
		speed := g.sched.Speed()
		if g.cfg.Track.Length > 0 {
			g.scroll = float32(math.Mod(float64(g.scroll+speed*fdt*g.cfg.Track.ScrollScale), float64(g.cfg.Track.Length)))
		}
		g.sched.RampSpeed(frames)

		intent := g.agg.Intent(in)
		p.Velocity[0] = intent
		pose := anim.SelectWithThreshold(p.OnGround, p.Velocity.Y(), intent, in.Crawl, g.cfg.Animation.Threshold)
		g.anim.Request(pose, p.OnGround, p.Velocity.Y())

		if sp, ok := g.sched.Tick(frames); ok {
			o := g.newObstacle(sp)
			g.pending = append(g.pending, o)
			g.loadVisual(o)
		}
	}

	limit := g.ground.Width/2 - p.Width/2 - g.cfg.Player.EdgeMargin
	p.Position[0] = core.ClampF32(p.Position.X(), -limit, limit)
	p.Update(&g.ground)
	p.UpdateSides()
	g.syncPlayerVisual()

	speed := g.sched.Speed()
	for _, o := range g.obstacles {
		o.Body.Update(&g.ground)
		o.Body.Position[2] += speed * fdt
		o.Body.UpdateSides()
		o.sync()

		if p.Intersects(&o.Body.Box) {
			g.session.End()
			g.render()
			res := g.result(true)
			res.Collided = true
			res.HitID = o.ID
			return res
		}
	}

	g.despawn()
	g.obstacles = append(g.obstacles, g.pending...)
	g.pending = g.pending[:0]

	g.session.Advance()
	g.render()
	return g.result(true)
}

func (g *Game) result(advanced bool) StepResult {
	return StepResult{
		State:    g.session.State(),
		Score:    g.session.Score(),
		Advanced: advanced,
	}
}

func (g *Game) syncPlayerVisual() {
	g.visualPos = g.visualPos.Add(g.player.Position.Sub(g.visualPos).Mul(visualLerp))
	if g.playerVisual != nil {
		g.playerVisual.SetPosition(g.visualPos)
	}
}

// newObstacle builds an obstacle body for a scheduler spawn.
func (g *Game) newObstacle(sp spawn.Spawn) *Obstacle {
	preset := sp.Kind.Preset(g.cfg.Obstacles)
	g.nextID++

	body := core.NewBody(sp.Position, preset.Width, preset.Height, preset.Depth)
	body.Gravity = g.cfg.Physics.Gravity
	body.Velocity = sp.Velocity

	return &Obstacle{ID: g.nextID, Kind: sp.Kind, Body: body}
}

// loadVisual requests the model of an obstacle that is already tracked.
func (g *Game) loadVisual(o *Obstacle) {
	g.requestModel(targetObstacle, o.ID, o.Kind.Preset(g.cfg.Obstacles).Model)
}

// SpawnObstacle inserts an obstacle into the live set immediately and
// returns its ID.
func (g *Game) SpawnObstacle(sp spawn.Spawn) uint64 {
	o := g.newObstacle(sp)
	g.obstacles = append(g.obstacles, o)
	g.loadVisual(o)
	return o.ID
}

// despawn removes obstacles that are far behind the player.
func (g *Game) despawn() {
	threshold := g.player.Front + g.cfg.Track.DespawnDistance
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.Body.Back > threshold {
			o.release()
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(g.obstacles); i++ {
		g.obstacles[i] = nil
	}
	g.obstacles = kept
}

// clearObstacles removes every live and queued obstacle.
func (g *Game) clearObstacles() {
	for _, o := range g.obstacles {
		o.release()
	}
	for _, o := range g.pending {
		o.release()
	}
	g.obstacles = nil
	g.pending = nil
}

// Abort cancels pending model loads. Unlike the other methods it may be
// called from any goroutine.
func (g *Game) Abort() {
	g.cancel()
}

// Close cancels pending loads and releases every visual.
func (g *Game) Close() {
	g.cancel()
	g.clearObstacles()
	if g.playerVisual != nil {
		g.playerVisual.Release()
		g.playerVisual = nil
	}
	if g.trackVisual != nil {
		g.trackVisual.Release()
		g.trackVisual = nil
	}
	g.audio.Stop()
}
