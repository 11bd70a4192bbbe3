package runner

import (
	"github.com/vovakirdan/railrunner/internal/assets"
)

// inboxSize bounds the completions buffered between ticks. Loaders block
// when it is full until the next tick drains it or the game closes.
const inboxSize = 64

// targetKind says which entity an asset completion belongs to.
type targetKind int

const (
	targetPlayer targetKind = iota
	targetTrack
	targetObstacle
)

// completion is an asset load result waiting for the next tick.
type completion struct {
	target targetKind
	id     uint64 // Obstacle ID for targetObstacle
	path   string
	model  *assets.Model
	err    error
}

// requestModel loads path for the given target. Models already loaded once
// are applied immediately; otherwise the result arrives through the inbox.
func (g *Game) requestModel(target targetKind, id uint64, path string) {
	if path == "" || g.loader == nil {
		return
	}
	if m, ok := g.models[path]; ok {
		g.apply(completion{target: target, id: id, path: path, model: m})
		return
	}

	ctx := g.ctx
	inbox := g.inbox
	g.loader.Load(ctx, path, func(m *assets.Model, err error) {
		select {
		case inbox <- completion{target: target, id: id, path: path, model: m, err: err}:
		case <-ctx.Done():
		}
	})
}

// drainInbox applies every completion that arrived since the last tick
// without blocking.
func (g *Game) drainInbox() {
	for {
		select {
		case c := <-g.inbox:
			g.apply(c)
		default:
			return
		}
	}
}

// apply splices one completion into the game state.
func (g *Game) apply(c completion) {
	if c.err != nil || c.model == nil {
		g.logger.Debug("model unavailable", "path", c.path, "error", c.err)
		return
	}
	g.models[c.path] = c.model

	switch c.target {
	case targetPlayer:
		for _, clip := range c.model.Clips {
			if !g.anim.RegisterClip(clip) {
				g.logger.Debug("unknown animation clip", "clip", clip)
			}
		}
		if g.playerVisual == nil {
			g.playerVisual = g.scene.Attach(c.model)
			g.playerVisual.SetPosition(g.visualPos)
		}
	case targetTrack:
		if g.trackVisual == nil {
			g.trackVisual = g.scene.Attach(c.model)
			g.trackVisual.SetPosition(g.ground.Position)
		}
	case targetObstacle:
		o := g.findObstacle(c.id)
		if o == nil {
			// Despawned or cleared before the model arrived
			return
		}
		if o.Visual == nil {
			o.Visual = g.scene.Attach(c.model)
			o.sync()
		}
	}
}

// findObstacle looks up a live or queued obstacle by ID.
func (g *Game) findObstacle(id uint64) *Obstacle {
	for _, o := range g.obstacles {
		if o.ID == id {
			return o
		}
	}
	for _, o := range g.pending {
		if o.ID == id {
			return o
		}
	}
	return nil
}
