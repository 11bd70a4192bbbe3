package runner

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/railrunner/internal/core"
	"github.com/vovakirdan/railrunner/internal/spawn"
)

// Obstacle is a spawned train or barrier. The collision body exists from
// the moment of spawning; Visual stays nil until its model loads.
type Obstacle struct {
	ID     uint64
	Kind   spawn.Kind
	Body   *core.Body
	Visual VisualHandle
}

// sync moves the visual to the body position.
func (o *Obstacle) sync() {
	if o.Visual != nil {
		o.Visual.SetPosition(o.Body.Position)
	}
}

// release frees the visual.
func (o *Obstacle) release() {
	if o.Visual != nil {
		o.Visual.Release()
		o.Visual = nil
	}
}

// ObstacleView is the read-only state of an obstacle in a Frame.
type ObstacleView struct {
	ID       uint64
	Kind     spawn.Kind
	Position mgl32.Vec3
	Size     mgl32.Vec3
	Visible  bool
}

func (o *Obstacle) view() ObstacleView {
	return ObstacleView{
		ID:       o.ID,
		Kind:     o.Kind,
		Position: o.Body.Position,
		Size:     mgl32.Vec3{o.Body.Width, o.Body.Height, o.Body.Depth},
		Visible:  o.Visual != nil,
	}
}
