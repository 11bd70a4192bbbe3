package core

import "github.com/go-gl/mathgl/mgl32"

// Physics constants shared by every kinematic body.
const (
	DefaultGravity = -0.25  // Vertical velocity change per tick
	ZAccelStep     = 0.0003 // Z velocity increment per tick for accelerating bodies
)

// Body is a Box with gravity integration and ground collision response.
// Both the player and every obstacle are bodies.
type Body struct {
	Box
	Gravity  float32 // Negative; applied to Velocity.Y every tick
	OnGround bool    // Set when the last integration landed on the ground
	ZAccel   bool    // Accelerate along Z each tick
}

// NewBody creates a body at pos with the given dimensions and default gravity.
func NewBody(pos mgl32.Vec3, w, h, d float32) *Body {
	return &Body{
		Box:     NewBox(pos, w, h, d),
		Gravity: DefaultGravity,
	}
}

// Update advances the body by one tick against the given ground.
// Faces are refreshed before movement, so the ground test uses the
// footprint the body had at the start of the tick.
func (b *Body) Update(ground *Box) {
	b.UpdateSides()

	if b.ZAccel {
		b.Velocity[2] += ZAccelStep
	}

	b.Position[0] += b.Velocity[0]
	b.Position[2] += b.Velocity[2]

	b.applyGravity(ground)
}

// applyGravity integrates vertical motion and snaps to the ground on contact.
func (b *Body) applyGravity(ground *Box) {
	b.Velocity[1] += b.Gravity

	if b.Intersects(ground) {
		b.Velocity[1] = 0
		b.OnGround = true
		b.Position[1] = ground.Top + b.Height/2
		return
	}

	b.OnGround = false
	b.Position[1] += b.Velocity[1]
}

// Jump launches the body upward. Returns false if the body is airborne.
func (b *Body) Jump(speed float32) bool {
	if !b.OnGround {
		return false
	}
	b.Velocity[1] = speed
	b.OnGround = false
	return true
}

// Place repositions the body and replaces its velocity.
func (b *Body) Place(pos, vel mgl32.Vec3) {
	b.Position = pos
	b.Velocity = vel
	b.OnGround = false
	b.UpdateSides()
}
