// Package core provides fundamental types and utilities for the rail runner.
// It contains no Bubble Tea or storage dependencies to keep simulation logic
// pure and testable.
package core

import "github.com/go-gl/mathgl/mgl32"

// Box is an axis-aligned bounding box in world space.
// Position is the box center. The face fields are derived from Position and
// the dimensions and are only valid after UpdateSides.
type Box struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Width    float32
	Height   float32
	Depth    float32

	Left, Right float32
	Bottom, Top float32
	Back, Front float32
}

// NewBox creates a box centered at pos with refreshed faces.
func NewBox(pos mgl32.Vec3, w, h, d float32) Box {
	b := Box{Position: pos, Width: w, Height: h, Depth: d}
	b.UpdateSides()
	return b
}

// UpdateSides recomputes the face coordinates from the current position.
func (b *Box) UpdateSides() {
	x, y, z := b.Position.Elem()
	b.Left = x - b.Width/2
	b.Right = x + b.Width/2
	b.Bottom = y - b.Height/2
	b.Top = y + b.Height/2
	b.Back = z - b.Depth/2
	b.Front = z + b.Depth/2
}

// Intersects reports whether b overlaps other on all three axes.
// The vertical test projects b's bottom face by its vertical velocity so a
// falling box lands on a support instead of passing through it.
func (b *Box) Intersects(other *Box) bool {
	xCollision := b.Right >= other.Left && b.Left <= other.Right
	yCollision := b.Bottom+b.Velocity.Y() <= other.Top && b.Top >= other.Bottom
	zCollision := b.Front >= other.Back && b.Back <= other.Front
	return xCollision && yCollision && zCollision
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF32 restricts a float32 value to be within [min, max].
func ClampF32(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF32 returns the absolute value of a float32.
func AbsF32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
