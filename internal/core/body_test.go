package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newGround() Box {
	return NewBox(mgl32.Vec3{0, -5, 0}, 300, 5, 3000)
}

// settle runs the body until it rests on the ground.
func settle(t *testing.T, b *Body, ground *Box) {
	t.Helper()
	for i := 0; i < 200; i++ {
		b.Update(ground)
		if b.OnGround {
			return
		}
	}
	t.Fatal("body never landed")
}

func TestBodyLandsOnGround(t *testing.T) {
	ground := newGround()
	b := NewBody(mgl32.Vec3{0, 12.5, 100}, 20, 25, 10)
	b.Velocity = mgl32.Vec3{0, -0.01, 0}

	settle(t, b, &ground)

	if b.Velocity.Y() != 0 {
		t.Errorf("Velocity.Y = %v after landing, expected 0", b.Velocity.Y())
	}
	want := ground.Top + b.Height/2
	if b.Position.Y() != want {
		t.Errorf("Position.Y = %v after landing, expected %v", b.Position.Y(), want)
	}
}

func TestBodyGroundClamp(t *testing.T) {
	ground := newGround()

	tests := []struct {
		name  string
		y, vy float32
	}{
		{"resting", 10, 0},
		{"slow fall", 30, -0.5},
		{"fast fall", 80, -40},
		{"launched", 10, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(mgl32.Vec3{0, tc.y, 0}, 20, 25, 10)
			b.Velocity = mgl32.Vec3{0, tc.vy, 0}
			for i := 0; i < 300; i++ {
				b.Update(&ground)
				if b.OnGround && b.Position.Y()+b.Height/2 < ground.Top {
					t.Fatalf("tick %d: body sank below the floor (y=%v)", i, b.Position.Y())
				}
				if b.OnGround && b.Position.Y()-b.Height/2 != ground.Top {
					t.Fatalf("tick %d: grounded body not resting on top (bottom=%v)", i, b.Position.Y()-b.Height/2)
				}
			}
			if !b.OnGround {
				t.Error("body should rest on the ground eventually")
			}
		})
	}
}

func TestBodyJump(t *testing.T) {
	ground := newGround()
	b := NewBody(mgl32.Vec3{0, 12.5, 100}, 20, 25, 10)
	settle(t, b, &ground)

	if !b.Jump(6) {
		t.Fatal("Jump() should succeed while on ground")
	}
	b.Update(&ground)

	if b.OnGround {
		t.Error("OnGround should be false one tick after jumping")
	}
	if got, want := b.Velocity.Y(), float32(6+DefaultGravity); got != want {
		t.Errorf("Velocity.Y = %v, expected %v", got, want)
	}
	if b.Jump(6) {
		t.Error("Jump() should fail while airborne")
	}
}

func TestBodyHorizontalMotion(t *testing.T) {
	ground := newGround()
	b := NewBody(mgl32.Vec3{0, 10, 0}, 20, 25, 10)
	b.Velocity = mgl32.Vec3{2, 0, 10}

	b.Update(&ground)

	if b.Position.X() != 2 || b.Position.Z() != 10 {
		t.Errorf("Position = %v, expected x=2 z=10", b.Position)
	}

	b.ZAccel = true
	b.Update(&ground)
	want := float32(10)
	want += ZAccelStep
	if got := b.Velocity.Z(); got != want {
		t.Errorf("Velocity.Z = %v, expected %v", got, want)
	}
}

func TestBodyPlace(t *testing.T) {
	b := NewBody(mgl32.Vec3{0, 10, 0}, 20, 25, 10)
	b.OnGround = true

	b.Place(mgl32.Vec3{5, 50, -100}, mgl32.Vec3{0, -1, 0})

	if b.OnGround {
		t.Error("Place should clear OnGround")
	}
	if b.Left != -5 || b.Back != -105 {
		t.Errorf("Place should refresh faces, got left=%v back=%v", b.Left, b.Back)
	}
}
