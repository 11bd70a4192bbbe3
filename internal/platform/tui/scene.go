package tui

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/railrunner/internal/assets"
	"github.com/vovakirdan/railrunner/internal/core"
	"github.com/vovakirdan/railrunner/internal/runner"
	"github.com/vovakirdan/railrunner/internal/session"
)

// Projection constants.
const (
	nearMargin     = 60  // World z shown past the player
	farRatio       = 0.3 // Track width at the top row relative to the bottom row
	liftUnits      = 12  // World units of height per row at the bottom row
	sleeperSpacing = 40  // World z between track sleepers
	minLiftScale   = 0.3 // Height scale at the top row
	hudRows        = 2   // HUD line plus the bottom margin
)

// Track characters.
const (
	edgeLeft    = '/'
	edgeRight   = '\\'
	laneDivider = ':'
)

// Scene projects the world onto a core.Screen cell buffer. Lanes run as
// columns and z runs as rows: the spawn line at the top, the player near
// the bottom. It implements runner.Scene.
type Scene struct {
	screen  *core.Screen
	visuals []*visual
	frame   runner.Frame
	drawn   bool
}

// visual is a model attached to the scene.
type visual struct {
	model    *assets.Model
	glyph    rune
	color    core.Color
	pos      mgl32.Vec3
	released bool
}

// SetPosition moves the visual.
func (v *visual) SetPosition(pos mgl32.Vec3) {
	v.pos = pos
}

// Release detaches the visual from the scene.
func (v *visual) Release() {
	v.released = true
}

// NewScene creates a scene drawing into a w x h screen.
func NewScene(w, h int) *Scene {
	return &Scene{screen: core.NewScreen(w, h)}
}

// Attach adds a model to the scene.
func (s *Scene) Attach(m *assets.Model) runner.VisualHandle {
	v := &visual{model: m, glyph: m.Rune(), color: ParseColor(m.Color)}
	s.visuals = append(s.visuals, v)
	return v
}

// Visuals returns the number of attached, unreleased visuals.
func (s *Scene) Visuals() int {
	n := 0
	for _, v := range s.visuals {
		if !v.released {
			n++
		}
	}
	return n
}

// Screen returns the cell buffer of the last drawn frame.
func (s *Scene) Screen() *core.Screen {
	return s.screen
}

// Resize changes the screen size and redraws the last frame.
func (s *Scene) Resize(w, h int) {
	s.screen.Resize(w, h)
	if s.drawn {
		s.draw()
	}
}

// RenderFrame draws f.
func (s *Scene) RenderFrame(f runner.Frame) {
	s.frame = f
	s.drawn = true
	s.prune()
	s.draw()
}

// View returns the styled screen.
func (s *Scene) View() string {
	return RenderScreen(s.screen)
}

// prune drops released visuals.
func (s *Scene) prune() {
	kept := s.visuals[:0]
	for _, v := range s.visuals {
		if !v.released {
			kept = append(kept, v)
		}
	}
	for i := len(kept); i < len(s.visuals); i++ {
		s.visuals[i] = nil
	}
	s.visuals = kept
}

func (s *Scene) draw() {
	dst := s.screen
	dst.Clear()
	if dst.Width() < 4 || dst.Height() < hudRows+2 {
		return
	}

	f := s.frame
	vp := newViewport(dst.Width(), dst.Height(), f)

	var surface *visual
	entities := make([]*visual, 0, len(s.visuals))
	for _, v := range s.visuals {
		if v.model.Surface {
			surface = v
			continue
		}
		entities = append(entities, v)
	}

	s.drawTrack(vp, surface)

	// Far to near so closer entities cover farther ones
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].pos.Z() < entities[j].pos.Z()
	})
	for _, v := range entities {
		s.drawEntity(vp, v)
	}

	s.drawHUD()
}

func (s *Scene) drawTrack(vp viewport, surface *visual) {
	dst := s.screen
	f := s.frame
	lanes := max(f.Lanes, 1)

	for y := vp.top; y <= vp.bottom; y++ {
		p := vp.rowDepth(y)
		left := vp.col(-vp.halfWidth, p)
		right := vp.col(vp.halfWidth, p)

		if surface != nil && sleeperAt(vp.rowZ(y), f.Scroll) {
			for x := left + 1; x < right; x++ {
				dst.SetColored(x, y, surface.glyph, surface.color)
			}
		}
		for i := 1; i < lanes; i++ {
			lx := -vp.halfWidth + 2*vp.halfWidth*float32(i)/float32(lanes)
			dst.SetColored(vp.col(lx, p), y, laneDivider, core.ColorGray)
		}
		dst.SetColored(left, y, edgeLeft, core.ColorGray)
		dst.SetColored(right, y, edgeRight, core.ColorGray)
	}
}

// sleeperAt reports whether a sleeper crosses the track at world z.
func sleeperAt(z, scroll float32) bool {
	n := int(math.Floor(float64((z - scroll) / sleeperSpacing)))
	return n%2 == 0
}

func (s *Scene) drawEntity(vp viewport, v *visual) {
	w, d := v.model.Footprint()
	base := v.pos.Y() + v.model.YOffset

	back, front := v.pos.Z()-d/2, v.pos.Z()+d/2
	if front < vp.far || back > vp.near {
		return
	}
	rowBack := vp.row(vp.depth(max(back, vp.far)))
	rowFront := vp.row(vp.depth(min(front, vp.near)))

	for y := rowBack; y <= rowFront; y++ {
		p := vp.rowDepth(y)
		lift := vp.lift(base, p)
		x0 := vp.col(v.pos.X()-w/2, p)
		x1 := vp.col(v.pos.X()+w/2, p)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		for x := x0; x < x1; x++ {
			s.screen.SetColored(x, y-lift, v.glyph, v.color)
		}
	}
}

func (s *Scene) drawHUD() {
	dst := s.screen
	f := s.frame

	hud := fmt.Sprintf(" Score: %d  Best: %d  Speed: %.1f  %s ", f.Score, f.Best, f.TrackSpeed, f.Anim.Clip())
	dst.DrawText(0, 0, hud)
	state := fmt.Sprintf(" %s ", f.State)
	dst.DrawText(dst.Width()-len(state), 0, state)

	switch f.State {
	case session.Idle:
		s.drawCenteredMessage("RAIL RUNNER", "Press S to start")
	case session.Paused:
		s.drawCenteredMessage("PAUSED", "Press P to resume")
	case session.GameOver:
		s.drawCenteredMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to retry", f.Score))
	}
}

// drawCenteredMessage draws a boxed two-line message in the screen center.
func (s *Scene) drawCenteredMessage(title, subtitle string) {
	dst := s.screen
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, subtitle)
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	top, bottom int     // Track rows, inclusive
	center      int     // Column of x == 0
	nearHalf    float32 // Half track width in columns at the bottom row
	farHalf     float32
	halfWidth   float32 // Half track width in world units
	near, far   float32 // World z at the bottom and top rows
	groundTop   float32
}

func newViewport(w, h int, f runner.Frame) viewport {
	nearHalf := float32(w-2) / 2
	vp := viewport{
		top:       1,
		bottom:    h - hudRows,
		center:    w / 2,
		nearHalf:  nearHalf,
		farHalf:   nearHalf * farRatio,
		halfWidth: f.TrackWidth / 2,
		near:      f.Player.Z() + nearMargin,
		far:       f.SpawnZ,
		groundTop: f.GroundTop,
	}
	if vp.halfWidth <= 0 {
		vp.halfWidth = 1
	}
	if vp.far >= vp.near {
		vp.far = vp.near - 1
	}
	if vp.bottom <= vp.top {
		vp.bottom = vp.top + 1
	}
	return vp
}

// depth returns the perspective factor of z: 0 at the top row, 1 at the
// bottom row.
func (v viewport) depth(z float32) float32 {
	t := core.ClampF32((z-v.far)/(v.near-v.far), 0, 1)
	return t * t
}

// rowDepth is the inverse of row.
func (v viewport) rowDepth(y int) float32 {
	return core.ClampF32(float32(y-v.top)/float32(v.bottom-v.top), 0, 1)
}

// rowZ returns the world z shown at row y.
func (v viewport) rowZ(y int) float32 {
	t := float32(math.Sqrt(float64(v.rowDepth(y))))
	return v.far + t*(v.near-v.far)
}

func (v viewport) row(p float32) int {
	return core.Clamp(v.top+int(math.Round(float64(p*float32(v.bottom-v.top)))), v.top, v.bottom)
}

func (v viewport) col(x, p float32) int {
	half := v.farHalf + (v.nearHalf-v.farHalf)*p
	return v.center + int(math.Round(float64(x/v.halfWidth*half)))
}

// lift returns how many rows above the ground a model base at height y is
// drawn at depth p.
func (v viewport) lift(y, p float32) int {
	if y <= v.groundTop {
		return 0
	}
	scale := minLiftScale + (1-minLiftScale)*p
	return int((y - v.groundTop) / liftUnits * scale)
}
