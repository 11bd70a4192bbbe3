package runner

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/railrunner/internal/assets"
)

// AssetLoader loads model descriptors asynchronously. done is called exactly
// once, from any goroutine.
type AssetLoader interface {
	Load(ctx context.Context, path string, done func(*assets.Model, error))
}

// Audio is the background music player.
type Audio interface {
	Play()
	Pause()
	Stop()
	SetLoop(loop bool)
	SetVolume(v float32)
}

// Scene draws the world. The game attaches a visual per loaded model and
// moves it every tick; RenderFrame is called once per advanced tick.
type Scene interface {
	Attach(model *assets.Model) VisualHandle
	RenderFrame(f Frame)
	Resize(w, h int)
}

// VisualHandle is a scene object owned by one game entity.
type VisualHandle interface {
	SetPosition(pos mgl32.Vec3)
	Release()
}

// nopAudio is used when no audio collaborator is configured.
type nopAudio struct{}

func (nopAudio) Play()             {}
func (nopAudio) Pause()            {}
func (nopAudio) Stop()             {}
func (nopAudio) SetLoop(bool)      {}
func (nopAudio) SetVolume(float32) {}

// NopScene renders nothing. Used by the headless runner.
type NopScene struct{}

// Attach returns a handle that ignores updates.
func (NopScene) Attach(*assets.Model) VisualHandle { return nopHandle{} }

// RenderFrame discards the frame.
func (NopScene) RenderFrame(Frame) {}

// Resize does nothing.
func (NopScene) Resize(int, int) {}

type nopHandle struct{}

func (nopHandle) SetPosition(mgl32.Vec3) {}
func (nopHandle) Release()               {}
