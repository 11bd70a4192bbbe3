package runner

import (
	"context"
	"errors"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/railrunner/internal/assets"
	"github.com/vovakirdan/railrunner/internal/leaderboard"
)

// fakeHandle records the positions it was moved to.
type fakeHandle struct {
	model    *assets.Model
	pos      mgl32.Vec3
	moves    int
	released bool
}

func (h *fakeHandle) SetPosition(pos mgl32.Vec3) {
	h.pos = pos
	h.moves++
}

func (h *fakeHandle) Release() {
	h.released = true
}

// fakeScene records attached handles and rendered frames.
type fakeScene struct {
	handles []*fakeHandle
	frames  []Frame
	w, h    int
}

func (s *fakeScene) Attach(m *assets.Model) VisualHandle {
	h := &fakeHandle{model: m}
	s.handles = append(s.handles, h)
	return h
}

func (s *fakeScene) RenderFrame(f Frame) {
	s.frames = append(s.frames, f)
}

func (s *fakeScene) Resize(w, h int) {
	s.w, s.h = w, h
}

func (s *fakeScene) last() Frame {
	return s.frames[len(s.frames)-1]
}

// fakeAudio records the calls made to it.
type fakeAudio struct {
	calls  []string
	loop   bool
	volume float32
}

func (a *fakeAudio) Play()               { a.calls = append(a.calls, "play") }
func (a *fakeAudio) Pause()              { a.calls = append(a.calls, "pause") }
func (a *fakeAudio) Stop()               { a.calls = append(a.calls, "stop") }
func (a *fakeAudio) SetLoop(l bool)      { a.loop = l }
func (a *fakeAudio) SetVolume(v float32) { a.volume = v }

func (a *fakeAudio) lastCall() string {
	if len(a.calls) == 0 {
		return ""
	}
	return a.calls[len(a.calls)-1]
}

// pendingLoad is a load request held by manualLoader.
type pendingLoad struct {
	path string
	done func(*assets.Model, error)
}

// manualLoader holds load requests until the test completes them.
type manualLoader struct {
	mu      sync.Mutex
	pending []pendingLoad
}

func (l *manualLoader) Load(_ context.Context, path string, done func(*assets.Model, error)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = append(l.pending, pendingLoad{path: path, done: done})
}

// complete resolves every pending request for path.
func (l *manualLoader) complete(path string, m *assets.Model) int {
	return l.resolve(path, m, nil)
}

// fail rejects every pending request for path.
func (l *manualLoader) fail(path string) int {
	return l.resolve(path, nil, errors.New("404"))
}

func (l *manualLoader) resolve(path string, m *assets.Model, err error) int {
	l.mu.Lock()
	var matched []pendingLoad
	kept := l.pending[:0]
	for _, p := range l.pending {
		if p.path == path {
			matched = append(matched, p)
		} else {
			kept = append(kept, p)
		}
	}
	l.pending = kept
	l.mu.Unlock()

	for _, p := range matched {
		p.done(m, err)
	}
	return len(matched)
}

func (l *manualLoader) count(path string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, p := range l.pending {
		if p.path == path {
			n++
		}
	}
	return n
}

// memKV is an in-memory leaderboard store.
type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, leaderboard.ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(key string, value []byte) error {
	m.data[key] = value
	return nil
}
