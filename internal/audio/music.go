// Package audio plays the background music through beep.
package audio

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
)

// SourceFunc builds a fresh music stream. loop asks for an endless stream.
type SourceFunc func(loop bool) (beep.Streamer, error)

// Music is a pausable, loopable music track with volume control.
// Its root streamer is added to a mixer once; control methods swap the
// stream underneath it.
type Music struct {
	mu     sync.Locker
	ctrl   *beep.Ctrl
	volume *effects.Volume
	source SourceFunc

	loop    bool
	stopped bool
}

// NewMusic creates a paused track. lock guards stream mutations against the
// playback goroutine; pass speaker-backed locking for real output.
func NewMusic(source SourceFunc, lock sync.Locker) *Music {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	m := &Music{
		mu:      lock,
		source:  source,
		ctrl:    &beep.Ctrl{Streamer: beep.Silence(-1), Paused: true},
		stopped: true,
	}
	m.volume = &effects.Volume{Streamer: m.ctrl, Base: 2}
	return m
}

// Streamer returns the root streamer to add to a mixer.
func (m *Music) Streamer() beep.Streamer {
	return m.volume
}

// Play starts or resumes playback. After Stop the track restarts from the
// beginning.
func (m *Music) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		s, err := m.source(m.loop)
		if err != nil {
			return
		}
		m.ctrl.Streamer = s
		m.stopped = false
	}
	m.ctrl.Paused = false
}

// Pause halts playback, keeping the position.
func (m *Music) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctrl.Paused = true
}

// Stop halts playback and rewinds. Streams that hold a file are closed.
func (m *Music) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctrl.Paused = true
	if c, ok := m.ctrl.Streamer.(io.Closer); ok {
		c.Close() //nolint:errcheck
	}
	m.ctrl.Streamer = beep.Silence(-1)
	m.stopped = true
}

// SetLoop chooses between endless and single-pass playback. It applies from
// the next start after Stop.
func (m *Music) SetLoop(loop bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loop = loop
}

// SetVolume sets the gain in [0, 1]. Zero mutes.
func (m *Music) SetVolume(v float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	applyVolume(m.volume, float64(v))
}

// Playing reports whether the track is audible.
func (m *Music) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.ctrl.Paused
}

// math.Log2(0) is -Inf, so zero volume is handled with Silent.
func applyVolume(vol *effects.Volume, v float64) {
	if v <= 0 {
		vol.Volume = 0
		vol.Silent = true
		return
	}
	vol.Volume = math.Log2(math.Min(v, 1))
	vol.Silent = false
}

// SynthSource returns a source playing the synthesized track.
func SynthSource(sr beep.SampleRate) SourceFunc {
	return func(loop bool) (beep.Streamer, error) {
		g := NewRunnerGenerator(sr)
		if !loop {
			g.Once()
		}
		return g, nil
	}
}

// FileSource returns a source decoding an MP3 file, resampled to sr.
func FileSource(path string, sr beep.SampleRate) SourceFunc {
	return func(loop bool) (beep.Streamer, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
		}
		stream, format, err := mp3.Decode(f)
		if err != nil {
			f.Close() //nolint:errcheck
			return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
		}

		var s beep.Streamer = stream
		if loop {
			s = beep.Loop(-1, stream)
		}
		if format.SampleRate != sr {
			s = beep.Resample(4, format.SampleRate, sr, s)
		}
		return fileStream{Streamer: s, closer: stream}, nil
	}
}

// fileStream keeps the decoder reachable through loop and resample
// wrappers so Stop can close the file.
type fileStream struct {
	beep.Streamer
	closer io.Closer
}

func (f fileStream) Close() error {
	return f.closer.Close()
}
