package audio

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/railrunner/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// speakerLock adapts the speaker lock to sync.Locker.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Open initializes the speaker and returns the configured music track.
// Callers fall back to Nop when it fails, e.g. without a sound device.
func Open(cfg config.AudioConfig, logger *log.Logger) (*Music, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", err)
	}

	source := SynthSource(sampleRate)
	if cfg.Music != "" {
		source = FileSource(cfg.Music, sampleRate)
	}
	if logger != nil {
		source = logged(source, logger)
	}

	m := NewMusic(source, speakerLock{})
	m.SetLoop(cfg.Loop)
	m.SetVolume(cfg.Volume)

	mixer := &beep.Mixer{}
	mixer.Add(m.Streamer())
	speaker.Play(mixer)
	return m, nil
}

// logged wraps a source so decoding failures are reported.
func logged(source SourceFunc, logger *log.Logger) SourceFunc {
	return func(loop bool) (beep.Streamer, error) {
		s, err := source(loop)
		if err != nil {
			logger.Warn("music unavailable", "error", err)
		}
		return s, err
	}
}

// Nop is a silent player used when audio is disabled or unavailable.
type Nop struct{}

func (Nop) Play()             {}
func (Nop) Pause()            {}
func (Nop) Stop()             {}
func (Nop) SetLoop(bool)      {}
func (Nop) SetVolume(float32) {}
