package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// bassline is the note sequence of the synthesized track, in Hz.
var bassline = []float64{110, 110, 164.81, 146.83, 110, 110, 196, 164.81}

// RunnerGenerator synthesizes the background track: a kick on every beat
// over a square-wave bassline.
type RunnerGenerator struct {
	sr       beep.SampleRate
	pos      int
	beat     int // Samples per beat
	length   int // Samples per full pattern, 0 = endless
	finished bool
}

// NewRunnerGenerator creates an endless generator at 140 BPM.
func NewRunnerGenerator(sr beep.SampleRate) *RunnerGenerator {
	return &RunnerGenerator{
		sr:   sr,
		beat: sr.N(time.Minute / 140 / 2),
	}
}

// PatternLength returns the number of samples in one pass over the
// bassline.
func (g *RunnerGenerator) PatternLength() int {
	return g.beat * len(bassline)
}

// Once limits the generator to a single pass over the bassline.
func (g *RunnerGenerator) Once() *RunnerGenerator {
	g.length = g.PatternLength()
	return g
}

func (g *RunnerGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.finished {
		return 0, false
	}
	for i := range samples {
		if g.length > 0 && g.pos >= g.length {
			g.finished = true
			return i, i > 0
		}

		beatPos := g.pos % g.beat
		note := bassline[(g.pos/g.beat)%len(bassline)]
		t := float64(beatPos) / float64(g.sr)

		// Kick on every other beat
		kick := 0.0
		kickLen := g.sr.N(80 * time.Millisecond)
		if (g.pos/g.beat)%2 == 0 && beatPos < kickLen {
			env := 1.0 - float64(beatPos)/float64(kickLen)
			kick = 0.35 * env * math.Sin(2*math.Pi*55*(1+2*env)*t)
		}

		// Square bass with a short decay per note
		phase := math.Mod(note*t, 1)
		bass := 0.12
		if phase >= 0.5 {
			bass = -0.12
		}
		bass *= math.Exp(-t * 3)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *RunnerGenerator) Err() error {
	return nil
}
