package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(8000)

func stream(t *testing.T, s beep.Streamer, n int) [][2]float64 {
	t.Helper()
	buf := make([][2]float64, n)
	got, ok := s.Stream(buf)
	if !ok || got != n {
		t.Fatalf("Stream() = (%d, %v), expected (%d, true)", got, ok, n)
	}
	return buf
}

func silent(buf [][2]float64) bool {
	for _, s := range buf {
		if s[0] != 0 || s[1] != 0 {
			return false
		}
	}
	return true
}

func TestRunnerGeneratorRange(t *testing.T) {
	g := NewRunnerGenerator(testRate)
	buf := stream(t, g, 4000)

	for i, s := range buf {
		if s[0] < -1 || s[0] > 1 {
			t.Fatalf("sample %d out of range: %f", i, s[0])
		}
		if s[0] != s[1] {
			t.Fatalf("sample %d: channels differ", i)
		}
	}
	if silent(buf) {
		t.Error("generator produced silence")
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v, expected nil", g.Err())
	}
}

func TestRunnerGeneratorOnce(t *testing.T) {
	g := NewRunnerGenerator(testRate).Once()
	total := 0
	buf := make([][2]float64, 1000)
	for {
		n, ok := g.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > g.PatternLength()*2 {
			t.Fatal("single-pass generator never finished")
		}
	}
	if total != g.PatternLength() {
		t.Errorf("streamed %d samples, expected %d", total, g.PatternLength())
	}
}

func TestMusicPlayPause(t *testing.T) {
	m := NewMusic(SynthSource(testRate), nil)
	m.SetVolume(1)

	if !silent(stream(t, m.Streamer(), 512)) {
		t.Error("new track should be paused")
	}

	m.Play()
	if !m.Playing() {
		t.Error("Playing() should be true after Play")
	}
	if silent(stream(t, m.Streamer(), 512)) {
		t.Error("playing track produced silence")
	}

	m.Pause()
	if m.Playing() || !silent(stream(t, m.Streamer(), 512)) {
		t.Error("paused track should be silent")
	}
}

func TestMusicStopRewinds(t *testing.T) {
	m := NewMusic(SynthSource(testRate), nil)
	m.SetVolume(1)
	m.Play()
	first := stream(t, m.Streamer(), 256)
	stream(t, m.Streamer(), 2048)

	m.Stop()
	if m.Playing() {
		t.Error("Playing() should be false after Stop")
	}
	m.Play()
	again := stream(t, m.Streamer(), 256)

	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("sample %d differs after restart: %v vs %v", i, first[i], again[i])
		}
	}
}

func TestMusicVolume(t *testing.T) {
	m := NewMusic(SynthSource(testRate), nil)
	m.Play()

	m.SetVolume(0)
	if !silent(stream(t, m.Streamer(), 512)) {
		t.Error("zero volume should mute")
	}

	m.SetVolume(0.5)
	if m.volume.Silent || m.volume.Volume != -1 {
		t.Errorf("volume = %+v, expected log2(0.5) = -1", m.volume)
	}
}

func TestMusicSourceFailure(t *testing.T) {
	m := NewMusic(func(bool) (beep.Streamer, error) {
		return nil, errors.New("no file")
	}, nil)

	m.Play()
	if m.Playing() {
		t.Error("track with a failing source should stay stopped")
	}
}

func TestMusicLoopSelectsSource(t *testing.T) {
	var loops []bool
	m := NewMusic(func(loop bool) (beep.Streamer, error) {
		loops = append(loops, loop)
		return beep.Silence(-1), nil
	}, nil)

	m.SetLoop(true)
	m.Play()
	m.Stop()
	m.SetLoop(false)
	m.Play()

	if len(loops) != 2 || !loops[0] || loops[1] {
		t.Errorf("source loop flags = %v, expected [true false]", loops)
	}
}

type closingStream struct {
	beep.Streamer
	closed int
}

func (c *closingStream) Close() error {
	c.closed++
	return nil
}

func TestMusicStopClosesStream(t *testing.T) {
	var streams []*closingStream
	m := NewMusic(func(bool) (beep.Streamer, error) {
		c := &closingStream{Streamer: beep.Silence(-1)}
		streams = append(streams, c)
		return c, nil
	}, nil)

	for i := 0; i < 3; i++ {
		m.Play()
		m.Stop()
	}

	if len(streams) != 3 {
		t.Fatalf("source called %d times, expected 3", len(streams))
	}
	for i, c := range streams {
		if c.closed != 1 {
			t.Errorf("stream %d closed %d times, expected 1", i, c.closed)
		}
	}

	m.Stop()
	if streams[2].closed != 1 {
		t.Error("second Stop closed the stream again")
	}
}

func TestFileSourceMissing(t *testing.T) {
	if _, err := FileSource("/nonexistent/music.mp3", testRate)(true); err == nil {
		t.Error("missing file should fail")
	}
}

func TestNop(t *testing.T) {
	var n Nop
	n.Play()
	n.SetLoop(true)
	n.SetVolume(0.3)
	n.Pause()
	n.Stop()
}
