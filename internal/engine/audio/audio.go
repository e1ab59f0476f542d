// Package audio provides sound effect playback. All effects are synthesized
// at startup, so no asset files are needed.
package audio

import (
	"fmt"
	gomath "math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager handles sound effect playback.
type Manager struct {
	mu sync.Mutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings (0.0 to 1.0)
	volume float64

	mixer *beep.Mixer

	shot   [][2]float64
	bounce [][2]float64
}

// New creates a new audio manager.
func New(volume float64) *Manager {
	return &Manager{
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker and synthesizes the effect buffers.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.shot = synthShot(m.sampleRate)
	m.bounce = synthBounce(m.sampleRate)
	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Close()
	m.initialized = false
}

// PlayShot queues one fire effect.
func (m *Manager) PlayShot() {
	m.play(m.shot)
}

// PlayBounce queues one ricochet effect.
func (m *Manager) PlayBounce() {
	m.play(m.bounce)
}

func (m *Manager) play(samples [][2]float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized || len(samples) == 0 {
		return
	}

	streamer := &bufferStreamer{samples: samples}
	vol := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volumeGain(m.volume),
		Silent:   m.volume <= 0,
	}
	speaker.Lock()
	m.mixer.Add(vol)
	speaker.Unlock()
}

// volumeGain maps a linear 0..1 setting onto the exponential scale the
// effects package expects.
func volumeGain(v float64) float64 {
	if v <= 0 {
		return -10
	}
	return gomath.Log2(v) * 2
}

// bufferStreamer plays a fixed sample buffer once.
type bufferStreamer struct {
	samples [][2]float64
	pos     int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.samples) {
		return 0, false
	}
	n := copy(samples, b.samples[b.pos:])
	b.pos += n
	return n, true
}

func (b *bufferStreamer) Err() error {
	return nil
}

// synthShot is a short noise burst with an exponential decay.
func synthShot(sr beep.SampleRate) [][2]float64 {
	rng := rand.New(rand.NewSource(1))
	n := sr.N(120 * time.Millisecond)
	out := make([][2]float64, n)
	for i := range out {
		t := float64(i) / float64(n)
		env := gomath.Exp(-6 * t)
		s := (rng.Float64()*2 - 1) * env * 0.6
		out[i] = [2]float64{s, s}
	}
	return out
}

// synthBounce is a decaying sine ping.
func synthBounce(sr beep.SampleRate) [][2]float64 {
	n := sr.N(80 * time.Millisecond)
	out := make([][2]float64, n)
	for i := range out {
		t := float64(i) / float64(sr)
		env := gomath.Exp(-40 * t)
		s := gomath.Sin(2*gomath.Pi*880*t) * env * 0.4
		out[i] = [2]float64{s, s}
	}
	return out
}
