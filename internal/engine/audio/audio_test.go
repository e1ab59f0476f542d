package audio

import (
	gomath "math"
	"testing"
)

func TestSynthBuffersDecay(t *testing.T) {
	for name, buf := range map[string][][2]float64{
		"shot":   synthShot(DefaultSampleRate),
		"bounce": synthBounce(DefaultSampleRate),
	} {
		if len(buf) == 0 {
			t.Errorf("%s: empty buffer", name)
			continue
		}
		last := buf[len(buf)-1][0]
		if gomath.Abs(last) > 0.05 {
			t.Errorf("%s: last sample %v, want near silence", name, last)
		}
		for i, s := range buf {
			if gomath.Abs(s[0]) > 1 || gomath.Abs(s[1]) > 1 {
				t.Fatalf("%s: sample %d out of range: %v", name, i, s)
			}
		}
	}
}

func TestBufferStreamerDrains(t *testing.T) {
	b := &bufferStreamer{samples: make([][2]float64, 100)}
	chunk := make([][2]float64, 64)

	n, ok := b.Stream(chunk)
	if n != 64 || !ok {
		t.Fatalf("first chunk: got (%d, %v), want (64, true)", n, ok)
	}
	n, ok = b.Stream(chunk)
	if n != 36 || !ok {
		t.Fatalf("second chunk: got (%d, %v), want (36, true)", n, ok)
	}
	n, ok = b.Stream(chunk)
	if n != 0 || ok {
		t.Fatalf("drained: got (%d, %v), want (0, false)", n, ok)
	}
}

func TestVolumeGain(t *testing.T) {
	if g := volumeGain(1); g != 0 {
		t.Errorf("volumeGain(1) = %v, want 0", g)
	}
	if g := volumeGain(0.5); g >= 0 {
		t.Errorf("volumeGain(0.5) = %v, want negative", g)
	}
	if g := volumeGain(0); g != -10 {
		t.Errorf("volumeGain(0) = %v, want -10", g)
	}
}
