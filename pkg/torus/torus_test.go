package torus

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOffsetsCount(t *testing.T) {
	p := DefaultPeriod
	offs := p.Offsets()
	seen := map[mgl32.Vec3]bool{}
	for _, o := range offs {
		if seen[o] {
			t.Errorf("duplicate offset %v", o)
		}
		seen[o] = true
	}
	if len(seen) != 27 {
		t.Errorf("expected 27 distinct offsets, got %d", len(seen))
	}
	if !seen[(mgl32.Vec3{})] {
		t.Error("zero offset missing")
	}
	if !seen[(mgl32.Vec3{-12, 12, -9})] {
		t.Error("corner offset (-12,12,-9) missing")
	}
}

func TestWrap(t *testing.T) {
	p := DefaultPeriod
	tests := []struct {
		in, want mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 0}},
		{mgl32.Vec3{12, 12, 9}, mgl32.Vec3{0, 0, 0}},
		{mgl32.Vec3{-0.5, 13, 9.5}, mgl32.Vec3{11.5, 1, 0.5}},
		{mgl32.Vec3{25, -25, -1}, mgl32.Vec3{1, 11, 8}},
	}
	for _, tt := range tests {
		got := p.Wrap(tt.in)
		if got.Sub(tt.want).Len() > 1e-5 {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDistanceWrapsAroundBoundary(t *testing.T) {
	p := DefaultPeriod
	a := mgl32.Vec3{0.05, 6, 4}
	b := mgl32.Vec3{11.95, 6, 4}
	got := p.Distance(a, b)
	if gomath.Abs(float64(got)-0.1) > 1e-5 {
		t.Errorf("boundary distance = %v, want 0.1", got)
	}
}

// Replication completeness: for any point within one period of the camera,
// the minimum distance over the 27 lattice images equals the wrapped distance.
// No closer image exists outside the 27 offsets.
func TestReplicationComplete(t *testing.T) {
	p := DefaultPeriod
	rng := rand.New(rand.NewSource(1))
	offs := p.Offsets()
	for i := 0; i < 1000; i++ {
		cam := mgl32.Vec3{rng.Float32() * p.X, rng.Float32() * p.Y, rng.Float32() * p.Z}
		pt := mgl32.Vec3{rng.Float32() * p.X, rng.Float32() * p.Y, rng.Float32() * p.Z}

		best := float32(gomath.MaxFloat32)
		for _, off := range offs {
			if d := pt.Add(off).Sub(cam).Len(); d < best {
				best = d
			}
		}
		want := p.Distance(cam, pt)
		if gomath.Abs(float64(best-want)) > 1e-4 {
			t.Fatalf("cam=%v pt=%v: min image distance %v != wrapped distance %v",
				cam, pt, best, want)
		}
	}
}

func TestNearestPicksTranslatedCopy(t *testing.T) {
	p := DefaultPeriod
	cam := mgl32.Vec3{0.0, 2, 2}
	// Just on the far side of the x boundary: nearest image is at x = -0.1.
	obj := mgl32.Vec3{11.9, 2, 2}
	got := p.Nearest(cam, obj)
	want := mgl32.Vec3{-0.1, 2, 2}
	if got.Sub(want).Len() > 1e-4 {
		t.Errorf("Nearest = %v, want %v", got, want)
	}
	if d := got.Sub(cam).Len(); gomath.Abs(float64(d)-0.1) > 1e-4 {
		t.Errorf("nearest image distance = %v, want 0.1", d)
	}
}
