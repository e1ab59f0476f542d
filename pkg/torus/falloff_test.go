package torus

import (
	gomath "math"
	"testing"
)

func TestLinearFade(t *testing.T) {
	tests := []struct {
		dist, vis, want float32
	}{
		{0, 4, 1},
		{2, 4, 0.5},
		{4, 4, 0},
		{8, 4, 0}, // clamped, never negative
	}
	for _, tt := range tests {
		got := LinearFade(tt.dist, tt.vis)
		if gomath.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("LinearFade(%v, %v) = %v, want %v", tt.dist, tt.vis, got, tt.want)
		}
	}
}

func TestIntensity(t *testing.T) {
	if got := Intensity(0, 4); got != 1 {
		t.Errorf("Intensity(0) = %v, want 1", got)
	}
	// Avatar at distance 2 with visibility 4: 1/(1+(2/4)^2) = 0.8.
	if got := Intensity(2, 4); gomath.Abs(float64(got)-0.8) > 1e-6 {
		t.Errorf("Intensity(2, 4) = %v, want 0.8", got)
	}
	// Wrapped-sense distance 0.1 near a boundary: ~0.9994, not near zero.
	if got := Intensity(0.1, 4); gomath.Abs(float64(got)-0.999375) > 1e-5 {
		t.Errorf("Intensity(0.1, 4) = %v, want ~0.9994", got)
	}
}

func TestIntensityMonotonic(t *testing.T) {
	prev := float32(2)
	for d := float32(0); d < 100; d += 0.25 {
		got := Intensity(d, 4)
		if got > prev {
			t.Fatalf("Intensity not non-increasing at d=%v: %v > %v", d, got, prev)
		}
		prev = got
	}
	if far := Intensity(1e6, 4); far > 1e-9 {
		t.Errorf("Intensity(1e6) = %v, want ~0", far)
	}
}

func TestZeroVisibilityClamped(t *testing.T) {
	for _, f := range []float32{
		LinearFade(1, 0),
		Intensity(1, 0),
		DepthIntensity(0.5, 0),
	} {
		if gomath.IsNaN(float64(f)) || gomath.IsInf(float64(f), 0) {
			t.Errorf("falloff with zero visibility produced non-finite %v", f)
		}
	}
}

func TestDepthIntensity(t *testing.T) {
	if got := DepthIntensity(1, 4); got != 1 {
		t.Errorf("DepthIntensity(1) = %v, want 1", got)
	}
	if near, far := DepthIntensity(0.9, 4), DepthIntensity(0.1, 4); near <= far {
		t.Errorf("DepthIntensity should decrease with depth: near=%v far=%v", near, far)
	}
}
