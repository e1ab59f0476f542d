package torus

import (
	gomath "math"
	"testing"
)

func TestBarrelIdentityAtZeroZoom(t *testing.T) {
	tests := []struct {
		x, y, wantX, wantY float32
	}{
		{-1, -1, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0.5, 0.5},
		{0.5, -0.5, 0.75, 0.25},
	}
	for _, tt := range tests {
		gx, gy := Barrel(tt.x, tt.y, 0)
		if gomath.Abs(float64(gx-tt.wantX)) > 1e-6 || gomath.Abs(float64(gy-tt.wantY)) > 1e-6 {
			t.Errorf("Barrel(%v, %v, 0) = (%v, %v), want (%v, %v)",
				tt.x, tt.y, gx, gy, tt.wantX, tt.wantY)
		}
	}
}

func TestBarrelCompressesEdges(t *testing.T) {
	// Positive zoom pulls the edges inward.
	gx, _ := Barrel(1, 0, 0.02)
	if gx >= 1 {
		t.Errorf("Barrel(1,0,0.02).x = %v, want < 1", gx)
	}
	// Center is fixed.
	cx, cy := Barrel(0, 0, 0.02)
	if cx != 0.5 || cy != 0.5 {
		t.Errorf("center moved to (%v, %v)", cx, cy)
	}
}

func TestFringeIdentityAtZeroDelta(t *testing.T) {
	for _, c := range []float32{-1, -0.3, 0, 0.7, 1} {
		gx, gy := Fringe(c, -c, 0)
		wx, wy := c*0.5+0.5, -c*0.5+0.5
		if gomath.Abs(float64(gx-wx)) > 1e-6 || gomath.Abs(float64(gy-wy)) > 1e-6 {
			t.Errorf("Fringe(%v, %v, 0) = (%v, %v), want (%v, %v)", c, -c, gx, gy, wx, wy)
		}
	}
}

func TestFringeSignSymmetry(t *testing.T) {
	gx, _ := Fringe(0.5, 0, 0.2)
	nx, _ := Fringe(-0.5, 0, 0.2)
	if gomath.Abs(float64((gx-0.5)+(nx-0.5))) > 1e-6 {
		t.Errorf("fringe not odd-symmetric about center: %v vs %v", gx, nx)
	}
}

func TestSaturationGrayIsZero(t *testing.T) {
	for _, v := range []float32{0, 0.25, 0.5, 1} {
		if s := Saturation(v, v, v); s != 0 {
			t.Errorf("Saturation(%v,%v,%v) = %v, want 0", v, v, v, s)
		}
	}
}

func TestSaturationAmplifiesColor(t *testing.T) {
	pure := Saturation(1, 0, 0)
	nearGray := Saturation(0.4, 0.33, 0.33)
	if pure <= nearGray {
		t.Errorf("saturated input %v should exceed near-gray %v", pure, nearGray)
	}
	if pure != 2 {
		t.Errorf("Saturation(1,0,0) = %v, want 2", pure)
	}
}
