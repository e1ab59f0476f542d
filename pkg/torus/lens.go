package torus

import gomath "math"

// MinimapWeight is the blend factor of the orientation overlay in the final
// composite.
const MinimapWeight = 0.42

// Barrel applies the radial lens distortion to a coordinate in [-1,1]²,
// returning a sampling coordinate in [0,1]²:
//
//	coord' = coord · (1 + zoom·|coord|²) · (0.5 - zoom) + 0.5
//
// At zoom = 0 this is the plain [-1,1] → [0,1] remap.
func Barrel(x, y, zoom float32) (float32, float32) {
	r2 := x*x + y*y
	s := (1 + zoom*r2) * (0.5 - zoom)
	return x*s + 0.5, y*s + 0.5
}

// Fringe warps one channel's sampling coordinate for chromatic aberration:
//
//	fringe(c, δ) = sign(c) · |c|^(1+δ) · 0.5 + 0.5
//
// with δ = -aberration for red and δ = +aberration for green. δ = 0 is the
// plain remap, so zero aberration samples all channels at the same point.
func Fringe(x, y, delta float32) (float32, float32) {
	return fringeAxis(x, delta), fringeAxis(y, delta)
}

func fringeAxis(c, delta float32) float32 {
	s := float32(1)
	if c < 0 {
		s = -1
		c = -c
	}
	return s*float32(gomath.Pow(float64(c), float64(1+delta)))*0.5 + 0.5
}

// Saturation is the cheap chroma-distance measure |r-g| + |g-b| + |b-r|.
// Zero for any gray input, maximal for fully saturated primaries. The
// highlight pass multiplies a color by its own saturation to suppress
// near-grayscale regions.
func Saturation(r, g, b float32) float32 {
	return abs(r-g) + abs(g-b) + abs(b-r)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
