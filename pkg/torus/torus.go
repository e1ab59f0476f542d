// Package torus provides the periodic-world math shared by every render pass:
// lattice replication offsets, distance falloff, orientation colormaps and the
// lens formulas mirrored by the post-processing shaders.
package torus

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Period is the wrap period of the world along each axis. Positions x and
// x + k·Period are physically identical for any integer vector k. Fixed at
// world-generation time and read-only to the renderer.
type Period struct {
	X, Y, Z float32
}

// DefaultPeriod matches the generated world grid.
var DefaultPeriod = Period{X: 12, Y: 12, Z: 9}

// Vec returns the period as a vector.
func (p Period) Vec() mgl32.Vec3 {
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// Offsets returns the 27 lattice translation vectors {-X,0,X}×{-Y,0,Y}×{-Z,0,Z}.
// Replicating geometry across these offsets makes the wraparound seamless: for
// any point within one period of the camera, one of the 27 images is the true
// nearest periodic image.
func (p Period) Offsets() [27]mgl32.Vec3 {
	var out [27]mgl32.Vec3
	i := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				out[i] = mgl32.Vec3{
					float32(dx) * p.X,
					float32(dy) * p.Y,
					float32(dz) * p.Z,
				}
				i++
			}
		}
	}
	return out
}

// Wrap maps v into the canonical cell [0,X)×[0,Y)×[0,Z).
func (p Period) Wrap(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		wrap(v.X(), p.X),
		wrap(v.Y(), p.Y),
		wrap(v.Z(), p.Z),
	}
}

func wrap(x, period float32) float32 {
	if period <= 0 {
		return x
	}
	m := float32(gomath.Mod(float64(x), float64(period)))
	if m < 0 {
		m += period
	}
	return m
}

// Distance returns the wrapped (minimum-image) distance between a and b.
func (p Period) Distance(a, b mgl32.Vec3) float32 {
	dx := axisDelta(a.X()-b.X(), p.X)
	dy := axisDelta(a.Y()-b.Y(), p.Y)
	dz := axisDelta(a.Z()-b.Z(), p.Z)
	return float32(gomath.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

func axisDelta(d, period float32) float32 {
	if period <= 0 {
		return d
	}
	d = wrap(d, period)
	if d > period/2 {
		d = period - d
	}
	return d
}

// Nearest returns the image of to (under the 27 lattice offsets) closest to
// from. The input is wrapped into the canonical cell first, so the result is
// independent of which image the caller holds.
func (p Period) Nearest(from, to mgl32.Vec3) mgl32.Vec3 {
	to = p.Wrap(to)
	best := to
	bestDist := float32(gomath.MaxFloat32)
	for _, off := range p.Offsets() {
		img := to.Add(off)
		if d := img.Sub(from).LenSqr(); d < bestDist {
			bestDist = d
			best = img
		}
	}
	return best
}
