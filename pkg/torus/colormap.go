package torus

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Turbo polynomial fit coefficients, per channel, lowest order first.
// Degree-5 approximation of the Turbo colormap over [0,1].
var (
	turboR = [6]float32{0.13572138, 4.61539260, -42.66032258, 132.13108234, -152.94239396, 59.28637943}
	turboG = [6]float32{0.09140261, 2.19418839, 4.84296658, -14.18503333, 4.27729857, 2.82956604}
	turboB = [6]float32{0.10667330, 12.64194608, -60.58204836, 110.36276771, -89.90310912, 27.34824973}
)

// Turbo maps a scalar in [0,1] to a perceptually distinct RGB color using the
// polynomial Turbo approximation. Out-of-range input is clamped; output
// channels are clamped to [0,1].
func Turbo(v float32) mgl32.Vec3 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return mgl32.Vec3{
		clamp01(polyval(turboR, v)),
		clamp01(polyval(turboG, v)),
		clamp01(polyval(turboB, v)),
	}
}

// TurboCoefficients exposes the per-channel polynomial coefficients, lowest
// degree first, for callers that evaluate the colormap elsewhere (e.g. on the
// GPU).
func TurboCoefficients() (r, g, b [6]float32) {
	return turboR, turboG, turboB
}

func polyval(c [6]float32, v float32) float32 {
	// Horner, highest order first.
	r := c[5]
	for i := 4; i >= 0; i-- {
		r = r*v + c[i]
	}
	return r
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// CellSaturation is the chroma radius of the periodic-cell grid tint.
const CellSaturation = 0.1235

// CellTint derives an orientation tint from a world position: a per-axis
// phase angle reveals the periodic cell the point sits in, mapped through a
// luma/chroma pair to RGB so the hue pattern tiles with the world.
//
//	θ  = Σ_axis ((pos_axis mod P_axis) · π / (1.5 · P_axis))
//	cb = cos(θ)·SAT, cr = sin(θ)·SAT
func CellTint(pos mgl32.Vec3, p Period, luma float32) mgl32.Vec3 {
	w := p.Wrap(pos)
	theta := float64(w.X())*gomath.Pi/float64(1.5*p.X) +
		float64(w.Y())*gomath.Pi/float64(1.5*p.Y) +
		float64(w.Z())*gomath.Pi/float64(1.5*p.Z)
	cb := float32(gomath.Cos(theta)) * CellSaturation
	cr := float32(gomath.Sin(theta)) * CellSaturation
	return YCbCrToRGB(luma, cb, cr)
}

// YCbCrToRGB converts a luma-chroma triple to RGB with the standard JPEG
// full-range matrix. Chroma components are centered on zero.
func YCbCrToRGB(y, cb, cr float32) mgl32.Vec3 {
	return mgl32.Vec3{
		clamp01(y + 1.402*cr),
		clamp01(y - 0.344136*cb - 0.714136*cr),
		clamp01(y + 1.772*cb),
	}
}
