package torus

// MinVisibility is the smallest visibility distance the falloff models accept.
// Smaller values are clamped so a zero draw distance cannot divide by zero and
// leak non-finite values into the framebuffer.
const MinVisibility = 1e-4

// LinearFade returns the transparency falloff clamp(1 - dist/visibility, 0, 1).
// Used where depth determines alpha, e.g. projectiles fading into nothing.
func LinearFade(dist, visibility float32) float32 {
	if visibility < MinVisibility {
		visibility = MinVisibility
	}
	a := 1 - dist/visibility
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Intensity returns the inverse-square shading falloff 1/(1+(dist/visibility)²).
// Used where depth determines brightness against an opaque surface; it
// approaches zero asymptotically but never reaches it, so opaque geometry past
// the linear-fade horizon must be fogged out to the background color instead
// of left clipped at black.
func Intensity(dist, visibility float32) float32 {
	if visibility < MinVisibility {
		visibility = MinVisibility
	}
	r := dist / visibility
	return 1 / (1 + r*r)
}

// DepthIntensity is the variant of Intensity for passes that only have the
// normalized device depth z in [0,1]: 1/(1+(1-z)²/visibility).
func DepthIntensity(z, visibility float32) float32 {
	if visibility < MinVisibility {
		visibility = MinVisibility
	}
	d := 1 - z
	return 1 / (1 + d*d/visibility)
}
