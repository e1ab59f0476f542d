package game

import gomath "math"

// Post-process tuning constants. Aberration grows as the field of view
// narrows or health drops, capped at AberrationMax; a dead camera is pinned
// to the cap.
const (
	AberrationMax = 0.42069
	aberrationExp = 1.303577269034
)

// Aberration returns the chromatic fringing strength for the given horizontal
// field of view (degrees) and relative health in [0,1].
func Aberration(fovDegrees, health float64) float32 {
	if health <= 0 {
		return AberrationMax
	}
	a := gomath.Pow(fovDegrees*health, -aberrationExp)
	return float32(gomath.Min(AberrationMax, a))
}

// Visibility derives the fog/draw distance from the horizontal field of view
// in degrees: zooming in sees farther.
func Visibility(fovDegrees float64) float32 {
	return float32(3240 / (fovDegrees + 240))
}
