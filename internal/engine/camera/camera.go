// Package camera provides the first-person camera for the periodic world.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/torusgl/pkg/torus"
)

// Zoom level bounds. The horizontal field of view is 2^ZoomLevel radians, so
// the range spans 0.5 to 2 radians.
const (
	ZoomMin = -1.0
	ZoomMax = 1.0
)

// Near clip plane distance.
const nearPlane = 3e-3

// FirstPerson is a free-look camera living in the periodic world. The
// position is kept wrapped into the canonical cell.
type FirstPerson struct {
	Position  mgl32.Vec3
	Yaw       float32 // radians, around +Z up axis
	Pitch     float32 // radians, clamped short of the poles
	ZoomLevel float64 // log2 of the horizontal FOV in radians

	period torus.Period
}

// New creates a camera at pos with the given world period.
func New(pos mgl32.Vec3, period torus.Period) *FirstPerson {
	return &FirstPerson{
		Position: period.Wrap(pos),
		period:   period,
	}
}

// FOVDegrees returns the horizontal field of view in degrees.
func (c *FirstPerson) FOVDegrees() float64 {
	return gomath.Pow(2, c.ZoomLevel) * 180 / gomath.Pi
}

// Forward returns the unit view direction.
func (c *FirstPerson) Forward() mgl32.Vec3 {
	cp := float32(gomath.Cos(float64(c.Pitch)))
	return mgl32.Vec3{
		cp * float32(gomath.Cos(float64(c.Yaw))),
		cp * float32(gomath.Sin(float64(c.Yaw))),
		float32(gomath.Sin(float64(c.Pitch))),
	}
}

// Right returns the unit right direction on the horizontal plane.
func (c *FirstPerson) Right() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(gomath.Sin(float64(c.Yaw))),
		-float32(gomath.Cos(float64(c.Yaw))),
		0,
	}
}

// Up returns the camera up vector.
func (c *FirstPerson) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Forward())
}

// Visibility returns the fog/draw distance derived from the field of view.
func (c *FirstPerson) Visibility() float32 {
	return float32(3240 / (c.FOVDegrees() + 240))
}

// BarrelZoom returns the barrel distortion strength for the composite stage.
func (c *FirstPerson) BarrelZoom() float32 {
	return float32((c.ZoomLevel + 1) / 100)
}

// ViewProj returns the combined view-projection matrix for the given output
// aspect ratio, with the far plane at the visibility distance.
func (c *FirstPerson) ViewProj(aspect float32) mgl32.Mat4 {
	fovX := float32(gomath.Pow(2, c.ZoomLevel))
	fovY := 2 * float32(gomath.Atan(gomath.Tan(float64(fovX)/2)/float64(aspect)))
	proj := mgl32.Perspective(fovY, aspect, nearPlane, c.Visibility())
	view := mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), c.Up())
	return proj.Mul4(view)
}

// Look rotates the view by the given yaw/pitch deltas in radians, clamping
// pitch short of the poles.
func (c *FirstPerson) Look(dyaw, dpitch float32) {
	c.Yaw += dyaw
	const maxPitch = gomath.Pi/2 - 1e-3
	c.Pitch += dpitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// LookSpeed returns the per-count rotation for the given base mouse speed;
// it shrinks as the view zooms in so aiming stays controllable.
func (c *FirstPerson) LookSpeed(mouseSpeed float64) float32 {
	return float32(gomath.Pow(2, c.ZoomLevel) * mouseSpeed)
}

// Zoom adjusts the zoom level by scroll steps, zoomSpeed steps covering the
// whole range.
func (c *FirstPerson) Zoom(steps, zoomSpeed float64) {
	if zoomSpeed <= 0 {
		return
	}
	c.ZoomLevel += steps * 2 / zoomSpeed
	if c.ZoomLevel < ZoomMin {
		c.ZoomLevel = ZoomMin
	}
	if c.ZoomLevel > ZoomMax {
		c.ZoomLevel = ZoomMax
	}
}

// Move translates the camera by a world-space delta, wrapping the result
// into the canonical cell.
func (c *FirstPerson) Move(delta mgl32.Vec3) {
	c.Position = c.period.Wrap(c.Position.Add(delta))
}

// SetFOVDegrees sets the zoom level from a field of view in degrees,
// clamping to the zoom range.
func (c *FirstPerson) SetFOVDegrees(deg float64) {
	rad := deg * gomath.Pi / 180
	if rad < 0.5 {
		rad = 0.5
	}
	if rad > 2 {
		rad = 2
	}
	c.ZoomLevel = gomath.Log2(rad)
}
