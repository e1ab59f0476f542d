// Package game defines the per-frame contract between the game-state layer
// and the renderer: a snapshot of the camera and every drawable to be drawn.
// The renderer holds no game state of its own; it consumes one Snapshot per
// frame and produces pixels.
package game

import "github.com/go-gl/mathgl/mgl32"

// MeshKind selects the triangle mesh a drawable is rendered with.
type MeshKind uint8

const (
	// MeshAvatar is the opaque player tetrahedron, shaded by inverse-square
	// intensity.
	MeshAvatar MeshKind = iota
	// MeshProjectile is the additive-blended octahedron shard, faded by its
	// remaining power and the linear depth falloff.
	MeshProjectile
)

// Drawable is one mesh instance to render this frame. The game-state layer
// owns its lifetime; the renderer only reads the current transform and tint.
type Drawable struct {
	Kind     MeshKind
	Position mgl32.Vec3
	Rotation mgl32.Mat3
	Tint     mgl32.Vec3
	// Alpha is the externally supplied fade value: remaining power fraction
	// for projectiles, health for avatars. In [0,1].
	Alpha float32
}

// CameraState is the frozen camera for one frame. Mutated only between
// frames by the input/physics layer.
type CameraState struct {
	Position   mgl32.Vec3
	ViewProj   mgl32.Mat4
	Visibility float32 // draw/fog distance in world units
	Zoom       float32 // barrel distortion strength
	Aberration float32 // chromatic fringing strength
}

// Snapshot is everything the renderer needs for one frame.
type Snapshot struct {
	Camera    CameraState
	Drawables []Drawable
}
