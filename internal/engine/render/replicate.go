package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/torusgl/internal/game"
	"github.com/Faultbox/torusgl/pkg/torus"
)

// VertexStride is the number of floats per expanded vertex:
// position (3), tint (3), alpha (1), intensity (1).
const VertexStride = 8

// Expander turns drawables into translated triangle soup. Each drawable is
// stamped once per lattice offset so every image of the periodic world that
// could reach the viewer is present in the stream; copies that would be
// indistinguishable from the background are skipped.
type Expander struct {
	offsets [27]mgl32.Vec3
}

func NewExpander(p torus.Period) *Expander {
	return &Expander{offsets: p.Offsets()}
}

// Expand appends the visible copies of d to dst and returns the extended
// slice. Distances are plain euclidean per copy; wrapping is already handled
// by the lattice offsets.
func (e *Expander) Expand(dst []float32, d game.Drawable, cam game.CameraState) []float32 {
	mesh, radius := meshFor(d.Kind)
	vis := cam.Visibility
	if vis < torus.MinVisibility {
		vis = torus.MinVisibility
	}

	for _, off := range e.offsets {
		center := d.Position.Add(off)
		if center.Sub(cam.Position).Len()-radius > vis {
			continue
		}
		if !sphereVisible(cam.ViewProj, center, radius) {
			continue
		}
		for _, v := range mesh {
			world := d.Rotation.Mul3x1(v).Add(center)
			dist := world.Sub(cam.Position).Len()
			fade := torus.LinearFade(dist, vis)
			intensity := torus.Intensity(dist, vis)
			dst = append(dst,
				world.X(), world.Y(), world.Z(),
				d.Tint.X(), d.Tint.Y(), d.Tint.Z(),
				d.Alpha*fade, intensity,
			)
		}
	}
	return dst
}

// sphereVisible tests a bounding sphere against the six clip planes of a
// view-projection matrix (Gribb/Hartmann extraction). Returns true when any
// part of the sphere may be inside the frustum.
func sphereVisible(vp mgl32.Mat4, center mgl32.Vec3, radius float32) bool {
	r3 := vp.Row(3)
	for i := 0; i < 3; i++ {
		ri := vp.Row(i)
		if !spherePastPlane(r3.Add(ri), center, radius) {
			return false
		}
		if !spherePastPlane(r3.Sub(ri), center, radius) {
			return false
		}
	}
	return true
}

func spherePastPlane(plane mgl32.Vec4, center mgl32.Vec3, radius float32) bool {
	n := plane.Vec3()
	l := n.Len()
	if l == 0 {
		return true
	}
	return n.Dot(center)+plane.W() >= -radius*l
}
