package render

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/torusgl/internal/game"
)

// Avatar mesh: a regular tetrahedron whose circumscribed sphere has radius
// 1/6 world unit. Projectile mesh: the regular octahedron of its edge
// midpoints.
var (
	tetraVertices [4]mgl32.Vec3
	octoVertices  [6]mgl32.Vec3

	tetraIndices = [12]int{0, 1, 2, 3, 1, 2, 0, 3, 2, 0, 3, 1}
	octoIndices  = [24]int{
		0, 1, 2, 0, 1, 3, 4, 0, 2, 4, 0, 3,
		2, 1, 5, 3, 1, 5, 2, 5, 4, 3, 5, 4,
	}

	tetraRadius float32
	octoRadius  float32
)

// Octahedron vertices are the pairwise midpoints of the tetrahedron corners,
// in combination order.
var octoPairs = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

func init() {
	s2 := float32(gomath.Sqrt(2))
	s6 := float32(gomath.Sqrt(6))
	s8 := float32(gomath.Sqrt(8))
	base := [4]mgl32.Vec3{
		{0, s8, -1},
		{s6, -s2, -1},
		{0, 0, 3},
		{-s6, -s2, -1},
	}
	for i, v := range base {
		tetraVertices[i] = v.Mul(1.0 / 18)
	}
	for i, p := range octoPairs {
		octoVertices[i] = tetraVertices[p[0]].Add(tetraVertices[p[1]]).Mul(0.5)
	}
	tetraRadius = tetraVertices[0].Len()
	octoRadius = octoVertices[0].Len()
	tetraTriangles = flatten(tetraVertices[:], tetraIndices[:])
	octoTriangles = flatten(octoVertices[:], octoIndices[:])
}

// meshFor returns the flattened triangle list and bounding radius for a mesh
// kind. The returned slice is shared; callers must not mutate it.
func meshFor(kind game.MeshKind) ([]mgl32.Vec3, float32) {
	switch kind {
	case game.MeshProjectile:
		return octoTriangles, octoRadius
	default:
		return tetraTriangles, tetraRadius
	}
}

// Index-flattened triangle lists, built once in init.
var (
	tetraTriangles []mgl32.Vec3
	octoTriangles  []mgl32.Vec3
)

func flatten(verts []mgl32.Vec3, indices []int) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(indices))
	for i, idx := range indices {
		out[i] = verts[idx]
	}
	return out
}
