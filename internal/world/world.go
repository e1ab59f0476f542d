// Package world owns the periodic occupancy grid the game is played in and
// the static wall geometry derived from it.
package world

import (
	gomath "math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/torusgl/pkg/torus"
)

// Grid dimensions in cells; one cell is one world unit, so the grid spans
// exactly one period along each axis.
const (
	SizeX = 12
	SizeY = 12
	SizeZ = 9
)

// Target fraction of occupied cells when generating.
const fillDensity = 0.27

// Grid is a periodic boolean occupancy grid. Coordinates wrap: cell (x,y,z)
// and (x+SizeX, y, z) are the same cell.
type Grid struct {
	cells [SizeX][SizeY][SizeZ]bool
}

// Generate builds a deterministic grid from the seed: a random fill thinned
// by open corridors along each axis so the space stays traversable.
func Generate(seed int64) *Grid {
	g := &Grid{}
	rng := rand.New(rand.NewSource(seed))

	for x := 0; x < SizeX; x++ {
		for y := 0; y < SizeY; y++ {
			for z := 0; z < SizeZ; z++ {
				if x%3 == 1 || y%3 == 1 || z%3 == 1 {
					continue // corridor
				}
				g.cells[x][y][z] = rng.Float64() < fillDensity
			}
		}
	}
	return g
}

// Period returns the wrap period matching the grid dimensions.
func (g *Grid) Period() torus.Period {
	return torus.Period{X: SizeX, Y: SizeY, Z: SizeZ}
}

// Occupied reports whether the cell containing integer coordinates (x,y,z)
// is solid. Indices wrap.
func (g *Grid) Occupied(x, y, z int) bool {
	return g.cells[mod(x, SizeX)][mod(y, SizeY)][mod(z, SizeZ)]
}

func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Placeable reports whether a sphere of radius r centered at p intersects no
// occupied cell, checking the wrapped cells within r along each axis.
func (g *Grid) Placeable(p mgl32.Vec3, r float32) bool {
	xs := axisCells(p.X(), r, SizeX)
	ys := axisCells(p.Y(), r, SizeY)
	zs := axisCells(p.Z(), r, SizeZ)
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				if g.cells[x][y][z] {
					return false
				}
			}
		}
	}
	return true
}

func axisCells(c, r float32, n int) []int {
	set := map[int]bool{
		cellIndex(c-r, n): true,
		cellIndex(c, n):   true,
		cellIndex(c+r, n): true,
	}
	out := make([]int, 0, 3)
	for i := range set {
		out = append(out, i)
	}
	return out
}

// cellIndex wraps a coordinate into [0,n) before truncating, so values just
// below zero land in cell n-1 rather than cell 0.
func cellIndex(c float32, n int) int {
	w := gomath.Mod(float64(c), float64(n))
	if w < 0 {
		w += float64(n)
	}
	return mod(int(w), n)
}

// Unit wall quads in each axis plane, anchored at the cell corner. A quad is
// two counter-ordered triangles, six vertices.
var (
	quadXY = [6]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 1, 0}, {0, 1, 0}, {0, 0, 0}}
	quadYZ = [6]mgl32.Vec3{{0, 0, 0}, {0, 1, 0}, {0, 1, 1}, {0, 1, 1}, {0, 0, 1}, {0, 0, 0}}
	quadZX = [6]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {1, 0, 1}, {0, 0, 1}, {0, 0, 0}}
)

// WallVertices emits the static wall mesh as an xyz triangle soup: one quad
// per occupancy transition along each axis, replicated across all 27 lattice
// images so the walls are seamless at the period boundary. Built once at
// world-generation time; only dynamic drawables are re-expanded per frame.
func (g *Grid) WallVertices() []float32 {
	var faces []mgl32.Vec3
	for x := 0; x < SizeX; x++ {
		for y := 0; y < SizeY; y++ {
			for z := 0; z < SizeZ; z++ {
				occ := g.cells[x][y][z]
				corner := mgl32.Vec3{float32(x), float32(y), float32(z)}
				if g.Occupied(x, y, z-1) != occ {
					faces = appendQuad(faces, corner, quadXY)
				}
				if g.Occupied(x-1, y, z) != occ {
					faces = appendQuad(faces, corner, quadYZ)
				}
				if g.Occupied(x, y-1, z) != occ {
					faces = appendQuad(faces, corner, quadZX)
				}
			}
		}
	}

	offsets := g.Period().Offsets()
	out := make([]float32, 0, len(faces)*len(offsets)*3)
	for _, off := range offsets {
		for _, v := range faces {
			w := v.Add(off)
			out = append(out, w.X(), w.Y(), w.Z())
		}
	}
	return out
}

func appendQuad(dst []mgl32.Vec3, corner mgl32.Vec3, quad [6]mgl32.Vec3) []mgl32.Vec3 {
	for _, q := range quad {
		dst = append(dst, corner.Add(q))
	}
	return dst
}
