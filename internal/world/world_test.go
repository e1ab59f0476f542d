package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(7)
	b := Generate(7)
	if a.cells != b.cells {
		t.Error("same seed should generate the same grid")
	}
	c := Generate(8)
	if a.cells == c.cells {
		t.Error("different seeds should generate different grids")
	}
}

func TestCorridorsStayOpen(t *testing.T) {
	g := Generate(3)
	for x := 0; x < SizeX; x++ {
		for z := 0; z < SizeZ; z++ {
			if g.Occupied(x, 1, z) {
				t.Fatalf("corridor cell (%d,1,%d) occupied", x, z)
			}
		}
	}
}

func TestOccupiedWraps(t *testing.T) {
	g := Generate(3)
	for _, tc := range [][2][3]int{
		{{0, 0, 0}, {SizeX, SizeY, SizeZ}},
		{{5, 3, 2}, {5 - SizeX, 3 + SizeY, 2 - SizeZ}},
	} {
		a, b := tc[0], tc[1]
		if g.Occupied(a[0], a[1], a[2]) != g.Occupied(b[0], b[1], b[2]) {
			t.Errorf("occupancy not periodic between %v and %v", a, b)
		}
	}
}

func TestPlaceable(t *testing.T) {
	g := &Grid{}
	g.cells[2][2][2] = true

	if g.Placeable(mgl32.Vec3{2.5, 2.5, 2.5}, 0.2) {
		t.Error("center of an occupied cell should not be placeable")
	}
	if !g.Placeable(mgl32.Vec3{7.5, 7.5, 4.5}, 0.2) {
		t.Error("empty region should be placeable")
	}
	// Radius reaching into the occupied cell across the wrap boundary.
	if g.Placeable(mgl32.Vec3{2.5, 2.5, 2.5 + SizeZ}, 0.2) {
		t.Error("placeable should wrap around the period")
	}
}

func TestPlaceableLowBoundary(t *testing.T) {
	g := &Grid{}
	g.cells[SizeX-1][0][0] = true

	// A sphere just inside the low edge overlaps the last cell across the seam.
	if g.Placeable(mgl32.Vec3{0.05, 0.5, 0.5}, 0.1) {
		t.Error("sphere near the low boundary should collide with the wrapped cell")
	}
	if !g.Placeable(mgl32.Vec3{0.5, 0.5, 0.5}, 0.1) {
		t.Error("sphere clear of the seam should be placeable")
	}
}

func TestWallVerticesSingleCell(t *testing.T) {
	g := &Grid{}
	g.cells[4][5][3] = true

	verts := g.WallVertices()
	// A lone cell has two transitions per axis: six quads of six vertices,
	// replicated across 27 lattice images, three floats per vertex.
	want := 6 * 6 * 27 * 3
	if len(verts) != want {
		t.Fatalf("len(WallVertices) = %d, want %d", len(verts), want)
	}
}

func TestWallVerticesCoverAllImages(t *testing.T) {
	g := &Grid{}
	g.cells[0][0][0] = true
	verts := g.WallVertices()

	minX, maxX := float32(0), float32(0)
	for i := 0; i < len(verts); i += 3 {
		if verts[i] < minX {
			minX = verts[i]
		}
		if verts[i] > maxX {
			maxX = verts[i]
		}
	}
	if minX > -SizeX+1 || maxX < SizeX {
		t.Errorf("wall images should span neighbor cells: x range [%v, %v]", minX, maxX)
	}
}
