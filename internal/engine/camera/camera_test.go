package camera

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/torusgl/pkg/torus"
)

func TestSetFOVRoundTrip(t *testing.T) {
	c := New(mgl32.Vec3{}, torus.DefaultPeriod)
	c.SetFOVDegrees(60)
	if got := c.FOVDegrees(); gomath.Abs(got-60) > 1e-9 {
		t.Errorf("FOVDegrees = %v, want 60", got)
	}
	// Out-of-range requests clamp to the zoom bounds.
	c.SetFOVDegrees(10)
	if c.ZoomLevel != ZoomMin {
		t.Errorf("narrow FOV should clamp to ZoomMin, got %v", c.ZoomLevel)
	}
	c.SetFOVDegrees(170)
	if c.ZoomLevel != ZoomMax {
		t.Errorf("wide FOV should clamp to ZoomMax, got %v", c.ZoomLevel)
	}
}

func TestVisibility(t *testing.T) {
	c := New(mgl32.Vec3{}, torus.DefaultPeriod)
	c.SetFOVDegrees(60)
	if got := c.Visibility(); gomath.Abs(float64(got)-10.8) > 1e-4 {
		t.Errorf("Visibility = %v, want 10.8", got)
	}
}

func TestMoveWraps(t *testing.T) {
	p := torus.DefaultPeriod
	c := New(mgl32.Vec3{11.5, 0, 0}, p)
	c.Move(mgl32.Vec3{1, 0, 0})
	if gomath.Abs(float64(c.Position.X())-0.5) > 1e-5 {
		t.Errorf("position should wrap: x = %v, want 0.5", c.Position.X())
	}
}

func TestLookClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{}, torus.DefaultPeriod)
	c.Look(0, 10)
	if c.Pitch >= float32(gomath.Pi/2) {
		t.Errorf("pitch not clamped: %v", c.Pitch)
	}
	c.Look(0, -20)
	if c.Pitch <= float32(-gomath.Pi/2) {
		t.Errorf("pitch not clamped: %v", c.Pitch)
	}
}

func TestUpPointsSkyward(t *testing.T) {
	c := New(mgl32.Vec3{}, torus.DefaultPeriod)
	if up := c.Up(); up.Z() <= 0 {
		t.Fatalf("level camera up = %v, want +Z", up)
	}
	// A point above the view axis must land in the upper half of the frame.
	vp := c.ViewProj(1)
	clip := vp.Mul4x1(mgl32.Vec4{2, 0, 1, 1})
	if ndcY := clip.Y() / clip.W(); ndcY <= 0 {
		t.Errorf("point above view axis projects to ndc y = %v, want > 0", ndcY)
	}
}

func TestOrthonormalBasis(t *testing.T) {
	c := New(mgl32.Vec3{}, torus.DefaultPeriod)
	c.Look(0.7, 0.3)
	f, r, u := c.Forward(), c.Right(), c.Up()
	for name, v := range map[string]mgl32.Vec3{"forward": f, "right": r, "up": u} {
		if gomath.Abs(float64(v.Len())-1) > 1e-5 {
			t.Errorf("%s not unit length: %v", name, v.Len())
		}
	}
	if gomath.Abs(float64(f.Dot(r))) > 1e-5 || gomath.Abs(float64(f.Dot(u))) > 1e-5 {
		t.Error("camera basis not orthogonal")
	}
}

func TestZoomClamped(t *testing.T) {
	c := New(mgl32.Vec3{}, torus.DefaultPeriod)
	c.Zoom(100, 8)
	if c.ZoomLevel != ZoomMax {
		t.Errorf("zoom in should clamp at %v, got %v", ZoomMax, c.ZoomLevel)
	}
	c.Zoom(-100, 8)
	if c.ZoomLevel != ZoomMin {
		t.Errorf("zoom out should clamp at %v, got %v", ZoomMin, c.ZoomLevel)
	}
}
