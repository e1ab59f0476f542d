package shaders

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Faultbox/torusgl/pkg/torus"
)

func TestBlurFragmentEmbedsKernel(t *testing.T) {
	src := BlurFragment()
	size := fmt.Sprintf("float[%d]", len(torus.BlurKernel))
	if !strings.Contains(src, size) {
		t.Errorf("blur shader missing %s array", size)
	}
	for _, w := range torus.BlurKernel {
		tap := fmt.Sprintf("%.8f", w)
		if !strings.Contains(src, tap) {
			t.Errorf("blur shader missing kernel tap %s", tap)
		}
	}
	if !strings.Contains(src, "uDirection") {
		t.Error("blur shader missing uDirection uniform")
	}
}

func TestMinimapFragmentEmbedsColormap(t *testing.T) {
	src := MinimapFragment()
	r, g, b := torus.TurboCoefficients()
	for _, coeffs := range [][6]float32{r, g, b} {
		for _, c := range coeffs {
			want := fmt.Sprintf("%.8f", c)
			if !strings.Contains(src, want) {
				t.Errorf("minimap shader missing coefficient %s", want)
			}
		}
	}
	sat := fmt.Sprintf("%.7f", torus.CellSaturation)
	if !strings.Contains(src, sat) {
		t.Errorf("minimap shader missing cell saturation %s", sat)
	}
	if !strings.Contains(src, fmt.Sprintf("uMode == %d", MinimapModeDepth)) {
		t.Error("minimap shader does not branch on the depth mode")
	}
}

func TestFragmentShadersDeclareOutput(t *testing.T) {
	sources := map[string]string{
		"world":      WorldFragment,
		"avatar":     AvatarFragment,
		"projectile": ProjectileFragment,
		"minimap":    MinimapFragment(),
		"blur":       BlurFragment(),
		"highlight":  HighlightFragment,
		"combine":    CombineFragment(),
	}
	for name, src := range sources {
		if !strings.Contains(src, "#version 410 core") {
			t.Errorf("%s shader missing version directive", name)
		}
		if !strings.Contains(src, "out vec4 FragColor") {
			t.Errorf("%s shader missing FragColor output", name)
		}
	}
}

func TestProjectileShadingUsesFadeOnly(t *testing.T) {
	if !strings.Contains(ProjectileFragment, "vTint * vAlpha") {
		t.Error("projectile color should be tint scaled by the faded alpha")
	}
	if strings.Contains(ProjectileFragment, "vIntensity *") ||
		strings.Contains(ProjectileFragment, "* vIntensity") {
		t.Error("projectiles should not apply the inverse-square intensity")
	}
}

func TestCombineFragmentSamplesAllBuffers(t *testing.T) {
	src := CombineFragment()
	for _, uniform := range []string{"uPrimary", "uGlow", "uMinimap", "uZoom", "uAberration", "uMinimapWeight"} {
		if !strings.Contains(src, uniform) {
			t.Errorf("combine shader missing %s uniform", uniform)
		}
	}
}
