package shaders

import (
	"fmt"
	"strings"

	"github.com/Faultbox/torusgl/pkg/torus"
)

// Minimap shading modes, bound to the uMode uniform.
const (
	MinimapModeDepth = 0
	MinimapModeCells = 1
)

// MinimapVertex is the wall projection again; the minimap draws the same
// replicated mesh as the world pass, only shaded differently.
const MinimapVertex = `
	#version 410 core

	layout (location = 0) in vec3 aPos;

	uniform mat4 uViewProj;

	out vec3 vWorld;

	void main() {
		gl_Position = uViewProj * vec4(aPos, 1.0);
		vWorld = aPos;
	}
`

const minimapFragmentTemplate = `
	#version 410 core

	in vec3 vWorld;

	uniform float uVisibility;
	uniform vec3 uPeriod;
	uniform int uMode;

	out vec4 FragColor;

	const float PI = 3.14159265358979;
	const float TURBO_R[6] = float[6](%s);
	const float TURBO_G[6] = float[6](%s);
	const float TURBO_B[6] = float[6](%s);
	const float CELL_SAT = %.7f;

	float polyval(float c[6], float v) {
		float acc = c[5];
		for (int i = 4; i >= 0; i--) {
			acc = acc * v + c[i];
		}
		return acc;
	}

	void main() {
		float z = clamp(gl_FragCoord.z, 0.0, 1.0);
		if (uMode == %d) {
			vec3 rgb = vec3(polyval(TURBO_R, z), polyval(TURBO_G, z), polyval(TURBO_B, z));
			FragColor = vec4(clamp(rgb, 0.0, 1.0), 1.0);
		} else {
			float d = 1.0 - z;
			float luma = 1.0 / (1.0 + d * d / max(uVisibility, 1e-4));
			vec3 cell = mod(vWorld, uPeriod) / uPeriod;
			float theta = (cell.x + cell.y + cell.z) * PI / 1.5;
			float cb = cos(theta) * CELL_SAT;
			float cr = sin(theta) * CELL_SAT;
			vec3 rgb = vec3(
				luma + 1.402 * cr,
				luma - 0.344136 * cb - 0.714136 * cr,
				luma + 1.772 * cb);
			FragColor = vec4(clamp(rgb, 0.0, 1.0), 1.0);
		}
	}
`

// MinimapFragment builds the minimap fragment shader from the shared colormap
// and cell tint constants.
func MinimapFragment() string {
	r, g, b := torus.TurboCoefficients()
	return fmt.Sprintf(minimapFragmentTemplate,
		glslFloats(r[:]), glslFloats(g[:]), glslFloats(b[:]),
		torus.CellSaturation, MinimapModeDepth)
}

func glslFloats(vs []float32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%.8f", v)
	}
	return strings.Join(parts, ", ")
}
