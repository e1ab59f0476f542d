package shaders

import (
	"fmt"

	"github.com/Faultbox/torusgl/pkg/torus"
)

const blurFragmentTemplate = `
	#version 410 core

	in vec2 vTexCoord;

	uniform sampler2D uSource;
	uniform vec2 uDirection;

	out vec4 FragColor;

	const float KERNEL[%d] = float[%d](%s);

	void main() {
		vec3 acc = vec3(0.0);
		for (int i = 0; i < %d; i++) {
			vec2 offset = uDirection * float(i - %d);
			acc += texture(uSource, vTexCoord + offset).rgb * KERNEL[i];
		}
		FragColor = vec4(acc, 1.0);
	}
`

// BlurFragment builds the 1-D convolution shader from the shared kernel.
// uDirection carries the texel step: (1/width, 0) for the horizontal pass,
// (0, 1/height) for the vertical one.
func BlurFragment() string {
	n := len(torus.BlurKernel)
	return fmt.Sprintf(blurFragmentTemplate,
		n, n, glslFloats(torus.BlurKernel[:]), n, torus.BlurKernelRadius)
}

// HighlightFragment scales each sample by its chroma distance, leaving
// near-gray pixels near black and amplifying strongly colored ones.
const HighlightFragment = `
	#version 410 core

	in vec2 vTexCoord;

	uniform sampler2D uSource;

	out vec4 FragColor;

	void main() {
		vec3 c = texture(uSource, vTexCoord).rgb;
		float s = abs(c.r - c.g) + abs(c.g - c.b) + abs(c.b - c.r);
		FragColor = vec4(c * s, 1.0);
	}
`

const combineFragmentTemplate = `
	#version 410 core

	in vec2 vTexCoord;
	in vec2 vSigned;

	uniform sampler2D uPrimary;
	uniform sampler2D uGlow;
	uniform sampler2D uMinimap;
	uniform float uZoom;
	uniform float uAberration;
	uniform float uMinimapWeight;

	out vec4 FragColor;

	vec2 barrel(vec2 c) {
		return c * (1.0 + uZoom * dot(c, c)) * (0.5 - uZoom) + 0.5;
	}

	vec2 fringe(vec2 c, float delta) {
		vec2 warped = pow(abs(c), vec2(1.0 + delta)) * 0.5;
		return sign(c) * warped + 0.5;
	}

	void main() {
		vec2 lens = barrel(vSigned);
		float r = texture(uPrimary, fringe(vSigned, -uAberration)).r;
		float g = texture(uPrimary, fringe(vSigned, uAberration)).g;
		float b = texture(uPrimary, lens).b;
		vec3 glow = texture(uGlow, lens).rgb;
		vec3 map = texture(uMinimap, lens).rgb;
		FragColor = vec4(map * uMinimapWeight + glow + vec3(r, g, b), 1.0);
	}
`

// CombineFragment is the final stage: barrel distortion, per-channel
// chromatic fringing of the primary buffer, and the weighted minimap overlay.
func CombineFragment() string {
	return combineFragmentTemplate
}
