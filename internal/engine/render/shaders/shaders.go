// Package shaders holds the GLSL sources for every render pass. Sources that
// depend on tuning constants shared with the CPU side (blur kernel, colormap
// coefficients, cell tint saturation) are generated from those constants so
// the two sides cannot drift apart.
package shaders

// ScreenVertex maps a fullscreen quad to clip space and hands the fragment
// stage both [0,1] texture coordinates and the signed [-1,1] position used by
// the lens math.
const ScreenVertex = `
	#version 410 core

	layout (location = 0) in vec2 aPos;

	out vec2 vTexCoord;
	out vec2 vSigned;

	void main() {
		gl_Position = vec4(aPos, 0.0, 1.0);
		vSigned = aPos;
		vTexCoord = aPos * 0.5 + 0.5;
	}
`
