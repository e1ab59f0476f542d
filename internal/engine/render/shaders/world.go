package shaders

// WorldVertex projects the pre-replicated wall mesh. The 27 lattice copies
// are baked into the vertex buffer at map build time, so no per-frame work
// happens here.
const WorldVertex = `
	#version 410 core

	layout (location = 0) in vec3 aPos;

	uniform mat4 uViewProj;

	out vec3 vWorld;

	void main() {
		gl_Position = uViewProj * vec4(aPos, 1.0);
		vWorld = aPos;
	}
`

// WorldFragment applies the distance falloff in-shader: inverse-square
// intensity for brightness, and past the linear-fade horizon the wall color
// is replaced by the background rather than clipped at black.
const WorldFragment = `
	#version 410 core

	in vec3 vWorld;

	uniform vec3 uCamera;
	uniform vec3 uColor;
	uniform vec3 uBackground;
	uniform float uVisibility;

	out vec4 FragColor;

	void main() {
		float t = distance(vWorld, uCamera) / max(uVisibility, 1e-4);
		float intensity = 1.0 / (1.0 + t * t);
		float fade = clamp(1.0 - t, 0.0, 1.0);
		vec3 color = mix(uBackground, uColor * intensity, fade);
		FragColor = vec4(color, 1.0);
	}
`
