package shaders

// SceneVertex consumes the expanded triangle stream: position, tint, alpha
// and visibility intensity are all precomputed per translated copy on the
// CPU, so the shader only projects and forwards.
const SceneVertex = `
	#version 410 core

	layout (location = 0) in vec3 aPos;
	layout (location = 1) in vec3 aTint;
	layout (location = 2) in float aAlpha;
	layout (location = 3) in float aIntensity;

	uniform mat4 uViewProj;

	out vec3 vTint;
	out float vAlpha;
	out float vIntensity;

	void main() {
		gl_Position = uViewProj * vec4(aPos, 1.0);
		vTint = aTint;
		vAlpha = aAlpha;
		vIntensity = aIntensity;
	}
`

// AvatarFragment shades opaque drawables: brightness falls off with the
// inverse-square intensity and the whole color sinks into the background as
// the linear fade runs out.
const AvatarFragment = `
	#version 410 core

	in vec3 vTint;
	in float vAlpha;
	in float vIntensity;

	uniform vec3 uBackground;

	out vec4 FragColor;

	void main() {
		vec3 color = mix(uBackground, vTint * vIntensity, vAlpha);
		FragColor = vec4(color, 1.0);
	}
`

// ProjectileFragment emits premultiplied color for additive blending; alpha
// already carries power times linear fade, the only falloff projectiles get.
const ProjectileFragment = `
	#version 410 core

	in vec3 vTint;
	in float vAlpha;
	in float vIntensity;

	out vec4 FragColor;

	void main() {
		FragColor = vec4(vTint * vAlpha, 1.0);
	}
`
