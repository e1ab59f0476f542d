package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/torusgl/internal/engine/render/shaders"
	"github.com/Faultbox/torusgl/internal/engine/shader"
	"github.com/Faultbox/torusgl/internal/game"
)

// compositeStage assembles the presented frame on the default framebuffer:
// barrel-distorted glow and minimap plus the chromatically fringed primary
// channels. With zoom and aberration at zero it degenerates to a weighted
// add of the three inputs.
type compositeStage struct {
	program       *shader.Program
	locPrimary    int32
	locGlow       int32
	locMinimap    int32
	locZoom       int32
	locAberration int32
	locWeight     int32

	quad   *screenQuad
	weight float32
}

func newCompositeStage(quad *screenQuad, minimapWeight float32) (*compositeStage, error) {
	program, err := shader.Compile(shaders.ScreenVertex, shaders.CombineFragment())
	if err != nil {
		return nil, fmt.Errorf("combine shader: %w", err)
	}
	c := &compositeStage{program: program, quad: quad, weight: minimapWeight}
	c.locPrimary = program.MustUniform("uPrimary")
	c.locGlow = program.MustUniform("uGlow")
	c.locMinimap = program.MustUniform("uMinimap")
	c.locZoom = program.MustUniform("uZoom")
	c.locAberration = program.MustUniform("uAberration")
	c.locWeight = program.MustUniform("uMinimapWeight")
	return c, nil
}

func (c *compositeStage) draw(width, height int32, primary, glow, minimap uint32, cam game.CameraState) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, width, height)
	gl.Disable(gl.DEPTH_TEST)

	c.program.Use()
	c.program.SetInt(c.locPrimary, 0)
	c.program.SetInt(c.locGlow, 1)
	c.program.SetInt(c.locMinimap, 2)
	c.program.SetFloat(c.locZoom, cam.Zoom)
	c.program.SetFloat(c.locAberration, cam.Aberration)
	c.program.SetFloat(c.locWeight, c.weight)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, primary)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, glow)
	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, minimap)

	c.quad.draw()
	gl.ActiveTexture(gl.TEXTURE0)
}

func (c *compositeStage) destroy() {
	if c.program != nil {
		c.program.Destroy()
	}
}
