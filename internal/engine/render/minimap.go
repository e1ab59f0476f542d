package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/torusgl/internal/engine/framebuffer"
	"github.com/Faultbox/torusgl/internal/engine/render/shaders"
	"github.com/Faultbox/torusgl/internal/engine/shader"
	"github.com/Faultbox/torusgl/internal/game"
)

// minimapRenderer draws the wall mesh into the overlay buffer, colored either
// by a depth colormap or by the periodic-cell tint, depending on mode.
type minimapRenderer struct {
	program   *shader.Program
	locVP     int32
	locVis    int32
	locPeriod int32
	locMode   int32

	walls *wallMesh
	mode  int32
}

func newMinimapRenderer(walls *wallMesh, mode int) (*minimapRenderer, error) {
	program, err := shader.Compile(shaders.MinimapVertex, shaders.MinimapFragment())
	if err != nil {
		return nil, fmt.Errorf("minimap shader: %w", err)
	}
	r := &minimapRenderer{program: program, walls: walls, mode: int32(mode)}
	r.locVP = program.MustUniform("uViewProj")
	r.locVis = program.MustUniform("uVisibility")
	r.locPeriod = program.MustUniform("uPeriod")
	r.locMode = program.MustUniform("uMode")
	return r, nil
}

func (r *minimapRenderer) draw(target *framebuffer.Framebuffer, cam game.CameraState, period mgl32.Vec3) {
	target.Bind()
	target.Clear(0, 0, 0, 1)
	gl.Enable(gl.DEPTH_TEST)

	r.program.Use()
	r.program.SetMat4(r.locVP, cam.ViewProj)
	r.program.SetFloat(r.locVis, cam.Visibility)
	r.program.SetVec3(r.locPeriod, period)
	r.program.SetInt(r.locMode, r.mode)
	gl.BindVertexArray(r.walls.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.walls.count)
	gl.BindVertexArray(0)

	target.Unbind()
}

func (r *minimapRenderer) destroy() {
	if r.program != nil {
		r.program.Destroy()
	}
}
