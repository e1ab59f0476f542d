package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/torusgl/internal/engine/framebuffer"
	"github.com/Faultbox/torusgl/internal/engine/render/shaders"
	"github.com/Faultbox/torusgl/internal/engine/shader"
)

// bloomPipeline turns the primary buffer into a glow buffer: an optional
// saturation bright-pass followed by the two 1-D convolution passes.
type bloomPipeline struct {
	blur       *shader.Program
	locBlurSrc int32
	locBlurDir int32

	highlight  *shader.Program
	locHiSrc   int32
	useBright  bool

	quad *screenQuad
}

func newBloomPipeline(quad *screenQuad, highlight bool) (*bloomPipeline, error) {
	b := &bloomPipeline{quad: quad, useBright: highlight}

	var err error
	b.blur, err = shader.Compile(shaders.ScreenVertex, shaders.BlurFragment())
	if err != nil {
		return nil, fmt.Errorf("blur shader: %w", err)
	}
	b.locBlurSrc = b.blur.MustUniform("uSource")
	b.locBlurDir = b.blur.MustUniform("uDirection")

	b.highlight, err = shader.Compile(shaders.ScreenVertex, shaders.HighlightFragment)
	if err != nil {
		return nil, fmt.Errorf("highlight shader: %w", err)
	}
	b.locHiSrc = b.highlight.MustUniform("uSource")
	return b, nil
}

// run blurs the primary texture through ping and pong; the result ends up in
// ping's color attachment.
func (b *bloomPipeline) run(primary uint32, ping, pong *framebuffer.Framebuffer) {
	gl.Disable(gl.DEPTH_TEST)
	gl.ActiveTexture(gl.TEXTURE0)

	source := primary
	if b.useBright {
		ping.Bind()
		b.highlight.Use()
		b.highlight.SetInt(b.locHiSrc, 0)
		gl.BindTexture(gl.TEXTURE_2D, source)
		b.quad.draw()
		ping.Unbind()
		source = ping.ColorTexture()
	}

	w, h := ping.Size()
	pong.Bind()
	b.blur.Use()
	b.blur.SetInt(b.locBlurSrc, 0)
	b.blur.SetVec2(b.locBlurDir, mgl32.Vec2{1 / float32(w), 0})
	gl.BindTexture(gl.TEXTURE_2D, source)
	b.quad.draw()
	pong.Unbind()

	ping.Bind()
	b.blur.SetVec2(b.locBlurDir, mgl32.Vec2{0, 1 / float32(h)})
	gl.BindTexture(gl.TEXTURE_2D, pong.ColorTexture())
	b.quad.draw()
	ping.Unbind()
}

func (b *bloomPipeline) destroy() {
	if b.blur != nil {
		b.blur.Destroy()
	}
	if b.highlight != nil {
		b.highlight.Destroy()
	}
}
