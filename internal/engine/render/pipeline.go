package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/torusgl/internal/engine/framebuffer"
	"github.com/Faultbox/torusgl/internal/game"
	"github.com/Faultbox/torusgl/internal/logger"
	"github.com/Faultbox/torusgl/internal/world"
	"github.com/Faultbox/torusgl/pkg/torus"
)

// Downsampled pass width; heights follow the output aspect ratio.
const smallBufferWidth = 256

// Config selects the optional passes and screen-space parameters of the
// pipeline. Width and Height are in drawable pixels.
type Config struct {
	Width         int
	Height        int
	Background    mgl32.Vec3
	MinimapMode   int
	MinimapWeight float32
	Bloom         bool
	Highlight     bool
}

// Pipeline owns every render pass and framebuffer. All methods must be
// called on the thread holding the GL context.
type Pipeline struct {
	cfg    Config
	period torus.Period

	scene     *sceneRenderer
	minimap   *minimapRenderer
	bloom     *bloomPipeline
	composite *compositeStage
	quad      *screenQuad

	primary    *framebuffer.Framebuffer
	minimapFBO *framebuffer.Framebuffer
	ping       *framebuffer.Framebuffer
	pong       *framebuffer.Framebuffer
}

// New builds the full pass chain for a generated world. Must be called after
// the GL context exists; any shader or buffer failure is fatal.
func New(cfg Config, grid *world.Grid) (*Pipeline, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	p := &Pipeline{cfg: cfg, period: grid.Period()}

	var err error
	p.scene, err = newSceneRenderer(grid.WallVertices(), p.period)
	if err != nil {
		return nil, err
	}
	p.minimap, err = newMinimapRenderer(&p.scene.walls, cfg.MinimapMode)
	if err != nil {
		p.Destroy()
		return nil, err
	}
	p.quad = newScreenQuad()
	p.bloom, err = newBloomPipeline(p.quad, cfg.Highlight)
	if err != nil {
		p.Destroy()
		return nil, err
	}
	p.composite, err = newCompositeStage(p.quad, cfg.MinimapWeight)
	if err != nil {
		p.Destroy()
		return nil, err
	}

	if err := p.createBuffers(cfg.Width, cfg.Height); err != nil {
		p.Destroy()
		return nil, err
	}

	logger.Info("render pipeline ready",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("bloom", cfg.Bloom),
		zap.Bool("highlight", cfg.Highlight),
	)
	return p, nil
}

func (p *Pipeline) createBuffers(width, height int) error {
	bw := smallBufferWidth
	bh := height * smallBufferWidth / width
	if bh < 1 {
		bh = 1
	}

	var err error
	if p.primary, err = framebuffer.New(int32(width), int32(height)); err != nil {
		return fmt.Errorf("primary buffer: %w", err)
	}
	if p.minimapFBO, err = framebuffer.New(int32(bw), int32(bh)); err != nil {
		return fmt.Errorf("minimap buffer: %w", err)
	}
	if p.ping, err = framebuffer.NewColor(int32(bw), int32(bh)); err != nil {
		return fmt.Errorf("blur buffer: %w", err)
	}
	if p.pong, err = framebuffer.NewColor(int32(bw), int32(bh)); err != nil {
		return fmt.Errorf("blur buffer: %w", err)
	}
	return nil
}

func (p *Pipeline) destroyBuffers() {
	for _, fbo := range []*framebuffer.Framebuffer{p.primary, p.minimapFBO, p.ping, p.pong} {
		if fbo != nil {
			fbo.Destroy()
		}
	}
	p.primary, p.minimapFBO, p.ping, p.pong = nil, nil, nil, nil
}

// Resize drops every framebuffer and rebuilds them at the new drawable size.
// The frame in flight is abandoned; the next Frame call starts clean.
func (p *Pipeline) Resize(width, height int) error {
	if width == p.cfg.Width && height == p.cfg.Height {
		return nil
	}
	p.destroyBuffers()
	if err := p.createBuffers(width, height); err != nil {
		return err
	}
	p.cfg.Width = width
	p.cfg.Height = height
	logger.Debug("pipeline resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return nil
}

// Frame renders one snapshot through every pass onto the default framebuffer.
func (p *Pipeline) Frame(snap game.Snapshot) {
	p.scene.draw(p.primary, snap, p.cfg.Background)
	p.minimap.draw(p.minimapFBO, snap.Camera, p.period.Vec())

	if p.cfg.Bloom {
		p.bloom.run(p.primary.ColorTexture(), p.ping, p.pong)
	} else {
		p.ping.Bind()
		p.ping.Clear(0, 0, 0, 1)
		p.ping.Unbind()
	}

	p.composite.draw(int32(p.cfg.Width), int32(p.cfg.Height),
		p.primary.ColorTexture(), p.ping.ColorTexture(), p.minimapFBO.ColorTexture(),
		snap.Camera)
}

// Destroy releases every GL resource owned by the pipeline.
func (p *Pipeline) Destroy() {
	p.destroyBuffers()
	if p.composite != nil {
		p.composite.destroy()
	}
	if p.bloom != nil {
		p.bloom.destroy()
	}
	if p.quad != nil {
		p.quad.destroy()
	}
	if p.minimap != nil {
		p.minimap.destroy()
	}
	if p.scene != nil {
		p.scene.destroy()
	}
}
