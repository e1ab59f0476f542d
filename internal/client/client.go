// Package client wires the window, input, simulation and render pipeline
// into the interactive loop.
package client

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/torusgl/internal/config"
	"github.com/Faultbox/torusgl/internal/engine/audio"
	"github.com/Faultbox/torusgl/internal/engine/camera"
	"github.com/Faultbox/torusgl/internal/engine/debug"
	"github.com/Faultbox/torusgl/internal/engine/input"
	"github.com/Faultbox/torusgl/internal/engine/render"
	"github.com/Faultbox/torusgl/internal/engine/render/shaders"
	"github.com/Faultbox/torusgl/internal/engine/window"
	"github.com/Faultbox/torusgl/internal/game"
	"github.com/Faultbox/torusgl/internal/logger"
	"github.com/Faultbox/torusgl/internal/sim"
	"github.com/Faultbox/torusgl/internal/world"
)

const (
	playerRadius = 1.0 / 6
	moveSpeed    = 3.0
	botCount     = 6
)

// Client is the interactive application instance.
type Client struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	input    *input.Input
	camera   *camera.FirstPerson
	pipeline *render.Pipeline
	audio    *audio.Manager
	shots    *debug.ScreenshotCapture

	grid *world.Grid
	sim  *sim.World

	health float64
}

// New creates the window, GL pipeline and simulation.
func New(cfg *config.Config) (*Client, error) {
	c := &Client{cfg: cfg, health: 1}

	var err error
	c.window, err = window.New(window.Config{
		Title:      "torusgl",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	c.grid = world.Generate(cfg.World.Seed)
	c.sim = sim.New(c.grid, cfg.World.Seed, botCount)

	c.camera = camera.New(spawnPoint(c.grid), c.grid.Period())
	c.camera.SetFOVDegrees(cfg.Graphics.FOV)

	dw, dh := c.window.DrawableSize()
	c.pipeline, err = render.New(render.Config{
		Width:         dw,
		Height:        dh,
		Background:    mgl32.Vec3(cfg.Render.Background),
		MinimapMode:   minimapMode(cfg.Render.MinimapMode),
		MinimapWeight: cfg.Render.MinimapWeight,
		Bloom:         cfg.Render.Bloom,
		Highlight:     cfg.Render.Highlight,
	}, c.grid)
	if err != nil {
		c.window.Close()
		return nil, fmt.Errorf("failed to create render pipeline: %w", err)
	}

	if cfg.Audio.Enabled {
		c.audio = audio.New(cfg.Audio.Volume)
		if err := c.audio.Init(); err != nil {
			// Sound is a comfort feature; run silent rather than fail.
			logger.Warn("audio disabled", zap.Error(err))
			c.audio = nil
		}
	}

	c.input = input.New()
	c.shots = debug.NewScreenshotCapture("screenshots", "torusgl")
	c.window.CaptureMouse(true)

	logger.Info("client initialized", zap.Int64("seed", cfg.World.Seed))
	return c, nil
}

// Run drives the loop until quit.
func (c *Client) Run() error {
	c.running = true
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")
	for c.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		if dt > 0.25 {
			dt = 0.25
		}

		if c.input.Update() {
			break
		}
		for _, event := range c.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				dw, dh := c.window.DrawableSize()
				if err := c.pipeline.Resize(dw, dh); err != nil {
					return fmt.Errorf("resize: %w", err)
				}
			case input.EventKeyDown:
				switch event.Key {
				case sdl.SCANCODE_ESCAPE:
					c.running = false
				case sdl.SCANCODE_F12:
					c.screenshot()
				}
			}
		}

		c.steer(dt)
		c.sim.Step(dt)
		if c.audio != nil {
			if c.sim.ShotsFired() > 0 {
				c.audio.PlayShot()
			}
			if c.sim.Bounces() > 0 {
				c.audio.PlayBounce()
			}
		}
		c.pipeline.Frame(c.snapshot())
		c.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("frames", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (c *Client) steer(dt float32) {
	dx, dy := c.input.MouseDelta()
	speed := c.camera.LookSpeed(c.cfg.Control.MouseSpeed)
	c.camera.Look(-dx*speed, -dy*speed)

	if wheel := c.input.Wheel(); wheel != 0 {
		c.camera.Zoom(float64(wheel), c.cfg.Control.ZoomSpeed)
	}

	var move mgl32.Vec3
	if c.input.IsHeld(sdl.SCANCODE_W) {
		move = move.Add(c.camera.Forward())
	}
	if c.input.IsHeld(sdl.SCANCODE_S) {
		move = move.Sub(c.camera.Forward())
	}
	if c.input.IsHeld(sdl.SCANCODE_D) {
		move = move.Add(c.camera.Right())
	}
	if c.input.IsHeld(sdl.SCANCODE_A) {
		move = move.Sub(c.camera.Right())
	}
	if c.input.IsHeld(sdl.SCANCODE_SPACE) {
		move = move.Add(mgl32.Vec3{0, 0, 1})
	}
	if c.input.IsHeld(sdl.SCANCODE_LSHIFT) {
		move = move.Sub(mgl32.Vec3{0, 0, 1})
	}
	if move.Len() < 1e-6 {
		return
	}
	delta := move.Normalize().Mul(moveSpeed * dt)
	next := c.grid.Period().Wrap(c.camera.Position.Add(delta))
	if c.grid.Placeable(next, playerRadius) {
		c.camera.Move(delta)
	}
}

func (c *Client) snapshot() game.Snapshot {
	w, h := c.pipelineSize()
	aspect := float32(w) / float32(h)

	visibility := c.camera.Visibility()
	if c.cfg.Render.Visibility > 0 {
		visibility = c.cfg.Render.Visibility
	}

	return game.Snapshot{
		Camera: game.CameraState{
			Position:   c.camera.Position,
			ViewProj:   c.camera.ViewProj(aspect),
			Visibility: visibility,
			Zoom:       c.camera.BarrelZoom(),
			Aberration: game.Aberration(c.camera.FOVDegrees(), c.health),
		},
		Drawables: c.sim.Drawables(),
	}
}

func (c *Client) screenshot() {
	w, h := c.pipelineSize()
	name, err := c.shots.Capture(w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

func (c *Client) pipelineSize() (int, int) {
	dw, dh := c.window.DrawableSize()
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	return dw, dh
}

// Close releases GL and SDL resources.
func (c *Client) Close() {
	logger.Info("closing client")
	if c.audio != nil {
		c.audio.Close()
	}
	if c.pipeline != nil {
		c.pipeline.Destroy()
	}
	if c.window != nil {
		c.window.Close()
	}
}

func minimapMode(mode string) int {
	if mode == config.MinimapModeDepth {
		return shaders.MinimapModeDepth
	}
	return shaders.MinimapModeCells
}

// spawnPoint returns the center of the first grid cell with enough clearance
// for the player.
func spawnPoint(g *world.Grid) mgl32.Vec3 {
	for z := 0; z < world.SizeZ; z++ {
		for y := 0; y < world.SizeY; y++ {
			for x := 0; x < world.SizeX; x++ {
				p := mgl32.Vec3{float32(x) + 0.5, float32(y) + 0.5, float32(z) + 0.5}
				if g.Placeable(p, playerRadius) {
					return p
				}
			}
		}
	}
	// A fully occupied grid cannot be generated, but fall back anyway.
	return mgl32.Vec3{0.5, 0.5, 0.5}
}
