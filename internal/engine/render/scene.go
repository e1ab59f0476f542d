package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/torusgl/internal/engine/framebuffer"
	"github.com/Faultbox/torusgl/internal/engine/render/shaders"
	"github.com/Faultbox/torusgl/internal/engine/shader"
	"github.com/Faultbox/torusgl/internal/game"
	"github.com/Faultbox/torusgl/pkg/torus"
)

// wallMesh is the static, pre-replicated world geometry.
type wallMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

func newWallMesh(vertices []float32) wallMesh {
	m := wallMesh{count: int32(len(vertices) / 3)}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
	return m
}

func (m *wallMesh) destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}

// stream is a dynamic vertex buffer for the expanded drawable soup, laid out
// as VertexStride floats per vertex.
type stream struct {
	vao      uint32
	vbo      uint32
	capacity int
}

func newStream() *stream {
	s := &stream{}
	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	stride := int32(VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 1, gl.FLOAT, false, stride, 7*4)
	gl.BindVertexArray(0)
	return s
}

// upload replaces the buffer contents and returns the vertex count.
func (s *stream) upload(data []float32) int32 {
	if len(data) == 0 {
		return 0
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	if len(data) > s.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.DYNAMIC_DRAW)
		s.capacity = len(data)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, unsafe.Pointer(&data[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return int32(len(data) / VertexStride)
}

func (s *stream) destroy() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
}

// sceneRenderer produces the primary color buffer: walls first, then opaque
// avatars, then additive projectiles.
type sceneRenderer struct {
	world        *shader.Program
	locWorldVP   int32
	locWorldCam  int32
	locWorldCol  int32
	locWorldBG   int32
	locWorldVis  int32
	avatar       *shader.Program
	locAvatarVP  int32
	locAvatarBG  int32
	projectile   *shader.Program
	locProjVP    int32

	walls    wallMesh
	avatars  *stream
	shards   *stream
	expander *Expander

	avatarBuf []float32
	shardBuf  []float32
}

var wallColor = mgl32.Vec3{1, 1, 1}

func newSceneRenderer(wallVertices []float32, period torus.Period) (*sceneRenderer, error) {
	r := &sceneRenderer{expander: NewExpander(period)}

	var err error
	r.world, err = shader.Compile(shaders.WorldVertex, shaders.WorldFragment)
	if err != nil {
		return nil, fmt.Errorf("world shader: %w", err)
	}
	r.locWorldVP = r.world.MustUniform("uViewProj")
	r.locWorldCam = r.world.MustUniform("uCamera")
	r.locWorldCol = r.world.MustUniform("uColor")
	r.locWorldBG = r.world.MustUniform("uBackground")
	r.locWorldVis = r.world.MustUniform("uVisibility")

	r.avatar, err = shader.Compile(shaders.SceneVertex, shaders.AvatarFragment)
	if err != nil {
		return nil, fmt.Errorf("avatar shader: %w", err)
	}
	r.locAvatarVP = r.avatar.MustUniform("uViewProj")
	r.locAvatarBG = r.avatar.MustUniform("uBackground")

	r.projectile, err = shader.Compile(shaders.SceneVertex, shaders.ProjectileFragment)
	if err != nil {
		return nil, fmt.Errorf("projectile shader: %w", err)
	}
	r.locProjVP = r.projectile.MustUniform("uViewProj")

	r.walls = newWallMesh(wallVertices)
	r.avatars = newStream()
	r.shards = newStream()
	return r, nil
}

func (r *sceneRenderer) draw(target *framebuffer.Framebuffer, snap game.Snapshot, background mgl32.Vec3) {
	target.Bind()
	target.Clear(background.X(), background.Y(), background.Z(), 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)

	r.world.Use()
	r.world.SetMat4(r.locWorldVP, snap.Camera.ViewProj)
	r.world.SetVec3(r.locWorldCam, snap.Camera.Position)
	r.world.SetVec3(r.locWorldCol, wallColor)
	r.world.SetVec3(r.locWorldBG, background)
	r.world.SetFloat(r.locWorldVis, snap.Camera.Visibility)
	gl.BindVertexArray(r.walls.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.walls.count)
	gl.BindVertexArray(0)

	r.avatarBuf = r.avatarBuf[:0]
	r.shardBuf = r.shardBuf[:0]
	for _, d := range snap.Drawables {
		switch d.Kind {
		case game.MeshProjectile:
			r.shardBuf = r.expander.Expand(r.shardBuf, d, snap.Camera)
		default:
			r.avatarBuf = r.expander.Expand(r.avatarBuf, d, snap.Camera)
		}
	}

	if n := r.avatars.upload(r.avatarBuf); n > 0 {
		r.avatar.Use()
		r.avatar.SetMat4(r.locAvatarVP, snap.Camera.ViewProj)
		r.avatar.SetVec3(r.locAvatarBG, background)
		gl.BindVertexArray(r.avatars.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, n)
		gl.BindVertexArray(0)
	}

	if n := r.shards.upload(r.shardBuf); n > 0 {
		r.projectile.Use()
		r.projectile.SetMat4(r.locProjVP, snap.Camera.ViewProj)
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.ONE, gl.ONE)
		gl.DepthMask(false)
		gl.BindVertexArray(r.shards.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, n)
		gl.BindVertexArray(0)
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}

	target.Unbind()
}

func (r *sceneRenderer) destroy() {
	if r.world != nil {
		r.world.Destroy()
	}
	if r.avatar != nil {
		r.avatar.Destroy()
	}
	if r.projectile != nil {
		r.projectile.Destroy()
	}
	r.walls.destroy()
	if r.avatars != nil {
		r.avatars.destroy()
	}
	if r.shards != nil {
		r.shards.destroy()
	}
}
