// Package sim runs a small self-playing world: wandering bots that fire
// shards. It exists to feed the renderer a live snapshot every frame; it is
// deliberately simple and fully deterministic for a given seed.
package sim

import (
	gomath "math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/torusgl/internal/game"
	"github.com/Faultbox/torusgl/internal/world"
	"github.com/Faultbox/torusgl/pkg/torus"
)

const (
	botRadius   = 1.0 / 6
	shardRadius = 1.0 / 12

	botSpeed   = 2.0
	shardSpeed = 6.0

	powerDecay   = 0.4
	turnChance   = 0.6 // per second
	fireChance   = 0.5 // per second
	maxShards    = 64
)

type bot struct {
	pos    mgl32.Vec3
	dir    mgl32.Vec3
	hue    int
	health float32
}

type shard struct {
	pos   mgl32.Vec3
	dir   mgl32.Vec3
	hue   int
	power float32
}

// World is the simulation state. Not safe for concurrent use.
type World struct {
	grid   *world.Grid
	period torus.Period
	rng    *rand.Rand

	bots   []bot
	shards []shard

	shotsFired int
	bounces    int
}

// New seeds a world with the given number of bots placed at random open
// positions.
func New(grid *world.Grid, seed int64, bots int) *World {
	w := &World{
		grid:   grid,
		period: grid.Period(),
		rng:    rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < bots; i++ {
		w.bots = append(w.bots, bot{
			pos:    w.randomOpen(botRadius),
			dir:    w.randomDirection(),
			hue:    i % game.PaletteSize,
			health: 1,
		})
	}
	return w
}

// Step advances every bot and shard by dt seconds.
func (w *World) Step(dt float32) {
	w.shotsFired = 0
	w.bounces = 0
	for i := range w.bots {
		w.stepBot(&w.bots[i], dt)
	}

	alive := w.shards[:0]
	for _, s := range w.shards {
		s.power -= powerDecay * dt
		if s.power <= 0 {
			continue
		}
		next := w.period.Wrap(s.pos.Add(s.dir.Mul(shardSpeed * dt)))
		if w.grid.Placeable(next, shardRadius) {
			s.pos = next
		} else {
			// Ricochet in a fresh direction; bounces cost power.
			s.dir = w.randomDirection()
			s.power /= 2
			w.bounces++
		}
		alive = append(alive, s)
	}
	w.shards = alive
}

func (w *World) stepBot(b *bot, dt float32) {
	if w.chance(turnChance, dt) {
		b.dir = w.randomDirection()
	}
	next := w.period.Wrap(b.pos.Add(b.dir.Mul(botSpeed * dt)))
	if w.grid.Placeable(next, botRadius) {
		b.pos = next
	} else {
		b.dir = w.randomDirection()
	}
	if len(w.shards) < maxShards && w.chance(fireChance, dt) {
		w.shards = append(w.shards, shard{
			pos:   b.pos,
			dir:   b.dir,
			hue:   b.hue,
			power: 1,
		})
		w.shotsFired++
	}
}

// ShotsFired reports how many shards were fired during the last Step.
func (w *World) ShotsFired() int {
	return w.shotsFired
}

// Bounces reports how many ricochets happened during the last Step.
func (w *World) Bounces() int {
	return w.bounces
}

// Drawables returns the current frame's drawable list, newly allocated.
func (w *World) Drawables() []game.Drawable {
	out := make([]game.Drawable, 0, len(w.bots)+len(w.shards))
	for _, b := range w.bots {
		out = append(out, game.Drawable{
			Kind:     game.MeshAvatar,
			Position: b.pos,
			Rotation: headingMatrix(b.dir),
			Tint:     game.Tint(b.hue, b.health),
			Alpha:    1,
		})
	}
	for _, s := range w.shards {
		out = append(out, game.Drawable{
			Kind:     game.MeshProjectile,
			Position: s.pos,
			Rotation: headingMatrix(s.dir),
			Tint:     game.Tint(s.hue, 1),
			Alpha:    s.power,
		})
	}
	return out
}

func (w *World) chance(perSecond, dt float32) bool {
	return w.rng.Float32() < perSecond*dt
}

func (w *World) randomDirection() mgl32.Vec3 {
	// Uniform on the sphere via z + azimuth.
	z := w.rng.Float64()*2 - 1
	a := w.rng.Float64() * 2 * gomath.Pi
	r := gomath.Sqrt(1 - z*z)
	return mgl32.Vec3{float32(r * gomath.Cos(a)), float32(r * gomath.Sin(a)), float32(z)}
}

func (w *World) randomOpen(radius float32) mgl32.Vec3 {
	p := w.period.Vec()
	for {
		pos := mgl32.Vec3{
			w.rng.Float32() * p.X(),
			w.rng.Float32() * p.Y(),
			w.rng.Float32() * p.Z(),
		}
		if w.grid.Placeable(pos, radius) {
			return pos
		}
	}
}

// headingMatrix orients a mesh so its long axis follows dir.
func headingMatrix(dir mgl32.Vec3) mgl32.Mat3 {
	forward := dir
	if forward.Len() < 1e-6 {
		forward = mgl32.Vec3{0, 1, 0}
	} else {
		forward = forward.Normalize()
	}
	up := mgl32.Vec3{0, 0, 1}
	if abs32(forward.Dot(up)) > 0.99 {
		up = mgl32.Vec3{1, 0, 0}
	}
	right := forward.Cross(up).Normalize()
	up = right.Cross(forward)
	return mgl32.Mat3FromCols(right, forward, up)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
