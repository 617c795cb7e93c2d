package astrohop

import (
	"github.com/vovakirdan/astrohop/internal/config"
	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/world"
)

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// SpawnPlan is where a new drifting body appears and how it moves.
type SpawnPlan struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Rotation float64
}

// PlanSpawn draws one spawn from rng. The result depends only on rng and cfg.
//
// X is uniform in [inset, width-inset] and Y in [inset, height+2*inset].
// Velocity X is +/-speed and Y is speed times -1, 0 or 1.
func PlanSpawn(rng Rand, cfg config.AstroConfig) SpawnPlan {
	inset := int(cfg.World.SpawnInset)
	w := int(cfg.World.Width)
	h := int(cfg.World.Height)
	speed := cfg.Bodies.DriftSpeed

	pos := core.V(
		float64(rollRange(rng, inset, w-inset)),
		float64(rollRange(rng, inset, h+2*inset)),
	)
	vel := core.V(pickSign(rng)*speed, float64(rollRange(rng, -1, 1))*speed)
	vel = nonZero(rng, vel, speed)

	return SpawnPlan{Pos: pos, Vel: vel, Rotation: core.Heading(vel)}
}

// nonZero resamples a stationary velocity to a diagonal one.
func nonZero(rng Rand, vel core.Vec2, speed float64) core.Vec2 {
	if !vel.IsZero() {
		return vel
	}
	return core.V(pickSign(rng)*speed, pickSign(rng)*speed)
}

// rollRange returns a uniform integer in [lo, hi].
func rollRange(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func pickSign(rng Rand) float64 {
	if rng.Intn(2) == 0 {
		return 1
	}
	return -1
}

// Spawner creates drifting asteroids and meteors.
type Spawner struct {
	rng Rand
	cfg config.AstroConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Rand, cfg config.AstroConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// Spawn creates n entities of the given kind in reg.
func (sp *Spawner) Spawn(reg *world.Registry, kind world.Kind, n int) []world.Handle {
	radius, sprite := sp.cfg.Bodies.AsteroidRadius, SpriteAsteroid
	if kind == world.KindMeteor {
		radius, sprite = sp.cfg.Bodies.MeteorRadius, SpriteMeteor
	}

	out := make([]world.Handle, 0, n)
	for range n {
		plan := PlanSpawn(sp.rng, sp.cfg)
		h := reg.Create(kind, plan.Pos, radius, sprite)
		e, _ := reg.Get(h)
		e.Vel = plan.Vel
		e.Rotation = plan.Rotation
		e.SetSprite(sprite, sp.cfg.Bodies.AnimSpeed)
		out = append(out, h)
	}
	return out
}

// SpawnAsteroids adds n asteroids to the field.
func (s *Sim) SpawnAsteroids(n int) []world.Handle {
	return s.Spawner.Spawn(s.World, world.KindAsteroid, n)
}

// SpawnMeteors adds n meteors to the field.
func (s *Sim) SpawnMeteors(n int) []world.Handle {
	return s.Spawner.Spawn(s.World, world.KindMeteor, n)
}
