package astrohop

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/astrohop/internal/config"
	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/world"
)

// scriptedRand returns queued values, reduced modulo n.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func TestPlanSpawnProperties(t *testing.T) {
	cfg := config.DefaultAstroConfig()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		plan := PlanSpawn(rng, cfg)

		if plan.Vel.IsZero() {
			t.Fatalf("spawn %d has zero velocity", i)
		}
		if math.Abs(plan.Vel.X) != 2 {
			t.Fatalf("spawn %d: vx = %f, expected +/-2", i, plan.Vel.X)
		}
		if vy := plan.Vel.Y; vy != -2 && vy != 0 && vy != 2 {
			t.Fatalf("spawn %d: vy = %f, expected -2, 0 or 2", i, vy)
		}
		if want := math.Atan2(plan.Vel.X, -plan.Vel.Y); !near(plan.Rotation, want) {
			t.Fatalf("spawn %d: rotation = %f, expected %f", i, plan.Rotation, want)
		}
		if plan.Pos.X < 10 || plan.Pos.X > 1270 || plan.Pos.Y < 10 || plan.Pos.Y > 740 {
			t.Fatalf("spawn %d out of range: %+v", i, plan.Pos)
		}
	}
}

func TestPlanSpawnScripted(t *testing.T) {
	cfg := config.DefaultAstroConfig()

	tests := []struct {
		name string
		vals []int
		pos  core.Vec2
		vel  core.Vec2
	}{
		{"min corner, down-right", []int{0, 0, 0, 2}, core.V(10, 10), core.V(2, 2)},
		{"max corner, up-left", []int{1260, 730, 1, 0}, core.V(1270, 740), core.V(-2, -2)},
		{"horizontal only", []int{630, 350, 0, 1}, core.V(640, 360), core.V(2, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			plan := PlanSpawn(&scriptedRand{vals: tc.vals}, cfg)
			if plan.Pos != tc.pos {
				t.Errorf("Pos = %+v, expected %+v", plan.Pos, tc.pos)
			}
			if plan.Vel != tc.vel {
				t.Errorf("Vel = %+v, expected %+v", plan.Vel, tc.vel)
			}
		})
	}
}

func TestPlanSpawnIsPure(t *testing.T) {
	cfg := config.DefaultAstroConfig()
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		if PlanSpawn(a, cfg) != PlanSpawn(b, cfg) {
			t.Fatalf("spawn %d differs for the same seed", i)
		}
	}
}

func TestNonZeroResamples(t *testing.T) {
	rng := &scriptedRand{vals: []int{1, 0}}
	got := nonZero(rng, core.Vec2{}, 2)
	if got != core.V(-2, 2) {
		t.Errorf("nonZero(0,0) = %+v, expected (-2, 2)", got)
	}

	moving := core.V(2, 0)
	if nonZero(rng, moving, 2) != moving {
		t.Error("a moving velocity should be kept")
	}
}

func TestSpawnerCreatesBodies(t *testing.T) {
	s, _ := newTestSim(t)

	asteroids := s.SpawnAsteroids(3)
	meteors := s.SpawnMeteors(2)

	if got := s.World.Count(world.KindAsteroid); got != 3 || len(asteroids) != 3 {
		t.Fatalf("asteroid count = %d, expected 3", got)
	}
	if got := s.World.Count(world.KindMeteor); got != 2 || len(meteors) != 2 {
		t.Fatalf("meteor count = %d, expected 2", got)
	}

	a := mustGet(t, s, asteroids[0])
	if a.Radius != 45 || a.Sprite != SpriteAsteroid || a.AnimSpeed != 0.2 {
		t.Errorf("unexpected asteroid: radius=%f sprite=%q anim=%f", a.Radius, a.Sprite, a.AnimSpeed)
	}
	if !near(a.Rotation, core.Heading(a.Vel)) {
		t.Errorf("asteroid rotation %f does not face velocity %+v", a.Rotation, a.Vel)
	}

	m := mustGet(t, s, meteors[0])
	if m.Radius != 40 || m.Sprite != SpriteMeteor {
		t.Errorf("unexpected meteor: radius=%f sprite=%q", m.Radius, m.Sprite)
	}
}
