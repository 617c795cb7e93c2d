package astrohop

import (
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astrohop/internal/audio"
	"github.com/vovakirdan/astrohop/internal/config"
	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/world"
)

const eps = 1e-9

// newTestSim returns a Sim holding only the player, at the field center.
func newTestSim(t *testing.T) (*Sim, *audio.Recorder) {
	t.Helper()
	cfg := config.DefaultAstroConfig()
	rec := audio.NewRecorder()
	reg := world.NewRegistry()

	s := &Sim{
		Round:      RoundState{RemainingGems: 3, Rounds: 1, Mode: ModeAppear},
		World:      reg,
		Spawner:    NewSpawner(rand.New(rand.NewSource(1)), cfg),
		Audio:      rec,
		Log:        log.New(io.Discard),
		Cfg:        cfg,
		Bounds:     core.Bounds{W: cfg.World.Width, H: cfg.World.Height},
		Difficulty: config.NewDifficultyManager(cfg.Difficulty),
		Input:      core.NewInputFrame(),
	}
	s.Player = reg.Create(world.KindPlayer, core.V(640, 360), cfg.Player.Radius, SpriteFly)
	return s, rec
}

// put adds an entity of kind with the configured radius.
func put(s *Sim, kind world.Kind, pos, vel core.Vec2) world.Handle {
	var radius float64
	b := s.Cfg.Bodies
	switch kind {
	case world.KindAsteroid:
		radius = b.AsteroidRadius
	case world.KindMeteor:
		radius = b.MeteorRadius
	case world.KindGem:
		radius = b.GemRadius
	case world.KindAsteroidPiece:
		radius = b.PieceRadius
	default:
		radius = s.Cfg.Particles.Radius
	}
	h := s.World.Create(kind, pos, radius, kind.String())
	e, _ := s.World.Get(h)
	e.Vel = vel
	return h
}

func mustGet(t *testing.T, s *Sim, h world.Handle) *world.Entity {
	t.Helper()
	e, err := s.World.Get(h)
	if err != nil {
		t.Fatalf("Get(%s) failed: %v", h, err)
	}
	return e
}

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b core.Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// newTestGame returns a reset game using the default config and a recorder.
func newTestGame(t *testing.T, seed int64) (*Game, *audio.Recorder) {
	t.Helper()
	rec := audio.NewRecorder()
	g := NewWithConfig(config.DefaultAstroConfig())
	g.SetAudio(rec)
	g.Reset(testRuntime(seed))
	return g, rec
}
