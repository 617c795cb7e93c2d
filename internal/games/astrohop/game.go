// Package astrohop implements Astro Hop: hop between drifting asteroids,
// break them open for their gems, and stay clear of meteors.
//
// Each Step runs the update passes in a fixed order over a Sim:
// gems, asteroids and debris, meteors, player trail, debris dust, player
// state, destroyed sweep. Rendering happens separately in Render.
package astrohop

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astrohop/internal/audio"
	"github.com/vovakirdan/astrohop/internal/config"
	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/registry"
	"github.com/vovakirdan/astrohop/internal/world"
)

// ID is the registry and score-table identifier of the game.
const ID = "astrohop"

// Minimum terminal size the field can be drawn in.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements registry.Game for Astro Hop.
type Game struct {
	sim     *Sim
	runtime core.RuntimeConfig
	cfg     config.AstroConfig
	fixed   *config.AstroConfig // Used instead of loading from disk when set

	sink   audio.Sink
	logger *log.Logger

	paused   bool
	debug    bool
	tooSmall bool
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{
		sink:   audio.Nop{},
		logger: log.New(io.Discard),
	}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.AstroConfig) *Game {
	g := New()
	g.fixed = &cfg
	return g
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// SetAudio routes sound cues to sink. It takes effect on the next Reset.
func (g *Game) SetAudio(sink audio.Sink) {
	if sink == nil {
		sink = audio.Nop{}
	}
	g.sink = sink
}

// SetLogger sets the logger used for round events. It takes effect on the next Reset.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Astro Hop"
}

// Reset starts a new run: one player, a fresh batch of asteroids and meteors,
// and the music loop.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	cfg := g.cfg
	reg := world.NewRegistry()
	bounds := core.Bounds{W: cfg.World.Width, H: cfg.World.Height}
	rng := rand.New(rand.NewSource(runtime.Seed))

	s := &Sim{
		Round: RoundState{
			RemainingGems: cfg.Rounds.StartGems,
			Rounds:        1,
			Mode:          ModeAppear,
		},
		World:      reg,
		Spawner:    NewSpawner(rng, cfg),
		Audio:      g.sink,
		Log:        g.logger,
		Cfg:        cfg,
		Bounds:     bounds,
		Difficulty: config.NewDifficultyManager(cfg.Difficulty),
		Input:      core.NewInputFrame(),
	}
	s.Player = reg.Create(world.KindPlayer, core.V(bounds.W/2, bounds.H/2), cfg.Player.Radius, SpriteFly)
	if p, err := reg.Get(s.Player); err == nil {
		p.SetSprite(SpriteFly, cfg.Player.AnimSpeed)
	}

	s.Audio.StartLoop(audio.TrackMusic)
	s.SpawnAsteroids(s.Round.RemainingGems)
	s.SpawnMeteors(s.meteorCount(1))
	g.sim = s

	g.paused = false
	g.debug = runtime.Debug
	g.tooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.logger.Debug("game reset", "seed", runtime.Seed, "asteroids", cfg.Rounds.StartGems)
}

func (g *Game) loadConfig() config.AstroConfig {
	if g.fixed != nil {
		return *g.fixed
	}
	cfg, err := config.LoadAstro(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultAstroConfig()
	}
	config.ApplyAstroPreset(&cfg, difficultyPreset)
	return cfg
}

// Resize updates the terminal size without restarting the run. The field
// keeps its world coordinates; only the viewport changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < MinScreenW || h < MinScreenH
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	s := g.sim
	s.Input = in

	updateGems(s)
	updateAsteroids(s)
	updateMeteors(s)
	updatePlayerParticles(s)
	updateAsteroidParticles(s)
	updatePlayer(s)
	updateDestroyed(s)

	s.Ticks++
	return core.StepResult{State: g.State()}
}

// State returns the current game state. The score is the number of gems
// collected since the last revival; the run is over while the player is dead.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Collected,
		Round:    g.sim.Round.Rounds,
		GameOver: g.sim.Round.Mode == ModeDead,
		Paused:   g.paused,
	}
}

// Round returns the current round state.
func (g *Game) Round() RoundState {
	return g.sim.Round
}

// Debug reports whether the debug overlay is on.
func (g *Game) Debug() bool {
	return g.debug
}
