// Package config provides YAML-based game configuration loading and
// difficulty management for Astro Hop.
package config

import (
	"errors"
	"fmt"
)

// AstroConfig contains all configuration for Astro Hop.
// All distances are in world units; the play field is World.Width x World.Height.
type AstroConfig struct {
	World      AstroWorld       `yaml:"world"`
	Player     AstroPlayer      `yaml:"player"`
	Bodies     AstroBodies      `yaml:"bodies"`
	Rounds     AstroRounds      `yaml:"rounds"`
	Particles  AstroParticles   `yaml:"particles"`
	Destroyed  AstroDestroyed   `yaml:"destroyed"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// AstroWorld defines the play field.
type AstroWorld struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Scale      float64 `yaml:"scale"`
	WrapMargin float64 `yaml:"wrap_margin"` // Distance off-screen before an entity wraps
	SpawnInset float64 `yaml:"spawn_inset"` // Spawn positions keep this far from the left/top edge
}

// AstroPlayer defines player movement.
type AstroPlayer struct {
	Radius       float64 `yaml:"radius"`
	OrbitRadius  float64 `yaml:"orbit_radius"`  // Distance from asteroid center while grounded
	LaunchOffset float64 `yaml:"launch_offset"` // Distance from asteroid center right after launch
	TurnStep     float64 `yaml:"turn_step"`     // Radians per tick of held turn input
	FlightSpeed  float64 `yaml:"flight_speed"`  // Units per tick while airborne
	AnimSpeed    float64 `yaml:"anim_speed"`
	DeadAnim     float64 `yaml:"dead_anim_speed"`
}

// AstroBodies defines asteroids, meteors, gems and asteroid debris.
type AstroBodies struct {
	AsteroidRadius float64 `yaml:"asteroid_radius"`
	MeteorRadius   float64 `yaml:"meteor_radius"`
	GemRadius      float64 `yaml:"gem_radius"`
	PieceRadius    float64 `yaml:"piece_radius"`
	DriftSpeed     float64 `yaml:"drift_speed"` // Per-axis speed of spawned asteroids and meteors
	PieceSpeed     float64 `yaml:"piece_speed"` // Speed of debris after an asteroid breaks
	AnimSpeed      float64 `yaml:"anim_speed"`
}

// AstroRounds defines round progression.
type AstroRounds struct {
	StartGems       int     `yaml:"start_gems"`
	GemsPerRound    float64 `yaml:"gems_per_round"` // Next quota is floor(GemsPerRound * round)
	MeteorsPerRound int     `yaml:"meteors_per_round"`
}

// AstroParticles defines the cosmetic trail particles.
type AstroParticles struct {
	Radius       float64 `yaml:"radius"`
	Decay        float64 `yaml:"decay"`          // Scale lost per tick
	MinScale     float64 `yaml:"min_scale"`      // Player trail particles are removed at or below this
	DustMinScale float64 `yaml:"dust_min_scale"` // Debris dust is removed below this; 1 keeps it one frame
	TrailOffset  float64 `yaml:"trail_offset"`   // Distance from the player where trail particles appear
}

// AstroDestroyed defines the flicker-out animation of destroyed entities.
type AstroDestroyed struct {
	AnimSpeed float64 `yaml:"anim_speed"`
	MaxFrame  int     `yaml:"max_frame"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	SampleRate    int     `yaml:"sample_rate"`
	MasterVolume  float64 `yaml:"master_volume"`
	MusicVolume   float64 `yaml:"music_volume"`
	EffectsVolume float64 `yaml:"effects_volume"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "round", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Round/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to flight speed at max difficulty
	ExtraMeteors    int     `yaml:"extra_meteors"`    // Meteors added per round at max difficulty
}

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the configuration describes a playable game.
func (c AstroConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.World.Width > 0 && c.World.Height > 0, "world size must be positive"},
		{c.World.WrapMargin >= 0, "wrap_margin must not be negative"},
		{c.Player.Radius > 0, "player radius must be positive"},
		{c.Player.OrbitRadius > 0, "orbit_radius must be positive"},
		{c.Player.FlightSpeed > 0, "flight_speed must be positive"},
		{c.Bodies.AsteroidRadius > 0 && c.Bodies.MeteorRadius > 0, "body radii must be positive"},
		{c.Bodies.DriftSpeed > 0, "drift_speed must be positive"},
		{c.Rounds.StartGems > 0, "start_gems must be positive"},
		{c.Rounds.GemsPerRound > 0, "gems_per_round must be positive"},
		{c.Particles.Decay > 0, "particle decay must be positive"},
		{c.Particles.DustMinScale > 0, "particle dust_min_scale must be positive"},
		{c.Destroyed.MaxFrame > 0, "destroyed max_frame must be positive"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.msg)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "" (use config default).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
