package config

import "math"

// DifficultyManager calculates dynamic game parameters based on round/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on round/ticks.
func (d *DifficultyManager) Level(round int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	switch d.cfg.Progression.Type {
	case "round":
		// Round 1 is the starting point, not one step in.
		progress = float64(round-1) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MeteorCount returns how many meteors a round spawns.
func (d *DifficultyManager) MeteorCount(base int, round int, ticks int) int {
	level := d.Level(round, ticks)
	return base + int(level*float64(d.cfg.Scaling.ExtraMeteors))
}

// FlightSpeed returns the player's airborne speed at the current difficulty.
func (d *DifficultyManager) FlightSpeed(base float64, round int, ticks int) float64 {
	level := d.Level(round, ticks)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
