package astrohop

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astrohop/internal/audio"
	"github.com/vovakirdan/astrohop/internal/config"
	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/world"
)

// Sprite names.
const (
	SpriteFly      = "agent8_fly"
	SpriteRight    = "agent8_right"
	SpriteLeft     = "agent8_left"
	SpriteDead     = "agent8_dead"
	SpriteAsteroid = "asteroid"
	SpriteMeteor   = "meteor"
	SpriteGem      = "gem"
	SpritePieces   = "asteroid_pieces"
	SpriteParticle = "particle"
)

// RoundState is the progress of the current run.
type RoundState struct {
	RemainingGems int
	Rounds        int
	Mode          Mode
}

// Sim is everything a frame needs. Every update pass takes it by pointer.
type Sim struct {
	Round    RoundState
	Attached world.Handle // Asteroid the player stands on; may be stale
	Player   world.Handle

	World   *world.Registry
	Spawner *Spawner
	Audio   audio.Sink
	Log     *log.Logger

	Cfg        config.AstroConfig
	Bounds     core.Bounds
	Difficulty *config.DifficultyManager

	Input     core.InputFrame
	Ticks     int
	Collected int // Gems collected since the last revival
}

// Can reports whether e is legal in the current mode.
func (s *Sim) Can(e Event) bool {
	_, ok := Next(s.Round.Mode, e)
	return ok
}

// Fire applies e to the player mode. Illegal events leave the mode unchanged
// and return false.
func (s *Sim) Fire(e Event) bool {
	to, ok := Next(s.Round.Mode, e)
	if !ok {
		return false
	}
	if to != s.Round.Mode {
		s.Log.Debug("mode change", "from", s.Round.Mode, "event", e, "to", to,
			"round", s.Round.Rounds, "gems", s.Round.RemainingGems)
	}
	s.Round.Mode = to
	return true
}

// player resolves the player entity. The player is never removed, so a
// failure here is a programming error.
func (s *Sim) player() *world.Entity {
	p, err := s.World.Get(s.Player)
	if err != nil {
		panic("astrohop: player entity missing: " + err.Error())
	}
	return p
}

// attached resolves the attached asteroid, or nil if the handle is stale.
func (s *Sim) attached() *world.Entity {
	a, err := s.World.Get(s.Attached)
	if err != nil {
		return nil
	}
	return a
}

// shielded reports whether the player is standing on a live attached asteroid.
// A stale or broken anchor offers no protection.
func (s *Sim) shielded(p *world.Entity) bool {
	a := s.attached()
	return a != nil && !a.PendingDestruction && a.Overlaps(p)
}

// meteorCount is how many meteors a round spawns.
func (s *Sim) meteorCount(round int) int {
	return s.Difficulty.MeteorCount(round*s.Cfg.Rounds.MeteorsPerRound, round, s.Ticks)
}

// flightSpeed is the airborne speed at the current difficulty.
func (s *Sim) flightSpeed() float64 {
	return s.Difficulty.FlightSpeed(s.Cfg.Player.FlightSpeed, s.Round.Rounds, s.Ticks)
}
