package astrohop

import (
	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/world"
)

// updatePlayerParticles leaves a shrinking trail behind the flying player.
func updatePlayerParticles(s *Sim) {
	cfg := s.Cfg.Particles
	if s.Round.Mode == ModeNotGrounded {
		p := s.player()
		s.World.Create(world.KindPlayerParticle, p.Pos.Add(core.V(cfg.TrailOffset, 0)), cfg.Radius, SpriteParticle)
	}

	for _, h := range s.World.Handles(world.KindPlayerParticle) {
		e, _ := s.World.Get(h)
		e.Scale -= cfg.Decay
		if e.Scale <= cfg.MinScale {
			e.PendingDestruction = true
		}
		e.Advance()
	}
}

// updateAsteroidParticles puffs dust behind every visible debris piece. Dust
// flickers out once its scale drops below DustMinScale; the default of 1
// keeps it for a single frame.
func updateAsteroidParticles(s *Sim) {
	cfg := s.Cfg.Particles
	for _, h := range s.World.Handles(world.KindAsteroidPiece) {
		piece, _ := s.World.Get(h)
		if piece.Visible(s.Bounds) {
			s.World.Create(world.KindAsteroidParticle, piece.Pos, cfg.Radius, SpriteParticle)
		}
	}

	for _, h := range s.World.Handles(world.KindAsteroidParticle) {
		e, _ := s.World.Get(h)
		e.Scale -= cfg.Decay
		if e.Scale < cfg.DustMinScale {
			e.PendingDestruction = true
		}
		e.Advance()
	}
}
