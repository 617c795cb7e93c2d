package astrohop

import (
	"github.com/vovakirdan/astrohop/internal/audio"
	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/world"
)

// Debris splay: up, left and right, each with its own sprite frame.
var pieceSplay = []struct {
	frame int
	dir   core.Vec2
}{
	{0, core.V(0, -1)},
	{1, core.V(-1, 0)},
	{2, core.V(1, 0)},
}

// updateGems collects gems touched by the flying player. Collected gems are
// removed at once instead of flickering out.
func updateGems(s *Sim) {
	p := s.player()
	for _, h := range s.World.Handles(world.KindGem) {
		g, err := s.World.Get(h)
		if err != nil {
			continue
		}

		collected := false
		if s.Round.Mode == ModeNotGrounded && g.Overlaps(p) {
			collected = true
			s.Round.RemainingGems--
			s.Collected++
			s.Audio.Play(audio.CueReward)
			if s.Round.RemainingGems == 0 {
				s.Fire(EventLastGem)
			}
		}

		g.Advance()
		if collected {
			_ = s.World.Remove(h)
		}
	}
}

// updateAsteroids grounds the player on touched asteroids, breaks the attached
// asteroid on launch, and moves asteroids and their debris.
func updateAsteroids(s *Sim) {
	p := s.player()
	asteroids := s.World.Handles(world.KindAsteroid)

	for _, h := range asteroids {
		a, err := s.World.Get(h)
		if err != nil {
			continue
		}
		if a.Overlaps(p) && s.Fire(EventTouchdown) {
			s.Attached = h
		}
	}

	if s.Round.Mode == ModeGrounded && s.Input.Has(core.ActionLaunch) {
		if a := s.attached(); a != nil && !a.PendingDestruction {
			a.Vel = core.Vec2{}
			s.breakAsteroid(a.Pos)
			_ = s.World.MarkDestroyed(s.Attached)
		}
	}

	for _, h := range s.World.Handles(world.KindAsteroidPiece) {
		piece, _ := s.World.Get(h)
		piece.Advance()
		if !piece.Visible(s.Bounds) {
			piece.PendingDestruction = true
		}
	}

	// The snapshot still holds an asteroid broken this frame; it keeps moving
	// with zero velocity until the destroyed sweep takes it.
	for _, h := range asteroids {
		a, err := s.World.Get(h)
		if err != nil {
			continue
		}
		before := a.Pos
		s.wrap(a)
		if h == s.Attached && s.Round.Mode == ModeGrounded {
			s.carry(a.Pos.Sub(before))
		}
		a.Advance()
	}
}

// breakAsteroid leaves a gem and three debris pieces at pos.
func (s *Sim) breakAsteroid(pos core.Vec2) {
	b := s.Cfg.Bodies
	gem := s.World.Create(world.KindGem, pos, b.GemRadius, SpriteGem)
	if g, err := s.World.Get(gem); err == nil {
		g.SetSprite(SpriteGem, b.AnimSpeed)
	}

	for _, sp := range pieceSplay {
		h := s.World.Create(world.KindAsteroidPiece, pos, b.PieceRadius, SpritePieces)
		piece, _ := s.World.Get(h)
		piece.SetFrame(sp.frame)
		piece.Vel = sp.dir.Scale(b.PieceSpeed)
	}
}

// updateMeteors kills an unshielded player on contact and moves meteors.
func updateMeteors(s *Sim) {
	p := s.player()
	for _, h := range s.World.Handles(world.KindMeteor) {
		m, err := s.World.Get(h)
		if err != nil {
			continue
		}

		if s.Can(EventMeteorHit) && p.Overlaps(m) && !s.shielded(p) {
			s.Audio.StopLoop(audio.TrackMusic)
			s.Audio.Play(audio.CueCombust)
			s.Fire(EventMeteorHit)
			s.Log.Debug("player died", "round", s.Round.Rounds, "gems", s.Collected)
		}

		s.wrap(m)
		m.Advance()
	}
}
