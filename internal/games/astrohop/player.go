package astrohop

import (
	"math"

	"github.com/vovakirdan/astrohop/internal/audio"
	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/world"
)

// updatePlayer runs the handler for the current mode, then wraps and advances
// the player. A grounded player is not wrapped on its own while its asteroid
// lives: the asteroid carries it across the edge. Every other mode wraps so a
// corpse keeps gliding.
func updatePlayer(s *Sim) {
	switch s.Round.Mode {
	case ModeAppear:
		s.handleAppear()
	case ModeGrounded:
		s.handleGrounded()
	case ModeNotGrounded:
		s.handleNotGrounded()
	case ModeDead:
		s.handleDead()
	case ModeWin:
		s.handleWin()
	}

	p := s.player()
	if s.Round.Mode != ModeGrounded || s.attached() == nil {
		s.wrap(p)
	}
	p.Advance()
}

// handleAppear puts the player on the orbit of the first asteroid.
func (s *Sim) handleAppear() {
	h, ok := s.World.First(world.KindAsteroid)
	if !ok {
		s.Log.Warn("no asteroid to appear on, spawning one", "round", s.Round.Rounds)
		h = s.SpawnAsteroids(1)[0]
	}
	a, _ := s.World.Get(h)
	p := s.player()

	angle := p.Pos.Sub(a.Pos).Angle()
	p.Rotation = angle + math.Pi/2
	s.place(p, core.Polar(a.Pos, s.Cfg.Player.OrbitRadius, angle))
	p.Vel = a.Vel
	p.SetSprite(SpriteFly, s.Cfg.Player.AnimSpeed)
	s.Attached = h

	if p.Overlaps(a) {
		s.Fire(EventTouchdown)
	}
}

// handleGrounded rides the attached asteroid and keeps the player on its
// orbit, measured across the wrap. Launch takes priority over turning so the
// asteroid broken by the asteroid pass always releases the player.
func (s *Sim) handleGrounded() {
	a := s.attached()
	if a == nil {
		return
	}
	p := s.player()
	cfg := s.Cfg.Player

	angle := Offset(p.Pos, a.Pos, s.Bounds, s.Cfg.World.WrapMargin).Angle()
	p.Vel = a.Vel
	p.Rotation = angle + math.Pi/2

	switch {
	case s.Input.Has(core.ActionLaunch):
		s.place(p, core.Polar(a.Pos, cfg.LaunchOffset, angle))
		p.SetSprite(SpriteFly, cfg.AnimSpeed)
		s.Audio.Play(audio.CueLaunch)
		s.Fire(EventLaunch)
	case s.Input.Down(core.ActionRight):
		s.orbit(p, a, angle+cfg.TurnStep)
		p.SetSprite(SpriteRight, cfg.AnimSpeed)
	case s.Input.Down(core.ActionLeft):
		s.orbit(p, a, angle-cfg.TurnStep)
		p.SetSprite(SpriteLeft, cfg.AnimSpeed)
	default:
		s.orbit(p, a, angle)
		p.SetSprite(SpriteFly, cfg.AnimSpeed)
	}
}

func (s *Sim) orbit(p, a *world.Entity, angle float64) {
	s.place(p, core.Polar(a.Pos, s.Cfg.Player.OrbitRadius, angle))
	p.Rotation = angle + math.Pi/2
}

// place teleports e. OldPos follows so the wrap test sees where e is now,
// not where it was before the jump.
func (s *Sim) place(e *world.Entity, pos core.Vec2) {
	e.Pos = pos
	e.OldPos = pos
}

// handleNotGrounded steers the player. Velocity follows the heading, so
// Advance moves it speed units along the facing direction.
func (s *Sim) handleNotGrounded() {
	p := s.player()
	if s.Input.Down(core.ActionRight) {
		p.Rotation += s.Cfg.Player.TurnStep
	}
	if s.Input.Down(core.ActionLeft) {
		p.Rotation -= s.Cfg.Player.TurnStep
	}
	speed := s.flightSpeed()
	p.Vel = core.V(math.Sin(p.Rotation)*speed, -math.Cos(p.Rotation)*speed)
}

// handleDead leaves the velocity as it was and waits for Confirm.
func (s *Sim) handleDead() {
	p := s.player()
	p.SetSprite(SpriteDead, s.Cfg.Player.DeadAnim)
	p.Rotation = core.Heading(p.Vel)

	if s.Input.Has(core.ActionConfirm) {
		s.revive()
	}
}

// revivedKinds are cleared from the field when the player continues.
var revivedKinds = []world.Kind{
	world.KindAsteroid,
	world.KindMeteor,
	world.KindGem,
	world.KindAsteroidPiece,
	world.KindAsteroidParticle,
}

// revive clears the field and starts again from round one.
func (s *Sim) revive() {
	for _, kind := range revivedKinds {
		for _, h := range s.World.Handles(kind) {
			_ = s.World.MarkDestroyed(h)
		}
	}

	s.Round.RemainingGems = s.Cfg.Rounds.StartGems
	s.Round.Rounds = 1
	s.Collected = 0
	s.Audio.StartLoop(audio.TrackMusic)

	s.SpawnAsteroids(s.Round.RemainingGems)
	s.SpawnMeteors(s.meteorCount(s.Round.Rounds))
	s.Fire(EventConfirm)
	s.Log.Debug("player revived")
}

// handleWin starts the next round on top of what is left of this one.
func (s *Sim) handleWin() {
	s.Round.Rounds++
	s.Round.RemainingGems = int(math.Floor(s.Cfg.Rounds.GemsPerRound * float64(s.Round.Rounds)))

	s.SpawnAsteroids(s.Round.RemainingGems)
	s.SpawnMeteors(s.meteorCount(s.Round.Rounds))
	s.Fire(EventRoundStart)
	s.Log.Debug("round started", "round", s.Round.Rounds, "gems", s.Round.RemainingGems)
}
