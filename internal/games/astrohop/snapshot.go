package astrohop

import "github.com/vovakirdan/astrohop/internal/world"

// Snapshot captures the game state for determinism testing and replay checks.
// All fields are comparable so two snapshots can be compared with ==.
type Snapshot struct {
	Tick          int
	Rounds        int
	RemainingGems int
	Mode          string
	Collected     int

	PlayerX, PlayerY float64
	PlayerRotation   float64

	Asteroids int
	Meteors   int
	Gems      int
	Pieces    int
	Particles int // Player trail and debris dust together
	Destroyed int
	Total     int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.sim
	p := s.player()
	reg := s.World
	return Snapshot{
		Tick:           s.Ticks,
		Rounds:         s.Round.Rounds,
		RemainingGems:  s.Round.RemainingGems,
		Mode:           s.Round.Mode.String(),
		Collected:      s.Collected,
		PlayerX:        p.Pos.X,
		PlayerY:        p.Pos.Y,
		PlayerRotation: p.Rotation,
		Asteroids:      reg.Count(world.KindAsteroid),
		Meteors:        reg.Count(world.KindMeteor),
		Gems:           reg.Count(world.KindGem),
		Pieces:         reg.Count(world.KindAsteroidPiece),
		Particles:      reg.Count(world.KindPlayerParticle) + reg.Count(world.KindAsteroidParticle),
		Destroyed:      reg.Count(world.KindDestroyed),
		Total:          reg.Len(),
	}
}
