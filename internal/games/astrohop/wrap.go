package astrohop

import (
	"math"

	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/world"
)

// Wrap moves an entity whose previous position left the field by more than
// margin to the opposite side. Axes are handled independently. Using the
// previous position keeps a freshly wrapped entity from bouncing back.
func Wrap(e *world.Entity, b core.Bounds, margin float64) {
	switch {
	case e.OldPos.X < -margin:
		e.Pos.X = b.W + margin
	case e.OldPos.X > b.W+margin:
		e.Pos.X = -margin
	}

	switch {
	case e.OldPos.Y < -margin:
		e.Pos.Y = b.H + margin
	case e.OldPos.Y > b.H+margin:
		e.Pos.Y = -margin
	}
}

func (s *Sim) wrap(e *world.Entity) {
	Wrap(e, s.Bounds, s.Cfg.World.WrapMargin)
}

// Offset returns the shortest displacement from b to a on the wrapped field,
// whose period on each axis is the field size plus both margins.
func Offset(a, b core.Vec2, bounds core.Bounds, margin float64) core.Vec2 {
	d := a.Sub(b)
	d.X = shortest(d.X, bounds.W+2*margin)
	d.Y = shortest(d.Y, bounds.H+2*margin)
	return d
}

func shortest(d, period float64) float64 {
	if period <= 0 {
		return d
	}
	return d - period*math.Round(d/period)
}

// carry moves the player by d along with the asteroid it stands on.
func (s *Sim) carry(d core.Vec2) {
	p := s.player()
	p.Pos = p.Pos.Add(d)
	p.OldPos = p.OldPos.Add(d)
}
