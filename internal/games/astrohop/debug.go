package astrohop

import (
	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/world"
)

// DebugNote is a label drawn at a world position by the debug overlay.
type DebugNote struct {
	Pos  core.Vec2
	Text string
}

// DebugOverlay lists the overlay labels for the current frame, in draw order:
// collision notes first, then position markers.
func DebugOverlay(s *Sim) []DebugNote {
	var notes []DebugNote
	p := s.player()
	asteroids := s.entities(world.KindAsteroid)
	gems := s.entities(world.KindGem)
	meteors := s.entities(world.KindMeteor)

	for _, a := range asteroids {
		for _, g := range gems {
			switch {
			case a.Overlaps(g):
				notes = append(notes, DebugNote{g.Pos, "Gem is Touching Asteroid"})
			case g.Pos == a.Pos:
				notes = append(notes, DebugNote{g.Pos, "Gem and Asteroid Have Same Pos Value"})
			}
		}
	}
	for _, a := range asteroids {
		if a.Overlaps(p) {
			notes = append(notes, DebugNote{a.Pos, "Asteroid is Colliding with player"})
		}
	}
	for _, m := range meteors {
		if m.Overlaps(p) {
			notes = append(notes, DebugNote{m.Pos, "Meteor is Colliding with player"})
		}
	}

	for _, a := range asteroids {
		notes = append(notes, DebugNote{a.Pos, "Asteroid Here"})
	}
	for _, m := range meteors {
		notes = append(notes, DebugNote{m.Pos, "Meteor Here"})
	}
	for _, g := range gems {
		notes = append(notes, DebugNote{g.Pos, "Gem Here"})
	}
	if p.Visible(s.Bounds) {
		notes = append(notes, DebugNote{p.Pos, "Player is Here"})
	}
	return notes
}

// AnchorLine returns the segment from the player to its attached asteroid.
// ok is false when the attachment is stale.
func AnchorLine(s *Sim) (from, to core.Vec2, ok bool) {
	a := s.attached()
	if a == nil {
		return core.Vec2{}, core.Vec2{}, false
	}
	return s.player().Pos, a.Pos, true
}

func (s *Sim) entities(kind world.Kind) []*world.Entity {
	handles := s.World.Handles(kind)
	out := make([]*world.Entity, 0, len(handles))
	for _, h := range handles {
		if e, err := s.World.Get(h); err == nil {
			out = append(out, e)
		}
	}
	return out
}
