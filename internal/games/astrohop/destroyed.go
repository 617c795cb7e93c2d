package astrohop

import "github.com/vovakirdan/astrohop/internal/world"

// updateDestroyed animates entities pending destruction and removes them once
// they leave the field or finish flickering.
func updateDestroyed(s *Sim) {
	maxFrame := s.Cfg.Destroyed.MaxFrame
	for _, h := range s.World.Handles(world.KindDestroyed) {
		e, _ := s.World.Get(h)
		e.AnimSpeed = s.Cfg.Destroyed.AnimSpeed
		e.Advance()

		if !e.Visible(s.Bounds) || e.Frame >= maxFrame {
			_ = s.World.Remove(h)
		}
	}
}

// Flicker returns the opacity of an entity pending destruction and whether it
// is drawn this frame. Only odd frames are drawn, fading as the frame grows.
func Flicker(e *world.Entity, maxFrame int) (opacity float64, drawn bool) {
	if e.Frame%2 == 0 || e.Frame >= maxFrame {
		return 0, false
	}
	return float64(maxFrame-e.Frame) / float64(maxFrame), true
}
