package astrohop

import (
	"fmt"
	"math"

	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/world"
)

// Glyphs
const (
	AsteroidGlyph = '▓'
	MeteorGlyph   = '▒'
	MeteorCore    = '@'
	GemGlyph      = '◆'
	PieceGlyph    = '▪'
	TrailGlyph    = '·'
	DustGlyph     = '˙'
	DeadGlyph     = 'X'
	AnchorGlyph   = '.'
)

// headingArrows maps eight compass sectors, starting at "up" and going
// clockwise, to the player glyph.
var headingArrows = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// HUD text.
const (
	ControlsHint = "PRESS <- AND -> ARROW KEYS TO TURN AND SPACE TO LAUNCH"
	ContinueHint = "PRESS ENTER TO CONTINUE"
)

// viewport maps world coordinates onto the screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(b core.Bounds, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / b.W,
		sy: float64(dst.Height()) / b.H,
		w:  dst.Width(),
		h:  dst.Height(),
	}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y * v.sy))
}

// disk fills every cell whose center lies within r world units of center.
func (v viewport) disk(dst *core.Screen, center core.Vec2, r float64, glyph rune, c core.Color) {
	x0, y0 := v.cell(center.Sub(core.V(r, r)))
	x1, y1 := v.cell(center.Add(core.V(r, r)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			mid := core.V((float64(x)+0.5)/v.sx, (float64(y)+0.5)/v.sy)
			if mid.Sub(center).Len() <= r {
				dst.SetColored(x, y, glyph, c)
			}
		}
	}
	// Small bodies always take at least their center cell.
	cx, cy := v.cell(center)
	dst.SetColored(cx, cy, glyph, c)
}

// HeadingGlyph returns the arrow closest to the given rotation (0 = up,
// clockwise positive).
func HeadingGlyph(rotation float64) rune {
	sector := int(math.Round(rotation / (math.Pi / 4)))
	n := len(headingArrows)
	return headingArrows[((sector%n)+n)%n]
}

// Render draws the field, the HUD, and any overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.sim == nil {
		msg := fmt.Sprintf("Terminal too small (need %dx%d)", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2, msg)
		return
	}

	s := g.sim
	v := newViewport(s.Bounds, dst)

	for _, e := range s.entities(world.KindPlayerParticle) {
		x, y := v.cell(e.Pos)
		dst.SetColored(x, y, TrailGlyph, core.ColorOrange)
	}
	for _, e := range s.entities(world.KindAsteroidParticle) {
		x, y := v.cell(e.Pos)
		dst.SetColored(x, y, DustGlyph, core.ColorGray)
	}
	for _, e := range s.entities(world.KindAsteroidPiece) {
		x, y := v.cell(e.Pos)
		dst.SetColored(x, y, PieceGlyph, core.ColorGray)
	}
	for _, e := range s.entities(world.KindAsteroid) {
		v.disk(dst, e.Pos, e.Radius, AsteroidGlyph, core.ColorWhite)
	}
	for _, e := range s.entities(world.KindGem) {
		x, y := v.cell(e.Pos)
		dst.SetColored(x, y, GemGlyph, core.ColorBrightCyan)
	}
	for _, e := range s.entities(world.KindMeteor) {
		v.disk(dst, e.Pos, e.Radius*0.8, MeteorGlyph, core.ColorRed)
		x, y := v.cell(e.Pos)
		dst.SetColored(x, y, MeteorCore, core.ColorBrightRed)
	}
	g.drawDestroyed(dst, v)
	g.drawPlayer(dst, v)

	if g.debug {
		g.drawDebug(dst, v)
	}
	g.drawHUD(dst)
}

// drawDestroyed draws flickering remains on odd frames, dimmer as they fade.
func (g *Game) drawDestroyed(dst *core.Screen, v viewport) {
	s := g.sim
	for _, e := range s.entities(world.KindDestroyed) {
		opacity, drawn := Flicker(e, s.Cfg.Destroyed.MaxFrame)
		if !drawn {
			continue
		}
		color := core.ColorGray
		if opacity < 0.5 {
			color = core.ColorDarkGray
		}
		x, y := v.cell(e.Pos)
		dst.SetColored(x, y, destroyedGlyph(e.Kind), color)
	}
}

func destroyedGlyph(k world.Kind) rune {
	switch k {
	case world.KindAsteroid:
		return AsteroidGlyph
	case world.KindMeteor:
		return MeteorCore
	case world.KindGem:
		return GemGlyph
	case world.KindAsteroidPiece:
		return PieceGlyph
	default:
		return TrailGlyph
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	p := g.sim.player()
	x, y := v.cell(p.Pos)

	switch p.Sprite {
	case SpriteDead:
		dst.SetColored(x, y, DeadGlyph, core.ColorBrightRed)
	case SpriteLeft, SpriteRight:
		dst.SetColored(x, y, HeadingGlyph(p.Rotation), core.ColorBrightGreen)
	default:
		dst.SetColored(x, y, HeadingGlyph(p.Rotation), core.ColorBrightYellow)
	}
}

func (g *Game) drawDebug(dst *core.Screen, v viewport) {
	s := g.sim
	if from, to, ok := AnchorLine(s); ok {
		x0, y0 := v.cell(from)
		x1, y1 := v.cell(to)
		dst.DrawLine(x0, y0, x1, y1, AnchorGlyph, core.ColorWhite)
	}
	for _, n := range DebugOverlay(s) {
		x, y := v.cell(n.Pos)
		dst.DrawTextColored(x, y, n.Text, core.ColorGreen)
	}
	status := fmt.Sprintf("%s tick=%d attached=%s entities=%d",
		s.Round.Mode, s.Ticks, s.Attached, s.World.Len())
	dst.DrawTextColored(0, 1, status, core.ColorGreen)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.sim
	w, h := dst.Width(), dst.Height()

	dst.DrawTextColored(1, 0, fmt.Sprintf("REMAINING GEMS: %d", s.Round.RemainingGems), core.ColorBrightWhite)
	round := fmt.Sprintf("ROUND %d", s.Round.Rounds)
	dst.DrawTextColored(w-len(round)-1, 0, round, core.ColorBrightWhite)

	hint := ControlsHint
	if len(hint) > w {
		hint = "<- -> TURN  SPACE LAUNCH"
	}
	dst.DrawTextCentered(h-1, hint)

	if s.Round.Mode == ModeDead {
		msg := ContinueHint
		dst.DrawTextColored((w-len(msg))/2, h/2, msg, core.ColorBrightYellow)
	}
	if g.paused {
		msg := "PAUSED - press P to resume"
		dst.DrawTextColored((w-len(msg))/2, h/2+1, msg, core.ColorBrightYellow)
	}
}
