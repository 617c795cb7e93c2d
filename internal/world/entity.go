// Package world holds every live game object in a generation-checked arena.
//
// Game code never keeps pointers to entities across frames. It keeps Handles and
// resolves them each frame with Registry.Get, which fails with ErrStaleHandle once
// the entity has been removed, even if its slot was reused since.
package world

import (
	"math"

	"github.com/vovakirdan/astrohop/internal/core"
)

// Kind tags what an entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindGem
	KindAsteroid
	KindAsteroidPiece
	KindMeteor
	KindPlayerParticle
	KindAsteroidParticle
	// KindDestroyed is never stored. It is what EffectiveKind reports for an
	// entity that is pending destruction.
	KindDestroyed
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindGem:
		return "gem"
	case KindAsteroid:
		return "asteroid"
	case KindAsteroidPiece:
		return "asteroid_piece"
	case KindMeteor:
		return "meteor"
	case KindPlayerParticle:
		return "player_particle"
	case KindAsteroidParticle:
		return "asteroid_particle"
	case KindDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Entity is a single game object.
type Entity struct {
	Kind Kind

	// PendingDestruction marks an entity as logically dead. It stays in the
	// registry, reported as KindDestroyed, until the destroyed sweep removes it.
	PendingDestruction bool

	Pos    core.Vec2 // Position this frame
	OldPos core.Vec2 // Position before the last Advance
	Vel    core.Vec2 // Displacement applied by each Advance

	Rotation float64 // Radians, 0 = facing up
	Scale    float64
	Radius   float64 // Collision radius in world units

	Sprite    string
	Frame     int     // Current animation frame
	AnimSpeed float64 // Frames advanced per tick
	framePos  float64
}

// EffectiveKind returns KindDestroyed for pending entities and Kind otherwise.
func (e *Entity) EffectiveKind() Kind {
	if e.PendingDestruction {
		return KindDestroyed
	}
	return e.Kind
}

// SetSprite switches the entity's sprite and animation speed.
// Switching to a different sprite restarts the animation at frame 0.
func (e *Entity) SetSprite(name string, animSpeed float64) {
	if e.Sprite != name {
		e.Sprite = name
		e.Frame = 0
		e.framePos = 0
	}
	e.AnimSpeed = animSpeed
}

// SetFrame jumps the animation to the given frame.
func (e *Entity) SetFrame(frame int) {
	e.Frame = frame
	e.framePos = float64(frame)
}

// Advance runs one simulation step: remembers the old position, applies the
// velocity, and moves the animation forward by AnimSpeed.
func (e *Entity) Advance() {
	e.OldPos = e.Pos
	e.Pos = e.Pos.Add(e.Vel)
	e.framePos += e.AnimSpeed
	e.Frame = int(math.Floor(e.framePos))
}

// Overlaps reports whether the collision circles of e and o intersect.
func (e *Entity) Overlaps(o *Entity) bool {
	return core.CirclesOverlap(e.Pos, e.Radius*e.scale(), o.Pos, o.Radius*o.scale())
}

// Visible reports whether any part of the entity is within the play field.
func (e *Entity) Visible(b core.Bounds) bool {
	return b.Inside(e.Pos, e.Radius*e.scale())
}

func (e *Entity) scale() float64 {
	if e.Scale <= 0 {
		return 0
	}
	return e.Scale
}
