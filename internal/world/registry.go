package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/astrohop/internal/core"
)

// ErrStaleHandle is returned when a handle refers to an entity that no longer exists.
var ErrStaleHandle = errors.New("world: stale handle")

// Handle is a weak reference to an entity. The zero Handle never resolves.
type Handle struct {
	index uint32
	gen   uint32 // 0 is never issued
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// String formats the handle for logs and debug output.
func (h Handle) String() string {
	if h.IsZero() {
		return "#-"
	}
	return fmt.Sprintf("#%d.%d", h.index, h.gen)
}

type slot struct {
	entity Entity
	gen    uint32
	alive  bool
}

// Registry stores entities in reusable slots. Iteration follows creation order.
// It is not safe for concurrent use; one Registry belongs to one game.
type Registry struct {
	slots []*slot
	free  []uint32
	order []uint32 // live slot indices in creation order
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		slots: make([]*slot, 0, 64),
		order: make([]uint32, 0, 64),
	}
}

// Create adds a new entity and returns its handle.
func (r *Registry) Create(kind Kind, pos core.Vec2, radius float64, sprite string) Handle {
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, &slot{})
		idx = uint32(len(r.slots) - 1)
	}

	s := r.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.alive = true
	s.entity = Entity{
		Kind:   kind,
		Pos:    pos,
		OldPos: pos,
		Radius: radius,
		Scale:  1,
		Sprite: sprite,
	}
	r.order = append(r.order, idx)

	return Handle{index: idx, gen: s.gen}
}

// Get resolves a handle. The returned pointer must not be kept across frames.
func (r *Registry) Get(h Handle) (*Entity, error) {
	if h.IsZero() || int(h.index) >= len(r.slots) {
		return nil, fmt.Errorf("get %s: %w", h, ErrStaleHandle)
	}
	s := r.slots[h.index]
	if !s.alive || s.gen != h.gen {
		return nil, fmt.Errorf("get %s: %w", h, ErrStaleHandle)
	}
	return &s.entity, nil
}

// Alive reports whether h still resolves.
func (r *Registry) Alive(h Handle) bool {
	_, err := r.Get(h)
	return err == nil
}

// Remove deletes the entity immediately. Its handle becomes stale.
func (r *Registry) Remove(h Handle) error {
	if _, err := r.Get(h); err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	s := r.slots[h.index]
	s.alive = false
	s.entity = Entity{}
	r.free = append(r.free, h.index)

	for i, idx := range r.order {
		if idx == h.index {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// MarkDestroyed flags the entity as pending destruction. It remains resolvable
// until removed, and is listed under KindDestroyed from now on.
func (r *Registry) MarkDestroyed(h Handle) error {
	e, err := r.Get(h)
	if err != nil {
		return fmt.Errorf("mark destroyed: %w", err)
	}
	e.PendingDestruction = true
	return nil
}

// Handles returns the handles of all entities whose effective kind is kind,
// in creation order. The slice is a snapshot; entities created while iterating
// over it are not included.
func (r *Registry) Handles(kind Kind) []Handle {
	var out []Handle
	for _, idx := range r.order {
		s := r.slots[idx]
		if s.entity.EffectiveKind() == kind {
			out = append(out, Handle{index: idx, gen: s.gen})
		}
	}
	return out
}

// First returns the earliest-created entity of the given effective kind.
func (r *Registry) First(kind Kind) (Handle, bool) {
	for _, idx := range r.order {
		s := r.slots[idx]
		if s.entity.EffectiveKind() == kind {
			return Handle{index: idx, gen: s.gen}, true
		}
	}
	return Handle{}, false
}

// Count returns how many entities have the given effective kind.
func (r *Registry) Count(kind Kind) int {
	n := 0
	for _, idx := range r.order {
		if r.slots[idx].entity.EffectiveKind() == kind {
			n++
		}
	}
	return n
}

// Len returns the number of live entities, pending ones included.
func (r *Registry) Len() int {
	return len(r.order)
}
