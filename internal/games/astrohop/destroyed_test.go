package astrohop

import (
	"testing"

	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/world"
)

func TestDestroyedSweepFlickersOut(t *testing.T) {
	s, _ := newTestSim(t)
	h := put(s, world.KindMeteor, core.V(300, 300), core.Vec2{})
	_ = s.World.MarkDestroyed(h)

	// Frames advance at 0.2 per tick; removal comes at frame 10.
	for i := 0; i < 45; i++ {
		updateDestroyed(s)
	}
	if !s.World.Alive(h) {
		t.Fatal("removed too early")
	}
	for i := 0; i < 10; i++ {
		updateDestroyed(s)
	}
	if s.World.Alive(h) {
		t.Error("should be removed once frame reaches 10")
	}
	if s.World.Len() != 1 {
		t.Errorf("only the player should remain, have %d entities", s.World.Len())
	}
}

func TestDestroyedSweepRemovesInvisible(t *testing.T) {
	s, _ := newTestSim(t)
	h := put(s, world.KindAsteroid, core.V(-500, 300), core.Vec2{})
	_ = s.World.MarkDestroyed(h)
	live := put(s, world.KindAsteroid, core.V(-500, 500), core.Vec2{})

	updateDestroyed(s)

	if s.World.Alive(h) {
		t.Error("off-field destroyed entity should be removed at once")
	}
	if !s.World.Alive(live) {
		t.Error("live entities are not swept")
	}
}

func TestFlicker(t *testing.T) {
	tests := []struct {
		frame   int
		drawn   bool
		opacity float64
	}{
		{0, false, 0},
		{1, true, 0.9},
		{2, false, 0},
		{5, true, 0.5},
		{9, true, 0.1},
		{10, false, 0},
		{11, false, 0},
	}

	for _, tc := range tests {
		e := &world.Entity{}
		e.SetFrame(tc.frame)
		opacity, drawn := Flicker(e, 10)
		if drawn != tc.drawn || !near(opacity, tc.opacity) {
			t.Errorf("frame %d: (%f, %v), expected (%f, %v)", tc.frame, opacity, drawn, tc.opacity, tc.drawn)
		}
	}
}
