package astrohop

import (
	"math"
	"testing"

	"github.com/vovakirdan/astrohop/internal/audio"
	"github.com/vovakirdan/astrohop/internal/core"
	"github.com/vovakirdan/astrohop/internal/world"
)

func TestAppearPlacesPlayerOnFirstAsteroid(t *testing.T) {
	s, _ := newTestSim(t)
	first := put(s, world.KindAsteroid, core.V(440, 360), core.V(2, -2))
	put(s, world.KindAsteroid, core.V(1000, 100), core.V(-2, 0))

	updatePlayer(s)

	if s.Round.Mode != ModeGrounded {
		t.Fatalf("mode = %s, expected grounded", s.Round.Mode)
	}
	if s.Attached != first {
		t.Errorf("attached = %s, expected first asteroid %s", s.Attached, first)
	}

	p := s.player()
	// Player was to the right of the asteroid, so it lands on the orbit at angle 0.
	if !nearVec(p.OldPos, core.V(505, 360)) {
		t.Errorf("player placed at %+v, expected (505, 360)", p.OldPos)
	}
	if p.Vel != core.V(2, -2) {
		t.Errorf("player velocity = %+v, expected asteroid velocity", p.Vel)
	}
	if !near(p.Rotation, math.Pi/2) {
		t.Errorf("rotation = %f, expected outward pi/2", p.Rotation)
	}
}

func TestAppearWithoutAsteroidsRecovers(t *testing.T) {
	s, _ := newTestSim(t)

	updatePlayer(s)

	if got := s.World.Count(world.KindAsteroid); got != 1 {
		t.Fatalf("asteroids = %d, expected a recovery spawn", got)
	}
	if s.Round.Mode != ModeGrounded {
		t.Errorf("mode = %s, expected grounded", s.Round.Mode)
	}
	if !s.World.Alive(s.Attached) {
		t.Error("attached handle should resolve")
	}
}

func TestGroundedOrbit(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		angle  float64
		sprite string
	}{
		{"idle", core.ActionNone, 0, SpriteFly},
		{"right", core.ActionRight, 0.08, SpriteRight},
		{"left", core.ActionLeft, -0.08, SpriteLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSim(t)
			s.Round.Mode = ModeGrounded
			s.Attached = put(s, world.KindAsteroid, core.V(500, 300), core.V(2, 0))
			p := s.player()
			p.Pos = core.V(565, 300)
			if tc.action != core.ActionNone {
				s.Input.Hold(tc.action)
			}

			updatePlayer(s)

			want := core.Polar(core.V(500, 300), 65, tc.angle)
			if !nearVec(p.OldPos, want) {
				t.Errorf("position = %+v, expected %+v", p.OldPos, want)
			}
			if !nearVec(p.Pos, want.Add(core.V(2, 0))) {
				t.Errorf("player should ride the asteroid, at %+v", p.Pos)
			}
			if !near(p.Rotation, tc.angle+math.Pi/2) {
				t.Errorf("rotation = %f, expected %f", p.Rotation, tc.angle+math.Pi/2)
			}
			if p.Sprite != tc.sprite {
				t.Errorf("sprite = %q, expected %q", p.Sprite, tc.sprite)
			}
			if s.Round.Mode != ModeGrounded {
				t.Errorf("mode = %s", s.Round.Mode)
			}
		})
	}
}

func TestGroundedWithStaleAnchorKeepsVelocity(t *testing.T) {
	s, _ := newTestSim(t)
	s.Round.Mode = ModeGrounded
	h := put(s, world.KindAsteroid, core.V(500, 300), core.V(2, 0))
	s.Attached = h
	_ = s.World.Remove(h)
	p := s.player()
	p.Vel = core.V(1, 1)
	s.Input.Hold(core.ActionRight)

	updatePlayer(s)

	if p.Pos != core.V(641, 361) {
		t.Errorf("player at %+v, expected to drift to (641, 361)", p.Pos)
	}
	if s.Round.Mode != ModeGrounded {
		t.Errorf("mode = %s, expected grounded", s.Round.Mode)
	}
}

func TestNotGroundedFlight(t *testing.T) {
	tests := []struct {
		name     string
		held     []core.Action
		rotation float64
	}{
		{"straight", nil, 0},
		{"right", []core.Action{core.ActionRight}, 0.08},
		{"left", []core.Action{core.ActionLeft}, -0.08},
		{"both cancel", []core.Action{core.ActionLeft, core.ActionRight}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSim(t)
			s.Round.Mode = ModeNotGrounded
			for _, a := range tc.held {
				s.Input.Hold(a)
			}

			updatePlayer(s)

			p := s.player()
			if !near(p.Rotation, tc.rotation) {
				t.Errorf("rotation = %f, expected %f", p.Rotation, tc.rotation)
			}
			wantVel := core.V(math.Sin(tc.rotation)*6, -math.Cos(tc.rotation)*6)
			if !nearVec(p.Vel, wantVel) {
				t.Errorf("velocity = %+v, expected %+v", p.Vel, wantVel)
			}
			if !nearVec(p.Pos, core.V(640, 360).Add(wantVel)) {
				t.Errorf("position = %+v", p.Pos)
			}
		})
	}
}

func TestDeadGlidesAndFacesVelocity(t *testing.T) {
	s, _ := newTestSim(t)
	s.Round.Mode = ModeDead
	p := s.player()
	p.Vel = core.V(3, 4)
	p.OldPos = core.V(-60, 360)
	p.Pos = core.V(-57, 364)

	updatePlayer(s)

	if p.Vel != core.V(3, 4) {
		t.Errorf("velocity changed to %+v", p.Vel)
	}
	if p.Sprite != SpriteDead {
		t.Errorf("sprite = %q, expected %q", p.Sprite, SpriteDead)
	}
	if !near(p.Rotation, math.Atan2(3, -4)) {
		t.Errorf("rotation = %f, expected atan2(vx, -vy)", p.Rotation)
	}
	// The corpse wraps like everything else.
	if p.Pos.X != 1333 {
		t.Errorf("corpse X = %f, expected wrapped to 1333", p.Pos.X)
	}
	if s.Round.Mode != ModeDead {
		t.Errorf("mode = %s without confirm", s.Round.Mode)
	}
}

func TestConfirmRevives(t *testing.T) {
	s, rec := newTestSim(t)
	s.Round = RoundState{RemainingGems: 4, Rounds: 3, Mode: ModeDead}
	s.Collected = 9

	var old []world.Handle
	for _, kind := range []world.Kind{
		world.KindAsteroid, world.KindAsteroid, world.KindMeteor, world.KindMeteor, world.KindMeteor,
		world.KindGem, world.KindAsteroidPiece, world.KindAsteroidParticle,
	} {
		old = append(old, put(s, kind, core.V(100, 100), core.Vec2{}))
	}
	trail := put(s, world.KindPlayerParticle, core.V(200, 200), core.Vec2{})
	s.Input.Set(core.ActionConfirm)

	updatePlayer(s)

	if s.Round != (RoundState{RemainingGems: 3, Rounds: 1, Mode: ModeAppear}) {
		t.Errorf("round state = %+v, expected {3 1 appear}", s.Round)
	}
	for _, h := range old {
		if !mustGet(t, s, h).PendingDestruction {
			t.Errorf("entity %s should be soft-destroyed", h)
		}
	}
	for _, kind := range []world.Kind{world.KindGem, world.KindAsteroidPiece, world.KindAsteroidParticle} {
		if n := s.World.Count(kind); n != 0 {
			t.Errorf("%s count = %d, expected 0", kind, n)
		}
	}
	// Only the fresh batch remains.
	if n := s.World.Count(world.KindAsteroid); n != 3 {
		t.Errorf("asteroids = %d, expected fresh batch of 3", n)
	}
	if n := s.World.Count(world.KindMeteor); n != 1 {
		t.Errorf("meteors = %d, expected fresh batch of 1", n)
	}
	if mustGet(t, s, trail).PendingDestruction {
		t.Error("player trail is not cleared on revival")
	}
	if !rec.Playing(audio.TrackMusic) {
		t.Error("music should restart on revival")
	}
	if s.Collected != 0 {
		t.Errorf("Collected = %d, expected reset to 0", s.Collected)
	}
	if s.World.Count(world.KindPlayer) != 1 {
		t.Error("exactly one player must remain")
	}
}

func TestAppearIgnoresWrapFromBeforeTheJump(t *testing.T) {
	s, _ := newTestSim(t)
	w := s.Bounds.W
	a := put(s, world.KindAsteroid, core.V(640, 360), core.Vec2{})
	p := s.player()
	p.Pos = core.V(w+61, 300)
	p.OldPos = core.V(w+55, 300)

	for frame := range 3 {
		updatePlayer(s)

		if s.Round.Mode != ModeGrounded {
			t.Fatalf("frame %d: mode = %s, expected grounded", frame, s.Round.Mode)
		}
		if d := p.Pos.Sub(mustGet(t, s, a).Pos).Len(); !near(d, s.Cfg.Player.OrbitRadius) {
			t.Errorf("frame %d: player %+v is %.1f from its asteroid", frame, p.Pos, d)
		}
		if !s.shielded(p) {
			t.Errorf("frame %d: grounded player should be shielded", frame)
		}
	}
}

func TestGroundedPlayerCrossesEdgeWithAsteroid(t *testing.T) {
	for _, tc := range []struct {
		name          string
		asteroid, vel core.Vec2
		side          float64
	}{
		{"right edge", core.V(1300, 360), core.V(2, 0), 0},
		{"left edge", core.V(-20, 360), core.V(-2, 0), math.Pi},
		{"bottom edge", core.V(640, 740), core.V(0, 3), math.Pi / 2},
		{"player on the inner side", core.V(1310, 360), core.V(2, 0), math.Pi},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSim(t)
			s.Round.Mode = ModeGrounded
			s.Attached = put(s, world.KindAsteroid, tc.asteroid, tc.vel)
			p := s.player()
			p.Pos = core.Polar(tc.asteroid, s.Cfg.Player.OrbitRadius, tc.side)
			p.OldPos = p.Pos

			wrapped := false
			for frame := range 60 {
				updateAsteroids(s)
				if !s.shielded(p) {
					t.Fatalf("frame %d: player %+v unshielded after asteroid pass, asteroid %+v",
						frame, p.Pos, s.attached().Pos)
				}
				updatePlayer(s)
				if !s.shielded(p) {
					t.Fatalf("frame %d: player %+v unshielded after player pass, asteroid %+v",
						frame, p.Pos, s.attached().Pos)
				}
				// OldPos is where the player was placed this frame.
				a := s.attached()
				if d := Offset(p.OldPos, a.Pos, s.Bounds, s.Cfg.World.WrapMargin).Len(); !near(d, s.Cfg.Player.OrbitRadius) {
					t.Errorf("frame %d: orbit radius = %.2f", frame, d)
				}
				if a.Pos.Sub(tc.asteroid).Len() > 500 {
					wrapped = true
				}
			}
			if s.Round.Mode != ModeGrounded {
				t.Errorf("mode = %s, expected grounded", s.Round.Mode)
			}
			if !wrapped {
				t.Error("asteroid never crossed the edge")
			}
		})
	}
}
