package astrohop

import "testing"

func TestTransitionTable(t *testing.T) {
	legal := map[Mode]map[Event]Mode{
		ModeAppear: {
			EventTouchdown: ModeGrounded,
			EventMeteorHit: ModeDead,
		},
		ModeGrounded: {
			EventTouchdown: ModeGrounded,
			EventLaunch:    ModeNotGrounded,
			EventMeteorHit: ModeDead,
		},
		ModeNotGrounded: {
			EventTouchdown: ModeGrounded,
			EventMeteorHit: ModeDead,
			EventLastGem:   ModeWin,
		},
		ModeWin: {
			EventRoundStart: ModeAppear,
		},
		ModeDead: {
			EventConfirm: ModeAppear,
		},
	}

	for _, m := range Modes {
		for _, e := range Events {
			name := m.String() + "/" + e.String()
			t.Run(name, func(t *testing.T) {
				want, ok := legal[m][e]
				got, gotOK := Next(m, e)
				if gotOK != ok {
					t.Fatalf("Next(%s, %s) legal = %v, expected %v", m, e, gotOK, ok)
				}
				if !ok {
					want = m
				}
				if got != want {
					t.Errorf("Next(%s, %s) = %s, expected %s", m, e, got, want)
				}

				s, _ := newTestSim(t)
				s.Round.Mode = m
				if s.Fire(e) != ok {
					t.Errorf("Fire(%s) from %s returned %v", e, m, !ok)
				}
				if s.Round.Mode != want {
					t.Errorf("mode after Fire = %s, expected %s", s.Round.Mode, want)
				}
			})
		}
	}
}

func TestModeAndEventNames(t *testing.T) {
	if Mode(99).String() != "unknown" || Event(99).String() != "unknown" {
		t.Error("out-of-range values should print as unknown")
	}
	if ModeNotGrounded.String() != "not_grounded" {
		t.Errorf("unexpected name %q", ModeNotGrounded.String())
	}
}
