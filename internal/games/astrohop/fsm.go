package astrohop

// Mode is the player's discrete state.
type Mode int

const (
	ModeAppear      Mode = iota // Placed on the first asteroid at round start
	ModeGrounded                // Orbiting the attached asteroid
	ModeNotGrounded             // Flying in a straight line
	ModeWin                     // Last gem collected, next round pending
	ModeDead                    // Hit by a meteor, waiting for Confirm
)

// Modes lists every mode in declaration order.
var Modes = []Mode{ModeAppear, ModeGrounded, ModeNotGrounded, ModeWin, ModeDead}

func (m Mode) String() string {
	switch m {
	case ModeAppear:
		return "appear"
	case ModeGrounded:
		return "grounded"
	case ModeNotGrounded:
		return "not_grounded"
	case ModeWin:
		return "win"
	case ModeDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Event drives a mode transition.
type Event int

const (
	EventTouchdown  Event = iota // Player overlaps an asteroid
	EventLaunch                  // Player jumps off its asteroid
	EventMeteorHit               // Unshielded player overlaps a meteor
	EventLastGem                 // Round quota reached zero
	EventConfirm                 // Player chose to continue after death
	EventRoundStart              // Next round has been spawned
)

// Events lists every event in declaration order.
var Events = []Event{EventTouchdown, EventLaunch, EventMeteorHit, EventLastGem, EventConfirm, EventRoundStart}

func (e Event) String() string {
	switch e {
	case EventTouchdown:
		return "touchdown"
	case EventLaunch:
		return "launch"
	case EventMeteorHit:
		return "meteor_hit"
	case EventLastGem:
		return "last_gem"
	case EventConfirm:
		return "confirm"
	case EventRoundStart:
		return "round_start"
	default:
		return "unknown"
	}
}

type transition struct {
	from  Mode
	event Event
}

// transitions is the complete table. Pairs not listed are rejected.
// Win and Dead ignore Touchdown: a corpse gliding over an asteroid stays dead,
// and a finished round is not undone by landing in the same frame.
var transitions = map[transition]Mode{
	{ModeAppear, EventTouchdown}:      ModeGrounded,
	{ModeGrounded, EventTouchdown}:    ModeGrounded,
	{ModeNotGrounded, EventTouchdown}: ModeGrounded,

	{ModeGrounded, EventLaunch}: ModeNotGrounded,

	{ModeAppear, EventMeteorHit}:      ModeDead,
	{ModeGrounded, EventMeteorHit}:    ModeDead,
	{ModeNotGrounded, EventMeteorHit}: ModeDead,

	{ModeNotGrounded, EventLastGem}: ModeWin,

	{ModeDead, EventConfirm}:   ModeAppear,
	{ModeWin, EventRoundStart}: ModeAppear,
}

// Next returns the mode reached from m on e, and whether the pair is legal.
func Next(m Mode, e Event) (Mode, bool) {
	to, ok := transitions[transition{m, e}]
	if !ok {
		return m, false
	}
	return to, true
}
