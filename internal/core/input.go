package core

// Action is a game intent, decoupled from the key that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // rotate counter-clockwise
	ActionRight          // rotate clockwise
	ActionLaunch         // leave the current asteroid
	ActionConfirm        // continue after death
	ActionPause
	ActionDebug // debug overlay
	ActionQuit
)

var actionNames = [...]string{"None", "Left", "Right", "Launch", "Confirm", "Pause", "Debug", "Quit"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// actionSet is a bitset indexed by Action.
type actionSet uint16

func (s actionSet) has(a Action) bool { return a < 16 && s&(1<<a) != 0 }

func (s *actionSet) add(a Action) {
	if a < 16 {
		*s |= 1 << a
	}
}

// InputFrame is the player's input for one simulation tick.
//
// Pressed actions are edge-triggered: present only on the tick the key event
// arrived. Held actions are level-triggered: present for as long as the
// platform considers the key down. A press counts as held too.
//
// The zero value is an empty frame.
type InputFrame struct {
	pressed actionSet
	held    actionSet
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a press of a on this tick.
func (f *InputFrame) Set(a Action) {
	f.pressed.add(a)
	f.held.add(a)
}

// Hold marks a as held without registering a new press.
func (f *InputFrame) Hold(a Action) {
	f.held.add(a)
}

// Has reports whether a was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return f.pressed.has(a)
}

// Down reports whether a is held or was pressed this tick.
func (f InputFrame) Down(a Action) bool {
	return f.held.has(a) || f.pressed.has(a)
}

// Clear drops every press and hold.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}

// Clone returns a copy of f.
func (f InputFrame) Clone() InputFrame {
	return f
}
