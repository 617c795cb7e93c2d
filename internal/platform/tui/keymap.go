package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/astrohop/internal/core"
)

// keyHoldDuration is how long a key counts as held after its last event.
// Terminals report no key-up, so holding is inferred from autorepeat.
const keyHoldDuration = 120 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "space", "w", "up":
		return core.ActionLaunch, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "f1", "`":
		return core.ActionDebug, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// holdable lists the actions whose held state matters to the game.
var holdable = []core.Action{core.ActionLeft, core.ActionRight}

// HoldTracker emulates key-held state from the last time each key was seen.
type HoldTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
}

// NewHoldTracker creates a tracker that treats a key as held for window
// after its most recent event. A non-positive window uses keyHoldDuration.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = keyHoldDuration
	}
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Press records a key event for a.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	h.lastSeen[a] = now
}

// Held reports whether a was seen within the hold window before now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.lastSeen[a]
	return ok && now.Sub(t) < h.window
}

// Apply marks every holdable action seen within the window as held in frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for _, a := range holdable {
		if h.Held(a, now) {
			frame.Hold(a)
		}
	}
}

// Reset forgets every key.
func (h *HoldTracker) Reset() {
	clear(h.lastSeen)
}
