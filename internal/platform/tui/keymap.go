package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// moveHoldTicks is how long a single movement press counts as held.
// Terminal auto-repeat refreshes it while the key stays down.
const moveHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	hold      core.Action
	holdTicks int
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case " ", "space":
		return core.ActionBoost, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	case "m":
		return core.ActionMute, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Movement keys start a hold instead of a discrete press.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone, core.ActionQuit:
	case core.ActionLeft, core.ActionRight:
		// The opposite direction replaces the current hold.
		km.hold = action
		km.holdTicks = moveHoldTicks
	default:
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left-button press as a click.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.SetClick(msg.X, msg.Y)
	}
}

// ApplyHold marks the held movement on frame and counts the hold down.
// Called once per tick before the frame is stepped.
func (km *KeyMapper) ApplyHold(frame *core.InputFrame) {
	if km.holdTicks <= 0 {
		return
	}
	frame.Hold(km.hold)
	km.holdTicks--
}

// Release drops any held movement.
func (km *KeyMapper) Release() {
	km.hold = core.ActionNone
	km.holdTicks = 0
}
