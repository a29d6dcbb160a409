package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys into actions; the simulation only sees actions.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow - held
	ActionMoveRight        // D, Right arrow - held
	ActionFire             // Space - edge triggered, one shot per press
	ActionPause            // P, Escape
	ActionRestart          // R after game over
	ActionQuit             // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions active during one simulation tick.
// Movement actions mean "held this frame"; ActionFire means "pressed this frame".
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// MoveLeft reports whether move-left is held.
func (f InputFrame) MoveLeft() bool { return f.Has(ActionMoveLeft) }

// MoveRight reports whether move-right is held.
func (f InputFrame) MoveRight() bool { return f.Has(ActionMoveRight) }

// FirePressed reports whether fire was pressed during this frame.
func (f InputFrame) FirePressed() bool { return f.Has(ActionFire) }

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
