package core

import "slices"

// Action is a player intent. The frontend maps keys to actions; games never
// see raw key events.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionDown
	ActionRotate
	ActionHardDrop
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
)

// String returns the action name, or "Unknown".
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionSlot1:
		return "Slot1"
	case ActionSlot2:
		return "Slot2"
	case ActionSlot3:
		return "Slot3"
	case ActionSlot4:
		return "Slot4"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected between two simulation ticks.
// Actions keep the order in which they were pressed, so a fast burst of key
// presses inside one tick still reaches the game one command at a time.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set queues a.
func (f *InputFrame) Set(a Action) {
	f.Actions = append(f.Actions, a)
}

// Has reports whether a was queued this frame.
func (f InputFrame) Has(a Action) bool {
	return slices.Contains(f.Actions, a)
}

// Clear empties the frame, keeping its backing array.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone returns a frame that does not share storage with f.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{Actions: slices.Clone(f.Actions)}
}
