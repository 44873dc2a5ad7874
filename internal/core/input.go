package core

import "time"

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionRestart        // R - restart after game over
	ActionPause          // P - pause/unpause (driver level)
	ActionQuit           // Q, Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a position in arena pixels.
type Point struct {
	X, Y int
}

// InputFrame collects everything that happened during one frame: the time
// since the previous frame, pointer presses in arena coordinates and actions.
type InputFrame struct {
	Elapsed time.Duration
	Presses []Point
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
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

// Press records a pointer press at arena coordinates.
func (f *InputFrame) Press(x, y int) {
	f.Presses = append(f.Presses, Point{X: x, Y: y})
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Presses = f.Presses[:0]
	f.Elapsed = 0
}
