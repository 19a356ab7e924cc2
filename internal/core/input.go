package core

// Action is a semantic command decoded from a key press.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Ctrl+A, A, Left - walk left / boss cursor left
	ActionRight          // Ctrl+D, D, Right - walk right / boss cursor right
	ActionUp             // Up - boss cursor up, also jumps in a level
	ActionDown           // Down - boss cursor down
	ActionJump           // Ctrl+W, W, Space
	ActionPause          // Ctrl+S, P
	ActionResume         // Ctrl+Z, C
	ActionReload         // Ctrl+P - replay the current level
	ActionReset          // Ctrl+B - back to level 1 with full lives
	ActionRun            // Ctrl+R, R - start the previewed level
	ActionConfirm        // Enter - collect the mark under the boss cursor
	ActionQuit           // Q - forfeit the boss encounter
	ActionBack           // Esc - leave the game (SSH sessions)
	ActionAnyKey         // Set alongside every key press
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionJump:    "Jump",
	ActionPause:   "Pause",
	ActionResume:  "Resume",
	ActionReload:  "Reload",
	ActionReset:   "Reset",
	ActionRun:     "Run",
	ActionConfirm: "Confirm",
	ActionQuit:    "Quit",
	ActionBack:    "Back",
	ActionAnyKey:  "AnyKey",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions received since the previous tick, in arrival order.
// Order matters: a pause followed by a resume in one frame leaves the game running.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	return InputFrame{Actions: append([]Action(nil), actions...)}
}

// Set appends an action to the frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has reports whether the action was received this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Any reports whether any key was pressed this frame.
func (f InputFrame) Any() bool {
	return len(f.Actions) > 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
