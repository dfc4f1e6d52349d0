package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move cursor up
	ActionDown              // S, Down arrow - move cursor down
	ActionLeft              // A, Left arrow - move cursor left
	ActionRight             // D, Right arrow - move cursor right
	ActionConfirm           // Space, Enter - grab or release at the cursor
	ActionBack              // B, Escape - abandon drag / back to menu
	ActionRestart           // R - new board after completion
	ActionQuit              // Q, Ctrl+C
	ActionPause             // P
	ActionGridGrow          // + - add a row and a column
	ActionGridShrink        // - - remove a row and a column
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionGridGrow:
		return "GridGrow"
	case ActionGridShrink:
		return "GridShrink"
	default:
		return "Unknown"
	}
}

// PointerKind is the type of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerEvent is a mouse event in screen cells.
// X and Y are meaningless for PointerLeave.
type PointerEvent struct {
	Kind PointerKind
	X    int
	Y    int
}

// InputFrame collects the input for one simulation tick.
type InputFrame struct {
	// Actions holds the actions triggered this frame.
	Actions map[Action]bool

	// Pointer holds mouse events in arrival order. Unlike actions, order
	// matters: a press must be seen before the release that ends it.
	Pointer []PointerEvent
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

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Push appends a pointer event.
func (f *InputFrame) Push(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointer) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Pointer = f.Pointer[:0]
}
