package core

// Kind identifies the category of an input event.
// States register handlers per kind; events of unhandled kinds are ignored.
type Kind int

const (
	KindNone        Kind = iota
	KindQuit             // Window close request or terminal quit key
	KindKeyPress         // Keyboard key pressed
	KindMouseDown        // Mouse button pressed
	KindMouseUp          // Mouse button released
	KindMouseMotion      // Mouse moved
	KindMouseWheel       // Mouse wheel scrolled
	KindResize           // Terminal window resized
)

// String returns a human-readable name for the event kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindQuit:
		return "Quit"
	case KindKeyPress:
		return "KeyPress"
	case KindMouseDown:
		return "MouseDown"
	case KindMouseUp:
		return "MouseUp"
	case KindMouseMotion:
		return "MouseMotion"
	case KindMouseWheel:
		return "MouseWheel"
	case KindResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// MouseButton identifies which mouse button an event refers to.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// String returns a human-readable name for the mouse button.
func (b MouseButton) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Event is a single input event delivered to the current state.
// Only the fields relevant to the kind are populated.
type Event struct {
	Kind Kind

	// Key holds the pressed key name for KindKeyPress ("a", "up", "enter", " ").
	Key string

	// X, Y hold the cell position for mouse events.
	X, Y int

	// Button holds the button for KindMouseDown and KindMouseUp.
	Button MouseButton

	// Delta holds the scroll direction for KindMouseWheel: negative up, positive down.
	Delta int

	// Width, Height hold the new terminal size for KindResize.
	Width, Height int
}

// KeyEvent builds a key press event.
func KeyEvent(key string) Event {
	return Event{Kind: KindKeyPress, Key: key}
}

// QuitEvent builds a quit request event.
func QuitEvent() Event {
	return Event{Kind: KindQuit}
}
