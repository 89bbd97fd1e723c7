package nav

// Key is a decoded, symbolic key event.
type Key int

const (
	KeyNone Key = iota
	KeyNext
	KeyPrev
	KeyFirst
	KeyLast
	KeyGoto
	KeyScrollUp
	KeyScrollDown
	KeyToggleNotes
	KeyGrowNotes
	KeyShrinkNotes
	KeyEnterIndex
	KeyUp
	KeyDown
	KeyConfirm
	KeyCancel
	KeyHelp
	KeyRefresh
	KeyQuit
	KeyDigit
	KeyBackspace
	KeyEnter
)

var keyNames = map[Key]string{
	KeyNone:        "none",
	KeyNext:        "next",
	KeyPrev:        "prev",
	KeyFirst:       "first",
	KeyLast:        "last",
	KeyGoto:        "goto",
	KeyScrollUp:    "scroll_up",
	KeyScrollDown:  "scroll_down",
	KeyToggleNotes: "toggle_notes",
	KeyGrowNotes:   "grow_notes",
	KeyShrinkNotes: "shrink_notes",
	KeyEnterIndex:  "index",
	KeyUp:          "up",
	KeyDown:        "down",
	KeyConfirm:     "confirm",
	KeyCancel:      "cancel",
	KeyHelp:        "help",
	KeyRefresh:     "refresh",
	KeyQuit:        "quit",
	KeyDigit:       "digit",
	KeyBackspace:   "backspace",
	KeyEnter:       "enter",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one key press. Digit is only meaningful for KeyDigit.
type Event struct {
	Key   Key
	Digit rune
}

// Press returns an Event for a key without a payload.
func Press(k Key) Event { return Event{Key: k} }

// Digit returns a KeyDigit event for r.
func Digit(r rune) Event { return Event{Key: KeyDigit, Digit: r} }
