// Package nav tracks presenter navigation as an explicit state machine.
//
// The Navigator records intent only. Scroll offsets may run past the end of
// a slide; the frame composer clamps them against the current layout on the
// next render and writes the result back with ClampScroll.
package nav

import "strconv"

// Mode is the active submode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeIndex
	ModeHelp
	ModeGoto
)

func (m Mode) String() string {
	switch m {
	case ModeIndex:
		return "index"
	case ModeHelp:
		return "help"
	case ModeGoto:
		return "goto"
	default:
		return "normal"
	}
}

// Notes panel bounds.
const (
	MinNotesHeight     = 2
	MaxNotesHeight     = 20
	DefaultNotesHeight = 6
	notesStep          = 2
)

// DefaultScrollStep is the number of lines moved per scroll key.
const DefaultScrollStep = 3

// maxGotoDigits bounds the goto buffer so it always parses as an int.
const maxGotoDigits = 6

// Outcome tells the caller what to do after a key was applied.
type Outcome int

const (
	// Ignored means the key had no meaning in the current mode.
	Ignored Outcome = iota
	// Redraw means the frame should be rendered again.
	Redraw
	// Quit means the session should end.
	Quit
)

// State is a snapshot of the presenter's navigation state.
type State struct {
	Current      int
	Scroll       int
	NotesVisible bool
	NotesHeight  int
	Mode         Mode
	Selection    int
	GotoBuffer   string
}

// Options configures a new Navigator.
type Options struct {
	NotesHeight  int
	NotesVisible bool
	ScrollStep   int
}

// Navigator owns State and is the only thing that mutates it.
type Navigator struct {
	state      State
	count      int
	scrollStep int
}

// New returns a Navigator positioned on the first of count slides.
// count must be at least one; an empty deck is rejected by the loader.
func New(count int, opts Options) *Navigator {
	if opts.NotesHeight == 0 {
		opts.NotesHeight = DefaultNotesHeight
	}
	if opts.ScrollStep <= 0 {
		opts.ScrollStep = DefaultScrollStep
	}
	return &Navigator{
		state: State{
			NotesVisible: opts.NotesVisible,
			NotesHeight:  clampNotes(opts.NotesHeight),
		},
		count:      max(1, count),
		scrollStep: opts.ScrollStep,
	}
}

// State returns a copy of the current state.
func (n *Navigator) State() State { return n.state }

// Count returns the number of slides being navigated.
func (n *Navigator) Count() int { return n.count }

func (n *Navigator) last() int { return n.count - 1 }

// Apply performs the transition for ev in the current mode.
func (n *Navigator) Apply(ev Event) Outcome {
	switch n.state.Mode {
	case ModeHelp:
		n.state.Mode = ModeNormal
		return Redraw
	case ModeIndex:
		return n.applyIndex(ev)
	case ModeGoto:
		return n.applyGoto(ev)
	default:
		return n.applyNormal(ev)
	}
}

func (n *Navigator) applyNormal(ev Event) Outcome {
	switch ev.Key {
	case KeyNext:
		n.setCurrent(min(n.state.Current+1, n.last()))
	case KeyPrev:
		n.setCurrent(max(n.state.Current-1, 0))
	case KeyFirst:
		n.setCurrent(0)
	case KeyLast:
		n.setCurrent(n.last())
	case KeyGoto:
		n.state.Mode = ModeGoto
		n.state.GotoBuffer = ""
	case KeyScrollDown:
		n.ScrollDown(n.scrollStep)
	case KeyScrollUp:
		n.ScrollUp(n.scrollStep)
	case KeyToggleNotes:
		n.state.NotesVisible = !n.state.NotesVisible
	case KeyGrowNotes:
		if !n.state.NotesVisible {
			return Ignored
		}
		n.state.NotesHeight = clampNotes(n.state.NotesHeight + notesStep)
	case KeyShrinkNotes:
		if !n.state.NotesVisible {
			return Ignored
		}
		n.state.NotesHeight = clampNotes(n.state.NotesHeight - notesStep)
	case KeyEnterIndex:
		n.state.Mode = ModeIndex
		n.state.Selection = n.state.Current
	case KeyHelp:
		n.state.Mode = ModeHelp
	case KeyRefresh:
	case KeyQuit:
		return Quit
	default:
		return Ignored
	}
	return Redraw
}

func (n *Navigator) applyIndex(ev Event) Outcome {
	switch ev.Key {
	case KeyUp:
		n.state.Selection = max(0, n.state.Selection-1)
	case KeyDown:
		n.state.Selection = min(n.last(), n.state.Selection+1)
	case KeyConfirm, KeyEnter:
		n.GotoSlide(n.state.Selection + 1)
		n.state.Mode = ModeNormal
	case KeyCancel, KeyEnterIndex:
		n.state.Mode = ModeNormal
	case KeyQuit:
		return Quit
	default:
		return Ignored
	}
	return Redraw
}

func (n *Navigator) applyGoto(ev Event) Outcome {
	switch ev.Key {
	case KeyDigit:
		if ev.Digit < '0' || ev.Digit > '9' || len(n.state.GotoBuffer) >= maxGotoDigits {
			return Ignored
		}
		n.state.GotoBuffer += string(ev.Digit)
	case KeyBackspace:
		if b := n.state.GotoBuffer; b != "" {
			n.state.GotoBuffer = b[:len(b)-1]
		}
	case KeyEnter, KeyConfirm:
		if num, err := strconv.Atoi(n.state.GotoBuffer); err == nil {
			n.GotoSlide(num)
		}
		n.closeGoto()
	case KeyCancel:
		n.closeGoto()
	default:
		return Ignored
	}
	return Redraw
}

func (n *Navigator) closeGoto() {
	n.state.Mode = ModeNormal
	n.state.GotoBuffer = ""
}

// GotoSlide jumps to the 1-based slide number num. Numbers outside
// [1, count] are ignored. It reports whether the jump happened.
func (n *Navigator) GotoSlide(num int) bool {
	if num < 1 || num > n.count {
		return false
	}
	n.setCurrent(num - 1)
	return true
}

// ScrollDown moves the scroll offset down by k lines without an upper bound.
func (n *Navigator) ScrollDown(k int) {
	n.state.Scroll += k
}

// ScrollUp moves the scroll offset up by k lines, stopping at zero.
func (n *Navigator) ScrollUp(k int) {
	n.state.Scroll = max(0, n.state.Scroll-k)
}

// ClampScroll stores the offset the renderer actually used.
func (n *Navigator) ClampScroll(offset int) {
	n.state.Scroll = max(0, offset)
}

// Resize replaces the slide count after a reload. The current slide and
// selection are pulled back into range and the scroll offset is reset.
func (n *Navigator) Resize(count int) {
	n.count = max(1, count)
	n.state.Current = min(n.state.Current, n.last())
	n.state.Selection = min(n.state.Selection, n.last())
	n.state.Scroll = 0
}

func (n *Navigator) setCurrent(i int) {
	n.state.Current = i
	n.state.Scroll = 0
}

func clampNotes(h int) int {
	return max(MinNotesHeight, min(h, MaxNotesHeight))
}
