package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"termdeck/internal/config"
	"termdeck/internal/frame"
	"termdeck/internal/nav"
)

// KeyMap holds the bindings for every mode.
type KeyMap struct {
	Next        key.Binding
	Prev        key.Binding
	First       key.Binding
	Last        key.Binding
	Goto        key.Binding
	ScrollDown  key.Binding
	ScrollUp    key.Binding
	ToggleNotes key.Binding
	GrowNotes   key.Binding
	ShrinkNotes key.Binding
	Index       key.Binding
	Help        key.Binding
	Refresh     key.Binding
	Quit        key.Binding

	// Index browsing.
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding

	// Goto prompt.
	Backspace key.Binding
	Enter     key.Binding
	Abort     key.Binding

	// ForceQuit works in every mode except help and the goto prompt.
	ForceQuit key.Binding
}

var keyLabels = map[string]string{
	" ":         "SPACE",
	"enter":     "ENTER",
	"backspace": "BACKSPACE",
	"esc":       "ESC",
	"right":     "→",
	"left":      "←",
	"up":        "↑",
	"down":      "↓",
}

func label(keys []string) string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if l, ok := keyLabels[k]; ok {
			out = append(out, l)
			continue
		}
		out = append(out, k)
	}
	return strings.Join(out, ", ")
}

// NewKeyMap builds bindings from action → keys. Missing actions fall back to
// config.DefaultKeys.
func NewKeyMap(bindings map[string][]string) KeyMap {
	defaults := config.DefaultKeys()
	bind := func(action, desc string) key.Binding {
		keys := bindings[action]
		if len(keys) == 0 {
			keys = defaults[action]
		}
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label(keys), desc))
	}

	return KeyMap{
		Next:        bind("next", "Next slide"),
		Prev:        bind("prev", "Previous slide"),
		First:       bind("first", "First slide"),
		Last:        bind("last", "Last slide"),
		Goto:        bind("goto", "Go to slide number"),
		ScrollDown:  bind("scroll_down", "Scroll down"),
		ScrollUp:    bind("scroll_up", "Scroll up"),
		ToggleNotes: bind("toggle_notes", "Toggle notes panel on/off"),
		GrowNotes:   bind("grow_notes", "Expand notes panel"),
		ShrinkNotes: bind("shrink_notes", "Shrink notes panel"),
		Index:       bind("index", "Show slide index"),
		Help:        bind("help", "Show this help"),
		Refresh:     bind("refresh", "Refresh/redraw screen"),
		Quit:        bind("quit", "Quit slideshow"),

		Up:      bind("up", "Move selection up"),
		Down:    bind("down", "Move selection down"),
		Confirm: bind("confirm", "Open selected slide"),
		Cancel:  bind("cancel", "Close the index"),

		Backspace: bind("backspace", "Delete digit"),
		Enter:     bind("enter", "Jump to slide"),
		Abort:     key.NewBinding(key.WithKeys("esc")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeys())
}

// Event decodes msg into a navigator event for the given mode.
func (k KeyMap) Event(mode nav.Mode, msg tea.KeyMsg) nav.Event {
	switch mode {
	case nav.ModeHelp:
		// Any key closes help.
		return nav.Press(nav.KeyNone)

	case nav.ModeGoto:
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && unicode.IsDigit(msg.Runes[0]) {
			return nav.Digit(msg.Runes[0])
		}
		switch {
		case key.Matches(msg, k.Abort):
			return nav.Press(nav.KeyCancel)
		case key.Matches(msg, k.Backspace):
			return nav.Press(nav.KeyBackspace)
		case key.Matches(msg, k.Enter):
			return nav.Press(nav.KeyEnter)
		}

	case nav.ModeIndex:
		switch {
		case key.Matches(msg, k.ForceQuit):
			return nav.Press(nav.KeyQuit)
		case key.Matches(msg, k.Up):
			return nav.Press(nav.KeyUp)
		case key.Matches(msg, k.Down):
			return nav.Press(nav.KeyDown)
		case key.Matches(msg, k.Confirm):
			return nav.Press(nav.KeyConfirm)
		case key.Matches(msg, k.Cancel):
			return nav.Press(nav.KeyCancel)
		}

	default:
		switch {
		case key.Matches(msg, k.ForceQuit):
			return nav.Press(nav.KeyQuit)
		case key.Matches(msg, k.Next):
			return nav.Press(nav.KeyNext)
		case key.Matches(msg, k.Prev):
			return nav.Press(nav.KeyPrev)
		case key.Matches(msg, k.First):
			return nav.Press(nav.KeyFirst)
		case key.Matches(msg, k.Last):
			return nav.Press(nav.KeyLast)
		case key.Matches(msg, k.Goto):
			return nav.Press(nav.KeyGoto)
		case key.Matches(msg, k.ScrollDown):
			return nav.Press(nav.KeyScrollDown)
		case key.Matches(msg, k.ScrollUp):
			return nav.Press(nav.KeyScrollUp)
		case key.Matches(msg, k.ToggleNotes):
			return nav.Press(nav.KeyToggleNotes)
		case key.Matches(msg, k.GrowNotes):
			return nav.Press(nav.KeyGrowNotes)
		case key.Matches(msg, k.ShrinkNotes):
			return nav.Press(nav.KeyShrinkNotes)
		case key.Matches(msg, k.Index):
			return nav.Press(nav.KeyEnterIndex)
		case key.Matches(msg, k.Help):
			return nav.Press(nav.KeyHelp)
		case key.Matches(msg, k.Refresh):
			return nav.Press(nav.KeyRefresh)
		case key.Matches(msg, k.Quit):
			return nav.Press(nav.KeyQuit)
		}
	}
	return nav.Press(nav.KeyNone)
}

// HelpSections describes the slide-mode bindings for the help screen.
func (k KeyMap) HelpSections() []frame.HelpSection {
	entries := func(bindings ...key.Binding) []frame.HelpEntry {
		out := make([]frame.HelpEntry, 0, len(bindings))
		for _, b := range bindings {
			h := b.Help()
			out = append(out, frame.HelpEntry{Keys: h.Key, Desc: h.Desc})
		}
		return out
	}

	return []frame.HelpSection{
		{Title: "NAVIGATION", Entries: entries(k.Next, k.Prev, k.First, k.Last, k.Goto)},
		{Title: "SCROLLING (for tall slides)", Entries: entries(k.ScrollDown, k.ScrollUp)},
		{Title: "SPEAKER NOTES", Entries: entries(k.ToggleNotes, k.GrowNotes, k.ShrinkNotes)},
		{Title: "VIEW OPTIONS", Entries: entries(k.Index, k.Refresh, k.Help)},
		{Entries: entries(k.Quit)},
	}
}
