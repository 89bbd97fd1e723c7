package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"termdeck/internal/nav"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestEventNormalMode(t *testing.T) {
	k := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want nav.Key
	}{
		{runeKey('n'), nav.KeyNext},
		{tea.KeyMsg{Type: tea.KeyRight}, nav.KeyNext},
		{tea.KeyMsg{Type: tea.KeyEnter}, nav.KeyNext},
		{runeKey('p'), nav.KeyPrev},
		{tea.KeyMsg{Type: tea.KeyLeft}, nav.KeyPrev},
		{tea.KeyMsg{Type: tea.KeyBackspace}, nav.KeyPrev},
		{runeKey('f'), nav.KeyFirst},
		{runeKey('l'), nav.KeyLast},
		{runeKey('g'), nav.KeyGoto},
		{runeKey('j'), nav.KeyScrollDown},
		{tea.KeyMsg{Type: tea.KeyDown}, nav.KeyScrollDown},
		{runeKey('k'), nav.KeyScrollUp},
		{runeKey('s'), nav.KeyToggleNotes},
		{runeKey('+'), nav.KeyGrowNotes},
		{runeKey('='), nav.KeyGrowNotes},
		{runeKey('-'), nav.KeyShrinkNotes},
		{runeKey('_'), nav.KeyShrinkNotes},
		{runeKey('i'), nav.KeyEnterIndex},
		{runeKey('h'), nav.KeyHelp},
		{runeKey('?'), nav.KeyHelp},
		{runeKey('r'), nav.KeyRefresh},
		{runeKey('q'), nav.KeyQuit},
		{runeKey('x'), nav.KeyQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, nav.KeyQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, nav.KeyQuit},
		{runeKey('z'), nav.KeyNone},
		{runeKey('5'), nav.KeyNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, k.Event(nav.ModeNormal, tt.msg).Key, "key %q", tt.msg.String())
	}
}

func TestEventIndexMode(t *testing.T) {
	k := DefaultKeyMap()
	assert.Equal(t, nav.KeyUp, k.Event(nav.ModeIndex, runeKey('k')).Key)
	assert.Equal(t, nav.KeyUp, k.Event(nav.ModeIndex, tea.KeyMsg{Type: tea.KeyUp}).Key)
	assert.Equal(t, nav.KeyDown, k.Event(nav.ModeIndex, runeKey('j')).Key)
	assert.Equal(t, nav.KeyConfirm, k.Event(nav.ModeIndex, tea.KeyMsg{Type: tea.KeyEnter}).Key)
	assert.Equal(t, nav.KeyCancel, k.Event(nav.ModeIndex, runeKey('q')).Key)
	assert.Equal(t, nav.KeyCancel, k.Event(nav.ModeIndex, runeKey('i')).Key)
	assert.Equal(t, nav.KeyCancel, k.Event(nav.ModeIndex, tea.KeyMsg{Type: tea.KeyEsc}).Key)
	assert.Equal(t, nav.KeyQuit, k.Event(nav.ModeIndex, tea.KeyMsg{Type: tea.KeyCtrlC}).Key)
	assert.Equal(t, nav.KeyNone, k.Event(nav.ModeIndex, runeKey('n')).Key)
}

func TestEventGotoMode(t *testing.T) {
	k := DefaultKeyMap()
	ev := k.Event(nav.ModeGoto, runeKey('7'))
	assert.Equal(t, nav.KeyDigit, ev.Key)
	assert.Equal(t, '7', ev.Digit)

	assert.Equal(t, nav.KeyBackspace, k.Event(nav.ModeGoto, tea.KeyMsg{Type: tea.KeyBackspace}).Key)
	assert.Equal(t, nav.KeyEnter, k.Event(nav.ModeGoto, tea.KeyMsg{Type: tea.KeyEnter}).Key)
	assert.Equal(t, nav.KeyCancel, k.Event(nav.ModeGoto, tea.KeyMsg{Type: tea.KeyEsc}).Key)
	assert.Equal(t, nav.KeyNone, k.Event(nav.ModeGoto, runeKey('q')).Key)
}

func TestEventHelpModeAcceptsAnything(t *testing.T) {
	k := DefaultKeyMap()
	assert.Equal(t, nav.KeyNone, k.Event(nav.ModeHelp, runeKey('q')).Key)
}

func TestCustomBindings(t *testing.T) {
	k := NewKeyMap(map[string][]string{"next": {"m"}})
	assert.Equal(t, nav.KeyNext, k.Event(nav.ModeNormal, runeKey('m')).Key)
	assert.Equal(t, nav.KeyNone, k.Event(nav.ModeNormal, runeKey('n')).Key)
	// Unlisted actions keep their defaults.
	assert.Equal(t, nav.KeyPrev, k.Event(nav.ModeNormal, runeKey('p')).Key)
}

func TestHelpSectionsUseLabels(t *testing.T) {
	sections := DefaultKeyMap().HelpSections()
	first := sections[0].Entries[0]
	assert.Equal(t, "n, SPACE, →, ENTER", first.Keys)
	assert.Equal(t, "Next slide", first.Desc)
}
