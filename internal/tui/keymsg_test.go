package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyToTokenRunes(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	assert.Equal(t, "a", KeyToToken(msg))

	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'ä'}}
	assert.Equal(t, "ä", KeyToToken(msg))
}

func TestKeyToTokenSpecials(t *testing.T) {
	tests := []struct {
		key  tea.KeyType
		want string
	}{
		{tea.KeyEnter, "<Enter>"},
		{tea.KeyEsc, "<Esc>"},
		{tea.KeyTab, "<Tab>"},
		{tea.KeyBackspace, "<Backspace>"},
		{tea.KeyUp, "<Up>"},
		{tea.KeyDown, "<Down>"},
		{tea.KeyLeft, "<Left>"},
		{tea.KeyRight, "<Right>"},
		{tea.KeyHome, "<Home>"},
		{tea.KeyEnd, "<End>"},
		{tea.KeySpace, " "},
	}
	for _, tt := range tests {
		got := KeyToToken(tea.KeyMsg{Type: tt.key})
		assert.Equal(t, tt.want, got, "key %v", tt.key)
	}
}

func TestKeyToTokenCtrl(t *testing.T) {
	assert.Equal(t, "<C-o>", KeyToToken(tea.KeyMsg{Type: tea.KeyCtrlO}))
	assert.Equal(t, "<C-r>", KeyToToken(tea.KeyMsg{Type: tea.KeyCtrlR}))
}

func TestKeyToTokenShiftTab(t *testing.T) {
	assert.Equal(t, "<S-Tab>", KeyToToken(tea.KeyMsg{Type: tea.KeyShiftTab}))
}
