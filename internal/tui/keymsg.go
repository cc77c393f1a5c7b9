package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// specialKeys maps bubbletea key names to editor key tokens.
var specialKeys = map[string]string{
	"enter":     "<Enter>",
	"esc":       "<Esc>",
	"tab":       "<Tab>",
	"shift+tab": "<S-Tab>",
	"backspace": "<Backspace>",
	"delete":    "<Del>",
	"up":        "<Up>",
	"down":      "<Down>",
	"left":      "<Left>",
	"right":     "<Right>",
	"home":      "<Home>",
	"end":       "<End>",
	"pgup":      "<PageUp>",
	"pgdown":    "<PageDown>",
	"insert":    "<Insert>",
	" ":         " ",
	"space":     " ",
}

// KeyToToken translates a bubbletea key message into the key token
// grammar the editor core resolves: plain runes pass through, special
// keys become <Name> and control chords become <C-x>.
func KeyToToken(msg tea.KeyMsg) string {
	s := msg.String()
	if tok, ok := specialKeys[s]; ok {
		return tok
	}
	if strings.HasPrefix(s, "ctrl+") {
		rest := s[len("ctrl+"):]
		if tok, ok := specialKeys[rest]; ok && len(tok) > 1 {
			return "<C-" + tok[1:]
		}
		return "<C-" + rest + ">"
	}
	if strings.HasPrefix(s, "alt+") {
		rest := s[len("alt+"):]
		return "<M-" + rest + ">"
	}
	if msg.Type == tea.KeyRunes {
		return string(msg.Runes)
	}
	if len(s) >= 2 && s[0] == 'f' {
		// function keys arrive as f1..f12
		return "<F" + s[1:] + ">"
	}
	return s
}
