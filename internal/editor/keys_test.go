package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNextTokens(t *testing.T) {
	ed, _ := newTestEditor(t, "")

	tests := []struct {
		input string
		want  int
	}{
		{"a", 1},
		{"abc", 1},
		{"ä", 2},
		{"€x", 3},
		{"<Enter>", 7},
		{"<Esc>x", 5},
		{"<C-o>", 5},
		{"<S-Tab>", 7},
		{"<C-S-Left>", 10},
		// a lone '<' is a literal one byte token
		{"<", 1},
		{"<x", 1},
		{"<notakey!>", 1},
		{"<>", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ed.KeyNext(tt.input), "input %q", tt.input)
	}
	assert.Equal(t, 0, ed.KeyNext(""))
}

func TestKeyNextRegisteredAction(t *testing.T) {
	ed, _ := newTestEditor(t, "")

	// unknown names are not specials
	assert.Equal(t, 1, ed.KeyNext("<mything>"))

	require.True(t, ed.ActionRegister(&KeyAction{
		Name: "mything",
		Func: func(ed *Editor, keys string, _ Arg) (int, bool) { return 0, true },
	}))
	assert.Equal(t, 9, ed.KeyNext("<mything>"))
}

func TestFreeStandingActionDispatch(t *testing.T) {
	ed, _ := newTestEditor(t, "")

	ran := 0
	require.True(t, ed.ActionRegister(&KeyAction{
		Name: "poke",
		Func: func(ed *Editor, keys string, _ Arg) (int, bool) {
			ran++
			return 0, true
		},
	}))
	ed.Input("<poke>")
	assert.Equal(t, 1, ran)
}

func TestPrefixWaitsForMoreInput(t *testing.T) {
	ed, _ := newTestEditor(t, "a\nb\nc")

	// 'g' alone is a prefix of gg, ge, gu, ...: nothing happens yet
	ed.Input("g")
	assert.Equal(t, 0, cursorOf(ed))

	ed.Input("g")
	assert.Equal(t, 0, cursorOf(ed)) // gg from line 1 stays at 0

	ed.Input("jgg")
	assert.Equal(t, 0, cursorOf(ed))
}

func TestAliasExpansion(t *testing.T) {
	ed, _ := newTestEditor(t, "abc")

	// x expands to dl and runs through the normal operator path
	ed.Input("x")
	assert.Equal(t, "bc", bufferOf(ed))
	assert.Equal(t, "a", string(ed.Register(RegisterDefault).Data))
}

func TestPendingArgumentKeepsKeyQueued(t *testing.T) {
	ed, _ := newTestEditor(t, "abcXdef")

	// f waits for its target character
	ed.Input("f")
	assert.Equal(t, 0, cursorOf(ed))
	ed.Input("X")
	assert.Equal(t, 3, cursorOf(ed))
}

func TestUnboundKeyGoesToModeInput(t *testing.T) {
	ed, _ := newTestEditor(t, "")

	ed.Input("i")
	ed.Input("ü")
	assert.Equal(t, "ü", bufferOf(ed))
}

func TestLiteralAngleBracketInInsert(t *testing.T) {
	ed, _ := newTestEditor(t, "")

	ed.Input("i<a><Esc>")
	assert.Equal(t, "<a>", bufferOf(ed))
}

func TestInjectAppendsToOperatorMacro(t *testing.T) {
	ed, _ := newTestEditor(t, "abc")

	require.True(t, ed.ActionRegister(&KeyAction{
		Name: "inject",
		Func: func(ed *Editor, keys string, _ Arg) (int, bool) {
			ed.Inject(len(ed.keys.data), "x")
			return 0, true
		},
	}))

	ed.Input("i")
	require.Equal(t, ModeInsert, ed.CurrentMode().ID())
	ed.Input("<inject>")
	assert.Equal(t, "xabc", bufferOf(ed))
	// the injected key is recorded right behind the key that injected it
	assert.Equal(t, "<inject>x", ed.opMacroSlot.String())
}

func TestInjectOutsideResolutionFails(t *testing.T) {
	ed, _ := newTestEditor(t, "")
	assert.False(t, ed.Inject(0, "x"))
}
