package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacroRecordStopTrimsTrigger(t *testing.T) {
	ed, _ := newTestEditor(t, "abc def ghi")

	ed.Input("qa")
	_, recording := ed.MacroRecording()
	require.True(t, recording)

	ed.Input("ww")
	ed.Input("q")
	_, recording = ed.MacroRecording()
	assert.False(t, recording)

	// the trailing q that stopped the recording was trimmed
	assert.Equal(t, "ww", ed.macro('a').String())
}

func TestMacroRecordWhileRecordingFails(t *testing.T) {
	ed, _ := newTestEditor(t, "")

	require.True(t, ed.MacroRecord('a'))
	assert.False(t, ed.MacroRecord('b'))
}

func TestMacroReplayEditing(t *testing.T) {
	ed, _ := newTestEditor(t, "one\ntwo\nthree\n")

	// record deleting one word; at line end the word motion crosses
	// the line break, so the whole line goes
	ed.Input("qbdwq")
	assert.Equal(t, "two\nthree\n", bufferOf(ed))

	ed.Input("@b")
	assert.Equal(t, "three\n", bufferOf(ed))
}

func TestMacroReplayUnknownIsNoop(t *testing.T) {
	ed, _ := newTestEditor(t, "abc")

	assert.False(t, ed.MacroReplay('z'))
	assert.Equal(t, "abc", bufferOf(ed))
}

func TestMacroCannotReplayWhileRecordingItself(t *testing.T) {
	ed, _ := newTestEditor(t, "abc")

	require.True(t, ed.MacroRecord('a'))
	assert.False(t, ed.MacroReplay('a'))
}

func TestLastRecordedMacro(t *testing.T) {
	ed, _ := newTestEditor(t, "aaaa")

	ed.Input("qcxq")
	assert.Equal(t, "aaa", bufferOf(ed))

	// @@ replays the most recently recorded macro
	ed.Input("@@")
	assert.Equal(t, "aa", bufferOf(ed))
}

func TestDotRepeatsDelete(t *testing.T) {
	ed, _ := newTestEditor(t, "a b c d")

	ed.Input("dw")
	assert.Equal(t, "b c d", bufferOf(ed))
	ed.Input(".")
	assert.Equal(t, "c d", bufferOf(ed))
}

func TestDotWithNewCount(t *testing.T) {
	ed, _ := newTestEditor(t, "a b c d e f")

	ed.Input("dw")
	assert.Equal(t, "b c d e f", bufferOf(ed))
	// a fresh count overrides the stored one
	ed.Input("2.")
	assert.Equal(t, "d e f", bufferOf(ed))
}

func TestDotRepeatsInsert(t *testing.T) {
	ed, _ := newTestEditor(t, "")

	ed.Input("iab<Esc>")
	assert.Equal(t, "ab", bufferOf(ed))
	assert.Equal(t, 1, cursorOf(ed))

	// the repeat replays the recorded keystrokes at the cursor
	ed.Input(".")
	assert.Equal(t, "aabb", bufferOf(ed))
}

func TestOperatorMacroCapturesInsertedText(t *testing.T) {
	ed, _ := newTestEditor(t, "x")

	ed.Input("cwnew<Esc>")
	assert.Equal(t, "new", bufferOf(ed))
	// the operator macro holds exactly what was typed
	assert.Equal(t, "new<Esc>", ed.opMacroSlot.String())
}
