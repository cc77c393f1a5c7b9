package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeTreeTopology(t *testing.T) {
	ed, _ := newTestEditor(t, "")

	assert.Equal(t, modeNone, ed.Mode(ModeBasic).Parent)
	assert.Equal(t, ModeBasic, ed.Mode(ModeMove).Parent)
	assert.Equal(t, ModeMove, ed.Mode(ModeTextObject).Parent)
	assert.Equal(t, ModeTextObject, ed.Mode(ModeOperatorOption).Parent)
	assert.Equal(t, ModeMove, ed.Mode(ModeOperator).Parent)
	assert.Equal(t, ModeOperator, ed.Mode(ModeNormal).Parent)
	assert.Equal(t, ModeOperator, ed.Mode(ModeVisual).Parent)
	assert.Equal(t, ModeVisual, ed.Mode(ModeVisualLine).Parent)
	assert.Equal(t, ModeBasic, ed.Mode(ModeReadline).Parent)
	assert.Equal(t, ModeReadline, ed.Mode(ModePrompt).Parent)
	assert.Equal(t, ModeReadline, ed.Mode(ModeInsert).Parent)
	assert.Equal(t, ModeInsert, ed.Mode(ModeReplace).Parent)
}

func TestOperatorReparenting(t *testing.T) {
	ed, _ := newTestEditor(t, "abc")

	// entering operator mode makes text objects reachable
	ed.ModeSwitch(ModeOperator)
	assert.Equal(t, ModeOperatorOption, ed.Mode(ModeOperator).Parent)

	// leaving it restores the static edge
	ed.ModeSwitch(ModeNormal)
	assert.Equal(t, ModeMove, ed.Mode(ModeOperator).Parent)
}

func TestOperatorReparentingThroughAction(t *testing.T) {
	ed, _ := newTestEditor(t, "abc def")

	ed.Input("d")
	assert.Equal(t, ModeOperator, ed.CurrentMode().ID())
	assert.Equal(t, ModeOperatorOption, ed.Mode(ModeOperator).Parent)

	ed.Input("w")
	assert.Equal(t, ModeNormal, ed.CurrentMode().ID())
	assert.Equal(t, ModeMove, ed.Mode(ModeOperator).Parent)
}

func TestVisualReparenting(t *testing.T) {
	ed, _ := newTestEditor(t, "abc")

	ed.Input("v")
	assert.Equal(t, ModeTextObject, ed.Mode(ModeOperator).Parent)

	ed.Input("<Esc>")
	assert.Equal(t, ModeNormal, ed.CurrentMode().ID())
	assert.Equal(t, ModeMove, ed.Mode(ModeOperator).Parent)
}

func TestVisualOperatorReparentingIsIdempotent(t *testing.T) {
	ed, _ := newTestEditor(t, "abc def")

	// visual, then an operator over the selection, then back to normal
	ed.Input("vlwd")
	require.Equal(t, ModeNormal, ed.CurrentMode().ID())
	assert.Equal(t, ModeMove, ed.Mode(ModeOperator).Parent)
}

func TestVisualToVisualLineKeepsSelection(t *testing.T) {
	ed, _ := newTestEditor(t, "abc\ndef")

	ed.Input("vV")
	assert.Equal(t, ModeVisualLine, ed.CurrentMode().ID())
	// switching between visual modes must not clear the re-parenting
	assert.Equal(t, ModeTextObject, ed.Mode(ModeOperator).Parent)

	ed.Input("<Esc>")
	assert.Equal(t, ModeMove, ed.Mode(ModeOperator).Parent)
}

func TestModeSetSameModeIsNoop(t *testing.T) {
	ed, ui := newTestEditor(t, "")

	before := ui.statusDraws
	ed.ModeSwitch(ModeNormal)
	assert.Equal(t, before, ui.statusDraws)
}

func TestModePrevOnlyTracksUserModes(t *testing.T) {
	ed, _ := newTestEditor(t, "abc")

	ed.Input("v")
	require.Equal(t, ModeVisual, ed.CurrentMode().ID())
	// in visual mode the operator runs over the selection at once, with no
	// stop in operator mode, and VISUAL becomes the previous user mode
	ed.Input("d")
	assert.Equal(t, ModeNormal, ed.CurrentMode().ID()) // op ran over selection
	assert.Equal(t, ModeVisual, ed.modePrev.ID())
}

func TestPromptRemembersOriginMode(t *testing.T) {
	ed, ui := newTestEditor(t, "abc")

	ed.Input(":")
	require.Equal(t, ModePrompt, ed.CurrentMode().ID())
	require.True(t, ui.promptOpen)

	ed.Input("<Esc>")
	assert.Equal(t, ModeNormal, ed.CurrentMode().ID())
	assert.False(t, ui.promptOpen)
}

func TestInsertLeaveSnapshots(t *testing.T) {
	ed, _ := newTestEditor(t, "")

	ed.Input("iabc<Esc>")
	// the whole insert is one undo step
	ed.Input("u")
	assert.Equal(t, "", bufferOf(ed))
}

func TestModeMapUnmap(t *testing.T) {
	ed, _ := newTestEditor(t, "abc")

	require.True(t, ed.ModeMap(ModeNormal, "Q", bindAlias("dd")))
	ed.Input("Q")
	assert.Equal(t, "", bufferOf(ed))

	require.True(t, ed.ModeUnmap(ModeNormal, "Q"))
	assert.False(t, ed.ModeUnmap(ModeNormal, "Q"))
}
