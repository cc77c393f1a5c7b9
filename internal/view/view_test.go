package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niklas-heer/ved/internal/text"
)

func newView(content string) *View {
	return New(text.New([]byte(content)))
}

func TestCursorLineUpDownKeepsColumn(t *testing.T) {
	v := newView("abcdef\nxy\nlmnopq")

	v.CursorTo(4) // column 4 on line 1
	c := v.Cursor()

	// line 2 is shorter: clamp to its last character
	pos := c.LineDown()
	assert.Equal(t, 8, pos)
	c.To(pos)

	// the preferred column now tracks the clamped position
	pos = c.LineDown()
	assert.Equal(t, 11, pos)
}

func TestLineDownAtLastLineStays(t *testing.T) {
	v := newView("abc\ndef")
	v.CursorTo(5)
	assert.Equal(t, 5, v.Cursor().LineDown())

	v = newView("abc\n")
	v.CursorTo(1)
	assert.Equal(t, 1, v.Cursor().LineDown())
}

func TestLineUpAtFirstLineStays(t *testing.T) {
	v := newView("abc\ndef")
	v.CursorTo(1)
	assert.Equal(t, 1, v.Cursor().LineUp())
}

func TestCursorAdjustsOnEdits(t *testing.T) {
	txt := text.New([]byte("hello world"))
	v := New(txt)
	v.CursorTo(6)

	txt.Insert(0, []byte("xy"))
	assert.Equal(t, 8, v.CursorPos())

	txt.Delete(0, 2)
	assert.Equal(t, 6, v.CursorPos())

	// deleting the span under the cursor snaps to its start
	txt.Delete(5, 3)
	assert.Equal(t, 5, v.CursorPos())
}

func TestSelectionAnchored(t *testing.T) {
	v := newView("abcdef")
	c := v.Cursor()

	c.SelectionStart()
	c.To(3)
	assert.Equal(t, text.Range{Start: 0, End: 4}, c.SelectionGet())

	// moving back onto the anchor selects the character under it
	c.To(0)
	v.CursorTo(0)
	assert.Equal(t, text.Range{Start: 0, End: 1}, c.SelectionGet())
}

func TestSelectionExplicitOverrideAndSync(t *testing.T) {
	v := newView("abcdef")
	c := v.Cursor()

	c.SelectionStart()
	c.SelectionSet(text.Range{Start: 2, End: 5})
	assert.Equal(t, text.Range{Start: 2, End: 5}, c.SelectionGet())

	c.SelectionSync()
	assert.Equal(t, 4, c.Pos())

	// moving the cursor dissolves the explicit range
	c.To(5)
	assert.Equal(t, text.Range{Start: 2, End: 6}, c.SelectionGet())
}

func TestCursorsNewSortedAndDispose(t *testing.T) {
	v := newView("abc\ndef\nghi")

	c2 := v.CursorsNew(8)
	c1 := v.CursorsNew(4)
	require.Equal(t, 3, v.CursorsCount())

	cursors := v.Cursors()
	assert.Equal(t, 0, cursors[0].Pos())
	assert.Equal(t, 4, cursors[1].Pos())
	assert.Equal(t, 8, cursors[2].Pos())

	assert.True(t, v.CursorsDispose(c1))
	assert.True(t, v.CursorsDispose(c2))
	// the last cursor can not be disposed
	assert.False(t, v.CursorsDispose(v.Cursor()))
}

func TestCursorsClear(t *testing.T) {
	v := newView("abc")
	v.CursorsNew(1)
	v.CursorsNew(2)
	v.CursorsClear()
	assert.Equal(t, 1, v.CursorsCount())
}

func TestViewportFollowsCursor(t *testing.T) {
	v := newView("a\nb\nc\nd\ne\nf\ng\nh")
	v.Resize(80, 3)

	v.CursorTo(0)
	require.Equal(t, 0, v.Start())

	// move to line 5: the viewport scrolls down
	v.CursorTo(8)
	vp := v.Viewport()
	assert.True(t, vp.Contains(8), "viewport %v should contain 8", vp)

	// and back up
	v.CursorTo(0)
	assert.Equal(t, 0, v.Start())
}

func TestScreenLineGoto(t *testing.T) {
	v := newView("aa\nbb\ncc\ndd")
	v.Resize(80, 4)

	assert.Equal(t, 0, v.ScreenLineGoto(1))
	assert.Equal(t, 3, v.ScreenLineGoto(2))
	assert.Equal(t, 9, v.ScreenLineGoto(4))
}

func TestScreenLineMiddleUsesWidth(t *testing.T) {
	v := newView("abcdefghij")
	v.Resize(6, 4)
	v.CursorTo(0)
	assert.Equal(t, 3, v.Cursor().ScreenLineMiddle())
}

func TestTabWidthColumns(t *testing.T) {
	v := newView("\tabc\nxxxxxxxxxx")
	// cursor on 'a': display column 8 after the tab
	v.CursorTo(1)
	c := v.Cursor()
	pos := c.LineDown()
	assert.Equal(t, 13, pos)
}
