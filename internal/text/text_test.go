package text

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, pattern string) *regexp.Regexp {
	t.Helper()
	re, err := regexp.Compile(pattern)
	require.NoError(t, err)
	return re
}

func TestInsertDelete(t *testing.T) {
	txt := New([]byte("Hello World"))
	require.Equal(t, 11, txt.Size())

	require.True(t, txt.Insert(5, []byte(",")))
	assert.Equal(t, "Hello, World", string(txt.Bytes()))

	require.True(t, txt.Delete(5, 1))
	assert.Equal(t, "Hello World", string(txt.Bytes()))
}

func TestInsertOutOfRange(t *testing.T) {
	txt := New([]byte("abc"))
	assert.False(t, txt.Insert(-1, []byte("x")))
	assert.False(t, txt.Insert(4, []byte("x")))
	assert.Equal(t, "abc", string(txt.Bytes()))
}

func TestDeleteRange(t *testing.T) {
	txt := New([]byte("Hello World"))
	require.True(t, txt.DeleteRange(Range{Start: 0, End: 6}))
	assert.Equal(t, "World", string(txt.Bytes()))

	assert.False(t, txt.DeleteRange(EmptyRange()))
}

func TestBytesGet(t *testing.T) {
	txt := New([]byte("abcdef"))
	assert.Equal(t, "cde", string(txt.BytesGet(2, 3)))
	assert.Equal(t, "ef", string(txt.BytesGet(4, 10)))
	assert.Nil(t, txt.BytesGet(6, 1))
}

func TestSnapshotUndoRedo(t *testing.T) {
	txt := New([]byte("one"))
	txt.Insert(3, []byte(" two"))
	txt.Snapshot()
	txt.Insert(7, []byte(" three"))
	txt.Snapshot()

	pos := txt.Undo()
	require.NotEqual(t, EPOS, pos)
	assert.Equal(t, "one two", string(txt.Bytes()))

	pos = txt.Undo()
	require.NotEqual(t, EPOS, pos)
	assert.Equal(t, "one", string(txt.Bytes()))

	assert.Equal(t, EPOS, txt.Undo())

	pos = txt.Redo()
	require.NotEqual(t, EPOS, pos)
	assert.Equal(t, "one two", string(txt.Bytes()))
}

func TestSnapshotWithoutChangesIsNoop(t *testing.T) {
	txt := New([]byte("abc"))
	txt.Snapshot()
	txt.Snapshot()
	assert.Equal(t, EPOS, txt.Undo())
}

func TestStateChangesOnEdit(t *testing.T) {
	txt := New([]byte("abc"))
	before := txt.State()
	txt.Insert(0, []byte("x"))
	assert.NotEqual(t, before, txt.State())
}

func TestMarksFollowEdits(t *testing.T) {
	txt := New([]byte("abcdef"))
	m := txt.MarkSet(3)
	require.Equal(t, 3, txt.MarkGet(m))

	txt.Insert(0, []byte("xy"))
	assert.Equal(t, 5, txt.MarkGet(m))

	txt.Delete(0, 2)
	assert.Equal(t, 3, txt.MarkGet(m))
}

func TestMarkInvalidatedByDeletion(t *testing.T) {
	txt := New([]byte("abcdef"))
	m := txt.MarkSet(3)
	txt.Delete(2, 3)
	assert.Equal(t, EPOS, txt.MarkGet(m))
}

func TestHistoryTracksChangePositions(t *testing.T) {
	txt := New([]byte("abcdef"))
	txt.Insert(2, []byte("x"))
	txt.Snapshot()
	txt.Insert(5, []byte("y"))
	txt.Snapshot()

	assert.Equal(t, 5, txt.HistoryGet(0))
	assert.Equal(t, 2, txt.HistoryGet(1))
	assert.Equal(t, EPOS, txt.HistoryGet(2))
}

func TestNewlineDetection(t *testing.T) {
	assert.Equal(t, NewlineLF, New([]byte("a\nb")).NewlineType())
	assert.Equal(t, NewlineCRLF, New([]byte("a\r\nb")).NewlineType())
	assert.Equal(t, NewlineLF, New(nil).NewlineType())
}

func TestOnChangeListener(t *testing.T) {
	txt := New([]byte("abc"))
	var gotPos, gotIns, gotDel int
	txt.OnChange(func(pos, ins, del int) {
		gotPos, gotIns, gotDel = pos, ins, del
	})
	txt.Insert(1, []byte("xy"))
	assert.Equal(t, []int{1, 2, 0}, []int{gotPos, gotIns, gotDel})
	txt.Delete(0, 2)
	assert.Equal(t, []int{0, 0, 2}, []int{gotPos, gotIns, gotDel})
}

func TestCharNextPrev(t *testing.T) {
	txt := New([]byte("aä€b"))
	pos := 0
	pos = txt.CharNext(pos)
	assert.Equal(t, 1, pos) // past 'a'
	pos = txt.CharNext(pos)
	assert.Equal(t, 3, pos) // past two byte 'ä'
	pos = txt.CharNext(pos)
	assert.Equal(t, 6, pos) // past three byte euro sign

	assert.Equal(t, 3, txt.CharPrev(6))
	assert.Equal(t, 0, txt.CharPrev(1))
	assert.Equal(t, 0, txt.CharPrev(0))
}

func TestRangeHelpers(t *testing.T) {
	assert.False(t, EmptyRange().IsValid())
	assert.True(t, Range{Start: 2, End: 2}.IsValid())
	assert.Equal(t, Range{Start: 1, End: 5}, NewRange(5, 1))
	assert.Equal(t, 3, Range{Start: 1, End: 4}.Size())
	assert.Equal(t, Range{Start: 0, End: 9}, Range{Start: 0, End: 4}.Union(Range{Start: 6, End: 9}))
}

func TestRangeLinewise(t *testing.T) {
	txt := New([]byte("abc\ndef\nghi\n"))

	// already on line boundaries: unchanged
	r := txt.RangeLinewise(Range{Start: 0, End: 4})
	assert.Equal(t, Range{Start: 0, End: 4}, r)

	// mid-line ends are rounded outwards
	r = txt.RangeLinewise(Range{Start: 5, End: 9})
	assert.Equal(t, Range{Start: 4, End: 12}, r)

	assert.True(t, txt.RangeIsLinewise(Range{Start: 4, End: 8}))
	assert.False(t, txt.RangeIsLinewise(Range{Start: 4, End: 9}))
}

func TestRangeLineIteration(t *testing.T) {
	txt := New([]byte("abc\ndef\nghi\n"))
	r := Range{Start: 0, End: 12}
	var lines []int
	for line := txt.RangeLineFirst(r); line != EPOS; line = txt.RangeLineNext(r, line) {
		lines = append(lines, line)
	}
	assert.Equal(t, []int{0, 4, 8}, lines)
}

func TestSearch(t *testing.T) {
	txt := New([]byte("foo bar foo baz"))
	re := mustCompile(t, "foo")

	assert.Equal(t, 8, txt.SearchForward(0, re))
	// wraps around at the end
	assert.Equal(t, 0, txt.SearchForward(9, re))

	assert.Equal(t, 0, txt.SearchBackward(8, re))
	// wraps around at the begin
	assert.Equal(t, 8, txt.SearchBackward(0, re))

	assert.Equal(t, EPOS, txt.SearchForward(0, mustCompile(t, "quux")))
}
