package editor

import "github.com/niklas-heer/ved/internal/text"

// jumplistSize is the ring capacity; one slot stays unused to tell a
// full ring from an empty one.
const jumplistSize = 31

// jumpList is a per-window ring buffer of marks recording where
// jump-typed motions left from. A cursor walks it backwards (ctrl-o)
// and forwards (ctrl-i); any non-jump motion invalidates the forward
// part.
type jumpList struct {
	marks []text.Mark
	start int // oldest entry
	end   int // one past the newest entry
	cur   int // walk cursor
}

func newJumpList() *jumpList {
	return &jumpList{marks: make([]text.Mark, jumplistSize+1)}
}

func (j *jumpList) wrap(i int) int {
	return (i + len(j.marks)) % len(j.marks)
}

// add appends a mark at the walk cursor, discarding any forward
// entries and the oldest entry once the ring is full.
func (j *jumpList) add(m text.Mark) {
	j.marks[j.cur] = m
	j.cur = j.wrap(j.cur + 1)
	j.end = j.cur
	if j.end == j.start {
		j.start = j.wrap(j.start + 1)
	}
}

// invalidate drops the forward part of the list.
func (j *jumpList) invalidate() {
	j.end = j.cur
}

// prev steps the walk cursor back and returns the mark there, or false
// at the oldest entry.
func (j *jumpList) prev() (text.Mark, bool) {
	if j.cur == j.start {
		return 0, false
	}
	j.cur = j.wrap(j.cur - 1)
	return j.marks[j.cur], true
}

// next steps the walk cursor forward and returns the mark there, or
// false at the newest entry.
func (j *jumpList) next() (text.Mark, bool) {
	if j.cur == j.wrap(j.end-1) || j.cur == j.end {
		return 0, false
	}
	j.cur = j.wrap(j.cur + 1)
	return j.marks[j.cur], true
}

// jumplistAdd records pos before a jump motion moves away from it.
func (w *Win) jumplistAdd(pos int) {
	m := w.File.Text.MarkSet(pos)
	if int(m) != text.EPOS {
		w.jumplist.add(m)
	}
}

// jumplistInvalidate drops the forward walk after a non-jump motion.
func (w *Win) jumplistInvalidate() {
	w.jumplist.invalidate()
}

// jumplistPrev resolves the previous jump position, skipping stale
// marks, or returns cur unchanged.
func jumplistPrev(ed *Editor, win *Win, cur int) int {
	for {
		m, ok := win.jumplist.prev()
		if !ok {
			return cur
		}
		pos := win.File.Text.MarkGet(m)
		if pos != text.EPOS && pos != cur {
			return pos
		}
	}
}

// jumplistNext resolves the next jump position, skipping stale marks,
// or returns cur unchanged.
func jumplistNext(ed *Editor, win *Win, cur int) int {
	for {
		m, ok := win.jumplist.next()
		if !ok {
			return cur
		}
		pos := win.File.Text.MarkGet(m)
		if pos != text.EPOS && pos != cur {
			return pos
		}
	}
}
