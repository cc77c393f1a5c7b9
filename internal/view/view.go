// Package view tracks what a window shows of a text buffer: a set of
// cursors with selections, the viewport, and the cursor motions that
// need screen geometry. Soft wrap is not implemented; one screen line
// is one buffer line.
package view

import (
	"sort"

	"github.com/niklas-heer/ved/internal/text"
)

// View is the visual state of one window over a buffer.
type View struct {
	txt     *text.Text
	cursors []*Cursor
	width   int
	height  int
	start   int // begin of the top visible line
}

// New creates a view over txt with a single cursor at the buffer begin.
func New(txt *text.Text) *View {
	v := &View{txt: txt, width: 80, height: 24}
	v.cursors = []*Cursor{{view: v}}
	txt.OnChange(v.textChanged)
	return v
}

// Text returns the buffer the view displays.
func (v *View) Text() *text.Text { return v.txt }

// textChanged shifts cursors and selections the way buffer marks are
// shifted. Whole-buffer restores (undo) arrive as a coarse change and
// only get clamped.
func (v *View) textChanged(pos, inserted, deleted int) {
	adjust := func(p int) int {
		switch {
		case p < pos:
			return p
		case deleted > 0 && p < pos+deleted:
			return pos
		default:
			return p + inserted - deleted
		}
	}
	size := v.txt.Size()
	for _, c := range v.cursors {
		c.pos = clamp(adjust(c.pos), size)
		c.anchor = clamp(adjust(c.anchor), size)
		if c.selExplicit {
			c.sel.Start = clamp(adjust(c.sel.Start), size)
			c.sel.End = clamp(adjust(c.sel.End), size)
		}
	}
	v.start = clamp(v.start, size)
}

func clamp(p, size int) int {
	if p < 0 {
		return 0
	}
	if p > size {
		return size
	}
	return p
}

// Resize sets the viewport dimensions.
func (v *View) Resize(width, height int) {
	if width > 0 {
		v.width = width
	}
	if height > 0 {
		v.height = height
	}
	v.scrollIntoView(v.Cursor().pos)
}

// Width returns the viewport width in columns.
func (v *View) Width() int { return v.width }

// Height returns the viewport height in lines.
func (v *View) Height() int { return v.height }

// Viewport returns the visible byte range.
func (v *View) Viewport() text.Range {
	end := v.start
	for i := 0; i < v.height; i++ {
		next := v.txt.LineNext(end)
		if next == end {
			break
		}
		end = next
	}
	return text.Range{Start: v.start, End: end}
}

// Start returns the begin of the top visible line.
func (v *View) Start() int { return v.start }

func (v *View) scrollIntoView(pos int) {
	vp := v.Viewport()
	if pos < vp.Start {
		v.start = v.txt.LineBegin(pos)
		return
	}
	if pos >= vp.End && vp.End < v.txt.Size() || pos > v.txt.Size() {
		// scroll down until pos is on the last visible line
		line := v.txt.LineBegin(pos)
		top := line
		for i := 1; i < v.height; i++ {
			prev := v.txt.LineBegin(v.txt.LinePrev(top))
			if prev == top {
				break
			}
			top = prev
		}
		if top > v.start {
			v.start = top
		}
	}
}

// ScreenLineGoto returns the begin of the 1-based n-th visible line.
func (v *View) ScreenLineGoto(n int) int {
	if n < 1 {
		n = 1
	}
	pos := v.start
	for i := 1; i < n; i++ {
		next := v.txt.LineNext(pos)
		if next == pos || next >= v.txt.Size() && v.txt.LineBegin(next) == pos {
			break
		}
		if next > v.txt.Size() {
			break
		}
		pos = next
	}
	return v.txt.LineStart(pos)
}

// Cursor returns the primary cursor.
func (v *View) Cursor() *Cursor { return v.cursors[0] }

// CursorPos returns the primary cursor position.
func (v *View) CursorPos() int { return v.cursors[0].pos }

// CursorTo moves the primary cursor.
func (v *View) CursorTo(pos int) { v.cursors[0].To(pos) }

// Cursors returns a stable snapshot of the cursor list ordered by
// position. Operators may dispose cursors while the caller iterates the
// snapshot.
func (v *View) Cursors() []*Cursor {
	return append([]*Cursor(nil), v.cursors...)
}

// CursorsCount returns the number of live cursors.
func (v *View) CursorsCount() int { return len(v.cursors) }

// CursorsNew adds a cursor at pos, keeping the list ordered.
func (v *View) CursorsNew(pos int) *Cursor {
	c := &Cursor{view: v, pos: clamp(pos, v.txt.Size())}
	v.cursors = append(v.cursors, c)
	sort.SliceStable(v.cursors, func(i, j int) bool {
		return v.cursors[i].pos < v.cursors[j].pos
	})
	return c
}

// CursorsDispose removes c. The last remaining cursor is never
// disposed.
func (v *View) CursorsDispose(c *Cursor) bool {
	if len(v.cursors) <= 1 {
		return false
	}
	for i, cc := range v.cursors {
		if cc == c {
			v.cursors = append(v.cursors[:i], v.cursors[i+1:]...)
			return true
		}
	}
	return false
}

// CursorsClear collapses to the primary cursor.
func (v *View) CursorsClear() {
	primary := v.cursors[0]
	v.cursors = []*Cursor{primary}
}

// SelectionsClear drops every cursor's selection.
func (v *View) SelectionsClear() {
	for _, c := range v.cursors {
		c.selActive = false
		c.selExplicit = false
	}
}

// SelectionsStart anchors a selection at every cursor.
func (v *View) SelectionsStart() {
	for _, c := range v.cursors {
		c.SelectionStart()
	}
}
