package view

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/niklas-heer/ved/internal/text"
)

// Cursor is one insertion point in a view, with an optional selection.
type Cursor struct {
	view   *View
	pos    int
	col    int // preferred display column for vertical motions
	anchor int
	// selActive marks an anchored selection; selExplicit means sel was
	// set directly by the executor and overrides the anchor range.
	selActive   bool
	selExplicit bool
	sel         text.Range
}

// Pos returns the cursor's byte position.
func (c *Cursor) Pos() int { return c.pos }

// To moves the cursor, remembers its display column and scrolls it into
// view. Moving the cursor dissolves an explicitly set selection range
// back into the anchor/cursor pair, so the selection follows the
// cursor again.
func (c *Cursor) To(pos int) {
	c.pos = clamp(pos, c.view.txt.Size())
	c.col = c.displayCol(c.pos)
	c.selExplicit = false
	c.view.scrollIntoView(c.pos)
}

// ScrollTo moves the cursor exactly like To; charwise motions call it,
// and neither of the two recenters the view.
func (c *Cursor) ScrollTo(pos int) {
	c.To(pos)
}

func (c *Cursor) displayCol(pos int) int {
	txt := c.view.txt
	begin := txt.LineBegin(pos)
	line := txt.BytesGet(begin, pos-begin)
	col := 0
	for _, b := range string(line) {
		if b == '\t' {
			col += 8 - col%8
		} else {
			col += runewidth.RuneWidth(b)
		}
	}
	return col
}

// posAtCol returns the offset on the line beginning at begin whose
// display column is closest to col without exceeding it.
func (c *Cursor) posAtCol(begin, col int) int {
	txt := c.view.txt
	end := txt.LineEnd(begin)
	pos := begin
	cur := 0
	for pos < end {
		b, _ := txt.ByteGet(pos)
		w := 1
		if b == '\t' {
			w = 8 - cur%8
		} else if raw := txt.BytesGet(pos, 4); len(raw) > 0 {
			r, _ := utf8.DecodeRune(raw)
			if w = runewidth.RuneWidth(r); w == 0 {
				w = 1
			}
		}
		if cur+w > col {
			break
		}
		next := txt.CharNext(pos)
		if next == pos {
			break
		}
		cur += w
		pos = next
	}
	if pos == end && end > begin {
		pos = txt.LineLastChar(begin)
	}
	return pos
}

// LineUp moves one buffer line up, keeping the preferred column.
func (c *Cursor) LineUp() int {
	txt := c.view.txt
	begin := txt.LineBegin(c.pos)
	if begin == 0 {
		return c.pos
	}
	prev := txt.LineBegin(txt.LinePrev(begin))
	return c.posAtCol(prev, c.col)
}

// LineDown moves one buffer line down, keeping the preferred column.
func (c *Cursor) LineDown() int {
	txt := c.view.txt
	begin := txt.LineBegin(c.pos)
	next := txt.LineNext(begin)
	if txt.LineBegin(next) == begin {
		return c.pos // already on the last line
	}
	if next == txt.Size() && txt.LineBegin(next) == next {
		return c.pos // buffer ends in a newline, no line below
	}
	return c.posAtCol(next, c.col)
}

// ScreenLineUp moves one screen line up; without soft wrap this is a
// buffer line.
func (c *Cursor) ScreenLineUp() int { return c.LineUp() }

// ScreenLineDown moves one screen line down.
func (c *Cursor) ScreenLineDown() int { return c.LineDown() }

// ScreenLineBegin moves to the first column of the screen line.
func (c *Cursor) ScreenLineBegin() int {
	return c.view.txt.LineBegin(c.pos)
}

// ScreenLineMiddle moves to the middle column of the screen line.
func (c *Cursor) ScreenLineMiddle() int {
	return c.posAtCol(c.view.txt.LineBegin(c.pos), c.view.width/2)
}

// ScreenLineEnd moves to the last character of the screen line.
func (c *Cursor) ScreenLineEnd() int {
	return c.view.txt.LineLastChar(c.pos)
}

// SelectionStart anchors a selection at the cursor.
func (c *Cursor) SelectionStart() {
	c.anchor = c.pos
	c.selActive = true
	c.selExplicit = false
}

// SelectionGet returns the selected range: the explicit range when the
// executor set one, otherwise anchor through cursor inclusive.
func (c *Cursor) SelectionGet() text.Range {
	if c.selExplicit {
		return c.sel
	}
	if !c.selActive {
		return text.EmptyRange()
	}
	lo, hi := c.anchor, c.pos
	if lo > hi {
		lo, hi = hi, lo
	}
	return text.Range{Start: lo, End: c.view.txt.CharNext(hi)}
}

// SelectionSet overrides the selection with an explicit range and
// re-anchors at its start.
func (c *Cursor) SelectionSet(r text.Range) {
	c.sel = r
	if r.IsValid() {
		c.anchor = r.Start
	}
	c.selActive = true
	c.selExplicit = true
}

// SelectionSync moves the cursor to the end of the explicit selection
// and re-anchors at its start.
func (c *Cursor) SelectionSync() {
	if !c.selExplicit || !c.sel.IsValid() {
		return
	}
	c.anchor = c.sel.Start
	if c.sel.End > c.sel.Start {
		c.pos = c.view.txt.CharPrev(c.sel.End)
	} else {
		c.pos = c.sel.Start
	}
}

// SelectionClear drops the selection.
func (c *Cursor) SelectionClear() {
	c.selActive = false
	c.selExplicit = false
}

// HasSelection reports whether a selection is active.
func (c *Cursor) HasSelection() bool { return c.selActive }
