package editor

import (
	"github.com/niklas-heer/ved/internal/text"
	"github.com/niklas-heer/ved/internal/util"
)

// OperatorID identifies an operator. Case, put and cursor-spawn
// variants share one table slot each and are discriminated by the
// context argument.
type OperatorID int

const (
	OpDelete OperatorID = iota + 1
	OpChange
	OpYank
	OpPutAfter
	OpShiftRight
	OpShiftLeft
	OpCaseSwap
	OpJoin
	OpInsert
	OpReplace
	OpCursorSOL

	// variants multiplexed onto the slots above
	OpCaseLower
	OpCaseUpper
	OpPutAfterEnd
	OpPutBefore
	OpPutBeforeEnd
	OpCursorEOL
)

// OperatorContext carries everything an operator needs for one cursor:
// the count, the origin position, the motion result, the affected
// range, the target register and the variant argument.
type OperatorContext struct {
	Count    int
	Pos      int
	NewPos   int
	Range    text.Range
	Reg      *Register
	Linewise bool
	Arg      *Arg
}

// Operator applies an edit to a range and returns the new cursor
// position, or EPOS to dispose the cursor.
type Operator struct {
	id   OperatorID
	Func func(*Editor, *text.Text, *OperatorContext) int
}

var operators = map[OperatorID]*Operator{
	OpDelete:     {id: OpDelete, Func: opDelete},
	OpChange:     {id: OpChange, Func: opChange},
	OpYank:       {id: OpYank, Func: opYank},
	OpPutAfter:   {id: OpPutAfter, Func: opPut},
	OpShiftRight: {id: OpShiftRight, Func: opShiftRight},
	OpShiftLeft:  {id: OpShiftLeft, Func: opShiftLeft},
	OpCaseSwap:   {id: OpCaseSwap, Func: opCaseChange},
	OpJoin:       {id: OpJoin, Func: opJoin},
	OpInsert:     {id: OpInsert, Func: opInsert},
	OpReplace:    {id: OpReplace, Func: opReplace},
	OpCursorSOL:  {id: OpCursorSOL, Func: opCursor},
}

func (ed *Editor) operator(id OperatorID) *Operator {
	return operators[id]
}

func opDelete(ed *Editor, txt *text.Text, c *OperatorContext) int {
	c.Reg.Linewise = c.Linewise
	c.Reg.Put(txt, c.Range)
	if c.Reg.IsClipboard() {
		util.CopyToClipboard(string(c.Reg.Data))
	}
	txt.DeleteRange(c.Range)
	pos := c.Range.Start
	if c.Linewise && pos == txt.Size() {
		pos = txt.LineBegin(txt.LinePrev(pos))
	}
	return pos
}

func opChange(ed *Editor, txt *text.Text, c *OperatorContext) int {
	opDelete(ed, txt, c)
	ed.macroOperatorRecord()
	return c.Range.Start
}

func opYank(ed *Editor, txt *text.Text, c *OperatorContext) int {
	c.Reg.Linewise = c.Linewise
	c.Reg.Put(txt, c.Range)
	if c.Reg.IsClipboard() {
		util.CopyToClipboard(string(c.Reg.Data))
	}
	return c.Pos
}

func opPut(ed *Editor, txt *text.Text, c *OperatorContext) int {
	if c.Reg.IsClipboard() {
		if s := util.PasteFromClipboard(); s != "" {
			c.Reg.Data = []byte(s)
		}
	}
	pos := c.Pos
	switch OperatorID(c.Arg.I) {
	case OpPutAfter, OpPutAfterEnd:
		if c.Reg.Linewise {
			pos = txt.LineNext(pos)
		} else {
			pos = txt.CharNext(pos)
		}
	case OpPutBefore, OpPutBeforeEnd:
		if c.Reg.Linewise {
			pos = txt.LineBegin(pos)
		}
	}

	for i := 0; i < c.Count; i++ {
		txt.Insert(pos, c.Reg.Data)
		pos += len(c.Reg.Data)
	}

	if c.Reg.Linewise {
		switch OperatorID(c.Arg.I) {
		case OpPutAfterEnd, OpPutBeforeEnd:
			pos = txt.LineStart(pos)
		case OpPutAfter:
			pos = txt.LineStart(txt.LineNext(c.Pos))
		case OpPutBefore:
			pos = txt.LineStart(c.Pos)
		}
	} else {
		switch OperatorID(c.Arg.I) {
		case OpPutAfter, OpPutBefore:
			pos = txt.CharPrev(pos)
		}
	}

	return pos
}

func opShiftRight(ed *Editor, txt *text.Text, c *OperatorContext) int {
	pos := txt.LineBegin(c.Range.End)
	tab := ed.expandTab()

	// if the range ends at the begin of a line, skip that line
	if pos == c.Range.End {
		pos = txt.LinePrev(pos)
	}

	for {
		prev := txt.LineBegin(pos)
		pos = prev
		txt.Insert(pos, []byte(tab))
		pos = txt.LinePrev(pos)
		if pos < c.Range.Start || pos == prev {
			break
		}
	}

	return c.Pos + len(tab)
}

func opShiftLeft(ed *Editor, txt *text.Text, c *OperatorContext) int {
	pos := txt.LineBegin(c.Range.End)
	tabwidth := ed.TabWidth
	tablen := 0

	if pos == c.Range.End {
		pos = txt.LinePrev(pos)
	}

	for {
		prev := txt.LineBegin(pos)
		pos = prev
		it := txt.Iterator(pos)
		n := 0
		if b, ok := it.Byte(); ok && b == '\t' {
			n = 1
		} else {
			for {
				b, ok := it.Byte()
				if !ok || b != ' ' {
					break
				}
				n++
				it.NextByte()
			}
		}
		tablen = n
		if tablen > tabwidth {
			tablen = tabwidth
		}
		txt.Delete(pos, tablen)
		pos = txt.LinePrev(pos)
		if pos < c.Range.Start || pos == prev {
			break
		}
	}

	return c.Pos - tablen
}

func opCaseChange(ed *Editor, txt *text.Text, c *OperatorContext) int {
	buf := txt.BytesGet(c.Range.Start, c.Range.Size())
	if len(buf) == 0 {
		return c.Pos
	}
	for i, b := range buf {
		if b >= 0x80 {
			continue
		}
		switch OperatorID(c.Arg.I) {
		case OpCaseSwap:
			if 'a' <= b && b <= 'z' {
				buf[i] = b - 'a' + 'A'
			} else if 'A' <= b && b <= 'Z' {
				buf[i] = b - 'A' + 'a'
			}
		case OpCaseUpper:
			if 'a' <= b && b <= 'z' {
				buf[i] = b - 'a' + 'A'
			}
		default:
			if 'A' <= b && b <= 'Z' {
				buf[i] = b - 'A' + 'a'
			}
		}
	}
	txt.Delete(c.Range.Start, len(buf))
	txt.Insert(c.Range.Start, buf)
	return c.Pos
}

func opCursor(ed *Editor, txt *text.Text, c *OperatorContext) int {
	v := ed.win.View
	r := txt.RangeLinewise(c.Range)
	for line := txt.RangeLineFirst(r); line != text.EPOS; line = txt.RangeLineNext(r, line) {
		pos := txt.LineStart(line)
		if OperatorID(c.Arg.I) == OpCursorEOL {
			pos = txt.LineFinish(line)
		}
		cursor := v.CursorsNew(pos)
		cursor.To(pos)
	}
	return text.EPOS
}

func opJoin(ed *Editor, txt *text.Text, c *OperatorContext) int {
	pos := txt.LineBegin(c.Range.End)

	// when operator and range are both linewise, skip the last line break
	if c.Linewise && txt.RangeIsLinewise(c.Range) {
		prev := txt.LinePrev(pos)
		prevPrev := txt.LinePrev(prev)
		if prevPrev >= c.Range.Start {
			pos = prev
		}
	}

	for {
		prev := pos
		end := txt.LineStart(pos)
		pos = txt.CharNext(txt.LineFinish(txt.LinePrev(end)))
		if pos >= c.Range.Start && end > pos {
			txt.Delete(pos, end-pos)
			txt.Insert(pos, []byte(" "))
		} else {
			break
		}
		if pos == prev {
			break
		}
	}

	return c.Range.Start
}

func opInsert(ed *Editor, txt *text.Text, c *OperatorContext) int {
	ed.macroOperatorRecord()
	if c.NewPos != text.EPOS {
		return c.NewPos
	}
	return c.Pos
}

func opReplace(ed *Editor, txt *text.Text, c *OperatorContext) int {
	ed.macroOperatorRecord()
	if c.NewPos != text.EPOS {
		return c.NewPos
	}
	return c.Pos
}
