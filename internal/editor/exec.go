package editor

import (
	"github.com/niklas-heer/ved/internal/text"
)

// actionDo executes the accumulated action once per cursor of the
// focused view, applies the operator to each resulting range, updates
// cursors and mode, snapshots the buffer and saves the action for
// repeat.
func (ed *Editor) actionDo(a *Action) {
	win := ed.win
	txt := win.File.Text
	v := win.View
	if a.Count < 1 {
		a.Count = 1
	}
	repeatable := a.Op != nil && ed.macroOperator == nil
	multipleCursors := v.CursorsCount() > 1
	linewise := a.Type&Charwise == 0 && (a.Type&Linewise != 0 ||
		(a.Movement != nil && a.Movement.Type&Linewise != 0) ||
		ed.mode.id == ModeVisualLine)

	// iterate over a snapshot: operators may dispose cursors
	for _, cursor := range v.Cursors() {
		pos := cursor.Pos()
		reg := a.Reg
		if reg == nil {
			reg = ed.Register(RegisterDefault)
		}
		if multipleCursors {
			reg = ed.cursorRegister(cursor)
		}

		c := OperatorContext{
			Count:    a.Count,
			Pos:      pos,
			NewPos:   text.EPOS,
			Range:    text.EmptyRange(),
			Reg:      reg,
			Linewise: linewise,
			Arg:      &a.Arg,
		}

		if a.Movement != nil {
			start := pos
			for i := 0; i < a.Count; i++ {
				switch move := a.Movement.move.(type) {
				case textMotion:
					pos = move(txt, pos)
				case cursorMotion:
					pos = move(cursor)
				case fileMotion:
					pos = move(ed, win.File, pos)
				case editorMotion:
					pos = move(ed, txt, pos)
				case viewMotion:
					pos = move(ed, v)
				case windowMotion:
					pos = move(ed, win, pos)
				}
				if pos == text.EPOS || a.Movement.Type&Idempotent != 0 {
					break
				}
			}

			if pos == text.EPOS {
				c.Range = text.Range{Start: start, End: start}
				pos = start
			} else {
				c.Range = text.NewRange(start, pos)
				c.NewPos = pos
			}

			if a.Op == nil {
				if a.Movement.Type&Charwise != 0 {
					cursor.ScrollTo(pos)
				} else {
					cursor.To(pos)
				}
				if ed.mode.IsVisual {
					c.Range = cursor.SelectionGet()
				}
				if a.Movement.Type&Jump != 0 {
					if pos != start {
						win.jumplistAdd(start)
					}
				} else if !a.Movement.walksJumplist {
					win.jumplistInvalidate()
				}
			} else if a.Movement.Type&Inclusive != 0 {
				c.Range.End = txt.CharNext(c.Range.End)
			}
		} else if a.Textobj != nil {
			if ed.mode.IsVisual {
				c.Range = cursor.SelectionGet()
			} else {
				c.Range = text.Range{Start: pos, End: pos}
			}
			for i := 0; i < a.Count; i++ {
				r := a.Textobj.Range(txt, pos)
				if !r.IsValid() {
					break
				}
				if a.Textobj.Outer {
					r.Start--
					r.End++
				}
				c.Range = c.Range.Union(r)
				if i < a.Count-1 {
					pos = c.Range.End + 1
				}
			}
		} else if ed.mode.IsVisual {
			c.Range = cursor.SelectionGet()
			if !c.Range.IsValid() {
				c.Range = text.Range{Start: pos, End: pos}
			}
		}

		if linewise && ed.mode.id != ModeVisual {
			c.Range = txt.RangeLinewise(c.Range)
		}
		if ed.mode.IsVisual {
			cursor.SelectionSet(c.Range)
			if ed.mode.id == ModeVisual || a.Textobj != nil {
				cursor.SelectionSync()
			}
		}

		if a.Op != nil {
			if newPos := a.Op.Func(ed, txt, &c); newPos != text.EPOS {
				cursor.To(newPos)
			} else {
				v.CursorsDispose(cursor)
			}
		}
	}

	if a.Op != nil {
		// visual repeat is not supported; still do something reasonable
		if ed.mode.IsVisual && a.Movement == nil && a.Textobj == nil {
			a.Movement = ed.movement(MoveNop)
		}

		// operator implementations must not switch modes themselves:
		// they run once per cursor
		switch {
		case a.Op == ed.operator(OpInsert) || a.Op == ed.operator(OpChange):
			ed.ModeSwitch(ModeInsert)
		case a.Op == ed.operator(OpReplace):
			ed.ModeSwitch(ModeReplace)
		case ed.mode.id == ModeOperator:
			ed.modeSet(ed.modePrev)
		case ed.mode.IsVisual:
			ed.ModeSwitch(ModeNormal)
		}
		txt.Snapshot()
		ed.Draw()
	}

	if a != &ed.actionPrev {
		if repeatable {
			if a.Macro == nil {
				a.Macro = ed.macroOperator
			}
			ed.actionPrev = *a
		}
		*a = Action{}
	}
}

// Repeat re-runs the last repeatable action. A count typed before the
// repeat replaces the stored count. For insert and replace the count
// applies to the recorded keystrokes, not the motion.
func (ed *Editor) Repeat() {
	count := ed.action.Count
	macro := ed.actionPrev.Macro
	if macro == &ed.opMacroSlot {
		// stabilize: the operator macro slot is overwritten by the
		// next insert, so keep a private copy for future repeats
		ed.repeatSlot.Reset()
		ed.repeatSlot.Append(ed.opMacroSlot.String())
		macro = &ed.repeatSlot
		ed.actionPrev.Macro = macro
	}
	if count != 0 {
		ed.actionPrev.Count = count
	}
	count = ed.actionPrev.Count
	// for insert/replace the count repeats the macro, not the motion
	if ed.actionPrev.Op == ed.operator(OpInsert) || ed.actionPrev.Op == ed.operator(OpReplace) {
		ed.actionPrev.Count = 1
	}
	ed.actionDo(&ed.actionPrev)
	ed.actionPrev.Count = count
	if macro != nil {
		mode := ed.mode
		actionPrev := ed.actionPrev
		count = actionPrev.Count
		if count < 1 || actionPrev.Op == ed.operator(OpChange) {
			count = 1
		}
		for i := 0; i < count; i++ {
			ed.modeSet(mode)
			ed.macroReplay(macro)
		}
		ed.actionPrev = actionPrev
	}
	ed.action = Action{}
}
