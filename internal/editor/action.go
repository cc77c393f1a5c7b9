package editor

import "regexp"

// MotionType flags classify motions and pending actions.
type MotionType uint8

const (
	// Charwise forces a character-wise range.
	Charwise MotionType = 1 << iota
	// Linewise rounds the affected range to whole lines.
	Linewise
	// Inclusive extends the range to include the character under the
	// target position.
	Inclusive
	// Idempotent stops count iteration after the first application.
	Idempotent
	// Jump records the prior position on the jumplist.
	Jump
)

// Arg is the argument a binding, operator or motion carries: a variant
// selector, a target byte, or free text.
type Arg struct {
	I int
	B byte
	S string
}

// Action accumulates one imminent command between keystrokes: count,
// register, operator, and motion or text object. It resets after
// execution.
type Action struct {
	Count    int
	Type     MotionType
	Op       *Operator
	Movement *Movement
	Textobj  *TextObject
	Reg      *Register
	Mark     byte
	Arg      Arg
	Macro    *Macro
}

// Count returns the pending count, 0 when none was typed.
func (ed *Editor) Count() int { return ed.action.Count }

// CountSet sets the pending count.
func (ed *Editor) CountSet(count int) { ed.action.Count = count }

// countDigit accumulates one decimal digit into the pending count.
func (ed *Editor) countDigit(d int) {
	ed.action.Count = ed.action.Count*10 + d
}

// MotionTypeSet forces the type of the pending action; `v` and `V` in
// operator-pending mode use it to toggle charwise/linewise.
func (ed *Editor) MotionTypeSet(t MotionType) { ed.action.Type = t }

// RegisterSelect routes the pending action to register name.
func (ed *Editor) RegisterSelect(name byte) {
	ed.action.Reg = ed.Register(name)
}

// OperatorEnter sets the pending operator. In a visual mode the action
// runs immediately over the selection. Typing the same operator twice
// (dd, yy, ...) turns the action linewise with an implicit next-line
// motion. Case, put and cursor-spawn variants are multiplexed onto one
// operator slot each, discriminated by the action argument.
func (ed *Editor) OperatorEnter(id OperatorID) bool {
	switch id {
	case OpCaseLower, OpCaseUpper, OpCaseSwap:
		ed.action.Arg.I = int(id)
		id = OpCaseSwap
	case OpCursorSOL, OpCursorEOL:
		ed.action.Arg.I = int(id)
		id = OpCursorSOL
	case OpPutAfter, OpPutAfterEnd, OpPutBefore, OpPutBeforeEnd:
		ed.action.Arg.I = int(id)
		id = OpPutAfter
	}
	op := ed.operator(id)
	if op == nil {
		return false
	}
	if ed.mode.IsVisual {
		ed.action.Op = op
		ed.actionDo(&ed.action)
		return true
	}
	// switch to operator mode to make the operator options and text
	// objects reachable
	ed.ModeSwitch(ModeOperator)
	if ed.action.Op == op {
		ed.action.Type = Linewise
		ed.Motion(MoveLineNext)
	} else {
		ed.action.Op = op
	}

	// put is not a real operator and needs no range to operate on
	if id == OpPutAfter {
		ed.Motion(MoveNop)
	}
	return true
}

// Motion sets the pending motion and executes the action. Motions that
// take an argument (searches, to/till targets, marks) read it from
// args. It returns false when the argument is unusable, in which case
// the action is aborted.
func (ed *Editor) Motion(id MotionID, args ...string) bool {
	switch id {
	case MoveWordStartNext:
		if ed.action.Op == ed.operator(OpChange) {
			id = MoveWordEndNext
		}
	case MoveLongwordStartNext:
		if ed.action.Op == ed.operator(OpChange) {
			id = MoveLongwordEndNext
		}
	case MoveSearchForward, MoveSearchBackward:
		if len(args) == 0 {
			return false
		}
		re, err := regexp.Compile(args[0])
		if err != nil {
			ed.action = Action{}
			return false
		}
		ed.searchPattern = re
		if id == MoveSearchForward {
			id = MoveSearchNext
		} else {
			id = MoveSearchPrev
		}
	case MoveRightTo, MoveLeftTo, MoveRightTill, MoveLeftTill:
		if len(args) == 0 || args[0] == "" {
			return false
		}
		ed.searchChar = args[0][0]
		ed.lastTotill = id
	case MoveTotillRepeat:
		if ed.lastTotill == 0 {
			return false
		}
		id = ed.lastTotill
	case MoveTotillReverse:
		switch ed.lastTotill {
		case MoveRightTo:
			id = MoveLeftTo
		case MoveLeftTo:
			id = MoveRightTo
		case MoveRightTill:
			id = MoveLeftTill
		case MoveLeftTill:
			id = MoveRightTill
		default:
			return false
		}
	case MoveMark, MoveMarkLine:
		if len(args) == 0 || args[0] == "" || !isMarkName(args[0][0]) {
			return false
		}
		ed.action.Mark = args[0][0]
	}

	m := ed.movement(id)
	if m == nil {
		return false
	}
	ed.action.Movement = m
	ed.actionDo(&ed.action)
	return true
}

// TextObject sets the pending text object and executes the action.
func (ed *Editor) TextObject(id TextObjectID) bool {
	obj := ed.textobject(id)
	if obj == nil {
		return false
	}
	ed.action.Textobj = obj
	ed.actionDo(&ed.action)
	return true
}
