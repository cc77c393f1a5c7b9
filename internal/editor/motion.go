package editor

import (
	"regexp"

	"github.com/niklas-heer/ved/internal/text"
	"github.com/niklas-heer/ved/internal/view"
)

// MotionID identifies a motion in the catalogue.
type MotionID int

const (
	MoveLineUp MotionID = iota + 1
	MoveLineDown
	MoveScreenLineUp
	MoveScreenLineDown
	MoveScreenLineBegin
	MoveScreenLineMiddle
	MoveScreenLineEnd
	MoveLinePrev
	MoveLineBegin
	MoveLineStart
	MoveLineFinish
	MoveLineLastChar
	MoveLineEnd
	MoveLineNext
	MoveLine
	MoveColumn
	MoveCharPrev
	MoveCharNext
	MoveLineCharPrev
	MoveLineCharNext
	MoveWordStartPrev
	MoveWordStartNext
	MoveWordEndPrev
	MoveWordEndNext
	MoveLongwordStartPrev
	MoveLongwordStartNext
	MoveLongwordEndPrev
	MoveLongwordEndNext
	MoveSentencePrev
	MoveSentenceNext
	MoveParagraphPrev
	MoveParagraphNext
	MoveFunctionStartPrev
	MoveFunctionStartNext
	MoveFunctionEndPrev
	MoveFunctionEndNext
	MoveBracketMatch
	MoveFileBegin
	MoveFileEnd
	MoveLeftTo
	MoveRightTo
	MoveLeftTill
	MoveRightTill
	MoveMark
	MoveMarkLine
	MoveSearchWordForward
	MoveSearchWordBackward
	MoveSearchNext
	MoveSearchPrev
	MoveSearchForward
	MoveSearchBackward
	MoveTotillRepeat
	MoveTotillReverse
	MoveWindowLineTop
	MoveWindowLineMiddle
	MoveWindowLineBottom
	MoveChangelistNext
	MoveChangelistPrev
	MoveJumplistNext
	MoveJumplistPrev
	MoveNop
)

// Motions read different scopes, so the catalogue stores a small sum
// type: each motion is exactly one of the six variants below and the
// executor matches on which one it got.
type motionFunc interface {
	isMotionFunc()
}

type (
	// textMotion is a pure function over the buffer.
	textMotion func(*text.Text, int) int
	// cursorMotion needs screen geometry from the cursor's view.
	cursorMotion func(*view.Cursor) int
	// fileMotion needs per-file state (marks).
	fileMotion func(*Editor, *File, int) int
	// editorMotion needs editor-wide state (search pattern, counts).
	editorMotion func(*Editor, *text.Text, int) int
	// viewMotion positions relative to the viewport.
	viewMotion func(*Editor, *view.View) int
	// windowMotion walks per-window lists (jumplist, changelist).
	windowMotion func(*Editor, *Win, int) int
)

func (textMotion) isMotionFunc()   {}
func (cursorMotion) isMotionFunc() {}
func (fileMotion) isMotionFunc()   {}
func (editorMotion) isMotionFunc() {}
func (viewMotion) isMotionFunc()   {}
func (windowMotion) isMotionFunc() {}

// Movement is one catalogue entry: the motion function plus its type
// flags. walksJumplist marks the two motions that navigate the
// jumplist itself; they neither push nor invalidate it.
type Movement struct {
	Type          MotionType
	move          motionFunc
	walksJumplist bool
}

var movements = map[MotionID]*Movement{
	MoveLineUp:             {move: cursorMotion((*view.Cursor).LineUp), Type: Linewise},
	MoveLineDown:           {move: cursorMotion((*view.Cursor).LineDown), Type: Linewise},
	MoveScreenLineUp:       {move: cursorMotion((*view.Cursor).ScreenLineUp)},
	MoveScreenLineDown:     {move: cursorMotion((*view.Cursor).ScreenLineDown)},
	MoveScreenLineBegin:    {move: cursorMotion((*view.Cursor).ScreenLineBegin), Type: Charwise},
	MoveScreenLineMiddle:   {move: cursorMotion((*view.Cursor).ScreenLineMiddle), Type: Charwise},
	MoveScreenLineEnd:      {move: cursorMotion((*view.Cursor).ScreenLineEnd), Type: Charwise | Inclusive},
	MoveLinePrev:           {move: textMotion((*text.Text).LinePrev)},
	MoveLineBegin:          {move: textMotion((*text.Text).LineBegin)},
	MoveLineStart:          {move: textMotion((*text.Text).LineStart)},
	MoveLineFinish:         {move: textMotion((*text.Text).LineFinish), Type: Inclusive},
	MoveLineLastChar:       {move: textMotion((*text.Text).LineLastChar), Type: Inclusive},
	MoveLineEnd:            {move: textMotion((*text.Text).LineEnd)},
	MoveLineNext:           {move: textMotion((*text.Text).LineNext)},
	MoveLine:               {move: editorMotion(gotoLine), Type: Linewise | Idempotent | Jump},
	MoveColumn:             {move: editorMotion(gotoColumn), Type: Charwise | Idempotent},
	MoveCharPrev:           {move: textMotion((*text.Text).CharPrev), Type: Charwise},
	MoveCharNext:           {move: textMotion((*text.Text).CharNext), Type: Charwise},
	MoveLineCharPrev:       {move: textMotion((*text.Text).LineCharPrev), Type: Charwise},
	MoveLineCharNext:       {move: textMotion((*text.Text).LineCharNext), Type: Charwise},
	MoveWordStartPrev:      {move: textMotion((*text.Text).WordStartPrev), Type: Charwise},
	MoveWordStartNext:      {move: textMotion((*text.Text).WordStartNext), Type: Charwise},
	MoveWordEndPrev:        {move: textMotion((*text.Text).WordEndPrev), Type: Charwise | Inclusive},
	MoveWordEndNext:        {move: textMotion((*text.Text).WordEndNext), Type: Charwise | Inclusive},
	MoveLongwordStartPrev:  {move: textMotion((*text.Text).LongwordStartPrev), Type: Charwise},
	MoveLongwordStartNext:  {move: textMotion((*text.Text).LongwordStartNext), Type: Charwise},
	MoveLongwordEndPrev:    {move: textMotion((*text.Text).LongwordEndPrev), Type: Charwise | Inclusive},
	MoveLongwordEndNext:    {move: textMotion((*text.Text).LongwordEndNext), Type: Charwise | Inclusive},
	MoveSentencePrev:       {move: textMotion((*text.Text).SentencePrev), Type: Linewise},
	MoveSentenceNext:       {move: textMotion((*text.Text).SentenceNext), Type: Linewise},
	MoveParagraphPrev:      {move: textMotion((*text.Text).ParagraphPrev), Type: Linewise | Jump},
	MoveParagraphNext:      {move: textMotion((*text.Text).ParagraphNext), Type: Linewise | Jump},
	MoveFunctionStartPrev:  {move: textMotion((*text.Text).FunctionStartPrev), Type: Linewise | Jump},
	MoveFunctionStartNext:  {move: textMotion((*text.Text).FunctionStartNext), Type: Linewise | Jump},
	MoveFunctionEndPrev:    {move: textMotion((*text.Text).FunctionEndPrev), Type: Linewise | Jump},
	MoveFunctionEndNext:    {move: textMotion((*text.Text).FunctionEndNext), Type: Linewise | Jump},
	MoveBracketMatch:       {move: textMotion((*text.Text).BracketMatch), Type: Inclusive | Jump},
	MoveFileBegin:          {move: textMotion((*text.Text).Begin), Type: Linewise | Jump},
	MoveFileEnd:            {move: textMotion((*text.Text).End), Type: Linewise | Jump},
	MoveLeftTo:             {move: editorMotion(toLeft)},
	MoveRightTo:            {move: editorMotion(toRight), Type: Inclusive},
	MoveLeftTill:           {move: editorMotion(tillLeft)},
	MoveRightTill:          {move: editorMotion(tillRight), Type: Inclusive},
	MoveMark:               {move: fileMotion(markGoto), Type: Jump | Idempotent},
	MoveMarkLine:           {move: fileMotion(markLineGoto), Type: Linewise | Jump | Idempotent},
	MoveSearchWordForward:  {move: editorMotion(searchWordForward), Type: Jump},
	MoveSearchWordBackward: {move: editorMotion(searchWordBackward), Type: Jump},
	MoveSearchNext:         {move: editorMotion(searchNext), Type: Jump},
	MoveSearchPrev:         {move: editorMotion(searchPrev), Type: Jump},
	MoveWindowLineTop:      {move: viewMotion(viewLinesTop), Type: Linewise | Jump | Idempotent},
	MoveWindowLineMiddle:   {move: viewMotion(viewLinesMiddle), Type: Linewise | Jump | Idempotent},
	MoveWindowLineBottom:   {move: viewMotion(viewLinesBottom), Type: Linewise | Jump | Idempotent},
	MoveChangelistNext:     {move: windowMotion(changelistNext), Type: Inclusive},
	MoveChangelistPrev:     {move: windowMotion(changelistPrev), Type: Inclusive},
	MoveJumplistNext:       {move: windowMotion(jumplistNext), Type: Inclusive, walksJumplist: true},
	MoveJumplistPrev:       {move: windowMotion(jumplistPrev), Type: Inclusive, walksJumplist: true},
	MoveNop:                {move: windowMotion(windowNop), Type: Idempotent},
}

func (ed *Editor) movement(id MotionID) *Movement {
	return movements[id]
}

// goto the 1-based line given by the action count, default first line
func gotoLine(ed *Editor, txt *text.Text, pos int) int {
	return txt.PosByLineno(ed.action.Count)
}

// goto the action.count-th byte column on the current line
func gotoColumn(ed *Editor, txt *text.Text, pos int) int {
	return txt.LineOffset(pos, ed.action.Count)
}

func toRight(ed *Editor, txt *text.Text, pos int) int {
	hit := txt.LineFindNext(pos+1, ed.searchChar)
	if b, ok := txt.ByteGet(hit); !ok || b != ed.searchChar {
		return pos
	}
	return hit
}

func tillRight(ed *Editor, txt *text.Text, pos int) int {
	if hit := toRight(ed, txt, pos); hit != pos {
		return txt.CharPrev(hit)
	}
	return pos
}

func toLeft(ed *Editor, txt *text.Text, pos int) int {
	if pos == 0 {
		return pos
	}
	hit := txt.LineFindPrev(pos-1, ed.searchChar)
	if b, ok := txt.ByteGet(hit); !ok || b != ed.searchChar || hit >= pos {
		return pos
	}
	return hit
}

func tillLeft(ed *Editor, txt *text.Text, pos int) int {
	if hit := toLeft(ed, txt, pos); hit != pos {
		return txt.CharNext(hit)
	}
	return pos
}

func markGoto(ed *Editor, file *File, pos int) int {
	mark, ok := file.Marks[ed.action.Mark]
	if !ok {
		return text.EPOS
	}
	return file.Text.MarkGet(mark)
}

func markLineGoto(ed *Editor, file *File, pos int) int {
	p := markGoto(ed, file, pos)
	if p == text.EPOS {
		return p
	}
	return file.Text.LineStart(p)
}

func searchNext(ed *Editor, txt *text.Text, pos int) int {
	if p := txt.SearchForward(pos, ed.searchPattern); p != text.EPOS {
		return p
	}
	return pos
}

func searchPrev(ed *Editor, txt *text.Text, pos int) int {
	if p := txt.SearchBackward(pos, ed.searchPattern); p != text.EPOS {
		return p
	}
	return pos
}

func searchWord(ed *Editor, txt *text.Text, pos int) bool {
	word := txt.ObjectWord(pos)
	if !word.IsValid() || word.Size() == 0 {
		return false
	}
	pattern := `\b` + regexp.QuoteMeta(string(txt.BytesGet(word.Start, word.Size()))) + `\b`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	ed.searchPattern = re
	return true
}

func searchWordForward(ed *Editor, txt *text.Text, pos int) int {
	if !searchWord(ed, txt, pos) {
		return pos
	}
	return searchNext(ed, txt, pos)
}

func searchWordBackward(ed *Editor, txt *text.Text, pos int) int {
	if !searchWord(ed, txt, pos) {
		return pos
	}
	return searchPrev(ed, txt, pos)
}

func viewLinesTop(ed *Editor, v *view.View) int {
	return v.ScreenLineGoto(ed.action.Count)
}

func viewLinesMiddle(ed *Editor, v *view.View) int {
	return v.ScreenLineGoto(v.Height() / 2)
}

func viewLinesBottom(ed *Editor, v *view.View) int {
	n := ed.action.Count
	if n < 1 {
		n = 1
	}
	return v.ScreenLineGoto(v.Height() - n + 1)
}

func windowNop(ed *Editor, win *Win, pos int) int {
	return pos
}
