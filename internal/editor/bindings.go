package editor

import "github.com/niklas-heer/ved/internal/text"

// Binding constructors. Most keys dispatch through small closures; keys
// that take an argument (f, t, r, q, @, m, ", ' and `) consume the next
// token and report "need more input" until it arrives.

func bindFunc(fn KeyActionFunc) *KeyBinding {
	return &KeyBinding{Action: &KeyAction{Func: fn}}
}

func bindAlias(alias string) *KeyBinding {
	return &KeyBinding{Alias: alias}
}

func bindMotion(id MotionID) *KeyBinding {
	return bindFunc(func(ed *Editor, keys string, _ Arg) (int, bool) {
		ed.Motion(id)
		return 0, true
	})
}

func bindOperator(id OperatorID) *KeyBinding {
	return bindFunc(func(ed *Editor, keys string, _ Arg) (int, bool) {
		ed.OperatorEnter(id)
		return 0, true
	})
}

func bindTextObject(id TextObjectID) *KeyBinding {
	return bindFunc(func(ed *Editor, keys string, _ Arg) (int, bool) {
		ed.TextObject(id)
		return 0, true
	})
}

func bindMode(id ModeID) *KeyBinding {
	return bindFunc(func(ed *Editor, keys string, _ Arg) (int, bool) {
		ed.ModeSwitch(id)
		return 0, true
	})
}

// bindMotionChar builds to/till motions: the next key is the target
// character.
func bindMotionChar(id MotionID) *KeyBinding {
	return bindFunc(func(ed *Editor, keys string, _ Arg) (int, bool) {
		if keys == "" {
			return 0, false
		}
		n := ed.KeyNext(keys)
		key := keys[:n]
		if len(key) > 1 {
			// special keys make no to/till target
			ed.action = Action{}
			return n, true
		}
		ed.Motion(id, key)
		return n, true
	})
}

// bindMotionMark builds mark motions: the next key names the mark.
func bindMotionMark(id MotionID) *KeyBinding {
	return bindFunc(func(ed *Editor, keys string, _ Arg) (int, bool) {
		if keys == "" {
			return 0, false
		}
		n := ed.KeyNext(keys)
		ed.Motion(id, keys[:n])
		return n, true
	})
}

func bindCountDigit(d int) *KeyBinding {
	return bindFunc(func(ed *Editor, keys string, _ Arg) (int, bool) {
		ed.countDigit(d)
		return 0, true
	})
}

func registerDefaultBindings(ed *Editor) {
	basic := map[string]*KeyBinding{
		"<Up>":    bindMotion(MoveLineUp),
		"<Down>":  bindMotion(MoveLineDown),
		"<Left>":  bindMotion(MoveCharPrev),
		"<Right>": bindMotion(MoveCharNext),
		"<Home>":  bindMotion(MoveLineBegin),
		"<End>":   bindMotion(MoveLineEnd),
	}

	move := map[string]*KeyBinding{
		" ":     bindMotion(MoveCharNext),
		"h":     bindMotion(MoveLineCharPrev),
		"l":     bindMotion(MoveLineCharNext),
		"j":     bindMotion(MoveLineDown),
		"k":     bindMotion(MoveLineUp),
		"gj":    bindMotion(MoveScreenLineDown),
		"gk":    bindMotion(MoveScreenLineUp),
		"g0":    bindMotion(MoveScreenLineBegin),
		"gm":    bindMotion(MoveScreenLineMiddle),
		"g$":    bindMotion(MoveScreenLineEnd),
		"0":     bindFunc(keyZero),
		"^":     bindMotion(MoveLineStart),
		"$":     bindMotion(MoveLineLastChar),
		"g_":    bindMotion(MoveLineFinish),
		"w":     bindMotion(MoveWordStartNext),
		"b":     bindMotion(MoveWordStartPrev),
		"e":     bindMotion(MoveWordEndNext),
		"ge":    bindMotion(MoveWordEndPrev),
		"W":     bindMotion(MoveLongwordStartNext),
		"B":     bindMotion(MoveLongwordStartPrev),
		"E":     bindMotion(MoveLongwordEndNext),
		"gE":    bindMotion(MoveLongwordEndPrev),
		"(":     bindMotion(MoveSentencePrev),
		")":     bindMotion(MoveSentenceNext),
		"{":     bindMotion(MoveParagraphPrev),
		"}":     bindMotion(MoveParagraphNext),
		"[[":    bindMotion(MoveFunctionStartPrev),
		"]]":    bindMotion(MoveFunctionStartNext),
		"[]":    bindMotion(MoveFunctionEndPrev),
		"][":    bindMotion(MoveFunctionEndNext),
		"%":     bindMotion(MoveBracketMatch),
		"gg":    bindFunc(keyGotoFileBegin),
		"G":     bindFunc(keyGotoFileEnd),
		"|":     bindMotion(MoveColumn),
		"f":     bindMotionChar(MoveRightTo),
		"F":     bindMotionChar(MoveLeftTo),
		"t":     bindMotionChar(MoveRightTill),
		"T":     bindMotionChar(MoveLeftTill),
		";":     bindMotion(MoveTotillRepeat),
		",":     bindMotion(MoveTotillReverse),
		"`":     bindMotionMark(MoveMark),
		"'":     bindMotionMark(MoveMarkLine),
		"n":     bindMotion(MoveSearchNext),
		"N":     bindMotion(MoveSearchPrev),
		"*":     bindMotion(MoveSearchWordForward),
		"#":     bindMotion(MoveSearchWordBackward),
		"H":     bindMotion(MoveWindowLineTop),
		"M":     bindMotion(MoveWindowLineMiddle),
		"L":     bindMotion(MoveWindowLineBottom),
		"g;":    bindMotion(MoveChangelistPrev),
		"g,":    bindMotion(MoveChangelistNext),
		"<C-o>": bindMotion(MoveJumplistPrev),
		"<C-i>": bindMotion(MoveJumplistNext),
		"/":     bindFunc(keyPromptSearchForward),
		"?":     bindFunc(keyPromptSearchBackward),
		"1":     bindCountDigit(1),
		"2":     bindCountDigit(2),
		"3":     bindCountDigit(3),
		"4":     bindCountDigit(4),
		"5":     bindCountDigit(5),
		"6":     bindCountDigit(6),
		"7":     bindCountDigit(7),
		"8":     bindCountDigit(8),
		"9":     bindCountDigit(9),
	}

	textobj := map[string]*KeyBinding{
		"iw":  bindTextObject(TextObjectInnerWord),
		"aw":  bindTextObject(TextObjectOuterWord),
		"iW":  bindTextObject(TextObjectInnerLongword),
		"aW":  bindTextObject(TextObjectOuterLongword),
		"is":  bindTextObject(TextObjectSentence),
		"as":  bindTextObject(TextObjectSentence),
		"ip":  bindTextObject(TextObjectParagraph),
		"ap":  bindTextObject(TextObjectParagraph),
		"i[":  bindTextObject(TextObjectInnerSquareBracket),
		"a[":  bindTextObject(TextObjectOuterSquareBracket),
		"i]":  bindTextObject(TextObjectInnerSquareBracket),
		"a]":  bindTextObject(TextObjectOuterSquareBracket),
		"i(":  bindTextObject(TextObjectInnerParen),
		"a(":  bindTextObject(TextObjectOuterParen),
		"i)":  bindTextObject(TextObjectInnerParen),
		"a)":  bindTextObject(TextObjectOuterParen),
		"ib":  bindTextObject(TextObjectInnerParen),
		"ab":  bindTextObject(TextObjectOuterParen),
		"i{":  bindTextObject(TextObjectInnerCurlyBracket),
		"a{":  bindTextObject(TextObjectOuterCurlyBracket),
		"i}":  bindTextObject(TextObjectInnerCurlyBracket),
		"a}":  bindTextObject(TextObjectOuterCurlyBracket),
		"iB":  bindTextObject(TextObjectInnerCurlyBracket),
		"aB":  bindTextObject(TextObjectOuterCurlyBracket),
		"i<":  bindTextObject(TextObjectInnerAngleBracket),
		"a<":  bindTextObject(TextObjectOuterAngleBracket),
		"i>":  bindTextObject(TextObjectInnerAngleBracket),
		"a>":  bindTextObject(TextObjectOuterAngleBracket),
		"i\"": bindTextObject(TextObjectInnerQuote),
		"a\"": bindTextObject(TextObjectOuterQuote),
		"i'":  bindTextObject(TextObjectInnerSingleQuote),
		"a'":  bindTextObject(TextObjectOuterSingleQuote),
		"i`":  bindTextObject(TextObjectInnerBacktick),
		"a`":  bindTextObject(TextObjectOuterBacktick),
		"ie":  bindTextObject(TextObjectInnerEntire),
		"ae":  bindTextObject(TextObjectOuterEntire),
		"if":  bindTextObject(TextObjectInnerFunction),
		"af":  bindTextObject(TextObjectOuterFunction),
		"il":  bindTextObject(TextObjectInnerLine),
		"al":  bindTextObject(TextObjectOuterLine),
	}

	operatorOption := map[string]*KeyBinding{
		"v": bindFunc(func(ed *Editor, keys string, _ Arg) (int, bool) {
			ed.MotionTypeSet(Charwise)
			return 0, true
		}),
		"V": bindFunc(func(ed *Editor, keys string, _ Arg) (int, bool) {
			ed.MotionTypeSet(Linewise)
			return 0, true
		}),
	}

	operator := map[string]*KeyBinding{
		"d":     bindOperator(OpDelete),
		"c":     bindOperator(OpChange),
		"y":     bindOperator(OpYank),
		"p":     bindOperator(OpPutAfter),
		"P":     bindOperator(OpPutBefore),
		"gp":    bindOperator(OpPutAfterEnd),
		"gP":    bindOperator(OpPutBeforeEnd),
		">":     bindOperator(OpShiftRight),
		"<":     bindOperator(OpShiftLeft),
		"gu":    bindOperator(OpCaseLower),
		"gU":    bindOperator(OpCaseUpper),
		"g~":    bindOperator(OpCaseSwap),
		"\"":    bindFunc(keyRegisterSelect),
		"<Esc>": bindFunc(keyOperatorAbort),
	}

	normal := map[string]*KeyBinding{
		"i":      bindFunc(keyInsertHere),
		"a":      bindFunc(keyInsertAfter),
		"I":      bindFunc(keyInsertLineStart),
		"A":      bindFunc(keyInsertLineEnd),
		"o":      bindFunc(keyOpenBelow),
		"O":      bindFunc(keyOpenAbove),
		"R":      bindFunc(keyReplaceMode),
		"r":      bindFunc(keyReplaceChar),
		"~":      bindFunc(keyCaseSwapChar),
		"J":      bindFunc(keyJoinLines),
		"u":      bindFunc(keyUndo),
		"<C-r>":  bindFunc(keyRedo),
		".":      bindFunc(keyRepeat),
		"q":      bindFunc(keyMacroRecord),
		"@":      bindFunc(keyMacroReplay),
		"m":      bindFunc(keyMarkSet),
		"v":      bindMode(ModeVisual),
		"V":      bindMode(ModeVisualLine),
		":":      bindFunc(keyPromptCommand),
		"x":      bindAlias("dl"),
		"X":      bindAlias("dh"),
		"D":      bindAlias("d$"),
		"C":      bindAlias("c$"),
		"Y":      bindAlias("yy"),
		"s":      bindAlias("cl"),
		"S":      bindAlias("cc"),
		"ZZ":     bindFunc(keyWriteQuit),
		"ZQ":     bindFunc(keyQuit),
		"<C-w>s": bindFunc(keyWindowSplit),
		"<C-w>w": bindFunc(keyWindowNext),
		"<C-w>W": bindFunc(keyWindowPrev),
		"<C-w>q": bindFunc(keyWindowClose),
		"<C-z>":  bindFunc(keySuspend),
		"<Esc>":  bindFunc(keyNormalEscape),
	}

	visual := map[string]*KeyBinding{
		"v":     bindMode(ModeNormal),
		"V":     bindMode(ModeVisualLine),
		"<Esc>": bindMode(ModeNormal),
		":":     bindFunc(keyPromptCommand),
	}

	visualLine := map[string]*KeyBinding{
		"v": bindMode(ModeVisual),
		"V": bindMode(ModeNormal),
		"I": bindOperator(OpCursorSOL),
		"A": bindOperator(OpCursorEOL),
	}

	readline := map[string]*KeyBinding{
		"<Esc>":       bindFunc(keyReadlineEscape),
		"<Backspace>": bindFunc(keyBackspace),
		"<BS>":        bindAlias("<Backspace>"),
		"<C-h>":       bindAlias("<Backspace>"),
		"<C-u>":       bindFunc(keyDeleteLineBegin),
		"<C-w>":       bindFunc(keyDeleteWordPrev),
	}

	insert := map[string]*KeyBinding{
		"<Enter>": bindFunc(keyInsertNewline),
		"<Tab>":   bindFunc(keyInsertTab),
	}

	prompt := map[string]*KeyBinding{
		"<Enter>": bindFunc(keyPromptEnter),
	}

	maps := []struct {
		mode     ModeID
		bindings map[string]*KeyBinding
	}{
		{ModeBasic, basic},
		{ModeMove, move},
		{ModeTextObject, textobj},
		{ModeOperatorOption, operatorOption},
		{ModeOperator, operator},
		{ModeNormal, normal},
		{ModeVisual, visual},
		{ModeVisualLine, visualLine},
		{ModeReadline, readline},
		{ModeInsert, insert},
		{ModePrompt, prompt},
	}
	for _, m := range maps {
		for key, binding := range m.bindings {
			ed.ModeMap(m.mode, key, binding)
		}
	}
}

// keyZero is line begin, or a count digit when a count is pending.
func keyZero(ed *Editor, keys string, _ Arg) (int, bool) {
	if ed.action.Count > 0 {
		ed.countDigit(0)
	} else {
		ed.Motion(MoveLineBegin)
	}
	return 0, true
}

// keyGotoFileBegin is gg: first line, or line N with a count.
func keyGotoFileBegin(ed *Editor, keys string, _ Arg) (int, bool) {
	if ed.action.Count > 0 {
		ed.Motion(MoveLine)
	} else {
		ed.Motion(MoveFileBegin)
	}
	return 0, true
}

// keyGotoFileEnd is G: last line, or line N with a count.
func keyGotoFileEnd(ed *Editor, keys string, _ Arg) (int, bool) {
	if ed.action.Count > 0 {
		ed.Motion(MoveLine)
	} else {
		ed.Motion(MoveFileEnd)
	}
	return 0, true
}

func keyRegisterSelect(ed *Editor, keys string, _ Arg) (int, bool) {
	if keys == "" {
		return 0, false
	}
	n := ed.KeyNext(keys)
	key := keys[:n]
	if len(key) == 1 {
		ed.RegisterSelect(key[0])
	}
	return n, true
}

// keyOperatorAbort discards a pending operator.
func keyOperatorAbort(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.action = Action{}
	if ed.mode.id == ModeOperator {
		ed.modeSet(ed.modePrev)
	}
	return 0, true
}

func keyInsertHere(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.OperatorEnter(OpInsert)
	ed.Motion(MoveNop)
	return 0, true
}

func keyInsertAfter(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.OperatorEnter(OpInsert)
	ed.Motion(MoveCharNext)
	return 0, true
}

func keyInsertLineStart(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.OperatorEnter(OpInsert)
	ed.Motion(MoveLineStart)
	return 0, true
}

func keyInsertLineEnd(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.OperatorEnter(OpInsert)
	ed.Motion(MoveLineEnd)
	return 0, true
}

func keyOpenBelow(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.OperatorEnter(OpInsert)
	ed.Motion(MoveLineEnd)
	ed.InsertNewline()
	// the newline is part of what a repeat must replay
	if ed.macroOperator != nil {
		ed.macroOperator.Append("<Enter>")
	}
	return 0, true
}

func keyOpenAbove(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.OperatorEnter(OpInsert)
	ed.Motion(MoveLineBegin)
	txt := ed.win.File.Text
	v := ed.win.View
	ed.InsertNewline()
	v.CursorTo(txt.LineBegin(txt.CharPrev(v.CursorPos())))
	return 0, true
}

func keyReplaceMode(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.OperatorEnter(OpReplace)
	ed.Motion(MoveNop)
	return 0, true
}

// keyReplaceChar replaces count characters under the cursor with the
// next typed key, leaving the cursor on the last replacement.
func keyReplaceChar(ed *Editor, keys string, _ Arg) (int, bool) {
	if keys == "" {
		return 0, false
	}
	n := ed.KeyNext(keys)
	key := keys[:n]
	switch {
	case key == "<Enter>":
		key = "\n"
	case len(key) > 1:
		ed.action = Action{}
		return n, true
	}
	txt := ed.win.File.Text
	count := ed.action.Count
	if count < 1 {
		count = 1
	}
	for _, c := range ed.win.View.Cursors() {
		pos := c.Pos()
		replaced := 0
		for i := 0; i < count; i++ {
			b, ok := txt.ByteGet(pos)
			if !ok || b == '\n' || b == '\r' {
				break
			}
			next := txt.CharNext(pos)
			ed.Delete(pos, next-pos)
			ed.Insert(pos, []byte(key))
			pos += len(key)
			replaced++
		}
		if replaced > 0 {
			c.To(txt.CharPrev(pos))
		}
	}
	txt.Snapshot()
	ed.Draw()
	ed.action = Action{}
	return n, true
}

// keyCaseSwapChar is ~: swap the case of the character under the
// cursor; the cursor stays where it is.
func keyCaseSwapChar(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.OperatorEnter(OpCaseSwap)
	ed.Motion(MoveCharNext)
	return 0, true
}

// keyJoinLines joins count lines (at least two) into one.
func keyJoinLines(ed *Editor, keys string, _ Arg) (int, bool) {
	count := ed.action.Count
	if count < 2 {
		count = 2
	}
	ed.action.Count = count - 1
	ed.action.Op = ed.operator(OpJoin)
	ed.Motion(MoveLineNext)
	return 0, true
}

func keyUndo(ed *Editor, keys string, _ Arg) (int, bool) {
	if pos := ed.win.File.Text.Undo(); pos != text.EPOS {
		ed.win.View.CursorTo(pos)
		ed.Draw()
	} else {
		ed.Info("already at oldest change")
	}
	return 0, true
}

func keyRedo(ed *Editor, keys string, _ Arg) (int, bool) {
	if pos := ed.win.File.Text.Redo(); pos != text.EPOS {
		ed.win.View.CursorTo(pos)
		ed.Draw()
	} else {
		ed.Info("already at newest change")
	}
	return 0, true
}

func keyRepeat(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.Repeat()
	return 0, true
}

// keyMacroRecord starts a recording, or stops the active one.
func keyMacroRecord(ed *Editor, keys string, _ Arg) (int, bool) {
	if ed.recording != nil {
		ed.MacroRecordStop()
		ed.ui.DrawStatus()
		return 0, true
	}
	if keys == "" {
		return 0, false
	}
	n := ed.KeyNext(keys)
	key := keys[:n]
	if len(key) == 1 && ed.MacroRecord(key[0]) {
		ed.ui.DrawStatus()
	}
	return n, true
}

func keyMacroReplay(ed *Editor, keys string, _ Arg) (int, bool) {
	if keys == "" {
		return 0, false
	}
	n := ed.KeyNext(keys)
	key := keys[:n]
	count := ed.action.Count
	if count < 1 {
		count = 1
	}
	ed.action = Action{}
	if len(key) == 1 {
		for i := 0; i < count; i++ {
			if !ed.MacroReplay(key[0]) {
				break
			}
		}
	}
	return n, true
}

func keyMarkSet(ed *Editor, keys string, _ Arg) (int, bool) {
	if keys == "" {
		return 0, false
	}
	n := ed.KeyNext(keys)
	key := keys[:n]
	if len(key) == 1 {
		ed.MarkSet(key[0], ed.win.View.CursorPos())
	}
	return n, true
}

// keyNormalEscape clears pending state and collapses extra cursors.
func keyNormalEscape(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.action = Action{}
	ed.win.View.CursorsClear()
	ed.ui.InfoHide()
	return 0, true
}

func keyPromptCommand(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.PromptShow(':')
	return 0, true
}

func keyPromptSearchForward(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.PromptShow('/')
	return 0, true
}

func keyPromptSearchBackward(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.PromptShow('?')
	return 0, true
}

func keyPromptEnter(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.PromptEnter()
	return 0, true
}

func keyReadlineEscape(ed *Editor, keys string, _ Arg) (int, bool) {
	if ed.mode.id == ModePrompt {
		ed.modeSet(ed.modeBeforePrompt)
		return 0, true
	}
	fromInsert := ed.mode.id == ModeInsert || ed.mode.id == ModeReplace
	ed.ModeSwitch(ModeNormal)
	if fromInsert {
		// leaving insert steps back onto the last inserted character
		v := ed.win.View
		v.CursorTo(ed.win.File.Text.LineCharPrev(v.CursorPos()))
	}
	return 0, true
}

// keyBackspace deletes the character before each cursor, or edits the
// prompt line when the prompt is open.
func keyBackspace(ed *Editor, keys string, _ Arg) (int, bool) {
	if ed.mode.id == ModePrompt {
		ed.ui.PromptInput("<Backspace>")
		return 0, true
	}
	txt := ed.win.File.Text
	for _, c := range ed.win.View.Cursors() {
		pos := c.Pos()
		if pos == 0 {
			continue
		}
		prev := txt.CharPrev(pos)
		ed.Delete(prev, pos-prev)
		c.To(prev)
	}
	return 0, true
}

// keyDeleteLineBegin deletes from the line begin to the cursor.
func keyDeleteLineBegin(ed *Editor, keys string, _ Arg) (int, bool) {
	txt := ed.win.File.Text
	for _, c := range ed.win.View.Cursors() {
		pos := c.Pos()
		begin := txt.LineBegin(pos)
		if begin < pos {
			ed.Delete(begin, pos-begin)
			c.To(begin)
		}
	}
	return 0, true
}

// keyDeleteWordPrev deletes the word before the cursor.
func keyDeleteWordPrev(ed *Editor, keys string, _ Arg) (int, bool) {
	txt := ed.win.File.Text
	for _, c := range ed.win.View.Cursors() {
		pos := c.Pos()
		start := txt.WordStartPrev(pos)
		if start < pos {
			ed.Delete(start, pos-start)
			c.To(start)
		}
	}
	return 0, true
}

func keyInsertNewline(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.InsertNewline()
	return 0, true
}

func keyInsertTab(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.InsertTab()
	return 0, true
}

func keyWriteQuit(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.Command("wq")
	return 0, true
}

func keyQuit(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.Command("q")
	return 0, true
}

func keyWindowSplit(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.WindowSplit(ed.win)
	return 0, true
}

func keyWindowNext(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.WindowNext()
	return 0, true
}

func keyWindowPrev(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.WindowPrev()
	return 0, true
}

func keyWindowClose(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.WindowClose(ed.win)
	return 0, true
}

func keySuspend(ed *Editor, keys string, _ Arg) (int, bool) {
	ed.ui.Suspend()
	return 0, true
}
