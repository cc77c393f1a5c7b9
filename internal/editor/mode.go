package editor

import "time"

// ModeID identifies a mode in the editor's mode array. Modes form a
// tree; binding lookups walk from the current mode up through Parent.
type ModeID int

const (
	ModeBasic ModeID = iota
	ModeMove
	ModeTextObject
	ModeOperatorOption
	ModeOperator
	ModeNormal
	ModeVisual
	ModeVisualLine
	ModeReadline
	ModePrompt
	ModeInsert
	ModeReplace
	modeCount

	// modeNone marks the root's missing parent.
	modeNone ModeID = -1
)

// Mode is one state of the modal interpreter. All hooks are optional.
type Mode struct {
	id     ModeID
	Name   string
	Status string
	Help   string
	// IsUser marks modes the user can rest in; only those become the
	// "previous mode" a transient mode returns to.
	IsUser   bool
	IsVisual bool
	// Parent is mutable: OPERATOR is re-parented while an operator or a
	// visual selection is pending. Every other edge is static.
	Parent      ModeID
	Enter       func(ed *Editor, old *Mode)
	Leave       func(ed *Editor, new *Mode)
	Input       func(ed *Editor, keys string)
	Idle        func(ed *Editor)
	IdleTimeout time.Duration

	bindings map[string]*KeyBinding
}

// ID returns the mode's stable identifier.
func (m *Mode) ID() ModeID { return m.id }

/*
 * The tree of modes looks like this. The double line between
 * OPERATOR-OPTION and OPERATOR is only in effect once an operator is
 * pending: entering OPERATOR re-parents it to OPERATOR-OPTION so the
 * text objects become reachable, and leaving it resets the parent to
 * MOVE. The +-ed line between OPERATOR and TEXTOBJ is only active
 * within the visual modes.
 *
 *                          BASIC
 *                     (arrow keys etc.)
 *                     /      |
 *              READLINE     MOVE
 *              /      \  (h,j,k,l ...)
 *         INSERT   PROMPT    |        \--------------\
 *            |               |                       |
 *        REPLACE         OPERATOR ++++          TEXT-OBJECTS
 *                      (d,c,y,p ..)   +              |
 *                            |     \\  +             |
 *                         NORMAL    \\  +      OPERATOR-OPTION
 *                            |       \\  +         (v,V)
 *                         VISUAL      \\  + +       //
 *                            |         \\==========//
 *                       VISUAL-LINE
 */
func newModes() []Mode {
	modes := make([]Mode, modeCount)
	modes[ModeBasic] = Mode{Name: "BASIC", Parent: modeNone}
	modes[ModeMove] = Mode{Name: "MOVE", Parent: ModeBasic}
	modes[ModeTextObject] = Mode{Name: "TEXT-OBJECTS", Parent: ModeMove}
	modes[ModeOperatorOption] = Mode{Name: "OPERATOR-OPTION", Parent: ModeTextObject}
	modes[ModeOperator] = Mode{
		Name:   "OPERATOR",
		Parent: ModeMove,
		Enter: func(ed *Editor, old *Mode) {
			ed.modes[ModeOperator].Parent = ModeOperatorOption
		},
		Leave: func(ed *Editor, new *Mode) {
			ed.modes[ModeOperator].Parent = ModeMove
		},
		Input: func(ed *Editor, keys string) {
			// invalid operator argument
			ed.action = Action{}
			ed.modeSet(ed.modePrev)
		},
	}
	modes[ModeNormal] = Mode{
		Name:   "NORMAL",
		IsUser: true,
		Parent: ModeOperator,
	}
	modes[ModeVisual] = Mode{
		Name:     "VISUAL",
		Status:   "--VISUAL--",
		IsUser:   true,
		IsVisual: true,
		Parent:   ModeOperator,
		Enter: func(ed *Editor, old *Mode) {
			if !old.IsVisual {
				ed.win.View.SelectionsStart()
				ed.modes[ModeOperator].Parent = ModeTextObject
			}
		},
		Leave: func(ed *Editor, new *Mode) {
			if !new.IsVisual {
				ed.win.View.SelectionsClear()
				ed.modes[ModeOperator].Parent = ModeMove
			}
		},
	}
	modes[ModeVisualLine] = Mode{
		Name:     "VISUAL LINE",
		Status:   "--VISUAL LINE--",
		IsUser:   true,
		IsVisual: true,
		Parent:   ModeVisual,
		Enter: func(ed *Editor, old *Mode) {
			if !old.IsVisual {
				ed.win.View.SelectionsStart()
				ed.modes[ModeOperator].Parent = ModeTextObject
			}
			ed.Motion(MoveLineEnd)
		},
		Leave: func(ed *Editor, new *Mode) {
			if !new.IsVisual {
				ed.win.View.SelectionsClear()
				ed.modes[ModeOperator].Parent = ModeMove
			} else {
				ed.win.View.CursorTo(ed.win.View.CursorPos())
			}
		},
	}
	modes[ModeReadline] = Mode{Name: "READLINE", Parent: ModeBasic}
	modes[ModePrompt] = Mode{
		Name:   "PROMPT",
		IsUser: true,
		Parent: ModeReadline,
		Enter: func(ed *Editor, old *Mode) {
			if old.IsUser && old.id != ModePrompt {
				ed.modeBeforePrompt = old
			}
		},
		Leave: func(ed *Editor, new *Mode) {
			if new.IsUser {
				ed.ui.PromptHide()
			}
		},
		Input: func(ed *Editor, keys string) {
			ed.ui.PromptInput(keys)
		},
	}
	modes[ModeInsert] = Mode{
		Name:   "INSERT",
		Status: "--INSERT--",
		IsUser: true,
		Parent: ModeReadline,
		Enter: func(ed *Editor, old *Mode) {
			if ed.macroOperator == nil {
				ed.macroOperatorRecord()
				ed.actionPrev = Action{}
				ed.actionPrev.Macro = ed.macroOperator
				ed.actionPrev.Op = ed.operator(OpInsert)
			}
		},
		Leave: func(ed *Editor, new *Mode) {
			// make sure the state after the edit can be recovered
			ed.win.File.Text.Snapshot()
			if new.id == ModeNormal {
				ed.macroOperatorStop()
			}
		},
		Input: func(ed *Editor, keys string) {
			ed.InsertKey(keys)
		},
		Idle: func(ed *Editor) {
			ed.win.File.Text.Snapshot()
		},
		IdleTimeout: 3 * time.Second,
	}
	modes[ModeReplace] = Mode{
		Name:   "REPLACE",
		Status: "--REPLACE--",
		IsUser: true,
		Parent: ModeInsert,
		Enter: func(ed *Editor, old *Mode) {
			if ed.macroOperator == nil {
				ed.macroOperatorRecord()
				ed.actionPrev = Action{}
				ed.actionPrev.Macro = ed.macroOperator
				ed.actionPrev.Op = ed.operator(OpReplace)
			}
		},
		Leave: func(ed *Editor, new *Mode) {
			ed.win.File.Text.Snapshot()
			if new.id == ModeNormal {
				ed.macroOperatorStop()
			}
		},
		Input: func(ed *Editor, keys string) {
			ed.ReplaceKey(keys)
		},
		Idle: func(ed *Editor) {
			ed.win.File.Text.Snapshot()
		},
		IdleTimeout: 3 * time.Second,
	}
	for i := range modes {
		modes[i].id = ModeID(i)
		modes[i].bindings = make(map[string]*KeyBinding)
	}
	return modes
}

// Mode returns the mode for an id.
func (ed *Editor) Mode(id ModeID) *Mode {
	if id < 0 || id >= modeCount {
		return nil
	}
	return &ed.modes[id]
}

// CurrentMode returns the active mode.
func (ed *Editor) CurrentMode() *Mode { return ed.mode }

// ModeStatus returns the status text of the active mode.
func (ed *Editor) ModeStatus() string { return ed.mode.Status }

func (ed *Editor) parent(m *Mode) *Mode {
	if m.Parent == modeNone {
		return nil
	}
	return &ed.modes[m.Parent]
}

// modeSet switches to a new mode, running the leave and enter hooks.
// Switching to the current mode is a no-op.
func (ed *Editor) modeSet(newMode *Mode) {
	if ed.mode == newMode {
		return
	}
	if ed.mode.Leave != nil {
		ed.mode.Leave(ed, newMode)
	}
	if ed.mode.IsUser {
		ed.modePrev = ed.mode
	}
	ed.mode = newMode
	if newMode.Enter != nil {
		newMode.Enter(ed, ed.modePrev)
	}
	ed.ui.DrawStatus()
}

// ModeSwitch switches to the mode with the given id.
func (ed *Editor) ModeSwitch(id ModeID) {
	if m := ed.Mode(id); m != nil {
		ed.modeSet(m)
	}
}

// ModeMap adds a key binding to a mode.
func (ed *Editor) ModeMap(id ModeID, key string, binding *KeyBinding) bool {
	m := ed.Mode(id)
	if m == nil || key == "" {
		return false
	}
	m.bindings[key] = binding
	return true
}

// ModeUnmap removes a key binding from a mode.
func (ed *Editor) ModeUnmap(id ModeID, key string) bool {
	m := ed.Mode(id)
	if m == nil {
		return false
	}
	if _, ok := m.bindings[key]; !ok {
		return false
	}
	delete(m.bindings, key)
	return true
}
