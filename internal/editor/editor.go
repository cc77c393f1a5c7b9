// Package editor implements the core of ved: the mode-driven command
// interpreter that turns key tokens into buffer edits and cursor
// motions. Keys resolve against a tree of modes and accumulate into an
// action (count × operator × motion or text object) which executes once
// per cursor of the focused view.
package editor

import (
	"fmt"
	"regexp"
	"time"

	"github.com/niklas-heer/ved/internal/text"
	"github.com/niklas-heer/ved/internal/view"
)

// UI is the capability set the core consumes from the terminal front
// end. The core never draws anything itself.
type UI interface {
	Draw()
	DrawStatus()
	Info(msg string)
	InfoHide()
	Die(msg string)
	Suspend()
	PromptShow(title, content string)
	PromptHide()
	PromptGet() string
	PromptInput(keys string)
	WindowNew(win *Win)
	WindowFree(win *Win)
	WindowFocus(win *Win)
	WindowReload(win *Win)
}

// Editor is the root object holding all files, windows, modes,
// registers and macros. It is driven from a single loop and is not safe
// for concurrent use.
type Editor struct {
	ui UI

	files   []*File
	windows []*Win
	win     *Win

	modes            []Mode
	mode             *Mode
	modePrev         *Mode
	modeBeforePrompt *Mode

	action     Action
	actionPrev Action

	registers  map[byte]*Register
	cursorRegs map[*view.Cursor]*Register

	macros        map[byte]*Macro
	recording     *Macro
	recordingID   byte
	lastRecording *Macro
	macroOperator *Macro
	opMacroSlot   Macro
	repeatSlot    Macro

	searchPattern *regexp.Regexp
	searchChar    byte
	lastTotill    MotionID
	promptType    byte

	// options
	TabWidth   int
	ExpandTab  bool
	AutoIndent bool

	keys    *keyBuffer // in-flight buffer during resolution
	input   keyBuffer  // queued input between Input calls
	actions map[string]*KeyAction

	commands map[string]CommandFunc

	running    bool
	exitStatus int
}

// New creates an editor bound to a UI. No window exists yet; callers
// open one with WindowNew before feeding input.
func New(ui UI) *Editor {
	ed := &Editor{
		ui:         ui,
		modes:      newModes(),
		registers:  make(map[byte]*Register),
		cursorRegs: make(map[*view.Cursor]*Register),
		macros:     make(map[byte]*Macro),
		actions:    make(map[string]*KeyAction),
		commands:   make(map[string]CommandFunc),
		TabWidth:   8,
	}
	ed.mode = &ed.modes[ModeNormal]
	ed.modePrev = ed.mode
	ed.modeBeforePrompt = ed.mode
	registerDefaultBindings(ed)
	registerDefaultCommands(ed)
	return ed
}

// UI returns the front end the editor reports through.
func (ed *Editor) UI() UI { return ed.ui }

// Win returns the focused window.
func (ed *Editor) Win() *Win { return ed.win }

// Windows returns the open windows.
func (ed *Editor) Windows() []*Win { return append([]*Win(nil), ed.windows...) }

// Running reports whether the editor loop should continue.
func (ed *Editor) Running() bool { return ed.running }

// Start marks the editor as running; the front end calls it once before
// the event loop.
func (ed *Editor) Start() {
	ed.running = true
	ed.exitStatus = 0
}

// Exit stops the editor with the given status.
func (ed *Editor) Exit(status int) {
	ed.running = false
	ed.exitStatus = status
}

// ExitStatus returns the status passed to Exit.
func (ed *Editor) ExitStatus() int { return ed.exitStatus }

// Info shows a message in the UI message line.
func (ed *Editor) Info(format string, args ...any) {
	ed.ui.Info(fmt.Sprintf(format, args...))
}

// Die reports a fatal error and stops the editor.
func (ed *Editor) Die(format string, args ...any) {
	ed.running = false
	ed.exitStatus = 1
	ed.ui.Die(fmt.Sprintf(format, args...))
}

// Draw requests a full redraw.
func (ed *Editor) Draw() { ed.ui.Draw() }

// Idle runs the current mode's idle hook; the front end calls it when
// the mode's idle timeout elapses without input.
func (ed *Editor) Idle() {
	if ed.mode.Idle != nil {
		ed.mode.Idle(ed)
	}
}

// IdleTimeout returns the current mode's idle timeout, or false when
// the mode has no idle hook.
func (ed *Editor) IdleTimeout() (time.Duration, bool) {
	if ed.mode.Idle == nil {
		return 0, false
	}
	return ed.mode.IdleTimeout, true
}

// Insert splices data into the focused buffer and invalidates every
// window displaying it.
func (ed *Editor) Insert(pos int, data []byte) {
	txt := ed.win.File.Text
	if !txt.Insert(pos, data) {
		return
	}
	ed.windowsInvalidate(pos, pos+len(data))
}

// Delete removes n bytes from the focused buffer.
func (ed *Editor) Delete(pos, n int) {
	txt := ed.win.File.Text
	if !txt.Delete(pos, n) {
		return
	}
	ed.windowsInvalidate(pos, pos+n)
}

// InsertKey inserts data at every cursor, leaving each cursor after the
// inserted bytes.
func (ed *Editor) InsertKey(data string) {
	v := ed.win.View
	for _, c := range v.Cursors() {
		pos := c.Pos()
		ed.Insert(pos, []byte(data))
		c.To(pos + len(data))
	}
}

// ReplaceKey overwrites the character at every cursor. Newlines are
// never replaced, only shifted, so lines keep their structure.
func (ed *Editor) ReplaceKey(data string) {
	txt := ed.win.File.Text
	v := ed.win.View
	for _, c := range v.Cursors() {
		pos := c.Pos()
		if b, ok := txt.ByteGet(pos); ok && b != '\n' && b != '\r' {
			next := txt.CharNext(pos)
			ed.Delete(pos, next-pos)
		}
		ed.Insert(pos, []byte(data))
		c.To(pos + len(data))
	}
}

// InsertTab inserts a tab, or TabWidth spaces (at most 8) when
// expandtab is set.
func (ed *Editor) InsertTab() {
	ed.InsertKey(ed.expandTab())
}

func (ed *Editor) expandTab() string {
	if !ed.ExpandTab {
		return "\t"
	}
	w := ed.TabWidth
	if w < 1 {
		w = 1
	} else if w > 8 {
		w = 8
	}
	return "        "[:w]
}

// InsertNewline inserts a line break matching the buffer's newline
// convention and applies autoindent.
func (ed *Editor) InsertNewline() {
	txt := ed.win.File.Text
	nl := "\n"
	if txt.NewlineType() == text.NewlineCRLF {
		nl = "\r\n"
	}
	ed.InsertKey(nl)
	if ed.AutoIndent {
		ed.copyIndentFromPreviousLine()
	}
}

func (ed *Editor) copyIndentFromPreviousLine() {
	txt := ed.win.File.Text
	pos := ed.win.View.CursorPos()
	prev := txt.LinePrev(pos)
	if pos == prev {
		return
	}
	begin := txt.LineBegin(prev)
	start := txt.LineStart(begin)
	if start > begin {
		ed.InsertKey(string(txt.BytesGet(begin, start-begin)))
	}
}

// SearchPattern returns the last compiled search pattern, or nil.
func (ed *Editor) SearchPattern() *regexp.Regexp { return ed.searchPattern }

// windowsInvalidate redraws after an edit. Cursor and selection
// adjustment in other windows sharing the file happens through the
// buffer's change listeners; the front end re-renders everything.
func (ed *Editor) windowsInvalidate(start, end int) {
	ed.ui.Draw()
}
