// Package tui is the terminal front end: a bubbletea program that
// feeds key tokens into the editor core and renders the focused window,
// status line, message line and prompt.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/niklas-heer/ved/internal/editor"
	"github.com/niklas-heer/ved/internal/text"
	"github.com/niklas-heer/ved/internal/util"
)

// Model drives the editor from bubbletea events and implements the UI
// capability set the core consumes.
type Model struct {
	ed     *editor.Editor
	theme  Theme
	width  int
	height int

	info            string
	dieMsg          string
	prompt          textinput.Model
	promptOpen      bool
	promptTitleText string

	watcher *watcher
	// idleGen invalidates stale idle ticks after new input arrived
	idleGen int
}

type idleMsg struct {
	gen int
}

// New creates the front end and the editor bound to it.
func New(theme Theme) *Model {
	prompt := textinput.New()
	prompt.Prompt = ""
	m := &Model{theme: theme, prompt: prompt, width: 80, height: 24}
	m.ed = editor.New(m)
	if w, err := newWatcher(); err == nil {
		m.watcher = w
	}
	return m
}

// Editor returns the editor core.
func (m *Model) Editor() *editor.Editor { return m.ed }

// DieMessage returns the fatal message set by Die, if any.
func (m *Model) DieMessage() string { return m.dieMsg }

// Init starts the file watcher.
func (m *Model) Init() tea.Cmd {
	m.ed.Start()
	if m.watcher != nil {
		return m.waitForFileEvent()
	}
	return nil
}

func (m *Model) waitForFileEvent() tea.Cmd {
	return func() tea.Msg { return m.watcher.wait() }
}

func (m *Model) idleTick() tea.Cmd {
	timeout, ok := m.ed.IdleTimeout()
	if !ok {
		return nil
	}
	gen := m.idleGen
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return idleMsg{gen: gen}
	})
}

// Update handles one bubbletea event.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, win := range m.ed.Windows() {
			win.View.Resize(msg.Width, msg.Height-2)
		}
		m.prompt.Width = msg.Width - 2
		return m, nil

	case tea.KeyMsg:
		m.info = ""
		m.idleGen++
		if m.promptOpen {
			// the prompt line edits itself; only enter and escape
			// reach the core
			s := msg.String()
			if s != "enter" && s != "esc" {
				var cmd tea.Cmd
				m.prompt, cmd = m.prompt.Update(msg)
				return m, cmd
			}
		}
		m.ed.Input(KeyToToken(msg))
		m.closeTruncated()
		if !m.ed.Running() {
			return m, tea.Quit
		}
		return m, m.idleTick()

	case idleMsg:
		if msg.gen == m.idleGen {
			m.ed.Idle()
		}
		return m, nil

	case FileEventMsg:
		for _, f := range m.ed.Files() {
			if f.Name == msg.Path {
				f.Truncated = true
			}
		}
		m.closeTruncated()
		if !m.ed.Running() {
			return m, tea.Quit
		}
		return m, m.waitForFileEvent()
	}
	return m, nil
}

// closeTruncated is the safe point handling externally truncated
// files: warn once per file and close its windows; exit when nothing
// remains open.
func (m *Model) closeTruncated() {
	var name string
	for _, win := range m.ed.Windows() {
		if win.File.Truncated {
			name = win.File.Name
			m.ed.WindowClose(win)
		}
	}
	if name == "" {
		return
	}
	if len(m.ed.Windows()) == 0 {
		m.Die(fmt.Sprintf("WARNING: file %q truncated!", name))
	} else {
		m.Info(fmt.Sprintf("WARNING: file %q truncated!", name))
	}
}

// View renders the focused window, the status line and the message or
// prompt line.
func (m *Model) View() string {
	win := m.ed.Win()
	if win == nil {
		return ""
	}
	var b strings.Builder
	m.renderWindow(&b, win)
	b.WriteString(m.renderStatus(win))
	b.WriteByte('\n')
	b.WriteString(m.renderMessageLine())
	return b.String()
}

func (m *Model) renderWindow(b *strings.Builder, win *editor.Win) {
	v := win.View
	txt := win.File.Text
	vp := v.Viewport()
	cursor := v.CursorPos()
	sel := text.EmptyRange()
	if m.ed.CurrentMode().IsVisual {
		sel = v.Cursor().SelectionGet()
	}

	line := vp.Start
	past := false
	for row := 0; row < v.Height(); row++ {
		if past {
			b.WriteString(m.theme.Dim.Render("~"))
			b.WriteByte('\n')
			continue
		}
		end := txt.LineEnd(line)
		content := string(txt.BytesGet(line, end-line))
		b.WriteString(m.renderLine(content, line, end, cursor, sel))
		b.WriteByte('\n')
		next := txt.LineNext(line)
		if next >= txt.Size() {
			past = true
		} else {
			line = next
		}
	}
}

// renderLine draws one buffer line, highlighting the cursor cell and
// the selected span.
func (m *Model) renderLine(content string, begin, end, cursor int, sel text.Range) string {
	expanded := util.ExpandTabs(content, m.ed.TabWidth)
	if cursor < begin || cursor > end {
		if sel.IsValid() && sel.Start < end && sel.End > begin {
			return m.theme.Selection.Render(expanded)
		}
		return m.theme.Base.Render(util.Truncate(expanded, m.width))
	}
	// split around the cursor byte
	off := cursor - begin
	if off > len(content) {
		off = len(content)
	}
	head := content[:off]
	cell := " "
	tail := ""
	if off < len(content) {
		r := []rune(content[off:])
		cell = string(r[0])
		tail = string(r[1:])
	}
	return m.theme.Base.Render(util.ExpandTabs(head, m.ed.TabWidth)) +
		m.theme.Cursor.Render(cell) +
		m.theme.Base.Render(util.ExpandTabs(tail, m.ed.TabWidth))
}

func (m *Model) renderStatus(win *editor.Win) string {
	name := win.File.Name
	if name == "" {
		name = "[No Name]"
	}
	txt := win.File.Text
	pos := win.View.CursorPos()
	right := fmt.Sprintf("%d/%d  %d", txt.Lineno(pos), txt.Lineno(txt.Size()), pos)
	left := name
	if txt.Modified() {
		left += " [+]"
	}
	if id, ok := m.ed.MacroRecording(); ok {
		left += fmt.Sprintf(" recording @%c", id)
	}
	gap := m.width - util.VisibleWidth(left) - util.VisibleWidth(right)
	if gap < 1 {
		gap = 1
	}
	return m.theme.Status.Render(util.Truncate(left+strings.Repeat(" ", gap)+right, m.width))
}

func (m *Model) renderMessageLine() string {
	if m.promptOpen {
		return m.theme.Mode.Render(m.promptTitle()) + m.prompt.View()
	}
	if m.info != "" {
		return m.theme.Warning.Render(util.Truncate(m.info, m.width))
	}
	return m.theme.Mode.Render(m.ed.ModeStatus())
}

func (m *Model) promptTitle() string {
	return m.promptTitleText
}

// UI capability set ----------------------------------------------------

// Draw is a no-op: bubbletea re-renders after every update.
func (m *Model) Draw() {}

// DrawStatus is a no-op for the same reason.
func (m *Model) DrawStatus() {}

// Info shows a message on the message line.
func (m *Model) Info(msg string) { m.info = msg }

// InfoHide clears the message line.
func (m *Model) InfoHide() { m.info = "" }

// Die records a fatal message; the program exits at the next update.
func (m *Model) Die(msg string) {
	m.dieMsg = msg
	fmt.Fprintln(os.Stderr, msg)
}

// Suspend is handled by the terminal layer; nothing to do here.
func (m *Model) Suspend() {}

// PromptShow opens the prompt line.
func (m *Model) PromptShow(title, content string) {
	m.promptTitleText = title
	m.prompt.SetValue(content)
	m.prompt.CursorEnd()
	m.prompt.Focus()
	m.promptOpen = true
}

// PromptHide closes the prompt line.
func (m *Model) PromptHide() {
	m.promptOpen = false
	m.prompt.Blur()
	m.prompt.SetValue("")
}

// PromptGet returns the prompt contents.
func (m *Model) PromptGet() string { return m.prompt.Value() }

// PromptInput applies raw key tokens to the prompt line; the update
// loop normally routes keys through the textinput widget directly and
// this path serves headless input.
func (m *Model) PromptInput(keys string) {
	if keys == "<Backspace>" {
		v := m.prompt.Value()
		if v != "" {
			r := []rune(v)
			m.prompt.SetValue(string(r[:len(r)-1]))
			m.prompt.CursorEnd()
		}
		return
	}
	if len(keys) > 1 && keys[0] == '<' {
		return
	}
	m.prompt.SetValue(m.prompt.Value() + keys)
	m.prompt.CursorEnd()
}

// WindowNew sizes a freshly opened window and watches its file.
func (m *Model) WindowNew(win *editor.Win) {
	win.View.Resize(m.width, m.height-2)
	if m.watcher != nil && win.File.Name != "" {
		m.watcher.Add(win.File.Name)
	}
}

// WindowFree is a no-op; the closed window's file stays on the watch
// list.
func (m *Model) WindowFree(win *editor.Win) {}

// WindowFocus is a no-op: the focused window is read from the editor.
func (m *Model) WindowFocus(win *editor.Win) {}

// WindowReload re-sizes the window's new view.
func (m *Model) WindowReload(win *editor.Win) {
	win.View.Resize(m.width, m.height-2)
}
