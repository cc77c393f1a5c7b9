package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubUI implements the UI capability set for tests, counting calls
// and holding a plain-string prompt line.
type stubUI struct {
	draws       int
	statusDraws int
	infos       []string
	died        string
	prompt      string
	promptOpen  bool
	suspended   int
}

func (u *stubUI) Draw()                      { u.draws++ }
func (u *stubUI) DrawStatus()                { u.statusDraws++ }
func (u *stubUI) Info(msg string)            { u.infos = append(u.infos, msg) }
func (u *stubUI) InfoHide()                  {}
func (u *stubUI) Die(msg string)             { u.died = msg }
func (u *stubUI) Suspend()                   { u.suspended++ }
func (u *stubUI) PromptShow(title, s string) { u.promptOpen = true; u.prompt = s }
func (u *stubUI) PromptHide()                { u.promptOpen = false; u.prompt = "" }
func (u *stubUI) PromptGet() string          { return u.prompt }
func (u *stubUI) WindowNew(win *Win)         {}
func (u *stubUI) WindowFree(win *Win)        {}
func (u *stubUI) WindowFocus(win *Win)       {}
func (u *stubUI) WindowReload(win *Win)      {}

func (u *stubUI) PromptInput(keys string) {
	if keys == "<Backspace>" {
		if u.prompt != "" {
			u.prompt = u.prompt[:len(u.prompt)-1]
		}
		return
	}
	if strings.HasPrefix(keys, "<") && len(keys) > 1 {
		return
	}
	u.prompt += keys
}

// newTestEditor builds an editor over one window holding content, with
// the cursor at position 0.
func newTestEditor(t *testing.T, content string) (*Editor, *stubUI) {
	t.Helper()
	ui := &stubUI{}
	ed := New(ui)
	ed.Start()
	win, err := ed.WindowNew("")
	require.NoError(t, err)
	if content != "" {
		win.File.Text.Insert(0, []byte(content))
		win.File.Text.Snapshot()
	}
	win.View.CursorTo(0)
	return ed, ui
}

func bufferOf(ed *Editor) string {
	return string(ed.Win().File.Text.Bytes())
}

func cursorOf(ed *Editor) int {
	return ed.Win().View.CursorPos()
}
