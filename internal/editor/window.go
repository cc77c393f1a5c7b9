package editor

import (
	"errors"

	"github.com/niklas-heer/ved/internal/text"
	"github.com/niklas-heer/ved/internal/view"
)

var errUnsavedFile = errors.New("cannot reload unsaved file")

// File is an open buffer, possibly displayed by several windows. The
// refcount tracks how many windows point at it; the file is released
// when the last one closes.
type File struct {
	Text    *text.Text
	Name    string
	Marks   map[byte]text.Mark
	IsStdin bool
	// Truncated is set when the watcher sees the file shrink or vanish
	// under the editor; the main loop closes affected windows at the
	// next safe point.
	Truncated bool

	refcount int
}

// Win displays a File through a View and carries the per-window jump
// and change lists.
type Win struct {
	editor     *Editor
	File       *File
	View       *view.View
	jumplist   *jumpList
	changelist changeList
}

// Editor returns the editor owning the window.
func (w *Win) Editor() *Editor { return w.editor }

func (ed *Editor) fileNew(name string) (*File, error) {
	if name != "" {
		for _, f := range ed.files {
			if f.Name == name {
				f.refcount++
				return f, nil
			}
		}
	}
	txt, err := text.Load(name)
	if err != nil {
		return nil, err
	}
	if name == "" {
		txt = text.New(nil)
	}
	file := &File{
		Text:     txt,
		Name:     name,
		Marks:    make(map[byte]text.Mark),
		refcount: 1,
	}
	ed.files = append(ed.files, file)
	return file, nil
}

func (ed *Editor) fileFree(file *File) {
	file.refcount--
	if file.refcount > 0 {
		return
	}
	for i, f := range ed.files {
		if f == file {
			ed.files = append(ed.files[:i], ed.files[i+1:]...)
			return
		}
	}
}

// Files returns the open files.
func (ed *Editor) Files() []*File { return append([]*File(nil), ed.files...) }

func (ed *Editor) windowNewFile(file *File) *Win {
	win := &Win{
		editor:   ed,
		File:     file,
		View:     view.New(file.Text),
		jumplist: newJumpList(),
	}
	ed.windows = append(ed.windows, win)
	ed.win = win
	ed.ui.WindowNew(win)
	ed.ui.WindowFocus(win)
	return win
}

// WindowNew opens a window for the named file, or an empty buffer when
// name is empty.
func (ed *Editor) WindowNew(name string) (*Win, error) {
	file, err := ed.fileNew(name)
	if err != nil {
		return nil, err
	}
	return ed.windowNewFile(file), nil
}

// WindowSplit opens another window onto the same file.
func (ed *Editor) WindowSplit(original *Win) *Win {
	original.File.refcount++
	win := ed.windowNewFile(original.File)
	win.View.CursorTo(original.View.CursorPos())
	ed.Draw()
	return win
}

// WindowClose closes a window; the editor stops running when the last
// one goes.
func (ed *Editor) WindowClose(win *Win) {
	for i, w := range ed.windows {
		if w == win {
			ed.windows = append(ed.windows[:i], ed.windows[i+1:]...)
			break
		}
	}
	ed.fileFree(win.File)
	ed.ui.WindowFree(win)
	if ed.win == win {
		if len(ed.windows) > 0 {
			ed.win = ed.windows[0]
			ed.ui.WindowFocus(ed.win)
		} else {
			ed.win = nil
			ed.Exit(0)
		}
	}
	ed.Draw()
}

// WindowNext focuses the next window.
func (ed *Editor) WindowNext() {
	ed.focusOffset(1)
}

// WindowPrev focuses the previous window.
func (ed *Editor) WindowPrev() {
	ed.focusOffset(-1)
}

func (ed *Editor) focusOffset(delta int) {
	if ed.win == nil || len(ed.windows) < 2 {
		return
	}
	for i, w := range ed.windows {
		if w == ed.win {
			ed.win = ed.windows[(i+delta+len(ed.windows))%len(ed.windows)]
			ed.ui.WindowFocus(ed.win)
			return
		}
	}
}

// WindowReload re-reads the window's file from disk. Unsaved buffers
// cannot be reloaded.
func (ed *Editor) WindowReload(win *Win) error {
	if win.File.Name == "" {
		return errUnsavedFile
	}
	txt, err := text.Load(win.File.Name)
	if err != nil {
		return err
	}
	old := win.File
	file := &File{
		Text:     txt,
		Name:     old.Name,
		Marks:    make(map[byte]text.Mark),
		refcount: 1,
	}
	ed.files = append(ed.files, file)
	ed.fileFree(old)
	win.File = file
	win.View = view.New(file.Text)
	win.jumplist = newJumpList()
	win.changelist = changeList{}
	ed.ui.WindowReload(win)
	return nil
}

// MarkSet places the named mark at pos in the focused file.
func (ed *Editor) MarkSet(name byte, pos int) {
	if !isMarkName(name) {
		return
	}
	file := ed.win.File
	file.Marks[name] = file.Text.MarkSet(pos)
}
