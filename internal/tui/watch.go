package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// FileEventMsg reports that an open file changed on disk.
type FileEventMsg struct {
	Path    string
	Removed bool
}

// watcher flags files that are truncated or removed behind the
// editor's back so the update loop can warn and close the affected
// windows at a safe point. This replaces signal-based detection of
// mapped-file truncation.
type watcher struct {
	fs    *fsnotify.Watcher
	sizes map[string]int64
}

func newWatcher() (*watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &watcher{fs: fs, sizes: make(map[string]int64)}, nil
}

// Add starts watching a file.
func (w *watcher) Add(path string) {
	if w == nil || path == "" {
		return
	}
	if info, err := os.Stat(path); err == nil {
		w.sizes[path] = info.Size()
	}
	_ = w.fs.Add(path)
}

// Close stops the watcher.
func (w *watcher) Close() {
	if w != nil {
		_ = w.fs.Close()
	}
}

// wait blocks until the next relevant event and converts it into a tea
// message. Writes that keep or grow the file are ignored; shrinks and
// removals are reported.
func (w *watcher) wait() tea.Msg {
	if w == nil {
		return nil
	}
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				return FileEventMsg{Path: ev.Name, Removed: true}
			}
			if ev.Op&fsnotify.Write != 0 {
				info, err := os.Stat(ev.Name)
				if err != nil {
					return FileEventMsg{Path: ev.Name, Removed: true}
				}
				if prev, ok := w.sizes[ev.Name]; ok && info.Size() < prev {
					w.sizes[ev.Name] = info.Size()
					return FileEventMsg{Path: ev.Name}
				}
				w.sizes[ev.Name] = info.Size()
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
		}
	}
}
