package editor

import "github.com/niklas-heer/ved/internal/text"

// changeList is the per-window cursor over the buffer's recent-edit
// positions. It remembers the buffer state it was synced against and
// resets once the buffer was edited since the last visit.
type changeList struct {
	index int
	state int64
	pos   int
}

// changelistPrev moves to an older change position.
func changelistPrev(ed *Editor, win *Win, pos int) int {
	cl := &win.changelist
	txt := win.File.Text
	state := txt.State()
	if cl.state != state {
		cl.index = 0
	} else if pos == cl.pos {
		cl.index++
	}
	newpos := txt.HistoryGet(cl.index)
	if newpos == text.EPOS {
		cl.index--
	} else {
		cl.pos = newpos
	}
	cl.state = state
	return cl.pos
}

// changelistNext moves back towards the most recent change position.
func changelistNext(ed *Editor, win *Win, pos int) int {
	cl := &win.changelist
	txt := win.File.Text
	state := txt.State()
	if cl.state != state {
		cl.index = 0
	} else if cl.index > 0 && pos == cl.pos {
		cl.index--
	}
	newpos := txt.HistoryGet(cl.index)
	if newpos == text.EPOS {
		cl.index++
	} else {
		cl.pos = newpos
	}
	cl.state = state
	return cl.pos
}
