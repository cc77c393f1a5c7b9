package editor

import (
	"github.com/niklas-heer/ved/internal/text"
	"github.com/niklas-heer/ved/internal/view"
)

// RegisterDefault is the unnamed register operators use when no
// register was selected.
const RegisterDefault byte = '"'

// RegisterClipboard syncs with the system clipboard.
const RegisterClipboard byte = '+'

// Register is a named byte buffer. The linewise flag records whether
// the stored text represents whole lines, which controls how a put
// inserts it.
type Register struct {
	Data     []byte
	Linewise bool
	name     byte
}

// IsClipboard reports whether the register mirrors the system
// clipboard.
func (r *Register) IsClipboard() bool { return r.name == RegisterClipboard }

// Put stores the given buffer range into the register.
func (r *Register) Put(txt *text.Text, rng text.Range) {
	r.Data = txt.BytesGet(rng.Start, rng.Size())
	if rng.Size() == 0 {
		r.Data = nil
	}
}

// Set stores raw bytes into the register.
func (r *Register) Set(data []byte, linewise bool) {
	r.Data = append([]byte(nil), data...)
	r.Linewise = linewise
}

func isRegisterName(b byte) bool {
	return b == RegisterDefault || b == RegisterClipboard || ('a' <= b && b <= 'z')
}

func isMarkName(b byte) bool {
	return ('a' <= b && b <= 'z') || b == '\'' || b == '`' || b == '<' || b == '>'
}

// Register returns the named register, creating it on first use.
// Unknown names fall back to the default register.
func (ed *Editor) Register(name byte) *Register {
	if !isRegisterName(name) {
		name = RegisterDefault
	}
	reg, ok := ed.registers[name]
	if !ok {
		reg = &Register{name: name}
		ed.registers[name] = reg
	}
	return reg
}

// cursorRegister returns the per-cursor register used when multiple
// cursors edit at once.
func (ed *Editor) cursorRegister(c *view.Cursor) *Register {
	reg, ok := ed.cursorRegs[c]
	if !ok {
		reg = &Register{}
		ed.cursorRegs[c] = reg
	}
	return reg
}
