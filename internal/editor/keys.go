package editor

import (
	"strings"
	"unicode/utf8"
)

// KeyActionFunc runs when its key matches. keys is the input following
// the matched key; the function returns how many bytes of it it
// consumed. ok is false when the action needs more input than is
// available; the resolver then keeps the whole sequence pending until
// more keys arrive.
type KeyActionFunc func(ed *Editor, keys string, arg Arg) (consumed int, ok bool)

// KeyAction is an invocable editor function a key can be bound to. Free
// standing actions are also reachable as <Name> pseudo keys.
type KeyAction struct {
	Name string
	Help string
	Func KeyActionFunc
	Arg  Arg
}

// KeyBinding binds a key sequence to an action or to an alias that is
// prepended to the input and re-resolved.
type KeyBinding struct {
	Action *KeyAction
	Alias  string
}

// ActionRegister makes a free-standing action reachable as <Name>.
func (ed *Editor) ActionRegister(action *KeyAction) bool {
	if action == nil || action.Name == "" {
		return false
	}
	ed.actions[action.Name] = action
	return true
}

// keyBuffer is an in-flight key queue.
type keyBuffer struct {
	data []byte
}

func (b *keyBuffer) set(s string)   { b.data = append(b.data[:0], s...) }
func (b *keyBuffer) add(s string)   { b.data = append(b.data, s...) }
func (b *keyBuffer) String() string { return string(b.data) }
func (b *keyBuffer) truncate()      { b.data = b.data[:0] }
func (b *keyBuffer) insert(off int, s string) {
	b.data = append(b.data[:off:off], append([]byte(s), b.data[off:]...)...)
}

// specialKeyNames are the <Name> tokens accepted beside modifier forms.
var specialKeyNames = map[string]bool{
	"Enter": true, "Esc": true, "Escape": true, "Space": true,
	"Tab": true, "Backspace": true, "BS": true, "Del": true,
	"Delete": true, "Up": true, "Down": true, "Left": true,
	"Right": true, "Home": true, "End": true, "PageUp": true,
	"PageDown": true, "Insert": true,
	"F1": true, "F2": true, "F3": true, "F4": true, "F5": true,
	"F6": true, "F7": true, "F8": true, "F9": true, "F10": true,
	"F11": true, "F12": true,
}

func isSpecialKeyName(name string) bool {
	for strings.HasPrefix(name, "C-") || strings.HasPrefix(name, "S-") || strings.HasPrefix(name, "M-") {
		name = name[2:]
	}
	if name == "" || name == "<" || name == ">" {
		return false
	}
	if specialKeyNames[name] {
		return true
	}
	return utf8.RuneCountInString(name) == 1
}

// KeyNext returns the length of the first key token of keys: either an
// angle-bracketed special of the form <Name>, or one UTF-8 rune. A
// literal '<' that does not open a valid special is a one-byte token.
func (ed *Editor) KeyNext(keys string) int {
	if keys == "" {
		return 0
	}
	if keys[0] == '<' {
		if end := strings.IndexByte(keys, '>'); end > 1 && end < 64 {
			name := keys[1:end]
			if isSpecialKeyName(name) {
				return end + 1
			}
			if _, ok := ed.actions[name]; ok {
				return end + 1
			}
		}
		return 1
	}
	_, n := utf8.DecodeRuneInString(keys)
	return n
}

// Inject inserts input into the in-flight key buffer at byte offset
// off. Valid only while resolution is running, i.e. from within a key
// action. A recording operator macro also captures the injection.
func (ed *Editor) Inject(off int, input string) bool {
	if ed.keys == nil || off < 0 || off > len(ed.keys.data) {
		return false
	}
	ed.keys.insert(off, input)
	if ed.macroOperator != nil {
		ed.macroOperator.Append(input)
	}
	return true
}

// Input feeds raw key tokens into the editor, one token at a time as
// the UI delivers them. Every key is appended to the active user macro
// and to the operator macro before resolution, so recordings capture
// exactly what was typed.
func (ed *Editor) Input(input string) {
	for input != "" {
		n := ed.KeyNext(input)
		if n == 0 {
			return
		}
		key := input[:n]
		input = input[n:]
		if ed.recording != nil {
			ed.recording.Append(key)
		}
		if ed.macroOperator != nil {
			ed.macroOperator.Append(key)
		}
		ed.input.add(key)
		ed.keysRaw(&ed.input)
	}
}

// keysRaw runs the resolution loop over buf: parse one key at a time,
// walk the mode tree for an exact binding or a prefix, fall back to
// free-standing <Name> actions, and finally deliver unresolved bytes to
// the mode's input hook. Unconsumed trailing input (a prefix, or a key
// whose action awaits an argument) stays in buf for the next call.
func (ed *Editor) keysRaw(buf *keyBuffer) {
	start, cur := 0, 0
	prevKeys := ed.keys
	ed.keys = buf
	defer func() { ed.keys = prevKeys }()

	for cur < len(buf.data) {
		tok := ed.KeyNext(string(buf.data[cur:]))
		if tok == 0 {
			// unparseable input should never happen: drop the queue
			buf.truncate()
			return
		}
		end := cur + tok
		candidate := string(buf.data[start:end])
		key := string(buf.data[cur:end])

		var binding *KeyBinding
		prefix := false
		for m := ed.mode; m != nil && binding == nil && !prefix; m = ed.parent(m) {
			binding = m.bindings[candidate]
			// "<" is never treated as a prefix because it denotes
			// special key symbols
			if key != "<" {
				prefix = binding == nil && bindingsContainPrefix(m.bindings, candidate)
			}
		}

		switch {
		case binding != nil:
			if binding.Action != nil {
				n, ok := binding.Action.Func(ed, string(buf.data[end:]), binding.Action.Arg)
				if !ok {
					// await more input, re-resolve the key then
					buf.set(string(buf.data[start:]))
					return
				}
				buf.set(string(buf.data[end+n:]))
				start, cur = 0, 0
			} else {
				buf.set(binding.Alias + string(buf.data[end:]))
				start, cur = 0, 0
			}
		case prefix:
			cur = end
		default:
			dispatched := false
			if len(candidate) > 2 && candidate[0] == '<' && candidate[len(candidate)-1] == '>' {
				if action, ok := ed.actions[candidate[1:len(candidate)-1]]; ok {
					n, ok := action.Func(ed, string(buf.data[end:]), action.Arg)
					if !ok {
						buf.set(string(buf.data[start:]))
						return
					}
					buf.set(string(buf.data[end+n:]))
					start, cur = 0, 0
					dispatched = true
				}
			}
			if !dispatched {
				if ed.mode.Input != nil {
					ed.mode.Input(ed, candidate)
				}
				start, cur = end, end
			}
		}
	}

	buf.set(string(buf.data[start:]))
}

// bindingsContainPrefix reports whether any binding key is longer than
// and starts with the candidate.
func bindingsContainPrefix(bindings map[string]*KeyBinding, candidate string) bool {
	for key := range bindings {
		if len(key) > len(candidate) && strings.HasPrefix(key, candidate) {
			return true
		}
	}
	return false
}
