package editor

import "strings"

// CommandFunc executes one prompt command with its arguments. It
// returns false when the command failed.
type CommandFunc func(ed *Editor, args []string) bool

// CommandRegister adds a prompt command under the given name.
func (ed *Editor) CommandRegister(name string, fn CommandFunc) {
	ed.commands[name] = fn
}

// PromptShow opens the prompt line. typ is ':' for commands, '/' and
// '?' for searches.
func (ed *Editor) PromptShow(typ byte) {
	ed.promptType = typ
	ed.ui.PromptShow(string(typ), "")
	ed.ModeSwitch(ModePrompt)
}

// PromptEnter executes the prompt contents. The editor first returns to
// the mode the prompt was opened from, which hides the prompt, then
// runs the command in that mode.
func (ed *Editor) PromptEnter() {
	s := ed.ui.PromptGet()
	ed.modeSet(ed.modeBeforePrompt)
	if s != "" && ed.PromptCmd(ed.promptType, s) && ed.running {
		ed.ModeSwitch(ModeNormal)
	}
	ed.Draw()
}

// PromptCmd dispatches a prompt line: searches for '/' and '?', command
// execution for ':' and the '+' startup arguments.
func (ed *Editor) PromptCmd(typ byte, cmd string) bool {
	if cmd == "" {
		return true
	}
	switch typ {
	case '/':
		return ed.Motion(MoveSearchForward, cmd)
	case '?':
		return ed.Motion(MoveSearchBackward, cmd)
	case '+', ':':
		return ed.Command(cmd)
	}
	return false
}

// Command runs a ':' command line.
func (ed *Editor) Command(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	fn, ok := ed.commands[fields[0]]
	if !ok {
		ed.Info("unknown command: %s", fields[0])
		return false
	}
	return fn(ed, fields[1:])
}

func registerDefaultCommands(ed *Editor) {
	quit := func(ed *Editor, args []string) bool {
		ed.WindowClose(ed.win)
		return true
	}
	quitAll := func(ed *Editor, args []string) bool {
		ed.Exit(0)
		return true
	}
	write := func(ed *Editor, args []string) bool {
		name := ed.win.File.Name
		if len(args) > 0 {
			name = args[0]
		}
		if name == "" {
			ed.Info("no file name")
			return false
		}
		if err := ed.win.File.Text.Save(name); err != nil {
			ed.Info("write failed: %v", err)
			return false
		}
		ed.win.File.Name = name
		return true
	}
	writeQuit := func(ed *Editor, args []string) bool {
		if !write(ed, args) {
			return false
		}
		return quit(ed, nil)
	}
	edit := func(ed *Editor, args []string) bool {
		if len(args) == 0 {
			return ed.WindowReload(ed.win) == nil
		}
		_, err := ed.WindowNew(args[0])
		if err != nil {
			ed.Info("can not open %s: %v", args[0], err)
			return false
		}
		return true
	}
	split := func(ed *Editor, args []string) bool {
		ed.WindowSplit(ed.win)
		return true
	}
	set := func(ed *Editor, args []string) bool {
		return ed.setOption(args)
	}

	ed.CommandRegister("q", quit)
	ed.CommandRegister("quit", quit)
	ed.CommandRegister("q!", quit)
	ed.CommandRegister("qa", quitAll)
	ed.CommandRegister("qall", quitAll)
	ed.CommandRegister("w", write)
	ed.CommandRegister("write", write)
	ed.CommandRegister("wq", writeQuit)
	ed.CommandRegister("x", writeQuit)
	ed.CommandRegister("e", edit)
	ed.CommandRegister("edit", edit)
	ed.CommandRegister("sp", split)
	ed.CommandRegister("split", split)
	ed.CommandRegister("set", set)
}

// setOption handles :set name[=value] for the editor options.
func (ed *Editor) setOption(args []string) bool {
	if len(args) == 0 {
		return false
	}
	name, value := args[0], ""
	if i := strings.IndexByte(name, '='); i >= 0 {
		name, value = name[:i], name[i+1:]
	} else if len(args) > 1 {
		value = args[1]
	}
	switch name {
	case "tabwidth", "tw":
		n := 0
		for _, r := range value {
			if r < '0' || r > '9' {
				n = -1
				break
			}
			n = n*10 + int(r-'0')
		}
		if n < 1 {
			ed.Info("invalid tabwidth: %q", value)
			return false
		}
		ed.TabWidth = n
	case "expandtab", "et":
		ed.ExpandTab = true
	case "noexpandtab", "noet":
		ed.ExpandTab = false
	case "autoindent", "ai":
		ed.AutoIndent = true
	case "noautoindent", "noai":
		ed.AutoIndent = false
	default:
		ed.Info("unknown option: %s", name)
		return false
	}
	return true
}
