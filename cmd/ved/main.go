package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/niklas-heer/ved/internal/config"
	"github.com/niklas-heer/ved/internal/editor"
	"github.com/niklas-heer/ved/internal/tui"
)

// Version is the release version shown by -v.
var Version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ved: bad config: %v\n", err)
		os.Exit(1)
	}

	themeName := ""
	if cfg.Theme != nil {
		themeName = *cfg.Theme
	}
	m := tui.New(tui.LoadTheme(themeName))
	ed := m.Editor()
	applyConfig(ed, cfg)

	stdinFile, err := openArgs(ed, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ved: %v\n", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if stdinFile {
		// the buffer was slurped from stdin; key input needs the tty
		tty, err := os.Open("/dev/tty")
		if err != nil {
			fmt.Fprintf(os.Stderr, "ved: can not reopen stdin: %v\n", err)
			os.Exit(1)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ved: %v\n", err)
		os.Exit(1)
	}
	if msg := m.DieMessage(); msg != "" {
		os.Exit(1)
	}
	rememberFiles(ed)
	os.Exit(ed.ExitStatus())
}

func applyConfig(ed *editor.Editor, cfg *config.Config) {
	if cfg.TabWidth != nil && *cfg.TabWidth > 0 {
		ed.TabWidth = *cfg.TabWidth
	}
	if cfg.ExpandTab != nil {
		ed.ExpandTab = *cfg.ExpandTab
	}
	if cfg.AutoIndent != nil {
		ed.AutoIndent = *cfg.AutoIndent
	}
}

// openArgs opens the files named on the command line. It returns true
// when the buffer was read from standard input.
//
//	-v          print version and exit
//	--          end of options
//	+CMD        run CMD against the next opened file
//	+/pat +?pat search in the next opened file
//	-           read stdin into an empty buffer (ignored when a file is named)
//	name...     open one window per file
func openArgs(ed *editor.Editor, args []string) (bool, error) {
	var cmd string
	endOfOptions := false
	fromStdin := false

	for _, arg := range args {
		switch {
		case !endOfOptions && len(arg) > 1 && arg[0] == '-':
			switch arg {
			case "--":
				endOfOptions = true
			case "-v":
				fmt.Printf("ved %s\n", Version)
				os.Exit(0)
			default:
				return false, fmt.Errorf("unknown option: %s", arg)
			}
		case !endOfOptions && arg == "-":
			// handled below once we know no other file was opened
			fromStdin = true
		case strings.HasPrefix(arg, "+"):
			if len(arg) > 1 && (arg[1] == '/' || arg[1] == '?') {
				cmd = arg[1:]
			} else {
				cmd = arg
			}
		default:
			if _, err := ed.WindowNew(arg); err != nil {
				return false, fmt.Errorf("can not load %q: %v", arg, err)
			}
			if cmd != "" {
				ed.PromptCmd(cmd[0], cmd[1:])
				cmd = ""
			}
		}
	}

	if len(ed.Windows()) > 0 {
		return false, nil
	}

	// no files: open an empty buffer, slurping stdin for a bare "-"
	win, err := ed.WindowNew("")
	if err != nil {
		return false, fmt.Errorf("can not create empty buffer: %v", err)
	}
	if fromStdin {
		win.File.IsStdin = true
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return false, fmt.Errorf("can not read from stdin: %v", err)
		}
		txt := win.File.Text
		txt.Insert(0, data)
		txt.Snapshot()
	}
	if cmd != "" {
		ed.PromptCmd(cmd[0], cmd[1:])
	}
	return fromStdin, nil
}

// rememberFiles records the opened files in the recent list.
func rememberFiles(ed *editor.Editor) {
	for _, win := range ed.Windows() {
		if win.File.Name != "" {
			_ = config.SaveRecentFile(win.File.Name, win.View.CursorPos())
		}
	}
}
