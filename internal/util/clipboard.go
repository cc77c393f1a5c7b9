package util

import (
	"os/exec"
	"strings"
)

// clipboardWriters are tried in order; the first available tool wins.
var clipboardWriters = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
}

var clipboardReaders = [][]string{
	{"pbpaste"},
	{"wl-paste", "--no-newline"},
	{"xclip", "-selection", "clipboard", "-o"},
}

// CopyToClipboard copies text to the system clipboard
func CopyToClipboard(text string) {
	for _, argv := range clipboardWriters {
		if _, err := exec.LookPath(argv[0]); err != nil {
			continue
		}
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stdin = strings.NewReader(text)
		_ = cmd.Run() // Ignore error - clipboard may not be available
		return
	}
}

// PasteFromClipboard retrieves text from the system clipboard
func PasteFromClipboard() string {
	for _, argv := range clipboardReaders {
		if _, err := exec.LookPath(argv[0]); err != nil {
			continue
		}
		out, err := exec.Command(argv[0], argv[1:]...).Output()
		if err != nil {
			return ""
		}
		return string(out)
	}
	return ""
}
