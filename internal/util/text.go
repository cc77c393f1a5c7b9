package util

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ANSI escape code regex (matches SGR color/style sequences and OSC 8 hyperlinks)
var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m|\x1b\]8;;[^\x1b]*\x1b\\`)

// StripANSI removes ANSI escape codes from text
func StripANSI(text string) string {
	return ansiRe.ReplaceAllString(text, "")
}

// VisibleWidth returns the visible width of text, ignoring ANSI escape codes
func VisibleWidth(text string) int {
	stripped := StripANSI(text)
	return runewidth.StringWidth(stripped)
}

// Truncate shortens text to fit maxWidth display columns, appending an
// ellipsis when it was cut.
func Truncate(text string, maxWidth int) string {
	if maxWidth <= 0 || VisibleWidth(text) <= maxWidth {
		return text
	}
	return runewidth.Truncate(text, maxWidth, "…")
}

// ExpandTabs renders tab characters as spaces up to the next tab stop.
func ExpandTabs(line string, tabwidth int) string {
	if tabwidth < 1 {
		tabwidth = 8
	}
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabwidth - col%tabwidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

// Min returns the smaller of two ints
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two ints
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
