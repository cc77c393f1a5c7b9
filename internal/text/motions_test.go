package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sample = "first line\n\tsecond  line\n\nlast"

func TestLineBeginEnd(t *testing.T) {
	txt := New([]byte(sample))

	assert.Equal(t, 0, txt.LineBegin(5))
	assert.Equal(t, 11, txt.LineBegin(15))
	assert.Equal(t, 10, txt.LineEnd(0))
	assert.Equal(t, 24, txt.LineEnd(12))
	assert.Equal(t, len(sample), txt.LineEnd(27))
}

func TestLineEndCRLF(t *testing.T) {
	txt := New([]byte("ab\r\ncd"))
	// the visual line ends before the carriage return
	assert.Equal(t, 2, txt.LineEnd(0))
}

func TestLineStartFinishLastChar(t *testing.T) {
	txt := New([]byte(sample))

	// "\tsecond  line": first non-blank is 's'
	assert.Equal(t, 12, txt.LineStart(11))
	// last non-blank char of line one is 'e' at 9
	assert.Equal(t, 9, txt.LineFinish(0))
	assert.Equal(t, 9, txt.LineLastChar(0))

	// blank line: everything collapses onto the line begin
	assert.Equal(t, 25, txt.LineStart(25))
	assert.Equal(t, 25, txt.LineFinish(25))
	assert.Equal(t, 25, txt.LineLastChar(25))
}

func TestLineNextPrev(t *testing.T) {
	txt := New([]byte(sample))

	assert.Equal(t, 11, txt.LineNext(0))
	assert.Equal(t, 25, txt.LineNext(11))
	assert.Equal(t, len(sample), txt.LineNext(26))

	// LinePrev returns the newline terminating the previous line
	assert.Equal(t, 10, txt.LinePrev(15))
	assert.Equal(t, 0, txt.LinePrev(5))
}

func TestLineCharNextStaysOnLine(t *testing.T) {
	txt := New([]byte("ab\ncd"))
	assert.Equal(t, 1, txt.LineCharNext(0))
	// 'b' is the last character: no move
	assert.Equal(t, 1, txt.LineCharNext(1))
	// and backwards never crosses the line begin
	assert.Equal(t, 0, txt.LineCharPrev(1))
	assert.Equal(t, 0, txt.LineCharPrev(0))
	assert.Equal(t, 3, txt.LineCharPrev(3))
}

func TestLinenoAndPosByLineno(t *testing.T) {
	txt := New([]byte(sample))
	assert.Equal(t, 1, txt.Lineno(0))
	assert.Equal(t, 2, txt.Lineno(11))
	assert.Equal(t, 4, txt.Lineno(26))

	assert.Equal(t, 0, txt.PosByLineno(1))
	assert.Equal(t, 11, txt.PosByLineno(2))
	assert.Equal(t, 26, txt.PosByLineno(4))
	// clamped to the last line
	assert.Equal(t, 26, txt.PosByLineno(99))
}

func TestLineOffset(t *testing.T) {
	txt := New([]byte("abcdef\nxy"))
	assert.Equal(t, 2, txt.LineOffset(0, 3))
	assert.Equal(t, 6, txt.LineOffset(0, 99))
	assert.Equal(t, 0, txt.LineOffset(4, 0))
}

func TestWordMotions(t *testing.T) {
	//                 0123456789012345
	txt := New([]byte("foo bar() baz"))

	assert.Equal(t, 4, txt.WordStartNext(0))
	assert.Equal(t, 7, txt.WordStartNext(4))  // punctuation starts a new word
	assert.Equal(t, 10, txt.WordStartNext(7)) // over "()"

	assert.Equal(t, 2, txt.WordEndNext(0))
	assert.Equal(t, 6, txt.WordEndNext(2))

	assert.Equal(t, 4, txt.WordStartPrev(7))
	assert.Equal(t, 0, txt.WordStartPrev(4))
	assert.Equal(t, 2, txt.WordEndPrev(4))
}

func TestLongwordMotions(t *testing.T) {
	txt := New([]byte("foo bar() baz"))

	assert.Equal(t, 4, txt.LongwordStartNext(0))
	// "bar()" is one blank-delimited word
	assert.Equal(t, 10, txt.LongwordStartNext(4))
	assert.Equal(t, 8, txt.LongwordEndNext(4))
	assert.Equal(t, 4, txt.LongwordStartPrev(10))
}

func TestSentenceMotions(t *testing.T) {
	txt := New([]byte("One two. Three four! Five"))
	assert.Equal(t, 9, txt.SentenceNext(0))
	assert.Equal(t, 21, txt.SentenceNext(9))
	assert.Equal(t, 9, txt.SentencePrev(15))
	assert.Equal(t, 0, txt.SentencePrev(5))
}

func TestParagraphMotions(t *testing.T) {
	txt := New([]byte("one\ntwo\n\nthree\n\nfour"))
	assert.Equal(t, 8, txt.ParagraphNext(0))
	assert.Equal(t, 15, txt.ParagraphNext(9))
	assert.Equal(t, 8, txt.ParagraphPrev(10))
	assert.Equal(t, 0, txt.ParagraphPrev(5))
}

func TestFunctionMotions(t *testing.T) {
	src := "func f()\n{\nbody\n}\nrest\n{\n}\n"
	txt := New([]byte(src))

	assert.Equal(t, 9, txt.FunctionStartNext(0))
	assert.Equal(t, 23, txt.FunctionStartNext(9))
	assert.Equal(t, 16, txt.FunctionEndNext(0))
	assert.Equal(t, 9, txt.FunctionStartPrev(16))
	assert.Equal(t, 16, txt.FunctionEndPrev(23))
}

func TestBracketMatch(t *testing.T) {
	//                 0123456789
	txt := New([]byte("a(b[c]d)e"))

	assert.Equal(t, 7, txt.BracketMatch(1))
	assert.Equal(t, 1, txt.BracketMatch(7))
	assert.Equal(t, 5, txt.BracketMatch(3))
	// no bracket under the cursor: no move
	assert.Equal(t, 0, txt.BracketMatch(0))
}

func TestBracketMatchNested(t *testing.T) {
	txt := New([]byte("((x))"))
	assert.Equal(t, 4, txt.BracketMatch(0))
	assert.Equal(t, 3, txt.BracketMatch(1))
	assert.Equal(t, 0, txt.BracketMatch(4))
}

func TestLineFindNextPrev(t *testing.T) {
	txt := New([]byte("abcabc\nxax"))

	assert.Equal(t, 3, txt.LineFindNext(1, 'a'))
	// not found on this line: position unchanged
	assert.Equal(t, 1, txt.LineFindNext(1, 'x'))
	assert.Equal(t, 0, txt.LineFindPrev(2, 'a'))

	// searches never cross the newline
	assert.Equal(t, 8, txt.LineFindNext(7, 'a'))
}

func TestBeginEnd(t *testing.T) {
	txt := New([]byte("one\ntwo\nthree"))
	assert.Equal(t, 0, txt.Begin(7))
	assert.Equal(t, 8, txt.End(0))
}
