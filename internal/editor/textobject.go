package editor

import "github.com/niklas-heer/ved/internal/text"

// TextObjectID identifies a text object in the catalogue.
type TextObjectID int

const (
	TextObjectInnerWord TextObjectID = iota + 1
	TextObjectOuterWord
	TextObjectInnerLongword
	TextObjectOuterLongword
	TextObjectSentence
	TextObjectParagraph
	TextObjectInnerSquareBracket
	TextObjectOuterSquareBracket
	TextObjectInnerCurlyBracket
	TextObjectOuterCurlyBracket
	TextObjectInnerAngleBracket
	TextObjectOuterAngleBracket
	TextObjectInnerParen
	TextObjectOuterParen
	TextObjectInnerQuote
	TextObjectOuterQuote
	TextObjectInnerSingleQuote
	TextObjectOuterSingleQuote
	TextObjectInnerBacktick
	TextObjectOuterBacktick
	TextObjectInnerEntire
	TextObjectOuterEntire
	TextObjectInnerFunction
	TextObjectOuterFunction
	TextObjectInnerLine
	TextObjectOuterLine
)

// TextObject is one catalogue entry. Outer marks delimiter-pair objects
// whose range the executor grows by one byte per side to take the
// delimiters in.
type TextObject struct {
	Range func(*text.Text, int) text.Range
	Outer bool
}

var textobjects = map[TextObjectID]*TextObject{
	TextObjectInnerWord:          {Range: (*text.Text).ObjectWord},
	TextObjectOuterWord:          {Range: (*text.Text).ObjectWordOuter},
	TextObjectInnerLongword:      {Range: (*text.Text).ObjectLongword},
	TextObjectOuterLongword:      {Range: (*text.Text).ObjectLongwordOuter},
	TextObjectSentence:           {Range: (*text.Text).ObjectSentence},
	TextObjectParagraph:          {Range: (*text.Text).ObjectParagraph},
	TextObjectInnerSquareBracket: {Range: (*text.Text).ObjectSquareBracket},
	TextObjectOuterSquareBracket: {Range: (*text.Text).ObjectSquareBracket, Outer: true},
	TextObjectInnerCurlyBracket:  {Range: (*text.Text).ObjectCurlyBracket},
	TextObjectOuterCurlyBracket:  {Range: (*text.Text).ObjectCurlyBracket, Outer: true},
	TextObjectInnerAngleBracket:  {Range: (*text.Text).ObjectAngleBracket},
	TextObjectOuterAngleBracket:  {Range: (*text.Text).ObjectAngleBracket, Outer: true},
	TextObjectInnerParen:         {Range: (*text.Text).ObjectParen},
	TextObjectOuterParen:         {Range: (*text.Text).ObjectParen, Outer: true},
	TextObjectInnerQuote:         {Range: (*text.Text).ObjectQuote},
	TextObjectOuterQuote:         {Range: (*text.Text).ObjectQuote, Outer: true},
	TextObjectInnerSingleQuote:   {Range: (*text.Text).ObjectSingleQuote},
	TextObjectOuterSingleQuote:   {Range: (*text.Text).ObjectSingleQuote, Outer: true},
	TextObjectInnerBacktick:      {Range: (*text.Text).ObjectBacktick},
	TextObjectOuterBacktick:      {Range: (*text.Text).ObjectBacktick, Outer: true},
	TextObjectInnerEntire:        {Range: (*text.Text).ObjectEntireInner},
	TextObjectOuterEntire:        {Range: (*text.Text).ObjectEntire},
	TextObjectInnerFunction:      {Range: (*text.Text).ObjectFunctionInner},
	TextObjectOuterFunction:      {Range: (*text.Text).ObjectFunction},
	TextObjectInnerLine:          {Range: (*text.Text).ObjectLineInner},
	TextObjectOuterLine:          {Range: (*text.Text).ObjectLine},
}

func (ed *Editor) textobject(id TextObjectID) *TextObject {
	return textobjects[id]
}
