package newick

import (
	"fmt"
	"unicode/utf8"
)

type itemType int

const (
	itemEOF itemType = iota
	itemDescendentsStart
	itemDescendentsEnd
	itemDelimiter
	itemLength
	itemTerminal
	itemBlank
	itemText
)

const (
	descStart     = '('
	descEnd       = ')'
	descDelimiter = ','
	lengthStart   = ':'
	terminal      = ';'
)

type item struct {
	typ  itemType
	val  string
	line int
	col  int
}

// lexer splits its input into delimiter tokens (one character each) and
// text tokens (maximal runs of anything else).
type lexer struct {
	input string
	pos   int
	line  int
	col   int
}

func lex(input string) *lexer {
	return &lexer{
		input: input,
		line:  1,
		col:   1,
	}
}

// nextItem returns the next token, blanks included. Once the input is
// exhausted, every call returns an itemEOF.
func (lx *lexer) nextItem() item {
	if lx.pos >= len(lx.input) {
		return item{itemEOF, "", lx.line, lx.col}
	}
	line, col := lx.line, lx.col
	r, width := utf8.DecodeRuneInString(lx.input[lx.pos:])
	if typ, ok := delimiterType(r); ok {
		lx.advance(r, width)
		return item{typ, string(r), line, col}
	}

	start := lx.pos
	for lx.pos < len(lx.input) {
		r, width = utf8.DecodeRuneInString(lx.input[lx.pos:])
		if _, ok := delimiterType(r); ok {
			break
		}
		lx.advance(r, width)
	}
	return item{itemText, lx.input[start:lx.pos], line, col}
}

// nextToken is nextItem with blanks skipped.
func (lx *lexer) nextToken() item {
	for {
		it := lx.nextItem()
		if it.typ != itemBlank {
			return it
		}
	}
}

func (lx *lexer) advance(r rune, width int) {
	lx.pos += width
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
}

func delimiterType(r rune) (itemType, bool) {
	switch r {
	case descStart:
		return itemDescendentsStart, true
	case descEnd:
		return itemDescendentsEnd, true
	case descDelimiter:
		return itemDelimiter, true
	case lengthStart:
		return itemLength, true
	case terminal:
		return itemTerminal, true
	}
	if isBlank(r) || isNL(r) {
		return itemBlank, true
	}
	return 0, false
}

func isBlank(r rune) bool {
	return r == '\t' || r == ' '
}

func isNL(r rune) bool {
	return r == '\n' || r == '\r'
}

func (itype itemType) String() string {
	switch itype {
	case itemEOF:
		return "EOF"
	case itemDescendentsStart:
		return "Descendents (start)"
	case itemDescendentsEnd:
		return "Descendents (end)"
	case itemDelimiter:
		return "Delimiter"
	case itemLength:
		return "Length"
	case itemTerminal:
		return "Terminal"
	case itemBlank:
		return "Blank"
	case itemText:
		return "Text"
	}
	panic(fmt.Sprintf("BUG: Unknown type '%d'.", int(itype)))
}

func (item item) String() string {
	return fmt.Sprintf("(%s, %s)", item.typ.String(), escapeSpecial(item.val))
}

func escapeSpecial(s string) string {
	switch s {
	case "\n":
		return "\\n"
	case "\r":
		return "\\r"
	case "\t":
		return "\\t"
	}
	return s
}
