package template

import (
	"fmt"
	"strings"
)

type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemText    // literal template text
	itemExpr    // interior of {{ ... }}
	itemTag     // interior of {% ... %}
	itemComment // interior of {# ... #}
)

// item is one token produced by the lexer. For itemError, val holds the
// message.
type item struct {
	typ  itemType
	line int // 1-based line the item starts on
	val  string
}

// lexer splits template source into literal text and tag interiors. It
// is a pull lexer: the parser calls nextItem until itemEOF or
// itemError.
type lexer struct {
	input string
	pos   int
	line  int // 1-based line at pos
}

func newLexer(input string) *lexer {
	return &lexer{input: input, line: 1}
}

const (
	leftExpr    = "{{"
	rightExpr   = "}}"
	leftTag     = "{%"
	rightTag    = "%}"
	leftComment = "{#"
	rightCommnt = "#}"
)

func (l *lexer) nextItem() item {
	for {
		if l.pos >= len(l.input) {
			return item{typ: itemEOF, line: l.line}
		}

		open, right, typ := l.nextDelim()
		if open < 0 {
			return l.emitText(len(l.input))
		}
		if open > l.pos {
			return l.emitText(open)
		}

		start := l.pos + 2
		end := strings.Index(l.input[start:], right)
		if end < 0 {
			return item{typ: itemError, line: l.line, val: fmt.Sprintf("unclosed %s", l.input[l.pos:start])}
		}

		it := item{typ: typ, line: l.line, val: l.input[start : start+end]}
		l.advanceTo(start + end + len(right))

		if typ == itemTag && strings.TrimSpace(it.val) == "raw" {
			raw, ok := l.lexRawBlock(it.line)
			if !ok {
				return raw
			}
			if raw.val == "" {
				continue
			}
			return raw
		}
		return it
	}
}

// nextDelim locates the earliest tag opener at or after pos, returning
// its offset, closing delimiter, and item type. Offset -1 means the
// rest of the input is literal text.
func (l *lexer) nextDelim() (int, string, itemType) {
	open, right, typ := -1, "", itemText
	for _, d := range []struct {
		left, right string
		typ         itemType
	}{
		{leftExpr, rightExpr, itemExpr},
		{leftTag, rightTag, itemTag},
		{leftComment, rightCommnt, itemComment},
	} {
		if i := strings.Index(l.input[l.pos:], d.left); i >= 0 {
			if abs := l.pos + i; open < 0 || abs < open {
				open, right, typ = abs, d.right, d.typ
			}
		}
	}
	return open, right, typ
}

// emitText returns the literal text from pos up to end.
func (l *lexer) emitText(end int) item {
	it := item{typ: itemText, line: l.line, val: l.input[l.pos:end]}
	l.advanceTo(end)
	return it
}

// lexRawBlock consumes everything between a {% raw %} tag and the next
// {% endraw %}, returning it as a single text item. ok is false when
// the block never closes, in which case the returned item is the error.
func (l *lexer) lexRawBlock(rawLine int) (item, bool) {
	start := l.pos
	startLine := l.line
	search := l.pos
	for {
		open := strings.Index(l.input[search:], leftTag)
		if open < 0 {
			return item{typ: itemError, line: rawLine, val: "unclosed {% raw %}"}, false
		}
		abs := search + open
		end := strings.Index(l.input[abs+2:], rightTag)
		if end < 0 {
			return item{typ: itemError, line: rawLine, val: "unclosed {% raw %}"}, false
		}
		if strings.TrimSpace(l.input[abs+2:abs+2+end]) == "endraw" {
			it := item{typ: itemText, line: startLine, val: l.input[start:abs]}
			l.advanceTo(abs + 2 + end + 2)
			return it, true
		}
		search = abs + 2
	}
}

// advanceTo moves pos to off, keeping the line counter in step.
func (l *lexer) advanceTo(off int) {
	l.line += strings.Count(l.input[l.pos:off], "\n")
	l.pos = off
}
