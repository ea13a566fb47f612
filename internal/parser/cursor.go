package parser

import (
	"unicode"
	"unicode/utf8"
)

// cursor is a forward-only scanner over the input text. It decodes one
// rune at a time and tracks how many characters have been consumed, which
// is the position reported in parse errors. Positions count characters,
// not bytes. There is no rewind; the parser is strictly LL(1).
type cursor struct {
	input string
	off   int // byte offset of the next undecoded rune
	pos   int // characters consumed so far
}

func newCursor(input string) *cursor {
	return &cursor{input: input}
}

// advance consumes and returns the next character. It reports ok=false
// once the input is exhausted; the position is unchanged in that case.
func (c *cursor) advance() (rune, bool) {
	if c.off >= len(c.input) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.off:])
	c.off += size
	c.pos++
	return r, true
}

// peek returns the next character without consuming it.
func (c *cursor) peek() (rune, bool) {
	if c.off >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.off:])
	return r, true
}

// skipWhitespace consumes a maximal run of Unicode whitespace.
func (c *cursor) skipWhitespace() {
	for {
		r, ok := c.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		c.advance()
	}
}
