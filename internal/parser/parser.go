// Package parser implements a strict recursive-descent parser for the
// RFC 8259 JSON value grammar, minus comments, trailing commas and the
// NaN/Infinity literals. It produces a models.Value tree and reports the
// exact character position of the first grammar violation.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mcncl/jsontree/internal/models"
)

// ParseError is the single error kind produced by the parser. Position is
// the 0-based count of characters already consumed from the input when
// the violation was detected.
type ParseError struct {
	Message  string
	Position int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Position, e.Message)
}

// Parse converts a JSON document into a Value tree. On the first grammar
// violation it returns a *ParseError and discards any partially built
// tree. Independent calls share no state and may run concurrently.
func Parse(text string) (models.Value, error) {
	p := &parser{cur: newCursor(text)}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.cur.skipWhitespace()

	if _, ok := p.cur.peek(); ok {
		return nil, p.errorf("Unexpected characters after JSON value")
	}
	return value, nil
}

// parser holds the scan state for one Parse invocation. Each production
// below consumes exactly the characters of its grammar rule and nothing
// more; failure aborts the whole parse.
type parser struct {
	cur *cursor
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Message:  fmt.Sprintf(format, args...),
		Position: p.cur.pos,
	}
}

// parseValue dispatches on a single character of lookahead.
func (p *parser) parseValue() (models.Value, error) {
	p.cur.skipWhitespace()

	c, ok := p.cur.peek()
	if !ok {
		return nil, p.errorf("Unexpected end of input")
	}
	switch {
	case c == 'n':
		return p.parseNull()
	case c == 't' || c == 'f':
		return p.parseBool()
	case c == '"':
		return p.parseString()
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseObject()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, p.errorf("Unexpected character: %c", c)
	}
}

func (p *parser) parseNull() (models.Value, error) {
	if err := p.expectKeyword("null"); err != nil {
		return nil, err
	}
	return models.Null{}, nil
}

func (p *parser) parseBool() (models.Value, error) {
	if c, _ := p.cur.peek(); c == 't' {
		if err := p.expectKeyword("true"); err != nil {
			return nil, err
		}
		return models.Bool(true), nil
	}
	if err := p.expectKeyword("false"); err != nil {
		return nil, err
	}
	return models.Bool(false), nil
}

// expectKeyword matches a literal keyword character by character.
func (p *parser) expectKeyword(keyword string) error {
	for _, expected := range keyword {
		c, ok := p.cur.advance()
		if !ok {
			return p.errorf("Unexpected end of input")
		}
		if c != expected {
			return p.errorf("Expected '%c' but got '%c'", expected, c)
		}
	}
	return nil
}

// parseString consumes a string literal, decoding escape sequences.
// A \u escape decodes exactly four hex digits into one code point;
// UTF-16 surrogate pairs are not reassembled, and a lone surrogate
// code point is rejected.
func (p *parser) parseString() (models.Value, error) {
	p.cur.advance() // opening quote

	var sb strings.Builder
	for {
		c, ok := p.cur.advance()
		if !ok {
			return nil, p.errorf("Unterminated string")
		}
		switch c {
		case '"':
			return models.String(sb.String()), nil
		case '\\':
			esc, ok := p.cur.advance()
			if !ok {
				return nil, p.errorf("Unterminated string")
			}
			switch esc {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			case '/':
				sb.WriteRune('/')
			case 'u':
				r, err := p.parseUnicodeEscape()
				if err != nil {
					return nil, err
				}
				sb.WriteRune(r)
			default:
				return nil, p.errorf("Invalid escape: \\%c", esc)
			}
		default:
			sb.WriteRune(c)
		}
	}
}

func (p *parser) parseUnicodeEscape() (rune, error) {
	var hex strings.Builder
	for i := 0; i < 4; i++ {
		c, ok := p.cur.advance()
		if !ok || !isHexDigit(c) {
			return 0, p.errorf("Invalid unicode escape")
		}
		hex.WriteRune(c)
	}
	code, err := strconv.ParseUint(hex.String(), 16, 32)
	if err != nil {
		return 0, p.errorf("Invalid unicode escape")
	}
	r := rune(code)
	if !utf8.ValidRune(r) {
		return 0, p.errorf("Invalid unicode code point")
	}
	return r, nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// parseNumber consumes a numeric literal following the strict JSON
// grammar: the integer part is a single 0 or a nonzero digit followed by
// further digits, the fraction and exponent each require at least one
// digit. Leading-zero forms such as 01 are not accepted.
func (p *parser) parseNumber() (models.Value, error) {
	var lexeme strings.Builder

	if c, _ := p.cur.peek(); c == '-' {
		p.cur.advance()
		lexeme.WriteRune(c)
	}

	c, ok := p.cur.peek()
	switch {
	case ok && c == '0':
		p.cur.advance()
		lexeme.WriteRune(c)
	case ok && isDigit(c):
		p.consumeDigits(&lexeme)
	default:
		return nil, p.errorf("Expected digit")
	}

	if c, ok := p.cur.peek(); ok && c == '.' {
		p.cur.advance()
		lexeme.WriteRune(c)
		if !p.consumeDigits(&lexeme) {
			return nil, p.errorf("Expected digit after decimal point")
		}
	}

	if c, ok := p.cur.peek(); ok && (c == 'e' || c == 'E') {
		p.cur.advance()
		lexeme.WriteRune(c)
		if c, ok := p.cur.peek(); ok && (c == '+' || c == '-') {
			p.cur.advance()
			lexeme.WriteRune(c)
		}
		if !p.consumeDigits(&lexeme) {
			return nil, p.errorf("Expected digit in exponent")
		}
	}

	// The grammar guarantees a well-formed float lexeme, so this
	// conversion is not expected to fail.
	n, err := strconv.ParseFloat(lexeme.String(), 64)
	if err != nil {
		return nil, p.errorf("Invalid number")
	}
	return models.Number(n), nil
}

// consumeDigits appends a maximal digit run to lexeme and reports
// whether at least one digit was consumed.
func (p *parser) consumeDigits(lexeme *strings.Builder) bool {
	seen := false
	for {
		c, ok := p.cur.peek()
		if !ok || !isDigit(c) {
			return seen
		}
		p.cur.advance()
		lexeme.WriteRune(c)
		seen = true
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (p *parser) parseArray() (models.Value, error) {
	p.cur.advance() // consume [
	p.cur.skipWhitespace()

	arr := models.Array{}
	if c, ok := p.cur.peek(); ok && c == ']' {
		p.cur.advance()
		return arr, nil
	}

	for {
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, elem)
		p.cur.skipWhitespace()

		c, ok := p.cur.peek()
		switch {
		case ok && c == ',':
			p.cur.advance()
			p.cur.skipWhitespace()
		case ok && c == ']':
			p.cur.advance()
			return arr, nil
		default:
			return nil, p.errorf("Expected ',' or ']'")
		}
	}
}

func (p *parser) parseObject() (models.Value, error) {
	p.cur.advance() // consume {
	p.cur.skipWhitespace()

	obj := models.Object{}
	if c, ok := p.cur.peek(); ok && c == '}' {
		p.cur.advance()
		return obj, nil
	}

	for {
		p.cur.skipWhitespace()

		if c, ok := p.cur.peek(); !ok || c != '"' {
			return nil, p.errorf("Expected string key")
		}
		keyValue, err := p.parseString()
		if err != nil {
			return nil, err
		}
		key := string(keyValue.(models.String))

		p.cur.skipWhitespace()
		if c, ok := p.cur.advance(); !ok || c != ':' {
			return nil, p.errorf("Expected ':'")
		}

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		// A duplicate key overwrites the earlier value.
		obj[key] = value

		p.cur.skipWhitespace()
		c, ok := p.cur.peek()
		switch {
		case ok && c == ',':
			p.cur.advance()
		case ok && c == '}':
			p.cur.advance()
			return obj, nil
		default:
			return nil, p.errorf("Expected ',' or '}'")
		}
	}
}
