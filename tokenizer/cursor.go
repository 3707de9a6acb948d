package tokenizer

import (
	"fmt"

	"cssfe/token"
)

// cursor walks normalized codepoints keeping the current position.
type cursor struct {
	cps []rune
	pos token.Position
}

func (c *cursor) eof() bool {
	return c.pos.Index >= len(c.cps)
}

// peek returns codepoint n positions ahead without consuming it.
func (c *cursor) peek(n int) rune {
	if i := c.pos.Index + n; i < len(c.cps) {
		return c.cps[i]
	}
	return eof
}

// advance consumes one codepoint. Reading past the end is a bug in the
// tokenizer, not in the input.
func (c *cursor) advance() rune {
	if c.eof() {
		panic(fmt.Sprintf("tokenizer over-read at index %d of %d", c.pos.Index, len(c.cps)))
	}
	r := c.cps[c.pos.Index]
	c.pos.Index++
	if r == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	return r
}

// isolated runs lookahead fn and restores the position afterwards whatever
// fn did.
func (c *cursor) isolated(fn func() bool) bool {
	saved := c.pos
	defer func() { c.pos = saved }()
	return fn()
}

// scoped runs fn and returns the codepoints it consumed.
func (c *cursor) scoped(fn func()) []rune {
	start := c.pos.Index
	fn()
	return c.cps[start:c.pos.Index:c.pos.Index]
}

// validEscapeAt reports whether a backslash at offset n starts an escape.
func (c *cursor) validEscapeAt(n int) bool {
	return c.peek(n) == '\\' && c.peek(n+1) != '\n'
}

// identSequenceStartAt reports whether an identifier sequence starts at
// offset n.
func (c *cursor) identSequenceStartAt(n int) bool {
	switch r := c.peek(n); {
	case r == '-':
		next := c.peek(n + 1)
		return isIdentStart(next) || next == '-' || c.validEscapeAt(n+1)
	case r == '\\':
		return c.validEscapeAt(n)
	default:
		return isIdentStart(r)
	}
}

// startsNumber reports whether a numeric literal starts at the cursor.
func (c *cursor) startsNumber() bool {
	switch r := c.peek(0); {
	case r == '+' || r == '-':
		next := c.peek(1)
		return isDigit(next) || (next == '.' && isDigit(c.peek(2)))
	case r == '.':
		return isDigit(c.peek(1))
	default:
		return isDigit(r)
	}
}
