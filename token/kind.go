// Package token defines the lexical units produced by the tokenizer and
// consumed by the parser.
package token

// Kind discriminates tokens. EOF is never produced by the tokenizer, it is
// the sentinel the parser reads past the end of its input.
// ENUM(EOF, ident, function, at-keyword, hash, string, bad-string, url, bad-url, delim, number, percentage, dimension, whitespace, comment, colon, semicolon, comma, cdo, cdc, left-parens, right-parens, left-square, right-square, left-curly, right-curly)
type Kind int

// Numeric flag carried by number and dimension tokens.
// ENUM(integer, decimal)
type NumberType int

// IsOpen reports whether k starts a simple block.
func (k Kind) IsOpen() bool {
	return k == KindLeftCurly || k == KindLeftSquare || k == KindLeftParens
}

// Mirror returns the closing kind for an opening bracket kind.
func (k Kind) Mirror() Kind {
	switch k {
	case KindLeftCurly:
		return KindRightCurly
	case KindLeftSquare:
		return KindRightSquare
	case KindLeftParens:
		return KindRightParens
	default:
		// this should never happen
		panic("no mirror for token kind " + k.String())
	}
}

// HasValue reports whether tokens of this kind carry a textual value.
func (k Kind) HasValue() bool {
	switch k {
	case KindEOF, KindBadString, KindBadUrl, KindCdo, KindCdc:
		return false
	}
	return true
}

// IsNumeric reports whether tokens of this kind carry a number.
func (k Kind) IsNumeric() bool {
	return k == KindNumber || k == KindPercentage || k == KindDimension
}
