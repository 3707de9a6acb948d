package token

import (
	"strconv"
	"strings"
)

// Token is a single lexical unit. Which fields are meaningful depends on Kind:
//
//   - ident, function, at-keyword, hash, url: Value is the decoded name or url
//   - string: Value is the decoded contents, Quote the delimiter
//   - delim: Value is the single codepoint
//   - number, percentage, dimension: Number, Type, Unit (dimension only),
//     Value holds the numeric representation as written
//   - whitespace, comment: Value is the consumed text (comment without markers)
//
// Raw is always the exact consumed source text.
type Token struct {
	Kind   Kind
	Value  string
	Raw    string
	Quote  rune
	Number float64
	Type   NumberType
	Unit   string
	ID     bool
	Span   Span
}

// EOF returns the end of input sentinel positioned at pos.
func EOF(pos Position) Token {
	return Token{Kind: KindEOF, Span: Span{Start: pos, End: pos}}
}

// Is reports whether token is of kind k.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}

// IsDelim reports whether token is the delim c.
func (t Token) IsDelim(c string) bool {
	return t.Kind == KindDelim && t.Value == c
}

// IsIdent reports whether token is an ident matching name case-insensitively.
func (t Token) IsIdent(name string) bool {
	return t.Kind == KindIdent && strings.EqualFold(t.Value, name)
}

// String renders token in debug form: kind(value).
func (t Token) String() string {
	var b strings.Builder
	b.WriteString(t.Kind.String())
	b.WriteByte('(')
	switch {
	case t.Kind.IsNumeric():
		b.WriteString(FormatNumber(t.Number, t.Type))
		if t.Kind == KindDimension {
			b.WriteByte(' ')
			b.WriteString(strconv.Quote(t.Unit))
		}
	case t.Kind.HasValue():
		b.WriteString(strconv.Quote(t.Value))
	}
	b.WriteByte(')')
	return b.String()
}

// FormatNumber renders a numeric token value. Integers never get a
// fractional part.
func FormatNumber(n float64, typ NumberType) string {
	if typ == NumberTypeInteger {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// Stringify renders tokens in debug form separated by spaces. It is meant for
// diagnostics and is not a serializer.
func Stringify(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}
