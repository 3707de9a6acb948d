package token

import "fmt"

// Position is a location in the normalized codepoint sequence. Index counts
// codepoints from 0, Line and Column are 1-based.
type Position struct {
	Index  int `yaml:"index"`
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
}

// StartPosition is where every input begins.
var StartPosition = Position{Index: 0, Line: 1, Column: 1}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open range of consumed codepoints.
type Span struct {
	Start Position `yaml:"start"`
	End   Position `yaml:"end"`
}

// Len returns number of codepoints covered by the span.
func (s Span) Len() int {
	return s.End.Index - s.Start.Index
}

// Cover returns smallest span containing both s and o.
func (s Span) Cover(o Span) Span {
	out := s
	if o.Start.Index < out.Start.Index {
		out.Start = o.Start
	}
	if o.End.Index > out.End.Index {
		out.End = o.End
	}
	return out
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
