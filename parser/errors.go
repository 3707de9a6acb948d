package parser

import "fmt"

// SyntaxError is returned by strict entry points. Line and Column point at
// the end of the offending token.
type SyntaxError struct {
	Message string
	Line    int
	Column  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s at line %d column %d", e.Message, e.Line, e.Column)
}
