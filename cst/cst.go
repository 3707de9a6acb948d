// Package cst holds the concrete syntax tree produced by the parser. Nodes
// are built once and never shared between parents.
package cst

import (
	"strings"

	"cssfe/token"
)

// Node is any tree node.
type Node interface {
	Location() token.Span
}

// ComponentValue is a preserved token, a simple block or a function.
type ComponentValue interface {
	Node
	componentValue()
}

// Rule is an at-rule or a qualified rule.
type Rule interface {
	Node
	rule()
}

// BlockItem is anything block contents can be reinterpreted into: a
// declaration or a nested rule.
type BlockItem interface {
	Node
	blockItem()
}

// Token is a preserved token used as a component value.
type Token struct {
	token.Token
}

func (t *Token) Location() token.Span { return t.Span }
func (*Token) componentValue()        {}

// SimpleBlock is a bracket delimited run of component values. Tokens is the
// slice of input between the brackets, Values is what the parser built from
// it. Contents is non-nil only when block is reinterpreted as declarations and
// nested rules, it stays empty (not nil) when every item was dropped.
type SimpleBlock struct {
	Open     token.Token
	Tokens   []token.Token
	Values   []ComponentValue
	Contents []BlockItem
	Span     token.Span
}

func (b *SimpleBlock) Location() token.Span { return b.Span }
func (*SimpleBlock) componentValue()        {}

// Close returns kind of token which terminates the block.
func (b *SimpleBlock) Close() token.Kind {
	return b.Open.Kind.Mirror()
}

// Function is a function token with its arguments.
type Function struct {
	Name      string
	Arguments []ComponentValue
	Span      token.Span
}

func (f *Function) Location() token.Span { return f.Span }
func (*Function) componentValue()        {}

// AtRule is an '@' introduced rule. Block is nil for statement at-rules.
type AtRule struct {
	Name    string
	Prelude []ComponentValue
	Block   *SimpleBlock
	Span    token.Span
}

func (r *AtRule) Location() token.Span { return r.Span }
func (*AtRule) rule()                  {}
func (*AtRule) blockItem()             {}

// Is reports whether at-rule name matches case-insensitively.
func (r *AtRule) Is(name string) bool {
	return strings.EqualFold(r.Name, name)
}

// QualifiedRule is a prelude followed by a mandatory block.
type QualifiedRule struct {
	Prelude []ComponentValue
	Block   *SimpleBlock
	Span    token.Span
}

func (r *QualifiedRule) Location() token.Span { return r.Span }
func (*QualifiedRule) rule()                  {}
func (*QualifiedRule) blockItem()             {}

// Declaration is a name: value pair. Value has trailing whitespace and
// "!important" annotation removed.
type Declaration struct {
	Name      string
	Value     []ComponentValue
	Important bool
	Span      token.Span
}

func (d *Declaration) Location() token.Span { return d.Span }
func (*Declaration) blockItem()             {}

// Stylesheet is the top level parse result.
type Stylesheet struct {
	Location string
	Rules    []Rule
	Warnings []string
	Span     token.Span
}
