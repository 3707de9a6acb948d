package parser

import (
	"cssfe/cst"
	"cssfe/token"
)

func (s *stream) consumeRuleList(topLevel bool) []cst.Rule {
	var rules []cst.Rule
	for {
		switch t := s.peek(); t.Kind {
		case token.KindEOF:
			return rules
		case token.KindWhitespace:
			s.advance()
		case token.KindCdo, token.KindCdc:
			if topLevel {
				s.advance()
				continue
			}
			if r := s.consumeQualifiedRule(); r != nil {
				rules = append(rules, r)
			}
		case token.KindAtKeyword:
			rules = append(rules, s.consumeAtRule())
		default:
			if r := s.consumeQualifiedRule(); r != nil {
				rules = append(rules, r)
			}
		}
	}
}

func (s *stream) consumeAtRule() *cst.AtRule {
	name := s.advance()
	r := &cst.AtRule{Name: name.Value}
	for {
		switch t := s.peek(); t.Kind {
		case token.KindSemicolon:
			s.advance()
			r.Span = s.spanFrom(name.Span.Start)
			return r
		case token.KindEOF:
			r.Span = s.spanFrom(name.Span.Start)
			return r
		case token.KindLeftCurly:
			r.Block = s.consumeSimpleBlock()
			r.Span = s.spanFrom(name.Span.Start)
			return r
		default:
			r.Prelude = append(r.Prelude, s.consumeComponentValue())
		}
	}
}

// consumeQualifiedRule returns nil when input ends before the block.
func (s *stream) consumeQualifiedRule() *cst.QualifiedRule {
	start := s.peek().Span.Start
	r := &cst.QualifiedRule{}
	for {
		switch t := s.peek(); t.Kind {
		case token.KindEOF:
			s.warn("qualified rule dropped, end of input before block")
			return nil
		case token.KindLeftCurly:
			r.Block = s.consumeSimpleBlock()
			r.Span = s.spanFrom(start)
			return r
		default:
			r.Prelude = append(r.Prelude, s.consumeComponentValue())
		}
	}
}

// consumeBlockContents reinterprets block contents. With nesting it
// produces style block contents: declarations first, then nested rules, with
// '&' starting a nested qualified rule. Without nesting it is a declaration
// list where at-rules stay in input order.
func (s *stream) consumeBlockContents(nesting bool) []cst.BlockItem {
	var decls, rules []cst.BlockItem
	for {
		switch t := s.peek(); {
		case t.Kind == token.KindWhitespace || t.Kind == token.KindSemicolon:
			s.advance()
		case t.Kind == token.KindEOF:
			// non-nil even when everything was dropped, nil Contents marks
			// blocks which were never reinterpreted
			items := make([]cst.BlockItem, 0, len(decls)+len(rules))
			return append(append(items, decls...), rules...)
		case t.Kind == token.KindAtKeyword:
			if nesting {
				rules = append(rules, s.consumeAtRule())
			} else {
				decls = append(decls, s.consumeAtRule())
			}
		case t.Kind == token.KindIdent:
			from := s.idx
			s.advance()
			s.skipComponentValues()
			if d := s.sub(s.slice(from, s.idx), t.Span.Start).consumeDeclaration(); d != nil {
				decls = append(decls, d)
			}
		case nesting && t.IsDelim("&"):
			if r := s.consumeQualifiedRule(); r != nil {
				rules = append(rules, r)
			}
		default:
			s.warn("unexpected %s in declaration block", t.Kind)
			s.skipComponentValues()
		}
	}
}

// skipComponentValues consumes whole component values up to the next
// top level semicolon.
func (s *stream) skipComponentValues() {
	for k := s.peek().Kind; k != token.KindSemicolon && k != token.KindEOF; k = s.peek().Kind {
		s.consumeComponentValue()
	}
}

// consumeDeclaration expects current token to be the name. It returns nil for
// malformed declaration after resynchronizing on the next semicolon.
func (s *stream) consumeDeclaration() *cst.Declaration {
	name := s.advance()
	d := &cst.Declaration{Name: name.Value}

	s.skipWhitespace()
	if t := s.peek(); t.Kind != token.KindColon {
		s.warn("declaration %q dropped, expected colon, found %s", name.Value, t.Kind)
		s.skipToSemicolon()
		return nil
	}
	s.advance()
	s.skipWhitespace()

	for k := s.peek().Kind; k != token.KindSemicolon && k != token.KindEOF; k = s.peek().Kind {
		d.Value = append(d.Value, s.consumeComponentValue())
	}
	d.Value, d.Important = stripImportant(d.Value)
	d.Value = trimWhitespace(d.Value)
	d.Span = s.spanFrom(name.Span.Start)
	return d
}

func (s *stream) consumeComponentValue() cst.ComponentValue {
	switch t := s.peek(); {
	case t.Kind.IsOpen():
		return s.consumeSimpleBlock()
	case t.Kind == token.KindFunction:
		return s.consumeFunction()
	default:
		s.advance()
		return &cst.Token{Token: t}
	}
}

// consumeSimpleBlock stops only on the mirror of the opening token, other
// closing brackets are ordinary values inside it.
func (s *stream) consumeSimpleBlock() *cst.SimpleBlock {
	open := s.advance()
	b := &cst.SimpleBlock{Open: open}
	closing := open.Kind.Mirror()
	from := s.idx
	for {
		switch t := s.peek(); t.Kind {
		case closing:
			b.Tokens = s.slice(from, s.idx)
			s.advance()
			b.Span = s.spanFrom(open.Span.Start)
			return b
		case token.KindEOF:
			s.warn("unexpected end of input, %q block is not closed", open.Value)
			b.Tokens = s.slice(from, s.idx)
			b.Span = s.spanFrom(open.Span.Start)
			return b
		default:
			b.Values = append(b.Values, s.consumeComponentValue())
		}
	}
}

func (s *stream) consumeFunction() *cst.Function {
	name := s.advance()
	f := &cst.Function{Name: name.Value}
	for {
		switch t := s.peek(); t.Kind {
		case token.KindRightParens:
			s.advance()
			f.Span = s.spanFrom(name.Span.Start)
			return f
		case token.KindEOF:
			s.warn("unexpected end of input, function %s( is not closed", name.Value)
			f.Span = s.spanFrom(name.Span.Start)
			return f
		default:
			f.Arguments = append(f.Arguments, s.consumeComponentValue())
		}
	}
}

// stripImportant removes trailing "! important" annotation. Whitespace
// between the two tokens is allowed.
func stripImportant(values []cst.ComponentValue) ([]cst.ComponentValue, bool) {
	last := lastSignificant(values, len(values))
	if last < 0 || !isToken(values[last], func(t token.Token) bool { return t.IsIdent("important") }) {
		return values, false
	}
	bang := lastSignificant(values, last)
	if bang < 0 || !isToken(values[bang], func(t token.Token) bool { return t.IsDelim("!") }) {
		return values, false
	}
	return values[:bang], true
}

// lastSignificant returns index of the last non-whitespace value before end.
func lastSignificant(values []cst.ComponentValue, end int) int {
	for i := end - 1; i >= 0; i-- {
		if !isToken(values[i], func(t token.Token) bool { return t.Kind == token.KindWhitespace }) {
			return i
		}
	}
	return -1
}

func trimWhitespace(values []cst.ComponentValue) []cst.ComponentValue {
	return values[:lastSignificant(values, len(values))+1]
}

func isToken(v cst.ComponentValue, match func(token.Token) bool) bool {
	t, ok := v.(*cst.Token)
	return ok && match(t.Token)
}
