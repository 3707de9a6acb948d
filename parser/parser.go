// Package parser builds concrete syntax trees from token sequences.
//
// Malformed input is recovered locally: broken declarations are dropped, rules
// without a block are discarded and unterminated blocks and functions are
// closed at the end of input. Recovered problems are logged at debug level
// and, for stylesheets, collected in Stylesheet.Warnings. Only the strict
// entry points (ParseRule, ParseDeclaration, ParseComponentValue) return
// errors, always of type *SyntaxError.
package parser

import (
	"go.uber.org/zap"

	"cssfe/cst"
	"cssfe/token"
)

// Parser parses token sequences into CST nodes. It holds no per-parse state
// and may be used from several goroutines at once.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// stream prepares tokens for consumption. Comments have no meaning to the
// parser and are dropped here.
func (p *Parser) stream(tokens []token.Token, warnings *[]string) *stream {
	filtered := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != token.KindComment {
			filtered = append(filtered, t)
		}
	}
	fallback := token.StartPosition
	if n := len(tokens); n > 0 {
		fallback = tokens[n-1].Span.End
	}
	return newStream(p.log, filtered, fallback, warnings)
}

// ParseStylesheet parses top level list of rules. CDO and CDC tokens are
// skipped. Location identifies the source and is only recorded.
func (p *Parser) ParseStylesheet(tokens []token.Token, location string) *cst.Stylesheet {
	sheet := &cst.Stylesheet{
		Location: location,
		Warnings: make([]string, 0),
	}
	if location != "" {
		p.log.Debug("Parsing CSS", zap.String("source", location), zap.Int("tokens", len(tokens)))
	}

	s := p.stream(tokens, &sheet.Warnings)
	start := s.peek().Span.Start
	sheet.Rules = s.consumeRuleList(true)
	sheet.Span = s.spanFrom(start)
	return sheet
}

// ParseFullSheet parses stylesheet and reinterprets blocks of qualified rules
// as style block contents and blocks of @font-face rules as declaration lists.
// Nested qualified rules found in style blocks are reinterpreted the same way.
func (p *Parser) ParseFullSheet(tokens []token.Token, location string) *cst.Stylesheet {
	sheet := p.ParseStylesheet(tokens, location)
	for _, r := range sheet.Rules {
		switch r := r.(type) {
		case *cst.QualifiedRule:
			p.expandStyleBlock(r.Block, &sheet.Warnings)
		case *cst.AtRule:
			if r.Is("font-face") && r.Block != nil {
				r.Block.Contents = p.blockStream(r.Block, &sheet.Warnings).consumeBlockContents(false)
			}
		}
	}
	p.log.Debug("Parsed CSS", zap.String("source", location), zap.Int("rules", len(sheet.Rules)), zap.Int("warnings", len(sheet.Warnings)))
	return sheet
}

func (p *Parser) expandStyleBlock(b *cst.SimpleBlock, warnings *[]string) {
	b.Contents = p.blockStream(b, warnings).consumeBlockContents(true)
	for _, item := range b.Contents {
		if q, ok := item.(*cst.QualifiedRule); ok {
			p.expandStyleBlock(q.Block, warnings)
		}
	}
}

func (p *Parser) blockStream(b *cst.SimpleBlock, warnings *[]string) *stream {
	return newStream(p.log, b.Tokens, b.Open.Span.End, warnings)
}

// ParseRuleList parses nested list of rules, CDO and CDC tokens start
// qualified rules there.
func (p *Parser) ParseRuleList(tokens []token.Token) []cst.Rule {
	return p.stream(tokens, nil).consumeRuleList(false)
}

// ParseRule parses exactly one rule surrounded by optional whitespace.
func (p *Parser) ParseRule(tokens []token.Token) (cst.Rule, error) {
	s := p.stream(tokens, nil)
	s.skipWhitespace()
	if s.peek().Kind == token.KindEOF {
		return nil, s.syntaxError("Unexpected EOF")
	}

	var rule cst.Rule
	if s.peek().Kind == token.KindAtKeyword {
		rule = s.consumeAtRule()
	} else {
		q := s.consumeQualifiedRule()
		if q == nil {
			return nil, s.syntaxError("Unexpected EOF, expected block")
		}
		rule = q
	}

	s.skipWhitespace()
	if k := s.peek().Kind; k != token.KindEOF {
		return nil, s.syntaxError("Expected EOF, found %s instead", k)
	}
	return rule, nil
}

// ParseDeclaration parses single declaration, first significant token must
// be an ident.
func (p *Parser) ParseDeclaration(tokens []token.Token) (*cst.Declaration, error) {
	s := p.stream(tokens, nil)
	s.skipWhitespace()
	if k := s.peek().Kind; k != token.KindIdent {
		return nil, s.syntaxError("Unexpected %s, expected ident", k)
	}
	d := s.consumeDeclaration()
	if d == nil {
		return nil, s.syntaxError("Expected declaration to be consumed")
	}
	return d, nil
}

// ParseDeclarationList parses contents of blocks like @font-face which hold
// only declarations and at-rules.
func (p *Parser) ParseDeclarationList(tokens []token.Token) []cst.BlockItem {
	return p.stream(tokens, nil).consumeBlockContents(false)
}

// ParseStyleBlockContents parses contents of a style rule block: declarations
// followed by nested rules.
func (p *Parser) ParseStyleBlockContents(tokens []token.Token) []cst.BlockItem {
	return p.stream(tokens, nil).consumeBlockContents(true)
}

// ParseComponentValue parses exactly one component value surrounded by
// optional whitespace.
func (p *Parser) ParseComponentValue(tokens []token.Token) (cst.ComponentValue, error) {
	s := p.stream(tokens, nil)
	s.skipWhitespace()
	if s.peek().Kind == token.KindEOF {
		return nil, s.syntaxError("Unexpected EOF")
	}
	v := s.consumeComponentValue()
	s.skipWhitespace()
	if s.peek().Kind != token.KindEOF {
		return nil, s.syntaxError("Expected EOF")
	}
	return v, nil
}

// ParseComponentValueList parses component values up to the end of input.
func (p *Parser) ParseComponentValueList(tokens []token.Token) []cst.ComponentValue {
	s := p.stream(tokens, nil)
	var values []cst.ComponentValue
	for s.peek().Kind != token.KindEOF {
		values = append(values, s.consumeComponentValue())
	}
	return values
}

// ParseCommaSeparatedComponentValues splits component values on top level
// commas, which are discarded. Input without tokens gives one empty group.
func (p *Parser) ParseCommaSeparatedComponentValues(tokens []token.Token) [][]cst.ComponentValue {
	s := p.stream(tokens, nil)
	groups := [][]cst.ComponentValue{nil}
	for {
		switch t := s.peek(); t.Kind {
		case token.KindEOF:
			return groups
		case token.KindComma:
			s.advance()
			groups = append(groups, nil)
		default:
			groups[len(groups)-1] = append(groups[len(groups)-1], s.consumeComponentValue())
		}
	}
}
