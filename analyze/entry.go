// Package analyze drives tokenizer and parser over stylesheets found in
// files, directories and archives and renders results.
package analyze

import (
	"fmt"

	"cssfe/common"
	"cssfe/parser"
	"cssfe/token"
)

// Analyze runs parser entry point on tokens. Location names the source and
// is only kept by stylesheet entries. Error is returned by strict entries
// only.
func Analyze(p *parser.Parser, tokens []token.Token, entry common.Entry, location string) (any, error) {
	switch entry {
	case common.EntryStylesheet:
		return p.ParseStylesheet(tokens, location), nil
	case common.EntryFullSheet:
		return p.ParseFullSheet(tokens, location), nil
	case common.EntryRuleList:
		return p.ParseRuleList(tokens), nil
	case common.EntryRule:
		return p.ParseRule(tokens)
	case common.EntryDeclaration:
		return p.ParseDeclaration(tokens)
	case common.EntryDeclarationList:
		return p.ParseDeclarationList(tokens), nil
	case common.EntryStyleBlock:
		return p.ParseStyleBlockContents(tokens), nil
	case common.EntryComponentValue:
		return p.ParseComponentValue(tokens)
	case common.EntryComponentValues:
		return p.ParseComponentValueList(tokens), nil
	case common.EntryCommaSeparated:
		return p.ParseCommaSeparatedComponentValues(tokens), nil
	default:
		return nil, fmt.Errorf("unsupported parser entry point %q", entry)
	}
}
