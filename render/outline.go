// Package render produces debug views of token streams and syntax trees.
// Output is meant for people and test fixtures, it is not CSS.
package render

import (
	"fmt"

	"cssfe/cst"
	"cssfe/token"
)

// Options control what renderers include.
type Options struct {
	// Positions adds source spans.
	Positions bool
	// Comments keeps comment tokens in token streams.
	Comments bool
	// Color highlights kinds in text output.
	Color bool
}

type attr struct {
	key   string
	value any
}

type number struct {
	value float64
	typ   token.NumberType
}

type group struct {
	name  string
	items []*outline
}

// outline is format neutral view of a tree node shared by text and YAML
// renderers.
type outline struct {
	label  string
	attrs  []attr
	groups []group
}

func (o *outline) attr(key string, value any) *outline {
	o.attrs = append(o.attrs, attr{key: key, value: value})
	return o
}

func (o *outline) group(name string, items []*outline) *outline {
	o.groups = append(o.groups, group{name: name, items: items})
	return o
}

type builder struct {
	opts Options
}

func (b builder) span(o *outline, s token.Span) *outline {
	if b.opts.Positions {
		o.attr("span", s)
	}
	return o
}

// single reports whether v renders as one node rather than a list.
func single(v any) bool {
	switch v.(type) {
	case *cst.Stylesheet, cst.Rule, *cst.Declaration, cst.ComponentValue:
		return true
	}
	return false
}

// build converts parser results into outlines.
func (b builder) build(v any) ([]*outline, error) {
	switch v := v.(type) {
	case []token.Token:
		return b.tokens(v), nil
	case *cst.Stylesheet:
		return []*outline{b.stylesheet(v)}, nil
	case []cst.Rule:
		out := make([]*outline, 0, len(v))
		for _, r := range v {
			out = append(out, b.item(r))
		}
		return out, nil
	case []cst.BlockItem:
		return b.items(v), nil
	case cst.Rule:
		return []*outline{b.item(v)}, nil
	case *cst.Declaration:
		return []*outline{b.item(v)}, nil
	case cst.ComponentValue:
		return []*outline{b.value(v)}, nil
	case []cst.ComponentValue:
		return b.values(v), nil
	case [][]cst.ComponentValue:
		out := make([]*outline, 0, len(v))
		for _, g := range v {
			out = append(out, (&outline{label: "group"}).group("values", b.values(g)))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unable to render %T", v)
	}
}

func (b builder) tokens(tokens []token.Token) []*outline {
	out := make([]*outline, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == token.KindComment && !b.opts.Comments {
			continue
		}
		out = append(out, b.token(t))
	}
	return out
}

func (b builder) token(t token.Token) *outline {
	o := &outline{label: t.Kind.String()}
	switch {
	case t.Kind.IsNumeric():
		o.attr("value", number{value: t.Number, typ: t.Type}).attr("flag", t.Type.String())
		if t.Kind == token.KindDimension {
			o.attr("unit", t.Unit)
		}
	case t.Kind.HasValue():
		o.attr("value", t.Value)
	}
	if t.Kind == token.KindHash && t.ID {
		o.attr("id", true)
	}
	return b.span(o, t.Span)
}

func (b builder) stylesheet(s *cst.Stylesheet) *outline {
	o := &outline{label: "stylesheet"}
	if s.Location != "" {
		o.attr("location", s.Location)
	}
	b.span(o, s.Span)
	rules := make([]*outline, 0, len(s.Rules))
	for _, r := range s.Rules {
		rules = append(rules, b.item(r))
	}
	o.group("rules", rules)
	if len(s.Warnings) > 0 {
		warnings := make([]*outline, 0, len(s.Warnings))
		for _, w := range s.Warnings {
			warnings = append(warnings, (&outline{label: "warning"}).attr("message", w))
		}
		o.group("warnings", warnings)
	}
	return o
}

// item handles rules and declarations.
func (b builder) item(n cst.Node) *outline {
	switch n := n.(type) {
	case *cst.AtRule:
		o := b.span((&outline{label: "at-rule"}).attr("name", n.Name), n.Span)
		o.group("prelude", b.values(n.Prelude))
		if n.Block != nil {
			o.group("block", []*outline{b.block(n.Block)})
		}
		return o
	case *cst.QualifiedRule:
		o := b.span(&outline{label: "qualified-rule"}, n.Span)
		o.group("prelude", b.values(n.Prelude))
		return o.group("block", []*outline{b.block(n.Block)})
	case *cst.Declaration:
		o := b.span((&outline{label: "declaration"}).attr("name", n.Name), n.Span)
		if n.Important {
			o.attr("important", true)
		}
		return o.group("value", b.values(n.Value))
	default:
		// this should never happen
		panic(fmt.Sprintf("unexpected node %T", n))
	}
}

func (b builder) items(items []cst.BlockItem) []*outline {
	out := make([]*outline, 0, len(items))
	for _, it := range items {
		out = append(out, b.item(it))
	}
	return out
}

// block shows reinterpreted contents when block was reinterpreted (even if
// nothing survived) and raw values otherwise.
func (b builder) block(sb *cst.SimpleBlock) *outline {
	o := b.span((&outline{label: "simple-block"}).attr("open", sb.Open.Value), sb.Span)
	if sb.Contents != nil {
		return o.group("contents", b.items(sb.Contents))
	}
	return o.group("values", b.values(sb.Values))
}

func (b builder) value(v cst.ComponentValue) *outline {
	switch v := v.(type) {
	case *cst.Token:
		return b.token(v.Token)
	case *cst.SimpleBlock:
		return b.block(v)
	case *cst.Function:
		o := b.span((&outline{label: "function"}).attr("name", v.Name), v.Span)
		return o.group("arguments", b.values(v.Arguments))
	default:
		// this should never happen
		panic(fmt.Sprintf("unexpected component value %T", v))
	}
}

func (b builder) values(values []cst.ComponentValue) []*outline {
	out := make([]*outline, 0, len(values))
	for _, v := range values {
		out = append(out, b.value(v))
	}
	return out
}
