package render

import (
	"strings"

	"github.com/fatih/color"

	"cssfe/token"
	"cssfe/utils/debug"
)

// painter returns function highlighting kind names.
func painter(enabled bool) func(a ...any) string {
	c := color.New(color.FgCyan)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// Text renders v as indented tree. Token streams are rendered in a single
// line of kind(value) items.
func Text(v any, opts Options) (string, error) {
	paint := painter(opts.Color)

	if tokens, ok := v.([]token.Token); ok {
		return tokenLine(tokens, opts, paint) + "\n", nil
	}

	outlines, err := builder{opts: opts}.build(v)
	if err != nil {
		return "", err
	}
	tw := debug.NewTreeWriter()
	for _, o := range outlines {
		writeText(tw, 0, o, paint)
	}
	return tw.String(), nil
}

func tokenLine(tokens []token.Token, opts Options, paint func(a ...any) string) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == token.KindComment && !opts.Comments {
			continue
		}
		kind := t.Kind.String()
		s := paint(kind) + strings.TrimPrefix(t.String(), kind)
		if opts.Positions {
			s += "@" + t.Span.String()
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func writeText(tw *debug.TreeWriter, depth int, o *outline, paint func(a ...any) string) {
	attrs := make([]debug.Attr, 0, len(o.attrs))
	for _, a := range o.attrs {
		switch v := a.value.(type) {
		case string:
			attrs = append(attrs, debug.Quoted(a.key, v))
		case number:
			attrs = append(attrs, debug.Plain(a.key, token.FormatNumber(v.value, v.typ)))
		default:
			attrs = append(attrs, debug.Plain(a.key, v))
		}
	}
	tw.Node(depth, paint(o.label), attrs...)

	for _, g := range o.groups {
		if len(g.items) == 0 {
			continue
		}
		tw.Line(depth+1, "%s:", g.name)
		for _, it := range g.items {
			writeText(tw, depth+2, it, paint)
		}
	}
}
