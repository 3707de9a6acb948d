package render

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	yaml "gopkg.in/yaml.v3"

	"cssfe/token"
)

// YAML renders v as YAML document. Results holding single node become a
// mapping, lists become a sequence.
func YAML(v any, opts Options) ([]byte, error) {
	outlines, err := builder{opts: opts}.build(v)
	if err != nil {
		return nil, err
	}

	var root *yaml.Node
	if single(v) && len(outlines) == 1 {
		root = yamlOutline(outlines[0])
	} else {
		root = yamlSequence(outlines)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlSequence(items []*outline) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, it := range items {
		seq.Content = append(seq.Content, yamlOutline(it))
	}
	return seq
}

func yamlOutline(o *outline) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	add := func(key string, value *yaml.Node) {
		m.Content = append(m.Content, yamlString(key), value)
	}

	add("type", yamlString(o.label))
	for _, a := range o.attrs {
		add(a.key, yamlScalar(a.value))
	}
	for _, g := range o.groups {
		add(g.name, yamlSequence(g.items))
	}
	return m
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlScalar(v any) *yaml.Node {
	switch v := v.(type) {
	case string:
		return yamlString(v)
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}
	case number:
		switch {
		case math.IsInf(v.value, 1):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".inf"}
		case math.IsInf(v.value, -1):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-.inf"}
		case v.typ == token.NumberTypeInteger:
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: token.FormatNumber(v.value, v.typ)}
		default:
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: token.FormatNumber(v.value, v.typ)}
		}
	default:
		return yamlString(fmt.Sprint(v))
	}
}
