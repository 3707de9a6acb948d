// Package debug has helpers for human readable dumps of tokens and syntax
// trees.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented lines, one level of depth per indent unit.
type TreeWriter struct {
	w      *strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return NewTreeWriterIndent("  ")
}

// NewTreeWriterIndent uses indent for every level of depth.
func NewTreeWriterIndent(indent string) *TreeWriter {
	return &TreeWriter{
		w:      &strings.Builder{},
		indent: indent,
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(tw.indent)
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes "label: value" with value quoted so whitespace and
// control characters stay visible. Empty value is written as is.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Node writes a line for tree node: label followed by space separated
// key=value attributes. Empty string attributes are skipped.
func (tw TreeWriter) Node(depth int, label string, attrs ...Attr) {
	tw.pad(depth)
	tw.w.WriteString(label)
	for _, a := range attrs {
		if a.Value == "" {
			continue
		}
		tw.w.WriteByte(' ')
		tw.w.WriteString(a.Key)
		tw.w.WriteByte('=')
		tw.w.WriteString(a.Value)
	}
	tw.w.WriteByte('\n')
}

// Attr is a node attribute.
type Attr struct {
	Key   string
	Value string
}

// Quoted makes attribute with quoted text value.
func Quoted(key, value string) Attr {
	return Attr{Key: key, Value: strconv.Quote(value)}
}

// Plain makes attribute with value written verbatim.
func Plain(key string, value any) Attr {
	return Attr{Key: key, Value: fmt.Sprint(value)}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
