// Package common keeps enumerations shared by configuration and command line
// handling, so that both can refer to them without importing each other.
package common

// Specification of requested output format.
// ENUM(text, yaml)
type OutputFmt int

// Ext returns file extension used when output goes to a directory.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtText:
		return ".txt"
	case OutputFmtYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Parser entry point to use for the whole input.
// ENUM(stylesheet, full-sheet, rule-list, rule, declaration, declaration-list, style-block, component-value, component-values, comma-separated)
type Entry int

// Strict reports whether entry point fails on syntax errors instead of
// recovering from them.
func (e Entry) Strict() bool {
	switch e {
	case EntryRule, EntryDeclaration, EntryComponentValue:
		return true
	}
	return false
}
