package common

import "testing"

func TestParseEntry(t *testing.T) {
	tests := []struct {
		input    string
		expected Entry
		strict   bool
		wantErr  bool
	}{
		{"stylesheet", EntryStylesheet, false, false},
		{"full-sheet", EntryFullSheet, false, false},
		{"Rule", EntryRule, true, false},
		{"declaration", EntryDeclaration, true, false},
		{"declaration-list", EntryDeclarationList, false, false},
		{"component-value", EntryComponentValue, true, false},
		{"comma-separated", EntryCommaSeparated, false, false},
		{"selector", Entry(0), false, true},
		{"", Entry(0), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEntry(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseEntry(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEntry(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseEntry(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if got.Strict() != tt.strict {
				t.Errorf("%v.Strict() = %v, want %v", got, got.Strict(), tt.strict)
			}
		})
	}
}

func TestEntryNames(t *testing.T) {
	names := EntryNames()
	if len(names) != 10 {
		t.Fatalf("EntryNames() length = %d, want 10", len(names))
	}
	for _, name := range names {
		e, err := ParseEntry(name)
		if err != nil {
			t.Errorf("ParseEntry(%q) error = %v", name, err)
			continue
		}
		if e.String() != name {
			t.Errorf("Entry(%q).String() = %q", name, e.String())
		}
	}
}

func TestOutputFmt_Ext(t *testing.T) {
	tests := []struct {
		fmt      OutputFmt
		expected string
	}{
		{OutputFmtText, ".txt"},
		{OutputFmtYaml, ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.fmt.String(), func(t *testing.T) {
			if got := tt.fmt.Ext(); got != tt.expected {
				t.Errorf("Ext() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestOutputFmt_Ext_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Ext() should panic for invalid format")
		}
	}()
	OutputFmt(99).Ext()
}

func TestOutputFmt_UnmarshalText(t *testing.T) {
	var f OutputFmt
	if err := f.UnmarshalText([]byte("YAML")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if f != OutputFmtYaml {
		t.Errorf("UnmarshalText(YAML) = %v, want %v", f, OutputFmtYaml)
	}
	if err := f.UnmarshalText([]byte("json")); err == nil {
		t.Error("UnmarshalText(json) expected error")
	}
}
