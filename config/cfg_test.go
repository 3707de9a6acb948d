package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"cssfe/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Input.Encoding != "utf-8" {
		t.Errorf("Input.Encoding = %q, want utf-8", cfg.Input.Encoding)
	}
	if len(cfg.Input.Extensions) != 1 || cfg.Input.Extensions[0] != ".css" {
		t.Errorf("Input.Extensions = %v, want [.css]", cfg.Input.Extensions)
	}
	if cfg.Parser.Entry != common.EntryStylesheet {
		t.Errorf("Parser.Entry = %v, want stylesheet", cfg.Parser.Entry)
	}
	if cfg.Output.Format != common.OutputFmtText {
		t.Errorf("Output.Format = %v, want text", cfg.Output.Format)
	}
	if !cfg.Output.Comments || cfg.Output.Positions {
		t.Errorf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, `version: 1
input:
  encoding: windows-1251
  extensions: [".css", ".scss"]
parser:
  entry: declaration-list
output:
  format: yaml
  positions: true
logging:
  console:
    level: debug
  file:
    level: debug
    destination: `+filepath.Join(tmpDir, "logs", "test.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(tmpDir, "test-report.zip")+`
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Input.Encoding != "windows-1251" {
		t.Errorf("Input.Encoding = %q", cfg.Input.Encoding)
	}
	if len(cfg.Input.Extensions) != 2 {
		t.Errorf("Input.Extensions = %v", cfg.Input.Extensions)
	}
	if cfg.Parser.Entry != common.EntryDeclarationList {
		t.Errorf("Parser.Entry = %v, want declaration-list", cfg.Parser.Entry)
	}
	if cfg.Output.Format != common.OutputFmtYaml || !cfg.Output.Positions {
		t.Errorf("unexpected output: %+v", cfg.Output)
	}
	// values absent from file come from template
	if !cfg.Output.Comments {
		t.Error("Output.Comments should keep template default")
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("FileLogger.Mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
	// sanitizer creates directory for log file
	if _, err := os.Stat(filepath.Join(tmpDir, "logs")); err != nil {
		t.Errorf("log directory was not created: %v", err)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ninput:\n  encoding: utf-8\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"unknown encoding", "version: 1\ninput:\n  encoding: klingon\n"},
		{"unknown entry", "version: 1\nparser:\n  entry: selector\n"},
		{"unknown format", "version: 1\noutput:\n  format: json\n"},
		{"bad extension", "version: 1\ninput:\n  extensions: [css]\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Errorf("LoadConfiguration() expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Parser.Entry = common.EntryCommaSeparated

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "entry: comma-separated") {
		t.Errorf("Dump() should write enum names, got:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Parser.Entry != common.EntryCommaSeparated {
		t.Errorf("Parser.Entry after reload = %v", cfg2.Parser.Entry)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	data = []byte(strings.Replace(string(data), "version: 1", "version: 99", 1))

	_, err = unmarshalConfig(data, &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}
