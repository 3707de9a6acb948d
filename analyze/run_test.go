package analyze

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding/charmap"

	"cssfe/common"
	"cssfe/config"
	"cssfe/parser"
	"cssfe/state"
)

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv, *zap.Logger) {
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.SetLogger(logger)
	env.Cfg = cfg
	return ctx, env, logger
}

func newTestJob(entry common.Entry, format common.OutputFmt) (*job, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return &job{
		entry:  entry,
		format: format,
		in:     strings.NewReader(""),
		out:    out,
	}, out
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	defer f.Close()
	w := zip.NewWriter(f)
	for name, content := range files {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("create %s in zip: %v", name, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write %s in zip: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("finalize zip: %v", err)
	}
}

func TestAnalyze_Entries(t *testing.T) {
	p := parser.NewParser(zaptest.NewLogger(t))
	tokens := tokenize("a { color: red }")

	tests := []struct {
		entry   common.Entry
		wantErr bool
	}{
		{common.EntryStylesheet, false},
		{common.EntryFullSheet, false},
		{common.EntryRuleList, false},
		{common.EntryRule, false},
		{common.EntryDeclaration, true},
		{common.EntryDeclarationList, false},
		{common.EntryStyleBlock, false},
		{common.EntryComponentValue, true},
		{common.EntryComponentValues, false},
		{common.EntryCommaSeparated, false},
	}

	for _, tt := range tests {
		t.Run(tt.entry.String(), func(t *testing.T) {
			result, err := Analyze(p, tokens, tt.entry, "test.css")
			if tt.wantErr {
				var se *parser.SyntaxError
				if !errors.As(err, &se) {
					t.Fatalf("Analyze() error = %v, want *parser.SyntaxError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if result == nil {
				t.Error("Analyze() returned nil result")
			}
		})
	}

	if _, err := Analyze(p, tokens, common.Entry(42), ""); err == nil {
		t.Error("Analyze() should fail for unknown entry point")
	}
}

func TestProcess_Stdin(t *testing.T) {
	ctx, _, log := setupTestEnv(t)

	j, out := newTestJob(common.EntryDeclaration, common.OutputFmtText)
	j.in = strings.NewReader("color: red !important")

	if err := process(ctx, Stdin, j, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	want := "declaration name=\"color\" important=true\n" +
		"  value:\n" +
		"    ident value=\"red\"\n"
	if out.String() != want {
		t.Errorf("process() output:\ngot:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestProcess_Tokens(t *testing.T) {
	ctx, _, log := setupTestEnv(t)

	j, out := newTestJob(common.EntryStylesheet, common.OutputFmtText)
	j.tokensOnly = true
	j.in = strings.NewReader("a/**/b")

	if err := process(ctx, Stdin, j, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if got := out.String(); got != "ident(\"a\") ident(\"b\")\n" {
		t.Errorf("process() output = %q", got)
	}

	out.Reset()
	j.opts.Comments = true
	j.in = strings.NewReader("a/**/b")
	if err := process(ctx, Stdin, j, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if !strings.Contains(out.String(), "comment") {
		t.Errorf("comments requested but missing: %q", out.String())
	}
}

func TestProcess_StrictEntryFails(t *testing.T) {
	ctx, _, log := setupTestEnv(t)

	j, out := newTestJob(common.EntryRule, common.OutputFmtText)
	j.in = strings.NewReader("a {} b {}")

	err := process(ctx, Stdin, j, log)
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("process() error = %v, want *parser.SyntaxError", err)
	}
	if se.Line != 1 {
		t.Errorf("SyntaxError.Line = %d, want 1", se.Line)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written on failure, got %q", out.String())
	}
}

func TestProcess_File(t *testing.T) {
	ctx, env, log := setupTestEnv(t)

	tmpDir := t.TempDir()
	// windows-1251 without any encoding hints
	cp1251, err := charmap.Windows1251.NewEncoder().String(`a::before { content: "привет" }`)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(tmpDir, "ru.css")
	writeFile(t, path, []byte(cp1251))

	env.Cfg.Input.Encoding = "windows-1251"
	j, out := newTestJob(common.EntryStylesheet, common.OutputFmtYaml)

	if err := process(ctx, path, j, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "value: привет") {
		t.Errorf("decoded string missing from output:\n%s", got)
	}
	if !strings.Contains(got, "location: ru.css") {
		t.Errorf("location missing from output:\n%s", got)
	}
	if strings.Contains(got, "---") {
		t.Errorf("single file should not produce document headers:\n%s", got)
	}
}

func TestProcess_NonExistentPath(t *testing.T) {
	ctx, _, log := setupTestEnv(t)
	j, _ := newTestJob(common.EntryStylesheet, common.OutputFmtText)

	err := process(ctx, "/nonexistent/path/file.css", j, log)
	if err == nil {
		t.Fatal("Expected error for non-existent path, got nil")
	}
	if !strings.Contains(err.Error(), "input source was not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestProcess_FileWithTail(t *testing.T) {
	ctx, _, log := setupTestEnv(t)
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a.css")
	writeFile(t, path, []byte("a{}"))

	j, _ := newTestJob(common.EntryStylesheet, common.OutputFmtText)
	if err := process(ctx, filepath.Join(path, "inner.css"), j, log); err == nil {
		t.Fatal("Expected error for path below regular file")
	}
}

func TestProcess_CancelledContext(t *testing.T) {
	ctx, _, log := setupTestEnv(t)
	cancelCtx, cancel := context.WithCancel(ctx)
	cancel()

	j, _ := newTestJob(common.EntryStylesheet, common.OutputFmtText)
	tmpDir := t.TempDir()
	if err := process(cancelCtx, tmpDir, j, log); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}

func TestProcess_Directory(t *testing.T) {
	ctx, _, log := setupTestEnv(t)

	srcDir := t.TempDir()
	dstDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "a.css"), []byte("a { color: red }"))
	writeFile(t, filepath.Join(srcDir, "nested", "b.CSS"), []byte("@media print { b { x: y } }"))
	writeFile(t, filepath.Join(srcDir, "notes.txt"), []byte("not a stylesheet"))
	writeZip(t, filepath.Join(srcDir, "themes", "pack.zip"), map[string]string{
		"dark/c.css": "c{}",
		"readme.md":  "# pack",
	})

	j, out := newTestJob(common.EntryFullSheet, common.OutputFmtText)
	j.dst = dstDir

	if err := process(ctx, srcDir, j, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should go to output stream when destination is set, got %q", out.String())
	}

	for _, name := range []string{
		"a.css.txt",
		filepath.Join("nested", "b.CSS.txt"),
		filepath.Join("themes", "dark", "c.css.txt"),
	} {
		data, err := os.ReadFile(filepath.Join(dstDir, name))
		if err != nil {
			t.Errorf("expected result %s: %v", name, err)
			continue
		}
		if !strings.HasPrefix(string(data), "stylesheet") {
			t.Errorf("%s does not hold stylesheet tree:\n%s", name, data)
		}
	}
	for _, name := range []string{"notes.txt.txt", "readme.md.txt", filepath.Join("themes", "readme.md.txt")} {
		if _, err := os.Stat(filepath.Join(dstDir, name)); err == nil {
			t.Errorf("unexpected result %s", name)
		}
	}

	// second run must not overwrite silently
	if err := process(ctx, srcDir, j, log); err == nil || !strings.Contains(err.Error(), "3 of 3") {
		t.Errorf("expected failure on existing results, got %v", err)
	}

	state.EnvFromContext(ctx).Overwrite = true
	if err := process(ctx, srcDir, j, log); err != nil {
		t.Errorf("process() with overwrite error = %v", err)
	}
}

func TestProcess_DirectoryToStream(t *testing.T) {
	ctx, _, log := setupTestEnv(t)

	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "a.css"), []byte("a{}"))
	writeFile(t, filepath.Join(srcDir, "b.css"), []byte("b{}"))

	j, out := newTestJob(common.EntryRuleList, common.OutputFmtYaml)
	if err := process(ctx, srcDir, j, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "--- # a.css\n") || !strings.Contains(got, "--- # b.css\n") {
		t.Errorf("expected YAML document per stylesheet:\n%s", got)
	}
}

func TestProcess_DirectoryPartialFailure(t *testing.T) {
	ctx, _, log := setupTestEnv(t)

	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "good.css"), []byte("color: red"))
	writeFile(t, filepath.Join(srcDir, "bad.css"), []byte("{}"))

	j, out := newTestJob(common.EntryDeclaration, common.OutputFmtText)
	err := process(ctx, srcDir, j, log)
	if err == nil {
		t.Fatal("expected error for failed stylesheet")
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("unexpected error: %v", err)
	}
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		t.Errorf("syntax error should be reachable, got %v", err)
	}
	if !strings.Contains(out.String(), "==> good.css <==\ndeclaration name=\"color\"") {
		t.Errorf("good stylesheet should still be processed:\n%s", out.String())
	}
}

func TestProcess_ArchivePath(t *testing.T) {
	ctx, _, log := setupTestEnv(t)

	tmpDir := t.TempDir()
	arc := filepath.Join(tmpDir, "styles.zip")
	writeZip(t, arc, map[string]string{
		"site/main.css":   "main{}",
		"site/print.css":  "print{}",
		"other/extra.css": "extra{}",
	})

	tests := []struct {
		name     string
		src      string
		expected []string
		absent   []string
	}{
		{"whole archive", arc, []string{"main", "print", "extra"}, nil},
		{"directory in archive", filepath.Join(arc, "site"), []string{"main", "print"}, []string{"extra"}},
		{"file in archive", filepath.Join(arc, "other", "extra.css"), []string{"extra"}, []string{"main"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, out := newTestJob(common.EntryStylesheet, common.OutputFmtText)
			j.tokensOnly = true
			if err := process(ctx, tt.src, j, log); err != nil {
				t.Fatalf("process() error = %v", err)
			}
			for _, want := range tt.expected {
				if !strings.Contains(out.String(), `ident("`+want+`")`) {
					t.Errorf("%s missing from output:\n%s", want, out.String())
				}
			}
			for _, absent := range tt.absent {
				if strings.Contains(out.String(), `ident("`+absent+`")`) {
					t.Errorf("%s should not be processed:\n%s", absent, out.String())
				}
			}
		})
	}
}

func TestProcess_Report(t *testing.T) {
	ctx, env, log := setupTestEnv(t)

	tmpDir := t.TempDir()
	env.Cfg.Reporting.Destination = filepath.Join(tmpDir, "report.zip")
	rpt, err := env.Cfg.Reporting.Prepare()
	if err != nil {
		t.Fatalf("prepare report: %v", err)
	}
	env.Rpt = rpt

	j, _ := newTestJob(common.EntryStylesheet, common.OutputFmtText)
	j.in = strings.NewReader("a{}")
	if err := process(ctx, Stdin, j, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if err := rpt.Close(); err != nil {
		t.Fatalf("close report: %v", err)
	}

	zr, err := zip.OpenReader(env.Cfg.Reporting.Destination)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer zr.Close()
	var found bool
	for _, f := range zr.File {
		if f.Name == "input/stdin" {
			found = true
		}
	}
	if !found {
		t.Error("report should keep processed input")
	}
}
