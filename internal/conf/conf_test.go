package conf

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "dout.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[printer]
color = "1;34"
precision = 7

[stack]
limit = 8
compact = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Printer.Color != "1;34" {
		t.Errorf("unexpected color: %q", cfg.Printer.Color)
	}
	if cfg.Printer.Precision != 7 {
		t.Errorf("unexpected precision: %d", cfg.Printer.Precision)
	}
	if cfg.Stack.Limit != 8 || !cfg.Stack.Compact {
		t.Errorf("unexpected stack config: %+v", cfg.Stack)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[printer]\nno_color = true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Printer.NoColor {
		t.Error("no_color not honored")
	}
	if cfg.Printer.Precision != 5 {
		t.Errorf("unset precision should keep the default, got %d", cfg.Printer.Precision)
	}
	if cfg.Printer.Color != "36" {
		t.Errorf("unset color should keep the default, got %q", cfg.Printer.Color)
	}
}

func TestLoadRejectsNegativePrecision(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[printer]\nprecision = -3\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for negative precision")
	}
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[printer]\nprecision = 1\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if !ok {
		t.Fatal("expected to find dout.toml in an ancestor directory")
	}
	if filepath.Dir(path) != root {
		t.Errorf("unexpected manifest location: %s", path)
	}
}

func TestFindMissing(t *testing.T) {
	_, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if ok {
		t.Fatal("did not expect to find a dout.toml above a fresh temp dir")
	}
}
