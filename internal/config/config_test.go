package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Theme != "dark" {
		t.Fatalf("Default().Theme = %q, want %q", cfg.Theme, "dark")
	}
	if cfg.ToolRunLimit != 6 {
		t.Fatalf("Default().ToolRunLimit = %d, want 6", cfg.ToolRunLimit)
	}
	if !cfg.Highlight {
		t.Fatalf("Default().Highlight = false, want true")
	}
}

func TestLoad_MissingFile_UsesDefaults(t *testing.T) {
	t.Setenv("RILL_THEME", "")
	t.Setenv("RILL_WIDTH", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != path {
		t.Fatalf("cfg.Source = %q, want %q", cfg.Source, path)
	}
	if cfg.Theme != "dark" {
		t.Fatalf("cfg.Theme = %q, want %q", cfg.Theme, "dark")
	}
}

func TestLoad_FromTOML(t *testing.T) {
	t.Setenv("RILL_THEME", "")
	t.Setenv("RILL_WIDTH", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`
theme = "light"
width = 100
reasoning_expanded = true
tool_run_limit = 3
highlight = false
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "light" || cfg.Width != 100 || !cfg.ReasoningExpanded || cfg.ToolRunLimit != 3 || cfg.Highlight {
		t.Fatalf("unexpected cfg %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("RILL_THEME", "light")
	t.Setenv("RILL_WIDTH", "72")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("theme = \"dark\"\nwidth = 120\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "light" {
		t.Fatalf("cfg.Theme = %q, want env override %q", cfg.Theme, "light")
	}
	if cfg.Width != 72 {
		t.Fatalf("cfg.Width = %d, want env override 72", cfg.Width)
	}
}

func TestLoad_BadWidthEnvIsIgnored(t *testing.T) {
	t.Setenv("RILL_THEME", "")
	t.Setenv("RILL_WIDTH", "not-a-number")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 0 {
		t.Fatalf("cfg.Width = %d, want 0", cfg.Width)
	}
}

func TestApplyKVOverrides(t *testing.T) {
	cfg := Default()
	got := ApplyKVOverrides(cfg, []string{"theme=light", "width=90", "tool_run_limit=2", "highlight=false"})
	if got.Theme != "light" || got.Width != 90 || got.ToolRunLimit != 2 || got.Highlight {
		t.Fatalf("unexpected cfg %+v", got)
	}
}

func TestApplyKVOverrides_MalformedEntriesIgnored(t *testing.T) {
	cfg := Default()
	got := ApplyKVOverrides(cfg, []string{"nonsense", "width=abc", "unknown=1"})
	if got != cfg {
		t.Fatalf("malformed overrides changed the config: %+v", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Default()
	want.Theme = "light"
	want.Width = 64

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv("RILL_THEME", "")
	t.Setenv("RILL_WIDTH", "")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Theme != want.Theme || got.Width != want.Width {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}
