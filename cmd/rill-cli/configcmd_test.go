package main

import (
	"path/filepath"
	"testing"

	"rill-cli/internal/config"
)

func TestConfigMain_SetPersists(t *testing.T) {
	t.Setenv("RILL_THEME", "")
	t.Setenv("RILL_WIDTH", "")
	path := filepath.Join(t.TempDir(), "config.toml")

	_ = captureStdout(t, func() {
		configMain(rootArgs{cfgPath: path}, []string{"set", "theme=light", "width=72"})
	})

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "light" || cfg.Width != 72 {
		t.Fatalf("settings not persisted: %+v", cfg)
	}
	if cfg.ToolRunLimit != 6 {
		t.Fatalf("defaults lost on save: %+v", cfg)
	}
}
