package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPSDECK_CONFIG", "")
	t.Setenv("USER", "jordan")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.Backend != "file" {
		t.Fatalf("backend = %q, want file", cfg.Storage.Backend)
	}
	if cfg.Palette.ResultLimit != 12 || cfg.Palette.RecentCap != 10 {
		t.Fatalf("palette defaults wrong: %+v", cfg.Palette)
	}
	if cfg.Palette.Threshold != 0.45 {
		t.Fatalf("threshold = %v, want 0.45", cfg.Palette.Threshold)
	}
	if cfg.UI.Assignee != "jordan" {
		t.Fatalf("assignee = %q, want jordan", cfg.UI.Assignee)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "config.toml")
	t.Setenv("OPSDECK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Storage.Backend = "sqlite"
	cfg.Palette.ResultLimit = 7
	cfg.UI.Theme = "light"
	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Storage.Backend != "sqlite" {
		t.Fatalf("backend = %q, want sqlite", got.Storage.Backend)
	}
	if got.Palette.ResultLimit != 7 {
		t.Fatalf("result limit = %d, want 7", got.Palette.ResultLimit)
	}
	if got.UI.Theme != "light" {
		t.Fatalf("theme = %q, want light", got.UI.Theme)
	}
}
