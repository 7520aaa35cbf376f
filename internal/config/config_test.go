package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Render.BodyLimit != 500 {
		t.Errorf("expected body limit 500, got %d", cfg.Render.BodyLimit)
	}
	if cfg.Render.DefaultStyle != "xiaohongshu" {
		t.Errorf("expected default style xiaohongshu, got %s", cfg.Render.DefaultStyle)
	}
	if cfg.List.Limit != 10 {
		t.Errorf("expected list limit 10, got %d", cfg.List.Limit)
	}
}

func TestConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("CURATOR_HOME", tmpDir)

	dir := Dir()
	if dir != tmpDir {
		t.Errorf("expected %s, got %s", tmpDir, dir)
	}

	cfg := Default()
	if got := cfg.StorePath(); got != filepath.Join(tmpDir, "cursor_content.json") {
		t.Errorf("unexpected store path %s", got)
	}
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	t.Setenv("CURATOR_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Store.File != "cursor_content.json" {
		t.Errorf("expected default store file, got %s", cfg.Store.File)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("CURATOR_HOME", tmpDir)

	cfg := Default()
	cfg.List.Limit = 25
	cfg.Watch.Keywords = []string{"composer"}

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.List.Limit != 25 {
		t.Errorf("expected limit 25, got %d", loaded.List.Limit)
	}
	if len(loaded.Watch.Keywords) != 1 || loaded.Watch.Keywords[0] != "composer" {
		t.Errorf("unexpected keywords %v", loaded.Watch.Keywords)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("CURATOR_HOME", tmpDir)

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("list:\n  limit: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.List.Limit != 3 {
		t.Errorf("expected limit 3, got %d", cfg.List.Limit)
	}
	if cfg.Render.BodyLimit != 500 {
		t.Errorf("expected default body limit to survive, got %d", cfg.Render.BodyLimit)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("CURATOR_HOME", tmpDir)

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("list: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
