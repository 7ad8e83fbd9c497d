package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8765 {
		t.Errorf("expected port 8765, got %d", cfg.Port)
	}
	if cfg.Pattern != "*.inkfinite.json" {
		t.Errorf("expected default pattern, got %s", cfg.Pattern)
	}
	if !cfg.Watch {
		t.Error("expected watch to be true")
	}
	if cfg.Workspace != "" {
		t.Errorf("expected empty workspace, got %s", cfg.Workspace)
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	cfg.configPath = path
	cfg.Workspace = "/home/user/writing"
	cfg.Port = 9000

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := DefaultConfig()
	if err := loaded.loadFromFile(path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}
	if loaded.Workspace != "/home/user/writing" {
		t.Errorf("expected workspace to round-trip, got %s", loaded.Workspace)
	}
	if loaded.Port != 9000 {
		t.Errorf("expected port 9000, got %d", loaded.Port)
	}
}

func TestSetWorkspace(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.configPath = filepath.Join(dir, "config.yaml")

	if err := cfg.SetWorkspace("relative/docs"); err != nil {
		t.Fatalf("SetWorkspace failed: %v", err)
	}

	if !filepath.IsAbs(cfg.Workspace) {
		t.Errorf("expected absolute workspace path, got %s", cfg.Workspace)
	}
	if _, err := os.Stat(cfg.configPath); err != nil {
		t.Errorf("expected config file to be written: %v", err)
	}
}
