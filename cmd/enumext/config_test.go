package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enumext.yaml")
	content := `out: ./gen
packages:
  - ./...
types:
  - Status
random: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFileConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Out != "./gen" {
		t.Errorf("Out = %q", cfg.Out)
	}
	if len(cfg.Packages) != 1 || cfg.Packages[0] != "./..." {
		t.Errorf("Packages = %v", cfg.Packages)
	}
	if len(cfg.Types) != 1 || cfg.Types[0] != "Status" {
		t.Errorf("Types = %v", cfg.Types)
	}
	if !cfg.Random {
		t.Error("Random not set")
	}
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	cfg, err := loadFileConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Out != "" || cfg.Packages != nil {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadFileConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enumext.yaml")
	if err := os.WriteFile(path, []byte("outdir: ./gen\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFileConfig(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}
