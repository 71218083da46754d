package worldgen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.yaml")
	content := "seed: 77\nwidth: 12\nriver_count: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Seed != 77 || cfg.Width != 12 || cfg.RiverCount != 2 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	def := DefaultMapConfig()
	if cfg.Height != def.Height {
		t.Fatalf("height %d, want default %d", cfg.Height, def.Height)
	}
	if cfg.RiversideMoisture != def.RiversideMoisture {
		t.Fatalf("riverside moisture %g, want default %g", cfg.RiversideMoisture, def.RiversideMoisture)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("width: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("invalid config file accepted")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing config file accepted")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultMapConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
