package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olivierh59500/ant-colony-go/pkg/colony"
)

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colony.json")
	if err := os.WriteFile(path, []byte(`{"ant_count": 7, "nest": {"X": 3, "Y": 4}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := colony.DefaultConfig()
	want.AntCount = 7
	want.Nest = colony.Position{X: 3, Y: 4}
	if cfg != want {
		t.Errorf("got %+v\nwant %+v", cfg, want)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colony.json")
	cfg := colony.DefaultConfig()
	cfg.Scatter = colony.ScatterNoise
	cfg.Seed = 1234

	if err := saveConfig(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("got %+v\nwant %+v", got, cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := loadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"width": `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(bad); err == nil || !strings.Contains(err.Error(), "bad.json") {
		t.Errorf("malformed file: err = %v", err)
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"clump_count": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(invalid); !errors.Is(err, colony.ErrInvalidConfig) {
		t.Errorf("invalid config: err = %v", err)
	}
}
