package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olivierh59500/ant-colony-go/pkg/colony"
)

// loadConfig reads a JSON settings file on top of the defaults, so a file may
// name only the fields it changes.
func loadConfig(filename string) (colony.Config, error) {
	cfg := colony.DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// saveConfig writes cfg as indented JSON.
func saveConfig(filename string, cfg colony.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
