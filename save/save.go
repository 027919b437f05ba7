// Package save persists progress between runs.
package save

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Data is everything that survives a restart.
type Data struct {
	LastLevel string   `yaml:"last_level"`
	Letters   []string `yaml:"letters"`
}

// DefaultPath returns the per-user save location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("save: config dir: %w", err)
	}
	return filepath.Join(dir, "letterbound", "save.yaml"), nil
}

// Load reads saved progress. A missing file is a fresh start, not an error.
func Load(path string) (*Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Data{}, nil
		}
		return nil, fmt.Errorf("save: read %s: %w", path, err)
	}
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("save: unmarshal %s: %w", path, err)
	}
	return &d, nil
}

// Store writes progress, creating the directory if needed.
func Store(path string, d *Data) error {
	if d == nil {
		return fmt.Errorf("save: nil data")
	}
	b, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("save: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save: mkdir: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("save: write %s: %w", path, err)
	}
	return nil
}
