package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/chaosgame/flame"
)

// Config is the fully validated set of render parameters handed to the
// core. It is populated from flags, an interactive prompt, or a JSON
// preset file; the core never sees an unvalidated value.
type Config struct {
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Samples    int      `json:"samples"`
	Iterations int      `json:"iterations"`
	Transforms []string `json:"transforms"`
	Symmetry   int      `json:"symmetry"`
	Workers    int      `json:"workers"`
	Output     string   `json:"output"`
}

func defaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Samples:    100000,
		Iterations: 50,
		Transforms: transformNames(),
		Symmetry:   1,
		Workers:    1,
		Output:     "flame.png",
	}
}

func transformNames() []string {
	ts := flame.Transforms()
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.String()
	}
	return names
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("width must be >= 1, got %d", c.Width)
	}
	if c.Height < 1 {
		return fmt.Errorf("height must be >= 1, got %d", c.Height)
	}
	if c.Samples < 1 {
		return fmt.Errorf("samples must be >= 1, got %d", c.Samples)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be >= 1, got %d", c.Iterations)
	}
	if c.Symmetry < 1 {
		return fmt.Errorf("symmetry must be >= 1, got %d", c.Symmetry)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if len(c.Transforms) == 0 {
		return errors.New("at least one transform must be selected")
	}
	if _, err := c.transforms(); err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(c.Output)); ext {
	case ".png", ".bmp":
	default:
		return fmt.Errorf("output must end in .png or .bmp, got %q", c.Output)
	}
	return nil
}

// transforms resolves the configured transform names against the catalog.
func (c Config) transforms() ([]flame.Transform, error) {
	ts := make([]flame.Transform, 0, len(c.Transforms))
	for _, name := range c.Transforms {
		t, err := flame.ParseTransform(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, nil
}

// loadPreset reads a Config from a JSON preset file. Fields absent from
// the file keep their defaults.
func loadPreset(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return cfg, err
	}
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("preset %s: %w", path, err)
	}
	return cfg, nil
}
