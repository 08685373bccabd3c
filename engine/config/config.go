package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tool settings. Values come from defaults, overridden by
// an optional TOML file, overridden again by command-line flags in main.
type Config struct {
	// Shape is "sphere" or "cube".
	Shape     string `toml:"shape"`
	ImagesDir string `toml:"images_dir"`
	Output    string `toml:"output"`
	Validate  bool   `toml:"validate"`
	Watch     bool   `toml:"watch"`
	Log       Log    `toml:"log"`
}

type Log struct {
	Level string `toml:"level"`
}

func Default() *Config {
	return &Config{
		Shape:     "sphere",
		ImagesDir: "images",
		Output:    "preview.glb",
		Validate:  true,
		Log:       Log{Level: "info"},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing file is
// not an error: the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Shape != "sphere" && cfg.Shape != "cube" {
		return nil, fmt.Errorf("parsing %s: unknown shape %q", path, cfg.Shape)
	}
	return cfg, nil
}
