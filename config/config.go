package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// Config holds tool settings for the arffengine CLI.
type Config struct {
	// Missing lists raw cell tokens normalized to missing at load time.
	Missing []string `toml:"missing"`
	// Format names the default output format for convert.
	Format string `toml:"format"`
	// Jobs caps concurrent file conversions; 0 means one per CPU.
	Jobs int `toml:"jobs"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Format: "arff"}
}

// Load reads settings from a TOML file, falling back to Default when the
// file does not exist.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings for values the tool cannot honor.
func (c Config) Validate() error {
	switch c.Format {
	case "arff", "csv", "json", "ipc":
	default:
		return fmt.Errorf("%w: unknown format %q", dataset.ErrInvalidArgument, c.Format)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative", dataset.ErrInvalidArgument)
	}
	return nil
}
