package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tallyhq/tally/internal/categories"
)

// FileName is the per-tracker configuration file.
const FileName = "tally.yaml"

// DataFileName is the persisted transaction blob inside the data directory.
const DataFileName = "transactions.json"

// Config represents the top-level tally.yaml configuration.
type Config struct {
	DataDir    string    `yaml:"data_dir"`
	Categories []string  `yaml:"categories,omitempty"`
	Log        LogConfig `yaml:"log"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads tally.yaml from dir, applying environment overrides. A missing
// file yields the defaults; a .env file in the working directory is honored
// first if present.
func Load(dir string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if v := os.Getenv("TALLY_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TALLY_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dir
	}
	return cfg, nil
}

// Save writes a Config to tally.yaml in dir.
func Save(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new tracker.
func Default() *Config {
	return &Config{
		Categories: append([]string(nil), categories.Defaults...),
		Log:        LogConfig{Level: "info"},
	}
}

// DataFile returns the path of the transaction blob for this config.
func (c *Config) DataFile() string {
	return filepath.Join(c.DataDir, DataFileName)
}
