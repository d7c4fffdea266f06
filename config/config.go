// Package config loads optional file-based server configuration. CLI flags
// override anything read from the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the project root when no -config flag is
// given.
const DefaultFileName = ".resfind.yml"

// Config holds server settings.
type Config struct {
	// Root is the project root directory. Empty means the working directory.
	Root string `yaml:"root"`

	// Ext is the recognized resource extension, with or without leading dot.
	Ext string `yaml:"ext"`

	// Excludes are extra ignore patterns (filepath.Match syntax).
	Excludes []string `yaml:"excludes"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFile is the log destination. Empty means resfind-mcp.log in the
	// project root.
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Ext:      ".res",
		LogLevel: "info",
	}
}

// Load reads a config file, layering it over the defaults. A missing file
// is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Ext == "" {
		cfg.Ext = ".res"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}
