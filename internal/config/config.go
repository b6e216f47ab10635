// Package config loads the optional config.yaml from the library
// directory. A missing file is not an error; every setting has a working
// default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-adjustable settings.
type Config struct {
	// Editor overrides $EDITOR for the in-app edit command, e.g.
	// "code --wait".
	Editor string `yaml:"editor,omitempty"`

	// MarkdownStyle forces a glamour style ("dark", "light", "notty", or
	// a style file path) for the rendered-output preview. Empty means
	// auto-detection.
	MarkdownStyle string `yaml:"markdown_style,omitempty"`
}

// Load reads config.yaml from dir. A missing file yields a zero Config.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
