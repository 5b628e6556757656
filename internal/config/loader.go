package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"zpack/pkg/types"
)

// Config holds optional overrides for the release packager. Zero values mean
// "unspecified" and leave the built-in defaults in place.
type Config struct {
	Families      []types.Family `json:"families" yaml:"families" toml:"families"`
	Variations    []string       `json:"variations" yaml:"variations" toml:"variations"`
	Formats       []string       `json:"formats" yaml:"formats" toml:"formats"`
	LicenseFile   string         `json:"license_file" yaml:"license_file" toml:"license_file"`
	ReadmeSource  string         `json:"readme_source" yaml:"readme_source" toml:"readme_source"`
	ReleaseSubdir string         `json:"release_subdir" yaml:"release_subdir" toml:"release_subdir"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
