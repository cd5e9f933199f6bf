package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig represents the configuration file structure.
// Command line flags take precedence over every field.
type FileConfig struct {
	Example     string `yaml:"example"`
	StrictEmpty bool   `yaml:"strict_empty"`
	Watch       bool   `yaml:"watch"`
	Verbose     bool   `yaml:"verbose"`
}

// configFileNames lists the supported config file names in priority order
var configFileNames = []string{
	".envcheck.yaml",
	".envcheck.yml",
}

// LoadFile loads configuration from a YAML file. Unknown fields are rejected.
// A relative example path is resolved against the config file's directory.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if cfg.Example != "" && !filepath.IsAbs(cfg.Example) {
		cfg.Example = filepath.Join(filepath.Dir(path), cfg.Example)
	}

	return &cfg, nil
}

// FindConfigFile looks for a config file in the current directory
// Returns the path if found, empty string if not found
func FindConfigFile() string {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// FindConfigFileInDir looks for a config file in the specified directory
func FindConfigFileInDir(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
