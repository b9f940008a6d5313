// Package config reads the dotenv CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gandalfthegui/dotenv/internal/envfile"
)

// Config holds CLI defaults. Flags override these.
type Config struct {
	// Files are loaded in order when no -f flag is given.
	Files    []string        `yaml:"files" toml:"files"`
	LogLevel string          `yaml:"log_level" toml:"log_level"`
	Options  envfile.Options `yaml:"options" toml:"options"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Files:    []string{".env"},
		LogLevel: "warn",
		Options:  envfile.DefaultOptions(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/dotenv/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "dotenv", "config.yaml")
}

// Load reads the config file at path on top of Default. A missing file is
// not an error. Files ending in .toml are decoded as TOML, anything else as
// YAML.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Files) == 0 {
		cfg.Files = Default().Files
	}
	return cfg, nil
}
