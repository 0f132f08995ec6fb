// Package config loads the entrymd CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openscribe/entrymd/internal/hints"
	"github.com/openscribe/entrymd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrInvalidDirection = errors.New("invalid conversion direction")
	ErrInvalidTruncate  = errors.New("invalid truncate limit")
)

// Conversion directions accepted in config and on the command line.
const (
	DirectionAuto     = "auto"
	DirectionMarkdown = "md"
	DirectionHTML     = "html"
)

// MaxTruncateLimit bounds the truncation setting; anything larger is a
// configuration mistake rather than a real response cap.
const MaxTruncateLimit = 1 << 20

// Config holds all configuration for the entrymd CLI.
type Config struct {
	Convert  ConvertConfig  `yaml:"convert"`
	Output   OutputConfig   `yaml:"output"`
	Truncate TruncateConfig `yaml:"truncate"`
}

// ConvertConfig defines conversion behavior.
type ConvertConfig struct {
	Direction string `yaml:"direction"` // "auto", "md", "html" (default: "auto")
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// TruncateConfig caps Markdown output length; applies to the HTML-to-
// Markdown direction only.
type TruncateConfig struct {
	Enabled bool `yaml:"enabled"`
	Limit   int  `yaml:"limit"` // characters before the trailing ellipsis
}

// Validate checks that the configuration values are usable.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	switch c.Convert.Direction {
	case "", DirectionAuto, DirectionMarkdown, DirectionHTML:
	default:
		return fmt.Errorf("%w: %q (must be auto, md, or html)", ErrInvalidDirection, c.Convert.Direction)
	}

	if c.Truncate.Enabled {
		if c.Truncate.Limit <= 0 || c.Truncate.Limit > MaxTruncateLimit {
			return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidTruncate, c.Truncate.Limit, MaxTruncateLimit)
		}
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Convert:  ConvertConfig{Direction: DirectionAuto},
		Output:   OutputConfig{DefaultDir: ""},
		Truncate: TruncateConfig{Enabled: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/entrymd/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "entrymd", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s%s",
		ErrConfigNotFound, strings.Join(triedPaths, ", "), hints.ForConfigNotFound(triedPaths))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
