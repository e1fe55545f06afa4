// Package config loads CLI configuration for chemops from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moleculab/go-chemops/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits for multi-tenant safety.
const (
	MaxFormatLength    = 20   // "inchi", "smiles", "cml"
	MaxPathLength      = 4096 // java binary, classpath entries
	MaxClasspathLength = 8192 // colon-separated jar list
)

// Config holds all configuration for the chemops CLI.
type Config struct {
	Engine      EngineConfig      `yaml:"engine"`
	Protonation ProtonationConfig `yaml:"protonation"`
	Render      RenderConfig      `yaml:"render"`
	Workers     int               `yaml:"workers"` // 0 = auto (GOMAXPROCS-based)
}

// EngineConfig defines how the JVM bridge is launched.
type EngineConfig struct {
	JavaBin        string `yaml:"javaBin"`        // Java binary (default: "java")
	Classpath      string `yaml:"classpath"`      // Marvin jars + bridge class (empty = ambient CLASSPATH)
	TimeoutSeconds int    `yaml:"timeoutSeconds"` // per-call timeout (default: 30)
}

// ProtonationConfig defines protonation defaults.
type ProtonationConfig struct {
	InputFormat   string  `yaml:"inputFormat"`   // default "inchi"
	OutputFormat  string  `yaml:"outputFormat"`  // default "inchi"
	PH            float64 `yaml:"ph"`            // default 7.4
	MajorTautomer bool    `yaml:"majorTautomer"` // use the major tautomeric form
	KeepHydrogens bool    `yaml:"keepHydrogens"` // keep explicit hydrogens
}

// RenderConfig defines depiction defaults.
type RenderConfig struct {
	Format          string `yaml:"format"`          // image format (default: "svg")
	Width           int    `yaml:"width"`           // pixels (default: 200)
	Height          int    `yaml:"height"`          // pixels (default: 200)
	ShowAtomNumbers bool   `yaml:"showAtomNumbers"` // display atom indices
	OmitXMLHeader   bool   `yaml:"omitXMLHeader"`   // svg without XML declaration
}

// Validate checks field lengths and value ranges. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("engine.javaBin", c.Engine.JavaBin, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("engine.classpath", c.Engine.Classpath, MaxClasspathLength); err != nil {
		return err
	}
	if c.Engine.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: engine.timeoutSeconds must not be negative, got %d", ErrInvalidValue, c.Engine.TimeoutSeconds)
	}

	if err := validateFieldLength("protonation.inputFormat", c.Protonation.InputFormat, MaxFormatLength); err != nil {
		return err
	}
	if err := validateFieldLength("protonation.outputFormat", c.Protonation.OutputFormat, MaxFormatLength); err != nil {
		return err
	}

	if err := validateFieldLength("render.format", c.Render.Format, MaxFormatLength); err != nil {
		return err
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return fmt.Errorf("%w: render dimensions must not be negative, got %dx%d", ErrInvalidValue, c.Render.Width, c.Render.Height)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidValue, c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			JavaBin:        "java",
			TimeoutSeconds: 30,
		},
		Protonation: ProtonationConfig{
			InputFormat:  "inchi",
			OutputFormat: "inchi",
			PH:           7.4,
		},
		Render: RenderConfig{
			Format: "svg",
			Width:  200,
			Height: 200,
		},
	}
}

// LoadConfig loads configuration from a file path or config name, merged
// over the defaults. If nameOrPath contains a path separator, it's
// treated as a file path. Otherwise it's searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
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

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/chemops/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "chemops", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
