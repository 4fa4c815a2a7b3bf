package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Permission source kinds accepted in permissions.source.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourceDatabase = "database"
)

// Config is the root configuration structure for featuregate.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Permissions PermissionsConfig `yaml:"permissions"`
	Database    DatabaseConfig    `yaml:"database"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// PermissionsConfig selects where the role -> feature table is loaded from.
type PermissionsConfig struct {
	// Source is one of "builtin", "file" or "database".
	Source string `yaml:"source"`

	// File is the YAML or JSON fixture read when Source is "file".
	File string `yaml:"file"`

	// Strict rejects fixtures with unknown or duplicate identifiers instead
	// of logging a warning and ignoring them.
	Strict bool `yaml:"strict"`
}

// DatabaseConfig contains SQLite fixture database settings.
// Only read when permissions.source is "database".
type DatabaseConfig struct {
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
	Migrate     bool   `yaml:"migrate"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: FEATUREGATE_SECTION_KEY
// For example: FEATUREGATE_PERMISSIONS_FILE, FEATUREGATE_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// A relative fixture path in the file is relative to the file itself.
	if f := cfg.Permissions.File; f != "" && !filepath.IsAbs(f) {
		cfg.Permissions.File = filepath.Join(filepath.Dir(path), f)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration with environment overrides
// applied. Used when no config file is given.
func Default() (*Config, error) {
	cfg := defaultConfig()
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Permissions: PermissionsConfig{
			Source: SourceBuiltin,
		},
		Database: DatabaseConfig{
			Path:        "./data/featuregate.db",
			WALMode:     true,
			BusyTimeout: 5,
			Migrate:     true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FEATUREGATE_PERMISSIONS_SOURCE"); v != "" {
		cfg.Permissions.Source = v
	}
	if v := os.Getenv("FEATUREGATE_PERMISSIONS_FILE"); v != "" {
		cfg.Permissions.File = v
	}
	if v := os.Getenv("FEATUREGATE_PERMISSIONS_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Permissions.Strict = b
		}
	}

	if v := os.Getenv("FEATUREGATE_DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}

	if v := os.Getenv("FEATUREGATE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FEATUREGATE_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate checks the configuration for errors.
// All problems are reported together rather than stopping at the first.
func (c *Config) Validate() error {
	var errs []string

	switch c.Permissions.Source {
	case SourceBuiltin:
	case SourceFile:
		if c.Permissions.File == "" {
			errs = append(errs, "permissions.file is required when permissions.source is \"file\"")
		}
	case SourceDatabase:
		if c.Database.Path == "" {
			errs = append(errs, "database.path is required when permissions.source is \"database\"")
		}
		if c.Database.BusyTimeout < 0 {
			errs = append(errs, "database.busy_timeout must not be negative")
		}
	default:
		errs = append(errs, fmt.Sprintf("permissions.source must be one of builtin, file, database (got %q)", c.Permissions.Source))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "text":
	default:
		errs = append(errs, "logging.format must be json or text")
	}

	switch strings.ToLower(c.Logging.Output) {
	case "", "stdout", "stderr":
	default:
		errs = append(errs, fmt.Sprintf("logging.output must be stdout or stderr (got %q)", c.Logging.Output))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
