// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultStoragePath is where the address book is kept when nothing else is configured.
	DefaultStoragePath = "addressbook.json"

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 10

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultConfigDir holds base.yaml and the per-profile files.
	DefaultConfigDir = "configs"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Storage   StorageConfig   `koanf:"storage"   validate:"required"`
	Book      BookConfig      `koanf:"book"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev test prod"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// StorageConfig selects where the address book is persisted.
type StorageConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=file sqlite"`
	Path   string `koanf:"path"   validate:"required"`
}

// BookConfig contains address book behavior switches.
type BookConfig struct {
	// StrictPhoneEdits reports a missing phone on change/remove-phone instead of ignoring it.
	StrictPhoneEdits bool `koanf:"strict_phone_edits"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// MetricsConfig contains prometheus textfile settings.
type MetricsConfig struct {
	// Textfile, when set, receives the command counters at shutdown.
	Textfile string `koanf:"textfile" validate:"omitempty,endswith=.prom"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "assistant-bot",
		"app.version":     "dev",
		"app.environment": "local",

		"log.level":            "warn",
		"log.format":           "text",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/assistant.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"storage.driver": "file",
		"storage.path":   DefaultStoragePath,

		"book.strict_phone_edits": true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "assistant-bot",
		"telemetry.sampling_rate": 1.0,

		"metrics.textfile": "",
	}
}

// Option customizes Load.
type Option func(*loadOptions)

type loadOptions struct {
	dir       string
	file      string
	overrides map[string]any
}

// WithDir loads base.yaml and the profile file from dir instead of DefaultConfigDir.
func WithDir(dir string) Option {
	return func(o *loadOptions) { o.dir = dir }
}

// WithFile loads an explicit config file after the profile file. The file must exist.
func WithFile(path string) Option {
	return func(o *loadOptions) { o.file = path }
}

// WithOverrides applies dotted keys (e.g. "storage.path") last, above environment variables.
// Command-line flags use this.
func WithOverrides(values map[string]any) Option {
	return func(o *loadOptions) { o.overrides = values }
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Overrides (command-line flags)
//  2. Environment variables (APP_ prefix)
//  3. Explicit config file (WithFile)
//  4. Profile config file ({dir}/{profile}.yaml)
//  5. Base config file ({dir}/base.yaml)
//  6. Default values
func Load(profile string, opts ...Option) (*Config, error) {
	o := loadOptions{dir: DefaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")

	// 1. Load defaults
	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Load base config file if it exists
	err = loadFileIfExists(k, filepath.Join(o.dir, "base.yaml"))
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	// 3. Load profile config file if it exists
	if profile != "" {
		err := loadFileIfExists(k, filepath.Join(o.dir, profile+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	// 4. Load the explicit config file
	if o.file != "" {
		err := k.Load(file.Provider(o.file), yaml.Parser())
		if err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", o.file, err)
		}
	}

	// 5. Load environment variables with APP_ prefix
	err = k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "APP_")),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// 6. Apply overrides
	if len(o.overrides) > 0 {
		err := k.Load(confmap.Provider(o.overrides, "."), nil)
		if err != nil {
			return nil, fmt.Errorf("loading overrides: %w", err)
		}
	}

	// Unmarshal into Config struct
	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil // File doesn't exist, that's fine
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
