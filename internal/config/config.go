// Package config provides configuration loading and validation for the dashboard server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Duration is a time.Duration that reads from JSON as a string such as "500ms".
type Duration time.Duration

// UnmarshalJSON accepts a Go duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case string:
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", val, err)
		}
		*d = Duration(parsed)
	case float64:
		*d = Duration(time.Duration(val))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
	return nil
}

// MarshalJSON writes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config represents the dashboard configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port     int    `json:"port,omitempty"`      // HTTP listen port
	BasePath string `json:"base_path,omitempty"` // Path prefix the dashboard is mounted under

	// Facade latencies; nil means "use the default", zero disables the wait
	ReadLatency    *Duration `json:"read_latency,omitempty"`
	AnalyzeLatency *Duration `json:"analyze_latency,omitempty"`

	// Data
	FixturesDir string `json:"fixtures_dir,omitempty"` // Directory overriding the embedded fixtures

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // text or json
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	read := Duration(500 * time.Millisecond)
	analyze := Duration(2 * time.Second)
	return Config{
		Port:           8080,
		ReadLatency:    &read,
		AnalyzeLatency: &analyze,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables. Unset or unparsable
// variables leave the field empty so MergeWithDefaults can fill it.
func FromEnv() Config {
	var cfg Config
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	cfg.BasePath = os.Getenv("BASE_PATH")
	cfg.ReadLatency = envDuration("READ_LATENCY")
	cfg.AnalyzeLatency = envDuration("ANALYZE_LATENCY")
	cfg.FixturesDir = os.Getenv("FIXTURES_DIR")
	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	cfg.LogFormat = os.Getenv("LOG_FORMAT")
	return cfg
}

func envDuration(key string) *Duration {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return nil
	}
	d := Duration(parsed)
	return &d
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.BasePath != "" {
		if !strings.HasPrefix(c.BasePath, "/") {
			return fmt.Errorf("config error: 'base_path' must start with '/'")
		}
		if c.BasePath != "/" && strings.HasSuffix(c.BasePath, "/") {
			return fmt.Errorf("config error: 'base_path' must not end with '/'")
		}
	}

	if c.ReadLatency != nil && *c.ReadLatency < 0 {
		return fmt.Errorf("config error: 'read_latency' must be non-negative")
	}
	if c.AnalyzeLatency != nil && *c.AnalyzeLatency < 0 {
		return fmt.Errorf("config error: 'analyze_latency' must be non-negative")
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("config error: unknown 'log_format' %q", c.LogFormat)
	}

	if c.FixturesDir != "" {
		info, err := os.Stat(c.FixturesDir)
		if err != nil {
			return fmt.Errorf("config error: fixtures directory not found: %s", c.FixturesDir)
		}
		if !info.IsDir() {
			return fmt.Errorf("config error: fixtures_dir is not a directory: %s", c.FixturesDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer environment over config file over built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.BasePath == "" {
		result.BasePath = defaults.BasePath
	}
	if result.ReadLatency == nil {
		result.ReadLatency = defaults.ReadLatency
	}
	if result.AnalyzeLatency == nil {
		result.AnalyzeLatency = defaults.AnalyzeLatency
	}
	if result.FixturesDir == "" {
		result.FixturesDir = defaults.FixturesDir
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	return result
}

// ReadLatencyOrDefault returns the configured read latency.
func (c *Config) ReadLatencyOrDefault() time.Duration {
	if c.ReadLatency == nil {
		return time.Duration(*Defaults().ReadLatency)
	}
	return time.Duration(*c.ReadLatency)
}

// AnalyzeLatencyOrDefault returns the configured analysis latency.
func (c *Config) AnalyzeLatencyOrDefault() time.Duration {
	if c.AnalyzeLatency == nil {
		return time.Duration(*Defaults().AnalyzeLatency)
	}
	return time.Duration(*c.AnalyzeLatency)
}
