package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName        = "bookdate"
	configFileName = "config.toml"

	DefaultDataset     = "my_sample_data.csv"
	DefaultMaxAttempts = 3
	maxAttemptsLimit   = 10
)

// Lookup backends.
const (
	BackendScan   = "scan"
	BackendSQLite = "sqlite"
)

type Config struct {
	Dataset   string `koanf:"dataset"`   // path to the books file
	Delimiter string `koanf:"delimiter"` // single character, default ","
	Backend   string `koanf:"backend"`   // "scan" or "sqlite"

	RetryInvalid *bool `koanf:"retry_invalid"` // re-prompt after a non-numeric year (default: true)
	MaxAttempts  int   `koanf:"max_attempts"`  // prompts per session when retrying (1-10, default: 3)

	LogLevel string `koanf:"log_level"` // "debug", "info", "warn", "error" (default: "warn")

	// Sources lists the config files that were actually read.
	Sources []string `koanf:"-"`
}

// Load reads config files in priority order (last wins).
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files, skipping those that do not exist.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	var sources []string
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			sources = append(sources, path)
		}
	}

	cfg := &Config{
		Dataset: DefaultDataset,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.Sources = sources

	if cfg.Dataset == "" {
		cfg.Dataset = DefaultDataset
	}
	cfg.Dataset = expandPath(cfg.Dataset)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Delimiter != "" {
		r, size := utf8.DecodeRuneInString(c.Delimiter)
		if size != len(c.Delimiter) || r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
			return fmt.Errorf("delimiter %q: must be a single character other than quote or newline", c.Delimiter)
		}
	}

	switch strings.ToLower(c.Backend) {
	case "", BackendScan, BackendSQLite:
	default:
		return fmt.Errorf("backend %q: must be %q or %q", c.Backend, BackendScan, BackendSQLite)
	}
	return nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/bookdate/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./config.toml (pwd, highest priority)
		configFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DelimiterRune returns the field delimiter, ',' when unset.
func (c *Config) DelimiterRune() rune {
	if c.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// GetBackend returns the normalized lookup backend.
func (c *Config) GetBackend() string {
	if strings.EqualFold(c.Backend, BackendSQLite) {
		return BackendSQLite
	}
	return BackendScan
}

// ShouldRetryInvalid reports whether a non-numeric year triggers a new prompt.
func (c *Config) ShouldRetryInvalid() bool {
	return c.RetryInvalid == nil || *c.RetryInvalid
}

// GetMaxAttempts returns the number of prompts allowed in one session.
// It is 1 when retrying is disabled.
func (c *Config) GetMaxAttempts() int {
	if !c.ShouldRetryInvalid() {
		return 1
	}
	if c.MaxAttempts <= 0 || c.MaxAttempts > maxAttemptsLimit {
		return DefaultMaxAttempts
	}
	return c.MaxAttempts
}

// GetLogLevel returns the configured log level, "warn" when unset.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return strings.ToLower(c.LogLevel)
}

// ResolveDataset returns the path the dataset should be read from.
// A relative path that does not exist in the working directory is looked up
// under the XDG data directories. If nothing is found the configured path is
// returned unchanged so the loader reports it as missing.
func (c *Config) ResolveDataset() string {
	path := c.Dataset
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil || !errors.Is(err, os.ErrNotExist) {
		return path
	}
	if found, err := xdg.SearchDataFile(filepath.Join(appName, path)); err == nil {
		return found
	}
	return path
}
