// Package config loads the optional trending configuration file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/trending/pkg/errors"
	"github.com/matzehuels/trending/pkg/integrations/github"
)

const (
	appName  = "trending"
	fileName = "config.toml"
)

// Config represents the CLI configuration.
type Config struct {
	// BaseURL is the origin of the trending pages.
	BaseURL string `toml:"base_url"`

	// UserAgent is sent with the page request. GitHub requires a browser-like value.
	UserAgent string `toml:"user_agent"`

	// Timeout bounds the HTTP request (e.g. "30s"). Zero means no client-side limit.
	Timeout time.Duration `toml:"timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:   github.DefaultBaseURL,
		UserAgent: github.DefaultUserAgent,
		Timeout:   0,
	}
}

// ClientOptions converts the configuration to fetcher options.
func (c *Config) ClientOptions() github.Options {
	return github.Options{
		BaseURL:   c.BaseURL,
		UserAgent: c.UserAgent,
		Timeout:   c.Timeout,
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if err := errs.ValidateURL(c.BaseURL); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "invalid base_url %q", c.BaseURL)
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "user_agent cannot be empty")
	}
	if c.Timeout < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "timeout cannot be negative: %s", c.Timeout)
	}
	return nil
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/trending/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config file at path on top of [Default].
// A missing file is not an error and yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads the config file at path on top of [Default].
// Unlike [Load], a missing file is reported; the error matches fs.ErrNotExist.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
