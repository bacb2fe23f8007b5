// SPDX-License-Identifier: MIT

// Package config resolves fxarb settings from an optional .env file and
// FXARB_* environment variables. Command-line flags override the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvRates       = "FXARB_RATES"        // default rate sheet path
	EnvFormat      = "FXARB_FORMAT"       // text | json
	EnvDebug       = "FXARB_DEBUG"        // debug logging
	EnvTrace       = "FXARB_TRACE"        // per-round distance trace
	EnvMetricsFile = "FXARB_METRICS_FILE" // prometheus textfile output
	EnvWorkers     = "FXARB_WORKERS"
	EnvCacheSize   = "FXARB_CACHE_SIZE"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Defaults.
const (
	DefaultFormat    = FormatText
	DefaultWorkers   = 4
	DefaultCacheSize = 256
)

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the resolved settings.
type Config struct {
	Rates       string
	Format      string
	Debug       bool
	Trace       bool
	MetricsFile string
	Workers     int
	CacheSize   int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Format:    DefaultFormat,
		Workers:   DefaultWorkers,
		CacheSize: DefaultCacheSize,
	}
}

// LoadEnv loads variables from the given .env files (".env" when none are
// given) without overriding variables already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return nil
}

// Load runs LoadEnv and then FromEnv.
func Load(files ...string) (Config, error) {
	if err := LoadEnv(files...); err != nil {
		return Config{}, err
	}

	return FromEnv()
}

// FromEnv reads FXARB_* variables on top of Default and validates the result.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.Rates = GetEnvWithDefault(EnvRates, cfg.Rates)
	cfg.Format = strings.ToLower(GetEnvWithDefault(EnvFormat, cfg.Format))
	cfg.MetricsFile = GetEnvWithDefault(EnvMetricsFile, cfg.MetricsFile)

	var err error
	if cfg.Debug, err = envBool(EnvDebug, cfg.Debug); err != nil {
		return Config{}, err
	}
	if cfg.Trace, err = envBool(EnvTrace, cfg.Trace); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = envInt(EnvWorkers, cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.CacheSize, err = envInt(EnvCacheSize, cfg.CacheSize); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Validate checks every setting.
func (c Config) Validate() error {
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalid, c.Format, FormatText, FormatJSON)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers=%d", ErrInvalid, c.Workers)
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("%w: cache size=%d", ErrInvalid, c.CacheSize)
	}

	return nil
}

// GetEnvWithDefault returns the value of key, or def when it is unset or empty.
func GetEnvWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
	}

	return b, nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
	}

	return n, nil
}
