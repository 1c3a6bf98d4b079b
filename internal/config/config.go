// Package config handles client configuration loading and validation.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/mingle-app/mingle/internal/plan"
)

// Environment overrides.
const (
	EnvToken  = "MINGLE_TOKEN"
	EnvAPIURL = "MINGLE_API_URL"
)

// Config is the top-level client configuration.
type Config struct {
	API         APIConfig `json:"api"`
	LogLevel    string    `json:"log_level,omitempty"`
	DefaultPlan plan.Plan `json:"default_plan,omitempty"` // used when the token carries no plan claim
}

// APIConfig defines how the client reaches the Mingle backend.
type APIConfig struct {
	URL     string   `json:"url"`
	Token   string   `json:"token"`
	Timeout Duration `json:"timeout,omitempty"` // zero: no client-side timeout
}

// Duration is a JSON-friendly time.Duration (accepts strings like "30s", "5m").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case string:
		dur, err := time.ParseDuration(val)
		if err != nil {
			return err
		}
		d.Duration = dur
	case float64:
		d.Duration = time.Duration(val) * time.Second
	default:
		return fmt.Errorf("invalid duration: %v", v)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// DefaultConfigPath returns the per-user config location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "mingle-config.json"
	}
	return filepath.Join(dir, "mingle", "config.json")
}

// Load reads a config file, applies environment overrides and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvToken); v != "" {
		c.API.Token = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.URL = v
	}
}

func (c *Config) validate() error {
	if c.API.URL == "" {
		return fmt.Errorf("api.url is required")
	}
	u, err := url.Parse(c.API.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.url must be an http(s) URL")
	}
	if c.API.Timeout.Duration < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error")
	}
	if c.DefaultPlan != "" && !c.DefaultPlan.Valid() {
		return fmt.Errorf("default_plan must be free, trial, basic, or premium")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DefaultPlan == "" {
		c.DefaultPlan = plan.Free
	}
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
