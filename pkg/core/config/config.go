// ============================================================================
// algebralab - Algebra teaching toolkit
// ============================================================================
//
// Package:     config
// Description: TOML configuration with defaults and environment lookup
// Author:      algebralab team
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable that points to the config file
const EnvVar = "ALGEBRALAB_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Server    ServerConfig    `toml:"server"`
	History   HistoryConfig   `toml:"history"`
	Translate TranslateConfig `toml:"translate"`
	Format    FormatConfig    `toml:"format"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name"`
	Environment string `toml:"environment"`
	DataDir     string `toml:"data_dir"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
}

// ServerConfig holds the gRPC and HTTP/WebSocket listener settings
type ServerConfig struct {
	Host             string   `toml:"host"`
	GRPCPort         int      `toml:"grpc_port"`
	HTTPPort         int      `toml:"http_port"`
	ReadTimeout      Duration `toml:"read_timeout"`
	WriteTimeout     Duration `toml:"write_timeout"`
	EnableReflection bool     `toml:"enable_reflection"`
	AllowedOrigins   []string `toml:"allowed_origins"`
}

// HistoryConfig holds the calculation history store settings
type HistoryConfig struct {
	Enabled  *bool  `toml:"enabled"`
	Path     string `toml:"path"`
	Capacity int    `toml:"capacity"`
}

// TranslateConfig holds the phrase translator settings
type TranslateConfig struct {
	PatternsFile string `toml:"patterns_file"`
	Watch        bool   `toml:"watch"`
}

// FormatConfig holds output formatting settings
type FormatConfig struct {
	Precision int `toml:"precision"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the ALGEBRALAB_CONFIG environment
// variable or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		path = findDefault()
	}

	if path == "" {
		return nil, fmt.Errorf("no config file found, set %s or create configs/config.toml", EnvVar)
	}

	return Load(path)
}

// LoadOrDefault behaves like Load for a non-empty path and like LoadFromEnv
// otherwise, falling back to Default when no file is found
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if p := os.Getenv(EnvVar); p != "" {
		return Load(p)
	}
	if p := findDefault(); p != "" {
		return Load(p)
	}
	return Default(), nil
}

func findDefault() string {
	defaultPaths := []string{
		"./configs/config.toml",
		"./config.toml",
		filepath.Join(os.Getenv("HOME"), ".config/algebralab/config.toml"),
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "algebralab"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Server
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.GRPCPort == 0 {
		c.Server.GRPCPort = 9310
	}
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 9311
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 30 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 30 * time.Second
	}

	// History
	if c.History.Enabled == nil {
		enabled := true
		c.History.Enabled = &enabled
	}
	if c.History.Path == "" {
		c.History.Path = filepath.Join(c.General.DataDir, "history.db")
	}
	if c.History.Capacity == 0 {
		c.History.Capacity = 10
	}

	// Format
	if c.Format.Precision == 0 {
		c.Format.Precision = 4
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.History.Path = os.ExpandEnv(c.History.Path)
	c.Translate.PatternsFile = os.ExpandEnv(c.Translate.PatternsFile)
}

// Validate rejects values the application cannot run with
func (c *Config) Validate() error {
	if c.Server.GRPCPort < 0 || c.Server.GRPCPort > 65535 {
		return fmt.Errorf("server.grpc_port out of range: %d", c.Server.GRPCPort)
	}
	if c.Server.HTTPPort < 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort)
	}
	if c.Server.GRPCPort != 0 && c.Server.GRPCPort == c.Server.HTTPPort {
		return fmt.Errorf("server.grpc_port and server.http_port must differ")
	}
	if c.History.Capacity < 0 {
		return fmt.Errorf("history.capacity must be positive: %d", c.History.Capacity)
	}
	if c.Format.Precision < 0 || c.Format.Precision > 15 {
		return fmt.Errorf("format.precision must be between 0 and 15: %d", c.Format.Precision)
	}
	if c.Translate.Watch && c.Translate.PatternsFile == "" {
		return fmt.Errorf("translate.watch requires translate.patterns_file")
	}
	return nil
}

// HistoryEnabled reports whether the history store should be opened
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// GRPCAddress returns the gRPC listen address
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.GRPCPort)
}

// HTTPAddress returns the HTTP/WebSocket listen address
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.HTTPPort)
}
