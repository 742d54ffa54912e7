package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"hours", "2h", 2 * time.Hour, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"seconds", 30 * time.Second, "30s"},
		{"minutes", 5 * time.Minute, "5m0s"},
		{"hours", 2 * time.Hour, "2h0m0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Duration{tt.duration}
			result, err := d.MarshalText()

			if err != nil {
				t.Errorf("MarshalText() error = %v", err)
				return
			}

			if string(result) != tt.expected {
				t.Errorf("MarshalText() = %v, want %v", string(result), tt.expected)
			}
		})
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	// General defaults
	if cfg.General.Name != "algebralab" {
		t.Errorf("General.Name = %v, want algebralab", cfg.General.Name)
	}
	if cfg.General.Environment != "development" {
		t.Errorf("General.Environment = %v, want development", cfg.General.Environment)
	}
	if cfg.General.DataDir != "./data" {
		t.Errorf("General.DataDir = %v, want ./data", cfg.General.DataDir)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "console" {
		t.Errorf("General.LogFormat = %v, want console", cfg.General.LogFormat)
	}

	// Server defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %v, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.GRPCPort != 9310 {
		t.Errorf("Server.GRPCPort = %v, want 9310", cfg.Server.GRPCPort)
	}
	if cfg.Server.HTTPPort != 9311 {
		t.Errorf("Server.HTTPPort = %v, want 9311", cfg.Server.HTTPPort)
	}
	if cfg.Server.ReadTimeout.Duration != 30*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 30s", cfg.Server.ReadTimeout.Duration)
	}

	// History defaults
	if !cfg.HistoryEnabled() {
		t.Error("HistoryEnabled() = false, want true")
	}
	if cfg.History.Path != filepath.Join("./data", "history.db") {
		t.Errorf("History.Path = %v, want data/history.db", cfg.History.Path)
	}
	if cfg.History.Capacity != 10 {
		t.Errorf("History.Capacity = %v, want 10", cfg.History.Capacity)
	}

	// Format defaults
	if cfg.Format.Precision != 4 {
		t.Errorf("Format.Precision = %v, want 4", cfg.Format.Precision)
	}
}

func TestConfig_Addresses(t *testing.T) {
	cfg := Default()

	if got := cfg.GRPCAddress(); got != "0.0.0.0:9310" {
		t.Errorf("GRPCAddress() = %v, want 0.0.0.0:9310", got)
	}
	if got := cfg.HTTPAddress(); got != "0.0.0.0:9311" {
		t.Errorf("HTTPAddress() = %v, want 0.0.0.0:9311", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"grpc port out of range", func(c *Config) { c.Server.GRPCPort = 70000 }, true},
		{"http port negative", func(c *Config) { c.Server.HTTPPort = -1 }, true},
		{"same ports", func(c *Config) { c.Server.HTTPPort = c.Server.GRPCPort }, true},
		{"negative capacity", func(c *Config) { c.History.Capacity = -3 }, true},
		{"precision too large", func(c *Config) { c.Format.Precision = 16 }, true},
		{"watch without file", func(c *Config) { c.Translate.Watch = true }, true},
		{"watch with file", func(c *Config) {
			c.Translate.Watch = true
			c.Translate.PatternsFile = "patterns.yaml"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("Load() expected error for non-existent file")
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	configContent := `
[general]
name = "TestLab"
environment = "test"

[server]
grpc_port = 9999
host = "127.0.0.1"
read_timeout = "5s"

[history]
enabled = false
capacity = 3

[translate]
patterns_file = "patterns.yaml"
watch = true

[format]
precision = 6
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "TestLab" {
		t.Errorf("General.Name = %v, want TestLab", cfg.General.Name)
	}
	if cfg.Server.GRPCPort != 9999 {
		t.Errorf("Server.GRPCPort = %v, want 9999", cfg.Server.GRPCPort)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %v, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout.Duration)
	}
	if cfg.HistoryEnabled() {
		t.Error("HistoryEnabled() = true, want false")
	}
	if cfg.History.Capacity != 3 {
		t.Errorf("History.Capacity = %v, want 3", cfg.History.Capacity)
	}
	if !cfg.Translate.Watch || cfg.Translate.PatternsFile != "patterns.yaml" {
		t.Errorf("Translate = %+v", cfg.Translate)
	}
	if cfg.Format.Precision != 6 {
		t.Errorf("Format.Precision = %v, want 6", cfg.Format.Precision)
	}

	// Check defaults were applied for missing values
	if cfg.Server.HTTPPort != 9311 {
		t.Errorf("Server.HTTPPort = %v, want 9311 (default)", cfg.Server.HTTPPort)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[format]\nprecision = 99\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load() expected validation error")
	}
}

func TestConfig_expandEnvVars(t *testing.T) {
	t.Setenv("TEST_LAB_DIR", "/srv/lab")

	cfg := &Config{
		General: GeneralConfig{DataDir: "$TEST_LAB_DIR"},
		History: HistoryConfig{Path: "${TEST_LAB_DIR}/history.db"},
	}

	cfg.expandEnvVars()

	if cfg.General.DataDir != "/srv/lab" {
		t.Errorf("DataDir = %v, want /srv/lab", cfg.General.DataDir)
	}
	if cfg.History.Path != "/srv/lab/history.db" {
		t.Errorf("History.Path = %v, want /srv/lab/history.db", cfg.History.Path)
	}
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Setenv("HOME", t.TempDir())

	originalWd, _ := os.Getwd()
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	defer os.Chdir(originalWd)

	_, err := LoadFromEnv()
	if err == nil {
		t.Error("LoadFromEnv() expected error when no config found")
	}

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.General.Name != "algebralab" {
		t.Errorf("LoadOrDefault() name = %v, want algebralab", cfg.General.Name)
	}
}

func TestLoadFromEnv_UsesVariable(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "lab.toml")
	if err := os.WriteFile(configPath, []byte("[general]\nname = \"from-env\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv(EnvVar, configPath)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "from-env" {
		t.Errorf("General.Name = %v, want from-env", cfg.General.Name)
	}
}
