// Package config loads server configuration from an optional YAML file with
// environment variable overrides. Precedence: defaults, then file, then env.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig    `yaml:"server"`
	Store       StoreConfig     `yaml:"store"`
	Bus         BusConfig       `yaml:"bus"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
	Logging     LoggingConfig   `yaml:"logging"`
	Environment string          `yaml:"environment"`
}

type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	BaseURL string `yaml:"base_url"`
}

type StoreConfig struct {
	// Path of the JSON document holding all collections.
	Path string `yaml:"path"`
}

type BusConfig struct {
	// BufferSize is the per-subscription notification queue capacity.
	BufferSize int `yaml:"buffer_size"`
}

type RateLimitConfig struct {
	// PerMinute of 0 disables rate limiting.
	PerMinute int `yaml:"per_minute"`
	Burst     int `yaml:"burst"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    4000,
			BaseURL: "http://localhost:4000",
		},
		Store:       StoreConfig{Path: "data.json"},
		Bus:         BusConfig{BufferSize: 64},
		RateLimit:   RateLimitConfig{PerMinute: 120, Burst: 30},
		Logging:     LoggingConfig{Level: "info", Format: "json"},
		Environment: "development",
	}
}

// Load builds the configuration. path names a YAML file and may be empty, in
// which case only defaults and environment variables apply.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Host = getEnv("SERVER_HOST", c.Server.Host)
	c.Server.Port = getEnvInt("SERVER_PORT", c.Server.Port)
	c.Server.BaseURL = getEnv("SERVER_BASE_URL", c.Server.BaseURL)
	c.Store.Path = getEnv("STORE_PATH", c.Store.Path)
	c.Bus.BufferSize = getEnvInt("BUS_BUFFER_SIZE", c.Bus.BufferSize)
	c.RateLimit.PerMinute = getEnvInt("RATE_LIMIT_PER_MINUTE", c.RateLimit.PerMinute)
	c.RateLimit.Burst = getEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst)
	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnv("LOG_FORMAT", c.Logging.Format)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store path is required")
	}
	if c.Bus.BufferSize < 1 {
		return fmt.Errorf("bus buffer size must be positive, got %d", c.Bus.BufferSize)
	}
	if c.RateLimit.PerMinute < 0 {
		return fmt.Errorf("rate limit per minute must not be negative, got %d", c.RateLimit.PerMinute)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
