package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the preview server.
type Config struct {
	// ListenAddress is the host:port the HTTP server binds to.
	ListenAddress string `yaml:"listen_address"`

	// Environment selects the logger encoding and the footer tag:
	// "development" or "production".
	Environment string `yaml:"environment"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// FullName is the display name the preview signs in as.
	FullName string `yaml:"full_name"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() Config {
	return Config{
		ListenAddress: ":8080",
		Environment:   "development",
		LogLevel:      "info",
		FullName:      "Nguyen Van An",
	}
}

// Load reads the YAML file at path (skipped when path is empty or the file
// does not exist), then applies EXAMPRO_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.ListenAddress = getEnv("EXAMPRO_LISTEN_ADDRESS", cfg.ListenAddress)
	cfg.Environment = getEnv("EXAMPRO_ENVIRONMENT", cfg.Environment)
	cfg.LogLevel = getEnv("EXAMPRO_LOG_LEVEL", cfg.LogLevel)
	cfg.FullName = getEnv("EXAMPRO_FULL_NAME", cfg.FullName)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Development reports whether the development variants should render.
func (c Config) Development() bool {
	return c.Environment != "production"
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	if c.ListenAddress == "" {
		return fmt.Errorf("listen_address must not be empty")
	}

	switch c.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("environment must be development or production, got %q", c.Environment)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
