package config

import (
	"os"
	"strconv"
	"unicode/utf8"

	"godescribe/internal/errors"
)

// Config is the complete application configuration, read from the
// environment. Nothing here is secret; every field has a default.
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Analysis AnalysisConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// UploadConfig bounds what the upload endpoint accepts.
type UploadConfig struct {
	MaxBytes int64
}

// AnalysisConfig tunes the engine defaults.
type AnalysisConfig struct {
	// Delimiter is the default CSV field separator; requests may
	// override it.
	Delimiter rune

	// Workers bounds concurrent per-column summary computation.
	Workers int
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Upload: UploadConfig{
			MaxBytes: getEnvInt64OrDefault("MAX_UPLOAD_BYTES", 50*1024*1024),
		},
		Analysis: AnalysisConfig{
			Delimiter: getEnvRuneOrDefault("CSV_DELIMITER", ','),
			Workers:   getEnvIntOrDefault("SUMMARY_WORKERS", 4),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Upload.MaxBytes <= 0 {
		return errors.InvalidInput("MAX_UPLOAD_BYTES must be positive")
	}
	if c.Analysis.Workers < 1 {
		return errors.InvalidInput("SUMMARY_WORKERS must be at least 1")
	}
	if c.Analysis.Delimiter == '"' || c.Analysis.Delimiter == '\n' || c.Analysis.Delimiter == '\r' {
		return errors.InvalidInput("CSV_DELIMITER cannot be a quote or line break")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvRuneOrDefault(key string, defaultValue rune) rune {
	if value := os.Getenv(key); value != "" {
		r, _ := utf8.DecodeRuneInString(value)
		if r != utf8.RuneError {
			return r
		}
	}
	return defaultValue
}
