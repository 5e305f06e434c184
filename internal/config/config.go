package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/amaumene/sheetsignup/internal/domain"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	defaultEnvFile        = ".env"
	defaultListenAddr     = "127.0.0.1:3000"
	defaultForwardTimeout = 10 * time.Second
	defaultLogLevel       = "info"

	forwardURLKey = "GOOGLE_SHEET_URL"
)

type Config struct {
	ForwardURL     string
	ListenAddr     string
	ForwardTimeout time.Duration
	LogLevel       log.Level
}

// Load seeds the environment from the env file, if any, and reads the
// configuration from it.
func Load() (*Config, error) {
	if err := LoadEnvFile(getEnvOrDefault("ENV_FILE", defaultEnvFile)); err != nil {
		return nil, err
	}
	return FromEnv()
}

// LoadEnvFile loads KEY=VALUE lines from path into the process environment.
// Variables that are already set are left untouched. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		ListenAddr: getEnvOrDefault("LISTEN_ADDR", defaultListenAddr),
	}

	if err := cfg.loadForwardURL(); err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(getEnvOrDefault("FORWARD_TIMEOUT", defaultForwardTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("parsing FORWARD_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("FORWARD_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.ForwardTimeout = timeout

	level, err := log.ParseLevel(getEnvOrDefault("LOG_LEVEL", defaultLogLevel))
	if err != nil {
		return nil, fmt.Errorf("parsing LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

func (c *Config) loadForwardURL() error {
	value := os.Getenv(forwardURLKey)
	if value == "" {
		return fmt.Errorf("%w: required environment variable missing: %s", domain.ErrConfigMissing, forwardURLKey)
	}
	if err := validateForwardURL(value); err != nil {
		return fmt.Errorf("%s: %w", forwardURLKey, err)
	}
	c.ForwardURL = value
	return nil
}

func validateForwardURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidForwardURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", domain.ErrInvalidForwardURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", domain.ErrInvalidForwardURL)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
