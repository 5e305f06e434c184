package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amaumene/sheetsignup/internal/domain"
	log "github.com/sirupsen/logrus"
)

// unsetEnv clears key for the duration of the test, restoring it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env: map[string]string{
				"GOOGLE_SHEET_URL": "https://script.google.com/macros/s/abc/exec",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.ForwardURL != "https://script.google.com/macros/s/abc/exec" {
					t.Errorf("ForwardURL = %q", cfg.ForwardURL)
				}
				if cfg.ListenAddr != defaultListenAddr {
					t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, defaultListenAddr)
				}
				if cfg.ForwardTimeout != defaultForwardTimeout {
					t.Errorf("ForwardTimeout = %v, want %v", cfg.ForwardTimeout, defaultForwardTimeout)
				}
				if cfg.LogLevel != log.InfoLevel {
					t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, log.InfoLevel)
				}
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"GOOGLE_SHEET_URL": "http://localhost:8080/hook",
				"LISTEN_ADDR":      "127.0.0.1:4000",
				"FORWARD_TIMEOUT":  "2s",
				"LOG_LEVEL":        "debug",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.ListenAddr != "127.0.0.1:4000" {
					t.Errorf("ListenAddr = %q", cfg.ListenAddr)
				}
				if cfg.ForwardTimeout != 2*time.Second {
					t.Errorf("ForwardTimeout = %v", cfg.ForwardTimeout)
				}
				if cfg.LogLevel != log.DebugLevel {
					t.Errorf("LogLevel = %v", cfg.LogLevel)
				}
			},
		},
		{
			name:    "missing forward url",
			env:     map[string]string{},
			wantErr: domain.ErrConfigMissing,
		},
		{
			name:    "relative forward url",
			env:     map[string]string{"GOOGLE_SHEET_URL": "/hook"},
			wantErr: domain.ErrInvalidForwardURL,
		},
		{
			name:    "unsupported scheme",
			env:     map[string]string{"GOOGLE_SHEET_URL": "ftp://example.com/hook"},
			wantErr: domain.ErrInvalidForwardURL,
		},
		{
			name:    "missing host",
			env:     map[string]string{"GOOGLE_SHEET_URL": "https:///hook"},
			wantErr: domain.ErrInvalidForwardURL,
		},
		{
			name:    "unparseable forward url",
			env:     map[string]string{"GOOGLE_SHEET_URL": "http://[::1"},
			wantErr: domain.ErrInvalidForwardURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"GOOGLE_SHEET_URL", "LISTEN_ADDR", "FORWARD_TIMEOUT", "LOG_LEVEL"} {
				unsetEnv(t, key)
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := FromEnv()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromEnv() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromEnv() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad timeout", key: "FORWARD_TIMEOUT", val: "soon"},
		{name: "zero timeout", key: "FORWARD_TIMEOUT", val: "0s"},
		{name: "bad log level", key: "LOG_LEVEL", val: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, "FORWARD_TIMEOUT")
			unsetEnv(t, "LOG_LEVEL")
			t.Setenv("GOOGLE_SHEET_URL", "https://example.com/hook")
			t.Setenv(tt.key, tt.val)

			if _, err := FromEnv(); err == nil {
				t.Errorf("FromEnv() error = nil, want error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "signup.env")
	content := "GOOGLE_SHEET_URL=https://example.com/from-file\nLISTEN_ADDR=127.0.0.1:3001\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	unsetEnv(t, "GOOGLE_SHEET_URL")
	unsetEnv(t, "FORWARD_TIMEOUT")
	unsetEnv(t, "LOG_LEVEL")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:3002")
	t.Setenv("ENV_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ForwardURL != "https://example.com/from-file" {
		t.Errorf("ForwardURL = %q, want value from env file", cfg.ForwardURL)
	}
	if cfg.ListenAddr != "127.0.0.1:3002" {
		t.Errorf("ListenAddr = %q, want existing environment to win", cfg.ListenAddr)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("LoadEnvFile() error = %v, want nil for missing file", err)
	}
}

func TestLoad_MissingForwardURL(t *testing.T) {
	unsetEnv(t, "GOOGLE_SHEET_URL")
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	if _, err := Load(); !errors.Is(err, domain.ErrConfigMissing) {
		t.Errorf("Load() error = %v, want %v", err, domain.ErrConfigMissing)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		want         string
	}{
		{
			name:         "env var set",
			key:          "SHEETSIGNUP_TEST_VAR",
			defaultValue: "default",
			envValue:     "custom",
			want:         "custom",
		},
		{
			name:         "env var not set",
			key:          "SHEETSIGNUP_TEST_VAR_MISSING",
			defaultValue: "default",
			envValue:     "",
			want:         "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.envValue)

			got := getEnvOrDefault(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnvOrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}
