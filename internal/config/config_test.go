package config

import (
	"os"
	"path/filepath"
	"testing"
)

var keys = []string{"PORT", "DB_PATH", "LOG_LEVEL", "LOG_FORMAT", "METRICS_ENABLED", "DEFAULT_CATEGORIES"}

// clearEnv blanks every setting for the test and unsets anything a .env file adds.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.DBPath != "./data/ledger.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("Log settings = %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if !cfg.MetricsEnabled || !cfg.DefaultCategories {
		t.Errorf("Expected metrics and default categories enabled: %+v", cfg)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nDB_PATH=/tmp/x.db\nLOG_FORMAT=json\nMETRICS_ENABLED=false\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	// Environment wins over the file.
	t.Setenv("DB_PATH", "/var/lib/ledger.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.DBPath != "/var/lib/ledger.db" {
		t.Errorf("DBPath = %q, want env value", cfg.DBPath)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if cfg.MetricsEnabled {
		t.Error("Expected metrics disabled")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port", "PORT", "eighty"},
		{"metrics flag", "METRICS_ENABLED", "maybe"},
		{"categories flag", "DEFAULT_CATEGORIES", "2x"},
		{"log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
