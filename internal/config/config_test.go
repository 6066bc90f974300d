package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var allEnv = []string{EnvDB, EnvLocale, EnvLogFile, EnvLogMode, EnvProfiles, EnvGenTimeout, "LANG"}

// clearEnv unsets every variable Load reads; t.Setenv restores them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allEnv {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("XDG_DATA_HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
	if cfg.GenTimeout != DefaultGenTimeout {
		t.Errorf("GenTimeout = %v, want %v", cfg.GenTimeout, DefaultGenTimeout)
	}
	if cfg.LogMode != "prod" {
		t.Errorf("LogMode = %q, want prod", cfg.LogMode)
	}
	want := filepath.Join(os.Getenv("XDG_DATA_HOME"), "timesdrill", "timesdrill.log")
	if cfg.LogFile != want {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, want)
	}
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := strings.Join([]string{
		"TIMESDRILL_DB=/tmp/drill.db",
		"TIMESDRILL_LOCALE=es_ES.UTF-8",
		"TIMESDRILL_LOG_MODE=dev",
		"TIMESDRILL_GEN_TIMEOUT=500ms",
	}, "\n")
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/drill.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Locale != "es_ES.UTF-8" {
		t.Errorf("Locale = %q", cfg.Locale)
	}
	if cfg.LogMode != "dev" {
		t.Errorf("LogMode = %q", cfg.LogMode)
	}
	if cfg.GenTimeout != 500*time.Millisecond {
		t.Errorf("GenTimeout = %v", cfg.GenTimeout)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("TIMESDRILL_LOG_MODE=dev\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLogMode, "prod")

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogMode != "prod" {
		t.Errorf("LogMode = %q, want prod", cfg.LogMode)
	}
}

func TestLoad_LocaleFallsBackToLANG(t *testing.T) {
	clearEnv(t)
	t.Setenv("LANG", "es_MX.UTF-8")

	cfg, err := Load(filepath.Join(t.TempDir(), "none"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Locale != "es_MX.UTF-8" {
		t.Errorf("Locale = %q", cfg.Locale)
	}
}

func TestLoad_BadTimeout(t *testing.T) {
	for _, v := range []string{"soon", "-1s", "0s"} {
		t.Run(v, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvGenTimeout, v)
			if _, err := Load(filepath.Join(t.TempDir(), "none")); err == nil {
				t.Fatalf("expected error for %q", v)
			}
		})
	}
}
