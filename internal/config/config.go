// Package config loads runtime settings from the environment and an
// optional .env file, plus difficulty profile overrides from JSON.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/timesdrill/internal/store"
)

// Environment variables read by Load.
const (
	EnvDB         = "TIMESDRILL_DB"
	EnvLocale     = "TIMESDRILL_LOCALE"
	EnvLogFile    = "TIMESDRILL_LOG_FILE"
	EnvLogMode    = "TIMESDRILL_LOG_MODE"
	EnvProfiles   = "TIMESDRILL_PROFILES"
	EnvGenTimeout = "TIMESDRILL_GEN_TIMEOUT"
)

// DefaultGenTimeout bounds interactive question generation.
const DefaultGenTimeout = 2 * time.Second

type Config struct {
	// DBPath is empty when the store should pick its default location.
	DBPath       string
	Locale       string
	LogFile      string
	LogMode      string
	ProfilesPath string
	GenTimeout   time.Duration
}

// Load reads the given env files (".env" when none are named) and then the
// environment. A missing env file is not an error. Variables already set
// in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	timeout, err := parseTimeout(getEnv(EnvGenTimeout, ""))
	if err != nil {
		return nil, err
	}

	logFile := getEnv(EnvLogFile, "")
	if logFile == "" {
		dir, err := store.DataDir()
		if err != nil {
			return nil, err
		}
		logFile = filepath.Join(dir, "timesdrill.log")
	}

	return &Config{
		DBPath:       getEnv(EnvDB, ""),
		Locale:       getEnv(EnvLocale, os.Getenv("LANG")),
		LogFile:      logFile,
		LogMode:      getEnv(EnvLogMode, "prod"),
		ProfilesPath: getEnv(EnvProfiles, ""),
		GenTimeout:   timeout,
	}, nil
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return DefaultGenTimeout, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", EnvGenTimeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", EnvGenTimeout, d)
	}
	return d, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
