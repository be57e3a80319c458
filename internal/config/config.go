// Package config reads the command configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the CLI and the batch runner. Flags
// override these values.
type Config struct {
	DBPath     string // "" disables persistence
	Mode       string
	LimitsPath string // "" uses the built-in limits
	Workers    int    // 0 uses GOMAXPROCS
	LogLevel   string
	Derate     bool
}

// Load reads an optional .env file from the working directory and returns
// the configuration from HAZARD217_* environment variables. Variables
// already set in the environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the environment alone.
func FromEnv() (Config, error) {
	cfg := Config{
		DBPath:     getEnv("HAZARD217_DB_PATH", ""),
		Mode:       getEnv("HAZARD217_MODE", "strict"),
		LimitsPath: getEnv("HAZARD217_LIMITS", ""),
		LogLevel:   getEnv("HAZARD217_LOG_LEVEL", "info"),
	}

	workers := getEnv("HAZARD217_WORKERS", "0")
	n, err := strconv.Atoi(workers)
	if err != nil || n < 0 {
		return Config{}, fmt.Errorf("HAZARD217_WORKERS must be a non-negative integer, got %q", workers)
	}
	cfg.Workers = n

	derate := getEnv("HAZARD217_DERATE", "false")
	cfg.Derate, err = strconv.ParseBool(derate)
	if err != nil {
		return Config{}, fmt.Errorf("HAZARD217_DERATE must be a boolean, got %q", derate)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return fallback
}
