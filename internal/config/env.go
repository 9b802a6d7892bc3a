// Package config provides shared configuration utilities.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from the given .env files, or ".env" when none
// are named. Variables already set are not overridden; missing files are skipped.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt64 parses the environment variable named by key as an integer.
// Returns fallback if the variable is unset or empty.
func GetEnvInt64(key string, fallback int64) (int64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

// GetEnvLevel parses the environment variable named by key as a log level
// (debug, info, warn, error, fatal). Returns fallback if it is unset or empty.
func GetEnvLevel(key string, fallback log.Level) (log.Level, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	level, err := log.ParseLevel(value)
	if err != nil {
		return fallback, fmt.Errorf("parse %s: %w", key, err)
	}
	return level, nil
}
