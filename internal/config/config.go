// Package config loads process configuration from the environment, with an
// optional .env file for development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything cmd needs to wire the store.
type Config struct {
	// DatabaseURI is the Postgres DSN of the remote backend.
	DatabaseURI string
	// LocalDBPath is the device-local SQLite file.
	LocalDBPath string
	// SessionKey signs the persisted session token.
	SessionKey string
	// Timezone is the fixed IANA zone in which "today" is evaluated.
	Timezone *time.Location
}

// Load reads configuration. A missing .env is fine; a missing DATABASE_URI
// or SESSION_KEY is not.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env file is optional in production

	dsn := os.Getenv("DATABASE_URI")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URI is required")
	}
	key := os.Getenv("SESSION_KEY")
	if key == "" {
		return nil, fmt.Errorf("SESSION_KEY is required")
	}

	tz := getEnvOrDefault("TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", tz, err)
	}

	return &Config{
		DatabaseURI: dsn,
		LocalDBPath: getEnvOrDefault("LOCAL_DB", defaultLocalDB()),
		SessionKey:  key,
		Timezone:    loc,
	}, nil
}

func defaultLocalDB() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return filepath.Join(v, "ramadhancare", "local.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "ramadhancare", "local.db")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
