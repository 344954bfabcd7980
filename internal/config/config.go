package config

import (
	"errors"
	"os"
	"time"
)

// Config holds the process-level settings read from the environment at startup.
type Config struct {
	// Addr is the address the HTTP server listens on.
	Addr string
	// DatabasePath is the path to the SQLite database file.
	DatabasePath string
	// TokenSecret signs and verifies access tokens. It has no default:
	// the server must not come up without it.
	TokenSecret []byte
	// TokenLifetime bounds how long an issued token is accepted.
	TokenLifetime time.Duration
	// ErrorLogPath is the file non-200 responses are appended to.
	ErrorLogPath string
}

// ErrMissingSecret is returned by Load when SECRET_KEY is not set.
var ErrMissingSecret = errors.New("SECRET_KEY environment variable is not set")

// Load reads configuration from the environment. The token secret is
// mandatory; everything else falls back to a sensible default.
func Load() (*Config, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, ErrMissingSecret
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./tasks.db"
	}

	logPath := os.Getenv("ERROR_LOG_PATH")
	if logPath == "" {
		logPath = "./log.txt"
	}

	return &Config{
		Addr:          addr,
		DatabasePath:  dbPath,
		TokenSecret:   []byte(secret),
		TokenLifetime: 30 * time.Minute,
		ErrorLogPath:  logPath,
	}, nil
}
