// Package config reads runtime settings from the environment.
//
// A .env file in the working directory is loaded first (if present);
// real environment variables always win over it. CLI flags override
// whatever ends up here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// HistoryOff disables the history database when used as HISTORY_DB.
const HistoryOff = "off"

type Config struct {
	LogLevel     string
	WordsFile    string // empty means the embedded dictionary
	HistoryDB    string // path, or HistoryOff
	Port         string
	ClientOrigin string // CORS origin for the HTTP API
	JWTSecret    string
	TokenTTL     time.Duration
	DailySalt    string
	Seed         int64
	HasSeed      bool
}

// Load reads .env (best effort) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, so tests can supply
// their own environment.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		LogLevel:     get("LOG_LEVEL", "info"),
		WordsFile:    get("WORDS_FILE", ""),
		HistoryDB:    get("HISTORY_DB", "data/solver.db"),
		Port:         get("PORT", "5176"),
		ClientOrigin: get("CLIENT_ORIGIN", "http://localhost:5173"),
		JWTSecret:    get("JWT_SECRET", "dev_secret_change_me"),
		DailySalt:    get("DAILY_SALT", "local_dev_salt"),
	}

	hours, err := strconv.Atoi(get("TOKEN_TTL_HOURS", "24"))
	if err != nil || hours <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL_HOURS: want a positive integer, got %q", getenv("TOKEN_TTL_HOURS"))
	}
	cfg.TokenTTL = time.Duration(hours) * time.Hour

	if v := get("SEED", ""); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("SEED: %w", err)
		}
		cfg.Seed, cfg.HasSeed = seed, true
	}
	return cfg, nil
}

// HistoryEnabled reports whether sessions should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.HistoryDB != "" && !strings.EqualFold(c.HistoryDB, HistoryOff)
}
