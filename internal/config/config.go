// Package config holds runtime settings for the pasteboard server,
// loaded from the environment with development defaults.
package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - Port: TCP port the HTTP listener binds to.
//   - DBPath: path to the SQLite database file (":memory:" for tests).
//   - SessionSecret: key material for the session cookie cipher. Do not
//     ship the default to production.
//   - SessionMaxAge: lifetime of a session from login.
//   - SessionSecure: mark the session cookie Secure (HTTPS only).
//   - BcryptCost: work factor for password hashing.
type Config struct {
	Port          string
	DBPath        string
	SessionSecret string
	SessionMaxAge time.Duration
	SessionSecure bool
	BcryptCost    int
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Port = "3000"
	c.DBPath = "./pasteboard.db"
	c.SessionSecret = "your-secret-key-change-in-production"
	c.SessionMaxAge = 7 * 24 * time.Hour
	c.SessionSecure = false
	c.BcryptCost = bcrypt.DefaultCost
}

// Load builds a Config from defaults overlaid with environment
// variables. SESSION_MAX_AGE is in seconds.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
	if v := os.Getenv("SESSION_MAX_AGE"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.SessionMaxAge = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("SESSION_SECURE"); v != "" {
		cfg.SessionSecure = v == "true"
	}
	if v := os.Getenv("BCRYPT_ROUNDS"); v != "" {
		if cost, err := strconv.Atoi(v); err == nil && cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			cfg.BcryptCost = cost
		}
	}
	return cfg
}
