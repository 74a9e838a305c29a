// Package config holds runtime settings for the signal console.
package config

import "os"

// Config holds runtime settings for the console client.
//
// Fields:
//   - ServerURL: base URL of the backend REST API.
//   - DBPath: path to the local bolt database holding the session slot.
//   - LogLevel: slog level name (debug, info, warn, error).
type Config struct {
	ServerURL string
	DBPath    string
	LogLevel  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.DBPath = "sigconsole.db"
	c.LogLevel = "info"
}

// Load constructs a Config, applies defaults, then overlays values from
// the environment. Command-line flags are parsed by the caller and take
// precedence over both.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.parseEnv()
	return cfg
}

func (c *Config) parseEnv() {
	if v := os.Getenv("SIGCONSOLE_SERVER_URL"); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv("SIGCONSOLE_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("SIGCONSOLE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}
