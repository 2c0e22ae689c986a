// Package config handles configuration for the client component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the Acadex client.
//
// Fields:
//   - EnvBaseURL: explicit backend override from the environment. When set it
//     wins over every other endpoint signal.
//   - BaseURL: backend address from application configuration.
//   - BundleURL: address the development bundle was served from.
//   - DebuggerHost: "host:port" advertised by development tooling.
//   - Platform: runtime platform name ("android", "ios", "web", ...).
//   - Dev: development mode toggle gating the bundle/debugger signals.
//   - DataFile: SQLite path for the local credential store.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	EnvBaseURL     string
	BaseURL        string
	BundleURL      string
	DebuggerHost   string
	Platform       string
	Dev            bool
	DataFile       string
	RequestTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EnvBaseURL = ""
	c.BaseURL = ""
	c.BundleURL = ""
	c.DebuggerHost = ""
	c.Platform = ""
	c.Dev = true
	c.DataFile = "data/client.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line
// flags. Later sources take precedence. EnvBaseURL is only ever read from
// the environment so that the endpoint resolver can treat it as the
// top-priority signal.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
