package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the subset of Config settable from the environment.
type envConfig struct {
	EnvBaseURL     string        `env:"API_BASE_URL"`
	BaseURL        string        `env:"BASE_URL"`
	BundleURL      string        `env:"BUNDLE_URL"`
	DebuggerHost   string        `env:"DEBUGGER_HOST"`
	Platform       string        `env:"PLATFORM"`
	Dev            *bool         `env:"DEV"`
	DataFile       string        `env:"DATA_FILE"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// parseEnv overlays environment variables onto config. Unset variables leave
// the existing values untouched.
func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EnvBaseURL != "" {
		config.EnvBaseURL = c.EnvBaseURL
	}
	if c.BaseURL != "" {
		config.BaseURL = c.BaseURL
	}
	if c.BundleURL != "" {
		config.BundleURL = c.BundleURL
	}
	if c.DebuggerHost != "" {
		config.DebuggerHost = c.DebuggerHost
	}
	if c.Platform != "" {
		config.Platform = c.Platform
	}
	if c.Dev != nil {
		config.Dev = *c.Dev
	}
	if c.DataFile != "" {
		config.DataFile = c.DataFile
	}
	if c.RequestTimeout != 0 {
		config.RequestTimeout = c.RequestTimeout
	}
}
