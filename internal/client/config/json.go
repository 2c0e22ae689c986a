package config

import (
	"encoding/json"
	"os"

	"github.com/acadex/acadex/internal/flagx"
	"github.com/acadex/acadex/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
// The dev toggle uses a pointer so an explicit "false" can be told apart from
// an absent key.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	BundleURL      string         `json:"bundle_url"`
	DebuggerHost   string         `json:"debugger_host"`
	Platform       string         `json:"platform"`
	Dev            *bool          `json:"dev"`
	DataFile       string         `json:"data_file"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. If no flag is set, nothing is
// loaded. An unreadable or malformed file panics: a config file that was
// explicitly requested must be usable.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
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
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
}
