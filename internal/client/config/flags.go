package config

import (
	"flag"
	"os"

	"github.com/acadex/acadex/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   backend base URL (e.g., "http://192.168.1.10:5000")
//	-u string   bundle URL signal
//	-r string   debugger host signal ("host:port")
//	-m string   platform name ("android", "ios", "web")
//	-v          development mode
//	-f string   SQLite file for the credential store
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-u", "-r", "-m", "-v", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.BaseURL, "b", config.BaseURL, "backend base URL")
	fs.StringVar(&config.BundleURL, "u", config.BundleURL, "bundle URL signal")
	fs.StringVar(&config.DebuggerHost, "r", config.DebuggerHost, "debugger host signal")
	fs.StringVar(&config.Platform, "m", config.Platform, "platform name")
	fs.BoolVar(&config.Dev, "v", config.Dev, "development mode")
	fs.StringVar(&config.DataFile, "f", config.DataFile, "credential store file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
