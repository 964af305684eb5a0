package config

import (
	"flag"
	"os"

	"github.com/pvolkovs/staffdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   URL of the GraphQL endpoint (default from Config)
//	-s string   path to the local token storage file (default from Config)
//
// The function filters os.Args to only the flags it owns, using
// flagx.FilterArgs, so it does not interfere with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointURL, "a", cfg.ServerEndpointURL, "URL of the GraphQL endpoint")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "path to the local token storage file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
