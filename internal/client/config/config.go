// Package config holds runtime settings for the staffdesk client and the
// machinery to load them: defaults first, then an optional JSON file,
// then command-line flags. Later sources take precedence.
package config

// Config holds runtime settings for the staffdesk CLI.
//
// Fields:
//   - ServerEndpointURL: URL of the GraphQL endpoint.
//   - StoragePath: path of the local SQLite file holding the session token.
type Config struct {
	ServerEndpointURL string
	StoragePath       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointURL = "http://127.0.0.1:4000/graphql"
	c.StoragePath = "staffdesk.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
