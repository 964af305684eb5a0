package config

import (
	"encoding/json"
	"os"

	"github.com/pvolkovs/staffdesk/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling.
type jsonConfig struct {
	ServerEndpointURL string `json:"server_endpoint_url"`
	StoragePath       string `json:"storage_path"`
}

// parseJSON overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags; when neither is given,
// no JSON is loaded. Only non-empty fields override the defaults.
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointURL != "" {
		cfg.ServerEndpointURL = jc.ServerEndpointURL
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
}
