package config

import (
	"encoding/json"
	"os"

	"github.com/shopkeeper/shopkeeper/internal/flagx"
)

// JsonConfig is the intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its non-empty fields are copied into the
// runtime Config struct.
type JsonConfig struct {
	ServerBaseURL string `json:"server_base_url"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics. Fields absent from the file
// keep their current values.
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

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerBaseURL != "" {
		config.ServerBaseURL = c.ServerBaseURL
	}
}
