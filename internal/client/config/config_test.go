package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Equal(t, "http://localhost:3001", cfg.ServerBaseURL)
}

func TestParseJson(t *testing.T) {
	tests := []struct {
		name string
		json JsonConfig
		want string
	}{
		{name: "overrides base url", json: JsonConfig{ServerBaseURL: "http://api.example.com"}, want: "http://api.example.com"},
		{name: "empty keeps default", json: JsonConfig{}, want: "http://localhost:3001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.json)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, data, 0o600))

			origArgs := os.Args
			os.Args = []string{"cli", "-c", path}
			defer func() { os.Args = origArgs }()

			cfg := &Config{}
			cfg.LoadDefaults()
			parseJson(cfg)

			assert.Equal(t, tt.want, cfg.ServerBaseURL)
		})
	}
}
