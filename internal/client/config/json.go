package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/blogsapp/internal/flagx"
)

// JsonConfig mirrors the on-disk JSON file. Empty fields leave the
// corresponding Config value untouched.
type JsonConfig struct {
	APIBaseURL string `json:"api_base_url"`
	StorePath  string `json:"store_path"`
	LogLevel   string `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// It panics when the file cannot be read or decoded.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
