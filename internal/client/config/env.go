package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvAPIBaseURL = "BLOGSAPP_API_URL"
	EnvStorePath  = "BLOGSAPP_STORE_PATH"
	EnvLogLevel   = "BLOGSAPP_LOG_LEVEL"
)

// parseEnv loads dotenvPath into the process environment (variables already
// set are kept) and overlays cfg with the BLOGSAPP_* variables. A missing
// file is fine; a malformed one panics like a malformed JSON config.
func parseEnv(cfg *Config, dotenvPath string) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvStorePath); ok && v != "" {
		cfg.StorePath = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}
