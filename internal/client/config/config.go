package config

import (
	"fmt"
	"net/url"
	"os"
)

// defaultAPIBaseURL is the API root used when nothing else is configured.
// Deployments override it at link time:
//
//	-ldflags "-X github.com/dmitrijs2005/blogsapp/internal/client/config.defaultAPIBaseURL=https://api.example.com"
var defaultAPIBaseURL = "http://localhost:5000"

// Config holds runtime settings for the blog client.
//
//   - APIBaseURL: root of the REST API; endpoint paths (/api/...) are appended to it.
//   - StorePath: SQLite file that keeps the session token between runs.
//   - LogLevel: zap level name for diagnostics written to stderr.
type Config struct {
	APIBaseURL string
	StorePath  string
	LogLevel   string
}

// LoadDefaults populates c with built-in defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = defaultAPIBaseURL
	c.StorePath = "blogsapp.db"
	c.LogLevel = "info"
}

// Validate reports whether the configuration is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("api base url %q: must be an absolute http(s) url", c.APIBaseURL)
	}
	if c.StorePath == "" {
		return fmt.Errorf("store path must not be empty")
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file, then the
// environment, then command-line flags. Later sources win.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg, ".env")
	parseFlags(cfg, os.Args[1:])

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
