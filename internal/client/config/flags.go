package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/blogsapp/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   API base url
//	-s string   path of the local session store
//	-l string   log level
//
// Only these flags are taken from args (see flagx.FilterArgs); a bad value panics.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-a", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base url")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local session store")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}
}
