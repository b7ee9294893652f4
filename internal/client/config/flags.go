package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/smartfridge/internal/flagx"
)

func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-i"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "API server base URL")
	fs.DurationVar(&cfg.OnlineCheckInterval, "i", cfg.OnlineCheckInterval, "online check interval")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("client flags: %w", err)
	}
	return nil
}
