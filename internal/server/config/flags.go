package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/smartfridge/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., "127.0.0.1:3000")
//	-d string     PostgreSQL DSN
//	-s string     token HMAC secret key
//	-t duration   session validity (e.g., "168h")
//	-cors bool    enable development CORS
//
// args is filtered with flagx.FilterArgs first, so flags owned by other
// components do not cause parse errors.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-t", "-cors"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.SessionValidityDuration, "t", config.SessionValidityDuration, "session validity duration")
	fs.BoolVar(&config.DevCORS, "cors", config.DevCORS, "allow cross-origin requests (development)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("config flags: %w", err)
	}
	return nil
}
