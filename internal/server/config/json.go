package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/smartfridge/internal/flagx"
	"github.com/dmitrijs2005/smartfridge/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations use
// timex.Duration so both "60s" and integer nanoseconds are accepted.
// Pointer fields distinguish "absent" from a zero value.
type JsonConfig struct {
	EndpointAddrHTTP        string          `json:"endpoint_addr_http"`
	DatabaseDSN             string          `json:"database_dsn"`
	SecretKey               string          `json:"secret_key"`
	SessionValidityDuration *timex.Duration `json:"session_validity_duration"`
	ExpiryTolerance         *timex.Duration `json:"expiry_tolerance"`
	LogoutBackdate          *timex.Duration `json:"logout_backdate"`
	ShutdownTimeout         *timex.Duration `json:"shutdown_timeout"`
	DevCORS                 *bool           `json:"dev_cors"`
}

// parseJson overlays values from the JSON file named by -c/-config (or the
// SMARTFRIDGE_CONFIG environment variable). Fields missing from the file keep
// their current value. No file configured means nothing to do.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SessionValidityDuration != nil {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	if c.ExpiryTolerance != nil {
		config.ExpiryTolerance = c.ExpiryTolerance.Duration
	}
	if c.LogoutBackdate != nil {
		config.LogoutBackdate = c.LogoutBackdate.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.DevCORS != nil {
		config.DevCORS = *c.DevCORS
	}
	return nil
}
