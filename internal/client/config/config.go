package config

import "time"

// Config holds runtime settings for the SmartFridge client.
type Config struct {
	ServerURL           string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:3000"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig applies defaults, then the JSON file, then flags from args
// (program name excluded).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
