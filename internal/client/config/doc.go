// Package config loads runtime configuration for the SmartFridge terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c/-config or SMARTFRIDGE_CONFIG.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string     base URL of the API server
//	-i duration   online status check interval
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:3000",
//	  "online_check_interval": "3s",
//	  "request_timeout": "5s"
//	}
package config
