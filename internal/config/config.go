// Package config handles application configuration.
package config

import (
	"os"
)

// MappingsEnvVar holds a JSON array of {host, share, mount_point} objects.
const MappingsEnvVar = "UNCPATH_MAPPINGS"

// Config holds all application configuration
type Config struct {
	// Flags
	Quiet bool
	Debug bool

	// Raw value of UNCPATH_MAPPINGS, empty when unset
	EnvMappings string
}

// Load loads configuration from environment
func Load() (*Config, error) {
	cfg := &Config{
		Quiet:       envBool("UNCPATH_QUIET", false),
		Debug:       envBool("UNCPATH_DEBUG", false),
		EnvMappings: envStr(MappingsEnvVar, ""),
	}
	return cfg, nil
}

func (c *Config) SetQuiet(v bool) { c.Quiet = c.Quiet || v }
func (c *Config) SetDebug(v bool) { c.Debug = c.Debug || v }

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "1" || v == "true" || v == "yes"
	}
	return def
}
