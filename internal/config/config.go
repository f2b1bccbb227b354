// Package config holds runtime settings for the snapnote client.
// Values are layered: defaults, then an optional JSON or YAML file, then
// command-line overrides applied by the caller. Later sources win.
package config

import (
	"fmt"
	"time"
)

// Backend selects which store implementation the composition root wires in.
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// Config holds runtime settings for the snapnote client.
//
// Fields:
//   - Backend: "local" or "remote".
//   - ServerAddr: base URL of the note service (remote backend only).
//   - DatabasePath: path of the local key-value database file.
//   - RequestTimeout: per-request cap for remote calls.
type Config struct {
	Backend        string
	ServerAddr     string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendLocal
	c.ServerAddr = "http://localhost:8000"
	c.DatabasePath = "snapnote.db"
	c.RequestTimeout = 15 * time.Second
}

// Validate checks the settled configuration.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendLocal, BackendRemote:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendLocal, BackendRemote)
	}
	if c.Backend == BackendRemote && c.ServerAddr == "" {
		return fmt.Errorf("remote backend requires a server address")
	}
	if c.Backend == BackendLocal && c.DatabasePath == "" {
		return fmt.Errorf("local backend requires a database path")
	}
	return nil
}

// Load constructs a Config from defaults overlaid with the file at path,
// if path is non-empty. Flag overrides are the caller's business.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
