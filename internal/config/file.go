package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used exclusively for file unmarshalling. It relies on
// Duration so intervals can be written either as strings like "15s" or as
// integer nanoseconds. Zero-valued fields leave the runtime Config alone.
type fileConfig struct {
	Backend        string   `json:"backend" yaml:"backend"`
	ServerAddr     string   `json:"server_addr" yaml:"server_addr"`
	DatabasePath   string   `json:"database_path" yaml:"database_path"`
	RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
}

// parseFile overlays cfg with values from the JSON or YAML file at path,
// chosen by extension.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if fc.Backend != "" {
		cfg.Backend = fc.Backend
	}
	if fc.ServerAddr != "" {
		cfg.ServerAddr = fc.ServerAddr
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(fc.RequestTimeout.Duration)
	}
	return nil
}
