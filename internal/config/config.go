// Package config loads the server configuration from a YAML or JSON
// file. Format is detected by extension or, failing that, by content.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied for fields a config file leaves unset.
const (
	DefaultAddr      = ":8080"
	DefaultDBPath    = ".jungtsi/reports.db"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the serve command's settings.
type Config struct {
	Addr      string `yaml:"addr" json:"addr"`
	DBPath    string `yaml:"db_path" json:"db_path"`
	LogLevel  string `yaml:"log_level" json:"log_level"`
	LogFormat string `yaml:"log_format" json:"log_format"`
}

// Default returns a config with every field at its default.
func Default() Config {
	return Config{
		Addr:      DefaultAddr,
		DBPath:    DefaultDBPath,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// LoadFromPath reads a config file (YAML or JSON) and fills unset
// fields with defaults.
func LoadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses config bytes. ext is the file extension for format hint
// (".yaml"/".yml"/".json"); empty means detect from content.
func Load(data []byte, ext string) (Config, error) {
	cfg := Default()

	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}

	useJSON := ext == ".json"
	if ext == "" {
		useJSON = strings.HasPrefix(strings.TrimSpace(string(data)), "{")
	}

	if useJSON {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	return cfg, nil
}
