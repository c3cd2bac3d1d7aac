// Package config loads nevent-mcp configuration from a TOML file with
// defaults and environment overrides.
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/iamsamuelfraga/mcp-nevent/internal/common"
)

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// APIConfig holds the Nevent API connection settings. The key is required;
// the tenant is optional and forwarded as a header when set.
type APIConfig struct {
	URL      string `toml:"url"`
	Key      string `toml:"key"`
	TenantID string `toml:"tenant_id"`
}

// Config holds all nevent-mcp configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	API     APIConfig            `toml:"api"`
	Logging common.LoggingConfig `toml:"logging"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "Nevent-MCP",
			Port: "4280",
		},
		API: APIConfig{
			URL: "https://api.nevent.io",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/nevent-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// Load loads configuration from a TOML file (missing file is not an error)
// and applies environment overrides. The result is validated: a missing API
// key is a hard error, callers are expected to treat it as fatal.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			// File not found — use defaults
		} else {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv("NEVENT_API_URL"); url != "" {
		cfg.API.URL = url
	}
	if key := os.Getenv("NEVENT_API_KEY"); key != "" {
		cfg.API.Key = key
	}
	if tenant := os.Getenv("NEVENT_TENANT_ID"); tenant != "" {
		cfg.API.TenantID = tenant
	}
	if port := os.Getenv("NEVENT_MCP_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if level := os.Getenv("NEVENT_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return fmt.Errorf("NEVENT_API_KEY is required (set it in the environment or under [api] in the config file)")
	}
	if c.API.URL == "" {
		return fmt.Errorf("api url must not be empty")
	}
	return nil
}
