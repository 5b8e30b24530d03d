// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Auth     AuthConfig     `toml:"auth"`

	AdminPassword string `toml:"-"` // Not loaded from file, set by CLI/env
	SessionSecret string `toml:"-"` // Runtime secret (from env, flag, or file)
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// PublicBaseURL is the externally visible origin used to build blob URLs,
	// e.g. "https://www.hscgroup.org". Defaults to http://<host>:<port>.
	PublicBaseURL string `toml:"public_base_url"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	Path        string `toml:"path"`
	StorageRoot string `toml:"storage_root"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// AuthConfig holds settings for the admin session gate.
type AuthConfig struct {
	// AdminDomain is the email domain accepted at the mock login gate.
	AdminDomain          string `toml:"admin_domain"`
	SessionDurationHours int    `toml:"session_duration_hours"`
	Secret               string `toml:"secret"` // Persisted session secret
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
// Used to persist the auto-generated session secret.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file for saving: %w", err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config to file: %w", err)
	}
	return nil
}

// ParseAndValidate fills derived values and rejects inconsistent settings.
func (c *Config) ParseAndValidate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.PublicBaseURL == "" {
		host := c.Server.Host
		if host == "" || host == "0.0.0.0" {
			host = "localhost"
		}
		port := c.Server.Port
		if port == 0 {
			port = 8080
		}
		c.Server.PublicBaseURL = fmt.Sprintf("http://%s:%d", host, port)
	}
	return nil
}
