package config

import (
	"fmt"
	"os"

	"golang-netman/internal/pkg/logging"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultEventBuffer is the link event channel capacity used when the
// configuration does not set one.
const DefaultEventBuffer = 16

// DefaultAPIListen is the API listen address used when the configuration
// does not set one.
const DefaultAPIListen = "127.0.0.1:8090"

// StoreConfig locates the durable configuration store.
type StoreConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// EventsConfig tunes link event delivery.
type EventsConfig struct {
	Buffer int `yaml:"buffer,omitempty" validate:"omitempty,gte=1"`
}

// APIConfig configures the REST API server.
type APIConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen,omitempty" validate:"omitempty,hostname_port"`
}

// Config represents the main configuration structure
type Config struct {
	Logging   logging.LogConfig `yaml:"logging"`
	Interface string            `yaml:"interface" validate:"required"`
	Hostname  string            `yaml:"hostname,omitempty" validate:"omitempty,hostname_rfc1123"`
	Store     StoreConfig       `yaml:"store"`
	Events    EventsConfig      `yaml:"events"`
	API       APIConfig         `yaml:"api"`
}

// Load loads configuration from a YAML file and fills in defaults.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if config.Events.Buffer == 0 {
		config.Events.Buffer = DefaultEventBuffer
	}
	if config.API.Listen == "" {
		config.API.Listen = DefaultAPIListen
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
