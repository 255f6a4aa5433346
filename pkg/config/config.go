package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wharfd/wharf/pkg/runtime"
)

// AgentConfig holds the settings the Wharf agent needs to reach its engine.
type AgentConfig struct {
	Engine  EngineConfig  `yaml:"engine"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// EngineConfig locates the container engine and the optional network every
// created module is attached to.
type EngineConfig struct {
	Endpoint  string `yaml:"endpoint"`
	NetworkID string `yaml:"networkId,omitempty"`
}

// LogConfig selects log level and output format.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
}

// Default returns the configuration used when no file is supplied.
func Default() *AgentConfig {
	return &AgentConfig{
		Engine:  EngineConfig{Endpoint: runtime.DefaultEndpoint},
		Log:     LogConfig{Level: "info"},
		Metrics: MetricsConfig{Address: ":9101"},
	}
}

// Load reads an agent configuration file, filling omitted fields from
// defaults.
func Load(path string) (*AgentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the agent cannot run with.
func (c *AgentConfig) Validate() error {
	if c.Engine.Endpoint == "" {
		return fmt.Errorf("engine endpoint is required")
	}
	return nil
}
