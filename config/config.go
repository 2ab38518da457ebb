package config

import (
	"fmt"
	"time"

	"github.com/kbukum/wordcab-go/logger"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://wordcab.com/api/v1"

// Config holds SDK-level configuration. The API key is deliberately not part
// of this struct: key resolution lives in the credentials package so tokens
// never end up in config files.
type Config struct {
	// BaseURL is the API endpoint. Override for testing or self-hosted gateways.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Timeout bounds each API request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// Retry enables transport-level retries for transient failures.
	Retry bool `yaml:"retry" mapstructure:"retry"`
	// Logging configures the SDK logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	c.Logging.ApplyDefaults()
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config: base_url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
