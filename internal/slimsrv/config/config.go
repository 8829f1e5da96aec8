// Package config loads and validates the slim server configuration. The
// configuration is read from a TOML file, with selected values overridable
// through the environment so deployments can flip the error-detail switch
// without editing the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ConfigFormatVersion is the current version of the configuration file format
const ConfigFormatVersion = "0.1.0"

// ConfigParam holds all configuration parameters for the slim server
type ConfigParam struct {
	// Configuration version
	FormatVersion string `toml:"format_version"` // Version of this configuration file format

	// Server configuration
	ServerHostName string `toml:"server_hostname"` // Hostname for the server
	ServerPort     string `toml:"server_port"`     // Port for the server
	HandleCORS     bool   `toml:"handle_cors"`     // Whether to handle CORS
	RequestTimeout string `toml:"request_timeout"` // Per-request timeout, e.g. "30s"

	// Error handling configuration
	DisplayErrorDetails bool `toml:"display_error_details"` // Whether error responses include chain detail
}

var cfg *ConfigParam

// Config returns the current configuration
func Config() *ConfigParam {
	return cfg
}

// GetRequestTimeout returns the request timeout as time.Duration
func (c *ConfigParam) GetRequestTimeout() (time.Duration, error) {
	if c.RequestTimeout == "" {
		return 30 * time.Second, nil
	}
	return time.ParseDuration(c.RequestTimeout)
}

// GetRequestTimeoutOrDefault returns the request timeout as time.Duration
// or panics if the value is invalid
func (c *ConfigParam) GetRequestTimeoutOrDefault() time.Duration {
	duration, err := c.GetRequestTimeout()
	if err != nil {
		panic(fmt.Sprintf("invalid request timeout: %v", err))
	}
	return duration
}

// LoadConfig loads configuration from a file. A .env file in the working
// directory, when present, is loaded first so environment overrides apply.
func LoadConfig(filename string) error {
	if filename == "" {
		return fmt.Errorf("config filename is required")
	}

	_ = godotenv.Load() // no error if .env doesn't exist

	// Read and parse the config file
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	cfg = &ConfigParam{}
	if _, err := toml.Decode(string(content), cfg); err != nil {
		return fmt.Errorf("error parsing config file: %v", err)
	}

	applyEnvOverrides(cfg)

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}

	return nil
}

// applyEnvOverrides lets the environment override selected file values.
func applyEnvOverrides(c *ConfigParam) {
	if v := os.Getenv("SLIM_DISPLAY_ERROR_DETAILS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.DisplayErrorDetails = b
		}
	}
	if v := os.Getenv("SLIM_SERVER_PORT"); v != "" {
		c.ServerPort = v
	}
}

// ValidateConfig checks the loaded configuration for usable values.
func ValidateConfig(c *ConfigParam) error {
	if c.ServerPort == "" {
		return fmt.Errorf("server port not defined")
	}
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("invalid server port: %s", c.ServerPort)
	}
	if _, err := c.GetRequestTimeout(); err != nil {
		return fmt.Errorf("invalid request timeout: %v", err)
	}
	return nil
}

// TestInit installs a default configuration for tests.
func TestInit(t *testing.T) {
	t.Helper()
	cfg = &ConfigParam{
		FormatVersion:       ConfigFormatVersion,
		ServerHostName:      "localhost",
		ServerPort:          "8190",
		RequestTimeout:      "30s",
		DisplayErrorDetails: false,
	}
}
