package domain

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the dashboard configuration.
// This is the root configuration structure loaded from YAML files.
type Config struct {
	DefaultInstance string                     `yaml:"default_instance,omitempty"`
	Instances       map[string]*InstanceConfig `yaml:"instances"`
	Dashboard       DashboardConfig            `yaml:"dashboard,omitempty"`
}

// InstanceConfig defines configuration for a single Jira instance.
type InstanceConfig struct {
	BaseURL string      `yaml:"base_url"`
	Auth    *AuthConfig `yaml:"auth,omitempty"` // Optional - token may come from the keychain
}

// AuthConfig defines authentication settings.
// Supports both basic authentication and token-based authentication.
type AuthConfig struct {
	Type     string `yaml:"type"` // "basic" or "token"
	Username string `yaml:"username,omitempty"`
	Token    string `yaml:"token,omitempty"`
}

// DashboardConfig defines display defaults for the dashboard commands.
type DashboardConfig struct {
	MaxResults int `yaml:"max_results,omitempty"` // JQL page size, 0 means DefaultMaxResults
}

// AuthType defines supported authentication methods.
type AuthType int

const (
	// BasicAuth uses username and API token authentication
	BasicAuth AuthType = iota
	// TokenAuth uses personal access token authentication
	TokenAuth
)

// String returns the string representation of AuthType.
func (a AuthType) String() string {
	switch a {
	case BasicAuth:
		return "basic"
	case TokenAuth:
		return "token"
	default:
		return "unknown"
	}
}

// ParseAuthType converts a string to AuthType.
func ParseAuthType(s string) AuthType {
	switch s {
	case "basic":
		return BasicAuth
	case "token":
		return TokenAuth
	default:
		return BasicAuth
	}
}

// Credentials converts an AuthConfig to Credentials.
func (ac *AuthConfig) Credentials() *Credentials {
	return &Credentials{
		Type:     ParseAuthType(ac.Type),
		Username: ac.Username,
		Token:    ac.Token,
	}
}

// LoadConfig reads and validates configuration from a YAML file.
// Returns an error if the file is missing, has invalid syntax, or fails validation.
func LoadConfig(path string) (*Config, error) {
	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid YAML syntax in configuration file: %w", err)
	}

	// Validate the configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// Validate checks the configuration for completeness and correctness.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errors []string

	// Check that at least one instance is configured
	if len(c.Instances) == 0 {
		errors = append(errors, "at least one Jira instance must be configured")
	}

	// Validate each instance
	for name, instance := range c.Instances {
		if instance == nil {
			errors = append(errors, fmt.Sprintf("instance %q is empty", name))
			continue
		}
		if err := instance.Validate(name); err != nil {
			errors = append(errors, err.Error())
		}
	}

	// The default instance, if named, must exist
	if c.DefaultInstance != "" {
		if _, ok := c.Instances[c.DefaultInstance]; !ok {
			errors = append(errors, fmt.Sprintf("default_instance %q is not a configured instance", c.DefaultInstance))
		}
	}

	// Dashboard defaults
	if c.Dashboard.MaxResults < 0 {
		errors = append(errors, fmt.Sprintf("dashboard max_results %d is invalid: must not be negative", c.Dashboard.MaxResults))
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// Instance resolves an instance by name, falling back to the default
// instance when name is empty. Returns an error naming the available
// instances when the lookup fails.
func (c *Config) Instance(name string) (*InstanceConfig, error) {
	if name == "" {
		name = c.DefaultInstance
	}
	if name == "" {
		if len(c.Instances) == 1 {
			for _, instance := range c.Instances {
				return instance, nil
			}
		}
		return nil, fmt.Errorf("no instance selected and no default_instance configured")
	}

	instance, ok := c.Instances[name]
	if !ok {
		names := make([]string, 0, len(c.Instances))
		for n := range c.Instances {
			names = append(names, n)
		}
		return nil, fmt.Errorf("unknown instance %q: configured instances are %s", name, strings.Join(names, ", "))
	}
	return instance, nil
}

// Validate validates a single instance configuration.
func (ic *InstanceConfig) Validate(name string) error {
	var errors []string

	// Check base URL is specified
	if ic.BaseURL == "" {
		errors = append(errors, fmt.Sprintf("%s base_url is required", name))
	} else {
		// Validate URL format
		parsedURL, err := url.Parse(ic.BaseURL)
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s base_url is invalid: %v", name, err))
		} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			errors = append(errors, fmt.Sprintf("%s base_url must use http or https scheme", name))
		} else if parsedURL.Host == "" {
			errors = append(errors, fmt.Sprintf("%s base_url must include a host", name))
		}
	}

	// Validate authentication configuration (only if provided)
	if ic.Auth != nil {
		if err := ic.Auth.Validate(name); err != nil {
			errors = append(errors, err.Error())
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}

// Validate validates authentication configuration.
func (ac *AuthConfig) Validate(name string) error {
	var errors []string

	// Check auth type is specified
	if ac.Type == "" {
		errors = append(errors, fmt.Sprintf("%s auth type is required", name))
	} else if ac.Type != "basic" && ac.Type != "token" {
		errors = append(errors, fmt.Sprintf("%s auth type '%s' is invalid: must be 'basic' or 'token'", name, ac.Type))
	}

	// Validate credentials based on auth type; the token itself may be
	// omitted here and supplied by flag or keychain at connect time.
	if ac.Type == "basic" && ac.Username == "" {
		errors = append(errors, fmt.Sprintf("%s username is required for basic auth", name))
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
