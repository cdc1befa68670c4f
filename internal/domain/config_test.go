package domain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `
default_instance: prod
instances:
  prod:
    base_url: https://x.atlassian.net
    auth:
      type: basic
      username: a@b.com
      token: t
dashboard:
  max_results: 25
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if config.DefaultInstance != "prod" {
		t.Errorf("Expected default_instance prod, got %s", config.DefaultInstance)
	}
	instance, err := config.Instance("")
	if err != nil {
		t.Fatalf("Expected default instance to resolve, got %v", err)
	}
	if instance.BaseURL != "https://x.atlassian.net" {
		t.Errorf("Expected base_url https://x.atlassian.net, got %s", instance.BaseURL)
	}
	if instance.Auth == nil || instance.Auth.Username != "a@b.com" {
		t.Error("Expected auth username a@b.com")
	}
	if config.Dashboard.MaxResults != 25 {
		t.Errorf("Expected max_results 25, got %d", config.Dashboard.MaxResults)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "instances: [unclosed")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "invalid YAML") {
		t.Errorf("Expected YAML syntax error, got %v", err)
	}
}

func TestLoadConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "no instances",
			content:  `instances: {}`,
			expected: "at least one Jira instance",
		},
		{
			name: "missing base_url",
			content: `
instances:
  prod: {}
`,
			expected: "base_url is required",
		},
		{
			name: "bad scheme",
			content: `
instances:
  prod:
    base_url: ftp://x.atlassian.net
`,
			expected: "http or https",
		},
		{
			name: "unknown default instance",
			content: `
default_instance: staging
instances:
  prod:
    base_url: https://x.atlassian.net
`,
			expected: "default_instance",
		},
		{
			name: "invalid auth type",
			content: `
instances:
  prod:
    base_url: https://x.atlassian.net
    auth:
      type: kerberos
`,
			expected: "auth type",
		},
		{
			name: "basic auth without username",
			content: `
instances:
  prod:
    base_url: https://x.atlassian.net
    auth:
      type: basic
`,
			expected: "username is required",
		},
		{
			name: "negative max_results",
			content: `
instances:
  prod:
    base_url: https://x.atlassian.net
dashboard:
  max_results: -1
`,
			expected: "max_results",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.expected) {
				t.Errorf("Expected error to contain %q, got %v", tt.expected, err)
			}
		})
	}
}

func TestConfig_Instance(t *testing.T) {
	config := &Config{
		Instances: map[string]*InstanceConfig{
			"prod":    {BaseURL: "https://prod.atlassian.net"},
			"staging": {BaseURL: "https://staging.atlassian.net"},
		},
	}

	// Explicit lookup
	instance, err := config.Instance("staging")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if instance.BaseURL != "https://staging.atlassian.net" {
		t.Errorf("Expected staging base URL, got %s", instance.BaseURL)
	}

	// Unknown name
	if _, err := config.Instance("qa"); err == nil {
		t.Fatal("Expected error for unknown instance")
	}

	// No default with several instances
	if _, err := config.Instance(""); err == nil {
		t.Fatal("Expected error when no default is configured")
	}
}

func TestConfig_Instance_SingleInstanceDefault(t *testing.T) {
	config := &Config{
		Instances: map[string]*InstanceConfig{
			"prod": {BaseURL: "https://prod.atlassian.net"},
		},
	}

	// A lone instance is its own default
	instance, err := config.Instance("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if instance.BaseURL != "https://prod.atlassian.net" {
		t.Errorf("Expected prod base URL, got %s", instance.BaseURL)
	}
}

func TestAuthConfig_Credentials(t *testing.T) {
	ac := &AuthConfig{Type: "basic", Username: "a@b.com", Token: "t"}

	creds := ac.Credentials()
	if creds.Type != BasicAuth {
		t.Errorf("Expected BasicAuth, got %v", creds.Type)
	}
	if creds.Username != "a@b.com" || creds.Token != "t" {
		t.Error("Expected username and token to carry over")
	}
}
