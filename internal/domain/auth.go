package domain

import (
	"encoding/base64"
	"net/http"
)

// Credentials stores authentication information for a Jira instance.
// Supports basic authentication (username + API token) and bearer token
// authentication (personal access token).
type Credentials struct {
	Type     AuthType // BasicAuth or TokenAuth
	Username string   // Used for basic auth
	Token    string   // API token (basic auth) or personal access token (token auth)
}

// Validate checks that the credentials are complete for their auth type.
// Returns an AuthenticationError describing what is missing.
func (c *Credentials) Validate() error {
	if c == nil {
		return &AuthenticationError{Reason: "credentials are required"}
	}

	switch c.Type {
	case BasicAuth:
		if c.Username == "" {
			return &AuthenticationError{Reason: "username is required for basic authentication"}
		}
		if c.Token == "" {
			return &AuthenticationError{Reason: "token is required for basic authentication"}
		}
	case TokenAuth:
		if c.Token == "" {
			return &AuthenticationError{Reason: "token is required for token authentication"}
		}
	default:
		return &AuthenticationError{Reason: "invalid authentication type"}
	}

	return nil
}

// NewAuthenticatedClient returns an HTTP client whose transport adds the
// authentication header for these credentials to every outbound request.
// Returns an AuthenticationError if the credentials are incomplete.
func (c *Credentials) NewAuthenticatedClient() (*http.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Create a custom transport that adds authentication headers
	transport := &authenticatedTransport{
		base:        http.DefaultTransport,
		credentials: c,
	}

	return &http.Client{
		Transport: transport,
	}, nil
}

// authenticatedTransport is an http.RoundTripper that adds authentication headers.
type authenticatedTransport struct {
	base        http.RoundTripper
	credentials *Credentials
}

// RoundTrip implements http.RoundTripper by adding authentication headers to requests.
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	clonedReq := req.Clone(req.Context())

	// Add authentication headers based on credentials type
	switch t.credentials.Type {
	case BasicAuth:
		// Basic authentication: encode username:token in base64
		auth := t.credentials.Username + ":" + t.credentials.Token
		encodedAuth := base64.StdEncoding.EncodeToString([]byte(auth))
		clonedReq.Header.Set("Authorization", "Basic "+encodedAuth)
	case TokenAuth:
		// Token authentication: use Bearer token
		clonedReq.Header.Set("Authorization", "Bearer "+t.credentials.Token)
	}

	// Execute the request with the base transport
	return t.base.RoundTrip(clonedReq)
}
