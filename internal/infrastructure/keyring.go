package infrastructure

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// DefaultKeyringService is the keychain service name used by the dashboard.
const DefaultKeyringService = "jira-dashboard"

// ErrNoStoredToken is returned by Load when no token has been saved for
// the given instance and user.
var ErrNoStoredToken = errors.New("no stored token")

// TokenStore persists API tokens in the operating system keychain
// (Keychain Access on macOS, Secret Service on Linux, Credential Manager
// on Windows), keyed by user and instance under a fixed service name.
type TokenStore struct {
	service string
}

// NewTokenStore creates a token store under the given keychain service
// name. An empty service name selects DefaultKeyringService.
func NewTokenStore(service string) *TokenStore {
	if service == "" {
		service = DefaultKeyringService
	}
	return &TokenStore{service: service}
}

// tokenKey builds the keychain entry name for one instance and user.
func tokenKey(baseURL, username string) string {
	return username + "@" + baseURL
}

// Save stores a token for the given instance and user, replacing any
// previously stored token.
func (s *TokenStore) Save(baseURL, username, token string) error {
	if err := keyring.Set(s.service, tokenKey(baseURL, username), token); err != nil {
		return fmt.Errorf("failed to store token in keychain: %w", err)
	}
	return nil
}

// Load retrieves the stored token for the given instance and user.
// Returns ErrNoStoredToken if none has been saved.
func (s *TokenStore) Load(baseURL, username string) (string, error) {
	token, err := keyring.Get(s.service, tokenKey(baseURL, username))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoStoredToken
		}
		return "", fmt.Errorf("failed to read token from keychain: %w", err)
	}
	return token, nil
}

// Delete removes the stored token for the given instance and user.
// Deleting a token that was never stored is a no-op.
func (s *TokenStore) Delete(baseURL, username string) error {
	err := keyring.Delete(s.service, tokenKey(baseURL, username))
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete token from keychain: %w", err)
	}
	return nil
}
