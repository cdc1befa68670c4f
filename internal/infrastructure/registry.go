package infrastructure

import (
	"sync"

	"jira-dashboard/internal/domain"
)

// Registry is a process-wide cache of connections keyed by connection
// parameters. It replaces framework-managed instance caching with explicit
// construction and teardown: the first Get for a parameter set connects,
// later Gets reuse the same connection, Remove and CloseAll tear sessions
// down. The registry is safe for concurrent use; the connections it hands
// out are not independently synchronized.
type Registry struct {
	mu    sync.Mutex
	conns map[string]*Connection
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]*Connection),
	}
}

// connKey builds the cache key for one parameter set.
func connKey(baseURL string, creds *domain.Credentials) string {
	return baseURL + "\x00" + creds.Type.String() + "\x00" + creds.Username + "\x00" + creds.Token
}

// Get returns the cached connection for the given parameters, connecting a
// new one on first use. Credential validation failures are not cached.
func (r *Registry) Get(baseURL string, creds *domain.Credentials) (*Connection, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := connKey(baseURL, creds)
	if conn, ok := r.conns[key]; ok {
		return conn, nil
	}

	httpClient, err := creds.NewAuthenticatedClient()
	if err != nil {
		return nil, err
	}
	conn := NewConnection(baseURL, httpClient)
	r.conns[key] = conn
	return conn, nil
}

// Remove tears down and forgets the connection for the given parameters.
// Removing an unknown parameter set is a no-op.
func (r *Registry) Remove(baseURL string, creds *domain.Credentials) {
	if creds == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := connKey(baseURL, creds)
	if conn, ok := r.conns[key]; ok {
		conn.Close()
		delete(r.conns, key)
	}
}

// Len returns the number of cached connections.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// CloseAll tears down every cached connection and empties the registry.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, conn := range r.conns {
		conn.Close()
		delete(r.conns, key)
	}
}
