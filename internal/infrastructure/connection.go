package infrastructure

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"jira-dashboard/internal/domain"
)

// maxBodyExcerpt bounds the response body excerpt carried by a RequestError.
const maxBodyExcerpt = 2048

// Connection is an authenticated connection to one Jira instance: a base
// URL plus a reusable authenticated HTTP session. The session is created
// once at construction and reused for every query issued through the
// connection. Queries are synchronous and blocking; the connection issues
// no concurrent requests itself and is intended to be held by a single
// owner. Failures are never retried.
type Connection struct {
	baseURL    string
	httpClient *http.Client
}

// Connect builds a connection with a session authenticated by basic auth
// (username + API token). Missing or blank credentials fail with an
// AuthenticationError before any network call; credentials rejected by the
// remote service surface on the first real request as a RequestError with
// status 401 or 403.
func Connect(baseURL, username, token string) (*Connection, error) {
	creds := &domain.Credentials{
		Type:     domain.BasicAuth,
		Username: username,
		Token:    token,
	}

	httpClient, err := creds.NewAuthenticatedClient()
	if err != nil {
		return nil, err
	}

	return NewConnection(baseURL, httpClient), nil
}

// NewConnection creates a connection over a caller-supplied session.
// The baseURL should be the root URL of the Jira instance
// (e.g., "https://instance.atlassian.net").
func NewConnection(baseURL string, httpClient *http.Client) *Connection {
	return &Connection{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// BaseURL returns the configured base URL for the Jira instance.
func (c *Connection) BaseURL() string {
	return c.baseURL
}

// Cursor returns the underlying authenticated session with no wrapping.
// This is an escape hatch for callers who need capabilities beyond the
// query methods; it is the same instance the connection uses internally.
func (c *Connection) Cursor() *http.Client {
	return c.httpClient
}

// Close releases idle connections held by the session. The connection
// must not be used after Close.
func (c *Connection) Close() {
	c.httpClient.CloseIdleConnections()
}

// Query issues an HTTP GET to baseURL+endpoint with the given query-string
// parameters and returns the parsed JSON response body. Parameter values
// are not validated locally - the remote API reports bad input via HTTP
// status and a JSON error body, which propagates as a RequestError. The
// response body is returned exactly as decoded, with no reshaping.
func (c *Connection) Query(endpoint string, params map[string]string) (any, error) {
	var body any
	if err := c.get(endpoint, params, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// QueryProjects retrieves all projects visible to the authenticated user,
// returned as the remote API's own project objects, unmodified.
func (c *Connection) QueryProjects() ([]map[string]any, error) {
	var projects []map[string]any
	if err := c.get(domain.ProjectsEndpoint, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// QueryIssue retrieves a single issue by key or numeric id. The id format
// is not validated locally; an unknown id surfaces as a RequestError with
// status 404. An empty id fails with an ArgumentError before any network
// call.
func (c *Connection) QueryIssue(issueID string) (map[string]any, error) {
	if issueID == "" {
		return nil, &domain.ArgumentError{Name: "issue_id", Reason: "must not be empty"}
	}

	var issue map[string]any
	if err := c.get(domain.IssueEndpoint+issueID, nil, &issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// QueryJQL executes a JQL query against the search endpoint and shapes the
// result according to ret:
//
//   - ReturnCount: the integer total number of matches, independent of
//     maxResults
//   - ReturnList: the issue objects, capped at maxResults
//   - ReturnFrame: a Frame with one row per issue, columns from the union
//     of flattened field keys
//
// maxResults <= 0 selects DefaultMaxResults. An empty jql or an
// unrecognized return type fails with an ArgumentError and issues no
// network call. This is a single-page fetch: the remote service's own
// page-size cap bounds the result and no multi-page aggregation happens.
func (c *Connection) QueryJQL(jql string, ret domain.ReturnType, maxResults int) (any, error) {
	// Validate arguments before touching the network
	if jql == "" {
		return nil, &domain.ArgumentError{Name: "jql", Reason: "must not be empty"}
	}
	if !ret.Valid() {
		return nil, &domain.ArgumentError{Name: "return_type", Reason: "must be one of count, list, dataframe: " + ret.String()}
	}
	if maxResults <= 0 {
		maxResults = domain.DefaultMaxResults
	}

	params := map[string]string{
		"jql":        jql,
		"maxResults": strconv.Itoa(maxResults),
		"startAt":    "0",
	}

	var results domain.SearchResults
	if err := c.get(domain.SearchEndpoint, params, &results); err != nil {
		return nil, err
	}

	switch ret {
	case domain.ReturnCount:
		return results.Total, nil
	case domain.ReturnList:
		issues := results.Issues
		if len(issues) > maxResults {
			issues = issues[:maxResults]
		}
		return issues, nil
	default:
		return domain.Flatten(results.Issues), nil
	}
}

// get executes an authenticated GET and decodes the JSON response into v.
// Every failure mode - transport error, non-2xx status, undecodable body -
// is reported as a RequestError and never retried.
func (c *Connection) get(endpoint string, params map[string]string, v any) error {
	fullURL := c.baseURL + endpoint

	// Create the HTTP request
	req, err := http.NewRequest("GET", fullURL, nil)
	if err != nil {
		return &domain.RequestError{URL: fullURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	// Encode query parameters
	if len(params) > 0 {
		query := url.Values{}
		for key, value := range params {
			query.Set(key, value)
		}
		req.URL.RawQuery = query.Encode()
	}

	// Set common headers
	req.Header.Set("Accept", "application/json")

	// Execute the request using the authenticated session
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.RequestError{URL: fullURL, Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer resp.Body.Close()

	// Check for error status codes
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyExcerpt))
		return &domain.RequestError{
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	// Parse the response
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &domain.RequestError{URL: fullURL, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}
