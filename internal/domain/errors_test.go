package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAuthenticationError_Message(t *testing.T) {
	err := &AuthenticationError{Reason: "token is required for basic authentication"}

	if !strings.Contains(err.Error(), "authentication failed") {
		t.Errorf("Expected message to mention authentication, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "token is required") {
		t.Errorf("Expected message to carry the reason, got %q", err.Error())
	}
}

func TestRequestError_StatusMessage(t *testing.T) {
	err := &RequestError{
		URL:        "https://jira.example.com/rest/api/3/issue/NOPE-1",
		StatusCode: 404,
		Body:       `{"errorMessages":["Issue does not exist"]}`,
	}

	msg := err.Error()
	if !strings.Contains(msg, "status 404") {
		t.Errorf("Expected message to carry the status, got %q", msg)
	}
	if !strings.Contains(msg, "NOPE-1") {
		t.Errorf("Expected message to carry the URL, got %q", msg)
	}
	if !strings.Contains(msg, "Issue does not exist") {
		t.Errorf("Expected message to carry the body excerpt, got %q", msg)
	}
}

func TestRequestError_TransportMessage(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &RequestError{
		URL: "https://jira.example.com/rest/api/3/project",
		Err: cause,
	}

	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Expected message to carry the cause, got %q", err.Error())
	}
}

func TestRequestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: lookup failed")
	err := &RequestError{URL: "https://x", Err: fmt.Errorf("failed to execute request: %w", cause)}

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to reach the wrapped cause")
	}
}

func TestArgumentError_Message(t *testing.T) {
	err := &ArgumentError{Name: "return_type", Reason: "must be one of count, list, dataframe: bogus"}

	if !strings.Contains(err.Error(), "return_type") {
		t.Errorf("Expected message to name the argument, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("Expected message to carry the offending value, got %q", err.Error())
	}
}

func TestErrorTypes_AreDistinct(t *testing.T) {
	var err error = &RequestError{URL: "https://x", StatusCode: 500}

	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		t.Error("RequestError must not match AuthenticationError")
	}
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		t.Error("RequestError must not match ArgumentError")
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Error("Expected RequestError to match itself")
	}
	if reqErr.StatusCode != 500 {
		t.Errorf("Expected status 500, got %d", reqErr.StatusCode)
	}
}
