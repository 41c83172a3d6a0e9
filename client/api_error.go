package client

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is returned for non-2xx responses. It carries the service's error
// envelope when one was present; otherwise only the status code.
type APIError struct {
	Resource   string
	StatusCode int
	Type       string
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Resource, e.StatusCode, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("%s: status %d", e.Resource, e.StatusCode)
}

// errorEnvelope mirrors the service's error body:
// {"error": {"type": "...", "messages": ["..."]}}
type errorEnvelope struct {
	Error struct {
		Type     string   `json:"type"`
		Messages []string `json:"messages"`
	} `json:"error"`
}

func newAPIError(resource string, status int, body []byte) *APIError {
	apiErr := &APIError{Resource: resource, StatusCode: status}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Type = env.Error.Type
		apiErr.Messages = env.Error.Messages
	}
	return apiErr
}
