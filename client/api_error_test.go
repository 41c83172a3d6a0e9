package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAPIError_EnvelopeDecoded(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"type":"forbidden","messages":["insufficient scope","contact support"]}}`))
	}))
	defer hs.Close()

	c := MustNew(WithTokens("id", "secret"), WithBaseURL(hs.URL))
	_, err := c.ListErrors(context.Background(), nil)
	if err == nil {
		t.Fatalf("expected error for 403 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Fatalf("unexpected status %d", apiErr.StatusCode)
	}
	if apiErr.Type != "forbidden" {
		t.Fatalf("unexpected type %q", apiErr.Type)
	}
	if len(apiErr.Messages) != 2 {
		t.Fatalf("unexpected messages %v", apiErr.Messages)
	}
	if !strings.Contains(apiErr.Error(), "insufficient scope") {
		t.Fatalf("error string missing service message: %q", apiErr.Error())
	}
}

func TestAPIError_NonJSONBody(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream unavailable`))
	}))
	defer hs.Close()

	c := MustNew(WithTokens("id", "secret"), WithBaseURL(hs.URL))
	_, err := c.ListErrors(context.Background(), nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || len(apiErr.Messages) != 0 {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}
