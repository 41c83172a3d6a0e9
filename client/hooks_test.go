package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHooks_RequestBeforeResponse(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":{"basic":["country"],"advanced":[]},"timeframe":[0,0]}`))
	}))
	defer hs.Close()

	var order []string
	var reqEv RequestEvent
	var respEv ResponseEvent

	c := MustNew(
		WithTokens("token-id", "token-secret"),
		WithBaseURL(hs.URL),
		WithRequestHook(func(ev RequestEvent) {
			order = append(order, "request")
			reqEv = ev
		}),
		WithResponseHook(func(ev ResponseEvent) {
			order = append(order, "response")
			respEv = ev
		}),
	)

	if _, err := c.ListDimensions(context.Background()); err != nil {
		t.Fatalf("ListDimensions returned error: %v", err)
	}

	if len(order) != 2 || order[0] != "request" || order[1] != "response" {
		t.Fatalf("unexpected hook order %v", order)
	}
	if reqEv.Method != http.MethodGet {
		t.Fatalf("unexpected request method %q", reqEv.Method)
	}
	if reqEv.BaseURL != hs.URL {
		t.Fatalf("unexpected base URL %q", reqEv.BaseURL)
	}
	if !strings.HasSuffix(reqEv.URL, "/data/v1/dimensions") {
		t.Fatalf("unexpected request URL %q", reqEv.URL)
	}
	if reqEv.Username != "token-id" {
		t.Fatalf("unexpected auth username %q", reqEv.Username)
	}
	if respEv.StatusCode != http.StatusOK {
		t.Fatalf("unexpected response status %d", respEv.StatusCode)
	}
	if respEv.URL != reqEv.URL {
		t.Fatalf("request/response URLs differ: %q vs %q", reqEv.URL, respEv.URL)
	}
	if !strings.Contains(string(respEv.Body), "country") {
		t.Fatalf("response body not carried on event: %q", respEv.Body)
	}
}

func TestHooks_RegistrationOrder(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[],"timeframe":[0,0]}`))
	}))
	defer hs.Close()

	var calls []int
	c := MustNew(
		WithTokens("id", "secret"),
		WithBaseURL(hs.URL),
		WithRequestHook(func(RequestEvent) { calls = append(calls, 1) }),
		WithRequestHook(func(RequestEvent) { calls = append(calls, 2) }),
	)
	c.OnRequest(func(RequestEvent) { calls = append(calls, 3) })

	if _, err := c.ListExports(context.Background()); err != nil {
		t.Fatalf("ListExports returned error: %v", err)
	}
	if len(calls) != 3 || calls[0] != 1 || calls[1] != 2 || calls[2] != 3 {
		t.Fatalf("hooks ran out of registration order: %v", calls)
	}
}

func TestHooks_ResponseFiredOnAPIError(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"unauthorized","messages":["invalid token"]}}`))
	}))
	defer hs.Close()

	var status int
	c := MustNew(
		WithTokens("id", "secret"),
		WithBaseURL(hs.URL),
		WithResponseHook(func(ev ResponseEvent) { status = ev.StatusCode }),
	)

	if _, err := c.ListExports(context.Background()); err == nil {
		t.Fatalf("expected error for 401 response")
	}
	if status != http.StatusUnauthorized {
		t.Fatalf("response hook saw status %d", status)
	}
}
