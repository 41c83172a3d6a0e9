package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
)

// Option mutates the Client during New().
type Option func(*Client) error

// WithHTTPClient injects a custom *http.Client. Useful for setting transport
// timeouts, tracing, custom TLS settings, etc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport such that every request/response
// is logged when `enabled` is true.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			transport := c.http.Transport
			if transport == nil {
				transport = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: transport}
		}
		return nil
	}
}

// WithBaseURL points the client at a non-production endpoint. Trailing
// slashes are stripped so resource paths concatenate cleanly.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("empty base URL")
		}
		c.baseURL = strings.TrimRight(u, "/")
		return nil
	}
}

// WithTokens supplies the access token pair explicitly. Explicit tokens win
// over any environment variables set concurrently.
func WithTokens(tokenID, tokenSecret string) Option {
	return func(c *Client) error {
		c.creds = Credentials{TokenID: tokenID, TokenSecret: tokenSecret}
		return nil
	}
}

// WithCredentials supplies the access token pair as a value object.
func WithCredentials(creds Credentials) Option {
	return func(c *Client) error {
		c.creds = creds
		return nil
	}
}

// WithEnviron injects a synthetic environment snapshot consulted during
// credential fallback, in place of the process environment. Tests use it to
// exercise the fallback path without mutating process-wide state.
func WithEnviron(environ map[string]string) Option {
	return func(c *Client) error {
		c.environ = environ
		return nil
	}
}

// WithPlatform records the embedding application's name and version, emitted
// on every request as the x-source-platform diagnostic header. The two fields
// are joined with " | ", so neither may contain a pipe character. When name is
// empty no header is emitted at all; when only version is empty it renders as
// the literal placeholder "UNKNOWN".
func WithPlatform(name, version string) Option {
	return func(c *Client) error {
		if strings.Contains(name, "|") {
			return fmt.Errorf("platform name must not contain a pipe character: %q", name)
		}
		if strings.Contains(version, "|") {
			return fmt.Errorf("platform version must not contain a pipe character: %q", version)
		}
		if name == "" {
			return nil
		}
		if version == "" {
			version = "UNKNOWN"
		}
		c.platform = name + " | " + version
		return nil
	}
}

// WithRequestHook registers a callback fired synchronously before each
// request is dispatched. Hooks run in registration order.
func WithRequestHook(fn func(RequestEvent)) Option {
	return func(c *Client) error {
		if fn == nil {
			return fmt.Errorf("nil request hook")
		}
		c.reqHooks = append(c.reqHooks, fn)
		return nil
	}
}

// WithResponseHook registers a callback fired when each request resolves.
func WithResponseHook(fn func(ResponseEvent)) Option {
	return func(c *Client) error {
		if fn == nil {
			return fmt.Errorf("nil response hook")
		}
		c.respHooks = append(c.respHooks, fn)
		return nil
	}
}
