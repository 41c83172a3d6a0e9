package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the production Mux Data API endpoint. Override it with
// WithBaseURL for tests or proxies.
const DefaultBaseURL = "https://api.mux.com"

// --------------------------------------------------------------------
// debugTransport – optional HTTP round-trip logger
// --------------------------------------------------------------------

type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if os.Getenv("MUX_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		reqDump, err := httputil.DumpRequestOut(req, true)
		if err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		if os.Getenv("MUX_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if os.Getenv("MUX_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		respDump, err := httputil.DumpResponse(resp, true)
		if err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the credentialed facade shared by every Mux Data resource
// method. It resolves credentials once at construction time and is safe for
// concurrent use; nothing is mutated after New returns.
type Client struct {
	baseURL string
	http    *http.Client

	creds    Credentials
	environ  map[string]string // injected snapshot; nil means process env
	platform string            // rendered x-source-platform value, "" when unset

	reqHooks  []func(RequestEvent)
	respHooks []func(ResponseEvent)
}

// New constructs a Client with optional functional arguments.
//
// Credential precedence: WithTokens/WithCredentials, then the environment
// snapshot injected via WithEnviron, then the MUX_TOKEN_ID / MUX_TOKEN_SECRET
// process environment variables. Missing credentials are not an error here;
// the first request will fail with a 401 from the service instead.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if os.Getenv("MUX_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.creds = resolveCredentials(c.creds, c.environ)

	return c, nil
}

// MustNew constructs a Client with panic-on-error semantics (for testing).
func MustNew(opts ...Option) *Client {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewFromClient constructs a Client that inherits the resolved credentials of
// an existing one. Composed API surfaces use it to share a single token pair.
// Later options may still override any setting, credentials included.
func NewFromClient(other *Client, opts ...Option) (*Client, error) {
	return New(append([]Option{WithCredentials(other.creds)}, opts...)...)
}

// Credentials returns the token pair resolved at construction time.
func (c *Client) Credentials() Credentials { return c.creds }

// BaseURL returns the endpoint every request is issued against.
func (c *Client) BaseURL() string { return c.baseURL }
