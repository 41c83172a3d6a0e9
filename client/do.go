package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

// do is the single request path shared by every resource method: it builds
// the URL, attaches basic auth and the diagnostic header, fires hooks, and
// decodes the JSON body into out (when non-nil). Transport errors propagate
// unmodified; non-2xx statuses become an *APIError. The resource label feeds
// the prometheus counters only.
func (c *Client) do(ctx context.Context, resource, method, path string, query url.Values, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewBuffer(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return err
	}
	httpReq.SetBasicAuth(c.creds.TokenID, c.creds.TokenSecret)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.platform != "" {
		httpReq.Header.Set("x-source-platform", c.platform)
	}

	c.fireRequest(RequestEvent{Method: method, URL: u, BaseURL: c.baseURL, Username: c.creds.TokenID})
	requestsTotal.WithLabelValues(resource, method).Inc()

	resp, err := c.http.Do(httpReq)
	if err != nil {
		requestFailuresTotal.WithLabelValues(resource).Inc()
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		requestFailuresTotal.WithLabelValues(resource).Inc()
		return err
	}

	c.fireResponse(ResponseEvent{Method: method, URL: u, StatusCode: resp.StatusCode, Body: raw})

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		requestFailuresTotal.WithLabelValues(resource).Inc()
		return newAPIError(resource, resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, resource, path string, query url.Values, out any) error {
	return c.do(ctx, resource, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, resource, path string, body, out any) error {
	return c.do(ctx, resource, http.MethodPost, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, resource, path string) error {
	return c.do(ctx, resource, http.MethodDelete, path, nil, nil, nil)
}
