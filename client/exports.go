package client

import "context"

// ListExports returns the URLs of the raw export files available for
// download. Endpoint: GET /data/v1/exports
func (c *Client) ListExports(ctx context.Context) ([]string, error) {
	var resp listExportsResponse
	if err := c.get(ctx, "exports", "/data/v1/exports", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListViewExports returns the daily video-view export bundles.
// Endpoint: GET /data/v1/exports/views
func (c *Client) ListViewExports(ctx context.Context) ([]ViewExport, error) {
	var resp listViewExportsResponse
	if err := c.get(ctx, "exports", "/data/v1/exports/views", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
