package client

import "context"

// ListErrors returns playback errors aggregated over the timeframe.
// Endpoint: GET /data/v1/errors
func (c *Client) ListErrors(ctx context.Context, params *ErrorsParams) ([]ErrorItem, error) {
	var resp listErrorsResponse
	if err := c.get(ctx, "errors", "/data/v1/errors", params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
