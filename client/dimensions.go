package client

import (
	"context"
	"fmt"
)

// ListDimensions returns all queryable dimensions, split by plan tier.
// Endpoint: GET /data/v1/dimensions
func (c *Client) ListDimensions(ctx context.Context) (*DimensionsList, error) {
	var resp listDimensionsResponse
	if err := c.get(ctx, "dimensions", "/data/v1/dimensions", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ListDimensionValues lists the observed values of one dimension.
// Endpoint: GET /data/v1/dimensions/{dimensionId}
func (c *Client) ListDimensionValues(ctx context.Context, dimensionID string, params *DimensionValuesParams) ([]DimensionValue, error) {
	if err := requireField(dimensionID, "dimensionId"); err != nil {
		return nil, err
	}
	var resp listDimensionValuesResponse
	path := fmt.Sprintf("/data/v1/dimensions/%s", dimensionID)
	if err := c.get(ctx, "dimensions", path, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
