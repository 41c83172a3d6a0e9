package client

import (
	"context"
	"fmt"
)

// The filters endpoints predate dimensions and remain for older consumers.

// ListFilters returns all queryable filters, split by plan tier.
// Endpoint: GET /data/v1/filters
//
// Deprecated: use ListDimensions.
func (c *Client) ListFilters(ctx context.Context) (*FiltersList, error) {
	var resp listFiltersResponse
	if err := c.get(ctx, "filters", "/data/v1/filters", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ListFilterValues lists the observed values of one filter.
// Endpoint: GET /data/v1/filters/{filterId}
//
// Deprecated: use ListDimensionValues.
func (c *Client) ListFilterValues(ctx context.Context, filterID string, params *DimensionValuesParams) ([]FilterValue, error) {
	if err := requireField(filterID, "filterId"); err != nil {
		return nil, err
	}
	var resp listFilterValuesResponse
	path := fmt.Sprintf("/data/v1/filters/%s", filterID)
	if err := c.get(ctx, "filters", path, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
