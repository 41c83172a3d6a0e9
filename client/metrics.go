package client

import (
	"context"
	"fmt"
)

// Metric operations - all methods operate directly on Client

// MetricBreakdown lists the breakdown of a metric by dimension.
// Endpoint: GET /data/v1/metrics/{metricId}/breakdown
func (c *Client) MetricBreakdown(ctx context.Context, metricID string, params *MetricsParams) ([]MetricBreakdownValue, error) {
	if err := requireField(metricID, "metricId"); err != nil {
		return nil, err
	}
	var resp metricBreakdownResponse
	path := fmt.Sprintf("/data/v1/metrics/%s/breakdown", metricID)
	if err := c.get(ctx, "metrics", path, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// MetricComparison compares all metrics for one dimension value against the
// rest of the environment. params.Value is required.
// Endpoint: GET /data/v1/metrics/comparison
func (c *Client) MetricComparison(ctx context.Context, params *MetricComparisonParams) ([]MetricComparisonValue, error) {
	if params == nil || params.Value == "" {
		return nil, fmt.Errorf("value is required")
	}
	var resp metricComparisonResponse
	if err := c.get(ctx, "metrics", "/data/v1/metrics/comparison", params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// MetricInsights scores each filter's impact on the given metric.
// Endpoint: GET /data/v1/metrics/{metricId}/insights
func (c *Client) MetricInsights(ctx context.Context, metricID string, params *MetricsParams) ([]MetricInsight, error) {
	if err := requireField(metricID, "metricId"); err != nil {
		return nil, err
	}
	var resp metricInsightsResponse
	path := fmt.Sprintf("/data/v1/metrics/%s/insights", metricID)
	if err := c.get(ctx, "metrics", path, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// MetricOverall returns the aggregate value of a metric across the timeframe.
// Endpoint: GET /data/v1/metrics/{metricId}/overall
func (c *Client) MetricOverall(ctx context.Context, metricID string, params *MetricsParams) (*MetricOverallValues, error) {
	if err := requireField(metricID, "metricId"); err != nil {
		return nil, err
	}
	var resp metricOverallResponse
	path := fmt.Sprintf("/data/v1/metrics/%s/overall", metricID)
	if err := c.get(ctx, "metrics", path, params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// MetricTimeseries returns a metric's value over time.
// Endpoint: GET /data/v1/metrics/{metricId}/timeseries
func (c *Client) MetricTimeseries(ctx context.Context, metricID string, params *MetricsParams) ([]MetricTimeseriesDatapoint, error) {
	if err := requireField(metricID, "metricId"); err != nil {
		return nil, err
	}
	var resp metricTimeseriesResponse
	path := fmt.Sprintf("/data/v1/metrics/%s/timeseries", metricID)
	if err := c.get(ctx, "metrics", path, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
