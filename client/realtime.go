package client

import (
	"context"
	"fmt"
)

// Real-time operations - all methods operate directly on Client

// ListRealTimeDimensions returns the dimensions usable in real-time queries.
// Endpoint: GET /data/v1/realtime/dimensions
func (c *Client) ListRealTimeDimensions(ctx context.Context) ([]string, error) {
	var resp listRealTimeDimensionsResponse
	if err := c.get(ctx, "realtime", "/data/v1/realtime/dimensions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListRealTimeMetrics returns the metrics usable in real-time queries.
// Endpoint: GET /data/v1/realtime/metrics
func (c *Client) ListRealTimeMetrics(ctx context.Context) ([]string, error) {
	var resp listRealTimeMetricsResponse
	if err := c.get(ctx, "realtime", "/data/v1/realtime/metrics", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// RealTimeBreakdown returns the current value of a real-time metric broken
// down by a dimension.
// Endpoint: GET /data/v1/realtime/metrics/{metricId}/breakdown
func (c *Client) RealTimeBreakdown(ctx context.Context, metricID string, params *RealTimeBreakdownParams) ([]RealTimeBreakdownValue, error) {
	if err := requireField(metricID, "metricId"); err != nil {
		return nil, err
	}
	var resp realTimeBreakdownResponse
	path := fmt.Sprintf("/data/v1/realtime/metrics/%s/breakdown", metricID)
	if err := c.get(ctx, "realtime", path, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// RealTimeTimeseries returns the recent history of a real-time metric.
// Endpoint: GET /data/v1/realtime/metrics/{metricId}/timeseries
func (c *Client) RealTimeTimeseries(ctx context.Context, metricID string, params *RealTimeTimeseriesParams) ([]RealTimeTimeseriesDatapoint, error) {
	if err := requireField(metricID, "metricId"); err != nil {
		return nil, err
	}
	var resp realTimeTimeseriesResponse
	path := fmt.Sprintf("/data/v1/realtime/metrics/%s/timeseries", metricID)
	if err := c.get(ctx, "realtime", path, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// RealTimeHistogramTimeseries returns bucketed history for histogram-capable
// real-time metrics (currently video-startup-time).
// Endpoint: GET /data/v1/realtime/metrics/{metricId}/histogram-timeseries
func (c *Client) RealTimeHistogramTimeseries(ctx context.Context, metricID string, params *RealTimeTimeseriesParams) ([]RealTimeHistogramDatapoint, error) {
	if err := requireField(metricID, "metricId"); err != nil {
		return nil, err
	}
	var resp realTimeHistogramResponse
	path := fmt.Sprintf("/data/v1/realtime/metrics/%s/histogram-timeseries", metricID)
	if err := c.get(ctx, "realtime", path, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
