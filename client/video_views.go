package client

import (
	"context"
	"fmt"
)

// Video view operations - all methods operate directly on Client

// ListVideoViews returns video views matching the given filters, most recent
// first. Endpoint: GET /data/v1/video-views
func (c *Client) ListVideoViews(ctx context.Context, params *ListVideoViewsParams) ([]VideoViewSummary, error) {
	var resp listVideoViewsResponse
	if err := c.get(ctx, "video_views", "/data/v1/video-views", params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetVideoView fetches a single view by ID.
// Endpoint: GET /data/v1/video-views/{viewId}
func (c *Client) GetVideoView(ctx context.Context, viewID string) (*VideoView, error) {
	if err := requireField(viewID, "viewId"); err != nil {
		return nil, err
	}
	var resp getVideoViewResponse
	path := fmt.Sprintf("/data/v1/video-views/%s", viewID)
	if err := c.get(ctx, "video_views", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
