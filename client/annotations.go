package client

import (
	"context"
	"fmt"
)

// Annotation operations - all methods operate directly on Client

// CreateAnnotation records a dashboard annotation. Note is required.
// Endpoint: POST /data/v1/annotations
func (c *Client) CreateAnnotation(ctx context.Context, req CreateAnnotationRequest) (*Annotation, error) {
	if err := requireField(req.Note, "note"); err != nil {
		return nil, err
	}
	var resp getAnnotationResponse
	if err := c.post(ctx, "annotations", "/data/v1/annotations", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ListAnnotations lists annotations, newest first.
// Endpoint: GET /data/v1/annotations
func (c *Client) ListAnnotations(ctx context.Context, params *AnnotationsParams) ([]Annotation, error) {
	var resp listAnnotationsResponse
	if err := c.get(ctx, "annotations", "/data/v1/annotations", params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetAnnotation fetches a single annotation by ID.
// Endpoint: GET /data/v1/annotations/{annotationId}
func (c *Client) GetAnnotation(ctx context.Context, annotationID string) (*Annotation, error) {
	if err := ValidateUUID(annotationID, "annotationId"); err != nil {
		return nil, err
	}
	var resp getAnnotationResponse
	path := fmt.Sprintf("/data/v1/annotations/%s", annotationID)
	if err := c.get(ctx, "annotations", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// DeleteAnnotation removes an annotation. The service returns 204 No Content.
// Endpoint: DELETE /data/v1/annotations/{annotationId}
func (c *Client) DeleteAnnotation(ctx context.Context, annotationID string) error {
	if err := ValidateUUID(annotationID, "annotationId"); err != nil {
		return err
	}
	path := fmt.Sprintf("/data/v1/annotations/%s", annotationID)
	return c.delete(ctx, "annotations", path)
}
