package client

import (
	"context"
	"fmt"
)

// Incident operations - all methods operate directly on Client

// ListIncidents lists alerting incidents for the environment.
// Endpoint: GET /data/v1/incidents
func (c *Client) ListIncidents(ctx context.Context, params *IncidentsParams) ([]Incident, error) {
	var resp listIncidentsResponse
	if err := c.get(ctx, "incidents", "/data/v1/incidents", params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetIncident fetches a single incident. Incident IDs are server-generated
// UUIDs and are validated before any network call.
// Endpoint: GET /data/v1/incidents/{incidentId}
func (c *Client) GetIncident(ctx context.Context, incidentID string) (*Incident, error) {
	if err := ValidateUUID(incidentID, "incidentId"); err != nil {
		return nil, err
	}
	var resp getIncidentResponse
	path := fmt.Sprintf("/data/v1/incidents/%s", incidentID)
	if err := c.get(ctx, "incidents", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ListRelatedIncidents lists incidents related to the given one.
// Endpoint: GET /data/v1/incidents/{incidentId}/related
func (c *Client) ListRelatedIncidents(ctx context.Context, incidentID string, params *IncidentsParams) ([]Incident, error) {
	if err := ValidateUUID(incidentID, "incidentId"); err != nil {
		return nil, err
	}
	var resp listIncidentsResponse
	path := fmt.Sprintf("/data/v1/incidents/%s/related", incidentID)
	if err := c.get(ctx, "incidents", path, params.values(), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
