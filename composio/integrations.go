package composio

import (
	"context"
	"fmt"
)

// IntegrationsService manages integration records.
type IntegrationsService struct {
	client *Client
}

// Create creates an integration for an app.
func (s *IntegrationsService) Create(ctx context.Context, req CreateIntegrationRequest) (*Integration, error) {
	s.client.emit(ctx, "integrations", "create", map[string]any{
		"appId": req.AppID,
		"name":  req.Name,
	})
	if err := validatePayload("integrations.create", createIntegrationSchema, req); err != nil {
		return nil, err
	}
	raw, err := s.client.http.post(ctx, "/v1/integrations", req)
	if err != nil {
		return nil, normalizeError("integrations.create", err)
	}
	var integration Integration
	if err := decodeJSON(raw, &integration); err != nil {
		return nil, normalizeError("integrations.create", err)
	}
	return &integration, nil
}

// Get retrieves an integration by id.
func (s *IntegrationsService) Get(ctx context.Context, id string) (*Integration, error) {
	s.client.emit(ctx, "integrations", "get", map[string]any{"id": id})
	if err := validateID("integrations.get", "id", id); err != nil {
		return nil, err
	}
	raw, err := s.client.http.get(ctx, fmt.Sprintf("/v1/integrations/%s", id), nil)
	if err != nil {
		return nil, normalizeError("integrations.get", err)
	}
	if len(raw) == 0 {
		return nil, newNotFoundError("integrations.get", "integration %q not found", id)
	}
	var integration Integration
	if err := decodeJSON(raw, &integration); err != nil {
		return nil, normalizeError("integrations.get", err)
	}
	return &integration, nil
}
