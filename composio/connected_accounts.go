package composio

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ConnectedAccountsService manages the connected-account lifecycle.
type ConnectedAccountsService struct {
	client *Client
}

// List returns connected accounts matching the filters.
func (s *ConnectedAccountsService) List(ctx context.Context, filters ConnectedAccountListFilters) (*ConnectedAccountList, error) {
	s.client.emit(ctx, "connectedAccounts", "list", map[string]any{
		"integrationId": filters.IntegrationID,
		"entityId":      filters.EntityID,
	})
	raw, err := s.client.http.get(ctx, "/v1/connections", filters.query())
	if err != nil {
		return nil, normalizeError("connectedAccounts.list", err)
	}
	var list ConnectedAccountList
	if err := decodeJSON(raw, &list); err != nil {
		return nil, normalizeError("connectedAccounts.list", err)
	}
	if list.Items == nil {
		list.Items = []ConnectedAccount{}
	}
	return &list, nil
}

// Get retrieves a connected account by id.
func (s *ConnectedAccountsService) Get(ctx context.Context, id string) (*ConnectedAccount, error) {
	s.client.emit(ctx, "connectedAccounts", "get", map[string]any{"id": id})
	if err := validateID("connectedAccounts.get", "id", id); err != nil {
		return nil, err
	}
	raw, err := s.client.http.get(ctx, fmt.Sprintf("/v1/connections/%s", id), nil)
	if err != nil {
		return nil, normalizeError("connectedAccounts.get", err)
	}
	if len(raw) == 0 {
		return nil, newNotFoundError("connectedAccounts.get", "connected account %q not found", id)
	}
	var account ConnectedAccount
	if err := decodeJSON(raw, &account); err != nil {
		return nil, normalizeError("connectedAccounts.get", err)
	}
	return &account, nil
}

// Delete removes a connected account.
func (s *ConnectedAccountsService) Delete(ctx context.Context, id string) (*DeleteResponse, error) {
	s.client.emit(ctx, "connectedAccounts", "delete", map[string]any{"id": id})
	if err := validateID("connectedAccounts.delete", "id", id); err != nil {
		return nil, err
	}
	raw, err := s.client.http.del(ctx, fmt.Sprintf("/v1/connections/%s", id))
	if err != nil {
		return nil, normalizeError("connectedAccounts.delete", err)
	}
	var resp DeleteResponse
	if err := decodeJSON(raw, &resp); err != nil {
		return nil, normalizeError("connectedAccounts.delete", err)
	}
	return &resp, nil
}

// Create initiates a connection against an already known integration.
func (s *ConnectedAccountsService) Create(ctx context.Context, req CreateConnectedAccountRequest) (*ConnectionRequest, error) {
	s.client.emit(ctx, "connectedAccounts", "create", map[string]any{
		"integrationId": req.IntegrationID,
		"entityId":      req.EntityID,
	})
	if err := validatePayload("connectedAccounts.create", createConnectedAccountSchema, req); err != nil {
		return nil, err
	}
	return s.initiateConnection(ctx, "connectedAccounts.create", initiateConnectionBody{
		IntegrationID: req.IntegrationID,
		EntityID:      defaultEntityID(req.EntityID),
		Labels:        req.Labels,
		RedirectURI:   req.RedirectURI,
		Data:          req.Data,
	})
}

// Initiate initiates a connection. When IntegrationID is empty it resolves
// the app by name and creates a dedicated integration first; AppName,
// AuthMode, and AuthConfig are then all required and checked before any
// network call.
func (s *ConnectedAccountsService) Initiate(ctx context.Context, req InitiateConnectionRequest) (*ConnectionRequest, error) {
	s.client.emit(ctx, "connectedAccounts", "initiate", map[string]any{
		"integrationId": req.IntegrationID,
		"appName":       req.AppName,
		"authMode":      req.AuthMode,
	})
	if err := validatePayload("connectedAccounts.initiate", initiateConnectionSchema, req); err != nil {
		return nil, err
	}

	integrationID := req.IntegrationID
	if integrationID == "" {
		if req.AppName == "" {
			return nil, newValidationError("connectedAccounts.initiate", "appName is required when integrationId is not provided")
		}
		if req.AuthMode == "" {
			return nil, newValidationError("connectedAccounts.initiate", "authMode is required when integrationId is not provided")
		}
		if req.AuthConfig == nil {
			return nil, newValidationError("connectedAccounts.initiate", "authConfig is required when integrationId is not provided")
		}

		app, err := s.client.Apps.Get(ctx, req.AppName)
		if err != nil {
			return nil, normalizeError("connectedAccounts.initiate", err)
		}
		appID := app.AppID
		if appID == "" {
			appID = app.Key
		}
		integration, err := s.client.Integrations.Create(ctx, CreateIntegrationRequest{
			AppID:           appID,
			Name:            generatedIntegrationName(time.Now()),
			AuthScheme:      req.AuthMode,
			AuthConfig:      req.AuthConfig,
			UseComposioAuth: false,
		})
		if err != nil {
			return nil, normalizeError("connectedAccounts.initiate", err)
		}
		integrationID = integration.ID
	}

	return s.initiateConnection(ctx, "connectedAccounts.initiate", initiateConnectionBody{
		IntegrationID: integrationID,
		EntityID:      defaultEntityID(req.EntityID),
		Labels:        req.Labels,
		RedirectURI:   req.RedirectURI,
		Data:          req.Data,
	})
}

func (s *ConnectedAccountsService) initiateConnection(ctx context.Context, method string, body initiateConnectionBody) (*ConnectionRequest, error) {
	raw, err := s.client.http.post(ctx, "/v1/connections", body)
	if err != nil {
		return nil, normalizeError(method, err)
	}
	var resp initiateConnectionResponse
	if err := decodeJSON(raw, &resp); err != nil {
		return nil, normalizeError(method, err)
	}
	return &ConnectionRequest{
		ConnectionStatus:   resp.ConnectionStatus,
		ConnectedAccountID: resp.ConnectedAccountID,
		RedirectURL:        resp.RedirectURL,
		client:             s.client,
	}, nil
}

func defaultEntityID(entityID string) string {
	if entityID == "" {
		return "default"
	}
	return entityID
}

// generatedIntegrationName yields integration_<UTC timestamp with date and
// time separators stripped>, e.g. integration_20260830T101530123Z.
func generatedIntegrationName(now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer("-", "", ":", "", ".", "").Replace(stamp)
	return "integration_" + stamp
}
