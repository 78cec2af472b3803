package composio

import (
	"context"
	"fmt"
)

// AppsService provides read access to the platform's app catalog and derives
// per-scheme parameter requirements.
type AppsService struct {
	client *Client
}

// List returns all apps in the catalog. A backend with no apps yields an
// empty slice, not an error.
func (s *AppsService) List(ctx context.Context) ([]App, error) {
	s.client.emit(ctx, "apps", "list", nil)
	raw, err := s.client.http.get(ctx, "/v1/apps", nil)
	if err != nil {
		return nil, normalizeError("apps.list", err)
	}
	var resp appListResponse
	if err := decodeJSON(raw, &resp); err != nil {
		return nil, normalizeError("apps.list", err)
	}
	if resp.Items == nil {
		return []App{}, nil
	}
	return resp.Items, nil
}

// Get retrieves a single app by key.
func (s *AppsService) Get(ctx context.Context, appKey string) (*App, error) {
	s.client.emit(ctx, "apps", "get", map[string]any{"appKey": appKey})
	if err := validateID("apps.get", "appKey", appKey); err != nil {
		return nil, err
	}
	raw, err := s.client.http.get(ctx, fmt.Sprintf("/v1/apps/%s", appKey), nil)
	if err != nil {
		return nil, normalizeError("apps.get", err)
	}
	if len(raw) == 0 {
		return nil, newNotFoundError("apps.get", "app %q not found", appKey)
	}
	var app App
	if err := decodeJSON(raw, &app); err != nil {
		return nil, normalizeError("apps.get", err)
	}
	return &app, nil
}

// GetRequiredParams fetches an app and classifies every field of every auth
// scheme into required, optional, or expected-from-user buckets. An app
// without auth schemes yields an empty summary.
func (s *AppsService) GetRequiredParams(ctx context.Context, appKey string) (*RequiredParamsSummary, error) {
	s.client.emit(ctx, "apps", "getRequiredParams", map[string]any{"appKey": appKey})
	app, err := s.Get(ctx, appKey)
	if err != nil {
		return nil, normalizeError("apps.getRequiredParams", err)
	}

	summary := &RequiredParamsSummary{
		AvailableAuthSchemes: make([]string, 0, len(app.AuthSchemes)),
		AuthSchemes:          make(map[string]*AuthSchemeParams, len(app.AuthSchemes)),
	}
	for _, scheme := range app.AuthSchemes {
		mode := scheme.mode()
		summary.AvailableAuthSchemes = append(summary.AvailableAuthSchemes, mode)
		params := &AuthSchemeParams{
			Required:         []string{},
			Optional:         []string{},
			ExpectedFromUser: []string{},
		}
		for _, field := range scheme.Fields {
			switch {
			case field.ExpectedFromCustomer:
				params.Required = append(params.Required, field.Name)
			case field.Required:
				params.ExpectedFromUser = append(params.ExpectedFromUser, field.Name)
			default:
				params.Optional = append(params.Optional, field.Name)
			}
		}
		summary.AuthSchemes[mode] = params
	}
	return summary, nil
}

// GetRequiredParamsForAuthScheme returns the parameter buckets for one auth
// scheme of an app. An unknown scheme yields (nil, nil); callers must check
// for a nil result.
func (s *AppsService) GetRequiredParamsForAuthScheme(ctx context.Context, appKey, authScheme string) (*AuthSchemeParams, error) {
	s.client.emit(ctx, "apps", "getRequiredParamsForAuthScheme", map[string]any{
		"appKey":     appKey,
		"authScheme": authScheme,
	})
	summary, err := s.GetRequiredParams(ctx, appKey)
	if err != nil {
		return nil, normalizeError("apps.getRequiredParamsForAuthScheme", err)
	}
	return summary.AuthSchemes[authScheme], nil
}
