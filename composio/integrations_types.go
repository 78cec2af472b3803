package composio

// Integration is a reusable auth configuration for an app, shared across
// connected accounts.
type Integration struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	AppID           string         `json:"appId"`
	AppName         string         `json:"appName,omitempty"`
	AuthScheme      string         `json:"authScheme,omitempty"`
	AuthConfig      map[string]any `json:"authConfig,omitempty"`
	Enabled         bool           `json:"enabled,omitempty"`
	UseComposioAuth bool           `json:"useComposioAuth,omitempty"`
	CreatedAt       *string        `json:"createdAt,omitempty"`
	UpdatedAt       *string        `json:"updatedAt,omitempty"`
}

// CreateIntegrationRequest creates an integration record for an app.
type CreateIntegrationRequest struct {
	AppID           string         `json:"appId"`
	Name            string         `json:"name"`
	AuthScheme      string         `json:"authScheme,omitempty"`
	AuthConfig      map[string]any `json:"authConfig,omitempty"`
	UseComposioAuth bool           `json:"useComposioAuth"`
}
