package composio

// StatusActive is the connected-account status signalling a completed,
// usable connection.
const StatusActive = "ACTIVE"

// ConnectedAccount is an authenticated link between an entity and an app via
// an integration.
type ConnectedAccount struct {
	ID               string         `json:"id"`
	IntegrationID    string         `json:"integrationId"`
	Status           string         `json:"status"`
	EntityID         string         `json:"entityId,omitempty"`
	AppUniqueID      string         `json:"appUniqueId,omitempty"`
	ConnectionParams map[string]any `json:"connectionParams,omitempty"`
	CreatedAt        *string        `json:"createdAt,omitempty"`
	UpdatedAt        *string        `json:"updatedAt,omitempty"`
}

// ConnectedAccountList is one page of connected accounts.
type ConnectedAccountList struct {
	Items      []ConnectedAccount `json:"items"`
	Page       int                `json:"page,omitempty"`
	TotalPages int                `json:"totalPages,omitempty"`
}

// ConnectedAccountListFilters are passed through verbatim as query
// parameters; zero values are omitted.
type ConnectedAccountListFilters struct {
	IntegrationID string
	EntityID      string
	AppNames      string
	Status        string
	Page          string
	PageSize      string
}

func (f ConnectedAccountListFilters) query() map[string]string {
	return map[string]string{
		"integrationId": f.IntegrationID,
		"entityId":      f.EntityID,
		"appNames":      f.AppNames,
		"status":        f.Status,
		"page":          f.Page,
		"pageSize":      f.PageSize,
	}
}

// CreateConnectedAccountRequest initiates a connection against a known
// integration.
type CreateConnectedAccountRequest struct {
	IntegrationID string         `json:"integrationId"`
	EntityID      string         `json:"entityId,omitempty"`
	Labels        []string       `json:"labels,omitempty"`
	RedirectURI   string         `json:"redirectUri,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
}

// InitiateConnectionRequest initiates a connection either against an
// explicit integration id or by resolving AppName/AuthMode/AuthConfig into a
// freshly created integration.
type InitiateConnectionRequest struct {
	IntegrationID string         `json:"integrationId,omitempty"`
	AppName       string         `json:"appName,omitempty"`
	AuthMode      string         `json:"authMode,omitempty"`
	AuthConfig    map[string]any `json:"authConfig,omitempty"`
	EntityID      string         `json:"entityId,omitempty"`
	Labels        []string       `json:"labels,omitempty"`
	RedirectURI   string         `json:"redirectUri,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
}

// DeleteResponse acknowledges a connected-account deletion.
type DeleteResponse struct {
	Status string `json:"status,omitempty"`
	Count  int    `json:"count,omitempty"`
}

// initiateConnectionBody is the POST /v1/connections wire payload.
type initiateConnectionBody struct {
	IntegrationID string         `json:"integrationId"`
	EntityID      string         `json:"entityId"`
	Labels        []string       `json:"labels,omitempty"`
	RedirectURI   string         `json:"redirectUri,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
	// UserUUID duplicates EntityID; the backend reads either key depending
	// on the endpoint version.
	UserUUID string `json:"userUuid,omitempty"`
}

type initiateConnectionResponse struct {
	ConnectionStatus   string  `json:"connectionStatus"`
	ConnectedAccountID string  `json:"connectedAccountId"`
	RedirectURL        *string `json:"redirectUrl,omitempty"`
}
