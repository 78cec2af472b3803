package composio

// App is a third-party service integrable through the platform.
type App struct {
	Key         string       `json:"key"`
	AppID       string       `json:"appId,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Logo        string       `json:"logo,omitempty"`
	Categories  []string     `json:"categories,omitempty"`
	Enabled     bool         `json:"enabled,omitempty"`
	NoAuth      bool         `json:"no_auth,omitempty"`
	AuthSchemes []AuthScheme `json:"auth_schemes,omitempty"`
}

// AuthScheme is a named authentication mode with its own field requirements.
type AuthScheme struct {
	Name     string      `json:"name,omitempty"`
	Mode     string      `json:"mode,omitempty"`
	AuthMode string      `json:"auth_mode,omitempty"`
	Fields   []AuthField `json:"fields,omitempty"`
}

// mode returns the scheme's mode name, whichever key the backend used.
func (s AuthScheme) mode() string {
	if s.Mode != "" {
		return s.Mode
	}
	return s.AuthMode
}

// AuthField is a single parameter of an auth scheme.
type AuthField struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
	// ExpectedFromCustomer marks fields the end user supplies at connection
	// time rather than the account owner at integration setup.
	ExpectedFromCustomer bool    `json:"expected_from_customer,omitempty"`
	Default              *string `json:"default,omitempty"`
}

// AuthSchemeParams buckets the fields of one auth scheme. Each field name
// appears in exactly one bucket.
type AuthSchemeParams struct {
	Required         []string `json:"required_fields"`
	Optional         []string `json:"optional_fields"`
	ExpectedFromUser []string `json:"expected_from_user"`
}

// RequiredParamsSummary is the derived per-app view of what each auth scheme
// needs, keyed by mode name.
type RequiredParamsSummary struct {
	AvailableAuthSchemes []string                     `json:"availableAuthSchemes"`
	AuthSchemes          map[string]*AuthSchemeParams `json:"authSchemes"`
}

type appListResponse struct {
	Items []App `json:"items"`
}
