// Package composio is a Go client for the Composio workflow-automation
// platform. It exposes the app catalog, integrations, and connected-account
// lifecycle as typed services over the platform's HTTP API.
package composio

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/XC0R/composio/telemetry"
	"github.com/joho/godotenv"
)

const defaultBaseURL = "https://backend.composio.dev/api"

// Option configures the Composio client.
type Option func(*Client)

// WithAPIKey sets the API key sent with every request.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.http.setAPIKey(key)
	}
}

// WithBaseURL overrides the backend base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http.httpClient = hc
	}
}

// WithTelemetry sets the sink receiving one event per SDK method call.
// Sink errors and panics never affect the call that produced the event.
func WithTelemetry(sink telemetry.Sink) Option {
	return func(c *Client) {
		if sink == nil {
			sink = telemetry.NoopSink{}
		}
		c.telemetry = sink
	}
}

// Client is the main Composio SDK client.
type Client struct {
	http      *httpClient
	telemetry telemetry.Sink

	Apps              *AppsService
	Integrations      *IntegrationsService
	ConnectedAccounts *ConnectedAccountsService
}

// NewClient creates a new Composio client.
func NewClient(opts ...Option) *Client {
	hc := newHTTPClient(defaultBaseURL, &http.Client{Timeout: 30 * time.Second})
	c := &Client{http: hc, telemetry: telemetry.NoopSink{}}
	for _, opt := range opts {
		opt(c)
	}
	c.Apps = &AppsService{client: c}
	c.Integrations = &IntegrationsService{client: c}
	c.ConnectedAccounts = &ConnectedAccountsService{client: c}
	return c
}

// NewClientFromEnv creates a client configured from COMPOSIO_API_KEY and
// COMPOSIO_BASE_URL. A .env file in the working directory is loaded first if
// present. Explicit options take precedence over the environment.
func NewClientFromEnv(opts ...Option) *Client {
	_ = godotenv.Load()
	envOpts := make([]Option, 0, 2)
	if key := os.Getenv("COMPOSIO_API_KEY"); key != "" {
		envOpts = append(envOpts, WithAPIKey(key))
	}
	if base := os.Getenv("COMPOSIO_BASE_URL"); base != "" {
		envOpts = append(envOpts, WithBaseURL(base))
	}
	return NewClient(append(envOpts, opts...)...)
}

// SetAPIKey updates the API key used for all requests.
func (c *Client) SetAPIKey(key string) {
	c.http.setAPIKey(key)
}

// emit sends one telemetry event for a public method call. Best effort: sink
// errors are discarded and panics recovered so telemetry can never change
// the outcome of the primary call.
func (c *Client) emit(ctx context.Context, source, method string, params map[string]any) {
	if c == nil || c.telemetry == nil {
		return
	}
	defer func() { _ = recover() }()
	_ = c.telemetry.Emit(ctx, telemetry.Event{
		Source: source,
		Method: method,
		Params: params,
	})
}
