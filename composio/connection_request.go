package composio

import (
	"context"
	"fmt"
	"time"
)

const pollInterval = time.Second

// ConnectionRequest is the transient result of initiating a connection. It
// is owned by the caller and offers follow-up operations on the pending
// connected account; nothing about it is persisted client-side.
type ConnectionRequest struct {
	ConnectionStatus   string `json:"connectionStatus"`
	ConnectedAccountID string `json:"connectedAccountId"`
	// RedirectURL is where the end user completes auth. The backend omits it
	// for schemes with no browser step; callers must handle nil.
	RedirectURL *string `json:"redirectUrl,omitempty"`

	client *Client
}

// SaveUserAccessDataRequest carries the end-user-supplied auth fields for a
// pending connection.
type SaveUserAccessDataRequest struct {
	FieldInputs map[string]any `json:"fieldInputs"`
	RedirectURL string         `json:"redirectUrl,omitempty"`
	EntityID    string         `json:"entityId,omitempty"`
}

// ConnectionAuthInfo is the auth payload of an established connection.
type ConnectionAuthInfo struct {
	Status string         `json:"status,omitempty"`
	Val    map[string]any `json:"val,omitempty"`
}

// SaveUserAccessData submits the end user's auth fields by re-issuing the
// initiate call with the connected account's integration id.
func (r *ConnectionRequest) SaveUserAccessData(ctx context.Context, req SaveUserAccessDataRequest) (*ConnectionRequest, error) {
	r.client.emit(ctx, "connectionRequest", "saveUserAccessData", map[string]any{
		"connectedAccountId": r.ConnectedAccountID,
	})
	if err := validatePayload("connectionRequest.saveUserAccessData", saveUserAccessDataSchema, req); err != nil {
		return nil, err
	}
	account, err := r.client.ConnectedAccounts.Get(ctx, r.ConnectedAccountID)
	if err != nil {
		return nil, normalizeError("connectionRequest.saveUserAccessData", err)
	}
	entityID := defaultEntityID(req.EntityID)
	return r.client.ConnectedAccounts.initiateConnection(ctx, "connectionRequest.saveUserAccessData", initiateConnectionBody{
		IntegrationID: account.IntegrationID,
		EntityID:      entityID,
		UserUUID:      entityID,
		RedirectURI:   req.RedirectURL,
		Data:          req.FieldInputs,
	})
}

// GetAuthInfo fetches the auth info of the connection.
func (r *ConnectionRequest) GetAuthInfo(ctx context.Context) (*ConnectionAuthInfo, error) {
	r.client.emit(ctx, "connectionRequest", "getAuthInfo", map[string]any{
		"connectedAccountId": r.ConnectedAccountID,
	})
	if err := validateID("connectionRequest.getAuthInfo", "connectedAccountId", r.ConnectedAccountID); err != nil {
		return nil, err
	}
	raw, err := r.client.http.get(ctx, fmt.Sprintf("/v1/connections/%s/info", r.ConnectedAccountID), nil)
	if err != nil {
		return nil, normalizeError("connectionRequest.getAuthInfo", err)
	}
	if len(raw) == 0 {
		return nil, newNotFoundError("connectionRequest.getAuthInfo", "no auth info for connected account %q", r.ConnectedAccountID)
	}
	var info ConnectionAuthInfo
	if err := decodeJSON(raw, &info); err != nil {
		return nil, normalizeError("connectionRequest.getAuthInfo", err)
	}
	return &info, nil
}

// WaitUntilActive polls the connected account once per second until its
// status is ACTIVE or the wall-clock timeout elapses. A non-positive timeout
// defaults to 60 seconds. An account that is already active returns without
// sleeping; an account that vanishes fails immediately. There is no backoff
// and failed polls are not retried beyond the loop itself.
func (r *ConnectionRequest) WaitUntilActive(ctx context.Context, timeout time.Duration) (*ConnectedAccount, error) {
	r.client.emit(ctx, "connectionRequest", "waitUntilActive", map[string]any{
		"connectedAccountId": r.ConnectedAccountID,
		"timeoutSeconds":     timeout.Seconds(),
	})
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		account, err := r.client.ConnectedAccounts.Get(ctx, r.ConnectedAccountID)
		if err != nil {
			return nil, normalizeError("connectionRequest.waitUntilActive", err)
		}
		if account.Status == StatusActive {
			r.ConnectionStatus = account.Status
			return account, nil
		}

		timer := time.NewTimer(pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, normalizeError("connectionRequest.waitUntilActive", ctx.Err())
		case <-timer.C:
		}
	}
	return nil, newTimeoutError("connectionRequest.waitUntilActive",
		"connected account %q did not become active within %s", r.ConnectedAccountID, timeout)
}
