package composio

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnectionRequest(c *Client, accountID string) *ConnectionRequest {
	return &ConnectionRequest{
		ConnectionStatus:   "INITIATED",
		ConnectedAccountID: accountID,
		client:             c,
	}
}

func TestWaitUntilActiveImmediate(t *testing.T) {
	var polls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls.Add(1)
		writeJSON(t, w, ConnectedAccount{ID: "acc-1", Status: StatusActive})
	}))

	start := time.Now()
	account, err := newConnectionRequest(c, "acc-1").WaitUntilActive(context.Background(), 60*time.Second)
	require.NoError(t, err)

	assert.Equal(t, StatusActive, account.Status)
	assert.Equal(t, int32(1), polls.Load())
	assert.Less(t, time.Since(start), 500*time.Millisecond, "no sleep expected when already active")
}

func TestWaitUntilActiveTimesOut(t *testing.T) {
	var polls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls.Add(1)
		writeJSON(t, w, ConnectedAccount{ID: "acc-1", Status: "INITIATED"})
	}))

	_, err := newConnectionRequest(c, "acc-1").WaitUntilActive(context.Background(), time.Second)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.LessOrEqual(t, polls.Load(), int32(2))
}

func TestWaitUntilActiveBecomesActive(t *testing.T) {
	var polls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := "INITIATED"
		if polls.Add(1) >= 2 {
			status = StatusActive
		}
		writeJSON(t, w, ConnectedAccount{ID: "acc-1", Status: status})
	}))

	account, err := newConnectionRequest(c, "acc-1").WaitUntilActive(context.Background(), 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, account.Status)
	assert.Equal(t, int32(2), polls.Load())
}

func TestWaitUntilActiveVanishedAccount(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK) // empty body
	}))
	_, err := newConnectionRequest(c, "acc-gone").WaitUntilActive(context.Background(), 10*time.Second)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestWaitUntilActiveHonorsContext(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, ConnectedAccount{ID: "acc-1", Status: "INITIATED"})
	}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := newConnectionRequest(c, "acc-1").WaitUntilActive(ctx, 30*time.Second)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestSaveUserAccessData(t *testing.T) {
	var gotBody map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/connections/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, ConnectedAccount{ID: r.PathValue("id"), IntegrationID: "int-5", Status: "INITIATED"})
	})
	mux.HandleFunc("POST /v1/connections", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeJSON(t, w, initiateConnectionResponse{ConnectionStatus: "INITIATED", ConnectedAccountID: "acc-1"})
	})
	c := newTestClient(t, mux)

	req, err := newConnectionRequest(c, "acc-1").SaveUserAccessData(context.Background(), SaveUserAccessDataRequest{
		FieldInputs: map[string]any{"api_key": "sekrit"},
		RedirectURL: "https://app.example.test/done",
		EntityID:    "user-2",
	})
	require.NoError(t, err)
	assert.Equal(t, "acc-1", req.ConnectedAccountID)

	assert.Equal(t, "int-5", gotBody["integrationId"])
	assert.Equal(t, map[string]any{"api_key": "sekrit"}, gotBody["data"])
	assert.Equal(t, "https://app.example.test/done", gotBody["redirectUri"])
	// Entity id rides under both keys.
	assert.Equal(t, "user-2", gotBody["entityId"])
	assert.Equal(t, "user-2", gotBody["userUuid"])
}

func TestSaveUserAccessDataAccountGone(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK) // empty body
	}))
	_, err := newConnectionRequest(c, "acc-gone").SaveUserAccessData(context.Background(), SaveUserAccessDataRequest{
		FieldInputs: map[string]any{"token": "x"},
	})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestSaveUserAccessDataValidatesInput(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no network call expected")
	}))
	_, err := newConnectionRequest(c, "acc-1").SaveUserAccessData(context.Background(), SaveUserAccessDataRequest{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "fieldInputs")
}

func TestGetAuthInfo(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/connections/{id}/info", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, ConnectionAuthInfo{Status: StatusActive, Val: map[string]any{"access_token": "tok"}})
	})
	c := newTestClient(t, mux)

	info, err := newConnectionRequest(c, "acc-1").GetAuthInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusActive, info.Status)
	assert.Equal(t, "tok", info.Val["access_token"])
}

func TestGetAuthInfoEmptyBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	_, err := newConnectionRequest(c, "acc-1").GetAuthInfo(context.Background())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
