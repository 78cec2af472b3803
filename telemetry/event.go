// Package telemetry carries fire-and-forget instrumentation events for the
// Composio SDK. Every public SDK method emits one Event describing the call;
// sinks decide where the events go. Sink failures are never surfaced to the
// caller of the SDK method that produced the event.
package telemetry

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusInvoked Status = "invoked"
	StatusFailed  Status = "failed"
)

// Event describes one SDK method invocation.
type Event struct {
	ID        string         `json:"id,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
	Method    string         `json:"method"`
	Status    Status         `json:"status,omitempty"`
	Error     string         `json:"error,omitempty"`
	Params    map[string]any `json:"params,omitempty"`
}

func (e *Event) Normalize() {
	if e == nil {
		return
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	if e.Status == "" {
		e.Status = StatusInvoked
	}
	if e.Params == nil {
		e.Params = map[string]any{}
	}
}
