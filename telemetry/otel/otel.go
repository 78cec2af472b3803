// Package otel bridges telemetry.Sink to OpenTelemetry tracing.
//
// It converts SDK telemetry events into OTel spans so that client calls are
// visible in any OpenTelemetry-compatible backend (Jaeger, Zipkin, Grafana,
// etc.).
package otel

import (
	"context"
	"fmt"

	"github.com/XC0R/composio/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/XC0R/composio"

// Sink implements telemetry.Sink by emitting OpenTelemetry spans.
type Sink struct {
	tracer trace.Tracer
}

// NewSink creates an OTel sink using the given TracerProvider.
// If tp is nil, it uses a noop tracer provider.
func NewSink(tp trace.TracerProvider) *Sink {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	return &Sink{
		tracer: tp.Tracer(instrumentationName),
	}
}

// Emit converts a telemetry.Event into an OTel span.
func (s *Sink) Emit(_ context.Context, event telemetry.Event) error {
	event.Normalize()

	_, span := s.tracer.Start(context.Background(), spanNameFor(event),
		trace.WithTimestamp(event.Timestamp))

	attrs := []attribute.KeyValue{
		attribute.String("composio.event.id", event.ID),
		attribute.String("composio.method", event.Method),
	}
	if event.Source != "" {
		attrs = append(attrs, attribute.String("composio.source", event.Source))
	}
	if event.Status != "" {
		attrs = append(attrs, attribute.String("composio.status", string(event.Status)))
	}
	for k, v := range event.Params {
		attrs = append(attrs, attribute.String("composio.param."+k, truncate(fmt.Sprintf("%v", v), 1024)))
	}
	span.SetAttributes(attrs...)

	if event.Status == telemetry.StatusFailed {
		span.SetStatus(codes.Error, event.Error)
		if event.Error != "" {
			span.RecordError(fmt.Errorf("%s", event.Error))
		}
	} else {
		span.SetStatus(codes.Ok, "")
	}

	span.End(trace.WithTimestamp(event.Timestamp))
	return nil
}

func spanNameFor(event telemetry.Event) string {
	if event.Source != "" && event.Method != "" {
		return "composio." + event.Source + "." + event.Method
	}
	if event.Method != "" {
		return "composio." + event.Method
	}
	return "composio.event"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
