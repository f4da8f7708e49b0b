package jwtmiddleware

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Tracer is a generic tracing interface for the middleware. One span is
// recorded per token validation.
type Tracer interface {
	StartSpan(operationName string) Span
}

// Span represents a single traced operation.
type Span interface {
	Finish()
	SetTag(key string, value any)
}

// NoopTracer is the default tracer. It records nothing.
type NoopTracer struct{}

func (t *NoopTracer) StartSpan(operationName string) Span { return &NoopSpan{} }

type NoopSpan struct{}

func (s *NoopSpan) Finish()                      {}
func (s *NoopSpan) SetTag(key string, value any) {}

// NewOpenTelemetryTracer returns a Tracer backed by an OpenTelemetry
// tracer.
func NewOpenTelemetryTracer(tracer oteltrace.Tracer) Tracer {
	return &openTelemetryTracer{tracer: tracer}
}

type openTelemetryTracer struct {
	tracer oteltrace.Tracer
}

func (t *openTelemetryTracer) StartSpan(operationName string) Span {
	_, span := t.tracer.Start(context.Background(), operationName)
	return &openTelemetrySpan{span: span}
}

type openTelemetrySpan struct {
	span oteltrace.Span
}

func (s *openTelemetrySpan) Finish() {
	s.span.End()
}

func (s *openTelemetrySpan) SetTag(key string, value any) {
	s.span.SetAttributes(attribute.String(key, fmt.Sprint(value)))
}
