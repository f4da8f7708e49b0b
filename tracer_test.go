package jwtmiddleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
)

func Test_NoopTracer(t *testing.T) {
	t.Parallel()

	tracer := &NoopTracer{}

	span := tracer.StartSpan("jwtmiddleware.check_jwt")
	assert.NotNil(t, span)

	// Must not panic.
	span.SetTag("auth_status", "success")
	span.Finish()
}

func Test_NewOpenTelemetryTracer(t *testing.T) {
	t.Parallel()

	tracer := NewOpenTelemetryTracer(noop.NewTracerProvider().Tracer("test"))

	span := tracer.StartSpan("jwtmiddleware.check_jwt")
	assert.NotNil(t, span)

	span.SetTag("auth_status", "success")
	span.Finish()
}
