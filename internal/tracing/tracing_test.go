package tracing_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"feedbackTracker/internal/tracing"
)

func TestTraceID_FromTraceparent(t *testing.T) {
	shutdown := tracing.Setup()
	defer func() { require.NoError(t, shutdown(context.Background())) }()

	header := http.Header{}
	header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")

	ctx := otel.GetTextMapPropagator().Extract(context.Background(), propagation.HeaderCarrier(header))

	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", tracing.TraceID(ctx))
}

func TestTraceID_Empty(t *testing.T) {
	assert.Equal(t, "", tracing.TraceID(context.Background()))
}
