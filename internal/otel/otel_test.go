package otel

import (
	"context"
	"errors"
	"testing"

	eventbus "github.com/hanpama/gqlclient/internal/eventbus"
	events "github.com/hanpama/gqlclient/internal/events"
	reqid "github.com/hanpama/gqlclient/internal/reqid"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpansFromEvents(t *testing.T) {
	eventbus.Use(eventbus.New())
	t.Cleanup(func() { eventbus.Use(nil) })

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	unsubscribe := Register(tp.Tracer("test"))
	defer unsubscribe()

	ctx, _ := reqid.NewContext(context.Background())
	eventbus.Publish(ctx, events.OperationStart{OperationName: "user", OperationType: "query"})
	eventbus.Publish(ctx, events.HTTPClientStart{Method: "POST", URL: "http://x/graphql"})
	eventbus.Publish(ctx, events.HTTPClientFinish{Method: "POST", URL: "http://x/graphql", Err: errors.New("reset")})
	eventbus.Publish(ctx, events.OperationFinish{OperationName: "user", OperationType: "query", Err: errors.New("reset")})

	spans := rec.Ended()
	require.Len(t, spans, 2)
	httpSpan, opSpan := spans[0], spans[1]
	require.Equal(t, "http.client", httpSpan.Name())
	require.Equal(t, "graphql.client.operation", opSpan.Name())
	require.Equal(t, opSpan.SpanContext().SpanID(), httpSpan.Parent().SpanID())
	require.Equal(t, codes.Error, opSpan.Status().Code)
}

func TestFinishWithoutStartIsIgnored(t *testing.T) {
	eventbus.Use(eventbus.New())
	t.Cleanup(func() { eventbus.Use(nil) })

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	unsubscribe := Register(tp.Tracer("test"))
	defer unsubscribe()

	eventbus.Publish(context.Background(), events.OperationFinish{OperationName: "user"})
	require.Empty(t, rec.Ended())
}

func TestSetupWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup("", "svc")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
