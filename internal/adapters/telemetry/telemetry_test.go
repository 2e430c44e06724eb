package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/lintsync/internal/adapters/telemetry"
	"go.trai.ch/lintsync/internal/core/ports"
	"go.trai.ch/lintsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_Spans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracer(provider)

	ctx, parent := tracer.Start(context.Background(), "update",
		ports.WithAttribute("module_key", "proj"))
	_, child := tracer.Start(ctx, "update.fetch")
	child.SetAttribute("issues", 3)
	child.RecordError(errors.New("boom"))
	child.End()
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "update.fetch", spans[0].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("issues", 3))
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)

	assert.Equal(t, "update", spans[1].Name())
	assert.Contains(t, spans[1].Attributes(), attribute.String("module_key", "proj"))
	assert.Equal(t, codes.Unset, spans[1].Status().Code)
}

func TestOTelSpan_RecordNilError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	_, span := tracer.Start(context.Background(), "s")
	span.RecordError(nil)
	span.End()

	require.Len(t, recorder.Ended(), 1)
	assert.Equal(t, codes.Unset, recorder.Ended()[0].Status().Code)
}

func TestLogBridge_LogsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().Debug("span finished", gomock.Any()).Do(func(_ string, args ...any) {
		require.GreaterOrEqual(t, len(args), 6)
		assert.Equal(t, "span", args[0])
		assert.Equal(t, "install", args[1])
		assert.Contains(t, args, "module_key")
		assert.Contains(t, args, "proj")
		assert.Contains(t, args, "error")
	})

	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(log)))
	tracer := telemetry.NewOTelTracer(provider)

	_, span := tracer.Start(context.Background(), "install", ports.WithAttribute("module_key", "proj"))
	span.RecordError(errors.New("rename failed"))
	span.End()
}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()
	got, span := telemetry.NewNoOpTracer().Start(ctx, "noop")
	assert.Equal(t, ctx, got)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
