package telemetry_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/sniff/internal/adapters/telemetry"
	"go.trai.ch/sniff/internal/core/ports"
	"go.trai.ch/sniff/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupMonitor(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func TestOTelTracer_StartAppliesAttributes(t *testing.T) {
	sr := setupMonitor(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(context.Background(), "Build", ports.WithAttribute("target", "Build"))
	span.SetAttribute("success", true)
	span.SetAttribute("items", 3)
	span.SetAttribute("weight", 1.5)
	span.SetAttribute("count64", int64(7))
	span.SetAttribute("names", []string{"a", "b"})
	span.SetAttribute("other", struct{ X int }{X: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Build", spans[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("target", "Build"),
		attribute.Bool("success", true),
		attribute.Int("items", 3),
		attribute.Float64("weight", 1.5),
		attribute.Int64("count64", 7),
		attribute.StringSlice("names", []string{"a", "b"}),
		attribute.String("other", "{1}"),
	}, spans[0].Attributes())
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr := setupMonitor(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(context.Background(), "Clean")
	span.RecordError(errors.New("engine exploded"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "engine exploded", spans[0].Status().Description)
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	sr := setupMonitor(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	// Without an active span there is nothing to annotate.
	tracer.EmitPlan(context.Background(), []string{"Build"})
	assert.Empty(t, sr.Ended())

	ctx, root := tracer.Start(context.Background(), "run")
	tracer.EmitPlan(ctx, []string{"Build", "Clean"})
	root.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_emitted", events[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "Build", ports.WithAttribute("target", "Build"))
	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	tracer.EmitPlan(ctx, []string{"Build"})
	span.SetAttribute("items", 1)
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestBridge_LogsSpanLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var msgs []string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		msgs = append(msgs, msg)
	}).Times(4)

	tp := trace.NewTracerProvider(trace.WithSpanProcessor(telemetry.NewBridge(log)))
	defer func() { _ = tp.Shutdown(context.Background()) }()
	tracer := tp.Tracer("test")

	_, build := tracer.Start(context.Background(), "Build")
	build.End()

	_, clean := tracer.Start(context.Background(), "Clean")
	clean.SetStatus(codes.Error, "boom")
	clean.End()

	require.Len(t, msgs, 4)
	assert.Equal(t, "Build started", msgs[0])
	assert.True(t, strings.HasPrefix(msgs[1], "Build finished in "), msgs[1])
	assert.Equal(t, "Clean started", msgs[2])
	assert.True(t, strings.HasPrefix(msgs[3], "Clean failed after "), msgs[3])
	assert.True(t, strings.HasSuffix(msgs[3], ": boom"), msgs[3])
}

func TestFileExporter_WritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	tp := trace.NewTracerProvider(trace.WithSyncer(telemetry.NewFileExporter(&buf)))
	tracer := tp.Tracer("test")

	ctx, parent := tracer.Start(context.Background(), "run")
	_, child := tracer.Start(ctx, "Build")
	child.SetAttributes(attribute.String("target", "Build"), attribute.Int("items", 2))
	child.End()
	parent.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second telemetry.SpanRecord
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "Build", first.Name)
	assert.Equal(t, second.SpanID, first.ParentID)
	assert.Equal(t, second.TraceID, first.TraceID)
	assert.Equal(t, "Unset", first.Status)
	assert.Equal(t, "Build", first.Attributes["target"])
	assert.InDelta(t, 2, first.Attributes["items"], 0)

	assert.Equal(t, "run", second.Name)
	assert.Empty(t, second.ParentID)
	assert.Nil(t, second.Attributes)
}

func TestSetup_RegistersGlobalProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	var buf bytes.Buffer
	tp := telemetry.Setup(log, &buf)

	_, span := telemetry.NewOTelTracer("sniff").Start(context.Background(), "Build")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"name":"Build"`)
}
