package telemetry

import (
	"io"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/sniff/internal/core/ports"
)

// Setup registers a global tracer provider that reports spans to logger and, when trace
// is non-nil, exports them as JSON lines to trace. Callers shut the provider down.
func Setup(logger ports.Logger, trace io.Writer) *sdktrace.TracerProvider {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	}
	if trace != nil {
		opts = append(opts, sdktrace.WithSyncer(NewFileExporter(trace)))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}
