package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/jsamuelsen/assistant-bot/telemetry"
)

// Command outcomes recorded on spans and metrics.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// CommandMetrics holds per-command tracing and metric instruments.
type CommandMetrics struct {
	tracer          trace.Tracer
	commandDuration metric.Float64Histogram
	commandTotal    metric.Int64Counter
}

// NewCommandMetrics creates instruments from the global providers.
func NewCommandMetrics() (*CommandMetrics, error) {
	return NewCommandMetricsWith(otel.GetMeterProvider(), otel.GetTracerProvider())
}

// NewCommandMetricsWith creates instruments from explicit providers.
func NewCommandMetricsWith(mp metric.MeterProvider, tp trace.TracerProvider) (*CommandMetrics, error) {
	meter := mp.Meter(instrumentationName)

	commandDuration, err := meter.Float64Histogram(
		"assistant.command.duration",
		metric.WithDescription("Command handling duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	commandTotal, err := meter.Int64Counter(
		"assistant.command.total",
		metric.WithDescription("Total number of handled commands"),
	)
	if err != nil {
		return nil, err
	}

	return &CommandMetrics{
		tracer:          tp.Tracer(instrumentationName),
		commandDuration: commandDuration,
		commandTotal:    commandTotal,
	}, nil
}

// Start opens a span for command. The returned func ends the span and
// records the duration and outcome; it must be called exactly once.
// A nil receiver returns ctx unchanged and a no-op finish func.
func (m *CommandMetrics) Start(ctx context.Context, command string) (context.Context, func(outcome string)) {
	if m == nil {
		return ctx, func(string) {}
	}

	start := time.Now()
	ctx, span := m.tracer.Start(ctx, "command "+command,
		trace.WithAttributes(attribute.String("assistant.command", command)),
	)

	return ctx, func(outcome string) {
		attrs := metric.WithAttributes(
			attribute.String("assistant.command", command),
			attribute.String("assistant.outcome", outcome),
		)
		m.commandDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		m.commandTotal.Add(ctx, 1, attrs)

		span.SetAttributes(attribute.String("assistant.outcome", outcome))
		if outcome == OutcomeError {
			span.SetStatus(codes.Error, "command failed")
		}
		span.End()
	}
}

// TraceID returns the trace ID of the span in ctx, or "" when unsampled.
func TraceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.HasTraceID() {
		return ""
	}

	return sc.TraceID().String()
}
