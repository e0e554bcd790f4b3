package httpapi

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("soccer-stats/internal/interfaces/httpapi")

// startSpan opens a handler span under the otelhttp request span. Routes
// filtered out of tracing have no parent and get that no-op span back.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func reportAttr(report string) attribute.KeyValue {
	return attribute.String("soccer.report", report)
}

// annotateReport records the report outcome on the current handler span.
func annotateReport(ctx context.Context, report, outcome string, rows int) {
	trace.SpanFromContext(ctx).SetAttributes(
		reportAttr(report),
		attribute.String("soccer.report.outcome", outcome),
		attribute.Int("soccer.report.rows", rows),
	)
}
