package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/statmodels"
	"github.com/hyp3rd/statmodels/internal/telemetry/attrs"
)

// OTelTracingMiddleware wraps statmodels.Distribution methods with OpenTelemetry spans.
// Spans are parented to the context the middleware was constructed with, since
// the Distribution contract is synchronous and carries no context of its own.
type OTelTracingMiddleware struct {
	next   statmodels.Distribution
	ctx    context.Context
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption func(*OTelTracingMiddleware)

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes(attributes ...attribute.KeyValue) OTelTracingOption {
	return func(m *OTelTracingMiddleware) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware(ctx context.Context, next statmodels.Distribution, tracer trace.Tracer, opts ...OTelTracingOption) statmodels.Distribution {
	mw := &OTelTracingMiddleware{next: next, ctx: ctx, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Probability implements Distribution.Probability with tracing.
func (mw *OTelTracingMiddleware) Probability(value int) float64 {
	_, span := mw.startSpan("statmodels.Probability", attribute.Int(attrs.AttrValue, value))
	defer span.End()

	p := mw.next.Probability(value)
	span.SetAttributes(attribute.Bool(attrs.AttrInSupport, p > 0))

	return p
}

// Mean implements Distribution.Mean with tracing.
func (mw *OTelTracingMiddleware) Mean() float64 {
	_, span := mw.startSpan("statmodels.Mean")
	defer span.End()

	return mw.next.Mean()
}

// Variance implements Distribution.Variance with tracing.
func (mw *OTelTracingMiddleware) Variance() float64 {
	_, span := mw.startSpan("statmodels.Variance")
	defer span.End()

	return mw.next.Variance()
}

func (mw *OTelTracingMiddleware) startSpan(name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := mw.tracer.Start(mw.ctx, name)
	span.SetAttributes(mw.commonAttrs...)
	span.SetAttributes(attributes...)

	return ctx, span
}
