package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/ewrap"
	"github.com/hyp3rd/statmodels"
	"github.com/hyp3rd/statmodels/internal/telemetry/attrs"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for distribution methods.
// The Distribution contract is synchronous and carries no context, so the
// middleware records against the context it was constructed with.
type OTelMetricsMiddleware struct {
	next  statmodels.Distribution
	ctx   context.Context
	meter metric.Meter

	// instruments
	evaluations metric.Int64Counter
	durations   metric.Float64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware(ctx context.Context, next statmodels.Distribution, meter metric.Meter) (statmodels.Distribution, error) {
	evaluations, err := meter.Int64Counter("statmodels.evaluations")
	if err != nil {
		return nil, ewrap.Wrap(err, "create counter")
	}

	durations, err := meter.Float64Histogram("statmodels.duration.ms")
	if err != nil {
		return nil, ewrap.Wrap(err, "create histogram")
	}

	return &OTelMetricsMiddleware{next: next, ctx: ctx, meter: meter, evaluations: evaluations, durations: durations}, nil
}

// Probability implements Distribution.Probability with metrics.
func (mw *OTelMetricsMiddleware) Probability(value int) float64 {
	start := time.Now()
	p := mw.next.Probability(value)
	mw.rec("Probability", start, attribute.Int(attrs.AttrValue, value), attribute.Bool(attrs.AttrInSupport, p > 0))

	return p
}

// Mean implements Distribution.Mean with metrics.
func (mw *OTelMetricsMiddleware) Mean() float64 {
	start := time.Now()
	m := mw.next.Mean()
	mw.rec("Mean", start)

	return m
}

// Variance implements Distribution.Variance with metrics.
func (mw *OTelMetricsMiddleware) Variance() float64 {
	start := time.Now()
	v := mw.next.Variance()
	mw.rec("Variance", start)

	return v
}

// rec records one evaluation and its duration for the given method.
func (mw *OTelMetricsMiddleware) rec(method string, start time.Time, extra ...attribute.KeyValue) {
	attributes := append([]attribute.KeyValue{attribute.String(attrs.AttrMethod, method)}, extra...)
	opt := metric.WithAttributes(attributes...)

	mw.evaluations.Add(mw.ctx, 1, opt)
	mw.durations.Record(mw.ctx, float64(time.Since(start).Microseconds())/1000.0, opt)
}
