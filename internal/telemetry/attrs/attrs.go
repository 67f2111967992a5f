// Package attrs provides reusable OpenTelemetry attribute key constants
// to avoid duplication across middlewares.
package attrs

const (
	// AttrMethod represents the telemetry attribute key naming the contract
	// method being evaluated (Probability, Mean or Variance).
	AttrMethod = "method"
	// AttrValue represents the telemetry attribute key for the point at which
	// a probability mass is evaluated.
	AttrValue = "value"
	// AttrInSupport represents the telemetry attribute key reporting whether
	// the evaluated point carried nonzero probability mass.
	AttrInSupport = "in.support"
)
