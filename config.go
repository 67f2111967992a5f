package statmodels

// Config declares a distribution to construct through the factory. Only the
// fields relevant to the configured Type are read; the rest are ignored.
// The struct is serializable so integrators can load it from their own
// configuration surface.
type Config struct {
	// Type selects the distribution variant. It must be one of the registry
	// identifiers: "binomial", "geometric" or "discrete-uniform".
	Type string `json:"type" msgpack:"type"`
	// NumberOfTrials configures the binomial variant.
	NumberOfTrials int `json:"number_of_trials" msgpack:"number_of_trials"`
	// ProbabilityOfSuccess configures the binomial and geometric variants.
	ProbabilityOfSuccess float64 `json:"probability_of_success" msgpack:"probability_of_success"`
	// FirstValue configures the lower bound of the discrete uniform variant.
	FirstValue int `json:"first_value" msgpack:"first_value"`
	// LastValue configures the upper bound of the discrete uniform variant.
	LastValue int `json:"last_value" msgpack:"last_value"`
}
