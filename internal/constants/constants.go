// Package constants defines the identifiers for the distribution variants
// supported by the statmodels factory.
package constants

const (
	// BinomialDistribution is the registry identifier of the binomial variant.
	// Constant identifier for the distribution of the number of successes in a
	// fixed number of independent trials.
	BinomialDistribution = "binomial"
	// GeometricDistribution is the registry identifier of the geometric variant.
	// Constant identifier for the distribution of the number of trials before
	// the first success.
	GeometricDistribution = "geometric"
	// DiscreteUniformDistribution is the registry identifier of the discrete uniform variant.
	// Constant identifier for the distribution assigning equal probability to
	// every integer in a closed interval.
	DiscreteUniformDistribution = "discrete-uniform"
)
