// Package statmodels provides discrete probability distributions sharing a
// common evaluation contract, and a generic descriptive statistics engine over
// numeric datasets. It is designed to be embedded as a computational component
// inside larger applications without pulling in a scientific-computing stack.
package statmodels

// Distribution is the evaluation contract shared by every discrete
// distribution variant. It enables middleware to be added to a distribution.
type Distribution interface {
	// Probability returns the probability mass at the given value.
	// Values outside the distribution's support yield 0, never an error.
	Probability(value int) float64
	// Mean returns the closed-form mean of the configured distribution.
	Mean() float64
	// Variance returns the closed-form variance of the configured distribution.
	Variance() float64
}

// Middleware describes a distribution middleware.
type Middleware func(Distribution) Distribution

// ApplyMiddleware applies middlewares to a distribution.
func ApplyMiddleware(dist Distribution, mw ...Middleware) Distribution {
	// Apply each middleware in the chain
	for _, m := range mw {
		dist = m(dist)
	}
	// Return the decorated distribution
	return dist
}
