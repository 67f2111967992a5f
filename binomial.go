package statmodels

import (
	"math"

	"github.com/hyp3rd/statmodels/internal/sentinel"
	"github.com/hyp3rd/statmodels/mathx"
)

// Binomial is the distribution of the number of successes in a fixed number
// of independent trials, each succeeding with the same probability.
type Binomial struct {
	numberOfTrials       int
	probabilityOfSuccess float64
}

// NewBinomial creates a binomial distribution with the given number of trials
// and probability of success. It returns sentinel.ErrNegativeTrials or
// sentinel.ErrProbabilityOutOfRange when the parameters are invalid.
func NewBinomial(numberOfTrials int, probabilityOfSuccess float64) (*Binomial, error) {
	binomial := &Binomial{
		numberOfTrials:       numberOfTrials,
		probabilityOfSuccess: probabilityOfSuccess,
	}
	if err := binomial.check(); err != nil {
		return nil, err
	}

	return binomial, nil
}

// check validates the whole parameter pair. The trial count is checked first,
// so when both parameters are invalid only the trial violation is reported.
func (b *Binomial) check() error {
	if b.numberOfTrials < 0 {
		return sentinel.ErrNegativeTrials
	}

	if b.probabilityOfSuccess < 0 || b.probabilityOfSuccess > 1 {
		return sentinel.ErrProbabilityOutOfRange
	}

	return nil
}

// NumberOfTrials returns the configured number of trials.
func (b *Binomial) NumberOfTrials() int {
	return b.numberOfTrials
}

// ProbabilityOfSuccess returns the configured probability of success.
func (b *Binomial) ProbabilityOfSuccess() float64 {
	return b.probabilityOfSuccess
}

// SetNumberOfTrials replaces the number of trials and re-validates the whole
// parameter pair. The field is overwritten before validation runs, so on
// failure the distribution is left holding the rejected value.
func (b *Binomial) SetNumberOfTrials(numberOfTrials int) error {
	b.numberOfTrials = numberOfTrials

	return b.check()
}

// SetProbabilityOfSuccess replaces the probability of success and re-validates
// the whole parameter pair. The field is overwritten before validation runs,
// so on failure the distribution is left holding the rejected value.
func (b *Binomial) SetProbabilityOfSuccess(probabilityOfSuccess float64) error {
	b.probabilityOfSuccess = probabilityOfSuccess

	return b.check()
}

// Probability returns the probability of observing exactly numberOfSuccesses
// successes. Values below 0 or above the number of trials are outside the
// support and yield 0.
func (b *Binomial) Probability(numberOfSuccesses int) float64 {
	if numberOfSuccesses < 0 || numberOfSuccesses > b.numberOfTrials {
		return 0
	}

	combinations, err := mathx.Combination(b.numberOfTrials, numberOfSuccesses)
	if err != nil {
		// Unreachable once the support check above passed.
		return 0
	}

	probabilityOfSuccesses := math.Pow(b.probabilityOfSuccess, float64(numberOfSuccesses))
	probabilityOfFails := math.Pow(1-b.probabilityOfSuccess, float64(b.numberOfTrials-numberOfSuccesses))

	return float64(combinations) * probabilityOfSuccesses * probabilityOfFails
}

// Mean returns n·p.
func (b *Binomial) Mean() float64 {
	return float64(b.numberOfTrials) * b.probabilityOfSuccess
}

// Variance returns n·p·(1−p).
func (b *Binomial) Variance() float64 {
	return float64(b.numberOfTrials) * b.probabilityOfSuccess * (1 - b.probabilityOfSuccess)
}
