package statmodels

import (
	"math"

	"github.com/hyp3rd/statmodels/internal/sentinel"
)

// Geometric is the distribution of the number of trials performed before the
// first success, each trial succeeding with the same probability.
type Geometric struct {
	probabilityOfSuccess float64
}

// NewGeometric creates a geometric distribution with the given probability of
// success. It returns sentinel.ErrProbabilityOutOfRange when the probability
// falls outside [0, 1].
func NewGeometric(probabilityOfSuccess float64) (*Geometric, error) {
	geometric := &Geometric{
		probabilityOfSuccess: probabilityOfSuccess,
	}
	if err := geometric.check(); err != nil {
		return nil, err
	}

	return geometric, nil
}

func (g *Geometric) check() error {
	if g.probabilityOfSuccess < 0 || g.probabilityOfSuccess > 1 {
		return sentinel.ErrProbabilityOutOfRange
	}

	return nil
}

// ProbabilityOfSuccess returns the configured probability of success.
func (g *Geometric) ProbabilityOfSuccess() float64 {
	return g.probabilityOfSuccess
}

// SetProbabilityOfSuccess replaces the probability of success and re-validates
// it. The field is overwritten before validation runs, so on failure the
// distribution is left holding the rejected value.
func (g *Geometric) SetProbabilityOfSuccess(probabilityOfSuccess float64) error {
	g.probabilityOfSuccess = probabilityOfSuccess

	return g.check()
}

// Probability returns the probability that exactly trialsMade trials are
// performed before the first success, (1−p)^(trialsMade−1)·p. Negative values
// yield 0.
//
// The support effectively starts at 1: Probability(0) evaluates the formula
// at the exponent −1 and produces a nonzero value. This is deliberately not
// guarded; callers treating 0 trials as out of support must check first.
func (g *Geometric) Probability(trialsMade int) float64 {
	if trialsMade < 0 {
		return 0
	}

	return math.Pow(1-g.probabilityOfSuccess, float64(trialsMade-1)) * g.probabilityOfSuccess
}

// Mean returns 1/p. A zero probability of success yields +Inf; guarding
// against it is the caller's responsibility.
func (g *Geometric) Mean() float64 {
	return 1 / g.probabilityOfSuccess
}

// Variance returns (1−p)/p².
func (g *Geometric) Variance() float64 {
	return (1 - g.probabilityOfSuccess) / math.Pow(g.probabilityOfSuccess, 2)
}
