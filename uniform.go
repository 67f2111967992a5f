package statmodels

import (
	"github.com/hyp3rd/statmodels/internal/sentinel"
)

// DiscreteUniform is the distribution assigning the same probability to every
// integer in a closed interval.
type DiscreteUniform struct {
	firstValue, lastValue int
}

// NewDiscreteUniform creates a discrete uniform distribution over the closed
// interval [firstValue, lastValue]. It returns sentinel.ErrInvalidInterval
// when firstValue is greater than lastValue.
func NewDiscreteUniform(firstValue, lastValue int) (*DiscreteUniform, error) {
	uniform := &DiscreteUniform{
		firstValue: firstValue,
		lastValue:  lastValue,
	}
	if err := uniform.check(); err != nil {
		return nil, err
	}

	return uniform, nil
}

func (u *DiscreteUniform) check() error {
	if u.firstValue > u.lastValue {
		return sentinel.ErrInvalidInterval
	}

	return nil
}

// FirstValue returns the lower bound of the interval.
func (u *DiscreteUniform) FirstValue() int {
	return u.firstValue
}

// LastValue returns the upper bound of the interval.
func (u *DiscreteUniform) LastValue() int {
	return u.lastValue
}

// SetInterval replaces both interval bounds and re-validates them. The fields
// are overwritten before validation runs, so on failure the distribution is
// left holding the rejected values.
func (u *DiscreteUniform) SetInterval(firstValue, lastValue int) error {
	u.firstValue = firstValue
	u.lastValue = lastValue

	return u.check()
}

// Probability returns the probability mass at the given value, 1/(last−first+1)
// inside the interval and 0 outside it.
func (u *DiscreteUniform) Probability(value int) float64 {
	if value < u.firstValue || value > u.lastValue {
		return 0
	}

	return 1.0 / float64(u.lastValue-u.firstValue+1)
}

// Mean returns the midpoint of the interval, computed with integer division.
// A fractional midpoint is truncated.
func (u *DiscreteUniform) Mean() float64 {
	return float64((u.firstValue + u.lastValue) / 2)
}

// Variance returns (last−first)·(last−first+2)/12, computed with integer
// division. A fractional result is truncated, like Mean.
func (u *DiscreteUniform) Variance() float64 {
	return float64((u.lastValue - u.firstValue) * (u.lastValue - u.firstValue + 2) / 12)
}
