// Package mathx provides the combinatorial helpers backing the discrete
// distributions: integer factorials and binomial coefficients.
package mathx

import (
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/statmodels/internal/sentinel"
)

// Factorial computes the product 1·2·…·x. Factorial(0) and Factorial(1) are
// both 1. It returns sentinel.ErrNegativeFactorial when x is negative.
func Factorial(x int) (int, error) {
	if x < 0 {
		return 0, ewrap.Wrap(sentinel.ErrNegativeFactorial, "factorial")
	}

	result := 1
	for i := 2; i <= x; i++ {
		result *= i
	}

	return result, nil
}

// Combination computes the number of ways to choose x elements from a set of
// size n, as n! / ((n−x)!·x!).
//
// There is no explicit bound check that 0 <= x <= n: a negative n, x, or n−x
// surfaces as the factorial domain error, and anything beyond that is the
// caller's responsibility.
func Combination(n, x int) (int, error) {
	nFact, err := Factorial(n)
	if err != nil {
		return 0, err
	}

	nMinusXFact, err := Factorial(n - x)
	if err != nil {
		return 0, err
	}

	xFact, err := Factorial(x)
	if err != nil {
		return 0, err
	}

	return nFact / (nMinusXFact * xFact), nil
}
