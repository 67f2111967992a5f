// Package sentinel provides standardized error definitions for the statmodels library.
// This package centralizes all error types used across the statmodels components,
// ensuring consistent error handling and messaging throughout the library.
//
// The errors defined here cover various scenarios including:
// - Domain violations on distribution parameters (negative trials, probability out of range, malformed intervals)
// - Domain violations on combinatorial inputs (negative factorial arguments)
// - Empty-dataset violations raised by the descriptive statistics engine
// - Component lookup errors (unknown distribution types, missing serializers)
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrNegativeFactorial is returned when the factorial of a negative number is requested.
	ErrNegativeFactorial = ewrap.New("factorial is not defined for negative numbers")

	// ErrNegativeTrials is returned when a binomial distribution is configured with a negative number of trials.
	ErrNegativeTrials = ewrap.New("number of trials is negative")

	// ErrProbabilityOutOfRange is returned when a probability of success falls outside the [0, 1] interval.
	ErrProbabilityOutOfRange = ewrap.New("probability of success is not between 0 and 1")

	// ErrInvalidInterval is returned when a discrete uniform interval has its first value greater than its last.
	ErrInvalidInterval = ewrap.New("first value is greater than last value")

	// ErrEmptyDataset is returned when an order statistic is requested on an empty dataset.
	ErrEmptyDataset = ewrap.New("dataset is empty")

	// ErrUnknownDistribution is returned when a distribution type is not found in the registry.
	ErrUnknownDistribution = ewrap.New("unknown distribution type")

	// ErrSerializerNotFound is returned when a serializer is not found.
	ErrSerializerNotFound = ewrap.New("serializer not found")

	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")
)
