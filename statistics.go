package statmodels

import (
	"math"
	"slices"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/statmodels/internal/sentinel"
)

// Number is the constraint satisfied by the numeric types the Statistics
// engine can hold. The engine relies on addition, subtraction, multiplication
// and ordering over T.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Statistics is a descriptive statistics engine over an ordered sequence of
// numeric values. It owns its copy of the data: values passed in are copied,
// and values handed out are copies as well.
//
// The population flag selects the variance denominator: n for population data,
// n−1 for sample data (Bessel's correction).
//
// Instances are not safe for concurrent mutation; read-only use of distinct
// instances is safe since there is no shared state.
type Statistics[T Number] struct {
	values         []T
	populationData bool
}

// StatisticsOption is a function type that can be used to configure a
// `Statistics` engine at construction time.
type StatisticsOption[T Number] func(*Statistics[T])

// WithSampleData marks the dataset as a sample drawn from a population,
// switching the variance denominator to n−1.
func WithSampleData[T Number]() StatisticsOption[T] {
	return func(s *Statistics[T]) {
		s.populationData = false
	}
}

// WithPopulationData sets the population flag explicitly.
func WithPopulationData[T Number](populationData bool) StatisticsOption[T] {
	return func(s *Statistics[T]) {
		s.populationData = populationData
	}
}

// NewStatistics creates a statistics engine over a copy of the given values.
// The dataset is treated as population data unless configured otherwise.
func NewStatistics[T Number](values []T, opts ...StatisticsOption[T]) *Statistics[T] {
	statistics := &Statistics[T]{
		values:         slices.Clone(values),
		populationData: true,
	}
	for _, opt := range opts {
		opt(statistics)
	}

	return statistics
}

// ensureNotEmpty returns the empty-dataset sentinel when no values are held.
func (s *Statistics[T]) ensureNotEmpty(operation string) error {
	if len(s.values) == 0 {
		return ewrap.Wrap(sentinel.ErrEmptyDataset, operation)
	}

	return nil
}

// Values returns a copy of the current sequence. The copy does not alias the
// internal state.
func (s *Statistics[T]) Values() []T {
	return slices.Clone(s.values)
}

// IsPopulationData reports whether the dataset is treated as population data.
func (s *Statistics[T]) IsPopulationData() bool {
	return s.populationData
}

// SetValues fully replaces the dataset with a copy of the given values and
// returns the engine for chaining.
func (s *Statistics[T]) SetValues(values ...T) *Statistics[T] {
	s.values = slices.Clone(values)

	return s
}

// SetPopulationData sets the population flag and returns the engine for
// chaining.
func (s *Statistics[T]) SetPopulationData(populationData bool) *Statistics[T] {
	s.populationData = populationData

	return s
}

// Size returns the number of values in the dataset.
func (s *Statistics[T]) Size() int {
	return len(s.values)
}

// SumBy sums transform(value) over all values. An empty dataset sums to 0.
func (s *Statistics[T]) SumBy(transform func(T) float64) float64 {
	sum := 0.0

	for _, value := range s.values {
		sum += transform(value)
	}

	return sum
}

// Sum sums the values themselves. An empty dataset sums to 0.
func (s *Statistics[T]) Sum() float64 {
	return s.SumBy(func(value T) float64 {
		return float64(value)
	})
}

// Mean returns the arithmetic mean of the dataset, or 0 when it is empty.
func (s *Statistics[T]) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}

	return s.Sum() / float64(s.Size())
}

// Median returns the central value of the dataset, or the average of the two
// central values for an even count.
//
// Median sorts the backing slice in place: after a call the stored order is
// ascending, which a subsequent Values call will observe.
func (s *Statistics[T]) Median() (float64, error) {
	if err := s.ensureNotEmpty("median"); err != nil {
		return 0, err
	}

	slices.Sort(s.values)

	mid := len(s.values) / 2
	if len(s.values)%2 == 0 {
		return (float64(s.values[mid-1]) + float64(s.values[mid])) / 2, nil
	}

	return float64(s.values[mid]), nil
}

// Mode returns the most frequent value in the dataset. Ties are broken by map
// iteration order and are therefore not deterministic.
func (s *Statistics[T]) Mode() (T, error) {
	var mode T

	if err := s.ensureNotEmpty("mode"); err != nil {
		return mode, err
	}

	frequency := make(map[T]int, len(s.values))
	for _, value := range s.values {
		frequency[value]++
	}

	best := 0
	for value, count := range frequency {
		if count > best {
			mode = value
			best = count
		}
	}

	return mode, nil
}

// Amplitude returns the range of the dataset, max − min.
func (s *Statistics[T]) Amplitude() (T, error) {
	var amplitude T

	if err := s.ensureNotEmpty("amplitude"); err != nil {
		return amplitude, err
	}

	return slices.Max(s.values) - slices.Min(s.values), nil
}

// Variance returns the sum of squared deviations from the mean, divided by n
// for population data or n−1 for sample data. An empty dataset yields 0
// rather than an error, unlike Median, Mode and Amplitude.
func (s *Statistics[T]) Variance() float64 {
	if len(s.values) == 0 {
		return 0
	}

	mean := s.Mean()
	sumOfSquares := s.SumBy(func(value T) float64 {
		return math.Pow(float64(value)-mean, 2)
	})

	if s.populationData {
		return sumOfSquares / float64(s.Size())
	}

	return sumOfSquares / float64(s.Size()-1)
}

// StandardDeviation returns the square root of the variance.
func (s *Statistics[T]) StandardDeviation() float64 {
	return math.Sqrt(s.Variance())
}

// CoefficientOfVariation returns the standard deviation divided by the mean,
// a scale-free dispersion measure. A mean of exactly 0 yields 0 instead of a
// division by zero.
func (s *Statistics[T]) CoefficientOfVariation() float64 {
	mean := s.Mean()
	if mean == 0 {
		return 0
	}

	return s.StandardDeviation() / mean
}
