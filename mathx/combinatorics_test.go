package mathx

import (
	"errors"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/statmodels/internal/sentinel"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		name        string
		x           int
		expected    int
		expectedErr error
	}{
		{
			name:     "factorial of zero",
			x:        0,
			expected: 1,
		},
		{
			name:     "factorial of one",
			x:        1,
			expected: 1,
		},
		{
			name:     "factorial of five",
			x:        5,
			expected: 120,
		},
		{
			name:     "factorial of ten",
			x:        10,
			expected: 3628800,
		},
		{
			name:        "factorial of a negative number",
			x:           -1,
			expectedErr: sentinel.ErrNegativeFactorial,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := Factorial(test.x)
			if test.expectedErr != nil {
				assert.True(t, errors.Is(err, test.expectedErr))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.expected, result)
		})
	}
}

func TestFactorialRecurrence(t *testing.T) {
	previous, err := Factorial(0)
	assert.NoError(t, err)

	for x := 1; x <= 12; x++ {
		current, err := Factorial(x)
		assert.NoError(t, err)
		assert.Equal(t, previous*x, current)

		previous = current
	}
}

func TestCombination(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		x           int
		expected    int
		expectedErr error
	}{
		{
			name:     "choose none",
			n:        5,
			x:        0,
			expected: 1,
		},
		{
			name:     "choose all",
			n:        5,
			x:        5,
			expected: 1,
		},
		{
			name:     "ten choose five",
			n:        10,
			x:        5,
			expected: 252,
		},
		{
			name:        "negative set size",
			n:           -1,
			x:           0,
			expectedErr: sentinel.ErrNegativeFactorial,
		},
		{
			name:        "negative selection",
			n:           5,
			x:           -2,
			expectedErr: sentinel.ErrNegativeFactorial,
		},
		{
			name:        "selection larger than set",
			n:           3,
			x:           5,
			expectedErr: sentinel.ErrNegativeFactorial,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := Combination(test.n, test.x)
			if test.expectedErr != nil {
				assert.True(t, errors.Is(err, test.expectedErr))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.expected, result)
		})
	}
}

func TestCombinationSymmetry(t *testing.T) {
	const n = 12

	for x := 0; x <= n; x++ {
		left, err := Combination(n, x)
		assert.NoError(t, err)

		right, err := Combination(n, n-x)
		assert.NoError(t, err)

		assert.Equal(t, left, right)
	}
}
