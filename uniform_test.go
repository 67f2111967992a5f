package statmodels

import (
	"errors"
	"math"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/statmodels/internal/sentinel"
)

func TestNewDiscreteUniform(t *testing.T) {
	tests := []struct {
		name        string
		first       int
		last        int
		expectedErr error
	}{
		{
			name:  "valid interval",
			first: 1,
			last:  6,
		},
		{
			name:  "single point interval",
			first: 3,
			last:  3,
		},
		{
			name:  "negative bounds",
			first: -10,
			last:  -2,
		},
		{
			name:        "inverted interval",
			first:       6,
			last:        1,
			expectedErr: sentinel.ErrInvalidInterval,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			uniform, err := NewDiscreteUniform(test.first, test.last)
			if test.expectedErr != nil {
				assert.True(t, errors.Is(err, test.expectedErr))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.first, uniform.FirstValue())
			assert.Equal(t, test.last, uniform.LastValue())
		})
	}
}

func TestDiscreteUniformProbability(t *testing.T) {
	uniform, err := NewDiscreteUniform(1, 6)
	assert.NoError(t, err)

	assert.True(t, math.Abs(uniform.Probability(3)-1.0/6.0) < floatTolerance)
	assert.Equal(t, 0.0, uniform.Probability(0))
	assert.Equal(t, 0.0, uniform.Probability(7))

	// the masses over the whole support sum to one
	sum := 0.0
	for v := uniform.FirstValue(); v <= uniform.LastValue(); v++ {
		sum += uniform.Probability(v)
	}

	assert.True(t, math.Abs(sum-1) < floatTolerance)
}

func TestDiscreteUniformMoments(t *testing.T) {
	uniform, err := NewDiscreteUniform(1, 6)
	assert.NoError(t, err)

	// (1+6)/2 truncates to 3
	assert.Equal(t, 3.0, uniform.Mean())
	// (6-1)*(6-1+2)/12 = 35/12 truncates to 2
	assert.Equal(t, 2.0, uniform.Variance())

	// an even-sized midpoint stays exact
	assert.NoError(t, uniform.SetInterval(2, 6))
	assert.Equal(t, 4.0, uniform.Mean())
	assert.Equal(t, 2.0, uniform.Variance())
}

func TestDiscreteUniformSetInterval(t *testing.T) {
	uniform, err := NewDiscreteUniform(1, 6)
	assert.NoError(t, err)

	assert.NoError(t, uniform.SetInterval(10, 20))
	assert.Equal(t, 10, uniform.FirstValue())
	assert.Equal(t, 20, uniform.LastValue())

	err = uniform.SetInterval(5, 1)
	assert.True(t, errors.Is(err, sentinel.ErrInvalidInterval))

	// the fields are overwritten before validation runs
	assert.Equal(t, 5, uniform.FirstValue())
	assert.Equal(t, 1, uniform.LastValue())
}
