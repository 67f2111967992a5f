package middleware

import (
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/statmodels"
)

// recordingLogger captures log lines for inspection.
type recordingLogger struct {
	infos  int
	errors int
}

func (l *recordingLogger) Infof(_ string, _ ...interface{})  { l.infos++ }
func (l *recordingLogger) Errorf(_ string, _ ...interface{}) { l.errors++ }

func TestLoggingMiddleware(t *testing.T) {
	uniform, err := statmodels.NewDiscreteUniform(1, 6)
	assert.NoError(t, err)

	logger := &recordingLogger{}
	dist := NewLoggingMiddleware(uniform, logger)

	// results pass through unchanged
	assert.Equal(t, uniform.Probability(3), dist.Probability(3))
	assert.Equal(t, uniform.Mean(), dist.Mean())
	assert.Equal(t, uniform.Variance(), dist.Variance())

	// one line at attach, two for Probability, one each for Mean and Variance
	assert.Equal(t, 5, logger.infos)
	assert.Equal(t, 0, logger.errors)
}

func TestApplyMiddlewareOrder(t *testing.T) {
	uniform, err := statmodels.NewDiscreteUniform(1, 6)
	assert.NoError(t, err)

	logger := &recordingLogger{}
	dist := statmodels.ApplyMiddleware(uniform, func(next statmodels.Distribution) statmodels.Distribution {
		return NewLoggingMiddleware(next, logger)
	})

	dist.Probability(2)
	assert.Equal(t, 3, logger.infos)
}
