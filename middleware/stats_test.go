package middleware

import (
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/statmodels"
	"github.com/hyp3rd/statmodels/stats"
)

func TestStatsCollectorMiddleware(t *testing.T) {
	binomial, err := statmodels.NewBinomial(10, 0.5)
	assert.NoError(t, err)

	collector := stats.NewCollector()
	dist := NewStatsCollectorMiddleware(binomial, collector)

	dist.Probability(5)
	dist.Probability(11)
	dist.Mean()
	dist.Variance()

	collected := collector.GetStats()
	assert.Equal(t, uint64(2), collected.Evaluations)
	assert.Equal(t, uint64(1), collected.InSupport)
	assert.Equal(t, uint64(1), collected.OutOfSupport)
	assert.Equal(t, uint64(2), collected.Moments)
}
