package middleware

import (
	"github.com/hyp3rd/statmodels"
	"github.com/hyp3rd/statmodels/stats"
)

// StatsCollectorMiddleware is a middleware that collects evaluation stats.
// Must implement the statmodels.Distribution interface.
type StatsCollectorMiddleware struct {
	next           statmodels.Distribution
	statsCollector *stats.Collector
}

// NewStatsCollectorMiddleware returns a new StatsCollectorMiddleware.
func NewStatsCollectorMiddleware(next statmodels.Distribution, statsCollector *stats.Collector) statmodels.Distribution {
	return &StatsCollectorMiddleware{next: next, statsCollector: statsCollector}
}

// Probability counts the evaluation and whether it hit the support.
func (mw *StatsCollectorMiddleware) Probability(value int) float64 {
	p := mw.next.Probability(value)
	mw.statsCollector.IncrementEvaluations(p > 0)

	return p
}

// Mean counts the moment computation.
func (mw *StatsCollectorMiddleware) Mean() float64 {
	mw.statsCollector.IncrementMoments()

	return mw.next.Mean()
}

// Variance counts the moment computation.
func (mw *StatsCollectorMiddleware) Variance() float64 {
	mw.statsCollector.IncrementMoments()

	return mw.next.Variance()
}
