// Package stats collects evaluation counters for decorated distributions.
package stats

import "sync"

// Stats contains distribution evaluation statistics.
type Stats struct {
	Evaluations  uint64 // number of probability evaluations
	InSupport    uint64 // evaluations that carried nonzero probability mass
	OutOfSupport uint64 // evaluations outside the distribution's support
	Moments      uint64 // number of mean and variance computations
}

// Collector is a struct for collecting distribution evaluation statistics.
type Collector struct {
	mu    sync.RWMutex // mutex to protect concurrent access to the stats
	stats Stats        // evaluation statistics
}

// NewCollector creates a new stats collector.
func NewCollector() *Collector {
	return &Collector{
		stats: Stats{},
	}
}

// IncrementEvaluations records one probability evaluation and whether the
// evaluated point was inside the support.
func (c *Collector) IncrementEvaluations(inSupport bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Evaluations++

	if inSupport {
		c.stats.InSupport++
	} else {
		c.stats.OutOfSupport++
	}
}

// IncrementMoments increments the number of moment computations.
func (c *Collector) IncrementMoments() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Moments++
}

// GetStats returns the evaluation statistics.
func (c *Collector) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}
