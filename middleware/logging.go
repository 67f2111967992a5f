// Package middleware contains distribution middlewares for statmodels.
package middleware

import (
	"time"

	"github.com/hyp3rd/statmodels"
	"github.com/hyp3rd/statmodels/utils"
)

// Logger describes a logging interface allowing to implement different external, or custom logger.
// Tested with logrus, and Uber's Zap (high-performance), but should work with any other logger that matches the interface.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// LoggingMiddleware is a middleware that logs the time it takes to execute the next middleware.
// Must implement the statmodels.Distribution interface.
type LoggingMiddleware struct {
	next   statmodels.Distribution
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware(next statmodels.Distribution, logger Logger) statmodels.Distribution {
	typeName, _ := utils.TypeName(next)
	logger.Infof("attaching logging middleware to %s", typeName)

	return &LoggingMiddleware{next: next, logger: logger}
}

// Probability logs the time it takes to execute the next middleware.
func (mw *LoggingMiddleware) Probability(value int) float64 {
	defer func(begin time.Time) {
		mw.logger.Infof("method Probability took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Infof("Probability method invoked with value: %d", value)

	return mw.next.Probability(value)
}

// Mean logs the time it takes to execute the next middleware.
func (mw *LoggingMiddleware) Mean() float64 {
	defer func(begin time.Time) {
		mw.logger.Infof("method Mean took: %s", time.Since(begin))
	}(time.Now())

	return mw.next.Mean()
}

// Variance logs the time it takes to execute the next middleware.
func (mw *LoggingMiddleware) Variance() float64 {
	defer func(begin time.Time) {
		mw.logger.Infof("method Variance took: %s", time.Since(begin))
	}(time.Now())

	return mw.next.Variance()
}
