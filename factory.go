package statmodels

import (
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/statmodels/internal/constants"
	"github.com/hyp3rd/statmodels/internal/sentinel"
)

// IDistributionConstructor is an interface for distribution constructors.
type IDistributionConstructor interface {
	Create(cfg Config) (Distribution, error)
}

// BinomialConstructor constructs Binomial distributions.
type BinomialConstructor struct{}

// Create creates a new Binomial distribution.
func (BinomialConstructor) Create(cfg Config) (Distribution, error) {
	return NewBinomial(cfg.NumberOfTrials, cfg.ProbabilityOfSuccess)
}

// GeometricConstructor constructs Geometric distributions.
type GeometricConstructor struct{}

// Create creates a new Geometric distribution.
func (GeometricConstructor) Create(cfg Config) (Distribution, error) {
	return NewGeometric(cfg.ProbabilityOfSuccess)
}

// DiscreteUniformConstructor constructs DiscreteUniform distributions.
type DiscreteUniformConstructor struct{}

// Create creates a new DiscreteUniform distribution.
func (DiscreteUniformConstructor) Create(cfg Config) (Distribution, error) {
	return NewDiscreteUniform(cfg.FirstValue, cfg.LastValue)
}

// DistributionManager is a factory for creating distribution instances from a
// declarative Config. It maintains a registry of distribution constructors.
type DistributionManager struct {
	distributionRegistry map[string]IDistributionConstructor
}

// getDefaultDistributions returns the default set of distribution constructors.
func getDefaultDistributions() map[string]IDistributionConstructor {
	return map[string]IDistributionConstructor{
		constants.BinomialDistribution:        BinomialConstructor{},
		constants.GeometricDistribution:       GeometricConstructor{},
		constants.DiscreteUniformDistribution: DiscreteUniformConstructor{},
	}
}

// NewDistributionManager creates a new DistributionManager with default distributions pre-registered.
func NewDistributionManager() *DistributionManager {
	manager := &DistributionManager{
		distributionRegistry: make(map[string]IDistributionConstructor),
	}
	// Register the default distributions
	for name, constructor := range getDefaultDistributions() {
		manager.RegisterDistribution(name, constructor)
	}

	return manager
}

// RegisterDistribution registers a new distribution constructor with the given name.
func (m *DistributionManager) RegisterDistribution(name string, constructor IDistributionConstructor) {
	m.distributionRegistry[name] = constructor
}

// Create creates a distribution based on the Config's Type.
func (m *DistributionManager) Create(cfg Config) (Distribution, error) {
	if cfg.Type == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "distribution type")
	}

	constructor, ok := m.distributionRegistry[cfg.Type]
	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrUnknownDistribution, cfg.Type)
	}

	return constructor.Create(cfg)
}

// NewFromConfig creates a distribution using a new manager instance with
// default distributions.
func NewFromConfig(cfg Config) (Distribution, error) {
	manager := NewDistributionManager()

	return manager.Create(cfg)
}
