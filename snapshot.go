package statmodels

import (
	"github.com/cespare/xxhash/v2"
	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/statmodels/libs/serializer"
)

// Snapshot is a portable copy of a Statistics engine's state: the dataset and
// the population flag. It is what crosses process boundaries when integrators
// persist or ship a dataset; the engine itself never does I/O.
type Snapshot[T Number] struct {
	Values         []T  `json:"values" msgpack:"values"`
	PopulationData bool `json:"population_data" msgpack:"population_data"`
}

// Snapshot returns a copy of the engine's current state.
func (s *Statistics[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		Values:         s.Values(),
		PopulationData: s.populationData,
	}
}

// FromSnapshot creates a statistics engine from a snapshot.
func FromSnapshot[T Number](snapshot Snapshot[T]) *Statistics[T] {
	return NewStatistics(snapshot.Values, WithPopulationData[T](snapshot.PopulationData))
}

// Export encodes the engine's snapshot with the given serializer.
func (s *Statistics[T]) Export(ser serializer.ISerializer) ([]byte, error) {
	data, err := ser.Marshal(s.Snapshot())
	if err != nil {
		return nil, ewrap.Wrap(err, "exporting snapshot")
	}

	return data, nil
}

// Import decodes a snapshot with the given serializer and fully replaces the
// engine's state with it.
func (s *Statistics[T]) Import(ser serializer.ISerializer, data []byte) error {
	var snapshot Snapshot[T]
	if err := ser.Unmarshal(data, &snapshot); err != nil {
		return ewrap.Wrap(err, "importing snapshot")
	}

	s.SetValues(snapshot.Values...)
	s.SetPopulationData(snapshot.PopulationData)

	return nil
}

// Fingerprint returns a 64-bit digest of the engine's state, computed with
// xxhash over the msgpack encoding of its snapshot. Integrators that memoize
// computed summaries can use it as a cache key: equal state yields an equal
// fingerprint.
//
// Note that Median reorders the backing slice, so the fingerprint of an
// unsorted dataset changes after the first Median call.
func (s *Statistics[T]) Fingerprint() (uint64, error) {
	data, err := s.Export(&serializer.MsgpackSerializer{})
	if err != nil {
		return 0, ewrap.Wrap(err, "fingerprinting dataset")
	}

	return xxhash.Sum64(data), nil
}
