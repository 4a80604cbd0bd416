// Package seq provides producers of fieldseed sequences: fixtures, maps,
// parallel name/value slices and JSON objects.
package seq

import (
	"fmt"

	"github.com/structkit/fieldseed"
)

// Of returns a sequence yielding the supplied items in order
func Of[I any](items ...fieldseed.NamedField[I]) fieldseed.Sequence[I] {
	return func(yield func(fieldseed.NamedField[I]) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// FromMap returns a sequence yielding one named field per map entry, in map
// iteration order, i.e. arbitrary.
func FromMap[I any](values map[string]I) fieldseed.Sequence[I] {
	return func(yield func(fieldseed.NamedField[I]) bool) {
		for name, value := range values {
			if !yield(fieldseed.NamedField[I]{Name: name, Value: value}) {
				return
			}
		}
	}
}

// FromPairs returns a sequence zipping parallel name and value slices
func FromPairs[I any](names []string, values []I) (fieldseed.Sequence[I], error) {
	if len(names) != len(values) {
		return nil, fmt.Errorf("pairs mismatch: %v names, %v values", len(names), len(values))
	}
	return func(yield func(fieldseed.NamedField[I]) bool) {
		for i, name := range names {
			if !yield(fieldseed.NamedField[I]{Name: name, Value: values[i]}) {
				return
			}
		}
	}, nil
}
