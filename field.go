package fieldseed

import (
	"fmt"
	"iter"
)

type (
	//NamedField pairs the name of a target struct field with the value to assign to it
	NamedField[I any] struct {
		Name  string
		Value I
	}

	//Sequence represents a finite, single-pass sequence of named fields; it is
	//consumed lazily and a consumer may stop early, restartability is not guaranteed
	Sequence[I any] = iter.Seq[NamedField[I]]
)

// NewNamedField creates a named field
func NewNamedField[I any](name string, value I) NamedField[I] {
	return NamedField[I]{Name: name, Value: value}
}

func (f NamedField[I]) String() string {
	return fmt.Sprintf("%s: %v", f.Name, f.Value)
}
