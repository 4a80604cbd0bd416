package fieldseed

// Creatable is implemented by struct types that can be populated from a
// Sequence of named fields supplied in arbitrary order. I is the wrapped
// value type every element of the input carries.
//
// The contract does not fix a policy for missing, duplicate or unrecognized
// names; each implementation defines its own. Implementations backed by a
// Binder inherit the binder's configured policies.
type Creatable[I any] interface {
	CreateStruct(fields Sequence[I]) error
}

// Create builds a T from the supplied field sequence using T's Creatable
// implementation. It returns either a fully populated value or an error,
// never a partially initialized one.
func Create[T any, PT interface {
	*T
	Creatable[I]
}, I any](fields Sequence[I]) (T, error) {
	var result T
	if err := PT(&result).CreateStruct(fields); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// Unwrapper is implemented by wrapped value types that hold their payload
// behind a variant, union style. A Binder unwraps such values before
// assignment; an unwrap failure surfaces as *ConvertError.
type Unwrapper interface {
	Unwrap() (interface{}, error)
}
