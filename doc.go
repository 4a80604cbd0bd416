// Package fieldseed defines a minimal contract for building a struct from a
// single-pass sequence of name/value pairs supplied in arbitrary order: the
// NamedField carrier, the Creatable capability, and the Create helper.
//
// A hand-written CreateStruct matches names to fields directly, so a bad
// binding fails at construction time instead of hiding behind runtime
// reflection. For targets that prefer not to hand-write the matching, Binder
// offers a reference implementation: it precomputes a name to field index per
// struct type and applies a sequence with configurable duplicate and unknown
// name policies.
//
//	type Waffle struct {
//		SyrupAmount  uint8  `seed:"syrup_amount"`
//		ButterAmount uint8  `seed:"butter_amount"`
//		LayerCount   uint16 `seed:"layer_count"`
//	}
//
//	func (w *Waffle) CreateStruct(fields fieldseed.Sequence[any]) error {
//		binder, err := fieldseed.NewBinderType[any](reflect.TypeOf(w))
//		if err != nil {
//			return err
//		}
//		return binder.Bind(w).Apply(fields)
//	}
//
//	waffle, err := fieldseed.Create[Waffle](seq.Of(
//		fieldseed.NewNamedField[any]("butter_amount", uint8(44)),
//		fieldseed.NewNamedField[any]("layer_count", uint16(444)),
//		fieldseed.NewNamedField[any]("syrup_amount", uint8(4)),
//	))
//
// Sequences are consumed lazily and at most once; producers live in the seq
// subpackage.
package fieldseed
