package fieldseed

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/hashicorp/go-multierror"
	"github.com/viant/xunsafe"
)

type (
	//BinderType represents a reusable, precomputed binding between accepted
	//field names and the fields of a target struct type. I is the wrapped
	//value type of the sequences the binder consumes.
	BinderType[I any] struct {
		rType   reflect.Type
		fields  []*boundField
		index   map[string]int
		options *binderOptions
	}

	boundField struct {
		field     *xunsafe.Field
		pos       int
		required  bool
		converter *converter
	}

	//Binder represents a single construction attempt against a target value
	Binder[I any] struct {
		binderType *BinderType[I]
		ptr        unsafe.Pointer
		present    []bool
	}
)

// NewBinderType creates a binder type for the supplied struct type. All name
// to field resolution happens here, so a misconfigured target fails when the
// binder type is built rather than during a conversion attempt.
func NewBinderType[I any](rType reflect.Type, opts ...BinderOption) (*BinderType[I], error) {
	options := &binderOptions{}
	options.apply(opts)
	aStruct := ensureStruct(rType)
	if aStruct == nil {
		return nil, fmt.Errorf("unsupported binder type: %s", rType.String())
	}
	ret := &BinderType[I]{rType: aStruct, options: options, index: map[string]int{}}
	for i := 0; i < aStruct.NumField(); i++ {
		structField := aStruct.Field(i)
		if structField.PkgPath != "" {
			continue
		}
		fTag := parseFieldTag(structField.Tag)
		if fTag.omit {
			continue
		}
		bound := &boundField{field: xunsafe.NewField(structField), pos: len(ret.fields), required: !fTag.optional}
		ret.fields = append(ret.fields, bound)
		for _, key := range options.getNames(structField.Name, structField.Tag) {
			if prev, ok := ret.index[key]; ok && prev != bound.pos {
				return nil, fmt.Errorf("ambiguous field name %v at %s", key, aStruct.String())
			}
			ret.index[key] = bound.pos
		}
	}
	return ret, nil
}

// Type returns the underlying struct type
func (t *BinderType[I]) Type() reflect.Type {
	return t.rType
}

func (t *BinderType[I]) IsDefined() bool {
	return len(t.fields) > 0
}

// Names returns all accepted field names
func (t *BinderType[I]) Names() []string {
	var result = make([]string, 0, len(t.index))
	for key := range t.index {
		result = append(result, key)
	}
	return result
}

func (t *BinderType[I]) lookup(name string) *boundField {
	pos, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.fields[pos]
}

// Bind creates a binder around the supplied target, a pointer to a struct of
// the binder type.
func (t *BinderType[I]) Bind(target interface{}) *Binder[I] {
	return &Binder[I]{binderType: t, ptr: xunsafe.AsPointer(target), present: make([]bool, len(t.fields))}
}

// Create allocates a new instance of the binder type, applies the supplied
// sequence and returns the populated pointer.
func (t *BinderType[I]) Create(fields Sequence[I]) (interface{}, error) {
	value := reflect.New(t.rType).Interface()
	if err := t.Bind(value).Apply(fields); err != nil {
		return nil, err
	}
	return value, nil
}

// Apply consumes the field sequence once, assigning each named value to its
// field. The first policy violation stops consumption, the sequence is not
// drained further. Once the sequence ends every required field must have
// been assigned.
func (b *Binder[I]) Apply(fields Sequence[I]) error {
	options := b.binderType.options
	var failure error
	for item := range fields {
		bound := b.binderType.lookup(item.Name)
		if bound == nil {
			if options.unknownPolicy == UnknownIgnore {
				continue
			}
			failure = &UnknownFieldError{Name: item.Name}
			break
		}
		if b.present[bound.pos] {
			if options.duplicatePolicy == DuplicateFirst {
				continue
			}
			if options.duplicatePolicy == DuplicateError {
				failure = &DuplicateFieldError{Name: item.Name}
				break
			}
		}
		if err := bound.set(b.ptr, item.Value); err != nil {
			failure = &ConvertError{Name: item.Name, Err: err}
			break
		}
		b.present[bound.pos] = true
	}
	if failure != nil {
		return failure
	}
	return b.missing()
}

// Has returns true if the named field has been assigned
func (b *Binder[I]) Has(name string) bool {
	bound := b.binderType.lookup(name)
	if bound == nil {
		return false
	}
	return b.present[bound.pos]
}

func (b *Binder[I]) missing() error {
	var result *multierror.Error
	for i, bound := range b.binderType.fields {
		if bound.required && !b.present[i] {
			result = multierror.Append(result, &MissingFieldError{Field: bound.field.Name})
		}
	}
	return result.ErrorOrNil()
}

func (f *boundField) set(holder unsafe.Pointer, value interface{}) error {
	if unwrapper, ok := value.(Unwrapper); ok {
		unwrapped, err := unwrapper.Unwrap()
		if err != nil {
			return err
		}
		value = unwrapped
	}
	srcType := reflect.TypeOf(value)
	if srcType == nil {
		return fmt.Errorf("value was nil")
	}
	if srcType == f.field.Type {
		f.field.SetValue(holder, value)
		return nil
	}
	conv := f.converter
	if conv == nil || conv.inputType != srcType {
		conv = &converter{inputType: srcType, setter: LookupSetter(srcType, f.field.Type)}
		f.converter = conv
	}
	return conv.setter(value, f.field, holder)
}
