package fieldseed

import (
	"reflect"

	"github.com/viant/tagly/format/text"
)

//DuplicatePolicy controls how a Binder treats a name supplied more than once
type DuplicatePolicy int

const (
	//DuplicateLast keeps the last supplied value
	DuplicateLast DuplicatePolicy = iota
	//DuplicateFirst keeps the first supplied value
	DuplicateFirst
	//DuplicateError fails with *DuplicateFieldError
	DuplicateError
)

//UnknownPolicy controls how a Binder treats a name the target type does not declare
type UnknownPolicy int

const (
	//UnknownError fails with *UnknownFieldError
	UnknownError UnknownPolicy = iota
	//UnknownIgnore skips the item
	UnknownIgnore
)

type (
	binderOptions struct {
		duplicatePolicy DuplicatePolicy
		unknownPolicy   UnknownPolicy
		caseFormats     []text.CaseFormat
		getNames        func(name string, tag reflect.StructTag) []string
	}

	//BinderOption represents binder option
	BinderOption func(o *binderOptions)
)

func (o *binderOptions) apply(opts []BinderOption) {
	for _, opt := range opts {
		opt(o)
	}
	if o.getNames == nil {
		o.getNames = o.defaultNames
	}
}

//WithDuplicatePolicy returns an option setting the duplicate name policy
func WithDuplicatePolicy(policy DuplicatePolicy) BinderOption {
	return func(o *binderOptions) {
		o.duplicatePolicy = policy
	}
}

//WithUnknownPolicy returns an option setting the unknown name policy
func WithUnknownPolicy(policy UnknownPolicy) BinderOption {
	return func(o *binderOptions) {
		o.unknownPolicy = policy
	}
}

//WithCaseFormats returns an option accepting name aliases in the supplied case formats
func WithCaseFormats(formats ...text.CaseFormat) BinderOption {
	return func(o *binderOptions) {
		o.caseFormats = append(o.caseFormats, formats...)
	}
}

//WithNames returns an option with customized names used by the binder indexer
func WithNames(fn func(name string, tag reflect.StructTag) []string) BinderOption {
	return func(o *binderOptions) {
		o.getNames = fn
	}
}
