package fieldseed

import "fmt"

//MissingFieldError reports a required field the input sequence never named
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %v", e.Field)
}

//UnknownFieldError reports a field name the target type does not declare
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %v", e.Name)
}

//DuplicateFieldError reports a field name supplied more than once
type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate field %v", e.Name)
}

//ConvertError reports a wrapped value that could not be assigned to its field
type ConvertError struct {
	Name string
	Err  error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("failed to assign field %v: %v", e.Name, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}
