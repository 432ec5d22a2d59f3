package toon

import (
	"fmt"
	"reflect"
)

// A ShapeError reports that an input value did not have the shape the
// requested encoding mode expects, e.g. a slice passed to object-mode
// encoding.
type ShapeError struct {
	Expected string
	Value    any
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("toon: expected %s, got %T", e.Expected, e.Value)
}

// An UnmarshalTypeError reports that a decoded TOON value could not be
// stored in the destination Go type.
type UnmarshalTypeError struct {
	Value string
	Type  reflect.Type
}

func (e *UnmarshalTypeError) Error() string {
	return "toon: cannot unmarshal " + e.Value + " into Go value of type " + e.Type.String()
}

// A MarshalerError wraps an error returned while converting a Go value
// into the codec's data model.
type MarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *MarshalerError) Error() string {
	return "toon: error marshaling value of type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *MarshalerError) Unwrap() error { return e.Err }
