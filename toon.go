package toon

import "reflect"

// Marshal returns the TOON encoding of v, choosing the encoding mode from
// the value's shape: slices and arrays use array mode, everything else
// object mode.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var (
		s   string
		err error
	)
	if _, isDoc := v.(Document); isDoc {
		// A Document is a slice under the hood but is an object value.
		s, err = EncodeObject(v, opts...)
	} else {
		switch reflect.Indirect(reflect.ValueOf(v)).Kind() {
		case reflect.Slice, reflect.Array:
			s, err = EncodeArray(v, opts...)
		default:
			s, err = EncodeObject(v, opts...)
		}
	}
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Unmarshal parses TOON-encoded data and stores the result in the value
// pointed to by v. It is shorthand for DecodeInto over a byte slice.
func Unmarshal(data []byte, v any, opts ...Option) error {
	return DecodeInto(string(data), v, opts...)
}
