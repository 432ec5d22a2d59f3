package toon

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
)

// modelValue converts an arbitrary Go value into the codec's data model:
// Document for objects, []any for sequences, and plain scalars otherwise.
// Struct fields honor `toon:"name,omitempty"` tags. Map keys are sorted
// so that encoding a map is deterministic; a Document preserves insertion
// order and is the lossless input shape.
func modelValue(v reflect.Value) (any, error) {
	if !v.IsValid() || (v.Kind() == reflect.Interface && v.IsNil()) {
		return nil, nil
	}

	// A Document is already in model form; normalize its values.
	if v.CanInterface() {
		if doc, ok := v.Interface().(Document); ok {
			return modelDocument(doc)
		}
	}

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
		if v.CanInterface() {
			if doc, ok := v.Interface().(Document); ok {
				return modelDocument(doc)
			}
		}
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		val := v.Uint()
		if val > math.MaxInt64 {
			return nil, fmt.Errorf("uint64 %d overflows int64", val)
		}
		return int64(val), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return nil, nil
		}
		elems := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, err := modelValue(v.Index(i))
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return elems, nil
	case reflect.Map:
		if v.IsNil() {
			return nil, nil
		}
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map key type must be a string, got %s", v.Type().Key())
		}
		keys := make([]string, 0, v.Len())
		for _, key := range v.MapKeys() {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		doc := make(Document, 0, len(keys))
		for _, key := range keys {
			val, err := modelValue(v.MapIndex(reflect.ValueOf(key)))
			if err != nil {
				return nil, err
			}
			doc = append(doc, Entry{Key: key, Value: val})
		}
		return doc, nil
	case reflect.Struct:
		return modelStruct(v)
	default:
		return nil, &MarshalerError{
			Type: v.Type(),
			Err:  fmt.Errorf("unsupported type"),
		}
	}
}

func modelDocument(doc Document) (Document, error) {
	out := make(Document, 0, len(doc))
	for _, e := range doc {
		val, err := modelValue(reflect.ValueOf(e.Value))
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{Key: e.Key, Value: val})
	}
	return out, nil
}

func modelStruct(v reflect.Value) (Document, error) {
	t := v.Type()
	doc := make(Document, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tagName, opts := parseTag(field.Tag.Get("toon"))
		if tagName == "-" {
			continue
		}
		if opts["omitempty"] && isEmptyValue(fieldValue) {
			continue
		}

		key := field.Name
		if tagName != "" {
			key = tagName
		}

		val, err := modelValue(fieldValue)
		if err != nil {
			return nil, err
		}
		doc = append(doc, Entry{Key: key, Value: val})
	}
	return doc, nil
}

// parseTag splits a toon struct tag into its name and options.
func parseTag(tag string) (string, map[string]bool) {
	parts := strings.Split(tag, ",")
	name := parts[0]
	options := make(map[string]bool)
	for _, part := range parts[1:] {
		options[strings.TrimSpace(part)] = true
	}
	return name, options
}

// isEmptyValue reports whether the value v is empty.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
