package toon

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// DecodeInto parses TOON text and stores the result in the value pointed
// to by v. Decoded Documents map onto structs (honoring `toon` tags, with
// a case-insensitive fallback) and string-keyed maps; decoded row lists
// map onto slices. If v is nil or not a pointer, DecodeInto returns an
// error.
func DecodeInto(text string, v any, opts ...Option) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("toon: DecodeInto(non-pointer %T or nil)", v)
	}

	decoded, err := Decode(text, opts...)
	if err != nil {
		return err
	}
	return bindValue(decoded, rv.Elem())
}

func bindValue(val any, rv reflect.Value) error {
	if val == nil {
		switch rv.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice:
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
	}

	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}

	if rv.Kind() == reflect.Interface {
		if rv.NumMethod() != 0 {
			return fmt.Errorf("toon: cannot unmarshal into non-empty interface %s", rv.Type())
		}
		rv.Set(reflect.ValueOf(val))
		return nil
	}
	if !rv.CanSet() {
		return fmt.Errorf("toon: cannot set value of type %s", rv.Type())
	}

	switch node := val.(type) {
	case string:
		return bindString(node, rv)
	case bool:
		return bindBool(node, rv)
	case int64:
		return bindInt(node, rv)
	case float64:
		return bindFloat(node, rv)
	case Document:
		if rv.Type() == reflect.TypeOf(Document{}) {
			rv.Set(reflect.ValueOf(node))
			return nil
		}
		switch rv.Kind() {
		case reflect.Struct:
			return bindStruct(node, rv)
		case reflect.Map:
			return bindMap(node, rv)
		default:
			return &UnmarshalTypeError{Value: "object", Type: rv.Type()}
		}
	case []Document:
		if rv.Type() == reflect.TypeOf([]Document{}) {
			rv.Set(reflect.ValueOf(node))
			return nil
		}
		if rv.Kind() != reflect.Slice {
			return &UnmarshalTypeError{Value: "array", Type: rv.Type()}
		}
		newSlice := reflect.MakeSlice(rv.Type(), len(node), len(node))
		for i, row := range node {
			if err := bindValue(row, newSlice.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(newSlice)
		return nil
	default:
		return fmt.Errorf("toon: binding for decoded type %T not supported", node)
	}
}

func bindString(s string, rv reflect.Value) error {
	if rv.Kind() != reflect.String {
		return &UnmarshalTypeError{Value: "string", Type: rv.Type()}
	}
	rv.SetString(s)
	return nil
}

func bindBool(b bool, rv reflect.Value) error {
	if rv.Kind() != reflect.Bool {
		return &UnmarshalTypeError{Value: "boolean", Type: rv.Type()}
	}
	rv.SetBool(b)
	return nil
}

func bindInt(i int64, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.OverflowInt(i) {
			return fmt.Errorf("toon: integer value %d overflows Go value of type %s", i, rv.Type())
		}
		rv.SetInt(i)
		return nil
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(float64(i))
		return nil
	default:
		return &UnmarshalTypeError{Value: "integer", Type: rv.Type()}
	}
}

func bindFloat(f float64, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if rv.OverflowFloat(f) {
			return fmt.Errorf("toon: float value %f overflows Go value of type %s", f, rv.Type())
		}
		rv.SetFloat(f)
		return nil
	default:
		return &UnmarshalTypeError{Value: "float", Type: rv.Type()}
	}
}

func bindMap(doc Document, rv reflect.Value) error {
	mapType := rv.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("toon: cannot unmarshal object into map with non-string key type %s", mapType.Key())
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMap(mapType))
	}
	elemType := mapType.Elem()
	for _, e := range doc {
		newVal := reflect.New(elemType).Elem()
		if err := bindValue(e.Value, newVal); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(e.Key), newVal)
	}
	return nil
}

func bindStruct(doc Document, rv reflect.Value) error {
	fields := cachedFields(rv.Type())
	for _, e := range doc {
		targetField := findField(fields, e.Key)
		if targetField == nil {
			continue
		}
		fieldVal := rv.FieldByIndex(targetField.idx)
		if fieldVal.IsValid() && fieldVal.CanSet() {
			if err := bindValue(e.Value, fieldVal); err != nil {
				return err
			}
		}
	}
	return nil
}

// findField finds the target field in a struct's cached fields. It first
// attempts a case-sensitive match, then falls back to a case-insensitive
// match.
func findField(fields map[string]field, keyStr string) *field {
	if f, ok := fields[keyStr]; ok {
		return &f
	}
	if f, ok := fields[strings.ToLower(keyStr)]; ok {
		return &f
	}
	return nil
}

// A field represents a single field in a struct.
type field struct {
	idx []int
}

// fieldCache caches a map of struct field names to their properties.
var fieldCache sync.Map // map[reflect.Type]map[string]field

// cachedFields returns a map of field names to field properties for the
// given type. The result is cached to avoid repeated reflection work.
func cachedFields(t reflect.Type) map[string]field {
	if f, ok := fieldCache.Load(t); ok {
		if fields, ok := f.(map[string]field); ok {
			return fields
		}
	}

	fields := make(map[string]field)
	var walk func(t reflect.Type, idx []int)
	walk = func(t reflect.Type, idx []int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if sf.Anonymous {
				walk(sf.Type, append(idx, i))
				continue
			}
			if !sf.IsExported() {
				continue
			}

			tag := sf.Tag.Get("toon")
			if tag == "-" {
				continue
			}

			f := field{idx: append(idx, i)}
			tagName := strings.Split(tag, ",")[0]

			if tagName != "" {
				fields[tagName] = f
			}
			fields[sf.Name] = f

			// Lower-cased entries provide the case-insensitive fallback
			// without overwriting a case-sensitive match.
			if tagName != "" {
				lowerTagName := strings.ToLower(tagName)
				if _, ok := fields[lowerTagName]; !ok {
					fields[lowerTagName] = f
				}
			}
			lowerFieldName := strings.ToLower(sf.Name)
			if _, ok := fields[lowerFieldName]; !ok {
				fields[lowerFieldName] = f
			}
		}
	}
	walk(t, nil)

	fieldCache.Store(t, fields)
	return fields
}
