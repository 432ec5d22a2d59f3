package toon

import (
	"io"
	"reflect"
	"strings"

	"github.com/spf13/cast"

	"github.com/JesusRosaB/go-toon/internal/scan"
)

// schemaPrefix is the literal marker opening an optional header line.
const schemaPrefix = "@schema"

// Encoder writes TOON documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// EncodeObject writes the object-mode TOON encoding of v to the stream.
func (e *Encoder) EncodeObject(v any) error {
	s, err := EncodeObject(v, e.opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(e.w, s)
	return err
}

// EncodeArray writes the array-mode TOON encoding of v to the stream.
func (e *Encoder) EncodeArray(v any) error {
	s, err := EncodeArray(v, e.opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(e.w, s)
	return err
}

// EncodeObject converts a single object into TOON text.
//
// The object is recursively flattened first: nested object values extend
// the key path with the nested separator, and array values collapse into
// one comma-joined scalar. The output is an optional @schema header
// followed by exactly one data line.
//
// v may be a Document, a map with string keys, or a struct (fields honor
// `toon:"name,omitempty"` tags). Map keys are encoded in sorted order;
// Document and struct inputs keep their own order.
func EncodeObject(v any, opts ...Option) (string, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return "", err
	}

	model, err := modelValue(reflect.ValueOf(v))
	if err != nil {
		return "", err
	}
	doc, ok := model.(Document)
	if !ok {
		return "", &ShapeError{Expected: "object", Value: v}
	}

	flat := flatten(doc, "", o.nestedSep)

	var sb strings.Builder
	writeSchema(&sb, flat.Keys(), &o)
	for i, e := range flat {
		if i > 0 {
			sb.WriteRune(o.delimiter)
		}
		sb.WriteString(scan.EscapeField(stringifyField(e.Value), o.delimiter))
	}
	return sb.String(), nil
}

// EncodeArray converts an array of objects into TOON text, one data line
// per element.
//
// Unlike object mode, array mode does not flatten nested objects: the
// column set is the first element's own top-level keys, and every element
// is serialized against that fixed key list, with missing fields encoded
// as empty strings. An empty array encodes to an empty string.
func EncodeArray(v any, opts ...Option) (string, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return "", err
	}

	model, err := modelValue(reflect.ValueOf(v))
	if err != nil {
		return "", err
	}
	arr, ok := model.([]any)
	if !ok {
		return "", &ShapeError{Expected: "array", Value: v}
	}
	if len(arr) == 0 {
		return "", nil
	}

	first, ok := arr[0].(Document)
	if !ok {
		return "", &ShapeError{Expected: "array of objects", Value: v}
	}
	keys := first.Keys()

	var sb strings.Builder
	writeSchema(&sb, keys, &o)
	for i, elem := range arr {
		if i > 0 {
			sb.WriteString("\n")
		}
		doc, _ := elem.(Document)
		for j, key := range keys {
			if j > 0 {
				sb.WriteRune(o.delimiter)
			}
			sb.WriteString(scan.EscapeField(stringifyField(doc.Value(key)), o.delimiter))
		}
	}
	return strings.TrimRight(sb.String(), " \t\n"), nil
}

func writeSchema(sb *strings.Builder, keys []string, o *options) {
	if !o.includeSchema {
		return
	}
	sb.WriteString(schemaPrefix)
	for _, key := range keys {
		sb.WriteRune(o.delimiter)
		sb.WriteString(key)
	}
	sb.WriteString("\n")
}

// flatten collapses a nested document into a single level keyed by joined
// ancestor paths. Key order is first-occurrence traversal order, and leaf
// paths are unique because each already encodes its full ancestry.
func flatten(doc Document, prefix, sep string) Document {
	flat := make(Document, 0, len(doc))
	for _, e := range doc {
		key := e.Key
		if prefix != "" {
			key = prefix + sep + e.Key
		}
		switch val := e.Value.(type) {
		case Document:
			flat = append(flat, flatten(val, key, sep)...)
		case []any:
			flat = append(flat, Entry{Key: key, Value: joinArray(val)})
		default:
			flat = append(flat, Entry{Key: key, Value: e.Value})
		}
	}
	return flat
}

// joinArray collapses an array value into a single comma-joined scalar.
// Elements are stringified, not flattened; this is the lossy half of the
// format's round trip.
func joinArray(elems []any) string {
	parts := make([]string, len(elems))
	for i, elem := range elems {
		parts[i] = stringifyField(elem)
	}
	return strings.Join(parts, ",")
}

// stringifyField renders a model value as field text. Nil becomes the
// empty string, numbers render without exponent noise, and residual
// container values fall back to compact JSON text.
func stringifyField(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		return joinArray(val)
	case Document:
		b, err := ToJSON(val)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return cast.ToString(val)
	}
}
