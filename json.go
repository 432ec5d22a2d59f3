package toon

import (
	"fmt"
	"math"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// FromJSON parses JSON bytes into the codec's data model: objects become
// Documents with their key order preserved, arrays become []any, and
// numbers narrow to int64 when integral. The result is ready for
// EncodeObject or EncodeArray without losing field order the way a
// map[string]any round trip would.
func FromJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v, json.WithUnmarshalers(unmarshalers())); err != nil {
		return nil, fmt.Errorf("toon: parse json: %w", err)
	}
	return v, nil
}

// ToJSON marshals a model value (including Decode output) to JSON bytes,
// writing Document keys in insertion order.
func ToJSON(v any) ([]byte, error) {
	b, err := json.Marshal(v, json.WithMarshalers(marshalers()))
	if err != nil {
		return nil, fmt.Errorf("toon: marshal json: %w", err)
	}
	return b, nil
}

// EncodeJSONObject converts JSON object bytes directly into TOON text.
func EncodeJSONObject(data []byte, opts ...Option) (string, error) {
	v, err := FromJSON(data)
	if err != nil {
		return "", err
	}
	return EncodeObject(v, opts...)
}

// EncodeJSONArray converts JSON array bytes directly into TOON text.
func EncodeJSONArray(data []byte, opts ...Option) (string, error) {
	v, err := FromJSON(data)
	if err != nil {
		return "", err
	}
	return EncodeArray(v, opts...)
}

// unmarshalers wires the ordered-model decoding:
//   - any  -> objects as Document, arrays as []any, integral numbers as int64
//   - *Document -> direct ordered object decoding
func unmarshalers() *json.Unmarshalers {
	return json.JoinUnmarshalers(
		json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *any) error {
			switch dec.PeekKind() {
			case '{':
				doc, err := decodeObject(dec)
				if err != nil {
					return err
				}
				*v = doc
				return nil
			case '[':
				arr, err := decodeArray(dec)
				if err != nil {
					return err
				}
				*v = arr
				return nil
			case '0':
				var f float64
				if err := json.UnmarshalDecode(dec, &f); err != nil {
					return fmt.Errorf("read number: %w", err)
				}
				if f == math.Trunc(f) && !math.IsInf(f, 0) &&
					f >= math.MinInt64 && f < math.MaxInt64 {
					*v = int64(f)
				} else {
					*v = f
				}
				return nil
			default:
				return json.SkipFunc
			}
		}),
		json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *Document) error {
			if dec.PeekKind() != '{' {
				return json.SkipFunc
			}
			doc, err := decodeObject(dec)
			if err != nil {
				return err
			}
			*v = doc
			return nil
		}),
	)
}

// marshalers writes a Document as a JSON object in entry order.
func marshalers() *json.Marshalers {
	return json.MarshalToFunc(func(enc *jsontext.Encoder, doc Document) error {
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, e := range doc {
			if err := enc.WriteToken(jsontext.String(e.Key)); err != nil {
				return err
			}
			if err := json.MarshalEncode(enc, e.Value); err != nil {
				return fmt.Errorf("marshal value for key %q: %w", e.Key, err)
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	})
}

// decodeObject decodes a JSON object into a Document, preserving key
// order.
func decodeObject(dec *jsontext.Decoder) (Document, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	doc := Document{}
	for dec.PeekKind() != '}' {
		var k string
		if err := json.UnmarshalDecode(dec, &k); err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		var v any
		if err := json.UnmarshalDecode(dec, &v); err != nil {
			return nil, fmt.Errorf("read object value for key %q: %w", k, err)
		}
		doc = append(doc, Entry{Key: k, Value: v})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return doc, nil
}

// decodeArray decodes a JSON array into []any.
func decodeArray(dec *jsontext.Decoder) ([]any, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	arr := make([]any, 0)
	for dec.PeekKind() != ']' {
		var elem any
		if err := json.UnmarshalDecode(dec, &elem); err != nil {
			return nil, fmt.Errorf("read array element: %w", err)
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return arr, nil
}
