package toon

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/JesusRosaB/go-toon/internal/scan"
)

// Decoder reads TOON documents from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// Note: this is a non-streaming implementation. It reads the entire
// reader into memory before parsing.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads all of the input and returns the decoded value. See the
// package-level Decode for the conversion rules.
func (d *Decoder) Decode() (any, error) {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Decode(string(data), d.opts...)
}

// DecodeInto reads all of the input, decodes it, and stores the result in
// the value pointed to by v. See the package-level DecodeInto.
func (d *Decoder) DecodeInto(v any) error {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	return DecodeInto(string(data), v, d.opts...)
}

// Decode parses TOON text into a Document or a []Document, shaped by the
// configured output format.
//
// If the first line starts with "@schema", it declares the ordered field
// names for the data lines that follow. Without a header every line is a
// data line and field names are synthesized positionally as field0,
// field1, ... sized to the first data line.
//
// Each field value is coerced per the ParseNumbers and ParseBooleans
// options, numbers checked first, and assigned through its key path:
// keys containing the nested separator rebuild intermediate Documents.
// An existing scalar at an intermediate segment is silently replaced by
// a fresh Document; see the package documentation.
func Decode(text string, opts ...Option) (any, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return shapeRows(nil, &o), nil
	}

	// Newlines inside quoted fields are content, not row boundaries.
	lines := scan.Lines(trimmed)

	var keys []string
	dataLines := lines
	if strings.HasPrefix(lines[0], schemaPrefix) {
		header := strings.TrimPrefix(lines[0], schemaPrefix)
		header = strings.TrimPrefix(header, string(o.delimiter))
		keys = strings.Split(header, string(o.delimiter))
		dataLines = lines[1:]
	}

	var rows []Document
	for _, line := range dataLines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := scan.Fields(line, o.delimiter)
		if keys == nil {
			keys = syntheticKeys(len(fields))
		}
		row := Document{}
		for i, key := range keys {
			raw := ""
			if i < len(fields) {
				raw = fields[i]
			}
			row = setNestedValue(row, key, coerceValue(raw, &o), o.nestedSep)
		}
		rows = append(rows, row)
	}

	return shapeRows(rows, &o), nil
}

// syntheticKeys names schema-less columns by position.
func syntheticKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "field" + strconv.Itoa(i)
	}
	return keys
}

// coerceValue applies the configured type coercions to a raw field.
// The numeric check runs before the boolean check: "true" fails numeric
// parsing and falls through, so enabling both keeps booleans intact.
func coerceValue(raw string, o *options) any {
	if o.parseNumbers && raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) {
			if f == math.Trunc(f) && !math.IsInf(f, 0) &&
				f >= math.MinInt64 && f < math.MaxInt64 {
				return int64(f)
			}
			return f
		}
	}
	if o.parseBooleans {
		switch raw {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return raw
}

// setNestedValue assigns value at the key path within doc, creating
// intermediate Documents for all but the last path segment. A non-object
// value already sitting at an intermediate segment is replaced by a new
// empty Document.
func setNestedValue(doc Document, key string, value any, sep string) Document {
	segments := strings.Split(key, sep)
	if len(segments) == 1 {
		return doc.Set(key, value)
	}

	head := segments[0]
	child, _ := doc.Value(head).(Document)
	child = setNestedValue(child, strings.Join(segments[1:], sep), value, sep)
	return doc.Set(head, child)
}

// shapeRows applies the output format to the decoded rows.
func shapeRows(rows []Document, o *options) any {
	switch o.outputFormat {
	case FormatObject:
		if len(rows) == 0 {
			return Document{}
		}
		return rows[0]
	case FormatArray:
		if rows == nil {
			return []Document{}
		}
		return rows
	default: // FormatAuto
		if len(rows) == 1 {
			return rows[0]
		}
		if rows == nil {
			return []Document{}
		}
		return rows
	}
}
