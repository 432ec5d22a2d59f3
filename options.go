package toon

import (
	"fmt"
	"unicode/utf8"
)

// Format selects how Decode shapes its result.
type Format int

const (
	// FormatAuto returns a single Document when exactly one data row was
	// decoded and a []Document otherwise, including the zero-row case.
	FormatAuto Format = iota
	// FormatObject returns the first decoded row, or an empty Document
	// when the input held no rows.
	FormatObject
	// FormatArray always returns the full []Document of decoded rows.
	FormatArray
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatObject:
		return "object"
	case FormatArray:
		return "array"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat converts the wire names "auto", "object" and "array" into a
// Format value.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "auto":
		return FormatAuto, nil
	case "object":
		return FormatObject, nil
	case "array":
		return FormatArray, nil
	}
	return FormatAuto, fmt.Errorf("toon: unknown output format %q", s)
}

// options holds the resolved configuration shared by both directions.
type options struct {
	delimiter     rune
	nestedSep     string
	includeSchema bool
	parseNumbers  bool
	parseBooleans bool
	outputFormat  Format
}

func defaultOptions() options {
	return options{
		delimiter:     '|',
		nestedSep:     ".",
		includeSchema: true,
		parseNumbers:  true,
		parseBooleans: true,
		outputFormat:  FormatAuto,
	}
}

func resolveOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}

// Option configures encoding or decoding. Options not relevant to the
// direction in use are accepted and ignored, so one option list can be
// shared by both sides of a round trip.
type Option func(*options) error

// Delimiter sets the field delimiter. The delimiter must be a single
// character and may not be a double quote or a newline, as both carry
// meaning inside fields.
func Delimiter(s string) Option {
	return func(o *options) error {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) || r == utf8.RuneError {
			return fmt.Errorf("toon: delimiter must be a single character, got %q", s)
		}
		if r == '"' || r == '\n' || r == '\r' {
			return fmt.Errorf("toon: delimiter %q conflicts with field quoting", s)
		}
		o.delimiter = r
		return nil
	}
}

// NestedSeparator sets the string used to join and split hierarchical key
// segments within a flattened key. It must be non-empty.
func NestedSeparator(s string) Option {
	return func(o *options) error {
		if s == "" {
			return fmt.Errorf("toon: nested separator must not be empty")
		}
		o.nestedSep = s
		return nil
	}
}

// IncludeSchema controls whether encoding emits the @schema header line.
func IncludeSchema(include bool) Option {
	return func(o *options) error {
		o.includeSchema = include
		return nil
	}
}

// ParseNumbers controls whether decoding coerces numerically parseable
// fields into numbers.
func ParseNumbers(parse bool) Option {
	return func(o *options) error {
		o.parseNumbers = parse
		return nil
	}
}

// ParseBooleans controls whether decoding coerces the exact fields "true"
// and "false" into booleans.
func ParseBooleans(parse bool) Option {
	return func(o *options) error {
		o.parseBooleans = parse
		return nil
	}
}

// WithOutputFormat sets how Decode shapes its result. See the Format
// constants.
func WithOutputFormat(f Format) Option {
	return func(o *options) error {
		switch f {
		case FormatAuto, FormatObject, FormatArray:
			o.outputFormat = f
			return nil
		}
		return fmt.Errorf("toon: invalid output format %v", f)
	}
}
