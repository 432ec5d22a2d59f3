/*
Package toon encodes and decodes TOON (Token-Oriented Object Notation), a
compact delimiter-based text format that reduces token counts when
structured data is embedded in prompts for language models. The API
mirrors the standard `encoding/json` package where the format allows.

A TOON document is an optional schema header followed by delimited data
lines:

	@schema|name|age|city
	John|30|Madrid

Encoding has two modes. Object mode flattens nested objects into dotted
key paths and emits exactly one data line:

	doc := toon.Document{
		{Key: "user", Value: toon.Document{
			{Key: "name", Value: "Ana"},
			{Key: "tags", Value: []any{"a", "b"}},
		}},
	}
	out, err := toon.EncodeObject(doc)
	// @schema|user.name|user.tags
	// Ana|a,b

Array mode emits one line per element using the first element's top-level
keys as the column set, without flattening nested objects. The asymmetry
is part of the format and is preserved deliberately.

Array values inside an object collapse into a single comma-joined scalar
during flattening. This is lossy: decoding yields the joined string, not
the original array.

Decoding inverts the pipeline. Rows come back as insertion-ordered
Document values (or []Document), with fields coerced to numbers and
booleans per the ParseNumbers and ParseBooleans options and dotted keys
rebuilt into nested Documents. If a scalar already occupies an
intermediate path segment, it is silently replaced by a nested object;
stricter callers should validate key paths up front.

Fields are quoted with double quotes, embedded quotes doubled, only when
a value contains the active delimiter or a newline. Text without a
header decodes with positional field names (field0, field1, ...).

FromJSON and ToJSON bridge JSON bytes to the codec's ordered model, and
DecodeInto maps decoded documents onto Go structs via `toon` field tags.

Both pipelines are pure and stateless: concurrent calls need no
coordination.
*/
package toon
