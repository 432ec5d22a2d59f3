// Package scan implements the TOON field layer: splitting a delimited
// data line into raw field strings and the inverse escaping applied when
// fields are written.
//
// The two halves form an exact inverse pair. EscapeField quotes a value
// iff it contains the active delimiter or a newline, doubling embedded
// quote characters; Fields undoes that with a two-state tokenizer.
package scan

import "strings"

const quote = '"'

// Fields splits line into raw field values on delim, honoring
// double-quoted fields with doubled-quote escapes.
//
// The tokenizer has two states. Outside quotes the delimiter ends the
// current field; a quote character switches into the quoted state without
// being emitted. Inside quotes a doubled quote emits one literal quote, a
// lone quote switches back out, and the delimiter is ordinary content.
// The trailing field is always emitted, so Fields never returns an empty
// slice for a non-empty line.
func Fields(line string, delim rune) []string {
	var (
		fields   []string
		buf      strings.Builder
		inQuotes bool
	)

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case inQuotes && ch == quote:
			if i+1 < len(runes) && runes[i+1] == quote {
				// Doubled quote: one literal quote character.
				buf.WriteRune(quote)
				i++
				continue
			}
			inQuotes = false
		case inQuotes:
			buf.WriteRune(ch)
		case ch == quote:
			inQuotes = true
		case ch == delim:
			fields = append(fields, buf.String())
			buf.Reset()
		default:
			buf.WriteRune(ch)
		}
	}
	fields = append(fields, buf.String())
	return fields
}

// Lines splits text into data lines on newlines that sit outside quoted
// fields, so a quoted field containing a literal newline stays on one
// logical line. Doubled quotes inside a quoted field do not end it.
func Lines(text string) []string {
	var (
		lines    []string
		buf      strings.Builder
		inQuotes bool
	)

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case inQuotes && ch == quote:
			if i+1 < len(runes) && runes[i+1] == quote {
				buf.WriteRune(quote)
				buf.WriteRune(quote)
				i++
				continue
			}
			inQuotes = false
			buf.WriteRune(ch)
		case ch == quote:
			inQuotes = true
			buf.WriteRune(ch)
		case ch == '\n' && !inQuotes:
			lines = append(lines, buf.String())
			buf.Reset()
		default:
			buf.WriteRune(ch)
		}
	}
	lines = append(lines, buf.String())
	return lines
}

// EscapeField returns s ready to be written as a single field of a line
// delimited by delim. The value is wrapped in double quotes, with embedded
// quotes doubled, iff it contains the delimiter or a newline; any other
// value passes through unchanged. Fields inverts this exactly.
func EscapeField(s string, delim rune) string {
	if !strings.ContainsRune(s, delim) && !strings.Contains(s, "\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// NeedsQuoting reports whether EscapeField would quote s for delim.
func NeedsQuoting(s string, delim rune) bool {
	return strings.ContainsRune(s, delim) || strings.Contains(s, "\n")
}
