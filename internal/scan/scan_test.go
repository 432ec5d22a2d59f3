package scan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JesusRosaB/go-toon/internal/scan"
)

func TestFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty line", "", []string{""}},
		{"single field", "hello", []string{"hello"}},
		{"plain fields", "a|b|c", []string{"a", "b", "c"}},
		{"empty fields", "a||c", []string{"a", "", "c"}},
		{"trailing delimiter", "a|b|", []string{"a", "b", ""}},
		{"leading delimiter", "|b", []string{"", "b"}},
		{"quoted delimiter", `"a|b"|c`, []string{"a|b", "c"}},
		{"quoted newline", "\"a\nb\"|c", []string{"a\nb", "c"}},
		{"doubled quote", `"say ""hi"""|x`, []string{`say "hi"`, "x"}},
		{"quoted field with everything", `"a|""b"""`, []string{`a|"b"`}},
		{"bare quote flips state", `a"b|c"d`, []string{"ab|cd"}},
		{"unterminated quote", `"abc`, []string{"abc"}},
		{"unicode content", "héllo|wörld", []string{"héllo", "wörld"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, scan.Fields(tt.line, '|'))
		})
	}
}

func TestFields_CustomDelimiter(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, scan.Fields("a;b;c", ';'))
	// The default delimiter is plain content for other delimiters.
	require.Equal(t, []string{"a|b", "c"}, scan.Fields("a|b;c", ';'))
}

func TestEscapeField(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		delim rune
	}{
		{"plain value", "hello", "hello", '|'},
		{"empty value", "", "", '|'},
		{"contains delimiter", "a|b", `"a|b"`, '|'},
		{"contains newline", "a\nb", "\"a\nb\"", '|'},
		{"quote without delimiter is untouched", `say "hi"`, `say "hi"`, '|'},
		{"delimiter and quotes", `a|"b"`, `"a|""b"""`, '|'},
		{"other delimiter", "a;b", `"a;b"`, ';'},
		{"default delimiter ignored for other delim", "a|b", "a|b", ';'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, scan.EscapeField(tt.in, tt.delim))
		})
	}
}

// Escaped values must come back out of the tokenizer byte for byte.
func TestEscapeField_FieldsInverse(t *testing.T) {
	values := []string{
		"plain",
		"",
		"a|b",
		"a\nb",
		`a|"quoted"|b`,
		`""`,
		"|||",
		"trailing|",
	}
	for _, v := range values {
		line := scan.EscapeField(v, '|') + "|" + scan.EscapeField(v, '|')
		require.Equal(t, []string{v, v}, scan.Fields(line, '|'), "value %q", v)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single line", "a|b", []string{"a|b"}},
		{"plain lines", "a\nb\nc", []string{"a", "b", "c"}},
		{"quoted newline stays on one line", "\"a\nb\"|c\nd", []string{"\"a\nb\"|c", "d"}},
		{"doubled quotes do not end the field", "\"a\"\"\nb\"\nc", []string{"\"a\"\"\nb\"", "c"}},
		{"empty text", "", []string{""}},
		{"trailing newline", "a\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, scan.Lines(tt.text))
		})
	}
}

func TestNeedsQuoting(t *testing.T) {
	require.False(t, scan.NeedsQuoting("plain", '|'))
	require.True(t, scan.NeedsQuoting("a|b", '|'))
	require.True(t, scan.NeedsQuoting("a\nb", '|'))
	require.False(t, scan.NeedsQuoting(`has "quotes"`, '|'))
}
