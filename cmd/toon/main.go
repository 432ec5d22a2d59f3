// toon - TOON codec CLI tool
//
// Usage:
//
//	toon encode [options] [file]   Convert JSON to TOON
//	toon decode [options] [file]   Convert TOON to JSON
//	toon stats [options] [file]    Report estimated token savings for JSON input
//	toon version                   Print version info
//
// If no file is given, reads from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	toon "github.com/JesusRosaB/go-toon"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	arrayMode := false
	delimiter := "|"
	separator := "."
	noSchema := false
	noNumbers := false
	noBooleans := false
	format := "auto"
	fileArg := ""
	for _, arg := range os.Args[2:] {
		switch {
		case arg == "--array":
			arrayMode = true
		case arg == "--no-schema":
			noSchema = true
		case arg == "--no-numbers":
			noNumbers = true
		case arg == "--no-booleans":
			noBooleans = true
		case strings.HasPrefix(arg, "--delimiter="):
			delimiter = strings.TrimPrefix(arg, "--delimiter=")
		case strings.HasPrefix(arg, "--separator="):
			separator = strings.TrimPrefix(arg, "--separator=")
		case strings.HasPrefix(arg, "--format="):
			format = strings.TrimPrefix(arg, "--format=")
		default:
			if !strings.HasPrefix(arg, "-") && arg != "-" {
				fileArg = arg
			}
		}
	}

	var input io.Reader = os.Stdin
	if fileArg != "" {
		f, err := os.Open(fileArg)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	outputFormat, err := toon.ParseFormat(format)
	if err != nil {
		fatal("%v", err)
	}
	opts := []toon.Option{
		toon.Delimiter(delimiter),
		toon.NestedSeparator(separator),
		toon.IncludeSchema(!noSchema),
		toon.ParseNumbers(!noNumbers),
		toon.ParseBooleans(!noBooleans),
		toon.WithOutputFormat(outputFormat),
	}

	switch cmd {
	case "encode":
		cmdEncode(input, arrayMode, opts)
	case "decode":
		cmdDecode(input, opts)
	case "stats":
		cmdStats(input, arrayMode, opts)
	case "version", "-v", "--version":
		fmt.Printf("toon %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// cmdEncode: JSON -> TOON
func cmdEncode(r io.Reader, arrayMode bool, opts []toon.Option) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}

	var out string
	if arrayMode {
		out, err = toon.EncodeJSONArray(data, opts...)
	} else {
		out, err = toon.EncodeJSONObject(data, opts...)
	}
	if err != nil {
		fatal("encode: %v", err)
	}
	fmt.Println(out)
}

// cmdDecode: TOON -> JSON
func cmdDecode(r io.Reader, opts []toon.Option) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}

	decoded, err := toon.Decode(string(data), opts...)
	if err != nil {
		fatal("decode: %v", err)
	}
	jsonOut, err := toon.ToJSON(decoded)
	if err != nil {
		fatal("to json: %v", err)
	}
	fmt.Println(string(jsonOut))
}

// cmdStats: JSON -> estimated token savings of the TOON rendition
func cmdStats(r io.Reader, arrayMode bool, opts []toon.Option) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}

	var out string
	if arrayMode {
		out, err = toon.EncodeJSONArray(data, opts...)
	} else {
		out, err = toon.EncodeJSONObject(data, opts...)
	}
	if err != nil {
		fatal("encode: %v", err)
	}

	jsonText := string(data)
	fmt.Printf("json tokens (approx): %d\n", toon.EstimateTokens(jsonText))
	fmt.Printf("toon tokens (approx): %d\n", toon.EstimateTokens(out))
	fmt.Printf("estimated savings:    %s\n", toon.SavingsPercent(jsonText, out))
}

func printUsage() {
	fmt.Fprint(os.Stderr, `toon - TOON codec CLI tool

Usage:
  toon encode [options] [file]   Convert JSON to TOON
  toon decode [options] [file]   Convert TOON to JSON
  toon stats [options] [file]    Report estimated token savings for JSON input
  toon version                   Print version info

Options:
  --array             Treat input as an array of objects (encode/stats)
  --delimiter=C       Field delimiter, single character (default: |)
  --separator=S       Nested key separator (default: .)
  --no-schema         Omit the @schema header line (encode)
  --no-numbers        Keep numeric-looking fields as strings (decode)
  --no-booleans       Keep "true"/"false" fields as strings (decode)
  --format=F          Output shaping: auto, object or array (decode)

If no file is given, reads from stdin.

Examples:
  echo '{"name":"John","age":30,"city":"Madrid"}' | toon encode
  # @schema|name|age|city
  # John|30|Madrid

  printf '@schema|name|age\nJohn|30' | toon decode
  # {"name":"John","age":30}

  echo '[{"id":1},{"id":2}]' | toon encode --array
  cat data.json | toon stats
`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "toon: "+format+"\n", args...)
	os.Exit(1)
}
