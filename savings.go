package toon

import (
	"fmt"

	"github.com/JesusRosaB/go-toon/internal/scan"
)

// EstimateTokens approximates the number of LLM tokens needed for s using
// the common four-characters-per-token heuristic, rounded up. It is a
// deliberate stand-in for a real tokenizer; swap this function out to get
// exact counts for a specific model.
func EstimateTokens(s string) int {
	return (len(s) + 3) / 4
}

// Savings reports the estimated token reduction of toonText relative to
// jsonText as a fraction in [0, 1]. An empty jsonText reports zero rather
// than dividing by zero.
func Savings(jsonText, toonText string) float64 {
	jsonTokens := EstimateTokens(jsonText)
	if jsonTokens == 0 {
		return 0
	}
	toonTokens := EstimateTokens(toonText)
	return float64(jsonTokens-toonTokens) / float64(jsonTokens)
}

// SavingsPercent formats Savings as a percentage string with one decimal
// place, e.g. "41.7%". Both counts are heuristic estimates, not exact
// tokenizer output.
func SavingsPercent(jsonText, toonText string) string {
	return fmt.Sprintf("%.1f%%", Savings(jsonText, toonText)*100)
}

// FieldNeedsQuoting reports whether value would be quoted when written as
// a field of a document using delimiter. It exposes the wire contract's
// quoting trigger for callers that pre-validate data.
func FieldNeedsQuoting(value, delimiter string) (bool, error) {
	o := defaultOptions()
	if err := Delimiter(delimiter)(&o); err != nil {
		return false, err
	}
	return scan.NeedsQuoting(value, o.delimiter), nil
}
