package parser

import (
	"regexp"
	"strings"
)

// displaySymbols maps the keypad glyphs onto calculation symbols. The
// symbol sets are disjoint, so replacement order does not matter.
var displaySymbols = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"−", "-",
	"√", "sqrt",
	"²", "^2",
)

var percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

// Preprocess rewrites a raw display expression into canonical form. It
// is total: a malformed input (say a bare "%") passes through unchanged
// and is rejected by Tokenize instead.
//
// A percent suffix expands literally, "50%" -> "50/100", so
// "100+50%" evaluates to 100.5 rather than a percent-of-total 150.
func Preprocess(raw string) string {
	expr := displaySymbols.Replace(raw)
	return percentPattern.ReplaceAllString(expr, "$1/100")
}
