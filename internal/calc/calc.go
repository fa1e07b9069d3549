// Package calc evaluates infix arithmetic expressions as typed on the
// calculator keypad: the four basic operators, parentheses, square,
// square root and percent decorations.
package calc

import (
	"math"
	"strconv"
	"strings"

	"pocketcalc/internal/parser"
)

// ErrorMarker is what the display shows for a failed evaluation.
const ErrorMarker = "Error"

// EvaluateStrict runs the full pipeline (preprocess, tokenize, convert
// to postfix, reduce) and reports which stage rejected the input. An
// empty or blank expression evaluates to 0.
func EvaluateStrict(raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	tokens, err := parser.Tokenize(parser.Preprocess(raw))
	if err != nil {
		return 0, err
	}
	postfix, err := parser.ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return EvaluatePostfix(postfix)
}

// Evaluate collapses every failure kind into a NaN sentinel. Callers
// that only need "worked or not" check math.IsNaN on the result.
func Evaluate(raw string) float64 {
	res, err := EvaluateStrict(raw)
	if err != nil {
		return math.NaN()
	}
	return res
}

// Format renders a result for the display: integral values without a
// decimal point, fractional ones with up to ten decimal places and
// trailing zeros trimmed, non-finite values as the error marker.
func Format(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ErrorMarker
	}
	if value == math.Trunc(value) && math.Abs(value) < 1e18 {
		return strconv.FormatInt(int64(value), 10)
	}
	s := strconv.FormatFloat(value, 'f', 10, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// IsValidExpression is a cheap pre-check that parentheses match: the
// running depth never goes negative and ends at zero.
func IsValidExpression(expr string) bool {
	depth := 0
	for _, r := range expr {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
