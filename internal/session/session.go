// Package session models the calculator keypad as an immutable state
// value: every keypress takes a snapshot and returns the next one, so
// the display buffer is never mutated in place.
package session

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"pocketcalc/internal/calc"
)

const (
	invalidExpressionText = "Invalid expression"

	// Display glyphs for the four keypad operators.
	KeyAdd = '+'
	KeySub = '−'
	KeyMul = '×'
	KeyDiv = '÷'
)

// State is one snapshot of the keypad. AwaitNew marks that the current
// text is a finished result: the next digit starts a fresh expression,
// while an operator keeps the result as its left operand. Err marks a
// failed evaluation; only a digit, delete or clear leaves it.
type State struct {
	Expr     string
	AwaitNew bool
	Err      bool

	errText string
}

// New returns the initial "0" display.
func New() State { return State{Expr: "0", AwaitNew: true} }

// Display returns the text the shell should render.
func (s State) Display() string {
	if s.Err {
		return s.errText
	}
	if s.Expr == "" {
		return "0"
	}
	return s.Expr
}

// Digit handles the 0-9 keys. A lone leading zero is replaced rather
// than extended, so "07" never appears.
func (s State) Digit(d rune) State {
	if s.Err {
		s = New()
	}
	if s.AwaitNew {
		s.Expr = ""
		s.AwaitNew = false
	}

	switch {
	case s.Expr == "" && d == '0':
		s.Expr = "0"
	case s.Expr == "0":
		s.Expr = string(d)
	default:
		s.Expr += string(d)
	}
	return s
}

// Operator handles the + − × ÷ keys. Pressing an operator right after
// another replaces it; an empty expression is seeded with "0" first.
func (s State) Operator(key rune) State {
	if s.Err {
		return s
	}
	if s.AwaitNew {
		if s.Expr == "" {
			s.Expr = "0"
		}
		s.AwaitNew = false
	}

	if s.Expr == "" {
		s.Expr = "0" + string(key)
		return s
	}
	if last, width := lastRune(s.Expr); isOperatorKey(last) {
		s.Expr = s.Expr[:len(s.Expr)-width] + string(key)
	} else {
		s.Expr += string(key)
	}
	return s
}

// Paren handles the single parenthesis toggle key: it opens while no
// group is pending, closing otherwise. Opening right after a number or
// ")" inserts the implicit multiplication.
func (s State) Paren() State {
	if s.Err {
		return s
	}
	if s.AwaitNew {
		s.Expr = ""
		s.AwaitNew = false
	}

	open := strings.Count(s.Expr, "(")
	closed := strings.Count(s.Expr, ")")
	if open <= closed {
		last, _ := lastRune(s.Expr)
		if s.Expr == "" || isOperatorKey(last) || last == '(' {
			s.Expr += "("
		} else {
			s.Expr += "×("
		}
	} else {
		s.Expr += ")"
	}
	return s
}

// Square appends the ² decoration, valid only after a number or ")".
func (s State) Square() State {
	if s.Err {
		return s
	}
	if s.AwaitNew {
		s.Expr = ""
		s.AwaitNew = false
	}

	if last, _ := lastRune(s.Expr); unicode.IsDigit(last) || last == ')' {
		s.Expr += "²"
	}
	return s
}

// SquareRoot appends √, inserting the implicit multiplication when it
// follows a number or ")".
func (s State) SquareRoot() State {
	if s.Err {
		return s
	}
	if s.AwaitNew {
		s.Expr = ""
		s.AwaitNew = false
	}

	last, _ := lastRune(s.Expr)
	if s.Expr == "" || isOperatorKey(last) {
		s.Expr += "√"
	} else {
		s.Expr += "×√"
	}
	return s
}

// Percent appends %, valid only after a number or ")".
func (s State) Percent() State {
	if s.Err {
		return s
	}
	if s.AwaitNew {
		s.Expr = ""
		s.AwaitNew = false
	}

	if last, _ := lastRune(s.Expr); unicode.IsDigit(last) || last == ')' {
		s.Expr += "%"
	}
	return s
}

// Decimal appends the decimal point unless the numeric run since the
// last operator already has one.
func (s State) Decimal() State {
	if s.Err {
		return s
	}
	if s.AwaitNew {
		s.Expr = "0"
		s.AwaitNew = false
	}

	run := s.Expr
	if idx := strings.LastIndexAny(s.Expr, "+−×÷"); idx >= 0 {
		_, width := utf8.DecodeRuneInString(s.Expr[idx:])
		run = s.Expr[idx+width:]
	}
	if !strings.Contains(run, ".") {
		s.Expr += "."
	}
	return s
}

// Delete removes the last rune; deleting the final one resets the
// display to "0". In the error state it resets the whole calculator.
func (s State) Delete() State {
	if s.Err {
		return New()
	}
	if s.Expr == "" {
		return s
	}

	_, width := lastRune(s.Expr)
	s.Expr = s.Expr[:len(s.Expr)-width]
	if s.Expr == "" {
		s.Expr = "0"
		s.AwaitNew = true
	}
	return s
}

// Clear resets to the initial display.
func (s State) Clear() State { return New() }

// Equals validates and evaluates the expression. On success the
// formatted result becomes the new display and seeds the next
// expression; on failure the state becomes terminal until a digit,
// delete or clear.
func (s State) Equals() State {
	if s.Err || s.Expr == "" {
		return s
	}

	if !calc.IsValidExpression(s.Expr) {
		return State{Err: true, errText: invalidExpressionText}
	}
	res := calc.Evaluate(s.Expr)
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return State{Err: true, errText: calc.ErrorMarker}
	}
	return State{Expr: calc.Format(res), AwaitNew: true}
}

func isOperatorKey(r rune) bool {
	return r == KeyAdd || r == KeySub || r == KeyMul || r == KeyDiv
}

func lastRune(s string) (rune, int) {
	if s == "" {
		return 0, 0
	}
	return utf8.DecodeLastRuneInString(s)
}
