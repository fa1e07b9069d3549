package op

import (
	"errors"
	"math"
)

var (
	ErrZeroDivision = errors.New("division by zero")
	ErrNegativeSqrt = errors.New("square root of negative number")
)

type Operand interface {
	Symbol() string
	Name() string
}

type MathOperand interface {
	Operand
	math()
}

// BinaryOperand receives its arguments in source order, so for "8-3"
// Exec gets a=8, b=3.
type BinaryOperand interface {
	MathOperand
	Exec(a, b float64) (float64, error)
}

// PrefixOperand is a one-argument function written before its operand,
// e.g. sqrt.
type PrefixOperand interface {
	MathOperand
	Exec(a float64) (float64, error)
}

type OrderOperand interface {
	Operand
	IsStart() bool
}

// ADD
type add struct{}

func (a add) math()          {}
func (a add) Symbol() string { return "+" }
func (a add) Name() string   { return "add" }

func (ad add) Exec(a, b float64) (float64, error) { return a + b, nil }

// SUB
type sub struct{}

func (s sub) math()          {}
func (s sub) Symbol() string { return "-" }
func (s sub) Name() string   { return "sub" }

func (s sub) Exec(a, b float64) (float64, error) { return a - b, nil }

// MULT
type mult struct{}

func (m mult) math()          {}
func (m mult) Symbol() string { return "*" }
func (m mult) Name() string   { return "mult" }

func (m mult) Exec(a, b float64) (float64, error) { return a * b, nil }

// DIV
type div struct{}

func (d div) math()          {}
func (d div) Symbol() string { return "/" }
func (d div) Name() string   { return "div" }

func (d div) Exec(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrZeroDivision
	}
	return a / b, nil
}

// POW
type pow struct{}

func (p pow) math()          {}
func (p pow) Symbol() string { return "^" }
func (p pow) Name() string   { return "pow" }

func (p pow) Exec(a, b float64) (float64, error) { return math.Pow(a, b), nil }

// SQRT
type sqrt struct{}

func (s sqrt) math()          {}
func (s sqrt) Symbol() string { return "sqrt" }
func (s sqrt) Name() string   { return "square root" }

func (s sqrt) Exec(a float64) (float64, error) {
	if a < 0 {
		return 0, ErrNegativeSqrt
	}
	return math.Sqrt(a), nil
}

// OPEN PAREN
type openParen struct{}

func (p openParen) Symbol() string { return "(" }
func (p openParen) Name() string   { return "open paren" }
func (p openParen) IsStart() bool  { return true }

// CLOSE PAREN
type closeParen struct{}

func (p closeParen) Symbol() string { return ")" }
func (p closeParen) Name() string   { return "close paren" }
func (p closeParen) IsStart() bool  { return false }
