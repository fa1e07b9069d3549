package calc

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/informitas/stack"

	op "pocketcalc/internal/operation"
	"pocketcalc/internal/parser"
)

// ErrInvalidExpression reports a stack arity mismatch: an operator or
// function short of operands, or leftover values once the postfix
// sequence is exhausted.
var ErrInvalidExpression = errors.New("invalid expression")

// EvaluatePostfix reduces a postfix token sequence on a value stack.
// Binary operands pop b then a and compute a OP b.
func EvaluatePostfix(tokens []parser.Token) (float64, error) {
	locals := stack.NewStack[float64]()

	for _, tok := range tokens {
		switch tok.Kind {
		case parser.Number:
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: bad number %q", ErrInvalidExpression, tok.Text)
			}
			locals.Push(v)
		case parser.Operator:
			oper, ok := op.Binary(tok.Text)
			if !ok {
				return 0, fmt.Errorf("%w: unknown operator %q", ErrInvalidExpression, tok.Text)
			}
			if locals.Size() < 2 {
				return 0, fmt.Errorf("%w: operator %q needs two operands", ErrInvalidExpression, tok.Text)
			}
			b, _ := locals.Pop()
			a, _ := locals.Pop()
			v, err := oper.Exec(a, b)
			if err != nil {
				return 0, err
			}
			locals.Push(v)
		case parser.Function:
			fn, ok := op.Prefix(tok.Text)
			if !ok {
				return 0, fmt.Errorf("%w: unknown function %q", ErrInvalidExpression, tok.Text)
			}
			if locals.IsEmpty() {
				return 0, fmt.Errorf("%w: function %q needs an operand", ErrInvalidExpression, tok.Text)
			}
			a, _ := locals.Pop()
			v, err := fn.Exec(a)
			if err != nil {
				return 0, err
			}
			locals.Push(v)
		default:
			return 0, fmt.Errorf("%w: unexpected token %q", ErrInvalidExpression, tok.Text)
		}
	}

	if locals.Size() != 1 {
		return 0, fmt.Errorf("%w: not all numbers are involved in mathematical operations", ErrInvalidExpression)
	}
	res, _ := locals.Pop()
	return res, nil
}
