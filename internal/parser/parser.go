package parser

import (
	"errors"

	"github.com/informitas/stack"

	op "pocketcalc/internal/operation"
)

var ErrUnbalancedParens = errors.New("unbalanced parentheses")

// ToPostfix converts an infix token sequence to postfix order with the
// shunting-yard algorithm. Operators are left-associative: an incoming
// operator pops every stacked operator of equal or higher priority. A
// function sticks to the operator stack until its argument group
// closes (or input ends), so "sqrt(9)+1" applies sqrt to 9 while
// "sqrt9+1" applies it to the whole sum.
//
// A closing paren without a matching opener, or an opener still on the
// stack at end of input, fails with ErrUnbalancedParens.
func ToPostfix(tokens []Token) ([]Token, error) {
	res := make([]Token, 0, len(tokens))
	s := stack.NewStack[Token]()

	for _, tok := range tokens {
		switch tok.Kind {
		case Number:
			res = append(res, tok)
		case Function, LeftParen:
			s.Push(tok)
		case RightParen:
			for {
				if s.IsEmpty() {
					return nil, ErrUnbalancedParens
				}
				top, _ := s.Pop()
				if top.Kind == LeftParen {
					break
				}
				res = append(res, top)
			}
			if top, err := s.Top(); err == nil && top.Kind == Function {
				fn, _ := s.Pop()
				res = append(res, fn)
			}
		case Operator:
			for !s.IsEmpty() {
				top, _ := s.Top()
				if top.Kind != Operator || op.OperationPriority[top.Text] < op.OperationPriority[tok.Text] {
					break
				}
				popped, _ := s.Pop()
				res = append(res, popped)
			}
			s.Push(tok)
		}
	}

	for !s.IsEmpty() {
		top, _ := s.Pop()
		if top.Kind == LeftParen {
			return nil, ErrUnbalancedParens
		}
		res = append(res, top)
	}

	return res, nil
}
