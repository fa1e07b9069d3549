package parser

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var ErrMalformedToken = errors.New("malformed token")

const sqrtKeyword = "sqrt"

// scanNumber consumes the longest prefix of expr that reads as a
// decimal literal: digits with at most one decimal point.
func scanNumber(expr string) string {
	var (
		result string
		dotted bool
	)

	sc := bufio.NewScanner(strings.NewReader(expr))
	sc.Split(bufio.ScanRunes)
	for sc.Scan() {
		if sc.Text() == "." && !dotted {
			dotted = true
			result += sc.Text()
			continue
		}
		if _, err := strconv.Atoi(sc.Text()); err == nil {
			result += sc.Text()
			continue
		}
		break
	}

	return result
}

// Tokenize splits a canonical expression into tokens, ignoring
// whitespace. A minus counts as part of a number literal when it sits
// at expression start, after "(" or after another operator and a digit
// or decimal point follows; everywhere else it is the subtraction
// operator. Anything that matches no token class fails with
// ErrMalformedToken.
func Tokenize(expr string) ([]Token, error) {
	expr = stripSpace(expr)

	tokens := make([]Token, 0, len(expr))
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case isDigit(c) || c == '.':
			num := scanNumber(expr[i:])
			if _, err := strconv.ParseFloat(num, 64); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedToken, num)
			}
			tokens = append(tokens, numberToken(num))
			i += len(num)
		case c == '-' && unaryMinus(tokens) && i+1 < len(expr) && (isDigit(expr[i+1]) || expr[i+1] == '.'):
			num := scanNumber(expr[i+1:])
			if _, err := strconv.ParseFloat(num, 64); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedToken, "-"+num)
			}
			tokens = append(tokens, numberToken("-"+num))
			i += 1 + len(num)
		case strings.HasPrefix(expr[i:], sqrtKeyword):
			tokens = append(tokens, Token{Kind: Function, Text: sqrtKeyword})
			i += len(sqrtKeyword)
		case c == '(':
			tokens = append(tokens, Token{Kind: LeftParen, Text: "("})
			i++
		case c == ')':
			tokens = append(tokens, Token{Kind: RightParen, Text: ")"})
			i++
		case strings.IndexByte("+-*/^", c) >= 0:
			tokens = append(tokens, operatorToken(string(c)))
			i++
		default:
			r, _ := utf8.DecodeRuneInString(expr[i:])
			return nil, fmt.Errorf("%w: unexpected %q", ErrMalformedToken, r)
		}
	}

	return tokens, nil
}

func unaryMinus(tokens []Token) bool {
	if len(tokens) == 0 {
		return true
	}
	last := tokens[len(tokens)-1]
	return last.Kind == Operator || last.Kind == LeftParen
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func stripSpace(expr string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expr)
}
