package parser_test

import (
	"strings"
	"testing"

	"pocketcalc/internal/parser"
)

func TestIgnoreSpace(t *testing.T) {
	compare(t, "2 - 2+2", "2 2 - 2 +", false)
}

func TestProcedureOfActions(t *testing.T) {
	compare(t, "2 + 2 * 2", "2 2 2 * +", false)
	compare(t, "200 / 5 + 1", "200 5 / 1 +", false)
}

func TestChangeOrderByParens(t *testing.T) {
	compare(t, "(1 + 2 * 3) / 4", "1 2 3 * + 4 /", false)
	compare(t, "1 + 2 * 3 / 4", "1 2 3 * 4 / +", false)
}

func TestMultipleParens(t *testing.T) {
	compare(t, "(1 / (2 * 3) / 4) + 5", "1 2 3 * / 4 / 5 +", false)
	compare(t, "(1 - 2) * (3 + 4) / (5 + 6)", "1 2 - 3 4 + * 5 6 + /", false)
}

func TestParenErrors(t *testing.T) {
	compare(t, "1 * 2 + 3)", "", true)
	compare(t, "(1 * 2 + 3", "", true)
}

func TestPowerBindsTightest(t *testing.T) {
	compare(t, "2*3^2", "2 3 2 ^ *", false)
	compare(t, "3^2+1", "3 2 ^ 1 +", false)
}

func TestFunctionApplication(t *testing.T) {
	// With parens the function takes the group; without them it stays
	// on the stack until end of input.
	compare(t, "sqrt(9)+1", "9 sqrt 1 +", false)
	compare(t, "sqrt9+1", "9 1 + sqrt", false)
	compare(t, "sqrt(9+7)*2", "9 7 + sqrt 2 *", false)
}

func TestFloatNumber(t *testing.T) {
	compare(t, "2.5 + 5", "2.5 5 +", false)
}

func TestNegativeNumbers(t *testing.T) {
	compare(t, "-5 + 3", "-5 3 +", false)
	compare(t, "2 * -3", "2 -3 *", false)
	compare(t, "(-4)", "-4", false)
}

func compare(t *testing.T, expr, expectedExpr string, expectErr bool) {
	t.Helper()

	tokens, err := parser.Tokenize(expr)
	if err != nil {
		if !expectErr {
			t.Errorf("error got '%s'", err)
		}
		return
	}
	postfix, err := parser.ToPostfix(tokens)
	if err != nil && !expectErr {
		t.Errorf("error got '%s'", err)
	}
	if err == nil && expectErr {
		t.Errorf("expected error for '%s'", expr)
	}

	parts := make([]string, 0, len(postfix))
	for _, tok := range postfix {
		parts = append(parts, tok.Text)
	}
	if val := strings.Join(parts, " "); val != expectedExpr {
		t.Errorf("value is not '%s', got '%s'", expectedExpr, val)
	}
}
