package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pressDigits(st State, digits string) State {
	for _, d := range digits {
		st = st.Digit(d)
	}
	return st
}

func TestLeadingZero(t *testing.T) {
	st := New().Digit('0').Digit('0')
	assert.Equal(t, "0", st.Display())

	st = st.Digit('7')
	assert.Equal(t, "7", st.Display())

	st = pressDigits(New(), "120")
	assert.Equal(t, "120", st.Display())
}

func TestOperatorReplacesOperator(t *testing.T) {
	st := New().Digit('1').Operator(KeyAdd).Operator(KeyMul)
	assert.Equal(t, "1×", st.Display())
}

func TestOperatorOnFreshDisplaySeedsZero(t *testing.T) {
	st := New().Operator(KeySub)
	assert.Equal(t, "0−", st.Display())
}

func TestParenToggle(t *testing.T) {
	st := New().Digit('2').Paren()
	assert.Equal(t, "2×(", st.Display())

	st = st.Digit('3').Paren()
	assert.Equal(t, "2×(3)", st.Display())
}

func TestParenAfterOperatorOpensPlain(t *testing.T) {
	st := New().Digit('2').Operator(KeyAdd).Paren()
	assert.Equal(t, "2+(", st.Display())
}

func TestSquareOnlyAfterNumberOrParen(t *testing.T) {
	st := New().Square()
	assert.Equal(t, "0", st.Display())

	st = New().Digit('5').Square()
	assert.Equal(t, "5²", st.Display())
}

func TestSquareRootImplicitMultiplication(t *testing.T) {
	st := New().SquareRoot()
	assert.Equal(t, "√", st.Display())

	st = New().Digit('2').SquareRoot()
	assert.Equal(t, "2×√", st.Display())
}

func TestPercentOnlyAfterNumberOrParen(t *testing.T) {
	st := New().Digit('5').Operator(KeyAdd).Percent()
	assert.Equal(t, "5+", st.Display())

	st = pressDigits(New(), "50").Percent()
	assert.Equal(t, "50%", st.Display())
}

func TestDecimalOncePerNumericRun(t *testing.T) {
	st := New().Digit('1').Decimal().Decimal()
	assert.Equal(t, "1.", st.Display())

	st = st.Digit('5').Operator(KeyAdd).Digit('2').Decimal()
	assert.Equal(t, "1.5+2.", st.Display())

	st = st.Decimal()
	assert.Equal(t, "1.5+2.", st.Display())
}

func TestDeleteCollapsesToZero(t *testing.T) {
	st := New().Digit('1').Delete()
	assert.Equal(t, "0", st.Display())
	assert.True(t, st.AwaitNew)

	st = pressDigits(New(), "12").Delete()
	assert.Equal(t, "1", st.Display())
}

func TestEqualsSeedsNextExpression(t *testing.T) {
	st := New().Digit('2').Operator(KeyAdd).Digit('3').Operator(KeyMul).Digit('4').Equals()
	assert.Equal(t, "14", st.Display())
	assert.True(t, st.AwaitNew)

	// Operator keeps the result; a digit starts over.
	withOp := st.Operator(KeyAdd).Digit('1').Equals()
	assert.Equal(t, "15", withOp.Display())

	fresh := st.Digit('9')
	assert.Equal(t, "9", fresh.Display())
}

func TestEqualsSquare(t *testing.T) {
	st := New().Digit('5').Square().Equals()
	assert.Equal(t, "25", st.Display())
}

func TestEqualsSquareRoot(t *testing.T) {
	st := New().SquareRoot().Digit('9').Equals()
	assert.Equal(t, "3", st.Display())
}

func TestEqualsPercent(t *testing.T) {
	st := pressDigits(New(), "100").Operator(KeyAdd)
	st = pressDigits(st, "50").Percent().Equals()
	assert.Equal(t, "100.5", st.Display())
}

func TestDivisionByZeroShowsError(t *testing.T) {
	st := New().Digit('5').Operator(KeyDiv).Digit('0').Equals()
	assert.True(t, st.Err)
	assert.Equal(t, "Error", st.Display())

	// Terminal until reset: operators are ignored, a digit restarts.
	assert.Equal(t, "Error", st.Operator(KeyAdd).Display())
	assert.Equal(t, "3", st.Digit('3').Display())
	assert.Equal(t, "0", st.Delete().Display())
}

func TestUnbalancedParensShowInvalid(t *testing.T) {
	st := State{Expr: "(1+2"}
	st = st.Equals()
	assert.True(t, st.Err)
	assert.Equal(t, "Invalid expression", st.Display())
}

func TestClearResets(t *testing.T) {
	st := pressDigits(New(), "123").Operator(KeyAdd).Clear()
	assert.Equal(t, "0", st.Display())
	assert.True(t, st.AwaitNew)
	assert.False(t, st.Err)
}
