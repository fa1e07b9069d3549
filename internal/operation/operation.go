package op

var (
	OpenParen   = openParen{}
	ClosedParen = closeParen{}
	Add         = add{}
	Sub         = sub{}
	Mult        = mult{}
	Div         = div{}
	Pow         = pow{}
	Sqrt        = sqrt{}
)

var Operands = []Operand{OpenParen, ClosedParen, Add, Sub, Mult, Div, Pow, Sqrt}

// OperationPriority ranks how tightly an operator binds; higher pops
// earlier during infix-to-postfix conversion. Parens rank 0 so they
// never get popped by an operator comparison.
var OperationPriority = map[string]int{
	OpenParen.Symbol():   0,
	ClosedParen.Symbol(): 0,
	Add.Symbol():         1,
	Sub.Symbol():         1,
	Mult.Symbol():        2,
	Div.Symbol():         2,
	Pow.Symbol():         3,
}

// Binary resolves an operator symbol to its implementation.
func Binary(symbol string) (BinaryOperand, bool) {
	for _, o := range Operands {
		if bin, ok := o.(BinaryOperand); ok && o.Symbol() == symbol {
			return bin, true
		}
	}
	return nil, false
}

// Prefix resolves a function keyword to its implementation.
func Prefix(symbol string) (PrefixOperand, bool) {
	for _, o := range Operands {
		if pre, ok := o.(PrefixOperand); ok && o.Symbol() == symbol {
			return pre, true
		}
	}
	return nil, false
}
