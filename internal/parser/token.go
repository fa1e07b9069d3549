package parser

type TokenKind int

const (
	Number TokenKind = iota
	Operator
	Function
	LeftParen
	RightParen
)

// Token is one lexical unit of a canonical expression. Number tokens
// keep their literal text and are guaranteed to parse to a finite
// float64.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string { return t.Text }

func operatorToken(symbol string) Token { return Token{Kind: Operator, Text: symbol} }

func numberToken(literal string) Token { return Token{Kind: Number, Text: literal} }
