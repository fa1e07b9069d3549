package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode"

	"pocketcalc/internal/calc"
	"pocketcalc/internal/session"
)

const usage = "keys: 0-9 . + - * / % ( ) s=√ q=² d=delete c=clear ="

func main() {
	exprPtr := flag.String("e", "", "evaluate a single expression and exit")
	flag.Parse()

	if *exprPtr != "" {
		fmt.Println(calc.Format(calc.Evaluate(*exprPtr)))
		return
	}

	fmt.Println(usage)
	st := session.New()
	fmt.Println(st.Display())

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		for _, key := range strings.TrimSpace(sc.Text()) {
			st = press(st, key)
		}
		fmt.Println(st.Display())
	}
}

// press maps one typed key onto the keypad state machine. ASCII
// operators stand in for the display glyphs so the REPL is typeable.
func press(st session.State, key rune) session.State {
	switch {
	case unicode.IsDigit(key):
		return st.Digit(key)
	case key == '+':
		return st.Operator(session.KeyAdd)
	case key == '-' || key == session.KeySub:
		return st.Operator(session.KeySub)
	case key == '*' || key == session.KeyMul:
		return st.Operator(session.KeyMul)
	case key == '/' || key == session.KeyDiv:
		return st.Operator(session.KeyDiv)
	case key == '(' || key == ')':
		return st.Paren()
	case key == '.':
		return st.Decimal()
	case key == '%':
		return st.Percent()
	case key == 's' || key == '√':
		return st.SquareRoot()
	case key == 'q' || key == '²':
		return st.Square()
	case key == 'd':
		return st.Delete()
	case key == 'c':
		return st.Clear()
	case key == '=':
		return st.Equals()
	}
	return st
}
