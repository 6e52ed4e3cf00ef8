package calc

import (
	"errors"
	"fmt"

	"go.skia.org/kaleido/go/lexer"
)

// ErrUnexpectedEnd is returned when the expression stops short of a complete
// form, e.g. "2 +" or an empty token slice.
var ErrUnexpectedEnd = errors.New("unexpected end of expression")

// UnexpectedTokenError is returned when a token cannot appear where it does:
// an operator where a number is expected, an identifier that is not a
// built-in function, a missing parenthesis, or leftover tokens after a
// complete expression.
type UnexpectedTokenError struct {
	Token lexer.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %s", e.Token)
}

// ArithmeticError is returned when an operation has no representable result:
// division or modulo by zero, float math producing NaN or an infinity, or a
// literal that does not fit its type. Token is the operator or literal
// responsible, for its position.
type ArithmeticError struct {
	Token  lexer.Token
	Reason string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Reason, e.Token.Line, e.Token.Column)
}
