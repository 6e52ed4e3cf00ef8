// Package calc evaluates arithmetic over the token streams produced by
// go/lexer.
//
// The grammar is evaluated directly during one left to right pass over the
// tokens; no syntax tree is built:
//
//	expression := term
//	term       := factor ( ("+" | "-") factor )*
//	factor     := power ( ("*" | "/" | "%") power )*
//	power      := primary ( "^" power )?
//	primary    := INTEGER | FLOAT | IDENTIFIER "(" expression ")" | "(" expression ")"
//
// Values stay integral until something forces a float: "/" always divides as
// float64, and any operand that is a FLOAT literal or a function result
// promotes the operation. Malformed input and unrepresentable results are
// errors (ErrUnexpectedEnd, UnexpectedTokenError, ArithmeticError), never a
// default value.
package calc

import (
	"errors"
	"math"
	"sort"
	"strconv"

	"go.skia.org/kaleido/go/lexer"
	"go.skia.org/kaleido/go/skerr"
)

// funcs are the built-in functions. One argument, in radians where angular,
// always computed in float64. Never written after package initialization, so
// concurrent evaluations share it freely.
var funcs = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"sqrt": math.Sqrt,
	"ln":   math.Log,
	"exp":  math.Exp,
}

// Functions returns the names of the built-in functions in sorted order.
func Functions() []string {
	ret := make([]string, 0, len(funcs))
	for name := range funcs {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Eval evaluates toks as a single expression and returns its value. The
// slice must not include the EOF token that lexer.ScanAll appends; use
// EvalString when starting from source text. Every token must be consumed:
// a complete expression followed by anything at all fails with an
// UnexpectedTokenError on the first leftover token, since silently ignoring
// a tail would mask malformed input.
func Eval(toks []lexer.Token) (Value, error) {
	c := &cursor{toks: toks}
	v, err := c.expression()
	if err != nil {
		return Value{}, err
	}
	if !c.done() {
		return Value{}, &UnexpectedTokenError{Token: c.toks[c.pos]}
	}
	return v, nil
}

// EvalString tokenizes src and evaluates it as a single expression. Lexical
// garbage is not an error by itself; an UNKNOWN token fails evaluation like
// any other token no grammar rule accepts.
func EvalString(src string) (Value, error) {
	toks := lexer.Tokenize(src)
	v, err := Eval(toks[:len(toks)-1])
	if err != nil {
		return Value{}, skerr.Wrapf(err, "evaluating %q", src)
	}
	return v, nil
}

// cursor is a read position in a token slice. It only moves forward, one
// token per consume, and reading past the end is ErrUnexpectedEnd rather
// than a panic.
type cursor struct {
	toks []lexer.Token
	pos  int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.toks)
}

// peek returns the next token without consuming it.
func (c *cursor) peek() (lexer.Token, error) {
	if c.done() {
		return lexer.Token{}, ErrUnexpectedEnd
	}
	return c.toks[c.pos], nil
}

// next consumes and returns the next token.
func (c *cursor) next() (lexer.Token, error) {
	tok, err := c.peek()
	if err != nil {
		return lexer.Token{}, err
	}
	c.pos++
	return tok, nil
}

// expect consumes the next token, failing unless it has the given kind.
func (c *cursor) expect(kind lexer.Kind) error {
	tok, err := c.next()
	if err != nil {
		return err
	}
	if tok.Kind != kind {
		return &UnexpectedTokenError{Token: tok}
	}
	return nil
}

func (c *cursor) expression() (Value, error) {
	return c.term()
}

// term evaluates factor (("+"|"-") factor)*, left associative.
func (c *cursor) term() (Value, error) {
	v, err := c.factor()
	if err != nil {
		return Value{}, err
	}
	for !c.done() {
		op := c.toks[c.pos]
		if op.Kind != lexer.KindPlus && op.Kind != lexer.KindMinus {
			break
		}
		c.pos++
		rhs, err := c.factor()
		if err != nil {
			return Value{}, err
		}
		if v, err = apply(op, v, rhs); err != nil {
			return Value{}, err
		}
	}
	return v, nil
}

// factor evaluates power (("*"|"/"|"%") power)*, left associative.
func (c *cursor) factor() (Value, error) {
	v, err := c.power()
	if err != nil {
		return Value{}, err
	}
	for !c.done() {
		op := c.toks[c.pos]
		if op.Kind != lexer.KindMultiply && op.Kind != lexer.KindDivide && op.Kind != lexer.KindModulo {
			break
		}
		c.pos++
		rhs, err := c.power()
		if err != nil {
			return Value{}, err
		}
		if v, err = apply(op, v, rhs); err != nil {
			return Value{}, err
		}
	}
	return v, nil
}

// power evaluates primary ("^" power)?. The recursion is on the right, so
// 2 ^ 3 ^ 2 evaluates as 2 ^ (3 ^ 2) = 512.
func (c *cursor) power() (Value, error) {
	v, err := c.primary()
	if err != nil || c.done() {
		return v, err
	}
	op := c.toks[c.pos]
	if op.Kind != lexer.KindPower {
		return v, nil
	}
	c.pos++
	rhs, err := c.power()
	if err != nil {
		return Value{}, err
	}
	return apply(op, v, rhs)
}

// primary evaluates a numeric literal, a built-in function call, or a
// parenthesized expression. There is no unary minus; a negative constant has
// to be spelled as a subtraction.
func (c *cursor) primary() (Value, error) {
	tok, err := c.next()
	if err != nil {
		return Value{}, err
	}
	switch tok.Kind {
	case lexer.KindInteger:
		i, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			// The lexeme is all digits, so the only way to fail is range.
			return Value{}, &ArithmeticError{Token: tok, Reason: "integer literal overflows int64"}
		}
		return NewInt(i), nil
	case lexer.KindFloat:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Value{}, skerr.Wrapf(err, "lexer produced unparseable FLOAT %q", tok.Text)
		}
		if math.IsInf(f, 0) {
			return Value{}, &ArithmeticError{Token: tok, Reason: "float literal overflows float64"}
		}
		// Underflow rounds toward zero and is accepted.
		return NewFloat(f), nil
	case lexer.KindIdentifier:
		fn, ok := funcs[tok.Text]
		if !ok {
			return Value{}, &UnexpectedTokenError{Token: tok}
		}
		if err := c.expect(lexer.KindLeftParen); err != nil {
			return Value{}, err
		}
		arg, err := c.expression()
		if err != nil {
			return Value{}, err
		}
		if err := c.expect(lexer.KindRightParen); err != nil {
			return Value{}, err
		}
		return finite(tok, fn(arg.Float64()))
	case lexer.KindLeftParen:
		v, err := c.expression()
		if err != nil {
			return Value{}, err
		}
		if err := c.expect(lexer.KindRightParen); err != nil {
			return Value{}, err
		}
		return v, nil
	default:
		return Value{}, &UnexpectedTokenError{Token: tok}
	}
}

// apply computes a <op> b. Integer pairs stay integral except under "/",
// which always divides as float64; mixed pairs promote the integer side.
func apply(op lexer.Token, a, b Value) (Value, error) {
	bothInt := !a.IsFloat() && !b.IsFloat()
	switch op.Kind {
	case lexer.KindPlus:
		if bothInt {
			return NewInt(a.Int() + b.Int()), nil
		}
		return finite(op, a.Float64()+b.Float64())
	case lexer.KindMinus:
		if bothInt {
			return NewInt(a.Int() - b.Int()), nil
		}
		return finite(op, a.Float64()-b.Float64())
	case lexer.KindMultiply:
		if bothInt {
			return NewInt(a.Int() * b.Int()), nil
		}
		return finite(op, a.Float64()*b.Float64())
	case lexer.KindDivide:
		if b.Float64() == 0 {
			return Value{}, &ArithmeticError{Token: op, Reason: "division by zero"}
		}
		return finite(op, a.Float64()/b.Float64())
	case lexer.KindModulo:
		if b.Float64() == 0 {
			return Value{}, &ArithmeticError{Token: op, Reason: "modulo by zero"}
		}
		if bothInt {
			return NewInt(a.Int() % b.Int()), nil
		}
		return finite(op, math.Mod(a.Float64(), b.Float64()))
	case lexer.KindPower:
		if bothInt && b.Int() >= 0 {
			return NewInt(ipow(a.Int(), b.Int())), nil
		}
		return finite(op, math.Pow(a.Float64(), b.Float64()))
	}
	return Value{}, skerr.Fmt("no binary operator %s", op)
}

// finite wraps f as a Value, failing if float math produced NaN or an
// infinity, e.g. exp(1000) or sqrt of a negative number.
func finite(tok lexer.Token, f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, &ArithmeticError{Token: tok, Reason: "result is not a finite number"}
	}
	return NewFloat(f), nil
}

// ipow raises a to the b'th power by squaring, staying in int64 the whole
// way. Overflow wraps exactly as a chain of int64 multiplications would.
// b must be nonnegative.
func ipow(a, b int64) int64 {
	var r int64 = 1
	for b > 0 {
		if b&1 == 1 {
			r *= a
		}
		a *= a
		b >>= 1
	}
	return r
}
