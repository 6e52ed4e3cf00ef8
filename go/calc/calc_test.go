package calc

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	assert "github.com/stretchr/testify/require"

	"go.skia.org/kaleido/go/lexer"
	"go.skia.org/kaleido/go/testutils"
)

func TestEvalString(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"2 + 3 * 4 - 5 / 2", "11.5"},
		{"2 ^ 3 ^ 2", "512"},
		{"(2 + 3) * 4", "20"},
		{"10 / 4", "2.5"},
		// True division always produces a float.
		{"4 / 2", "2.0"},
		{"7 % 3", "1"},
		{"0 - 7 % 3", "-1"},
		{"(0 - 7) % 3", "-1"},
		{"7.5 % 2", "1.5"},
		{"2 % 0.5", "0.0"},
		{"2 + 2.0", "4.0"},
		{"3 * 1.5", "4.5"},
		{"2 ^ 10", "1024"},
		{"2 ^ 0", "1"},
		{"0 ^ 0", "1"},
		{"2.0 ^ 2", "4.0"},
		{"2 ^ (0 - 1)", "0.5"},
		{"9 ^ 0.5", "3.0"},
		{"((((5))))", "5"},
		{"3.", "3.0"},
		{".5 + .5", "1.0"},
		{"100 - 30 - 20", "50"},
		{"100 / 10 / 2", "5.0"},
		{"sqrt(16) - 4", "0.0"},
		{"1 # trailing comment", "1"},
		{"2\n+\n2", "4"},
	}
	for _, tc := range testCases {
		v, err := EvalString(tc.input)
		if err != nil {
			t.Fatalf("Failed to evaluate %q: %s", tc.input, err)
		}
		if got, want := v.String(), tc.want; got != want {
			t.Errorf("Wrong value %q: Got %v Want %v", tc.input, got, want)
		}
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEvalStringMath(t *testing.T) {
	testCases := []struct {
		input string
		want  float64
	}{
		{"sin(0)", 0},
		{"sin(0.5) + cos(0)", math.Sin(0.5) + 1},
		{"sin(3.14159265358979 / 2)", 1},
		{"cos(0)", 1},
		{"tan(1)", math.Tan(1)},
		{"sqrt(2)", math.Sqrt2},
		{"ln(exp(2))", 2},
		{"exp(1)", math.E},
		{"sqrt(2 + 2)", 2},
	}
	for _, tc := range testCases {
		v, err := EvalString(tc.input)
		if err != nil {
			t.Fatalf("Failed to evaluate %q: %s", tc.input, err)
		}
		assert.True(t, v.IsFloat(), "%q should produce a float", tc.input)
		if got, want := v.Float64(), tc.want; !near(got, want) {
			t.Errorf("Wrong value %q: Got %v Want %v", tc.input, got, want)
		}
	}
}

func TestEvalStringErrors(t *testing.T) {
	// Expressions that must fail, whatever the exact error.
	testCases := []string{
		"",
		"# nothing but a comment",
		"2 +",
		"* 3",
		"2 + * 3",
		"(2 + 3",
		"2 + 3)",
		"()",
		"2 3",
		"2 $ 3",
		"foo(1)",
		"sinc(1)",
		"sin",
		"sin 1",
		"sin(1",
		"sin()",
		"x + 1",
		"def f(x) x",
		"extern sin(x)",
		"if 1 then 2 else 3",
		"2 < 3",
		"1 != 2",
		"1 / 0 / 0",
		"ln(0)",
		"1, 2",
	}
	for _, tc := range testCases {
		if _, err := EvalString(tc); err == nil {
			t.Fatalf("Expected %q to fail evaluating", tc)
		}
	}
}

func TestEvalStringErrorKinds(t *testing.T) {
	var arithErr *ArithmeticError
	var tokErr *UnexpectedTokenError

	_, err := EvalString("2 +")
	assert.True(t, errors.Is(err, ErrUnexpectedEnd))

	_, err = EvalString("(2 + 3")
	assert.True(t, errors.Is(err, ErrUnexpectedEnd))

	_, err = EvalString("2 / 0")
	assert.True(t, errors.As(err, &arithErr))
	assert.Equal(t, "division by zero", arithErr.Reason)
	assert.Equal(t, lexer.KindDivide, arithErr.Token.Kind)
	assert.Equal(t, 3, arithErr.Token.Column)

	_, err = EvalString("1 / (2 - 2.0)")
	assert.True(t, errors.As(err, &arithErr))
	assert.Equal(t, "division by zero", arithErr.Reason)

	_, err = EvalString("2 % 0")
	assert.True(t, errors.As(err, &arithErr))
	assert.Equal(t, "modulo by zero", arithErr.Reason)

	_, err = EvalString("exp(1000)")
	assert.True(t, errors.As(err, &arithErr))
	assert.Equal(t, "result is not a finite number", arithErr.Reason)

	_, err = EvalString("sqrt(0 - 1)")
	assert.True(t, errors.As(err, &arithErr))
	assert.Equal(t, "result is not a finite number", arithErr.Reason)

	_, err = EvalString("10.0 ^ 1000")
	assert.True(t, errors.As(err, &arithErr))

	_, err = EvalString("99999999999999999999")
	assert.True(t, errors.As(err, &arithErr))
	assert.Equal(t, "integer literal overflows int64", arithErr.Reason)

	_, err = EvalString(strings.Repeat("9", 400) + ".5")
	assert.True(t, errors.As(err, &arithErr))
	assert.Equal(t, "float literal overflows float64", arithErr.Reason)

	_, err = EvalString("foo(1)")
	assert.True(t, errors.As(err, &tokErr))
	assert.Equal(t, lexer.KindIdentifier, tokErr.Token.Kind)
	assert.Equal(t, "foo", tokErr.Token.Text)

	_, err = EvalString("2 + 3 4")
	assert.True(t, errors.As(err, &tokErr))
	assert.Equal(t, "4", tokErr.Token.Text)

	_, err = EvalString("sin + 1")
	assert.True(t, errors.As(err, &tokErr))
	assert.Equal(t, lexer.KindPlus, tokErr.Token.Kind)
}

func TestEvalStringFloatUnderflow(t *testing.T) {
	// A literal below the smallest denormal rounds to zero rather than
	// failing.
	v, err := EvalString("0." + strings.Repeat("0", 400) + "1")
	assert.NoError(t, err)
	assert.Equal(t, "0.0", v.String())
}

func TestEvalStringIntegerWrap(t *testing.T) {
	// Integer + - * ^ wrap like the host's int64.
	v, err := EvalString("9223372036854775807 + 1")
	assert.NoError(t, err)
	assert.False(t, v.IsFloat())
	assert.Equal(t, int64(math.MinInt64), v.Int())

	v, err = EvalString("2 ^ 64")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), v.Int())
}

func TestEvalLeftoverEOF(t *testing.T) {
	// Eval expects its caller to have stripped the trailing EOF token; a
	// retained one is reported like any other leftover.
	_, err := Eval(lexer.Tokenize("1 + 2"))
	var tokErr *UnexpectedTokenError
	assert.True(t, errors.As(err, &tokErr))
	assert.Equal(t, lexer.KindEOF, tokErr.Token.Kind)

	toks := lexer.Tokenize("1 + 2")
	v, err := Eval(toks[:len(toks)-1])
	assert.NoError(t, err)
	assert.Equal(t, "3", v.String())
}

func TestFunctions(t *testing.T) {
	got := Functions()
	assert.Equal(t, []string{"cos", "exp", "ln", "sin", "sqrt", "tan"}, got)
	for _, name := range got {
		v, err := EvalString(name + "(1)")
		assert.NoError(t, err)
		assert.True(t, v.IsFloat())
	}
}

func TestErrorMessages(t *testing.T) {
	_, err := EvalString("2 / 0")
	assert.Contains(t, err.Error(), `evaluating "2 / 0"`)
	assert.Contains(t, err.Error(), "division by zero at 1:3")

	_, err = EvalString("foo(1)")
	assert.Contains(t, err.Error(), `unexpected token IDENTIFIER "foo" 1:1`)
}

func TestEvalStringConcurrent(t *testing.T) {
	testutils.SkipIfShort(t)
	// Distinct evaluations share only the read-only keyword and built-in
	// tables, so they may run in parallel.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				v, err := EvalString("2 + 3 * 4 - 5 / 2")
				if err != nil {
					t.Errorf("Failed to evaluate: %s", err)
					return
				}
				if got, want := v.String(), "11.5"; got != want {
					t.Errorf("Wrong concurrent value: Got %v Want %v", got, want)
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkEvalString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := EvalString("2 + 3 * 4 - 5 / 2 + sin(0.5) * (1 + 2) ^ 3"); err != nil {
			b.Fatal(err)
		}
	}
}
