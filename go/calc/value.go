package calc

import (
	"math"
	"strconv"
	"strings"
)

// Value is one number produced by evaluation, either an int64 or a float64.
// Which of the two it holds decides how the operators in this package behave
// and how the value prints.
type Value struct {
	i       int64
	f       float64
	isFloat bool
}

// NewInt returns an integer Value.
func NewInt(i int64) Value {
	return Value{i: i}
}

// NewFloat returns a floating point Value.
func NewFloat(f float64) Value {
	return Value{f: f, isFloat: true}
}

// IsFloat reports whether the value holds a float64.
func (v Value) IsFloat() bool {
	return v.isFloat
}

// Int returns the integer held by the value. Only meaningful when IsFloat is
// false.
func (v Value) Int() int64 {
	return v.i
}

// Float64 returns the value as a float64, converting an integer value.
func (v Value) Float64() float64 {
	if v.isFloat {
		return v.f
	}
	return float64(v.i)
}

// String renders integers without a decimal point and floats always with one,
// so that 23 / 2 prints as "11.5" and 4 / 2 as "2.0" rather than "2". Very
// large and very small floats render in e notation.
func (v Value) String() string {
	if !v.isFloat {
		return strconv.FormatInt(v.i, 10)
	}
	s := strconv.FormatFloat(v.f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eE") || math.IsInf(v.f, 0) || math.IsNaN(v.f) {
		return s
	}
	return s + ".0"
}
