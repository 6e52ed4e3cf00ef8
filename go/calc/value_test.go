package calc

import (
	"math"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	testCases := []struct {
		value Value
		want  string
	}{
		{NewInt(20), "20"},
		{NewInt(0), "0"},
		{NewInt(-3), "-3"},
		{NewInt(math.MaxInt64), "9223372036854775807"},
		{NewFloat(11.5), "11.5"},
		{NewFloat(20), "20.0"},
		{NewFloat(0), "0.0"},
		{NewFloat(-2.5), "-2.5"},
		{NewFloat(0.5), "0.5"},
		{NewFloat(1e21), "1e+21"},
		{NewFloat(math.Inf(1)), "+Inf"},
		{NewFloat(math.NaN()), "NaN"},
	}
	for _, tc := range testCases {
		if got, want := tc.value.String(), tc.want; got != want {
			t.Errorf("Wrong rendering: Got %v Want %v", got, want)
		}
	}
}

func TestValueConversions(t *testing.T) {
	i := NewInt(7)
	assert.False(t, i.IsFloat())
	assert.Equal(t, int64(7), i.Int())
	assert.Equal(t, 7.0, i.Float64())

	f := NewFloat(7.5)
	assert.True(t, f.IsFloat())
	assert.Equal(t, 7.5, f.Float64())
}
