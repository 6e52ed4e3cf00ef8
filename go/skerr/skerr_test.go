package skerr

import (
	"errors"
	"fmt"
	"testing"

	assert "github.com/stretchr/testify/require"
)

var errSentinel = errors.New("root cause")

func TestFmt(t *testing.T) {
	err := Fmt("widget %d failed", 5)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "widget 5 failed")
	assert.Contains(t, err.Error(), "skerr_test.go:")
}

func TestWrap(t *testing.T) {
	err := Wrap(errSentinel)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "root cause")
	assert.Contains(t, err.Error(), "skerr_test.go:")
	assert.True(t, errors.Is(err, errSentinel))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil))
	assert.NoError(t, Wrapf(nil, "context"))
}

func TestWrapAlreadyWrapped(t *testing.T) {
	inner := Wrap(errSentinel)
	outer := Wrap(inner)
	// The second Wrap must not stack another frame list on top.
	assert.Equal(t, inner, outer)
}

func TestWrapf(t *testing.T) {
	err := Wrapf(errSentinel, "reading %s", "foo.json5")
	assert.Contains(t, err.Error(), "reading foo.json5: root cause")
	assert.True(t, errors.Is(err, errSentinel))
}

func TestWrapfPreservesTypedErrors(t *testing.T) {
	type codeError struct{ error }
	typed := codeError{errors.New("typed")}
	err := Wrapf(Wrap(typed), "outer context")
	var ce codeError
	assert.True(t, errors.As(err, &ce))
}

func TestUnwrap(t *testing.T) {
	err := Wrapf(Wrapf(errSentinel, "inner"), "outer")
	assert.Equal(t, errSentinel, Unwrap(err))

	plain := fmt.Errorf("no stack here")
	assert.Equal(t, plain, Unwrap(plain))
	assert.NoError(t, Unwrap(nil))
}
