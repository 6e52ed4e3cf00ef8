// Package skerr provides error creation and wrapping that records the call
// stack at the point the error crossed a package boundary, so that a failure
// deep in a library can be located without re-running under a debugger.
//
// Usage:
//
//	if err != nil {
//		return skerr.Wrapf(err, "loading samples from %s", path)
//	}
//
// Errors created or wrapped here implement Unwrap, so errors.Is and errors.As
// see through any number of layers to the typed error underneath.
package skerr

import (
	"errors"
	"fmt"
	"path"
	"runtime"
	"strings"
)

// maxFrames is how many stack frames an error records. Frames above the
// wrapping call site rarely add information beyond this depth.
const maxFrames = 8

// printedFrames is how many of the recorded frames Error() includes.
const printedFrames = 3

// wrappedError is the error type returned by Fmt, Wrap, and Wrapf.
type wrappedError struct {
	// msg is the context message. Empty for errors produced by Wrap.
	msg string
	// cause is the wrapped error. Nil for errors produced by Fmt.
	cause error
	// pcs are the program counters of the call stack at wrap time.
	pcs []uintptr
}

func (e *wrappedError) Error() string {
	var b strings.Builder
	if e.msg != "" {
		b.WriteString(e.msg)
	}
	if e.cause != nil {
		if e.msg != "" {
			b.WriteString(": ")
		}
		b.WriteString(e.cause.Error())
	}
	if frames := e.frames(); len(frames) > 0 {
		b.WriteString(" At ")
		b.WriteString(strings.Join(frames, " "))
	}
	return b.String()
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

// frames renders the first printedFrames recorded call sites as
// "file.go:123", innermost first.
func (e *wrappedError) frames() []string {
	if len(e.pcs) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(e.pcs)
	ret := make([]string, 0, printedFrames)
	for {
		frame, more := frames.Next()
		ret = append(ret, fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line))
		if !more || len(ret) >= printedFrames {
			break
		}
	}
	return ret
}

// callStack captures the caller's stack, skipping the given number of frames
// above callStack itself.
func callStack(skip int) []uintptr {
	pcs := make([]uintptr, maxFrames)
	// +2 skips runtime.Callers and callStack.
	n := runtime.Callers(skip+2, pcs)
	return pcs[:n]
}

// Fmt returns a new error with a Sprintf-style message and the caller's call
// stack.
func Fmt(format string, args ...interface{}) error {
	return &wrappedError{
		msg: fmt.Sprintf(format, args...),
		pcs: callStack(1),
	}
}

// Wrap returns an error annotating err with the caller's call stack. Returns
// nil if err is nil, and err itself if it already carries a call stack, so
// repeated wrapping along a return path records the deepest site only.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var we *wrappedError
	if errors.As(err, &we) {
		return err
	}
	return &wrappedError{
		cause: err,
		pcs:   callStack(1),
	}
}

// Wrapf returns an error annotating err with a Sprintf-style context message,
// rendered as a prefix of err's own message, and the caller's call stack.
// Returns nil if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
		pcs:   callStack(1),
	}
}

// Unwrap returns the innermost error of a chain built by this package: the
// original error before any wrapping. Errors not created here are returned
// unchanged. Unlike errors.Unwrap, this walks the whole chain.
func Unwrap(err error) error {
	for {
		we, ok := err.(*wrappedError)
		if !ok || we.cause == nil {
			return err
		}
		err = we.cause
	}
}
