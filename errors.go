package toolcall

import (
	"errors"
	"fmt"
)

// Sentinel errors for toolcall. Use errors.Is to check the kind of a returned error.
var (
	ErrToolNotFound = errors.New("tool not found")
	ErrBadArgs      = errors.New("invalid arguments")
	ErrExecution    = errors.New("execution failed")
)

// Kind classifies every error returned by Handler. There are exactly three kinds.
type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindBadArgs
	KindExecution
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadArgs:
		return "bad_args"
	case KindExecution:
		return "execution"
	default:
		return "none"
	}
}

// NotFoundError is returned when the requested tool name has no registry entry.
// The caller can recover locally, e.g. by asking the LLM to pick a registered tool.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "tool not found: " + e.Name
}

func (e *NotFoundError) Is(target error) bool { return target == ErrToolNotFound }

// BadArgsError means the caller-supplied data does not match the tool contract:
// wrong request shape, missing or extra arguments, type mismatch, schema violation.
// It is always attributable to the input, never to the tool implementation.
type BadArgsError struct {
	Reason string
	Err    error // optional cause for errors.As
}

func (e *BadArgsError) Error() string {
	return "invalid arguments: " + e.Reason
}

func (e *BadArgsError) Unwrap() error { return e.Err }

func (e *BadArgsError) Is(target error) bool { return target == ErrBadArgs }

// ExecutionError means the request was fine but running it broke: the tool
// returned an error, panicked, was interrupted, or its schema could not be compiled.
type ExecutionError struct {
	Reason string
	Err    error
}

func (e *ExecutionError) Error() string {
	return "execution failed: " + e.Reason
}

func (e *ExecutionError) Unwrap() error { return e.Err }

func (e *ExecutionError) Is(target error) bool { return target == ErrExecution }

// KindOf returns the kind of err, or KindNone when err is nil or unclassified.
func KindOf(err error) Kind {
	var (
		nf *NotFoundError
		ba *BadArgsError
		ex *ExecutionError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &nf):
		return KindNotFound
	case errors.As(err, &ba):
		return KindBadArgs
	case errors.As(err, &ex):
		return KindExecution
	default:
		return KindNone
	}
}

// IsNotFound returns true if err is or wraps a NotFoundError.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsBadArgs returns true if err is or wraps a BadArgsError.
func IsBadArgs(err error) bool { return KindOf(err) == KindBadArgs }

// IsExecution returns true if err is or wraps an ExecutionError.
func IsExecution(err error) bool { return KindOf(err) == KindExecution }

func badArgsf(format string, args ...any) error {
	return &BadArgsError{Reason: fmt.Sprintf(format, args...)}
}

// classify passes classified errors through and turns anything else into an ExecutionError.
func classify(err error) error {
	if err == nil || KindOf(err) != KindNone {
		return err
	}
	return &ExecutionError{Reason: err.Error(), Err: err}
}

// panicError wraps a recovered panic value as the cause of an ExecutionError.
type panicError struct{ p any }

func (e *panicError) Error() string {
	return "panic: " + fmt.Sprint(e.p)
}
