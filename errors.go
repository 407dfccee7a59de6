package drmcore

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorKind classifies a drmcore error into the abstract categories spec.md
// §7 enumerates. Kinds are stable across releases; messages are not.
type ErrorKind string

const (
	// KindInvalidArgument covers property validation failure, malformed
	// request flags, and out-of-range pollWait sequences. (An unmapped
	// legacy bpp/depth pair is reported as KindFatal by convertLegacyFormat.)
	KindInvalidArgument ErrorKind = "invalid argument"
	// KindNotFound covers object/blob/handle/credential lookup misses.
	KindNotFound ErrorKind = "not found"
	// KindWouldBlock covers a non-blocking read against an empty queue.
	KindWouldBlock ErrorKind = "would block"
	// KindProtocol covers unknown requests and truncated buffers.
	KindProtocol ErrorKind = "protocol error"
	// KindFatal covers invariant violations. Never used for client input.
	KindFatal ErrorKind = "fatal"
)

// Error is the structured error type threaded through the mode-setting
// core. Op names the failing operation (e.g. "Submit", "File.read");
// Object carries the relevant object/blob/handle ID when one applies, 0
// otherwise.
type Error struct {
	Op     string
	Kind   ErrorKind
	Object uint32
	Msg    string
	Inner  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Object != 0 {
		return fmt.Sprintf("drmcore: %s: %s (object=%d)", e.Op, msg, e.Object)
	}
	return fmt.Sprintf("drmcore: %s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	return e.Inner
}

func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == te.Kind
}

// NewError builds an Error of the given kind.
func NewError(op string, kind ErrorKind, msg string) *Error {
	return &Error{Op: op, Kind: kind, Msg: msg}
}

// NewObjectError builds an Error scoped to a specific object/blob/handle ID.
func NewObjectError(op string, kind ErrorKind, object uint32, msg string) *Error {
	return &Error{Op: op, Kind: kind, Object: object, Msg: msg}
}

// Fatal wraps an invariant violation with a captured stack trace. Fatal
// errors indicate a programming error in the core itself, never client
// input — callers should treat them as unrecoverable for the current
// transaction.
func Fatal(op, msg string) *Error {
	return &Error{Op: op, Kind: KindFatal, Msg: msg, Inner: pkgerrors.New(msg)}
}

// IsKind reports whether err (or any error it wraps) is a *Error of kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}
