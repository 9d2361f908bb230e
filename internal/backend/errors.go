package backend

import (
	"fmt"

	"github.com/tacogips/scmver/internal/scm"
)

// ErrorType represents the type of backend error.
type ErrorType int

const (
	// SpawnFailed indicates the backend command could not be started.
	SpawnFailed ErrorType = iota
	// ProtocolError indicates the command failed or its output was unusable.
	ProtocolError
)

// Error represents a failure to extract a version from a backend.
type Error struct {
	// Type is the error type.
	Type ErrorType
	// Backend is the SCM being queried.
	Backend scm.Kind
	// Message is the error message.
	Message string
	// Stderr holds the command's diagnostics, if any.
	Stderr string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Backend, e.Message)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(typ ErrorType, kind scm.Kind, message string, cause error) *Error {
	return &Error{
		Type:    typ,
		Backend: kind,
		Message: message,
		Cause:   cause,
	}
}

func protocolError(kind scm.Kind, format string, args ...interface{}) *Error {
	return newError(ProtocolError, kind, fmt.Sprintf(format, args...), nil)
}
