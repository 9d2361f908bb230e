package app

import (
	"errors"
	"fmt"
)

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// NotFound indicates no SCM root exists above the starting path.
	NotFound AppErrorType = iota
	// DetectionFailed indicates the root walk itself failed.
	DetectionFailed
	// SpawnFailed indicates a backend command could not be started.
	SpawnFailed
	// BackendProtocol indicates a backend command failed or its output was unusable.
	BackendProtocol
	// ParseFailed indicates a stored version string could not be decoded.
	ParseFailed
	// IOFailed indicates a file or stream could not be opened, read or written.
	IOFailed
	// RestoreFailed indicates the working directory could not be restored.
	RestoreFailed
)

var errorTypeNames = map[AppErrorType]string{
	NotFound:        "not found",
	DetectionFailed: "detection failed",
	SpawnFailed:     "spawn failed",
	BackendProtocol: "backend protocol error",
	ParseFailed:     "parse error",
	IOFailed:        "i/o error",
	RestoreFailed:   "restore failed",
}

// String returns a short description of the error type.
func (t AppErrorType) String() string {
	if name, ok := errorTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AppErrorType(%d)", int(t))
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(message string) *AppError {
	return NewAppError(NotFound, message, nil)
}

// NewDetectionError creates a detection error.
func NewDetectionError(message string, cause error) *AppError {
	return NewAppError(DetectionFailed, message, cause)
}

// NewParseError creates a parse error.
func NewParseError(message string, cause error) *AppError {
	return NewAppError(ParseFailed, message, cause)
}

// NewIOError creates an i/o error.
func NewIOError(message string, cause error) *AppError {
	return NewAppError(IOFailed, message, cause)
}

// NewRestoreError creates a working directory restore error.
func NewRestoreError(message string, cause error) *AppError {
	return NewAppError(RestoreFailed, message, cause)
}

// IsType reports whether err is an *AppError of the given type.
func IsType(err error, errType AppErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == errType
}
