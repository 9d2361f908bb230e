package scm

import "fmt"

// LocateError reports a filesystem failure while walking up to the SCM
// root.
type LocateError struct {
	// Path is the candidate path that could not be examined.
	Path string
	// Message is the error message.
	Message string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *LocateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("locate scm root at %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("locate scm root at %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *LocateError) Unwrap() error {
	return e.Cause
}

func newLocateError(path, message string, cause error) *LocateError {
	return &LocateError{
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}
