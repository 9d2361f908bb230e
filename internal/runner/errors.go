package runner

import (
	"fmt"
	"strings"
)

// SpawnError reports that a command could not be started: the pipe could not
// be created, the executable was not found or the process was not created.
type SpawnError struct {
	// Command is the executable name.
	Command string
	// Args are the command arguments.
	Args []string
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *SpawnError) Error() string {
	line := strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", line, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", line, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *SpawnError) Unwrap() error {
	return e.Cause
}

func newSpawnError(name string, args []string, message string, cause error) *SpawnError {
	return &SpawnError{
		Command: name,
		Args:    args,
		Message: message,
		Cause:   cause,
	}
}
