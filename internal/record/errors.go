package record

import "fmt"

// ParseError reports a version string that could not be decoded at all.
type ParseError struct {
	// Input is the text being parsed.
	Input string
	// Offset is the byte offset of the problem.
	Offset int
	// Message is the error message.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version %q at offset %d: %s", e.Input, e.Offset, e.Message)
}

func newParseError(input string, offset int, message string) *ParseError {
	return &ParseError{
		Input:   input,
		Offset:  offset,
		Message: message,
	}
}
