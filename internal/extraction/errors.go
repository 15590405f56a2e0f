package extraction

import "fmt"

// Error reports a failed document-to-text conversion.
type Error struct {
	Filename string
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extraction failed for %s: %v", e.Filename, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
