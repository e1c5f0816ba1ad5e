package generate

import "fmt"

// Error represents a draft generation failure that is not attributable to
// the oracle, e.g. a request missing required inputs.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
