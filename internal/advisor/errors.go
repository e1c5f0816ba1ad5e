package advisor

import "fmt"

// ProfileError indicates the advisor profile could not be loaded or parsed.
// This is fatal at startup: no run proceeds without advisor context.
type ProfileError struct {
	Message string
	Cause   error
}

func (e *ProfileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ProfileError) Unwrap() error {
	return e.Cause
}
