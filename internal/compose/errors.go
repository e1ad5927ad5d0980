package compose

import "strings"

// ValidationError reports agreement fields that must be present before a
// document can be composed.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "compose: missing required fields: " + strings.Join(e.Missing, ", ")
}
