package video

import (
	"fmt"
	"strings"
)

// FieldError describes one violated field invariant.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("'%s' %s", e.Field, e.Message)
}

// ValidationError aggregates every field invariant violated during
// construction or a full update. No partial aggregate is observable when it
// is returned.
type ValidationError struct {
	Violations []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return "invalid video: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Violations = append(e.Violations, FieldError{Field: field, Message: message})
}

func (e *ValidationError) hasViolations() bool {
	return len(e.Violations) > 0
}
