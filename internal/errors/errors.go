package errors

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed constructor input: an impossible
// date, an out-of-range time component, an inverted time range, or an
// unrecognized enum token. A rejected operation leaves no state behind.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func NewValidation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an operation against an event or schedule name
// that does not exist.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Name)
}

// ConflictError is returned when a conflict-checked insert is refused.
// Conflicts holds the titles of the events already occupying the slot.
type ConflictError struct {
	Title     string
	Conflicts []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("'%s' conflicts with %d existing event(s): %s",
		e.Title, len(e.Conflicts), strings.Join(e.Conflicts, ", "))
}

// ParseError reports an unreadable interchange file.
type ParseError struct {
	File    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.File, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }
