package errors

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidation("day", "no such date %d-%02d-%02d", 2025, 2, 30)
	want := "validation error [day]: no such date 2025-02-30"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := &ValidationError{Field: "file", Message: "unreadable", Err: io.ErrUnexpectedEOF}
	if !errors.Is(wrapped, io.ErrUnexpectedEOF) {
		t.Error("ValidationError should unwrap its cause")
	}
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Resource: "schedule", Name: "work"}
	if err.Error() != "schedule not found: work" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestConflictError(t *testing.T) {
	err := &ConflictError{Title: "Standup", Conflicts: []string{"Gym", "Dentist"}}
	got := err.Error()
	if !strings.Contains(got, "Standup") || !strings.Contains(got, "2 existing event(s)") {
		t.Errorf("Error() = %q", got)
	}
	if !strings.Contains(got, "Gym, Dentist") {
		t.Errorf("conflict titles missing: %q", got)
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	err := &ParseError{File: "cal.ics", Message: "bad data", Err: io.EOF}
	if !errors.Is(err, io.EOF) {
		t.Error("ParseError should unwrap its cause")
	}
	if !strings.Contains(err.Error(), "cal.ics") {
		t.Errorf("Error() = %q", err.Error())
	}
}
