package domain

import "errors"

// BugReport is the transient payload of the bug report form.
type BugReport struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SubmissionResult is the outcome of a bug report submission.
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// FieldResult is the outcome of validating a single form field.
type FieldResult struct {
	Field string `json:"field"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

var ErrUnknownField = errors.New("unknown field")
