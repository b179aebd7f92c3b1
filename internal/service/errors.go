package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/edulearn/internal/repository"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrConflict             = errors.New("conflict")
	ErrNotEligible          = errors.New("not all assessments have been passed")
	ErrValidation           = errors.New("validation failed")
	ErrAssistantUnavailable = errors.New("grading assistant is not configured")

	// ErrAlreadyIssued is the conflict reported for a second certificate on
	// the same (user, course), whether caught by the pre-check or by the
	// storage constraint.
	ErrAlreadyIssued = fmt.Errorf("%w: certificate already issued for this course", ErrConflict)
)

// FieldError is used to indicate an error with a specific input field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type ValidationError struct {
	Fields []FieldError
}

func newValidationError(flds ...FieldError) error {
	return &ValidationError{Fields: flds}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Error)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// fromRepository maps repository sentinels onto service errors. what names
// the missing or conflicting record, e.g. "course 7".
func fromRepository(err error, what string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%s: %w", what, ErrConflict)
	default:
		return fmt.Errorf("error fetching %s: %w", what, err)
	}
}
