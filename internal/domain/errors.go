package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Operation failures reported by the todo API client. Each carries a fixed
// message and never wraps the underlying cause; the cause is logged at the
// point of failure instead.
var (
	ErrFetchFailed  = errors.New("failed to fetch todos")
	ErrSaveFailed   = errors.New("failed to save todos")
	ErrDeleteFailed = errors.New("failed to delete todo")
)

// ErrValidation marks malformed input at the service edge.
var ErrValidation = errors.New("validation error")

// IsOperationFailure reports whether err is one of the client operation
// sentinels.
func IsOperationFailure(err error) bool {
	return errors.Is(err, ErrFetchFailed) ||
		errors.Is(err, ErrSaveFailed) ||
		errors.Is(err, ErrDeleteFailed)
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
