package services

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a mutating operation whose target id did not resolve.
// Read operations return empty results instead.
var ErrNotFound = errors.New("not found")

// ErrProgramInUse blocks deleting a training program that assignments still
// reference.
var ErrProgramInUse = errors.New("training program is referenced by assignments")

// ValidationError rejects a bad argument before any store access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError wraps a store failure. For dual writes, Half names which
// copy failed so callers can tell a clean failure from a drifted one.
type PersistenceError struct {
	Op   string
	Half string // "canonical" or "mirror", "" for single writes
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Half != "" {
		return fmt.Sprintf("%s: %s write failed: %v", e.Op, e.Half, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
