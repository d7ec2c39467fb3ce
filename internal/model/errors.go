package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConstraintViolation is returned by stores when the database rejects a write.
	ErrConstraintViolation = errors.New("constraint violation")
)

// ConstraintViolationError carries the name of the violated database constraint.
type ConstraintViolationError struct {
	Constraint string
	Err        error
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint %q violated: %v", e.Constraint, e.Err)
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}

func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrConstraintViolation
}
