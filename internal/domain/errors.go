package domain

import (
	"errors"
	"fmt"
)

// Sentinel kinds for the transport layer to branch on via errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// NotFoundError is returned by point operations when the target record
// does not exist. Carries the entity kind and id for diagnostics.
type NotFoundError struct {
	Entity string
	ID     uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id %d", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// AlreadyExistsError is returned when a create violates a uniqueness
// invariant. Carries the conflicting field and value.
type AlreadyExistsError struct {
	Entity string
	Field  string
	Value  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with %s %s already exists", e.Entity, e.Field, e.Value)
}

func (e *AlreadyExistsError) Unwrap() error { return ErrAlreadyExists }
