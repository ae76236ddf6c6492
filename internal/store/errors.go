package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("user not found")

	// ErrCapacity matches every *CapacityError via errors.Is.
	ErrCapacity = errors.New("user limit reached")
)

// NotFoundError reports a lookup for an id the store does not hold.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("User not found: %d", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// CapacityError reports a create attempted while the store is full.
type CapacityError struct {
	Max int
}

func (e *CapacityError) Error() string {
	return "Maximum user limit reached"
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacity
}
