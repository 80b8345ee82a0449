package seeder

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCount    = errors.New("count must be positive")
	ErrEmptyDependency = errors.New("referenced entity batch is empty")
	ErrEmailExhausted  = errors.New("could not generate a unique email")
)

// DependencyError reports a generator asked to reference an empty batch.
type DependencyError struct {
	Entity     string
	Dependency string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("cannot generate %s: no %s to reference", e.Entity, e.Dependency)
}

func (e *DependencyError) Unwrap() error {
	return ErrEmptyDependency
}

type EmailExhaustedError struct {
	UserID   int64
	Attempts int
}

func (e *EmailExhaustedError) Error() string {
	return fmt.Sprintf("user %d: no unique email after %d attempts", e.UserID, e.Attempts)
}

func (e *EmailExhaustedError) Unwrap() error {
	return ErrEmailExhausted
}

func checkCount(entity string, count int) error {
	if count <= 0 {
		return fmt.Errorf("%s: %w (got %d)", entity, ErrInvalidCount, count)
	}
	return nil
}
