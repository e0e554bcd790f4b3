package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput rejects parameters a report cannot run with (HTTP 400).
	ErrInvalidInput = errors.New("invalid input")
	// ErrDependencyUnavailable means the report store cannot be reached (HTTP 503).
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// invalidInput marks a validation error from the domain layer. nil stays nil.
func invalidInput(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func invalidInputf(format string, args ...any) error {
	return invalidInput(fmt.Errorf(format, args...))
}

func dependencyUnavailable(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, name, err)
}
