/*
errors.go - Centralized error types for the payroll engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The compensation formulas themselves never fail; errors only come from
  construction (bad names, bad periods, negative sales) and from lookups
  against a Company.

ERROR CATEGORIES:
  1. Validation errors - Construction-time invariants
  2. Lookup errors - Unknown or duplicate employees

USAGE:
  if errors.Is(err, payroll.ErrInvalidArgument) {
      // reject the input, nothing was recorded
  }

SEE ALSO:
  - employee.go: Constructors that return these errors
  - company.go: Lookup errors
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidArgument is returned when a constructor or recorder receives
	// input that violates a construction invariant. Nothing is mutated.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownRole is returned when building an employee from a role tag
	// that has no variant.
	ErrUnknownRole = fmt.Errorf("%w: unknown role", ErrInvalidArgument)

	// ErrEmployeeNotFound is returned when a company lookup misses.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDuplicateEmployee is returned when adding an employee whose ID is
	// already part of the company.
	ErrDuplicateEmployee = errors.New("duplicate employee")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError names the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrDuplicateEmployee)
}

// IsNotFound returns true if the error indicates a missing employee.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound)
}
