package dynamo

import "errors"

// Domain errors for map and detector construction.
var (
	// ErrBaseTooSmall indicates a radix below 2, for which digit sums are degenerate.
	ErrBaseTooSmall = errors.New("dynamo: base must be at least 2")

	// ErrBaseTooLarge indicates a radix whose squared digit sums could overflow a Value.
	ErrBaseTooLarge = errors.New("dynamo: base exceeds maximum supported radix")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrEmptyCycle indicates an attempt to canonicalize a cycle with no elements.
	ErrEmptyCycle = errors.New("dynamo: cycle is empty")
)

// BaseError wraps a base validation failure with the offending radix.
type BaseError struct {
	Base    int
	Wrapped error
}

func (e *BaseError) Error() string {
	return e.Wrapped.Error() + ": " + itoa(e.Base)
}

func (e *BaseError) Unwrap() error {
	return e.Wrapped
}
