package polyroot

import "errors"

// Errors returned by functions in this package.
// Use [errors.Is] to test for them, as most are wrapped with context.
var (
	// ErrDivisionByZero is returned when a fraction would get a zero
	// denominator.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrIrrationalResult is returned when an exact root does not exist,
	// because the true value is irrational (or not real).
	ErrIrrationalResult = errors.New("irrational result")
	// ErrNotNormalized is returned when the rational root search needs
	// integer extreme coefficients but the polynomial has fractional ones.
	ErrNotNormalized = errors.New("polynomial is not normalized")
	// ErrUnsupportedDegree is returned when a solver is applied to
	// a polynomial of a degree it cannot handle.
	ErrUnsupportedDegree = errors.New("unsupported degree")
	// ErrNegativeExponent is returned for a negative or non-integer exponent.
	ErrNegativeExponent = errors.New("exponent must be a non-negative integer")
	// ErrIndeterminate is returned when every value is a root,
	// that is when solving the zero polynomial.
	ErrIndeterminate = errors.New("indeterminate equation")
	// ErrSyntax is returned for malformed textual input.
	ErrSyntax = errors.New("invalid syntax")
)
