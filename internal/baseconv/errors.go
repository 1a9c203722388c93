// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package baseconv

import "errors"

// Sentinel errors for input validation and arithmetic failures. Callers
// classify with errors.Is; wrapped messages carry the offending input.
var (
	// ErrInvalidBase reports a base outside the closed range [2, 36].
	ErrInvalidBase = errors.New("base must be between 2 and 36")

	// ErrEmptyInput reports an input with no digits (empty string, or a
	// bare sign or prefix).
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidDigit reports a character with no digit mapping, or one
	// whose value is not below the base.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrMalformedSign reports multiple or misplaced sign characters.
	ErrMalformedSign = errors.New("malformed sign")

	// ErrDivisionByZero reports a divide or modulo with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnsupportedOperation reports an operation outside the integer
	// domain, such as a power with a negative exponent.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
