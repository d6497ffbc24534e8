package nif

import "errors"

// Sentinel errors returned by Parse, one per failure class in the
// validation taxonomy. Match with errors.Is.
var (
	// ErrInvalidLength is returned when the candidate is not exactly
	// nine ASCII decimal digits.
	ErrInvalidLength = errors.New("must be exactly nine decimal digits")

	// ErrInvalidCategory is returned when the leading digit(s) do not
	// match any recognized taxpayer category.
	ErrInvalidCategory = errors.New("leading digits do not match a recognized taxpayer category")

	// ErrInvalidCheckDigit is returned when the ninth digit disagrees
	// with the modulo-11 checksum over the first eight.
	ErrInvalidCheckDigit = errors.New("check digit does not match")
)
