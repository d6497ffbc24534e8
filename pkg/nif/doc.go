// Package nif validates Portuguese tax identification numbers (NIF,
// Número de Identificação Fiscal): nine decimal digits whose leading
// digit(s) encode the taxpayer category and whose last digit is a
// modulo-11 check digit over the first eight.
//
// Validation is a pure function over the candidate string. There is no
// I/O, no hidden state and no panic path; malformed input of any kind
// (wrong length, non-digits, unicode, empty) resolves to a normal
// negative Result. The package is therefore safe to call concurrently
// without synchronization.
//
// # Usage
//
//	switch nif.Validate(input) {
//	case nif.Valid:
//		// proceed, optionally hand the value to a registry lookup
//	case nif.InvalidLength:
//		// not nine decimal digits
//	case nif.InvalidCategory:
//		// leading digits outside the recognized taxpayer categories
//	case nif.InvalidCheckDigit:
//		// well-formed but the checksum does not match
//	}
//
// Callers that prefer the error idiom can use Parse, which returns a
// validated NIF value or one of the sentinel errors (ErrInvalidLength,
// ErrInvalidCategory, ErrInvalidCheckDigit) suitable for errors.Is.
//
// # Category table
//
// The set of accepted leading digits lives in a single constant map so
// it can be audited against the official algorithm in one place. The
// only two-digit prefix is "45" (non-resident singular persons), which
// is recognized even though a leading "4" alone is not.
package nif
