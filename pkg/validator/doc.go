// Package validator provides small, composable validation rules for
// fiscal identifiers, in a declarative style: each helper returns a
// Rule pairing a boolean check with field-level error metadata, and
// Apply aggregates every failure into a ValidationErrors value that
// satisfies the error interface.
//
// There is no global state; rules are plain values and the package is
// goroutine-safe.
//
// # Usage
//
//	err := validator.Apply(
//		validator.ValidNIF("vat_number", form.VATNumber),
//		validator.NIFInCategory("vat_number", form.VATNumber, nif.Company),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		for _, field := range verrs.Fields() {
//			// render verrs.Get(field)
//		}
//	}
package validator
