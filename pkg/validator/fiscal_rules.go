package validator

import (
	"slices"

	"github.com/fiscalkit/nifkit/pkg/nif"
)

// ValidNIF validates a Portuguese tax identification number.
func ValidNIF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return nif.IsValid(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid Portuguese NIF",
		},
	}
}

// NIFInCategory validates the value as a NIF and additionally requires
// its taxpayer category to be one of the allowed set, for callers that
// accept only certain classes (e.g. companies only).
func NIFInCategory(field, value string, allowed ...nif.Category) Rule {
	return Rule{
		Check: func() bool {
			parsed, err := nif.Parse(value)
			if err != nil {
				return false
			}
			return slices.Contains(allowed, parsed.Category())
		},
		Error: ValidationError{
			Field:   field,
			Message: "taxpayer category is not accepted",
		},
	}
}
