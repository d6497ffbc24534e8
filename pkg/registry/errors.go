package registry

import "errors"

// Failure classes for registry lookups. A lookup failure is never
// evidence that a NIF is invalid; these errors exist so callers can
// tell collaborator faults apart from validation results.
var (
	// ErrUnavailable means the registry could not be reached or the
	// transport failed before an answer was obtained.
	ErrUnavailable = errors.New("tax registry is unavailable")

	// ErrNotRegistered means the registry answered and reports the
	// number as not issued.
	ErrNotRegistered = errors.New("nif is not registered")

	// ErrAmbiguous means the registry returned multiple entities and
	// no single record could be attributed to the number.
	ErrAmbiguous = errors.New("registry returned multiple entities for nif")

	// ErrUnknownOutcome means the registry response could not be
	// interpreted.
	ErrUnknownOutcome = errors.New("registry response could not be interpreted")
)

// IsUnavailable reports whether err indicates the registry could not be
// reached, as opposed to answering negatively.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
