// Package registry defines the contract for confirming a NIF against
// the national tax registry, and a Checker that composes the local
// validation from pkg/nif with such a lookup.
//
// The package deliberately ships no transport: Client is the interface
// an HTTP (or any other) implementation must satisfy, and everything
// here works against it. Local validation never depends on the
// registry being reachable; a failed lookup is surfaced as a wrapped
// sentinel error, distinct from the NIF being invalid.
//
// # Usage
//
//	checker := registry.NewChecker(client,
//		registry.WithLogger(log),
//		registry.WithLookupTimeout(5*time.Second),
//	)
//
//	outcome, err := checker.Check(ctx, input)
//	switch {
//	case outcome.Result != nif.Valid:
//		// rejected locally, the registry was never contacted
//	case err != nil:
//		// locally valid, but the registry could not confirm it
//	case outcome.Record != nil:
//		// confirmed; Record carries the entity metadata
//	}
//
// A nil Client is allowed and reduces Check to local validation only.
//
// # Error Handling
//
// Lookup failures are classified with sentinel errors (ErrUnavailable,
// ErrNotRegistered, ErrAmbiguous, ErrUnknownOutcome) so callers can
// distinguish "the service was unreachable" from "the registry does not
// know this NIF". Use errors.Is on the error returned by Check.
package registry
