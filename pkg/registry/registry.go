package registry

import "context"

// Record is the entity metadata the tax registry holds for an issued NIF.
type Record struct {
	// NIF is the number the record belongs to.
	NIF string
	// Name of the registered entity. Empty when the registry confirms
	// the NIF is issued but cannot associate an entity with it.
	Name string
	// Active reports whether the registration is currently active.
	Active bool
}

// Client looks up an issued NIF in the national tax registry.
//
// Implementations own their transport and should honor ctx for
// cancellation. The nif argument is expected to have passed local
// validation already; implementations may reject anything else with
// ErrUnknownOutcome. Failures must map onto the package sentinel errors
// so callers can classify them.
type Client interface {
	Lookup(ctx context.Context, nif string) (*Record, error)
}
