package registry

import "time"

// Config carries the environment-driven settings for registry lookups.
// Load it with pkg/config and pass it to NewCheckerFromConfig.
type Config struct {
	LookupEnabled bool          `env:"NIF_LOOKUP_ENABLED" envDefault:"true"` // LookupEnabled turns registry confirmation on or off; local validation always runs.
	LookupTimeout time.Duration `env:"NIF_LOOKUP_TIMEOUT" envDefault:"10s"`  // LookupTimeout bounds a single registry round-trip. It should be in the format "10s" for 10 seconds.
}
