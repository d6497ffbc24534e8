package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fiscalkit/nifkit/pkg/nif"
)

// defaultLookupTimeout bounds a single registry round-trip when the
// caller does not configure one.
const defaultLookupTimeout = 10 * time.Second

// Outcome combines the local validation verdict with whatever the
// registry reported. Record is nil unless a lookup succeeded.
type Outcome struct {
	Result nif.Result
	Record *Record
}

// Checker runs local NIF validation first and consults the registry
// only for candidates that pass it, so a network round-trip is never
// spent on input the checksum already rejects.
type Checker struct {
	client  Client
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures a Checker during construction.
type Option func(*Checker)

// WithLogger configures the logger for the checker.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLookupTimeout bounds each registry lookup. A non-positive value
// disables the bound; the caller's context still applies either way.
func WithLookupTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.timeout = d
	}
}

// NewChecker creates a checker around client. A nil client reduces
// Check to local validation only.
func NewChecker(client Client, opts ...Option) *Checker {
	c := &Checker{
		client:  client,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout: defaultLookupTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewCheckerFromConfig creates a checker wired from environment-driven
// configuration. Lookups are disabled entirely when cfg says so.
func NewCheckerFromConfig(cfg Config, client Client, opts ...Option) *Checker {
	if !cfg.LookupEnabled {
		client = nil
	}
	return NewChecker(client, append([]Option{WithLookupTimeout(cfg.LookupTimeout)}, opts...)...)
}

// Check validates candidate locally and, when it passes and a client is
// configured, confirms it against the registry.
//
// A locally invalid candidate is a normal negative Outcome with a nil
// error. A lookup failure leaves Outcome.Result at nif.Valid and
// returns the wrapped error: an unreachable registry is not evidence
// of an invalid NIF.
func (c *Checker) Check(ctx context.Context, candidate string) (Outcome, error) {
	result := nif.Validate(candidate)
	if result != nif.Valid {
		c.logger.DebugContext(ctx, "nif rejected locally",
			slog.String("reason", result.String()))
		return Outcome{Result: result}, nil
	}

	if c.client == nil {
		return Outcome{Result: result}, nil
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	record, err := c.client.Lookup(ctx, candidate)
	if err != nil {
		c.logger.WarnContext(ctx, "registry lookup failed",
			slog.String("nif", candidate),
			slog.Any("error", err))
		return Outcome{Result: result}, fmt.Errorf("registry lookup for %s: %w", candidate, err)
	}

	c.logger.DebugContext(ctx, "registry lookup succeeded",
		slog.String("nif", candidate),
		slog.Bool("active", record.Active))
	return Outcome{Result: result, Record: record}, nil
}
