// Package ancestry provides tunable options and error definitions
// for the ancestor collector over a core.Registry.
package ancestry

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/kinship/core"
)

// Sentinel errors for ancestor collection.
var (
	// ErrRegistryNil is returned if a nil registry pointer is passed.
	ErrRegistryNil = errors.New("ancestry: registry is nil")

	// ErrStartNotFound is returned when the start person is absent.
	ErrStartNotFound = errors.New("ancestry: start person not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ancestry: invalid option supplied")
)

// Option configures ancestor collection via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Ancestors is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the upward walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called once per discovered ancestor with its generation
	// distance from the start (parents are 1). If it returns an error, the
	// walk aborts and propagates that error.
	OnVisit func(id core.ID, depth int) error

	// MaxDepth, if > 0, stops climbing beyond this many generations.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(core.ID, int) error { return nil },
		MaxDepth: 0,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback per discovered ancestor; returning an
// error from this callback stops the walk.
func WithOnVisit(fn func(id core.ID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the climb at the given generation distance.
//
//	d > 0: limit to d generations above the start
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}
