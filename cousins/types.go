// Package cousins provides tunable options and error definitions
// for the cousin-grade resolver.
package cousins

import (
	"context"
	"errors"

	"github.com/katalvlaran/kinship/core"
)

// NoRelation is the grade reported when two persons share no ancestor,
// including the case where either has no recorded ancestors at all.
// It is a sentinel value, not an error.
const NoRelation = -1

// Sentinel errors for grade resolution.
var (
	// ErrRegistryNil is returned if a nil registry pointer is passed.
	ErrRegistryNil = errors.New("cousins: registry is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cousins: invalid option supplied")
)

// Option configures grade resolution via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize the frontier climb.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per climb level
	// and propagated into the ancestor collection.
	Ctx context.Context

	// OnLevel is called once per climb level, before the frontier is
	// replaced by its parents. level starts at 1; frontier is sorted.
	OnLevel func(level int, frontier []core.ID)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnLevel hook
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnLevel: func(int, []core.ID) {},
		err:     nil,
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

// WithOnLevel registers an observation hook fired once per climb level with
// the current common-ancestor frontier.
func WithOnLevel(fn func(level int, frontier []core.ID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}
