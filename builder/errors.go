// SPDX-License-Identifier: MIT
// Package: kinship/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site;
//     constructors attach context via %w at the call site.

package builder

import "errors"

// ErrRegistryNil indicates a fixture constructor received a nil registry.
// Usage: if errors.Is(err, ErrRegistryNil) { /* missing setup */ }.
var ErrRegistryNil = errors.New("builder: registry is nil")

// ErrEmptyPrefix indicates a fixture prefix was the empty string; prefixes
// keep composed fixtures apart inside one registry and must be supplied.
var ErrEmptyPrefix = errors.New("builder: fixture prefix is empty")

// ErrTooFewChildren indicates Nuclear was called without any child names.
var ErrTooFewChildren = errors.New("builder: at least one child required")

// ErrTooFewGenerations indicates Lineage was asked for fewer than two
// generations, which is not a chain.
var ErrTooFewGenerations = errors.New("builder: at least two generations required")
