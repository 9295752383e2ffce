// Package builder provides deterministic family-fixture generators for a
// core.Registry, used by tests, benchmarks, and runnable examples.
//
// Design contract (strict):
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic at runtime.
//   - Determinism: equal inputs and call order produce identical registries
//     (core generates handles from a monotonic sequence).
//   - Constructors compose: several fixtures may populate one registry as
//     long as name prefixes keep the families apart.
//
// Fixtures:
//   - Couple:       a married man and woman.
//   - Nuclear:      a married couple with one or more children.
//   - FullSiblings: two children sharing both parents.
//   - Lineage:      an n-generation father chain (youngest first).
//   - Diamond:      a child whose father and mother share one parent, so the
//     apex is reachable through two independent lines.
//
// Errors:
//
//	ErrRegistryNil        - registry pointer is nil.
//	ErrEmptyPrefix        - fixture prefix is the empty string.
//	ErrTooFewChildren     - Nuclear called without children.
//	ErrTooFewGenerations  - Lineage shorter than two generations.
package builder
