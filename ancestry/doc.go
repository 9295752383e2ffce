// Package ancestry provides the ancestor collector: a breadth-first walk
// upward over the father/mother edges of a core.Registry, producing the set
// of all distinct ancestors of a person.
//
// What
//
//   - Ancestors(reg, id) returns a Set of every person reachable from id by
//     repeatedly following recorded parent links, to unbounded depth.
//   - The start person is never a member of their own ancestor set.
//   - A person with no recorded parents yields the empty set (not an error),
//     and a person with one untracked side is walked through the known side.
//   - Diamond-safe: a shared ancestor reached via multiple lines appears in
//     the result exactly once; the visited set also guarantees termination
//     and O(1) revisits.
//   - Supports functional hooks and limits: WithOnVisit (may abort),
//     WithMaxDepth (generations), WithContext (cancellation).
//
// Determinism
//
//	Parents are expanded father-first per person (core.ParentsOf order), so
//	visit order — and therefore hook invocation order — is reproducible for
//	a fixed registry.
//
// Complexity (A = |ancestors of id|)
//
//   - Time:   O(A)   (each ancestor dequeued at most once)
//   - Memory: O(A)   (queue, visited set, result set)
//
// Usage
//
//	set, err := ancestry.Ancestors(reg, alex)
//	if err != nil {
//	    // handle ErrRegistryNil, ErrStartNotFound, ErrOptionViolation,
//	    // or a wrapped hook/context error
//	}
//	if set.Contains(vasile) { ... }
//
// Errors
//
//   - ErrRegistryNil     if the registry pointer is nil.
//   - ErrStartNotFound   if the start person does not exist.
//   - ErrOptionViolation if an invalid Option was supplied (e.g. negative depth).
//   - Wrapped user-supplied hook errors from OnVisit, and context errors.
package ancestry
