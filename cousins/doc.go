// Package cousins computes the cousin grade between two persons of a
// core.Registry: an integer describing how many recorded generations exist
// above their common-ancestor frontier, or NoRelation (-1) when the two
// share no ancestry at all.
//
// What
//
//   - Grade(reg, a, b) collects both ancestor sets (package ancestry),
//     intersects them, and — if the intersection is non-empty — climbs:
//     the common set is repeatedly replaced by the union of its members'
//     recorded parents, one grade per replacement, until the frontier
//     runs out of recorded history. The replacement count is the grade.
//   - An empty intersection (including either person having no recorded
//     ancestors at all) yields NoRelation, reported as a value, never as
//     an error — callers branch on the sentinel explicitly.
//   - The query is pure and symmetric: Grade(a, b) == Grade(b, a), and
//     Grade(a, a) is well-defined (a shares their full ancestor set with
//     themselves, so it climbs normally).
//
// Semantics note
//
//	This grade is NOT the conventional genealogical degree of cousinhood.
//	It does not measure the distance from a or b down to the nearest common
//	ancestor; it measures how much further recorded lineage exists ABOVE
//	the common-ancestor set. Any non-empty common set costs at least one
//	replacement, so full siblings whose shared parents have no recorded
//	parents grade as 1. The behavior is preserved deliberately; renaming or
//	"fixing" it would change observable outputs.
//
// Complexity (A = larger ancestor set, D = depth of recorded lineage)
//
//   - Time:   O(A + D·A)  (two collections, then at most D climb levels)
//   - Memory: O(A)
//
// Usage
//
//	grade, err := cousins.Grade(reg, ion, elena)
//	if err != nil { ... }
//	if grade == cousins.NoRelation {
//	    // disjoint ancestry
//	}
//
// Errors
//
//   - ErrRegistryNil     if the registry pointer is nil.
//   - ErrOptionViolation if an invalid Option was supplied.
//   - core.ErrPersonNotFound (wrapped via ancestry) if either person is absent.
//   - Context errors when a supplied context is cancelled mid-climb.
package cousins
