// Package core defines the central Registry, Person, and relation types,
// and provides thread-safe primitives for building and querying a family graph.
//
// What
//
//   - Register persons (name, sex, optional job/school attributes) and receive
//     opaque ID handles; the Registry owns all storage (arena model), callers
//     never hold pointers into it.
//   - Attach father/mother links after construction (backfilling ancestry is
//     a first-class operation, not a special case).
//   - Maintain marriage as a separate symmetric relation table, decoupled
//     from person identity.
//   - Every parent-link mutation is validated against the acyclicity
//     invariant: no person may become their own ancestor.
//
// Relations
//
//	Parent links are directed edges stored child → father and child → mother
//	in two edge tables; a person has at most one of each. Children are derived
//	from the edge tables on demand, so there are no back-reference lists to
//	keep in sync. The parent graph therefore always forms a DAG converging
//	upward, which guarantees termination for every traversal in the ancestry
//	and cousins packages.
//
// Concurrency
//
//	Two sync.RWMutex locks are used internally (muPersons for the person
//	catalog, muRel for the relation tables), acquired in that order when both
//	are needed. Concurrent queries are safe; mutations take write locks and
//	are atomic (validate first, mutate after — a rejected operation leaves
//	the graph untouched).
//
// Errors
//
//	ErrEmptyName       - person name is the empty string.
//	ErrEmptyID         - ID argument is the zero ID.
//	ErrPersonNotFound  - requested person does not exist.
//	ErrCycle           - parent link would make a person their own ancestor.
//	ErrParentSet       - father/mother link already recorded (links are append-only).
//	ErrSelfUnion       - marriage of a person to themselves.
//	ErrAlreadyMarried  - one of the partners already has a spouse.
//	ErrSameSexUnion    - marriage or procreation between persons of the same sex.
//	ErrNotMarried      - divorce of two persons not married to each other.
package core
