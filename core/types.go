// This file declares ID, Sex, Person, Registry, PersonOption,
// sentinel errors, and the NewRegistry constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core registry operations.
// Branch on them with errors.Is; context is attached at call sites via %w.
var (
	// ErrEmptyName indicates a person was registered with an empty name.
	ErrEmptyName = errors.New("core: person name is empty")

	// ErrEmptyID indicates an operation received the zero ID.
	ErrEmptyID = errors.New("core: person ID is empty")

	// ErrPersonNotFound indicates an operation referenced a non-existent person.
	ErrPersonNotFound = errors.New("core: person not found")

	// ErrCycle indicates a parent link would make a person their own ancestor.
	ErrCycle = errors.New("core: parent link would create ancestry cycle")

	// ErrParentSet indicates the father or mother link is already recorded.
	ErrParentSet = errors.New("core: parent link already set")

	// ErrSelfUnion indicates an attempted marriage of a person to themselves.
	ErrSelfUnion = errors.New("core: cannot marry self")

	// ErrAlreadyMarried indicates one of the partners already has a spouse.
	ErrAlreadyMarried = errors.New("core: person already married")

	// ErrSameSexUnion indicates a marriage or procreation attempt between
	// persons of the same sex (the registry's minimal well-formedness rule).
	ErrSameSexUnion = errors.New("core: same-sex union not modeled")

	// ErrNotMarried indicates a divorce of two persons not married to each other.
	ErrNotMarried = errors.New("core: persons not married to each other")
)

// ID is an opaque handle to a person inside a Registry.
// Handles are generated by Add and are unique within their Registry.
// The zero value None denotes "unknown" (e.g. an untracked parent).
type ID string

// None is the zero ID: no person / unknown parent.
const None ID = ""

// Sex is the binary sex tag carried by every person.
type Sex uint8

const (
	// Male is rendered as "m" in descriptions.
	Male Sex = iota

	// Female is rendered as "f" in descriptions.
	Female
)

// String returns the single-letter tag used in descriptions.
func (s Sex) String() string {
	if s == Female {
		return "f"
	}

	return "m"
}

// Person is a read-only snapshot of a registered individual.
//
// Job and School are optional role attributes: a person in schooling carries
// School, an employed person carries Job. Role transitions (BecomeAdult) are
// field updates on the same identity — parent and ancestor links are never
// re-attached.
type Person struct {
	// ID is the unique handle for this person within its Registry.
	ID ID

	// Name is the display name. Names need not be unique; IDs are.
	Name string

	// Sex is the binary sex tag.
	Sex Sex

	// Job is the employment attribute; empty if none recorded.
	Job string

	// School is the schooling attribute; empty if none recorded.
	School string
}

// PersonOption configures optional attributes of a person at registration.
type PersonOption func(*Person)

// WithJob records an employment attribute on the new person.
func WithJob(job string) PersonOption {
	return func(p *Person) { p.Job = job }
}

// WithSchool records a schooling attribute on the new person.
func WithSchool(school string) PersonOption {
	return func(p *Person) { p.School = school }
}

// Registry is the in-memory family graph store.
//
// Persons live in an arena keyed by ID; relations live in separate edge
// tables (father, mother, spouse) so that node identity never carries
// back-references. muPersons protects the person catalog; muRel protects
// the relation tables. Lock order is muPersons → muRel.
type Registry struct {
	muPersons sync.RWMutex // guards persons and nextSeq
	muRel     sync.RWMutex // guards father, mother and spouse tables

	// Storage
	nextSeq uint64         // monotonic suffix for generated IDs
	persons map[ID]*Person // person ID → record

	// Relation tables
	father map[ID]ID // child ID → father ID
	mother map[ID]ID // child ID → mother ID
	spouse map[ID]ID // symmetric: both directions stored
}

// NewRegistry creates an empty Registry.
// Complexity: O(1)
func NewRegistry() *Registry {
	return &Registry{
		persons: make(map[ID]*Person),
		father:  make(map[ID]ID),
		mother:  make(map[ID]ID),
		spouse:  make(map[ID]ID),
	}
}
