// File: methods_persons.go
// Role: person lifecycle & catalog queries.
//
// Determinism:
//   - Persons() returns IDs sorted lexicographically ascending.
//   - Generated IDs are "<name>#<seq>" with a monotonic sequence, so equal
//     registration order always yields equal handles.
//
// Concurrency:
//   - Catalog protected by muPersons; no relation locks are touched here.

package core

import (
	"fmt"
	"sort"
)

// Add registers a new person and returns the generated ID handle.
// Duplicate names are permitted; every call yields a fresh identity.
//
// Errors:
//   - ErrEmptyName: if name == "".
//
// Complexity: O(1) amortized.
func (r *Registry) Add(name string, sex Sex, opts ...PersonOption) (ID, error) {
	if name == "" {
		return None, ErrEmptyName
	}

	r.muPersons.Lock()
	defer r.muPersons.Unlock()

	r.nextSeq++
	p := &Person{
		ID:   ID(fmt.Sprintf("%s#%d", name, r.nextSeq)),
		Name: name,
		Sex:  sex,
	}
	for _, opt := range opts {
		opt(p)
	}
	r.persons[p.ID] = p

	return p.ID, nil
}

// Person returns a snapshot copy of the person record.
// Mutating the returned value never affects the registry.
//
// Errors:
//   - ErrEmptyID: if id is the zero ID.
//   - ErrPersonNotFound: if the person does not exist.
//
// Complexity: O(1).
func (r *Registry) Person(id ID) (Person, error) {
	if id == None {
		return Person{}, ErrEmptyID
	}

	r.muPersons.RLock()
	defer r.muPersons.RUnlock()

	p, ok := r.persons[id]
	if !ok {
		return Person{}, fmt.Errorf("Person(%q): %w", id, ErrPersonNotFound)
	}

	return *p, nil
}

// Has reports whether the person ID exists (zero ID ⇒ false).
// Complexity: O(1).
func (r *Registry) Has(id ID) bool {
	if id == None {
		return false
	}

	r.muPersons.RLock()
	defer r.muPersons.RUnlock()
	_, ok := r.persons[id]

	return ok
}

// Persons returns all person IDs in lexicographic ascending order.
// Stable enumeration surface; rely on it for reproducible outputs.
// Complexity: O(V log V).
func (r *Registry) Persons() []ID {
	r.muPersons.RLock()
	defer r.muPersons.RUnlock()

	ids := make([]ID, 0, len(r.persons))
	for id := range r.persons {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Count returns the current number of registered persons.
// Complexity: O(1).
func (r *Registry) Count() int {
	r.muPersons.RLock()
	defer r.muPersons.RUnlock()

	return len(r.persons)
}

// SetJob updates the employment attribute of an existing person.
//
// Errors:
//   - ErrEmptyID, ErrPersonNotFound.
//
// Complexity: O(1).
func (r *Registry) SetJob(id ID, job string) error {
	return r.update(id, func(p *Person) { p.Job = job })
}

// SetSchool updates the schooling attribute of an existing person.
//
// Errors:
//   - ErrEmptyID, ErrPersonNotFound.
//
// Complexity: O(1).
func (r *Registry) SetSchool(id ID, school string) error {
	return r.update(id, func(p *Person) { p.School = school })
}

// BecomeAdult transitions a person out of schooling into employment.
// Same identity: every parent, child, spouse and ancestor link recorded
// against id remains valid after the transition.
//
// Errors:
//   - ErrEmptyID, ErrPersonNotFound.
//
// Complexity: O(1).
func (r *Registry) BecomeAdult(id ID, job string) error {
	return r.update(id, func(p *Person) {
		p.Job = job
		p.School = ""
	})
}

// update applies fn to the live record under the catalog write lock.
func (r *Registry) update(id ID, fn func(*Person)) error {
	if id == None {
		return ErrEmptyID
	}

	r.muPersons.Lock()
	defer r.muPersons.Unlock()

	p, ok := r.persons[id]
	if !ok {
		return fmt.Errorf("update(%q): %w", id, ErrPersonNotFound)
	}
	fn(p)

	return nil
}

// nameOf returns the display name for id, or fallback when id is None.
// Caller must not hold muPersons.
func (r *Registry) nameOf(id ID, fallback string) string {
	if id == None {
		return fallback
	}

	r.muPersons.RLock()
	defer r.muPersons.RUnlock()

	if p, ok := r.persons[id]; ok {
		return p.Name
	}

	return fallback
}
