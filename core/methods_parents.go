// File: methods_parents.go
// Role: parent-edge mutation & queries, acyclicity enforcement.
//
// Invariants:
//   - At most one father edge and one mother edge per person (append-only).
//   - No person is ever their own ancestor: every insert runs an upward
//     reachability check and is rejected with ErrCycle before any mutation.
//
// Concurrency:
//   - Existence checks under muPersons (read), edge tables under muRel
//     (write for mutation, read for queries). Lock order muPersons → muRel.

package core

import (
	"fmt"
	"sort"
)

// SetFather attaches the father link child → father.
// Links are append-only: a second father for the same child is rejected.
//
// Errors:
//   - ErrEmptyID: child or father is the zero ID.
//   - ErrPersonNotFound: child or father is not registered.
//   - ErrParentSet: a father link is already recorded for child.
//   - ErrCycle: the link would make child their own ancestor;
//     the graph is left unchanged.
//
// Complexity: O(A) where A is the number of ancestors of father.
func (r *Registry) SetFather(child, father ID) error {
	return r.setParents(child, father, None)
}

// SetMother attaches the mother link child → mother.
// Same contract as SetFather.
func (r *Registry) SetMother(child, mother ID) error {
	return r.setParents(child, None, mother)
}

// SetParents attaches up to two parent links in one atomic operation.
// Either father or mother may be None (unknown / untracked side); passing
// both as None is a no-op. Validation covers both links before either is
// recorded, so a rejected call never partially mutates the graph.
//
// Errors: as SetFather, plus ErrEmptyID only when child is the zero ID.
//
// Complexity: O(A) upward reachability per supplied parent.
func (r *Registry) SetParents(child, father, mother ID) error {
	return r.setParents(child, father, mother)
}

// FatherOf returns the father of id and whether one is recorded.
//
// Errors:
//   - ErrEmptyID, ErrPersonNotFound.
//
// Complexity: O(1).
func (r *Registry) FatherOf(id ID) (ID, bool, error) {
	return r.parentOf(id, r.father)
}

// MotherOf returns the mother of id and whether one is recorded.
// Same contract as FatherOf.
func (r *Registry) MotherOf(id ID) (ID, bool, error) {
	return r.parentOf(id, r.mother)
}

// ParentsOf returns the 0–2 recorded parents of id, father first.
// A person with one untracked side yields a single-element slice; this is
// valid, not an error.
//
// Errors:
//   - ErrEmptyID, ErrPersonNotFound.
//
// Complexity: O(1).
func (r *Registry) ParentsOf(id ID) ([]ID, error) {
	if err := r.mustHave(id); err != nil {
		return nil, err
	}

	r.muRel.RLock()
	defer r.muRel.RUnlock()

	out := make([]ID, 0, 2)
	if f, ok := r.father[id]; ok {
		out = append(out, f)
	}
	if m, ok := r.mother[id]; ok {
		out = append(out, m)
	}

	return out, nil
}

// ChildrenOf returns the IDs of every person recording id as father or
// mother, sorted ascending. Derived from the edge tables on each call;
// there is no stored child list to fall out of sync.
//
// Errors:
//   - ErrEmptyID, ErrPersonNotFound.
//
// Complexity: O(V log V) over the edge tables.
func (r *Registry) ChildrenOf(id ID) ([]ID, error) {
	if err := r.mustHave(id); err != nil {
		return nil, err
	}

	r.muRel.RLock()
	defer r.muRel.RUnlock()

	seen := make(map[ID]struct{})
	for child, f := range r.father {
		if f == id {
			seen[child] = struct{}{}
		}
	}
	for child, m := range r.mother {
		if m == id {
			seen[child] = struct{}{}
		}
	}

	out := make([]ID, 0, len(seen))
	for child := range seen {
		out = append(out, child)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// setParents validates and records the supplied links atomically.
func (r *Registry) setParents(child, father, mother ID) error {
	if child == None {
		return ErrEmptyID
	}
	if err := r.mustHave(child); err != nil {
		return err
	}
	for _, parent := range []ID{father, mother} {
		if parent == None {
			continue
		}
		if err := r.mustHave(parent); err != nil {
			return err
		}
	}

	r.muRel.Lock()
	defer r.muRel.Unlock()

	// Validate both links before recording either.
	if father != None {
		if _, ok := r.father[child]; ok {
			return fmt.Errorf("SetParents(%q): father: %w", child, ErrParentSet)
		}
		if r.reachesLocked(father, child) {
			return fmt.Errorf("SetParents(%q, father=%q): %w", child, father, ErrCycle)
		}
	}
	if mother != None {
		if _, ok := r.mother[child]; ok {
			return fmt.Errorf("SetParents(%q): mother: %w", child, ErrParentSet)
		}
		if r.reachesLocked(mother, child) {
			return fmt.Errorf("SetParents(%q, mother=%q): %w", child, mother, ErrCycle)
		}
	}

	if father != None {
		r.father[child] = father
	}
	if mother != None {
		r.mother[child] = mother
	}

	return nil
}

// reachesLocked reports whether target is reachable from start by following
// parent edges upward, including start == target. This is exactly the
// condition under which the edge child → start would close a cycle.
// Caller must hold muRel.
func (r *Registry) reachesLocked(start, target ID) bool {
	if start == target {
		return true
	}

	// Upward BFS with a visited set; terminates because the recorded
	// parent graph is acyclic (invariant held before this insert).
	visited := map[ID]struct{}{start: {}}
	frontier := []ID{start}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		for _, next := range []ID{r.father[cur], r.mother[cur]} {
			if next == None {
				continue
			}
			if next == target {
				return true
			}
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			frontier = append(frontier, next)
		}
	}

	return false
}

// parentOf is the shared read path for FatherOf/MotherOf.
func (r *Registry) parentOf(id ID, table map[ID]ID) (ID, bool, error) {
	if err := r.mustHave(id); err != nil {
		return None, false, err
	}

	r.muRel.RLock()
	defer r.muRel.RUnlock()

	p, ok := table[id]

	return p, ok, nil
}

// mustHave validates id is non-zero and registered.
func (r *Registry) mustHave(id ID) error {
	if id == None {
		return ErrEmptyID
	}
	if !r.Has(id) {
		return fmt.Errorf("%q: %w", id, ErrPersonNotFound)
	}

	return nil
}
