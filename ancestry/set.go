package ancestry

import (
	"sort"

	"github.com/katalvlaran/kinship/core"
)

// Set is an unordered collection of person IDs with set semantics.
// It is the result type of Ancestors and the working frontier type of the
// cousins package.
type Set map[core.ID]struct{}

// NewSet returns a Set containing the given IDs.
func NewSet(ids ...core.ID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Add inserts id into the set.
func (s Set) Add(id core.ID) { s[id] = struct{}{} }

// Contains reports whether id is a member.
func (s Set) Contains(id core.ID) bool {
	_, ok := s[id]

	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// IDs returns the members in lexicographic ascending order.
// Deterministic enumeration surface for tests and hooks.
func (s Set) IDs() []core.ID {
	out := make([]core.ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Intersect returns a new Set holding the members present in both s and other.
// Sharing is symmetric: s.Intersect(o) and o.Intersect(s) are equal.
func (s Set) Intersect(other Set) Set {
	// Iterate the smaller operand.
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	out := make(Set)
	for id := range small {
		if large.Contains(id) {
			out.Add(id)
		}
	}

	return out
}
