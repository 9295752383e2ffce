// Package cousins implements the level-propagation climb over the
// common-ancestor frontier. See doc.go for the full contract and the
// semantics note.
package cousins

import (
	"fmt"

	"github.com/katalvlaran/kinship/ancestry"
	"github.com/katalvlaran/kinship/core"
)

// Grade computes the cousin grade between a and b.
//
// Returns NoRelation when the two share no ancestor; otherwise the number of
// frontier replacements performed while climbing from the common-ancestor
// set upward until no recorded parents remain (≥ 1 for any non-empty common
// set). Read-only: the registry is never mutated.
//
// On error the returned grade is NoRelation and must be ignored.
func Grade(reg *core.Registry, a, b core.ID, opts ...Option) (int, error) {
	if reg == nil {
		return NoRelation, ErrRegistryNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return NoRelation, o.err
	}

	// Collect both ancestor sets; cancellation propagates into the walks.
	ancA, err := ancestry.Ancestors(reg, a, ancestry.WithContext(o.Ctx))
	if err != nil {
		return NoRelation, fmt.Errorf("cousins: Ancestors(%q): %w", a, err)
	}
	ancB, err := ancestry.Ancestors(reg, b, ancestry.WithContext(o.Ctx))
	if err != nil {
		return NoRelation, fmt.Errorf("cousins: Ancestors(%q): %w", b, err)
	}

	// Disjoint (or either empty) ⇒ no relation, by value, not by error.
	frontier := ancA.Intersect(ancB)
	if frontier.Len() == 0 {
		return NoRelation, nil
	}

	// Climb: replace the frontier with the union of its members' recorded
	// parents until exhaustion, counting one grade per replacement. The
	// registry's acyclicity invariant bounds the climb by the depth of
	// recorded lineage.
	grade := 0
	for frontier.Len() > 0 {
		// cancellation check (once per level)
		select {
		case <-o.Ctx.Done():
			return NoRelation, fmt.Errorf("cousins: %w", o.Ctx.Err())
		default:
		}

		grade++
		o.OnLevel(grade, frontier.IDs())

		next := make(ancestry.Set)
		for _, id := range frontier.IDs() {
			parents, perr := reg.ParentsOf(id)
			if perr != nil {
				return NoRelation, fmt.Errorf("cousins: ParentsOf(%q): %w", id, perr)
			}
			for _, p := range parents {
				next.Add(p)
			}
		}
		frontier = next
	}

	return grade, nil
}
