// SPDX-License-Identifier: MIT
// Package: kinship/builder
//
// fixtures.go - implementation of all family-fixture constructors.
//
// Contract:
//   - Every constructor validates inputs before touching the registry.
//   - Name schemes are deterministic: "<prefix>-<role>" for role-based
//     fixtures, "<prefix>-g<i>" for lineage generations.
//   - Child sexes alternate Male/Female by index for reproducible trees.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kinship/core"
)

// File-local constants for method tagging in wrapped errors.
const (
	methodCouple       = "Couple"
	methodNuclear      = "Nuclear"
	methodFullSiblings = "FullSiblings"
	methodLineage      = "Lineage"
	methodDiamond      = "Diamond"

	minLineageGenerations = 2
)

// Couple registers a married man and woman and returns their handles.
func Couple(reg *core.Registry, husband, wife string) (core.ID, core.ID, error) {
	if reg == nil {
		return core.None, core.None, fmt.Errorf("%s: %w", methodCouple, ErrRegistryNil)
	}

	h, err := reg.Add(husband, core.Male)
	if err != nil {
		return core.None, core.None, fmt.Errorf("%s: Add(%q): %w", methodCouple, husband, err)
	}
	w, err := reg.Add(wife, core.Female)
	if err != nil {
		return core.None, core.None, fmt.Errorf("%s: Add(%q): %w", methodCouple, wife, err)
	}
	if err = reg.Marry(h, w); err != nil {
		return core.None, core.None, fmt.Errorf("%s: Marry: %w", methodCouple, err)
	}

	return h, w, nil
}

// Nuclear registers a married couple with the named children and returns
// husband, wife and the children's handles in argument order.
func Nuclear(reg *core.Registry, husband, wife string, children ...string) (core.ID, core.ID, []core.ID, error) {
	if len(children) == 0 {
		return core.None, core.None, nil, fmt.Errorf("%s: %w", methodNuclear, ErrTooFewChildren)
	}

	h, w, err := Couple(reg, husband, wife)
	if err != nil {
		return core.None, core.None, nil, fmt.Errorf("%s: %w", methodNuclear, err)
	}

	kids := make([]core.ID, len(children))
	for i, name := range children {
		sex := core.Male
		if i%2 == 1 {
			sex = core.Female
		}
		kids[i], err = reg.HaveChild(h, w, name, sex)
		if err != nil {
			return core.None, core.None, nil, fmt.Errorf("%s: HaveChild(%q): %w", methodNuclear, name, err)
		}
	}

	return h, w, kids, nil
}

// FullSiblings registers two children sharing both parents.
// Returns the two siblings, then the father and mother.
func FullSiblings(reg *core.Registry, prefix string) (core.ID, core.ID, core.ID, core.ID, error) {
	if err := admit(reg, prefix, methodFullSiblings); err != nil {
		return core.None, core.None, core.None, core.None, err
	}

	f, m, kids, err := Nuclear(reg, prefix+"-father", prefix+"-mother",
		prefix+"-elder", prefix+"-younger")
	if err != nil {
		return core.None, core.None, core.None, core.None, fmt.Errorf("%s: %w", methodFullSiblings, err)
	}

	return kids[0], kids[1], f, m, nil
}

// Lineage registers an n-generation father chain and returns the handles
// youngest first: out[0] is the descendant, out[n-1] the topmost ancestor
// with no recorded parents.
func Lineage(reg *core.Registry, prefix string, n int) ([]core.ID, error) {
	if err := admit(reg, prefix, methodLineage); err != nil {
		return nil, err
	}
	if n < minLineageGenerations {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodLineage, n, minLineageGenerations, ErrTooFewGenerations)
	}

	out := make([]core.ID, n)
	var err error
	for i := 0; i < n; i++ {
		if out[i], err = reg.Add(fmt.Sprintf("%s-g%d", prefix, i), core.Male); err != nil {
			return nil, fmt.Errorf("%s: Add: %w", methodLineage, err)
		}
	}
	// Link child → father in ascending generation order.
	for i := 1; i < n; i++ {
		if err = reg.SetFather(out[i-1], out[i]); err != nil {
			return nil, fmt.Errorf("%s: SetFather: %w", methodLineage, err)
		}
	}

	return out, nil
}

// Diamond registers the shared-ancestor diamond used by deduplication tests:
// a child whose father and mother are half-siblings through the apex.
//
//	       apex
//	       /  \
//	  father  mother
//	       \  /
//	      child
//
// Returns child, father, mother, apex.
func Diamond(reg *core.Registry, prefix string) (core.ID, core.ID, core.ID, core.ID, error) {
	if err := admit(reg, prefix, methodDiamond); err != nil {
		return core.None, core.None, core.None, core.None, err
	}

	apex, err := reg.Add(prefix+"-apex", core.Male)
	if err != nil {
		return core.None, core.None, core.None, core.None, fmt.Errorf("%s: Add: %w", methodDiamond, err)
	}
	father, err := reg.Add(prefix+"-father", core.Male)
	if err != nil {
		return core.None, core.None, core.None, core.None, fmt.Errorf("%s: Add: %w", methodDiamond, err)
	}
	mother, err := reg.Add(prefix+"-mother", core.Female)
	if err != nil {
		return core.None, core.None, core.None, core.None, fmt.Errorf("%s: Add: %w", methodDiamond, err)
	}
	child, err := reg.Add(prefix+"-child", core.Male)
	if err != nil {
		return core.None, core.None, core.None, core.None, fmt.Errorf("%s: Add: %w", methodDiamond, err)
	}

	// Both middle persons descend from the apex; the child closes the diamond.
	for _, link := range []struct{ child, father core.ID }{
		{father, apex},
		{mother, apex},
		{child, father},
	} {
		if err = reg.SetFather(link.child, link.father); err != nil {
			return core.None, core.None, core.None, core.None, fmt.Errorf("%s: SetFather: %w", methodDiamond, err)
		}
	}
	if err = reg.SetMother(child, mother); err != nil {
		return core.None, core.None, core.None, core.None, fmt.Errorf("%s: SetMother: %w", methodDiamond, err)
	}

	return child, father, mother, apex, nil
}

// admit runs the shared nil-registry and prefix validation.
func admit(reg *core.Registry, prefix, method string) error {
	if reg == nil {
		return fmt.Errorf("%s: %w", method, ErrRegistryNil)
	}
	if prefix == "" {
		return fmt.Errorf("%s: %w", method, ErrEmptyPrefix)
	}

	return nil
}
