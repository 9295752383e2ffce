// File: methods_union.go
// Role: marriage bookkeeping, procreation, and description formatting.
//
// Marriage is an explicit symmetric relation table (both directions stored),
// never a back-pointer on the person record. The rules here (no self-union,
// no bigamy, opposite sexes only) are data-entry rules of the modeled domain,
// not graph invariants; the ancestry packages never read the spouse table.

package core

import (
	"fmt"
	"strings"
)

// Marry records a symmetric marriage between a and b.
//
// Errors:
//   - ErrEmptyID, ErrPersonNotFound: invalid partner handle.
//   - ErrSelfUnion: a == b.
//   - ErrSameSexUnion: partners have the same sex tag.
//   - ErrAlreadyMarried: either partner already has a spouse.
//
// Complexity: O(1).
func (r *Registry) Marry(a, b ID) error {
	pa, err := r.Person(a)
	if err != nil {
		return err
	}
	pb, err := r.Person(b)
	if err != nil {
		return err
	}
	if a == b {
		return ErrSelfUnion
	}
	if pa.Sex == pb.Sex {
		return fmt.Errorf("Marry(%q, %q): %w", a, b, ErrSameSexUnion)
	}

	r.muRel.Lock()
	defer r.muRel.Unlock()

	if _, ok := r.spouse[a]; ok {
		return fmt.Errorf("Marry(%q): %w", a, ErrAlreadyMarried)
	}
	if _, ok := r.spouse[b]; ok {
		return fmt.Errorf("Marry(%q): %w", b, ErrAlreadyMarried)
	}

	r.spouse[a] = b
	r.spouse[b] = a

	return nil
}

// Divorce removes the marriage between a and b.
//
// Errors:
//   - ErrEmptyID, ErrPersonNotFound: invalid partner handle.
//   - ErrNotMarried: a and b are not married to each other.
//
// Complexity: O(1).
func (r *Registry) Divorce(a, b ID) error {
	if err := r.mustHave(a); err != nil {
		return err
	}
	if err := r.mustHave(b); err != nil {
		return err
	}

	r.muRel.Lock()
	defer r.muRel.Unlock()

	if r.spouse[a] != b || a == b {
		return fmt.Errorf("Divorce(%q, %q): %w", a, b, ErrNotMarried)
	}

	delete(r.spouse, a)
	delete(r.spouse, b)

	return nil
}

// SpouseOf returns the current spouse of id and whether one is recorded.
//
// Errors:
//   - ErrEmptyID, ErrPersonNotFound.
//
// Complexity: O(1).
func (r *Registry) SpouseOf(id ID) (ID, bool, error) {
	if err := r.mustHave(id); err != nil {
		return None, false, err
	}

	r.muRel.RLock()
	defer r.muRel.RUnlock()

	s, ok := r.spouse[id]

	return s, ok, nil
}

// HaveChild registers a child of the pair (a, b) and attaches both parent
// links in one operation. The male partner is recorded as father, the female
// as mother, regardless of argument order. A fresh person has no descendants,
// so the insert cannot violate acyclicity and needs no reachability check.
//
// Errors:
//   - ErrEmptyID, ErrPersonNotFound: invalid partner handle.
//   - ErrSameSexUnion: partners have the same sex tag.
//   - ErrEmptyName: child name is empty.
//
// Complexity: O(1).
func (r *Registry) HaveChild(a, b ID, name string, sex Sex, opts ...PersonOption) (ID, error) {
	pa, err := r.Person(a)
	if err != nil {
		return None, err
	}
	pb, err := r.Person(b)
	if err != nil {
		return None, err
	}
	if pa.Sex == pb.Sex {
		return None, fmt.Errorf("HaveChild(%q, %q): %w", a, b, ErrSameSexUnion)
	}

	father, mother := a, b
	if pa.Sex == Female {
		father, mother = b, a
	}

	child, err := r.Add(name, sex, opts...)
	if err != nil {
		return None, err
	}

	r.muRel.Lock()
	r.father[child] = father
	r.mother[child] = mother
	r.muRel.Unlock()

	return child, nil
}

// Describe renders a one-line summary of a person.
//
// A person with a schooling attribute is described with their parents:
//
//	Name: Alex, Sex: m, School: Primary School, Mother: Elena, Father: Ion
//
// otherwise with job, children and marital status:
//
//	Name: Ion, Sex: m, Job: engineer, Children: Alex, Alexandra, Married to: No one
//
// Errors:
//   - ErrEmptyID, ErrPersonNotFound.
//
// Complexity: O(V log V) (dominated by the derived children scan).
func (r *Registry) Describe(id ID) (string, error) {
	p, err := r.Person(id)
	if err != nil {
		return "", err
	}

	if p.School != "" {
		mother, _, _ := r.MotherOf(id)
		father, _, _ := r.FatherOf(id)

		return fmt.Sprintf("Name: %s, Sex: %s, School: %s, Mother: %s, Father: %s",
			p.Name, p.Sex, p.School, r.nameOf(mother, "Unknown"), r.nameOf(father, "Unknown")), nil
	}

	job := p.Job
	if job == "" {
		job = "None"
	}

	children := "None"
	if kids, kerr := r.ChildrenOf(id); kerr == nil && len(kids) > 0 {
		names := make([]string, len(kids))
		for i, kid := range kids {
			names[i] = r.nameOf(kid, string(kid))
		}
		children = strings.Join(names, ", ")
	}

	spouse, married, _ := r.SpouseOf(id)
	marriedTo := "No one"
	if married {
		marriedTo = r.nameOf(spouse, string(spouse))
	}

	return fmt.Sprintf("Name: %s, Sex: %s, Job: %s, Children: %s, Married to: %s",
		p.Name, p.Sex, job, children, marriedTo), nil
}
