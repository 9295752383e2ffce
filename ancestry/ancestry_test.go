package ancestry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinship/ancestry"
	"github.com/katalvlaran/kinship/core"
)

// mustAdd registers a person and fails the test on error.
func mustAdd(t *testing.T, r *core.Registry, name string, sex core.Sex) core.ID {
	t.Helper()
	id, err := r.Add(name, sex)
	require.NoError(t, err)
	return id
}

// TestAncestors_NilRegistry verifies the nil-registry guard.
func TestAncestors_NilRegistry(t *testing.T) {
	_, err := ancestry.Ancestors(nil, "X#1")
	assert.ErrorIs(t, err, ancestry.ErrRegistryNil)
}

// TestAncestors_StartNotFound verifies unknown start persons are rejected.
func TestAncestors_StartNotFound(t *testing.T) {
	r := core.NewRegistry()
	_, err := ancestry.Ancestors(r, "Ghost#1")
	assert.ErrorIs(t, err, ancestry.ErrStartNotFound)
}

// TestAncestors_NoParents verifies a rootless person yields the empty set.
func TestAncestors_NoParents(t *testing.T) {
	r := core.NewRegistry()
	alone := mustAdd(t, r, "Adam", core.Male)

	set, err := ancestry.Ancestors(r, alone)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Contains(alone)) // never your own ancestor
}

// TestAncestors_SingleKnownSide walks through the only recorded side.
//
//	grandfather → father → child      (mothers untracked throughout)
func TestAncestors_SingleKnownSide(t *testing.T) {
	r := core.NewRegistry()
	child := mustAdd(t, r, "Alex", core.Male)
	father := mustAdd(t, r, "Ion", core.Male)
	grandfather := mustAdd(t, r, "Vasile", core.Male)
	require.NoError(t, r.SetFather(child, father))
	require.NoError(t, r.SetFather(father, grandfather))

	set, err := ancestry.Ancestors(r, child)
	require.NoError(t, err)
	assert.Equal(t, []core.ID{father, grandfather}, set.IDs())
}

// TestAncestors_BothSides collects the full two-sided tree.
//
//	 Vasile   Maria     Gheorghe  Mihaela
//	      \   /              \    /
//	       Ion ──────────────Elena
//	                │
//	              Alex
func TestAncestors_BothSides(t *testing.T) {
	r := core.NewRegistry()
	alex := mustAdd(t, r, "Alex", core.Male)
	ion := mustAdd(t, r, "Ion", core.Male)
	elena := mustAdd(t, r, "Elena", core.Female)
	vasile := mustAdd(t, r, "Vasile", core.Male)
	maria := mustAdd(t, r, "Maria", core.Female)
	gheorghe := mustAdd(t, r, "Gheorghe", core.Male)
	mihaela := mustAdd(t, r, "Mihaela", core.Female)

	require.NoError(t, r.SetParents(alex, ion, elena))
	require.NoError(t, r.SetParents(ion, vasile, maria))
	require.NoError(t, r.SetParents(elena, gheorghe, mihaela))

	set, err := ancestry.Ancestors(r, alex)
	require.NoError(t, err)
	assert.Equal(t, 6, set.Len())
	for _, id := range []core.ID{ion, elena, vasile, maria, gheorghe, mihaela} {
		assert.True(t, set.Contains(id), "missing ancestor %s", id)
	}
	assert.False(t, set.Contains(alex))
}

// TestAncestors_DiamondDeduplicated verifies a shared ancestor reached via
// two independent lines appears exactly once.
//
//	      Pavel
//	      /   \
//	 father   mother      (half-siblings sharing Pavel)
//	      \   /
//	      child
func TestAncestors_DiamondDeduplicated(t *testing.T) {
	r := core.NewRegistry()
	child := mustAdd(t, r, "Child", core.Male)
	father := mustAdd(t, r, "Father", core.Male)
	mother := mustAdd(t, r, "Mother", core.Female)
	pavel := mustAdd(t, r, "Pavel", core.Male)

	require.NoError(t, r.SetParents(child, father, mother))
	require.NoError(t, r.SetFather(father, pavel))
	require.NoError(t, r.SetFather(mother, pavel))

	set, err := ancestry.Ancestors(r, child)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len()) // father, mother, pavel — pavel once
	assert.True(t, set.Contains(pavel))
}

// TestAncestors_MaxDepth verifies the generation limit is honored.
func TestAncestors_MaxDepth(t *testing.T) {
	r := core.NewRegistry()
	// Four-deep father chain G0 ← G1 ← G2 ← G3.
	ids := make([]core.ID, 4)
	names := []string{"G0", "G1", "G2", "G3"}
	for i, n := range names {
		ids[i] = mustAdd(t, r, n, core.Male)
	}
	for i := 1; i < len(ids); i++ {
		require.NoError(t, r.SetFather(ids[i-1], ids[i]))
	}

	set, err := ancestry.Ancestors(r, ids[0], ancestry.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []core.ID{ids[1], ids[2]}, set.IDs()) // G3 beyond the limit
}

// TestAncestors_NegativeDepthOption verifies option validation.
func TestAncestors_NegativeDepthOption(t *testing.T) {
	r := core.NewRegistry()
	id := mustAdd(t, r, "Ion", core.Male)

	_, err := ancestry.Ancestors(r, id, ancestry.WithMaxDepth(-1))
	assert.ErrorIs(t, err, ancestry.ErrOptionViolation)
}

// TestAncestors_OnVisitDepths verifies hook invocations carry generation
// distances and fire once per ancestor.
func TestAncestors_OnVisitDepths(t *testing.T) {
	r := core.NewRegistry()
	child := mustAdd(t, r, "Alex", core.Male)
	father := mustAdd(t, r, "Ion", core.Male)
	grandfather := mustAdd(t, r, "Vasile", core.Male)
	require.NoError(t, r.SetFather(child, father))
	require.NoError(t, r.SetFather(father, grandfather))

	depths := make(map[core.ID]int)
	_, err := ancestry.Ancestors(r, child, ancestry.WithOnVisit(func(id core.ID, depth int) error {
		depths[id] = depth
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, map[core.ID]int{father: 1, grandfather: 2}, depths)
}

// TestAncestors_OnVisitAborts verifies a hook error stops the walk and is
// surfaced wrapped.
func TestAncestors_OnVisitAborts(t *testing.T) {
	r := core.NewRegistry()
	child := mustAdd(t, r, "Alex", core.Male)
	father := mustAdd(t, r, "Ion", core.Male)
	require.NoError(t, r.SetFather(child, father))

	boom := errors.New("boom")
	_, err := ancestry.Ancestors(r, child, ancestry.WithOnVisit(func(core.ID, int) error {
		return boom
	}))
	assert.ErrorIs(t, err, boom)
}

// TestAncestors_ContextCancelled verifies cancellation aborts the walk.
func TestAncestors_ContextCancelled(t *testing.T) {
	r := core.NewRegistry()
	id := mustAdd(t, r, "Ion", core.Male)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancelled before the first dequeue

	_, err := ancestry.Ancestors(r, id, ancestry.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSet_Intersect covers symmetry and the empty intersection.
func TestSet_Intersect(t *testing.T) {
	a := ancestry.NewSet("A#1", "B#2", "C#3")
	b := ancestry.NewSet("B#2", "C#3", "D#4")

	assert.Equal(t, a.Intersect(b), b.Intersect(a)) // sharing is symmetric
	assert.Equal(t, []core.ID{"B#2", "C#3"}, a.Intersect(b).IDs())

	empty := ancestry.NewSet("Z#9")
	assert.Equal(t, 0, a.Intersect(empty).Len())
}
