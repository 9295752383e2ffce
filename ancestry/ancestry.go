// Package ancestry implements the upward breadth-first walk over parent
// edges of a core.Registry. See doc.go for the full contract.
package ancestry

import (
	"fmt"

	"github.com/katalvlaran/kinship/core"
)

// queueItem pairs a person ID with its generation distance from the start.
type queueItem struct {
	id    core.ID
	depth int
}

// walker encapsulates mutable traversal state.
type walker struct {
	reg     *core.Registry
	opts    Options
	queue   []queueItem
	visited map[core.ID]bool
	out     Set
}

// Ancestors collects the set of all distinct ancestors of startID,
// applying any number of functional Options.
// Returns ErrRegistryNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func Ancestors(reg *core.Registry, startID core.ID, opts ...Option) (Set, error) {
	if reg == nil {
		return nil, ErrRegistryNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start person
	if !reg.Has(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startID)
	}

	// Prepare walker; the start is marked visited but never added to the
	// result set, so a person is not their own ancestor.
	w := &walker{
		reg:     reg,
		opts:    o,
		queue:   []queueItem{{id: startID, depth: 0}},
		visited: map[core.ID]bool{startID: true},
		out:     make(Set),
	}

	// Main loop
	return w.out, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.climb(item); err != nil {
			return err
		}
	}

	return nil
}

// climb fetches the recorded parents of item, records each unseen one in the
// result set, fires OnVisit, and enqueues it for further climbing.
func (w *walker) climb(item queueItem) error {
	parents, err := w.reg.ParentsOf(item.id)
	if err != nil {
		return fmt.Errorf("ancestry: ParentsOf(%q): %w", item.id, err)
	}

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	for _, parent := range parents {
		// first time seen? (diamond lines converge here)
		if w.visited[parent] {
			continue
		}
		w.visited[parent] = true
		w.out.Add(parent)
		if err = w.opts.OnVisit(parent, nextDepth); err != nil {
			return fmt.Errorf("ancestry: OnVisit error at %q: %w", parent, err)
		}
		w.queue = append(w.queue, queueItem{id: parent, depth: nextDepth})
	}

	return nil
}
