package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"github.com/glimpseio/MiscKit/maybe"
)

// Order selects the traversal order of a reduction.
type Order int

const (
	// DepthFirst visits a node's subtree before its right siblings. For
	// document-like trees this is exactly document order, and it is the
	// cheaper order for the pending-work buffer. Recommended default.
	DepthFirst Order = iota
	// BreadthFirst visits all nodes of a depth level before descending.
	BreadthFirst
)

func (o Order) String() string {
	if o == BreadthFirst {
		return "breadth-first"
	}
	return "depth-first"
}

// Path locates a node relative to the root of a traversal: the root has the
// empty path, the child at position i (0-based, in document order) of a node
// with path p has path p + [i].
type Path []int

// ChildrenFunc returns the ordered children of a node. An error aborts the
// traversal and propagates to the caller.
type ChildrenFunc[T any] func(node T) ([]T, error)

// Reduction is the verdict of a step function: either continue the
// traversal with a new accumulator value, or stop and make that value the
// final result.
type Reduction[R any] struct {
	value R
	stop  bool
}

// Continue carries the accumulator into the next step.
func Continue[R any](v R) Reduction[R] {
	return Reduction[R]{value: v}
}

// Stop halts the traversal; v becomes the final result. Nodes still pending
// are not visited.
func Stop[R any](v R) Reduction[R] {
	return Reduction[R]{value: v, stop: true}
}

// StepFunc folds one node into the accumulator. An error aborts the
// traversal and propagates to the caller.
type StepFunc[T, R any] func(acc R, node T) (Reduction[R], error)

// IndexedStepFunc folds one node, identified by its path from the root,
// into the accumulator. Returning Nothing halts the traversal; the
// previously accumulated value then is the final result.
type IndexedStepFunc[T, R any] func(acc R, path Path, node T) (maybe.Maybe[R], error)

// Reduce folds a tree into a single result value.
//
// The traversal keeps a pending-work list seeded with the root. Each
// iteration removes the front item, applies step, and—unless step stopped
// the traversal—splices the item's children into the pending list: at the
// front for depth-first, at the back for breadth-first, preserving the
// children's own relative order. Every enqueued node is visited exactly
// once, unless a Stop cuts the traversal short.
func Reduce[T, R any](root T, initial R, order Order, children ChildrenFunc[T], step StepFunc[T, R]) (R, error) {
	tracer().Debugf("new %s reduction", order)
	acc := initial
	pending := newDeque[T](16)
	pending.pushBack(root)
	for pending.length() > 0 {
		node, _ := pending.popFront()
		r, err := step(acc, node)
		if err != nil {
			return acc, err
		}
		acc = r.value
		if r.stop {
			return acc, nil
		}
		chs, err := children(node)
		if err != nil {
			return acc, err
		}
		if order == DepthFirst {
			pending.spliceFront(chs)
		} else {
			pending.spliceBack(chs)
		}
	}
	return acc, nil
}

// pathed is a pending-work entry of an indexed traversal.
type pathed[T any] struct {
	path Path
	node T
}

// ReduceIndexed folds a tree like Reduce, but hands each step the path of
// the current node. The step halts the traversal by returning Nothing, in
// which case the previously accumulated value is the final result.
func ReduceIndexed[T, R any](root T, initial R, order Order, children ChildrenFunc[T], step IndexedStepFunc[T, R]) (R, error) {
	tracer().Debugf("new indexed %s reduction", order)
	acc := initial
	pending := newDeque[pathed[T]](16)
	pending.pushBack(pathed[T]{node: root})
	for pending.length() > 0 {
		entry, _ := pending.popFront()
		m, err := step(acc, entry.path, entry.node)
		if err != nil {
			return acc, err
		}
		v, ok := m.Get()
		if !ok {
			return acc, nil
		}
		acc = v
		chs, err := children(entry.node)
		if err != nil {
			return acc, err
		}
		entries := make([]pathed[T], len(chs))
		for i, ch := range chs {
			p := make(Path, len(entry.path)+1)
			copy(p, entry.path)
			p[len(entry.path)] = i
			entries[i] = pathed[T]{path: p, node: ch}
		}
		if order == DepthFirst {
			pending.spliceFront(entries)
		} else {
			pending.spliceBack(entries)
		}
	}
	return acc, nil
}
