package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"github.com/glimpseio/MiscKit/maybe"
)

// Map visits every node of the tree and collects transform(node), in
// visitation order.
func Map[T, R any](root T, order Order, children ChildrenFunc[T], transform func(T) R) ([]R, error) {
	return Reduce(root, []R(nil), order, children,
		func(acc []R, node T) (Reduction[[]R], error) {
			return Continue(append(acc, transform(node))), nil
		})
}

// Count returns the total number of nodes in the tree, i.e. the number of
// step invocations a full reduction performs. The result is independent of
// the traversal order.
func Count[T any](root T, order Order, children ChildrenFunc[T]) (int, error) {
	return Reduce(root, 0, order, children,
		func(acc int, _ T) (Reduction[int], error) {
			return Continue(acc + 1), nil
		})
}

// Filter collects the nodes satisfying the predicate, in visitation order.
func Filter[T any](root T, order Order, children ChildrenFunc[T], predicate func(T) bool) ([]T, error) {
	return ReduceIndexed(root, []T(nil), order, children,
		func(acc []T, _ Path, node T) (maybe.Maybe[[]T], error) {
			if predicate(node) {
				return maybe.Just(append(acc, node)), nil
			}
			return maybe.Just(acc), nil
		})
}

// FindFirst returns the first visited node satisfying the predicate. The
// traversal halts on the match; nodes enqueued after it are not visited.
// ok is false if the traversal completes without a match.
func FindFirst[T any](root T, order Order, children ChildrenFunc[T], predicate func(T) bool) (found T, ok bool, err error) {
	_, err = Reduce(root, 0, order, children,
		func(acc int, node T) (Reduction[int], error) {
			if predicate(node) {
				found = node
				ok = true
				return Stop(acc), nil
			}
			return Continue(acc), nil
		})
	return found, ok, err
}

// Indexed pairs a visited node with its path from the root.
type Indexed[T any] struct {
	Path Path
	Node T
}

// Enumerate pairs every node of the tree with its path, in visitation
// order.
func Enumerate[T any](root T, order Order, children ChildrenFunc[T]) ([]Indexed[T], error) {
	return ReduceIndexed(root, []Indexed[T](nil), order, children,
		func(acc []Indexed[T], path Path, node T) (maybe.Maybe[[]Indexed[T]], error) {
			return maybe.Just(append(acc, Indexed[T]{Path: path, Node: node})), nil
		})
}
