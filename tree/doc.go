/*
Package tree implements generic reduction over tree-shaped data.

There are many tree implementations around. This package deliberately does
not impose one: the traversal engine works on any node type T together with
a children-function returning the ordered children of a node. Clients fold
a tree into a result value with Reduce or ReduceIndexed, choosing
depth-first or breadth-first order, and may halt the traversal early from
within the step function.

A family of derived operations (Map, Count, Filter, FindFirst, Enumerate)
is expressed purely in terms of the two reduction primitives. They are the
workhorses for the XML element tree in package xmltree, but are just as
usable for ASTs, file systems, or any other hierarchy.

For convenience a ready-made mutable node type Node[T] is included, carrying
a payload and a concurrency-safe slice of children.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'misckit.tree'.
func tracer() tracing.Trace {
	return tracing.Select("misckit.tree")
}
