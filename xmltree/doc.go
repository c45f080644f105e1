/*
Package xmltree models XML documents as plain element trees.

This is not a DOM: no DTD validation, no schema support, no live views.
A document is a tree of Node values with ordered children of six kinds
(nested element, character data, comment, CDATA, ignorable whitespace,
processing instruction). Trees are built programmatically or by Parse,
which folds the token stream of an encoding/xml decoder into a tree via a
stack discipline. Render turns a tree back into markup, parameterized by
quoting, entity escaping and attribute ordering.

Traversal and queries over the tree reuse the generic reduction engine of
package tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package xmltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'misckit.xml'.
func tracer() tracing.Trace {
	return tracing.Select("misckit.xml")
}
