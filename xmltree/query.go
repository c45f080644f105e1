package xmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strings"

	"github.com/glimpseio/MiscKit/tree"
)

// ElementChildren returns the direct children of the element variant, in
// document order.
func (n *Node) ElementChildren() []*Node {
	var els []*Node
	for _, ch := range n.Children {
		if el, ok := ch.(Element); ok {
			els = append(els, el.Node)
		}
	}
	return els
}

// elementChildren adapts ElementChildren to the reduction engine.
func elementChildren(n *Node) ([]*Node, error) {
	return n.ElementChildren(), nil
}

// FlattenedElements returns all descendant elements of n—self excluded—in
// depth-first document order.
func (n *Node) FlattenedElements() []*Node {
	els, _ := tree.Map(n, tree.DepthFirst, elementChildren, func(e *Node) *Node { return e })
	return els[1:]
}

// Elements returns child elements with an exactly matching name. With deep
// set the search covers all descendants, otherwise only direct children.
func (n *Node) Elements(name string, deep bool) []*Node {
	pool := n.ElementChildren()
	if deep {
		pool = n.FlattenedElements()
	}
	var els []*Node
	for _, el := range pool {
		if el.ElementName == name {
			els = append(els, el)
		}
	}
	return els
}

// ChildContent concatenates the direct Content children of n. All other
// child kinds are skipped, not recursed into.
func (n *Node) ChildContent() string {
	var sb strings.Builder
	for _, ch := range n.Children {
		if c, ok := ch.(Content); ok {
			sb.WriteString(string(c))
		}
	}
	return sb.String()
}

// ChildContentTrimmed is ChildContent with surrounding whitespace removed.
func (n *Node) ChildContentTrimmed() string {
	return strings.TrimSpace(n.ChildContent())
}

// ElementDictionary flattens attributes and/or direct child elements into a
// single name→value map, the child's value being its trimmed content.
//
// The view is deliberately lossy: structure, multiplicity and non-content
// children are discarded, and on a name collision the later entry wins.
// Child elements are merged after attributes, so a child's content
// overrules an attribute of the same name.
func (n *Node) ElementDictionary(attributes, childNodes bool) map[string]string {
	dict := make(map[string]string)
	if attributes {
		for k, v := range n.Attributes {
			dict[k] = v
		}
	}
	if childNodes {
		for _, el := range n.ElementChildren() {
			dict[el.ElementName] = el.ChildContentTrimmed()
		}
	}
	return dict
}
