package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	tp "github.com/xlab/treeprint"
)

// Sprint renders a tree as indented ASCII art, for logging and debugging.
// children enumerates a node's children (no error channel here; dumping is
// best effort), label produces the text for a node.
func Sprint[T any](root T, children func(T) []T, label func(T) string) string {
	p := tp.New()
	sprintBranch(p, root, children, label)
	return p.String()
}

func sprintBranch[T any](b tp.Tree, node T, children func(T) []T, label func(T) string) {
	chs := children(node)
	if len(chs) == 0 {
		b.AddNode(label(node))
		return
	}
	br := b.AddBranch(label(node))
	for _, ch := range chs {
		sprintBranch(br, ch, children, label)
	}
}
