package cssom

import "github.com/xlab/treeprint"

// Dump returns a tree-shaped representation of a stylesheet, for debugging.
func Dump(n *Node) string {
	printer := treeprint.New()
	printer.SetValue(n.String())
	for _, ch := range n.ChildNodes() {
		dumpNode(printer, ch)
	}
	return printer.String()
}

func dumpNode(printer treeprint.Tree, n *Node) {
	if n.ChildCount() == 0 {
		printer.AddNode(n.String())
		return
	}
	branch := printer.AddBranch(n.String())
	for _, ch := range n.ChildNodes() {
		dumpNode(branch, ch)
	}
}
