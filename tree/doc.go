/*
Package tree implements an all-purpose tree of mutable nodes.

Both the stylesheet tree (package cssom) and the markup tree of an icon
(package svg) are built on top of this type. In Go we resort to composition
for this: a concrete node type embeds a generic tree node and sets the
node's payload to point back at itself. Clients then navigate the tree
generically and get at the concrete node through the payload.

Navigation and traversal:

   Parent()                     // parent of a node, nil for the root
   AncestorWith(predicate)      // nearest ancestor with a given predicate
   AncestorsWith(predicate)     // all matching ancestors, nearest first
   DescendentsWith(predicate)   // matching descendents, in tree order
   TopDown(action)              // traverse a sub-tree, parents before children

Traversals operate on a snapshot of each node's children, so an action is
free to isolate the node it has been called for.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'svgicon.tree'.
func tracer() tracing.Trace {
	return tracing.Select("svgicon.tree")
}
