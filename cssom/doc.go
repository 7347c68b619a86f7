/*
Package cssom provides a mutable object model for CSS stylesheets.

A stylesheet is a tree: the stylesheet node at the root, style rules and
at-rules below it, and declarations as leafs. At-rules may contain rules
(e.g., @media) or declarations (e.g., @font-face). The tree is built on top of
the general purpose tree type of package tree, using composition: every
cssom.Node embeds a tree.Node whose payload references the cssom.Node itself.

Parsing CSS text is not done by this package. Concrete parsers live in
sub-packages (see package douceuradapter). This package prints stylesheets
back to CSS text, and it is able to dump a stylesheet tree for debugging.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. We keep
it to the small subset of operations a stylesheet transformation needs:
walking declarations in tree order, removing nodes and appending new
rules.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'svgicon.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("svgicon.cssom")
}
