/*
Package svg recolors SVG icons and turns them into CSS property values.

Icon markup is decoded into a tree of elements (built on package tree),
fill attributes of colorable elements are rewritten, and the tree is
serialized back to compact markup, which is finally wrapped into a data URI:

    url('data:image/svg+xml;charset=utf-8,<svg …>…</svg>')

The markup is embedded verbatim, not percent-encoded. Single quotes in
attribute values or text are not escaped and would terminate the URL token
early.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package svg

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'svgicon.svg'.
func tracer() tracing.Trace {
	return tracing.Select("svgicon.svg")
}
