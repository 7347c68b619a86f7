/*
Package iconcache deduplicates icon requests of a stylesheet transformation.

Icon requests are identified by the triple (icon name, color, media context).
Every distinct identity is rendered once; all selectors requesting the same
identity are collected into a single cache entry, in the order they have
been encountered. Entries themselves are kept in insertion order.

A cache lives exactly as long as one transformation of one stylesheet. There
is no eviction, no size bound and no expiry. A cache is not safe for
concurrent mutation; readers may access entries concurrently once the
transformation has stopped adding to it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package iconcache

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'svgicon.cache'.
func tracer() tracing.Trace {
	return tracing.Select("svgicon.cache")
}
