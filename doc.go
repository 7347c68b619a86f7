/*
Package svgicon inlines recolored SVG icons into CSS stylesheets.

Stylesheets reference icons with a marker function in a declaration value:

    .close, .cancel { background: svgicon(cross, #c00); }
    @media print {
        .close { background: svgicon(cross); }
    }

Transform finds these declarations, loads the icon files (path + prefix +
name + ".svg"), sets the fill of colorable elements to the given color
(an icon without a color keeps its own fills), and replaces the marker
declarations by new rules at the end of the stylesheet:

    .close, .cancel { background-image: url('data:image/svg+xml;charset=utf-8,<svg …>') }
    @media print {
        .close { background-image: url('data:image/svg+xml;charset=utf-8,<svg …>') }
    }

Requests for the same icon with the same color in the same media context are
rendered once and share a single rule. Rules without a media context come
first, followed by one @media at-rule per icon request inside a media
context, both in the order the icons have first been requested. Marker
declarations are removed, and so are rules left empty by the removal.

A transformation either succeeds as a whole or leaves the stylesheet
untouched: icons are rendered concurrently, and the stylesheet is modified
only after every icon has been rendered successfully.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package svgicon

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'svgicon'.
func tracer() tracing.Trace {
	return tracing.Select("svgicon")
}
