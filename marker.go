package svgicon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/npillmayer/svgicon/cssom"
	"github.com/npillmayer/svgicon/iconcache"
	"github.com/npillmayer/svgicon/maybe"
)

// Request is an icon request extracted from a marker declaration.
type Request struct {
	Name  string              // icon name, i.e. file name without prefix and suffix
	Color maybe.Maybe[string] // fill color, verbatim
	Media iconcache.Media     // media context of the declaration
}

func (r Request) String() string {
	return fmt.Sprintf("%s(%v) %s", r.Name, r.Color, r.Media)
}

// the argument list runs from the first '(' to the last ')' of a line
var markerArgs = regexp.MustCompile(`\((.*)\)`)

// ParseMarker extracts icon name and color from the value of a marker
// declaration. Arguments are separated by commas; at most one leading blank
// is removed from each of them, nothing else is trimmed. An empty second
// argument counts as no color. Arguments beyond the second are ignored.
//
// ParseMarker does not check for the function name: the argument list is
// taken from the first parenthesis of the value. The argument list does not
// extend across line breaks.
func ParseMarker(value string) (name string, color maybe.Maybe[string], err error) {
	m := markerArgs.FindStringSubmatch(value)
	if m == nil {
		return "", maybe.Nothing[string](), fmt.Errorf("missing argument list")
	}
	args := strings.Split(m[1], ",")
	for i := range args {
		args[i] = strings.TrimPrefix(args[i], " ")
	}
	if name = args[0]; name == "" {
		return "", maybe.Nothing[string](), fmt.Errorf("missing icon name")
	}
	color = maybe.Nothing[string]()
	if len(args) > 1 {
		color = maybe.NonZero(args[1])
	}
	if len(args) > 2 {
		tracer().Infof("icon %s: ignoring extra arguments %v", name, args[2:])
	}
	return name, color, nil
}

// MediaContext returns the media context of a declaration. For nested
// @media at-rules the outermost one determines the context.
func MediaContext(decl *cssom.Node) iconcache.Media {
	media := iconcache.NoMedia
	for _, m := range decl.MediaAncestors() { // innermost first
		media = iconcache.InMedia(m.Params())
	}
	return media
}

// isMarker is true for declarations whose value mentions the marker function.
func isMarker(decl *cssom.Node, functionName string) bool {
	return strings.Contains(decl.Value(), functionName)
}

// requestFrom extracts an icon request from a marker declaration.
// Markers must be placed directly inside a style rule.
func requestFrom(decl *cssom.Node) (Request, error) {
	rule := decl.ParentNode()
	if rule == nil || rule.Type() != cssom.RuleNode {
		return Request{}, &MalformedMarkerError{
			Property: decl.Property(),
			Value:    decl.Value(),
			Reason:   "not inside a style rule",
		}
	}
	name, color, err := ParseMarker(decl.Value())
	if err != nil {
		return Request{}, &MalformedMarkerError{
			Selector: rule.Selector(),
			Property: decl.Property(),
			Value:    decl.Value(),
			Reason:   err.Error(),
		}
	}
	return Request{Name: name, Color: color, Media: MediaContext(decl)}, nil
}

// colorWarning checks the color of a request. Colors are used verbatim,
// even if they are not CSS colors; for those, a warning text is returned.
func colorWarning(req Request, selector string) string {
	c, ok := req.Color.Get()
	if !ok {
		return ""
	}
	if _, err := csscolorparser.Parse(c); err != nil {
		return fmt.Sprintf("icon %s in rule %q: %q is not a CSS color", req.Name, selector, c)
	}
	return ""
}
