package svg

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/npillmayer/svgicon/maybe"
)

// DefaultColorTags are the element tags whose fill attribute is rewritten
// when an icon is recolored.
var DefaultColorTags = []string{"path", "polygon"}

// Options control rendering of an icon.
type Options struct {
	ColorTags   []string // colorable element tags; nil means DefaultColorTags
	StripStyles bool     // remove an embedded <style> block
}

// Recolor sets the fill attribute of every element whose tag is one of
// tags, at any nesting depth. If color is Nothing, the tree is left untouched.
// Recolor returns the number of elements changed.
//
// Applying Recolor twice with the same color yields the same tree.
func Recolor(doc *Element, color maybe.Maybe[string], tags []string) int {
	if color == nil {
		return 0
	}
	fill, ok := color.Get()
	if !ok {
		return 0
	}
	colorable := make(map[string]bool, len(tags))
	for _, tag := range tags {
		colorable[tag] = true
	}
	count := 0
	doc.Walk(func(e *Element) error {
		if e.kind == ElementNode && colorable[e.Name.Local] {
			e.SetAttr("fill", fill)
			count++
		}
		return nil
	})
	tracer().Debugf("recolored %d elements with fill=%s", count, fill)
	return count
}

var (
	commentPattern    = regexp.MustCompile(`<!--[\s\S]*?-->`)
	xmlnsSpacePattern = regexp.MustCompile(`[ \r\n\t]+xmlns`)
	interTagPattern   = regexp.MustCompile(`>\s*<`)
	newlinePattern    = regexp.MustCompile(`\r\n|\n|\r`)
	stylePattern      = regexp.MustCompile(`<style.*style>`)
)

// Minify removes comments and whitespace between tags, and collapses
// whitespace in front of namespace declarations to a single blank.
// Whitespace inside text content is left alone.
func Minify(markup string) string {
	markup = commentPattern.ReplaceAllString(markup, "")
	markup = xmlnsSpacePattern.ReplaceAllString(markup, " xmlns")
	return interTagPattern.ReplaceAllString(markup, "><")
}

// StripNewlines removes all line breaks (CR LF, LF, CR).
func StripNewlines(markup string) string {
	return newlinePattern.ReplaceAllString(markup, "")
}

// StripStyle removes the first match of the pattern `<style.*style>`.
// This is not an element-aware removal: the pattern is greedy and '.' does
// not match newlines, so on a single line the removed span starts at the
// first "<style" and ends at the last "style>" of that line, possibly
// swallowing markup between two style blocks. At most one span is removed.
func StripStyle(markup string) string {
	loc := stylePattern.FindStringIndex(markup)
	if loc == nil {
		return markup
	}
	return markup[:loc[0]] + markup[loc[1]:]
}

// DataURI wraps markup into a CSS url() value. The markup is embedded
// verbatim between single quotes.
func DataURI(markup string) string {
	return "url('data:image/svg+xml;charset=utf-8," + markup + "')"
}

// Render decodes icon markup, recolors it (if color is a value),
// serializes and cleans it up, and returns the resulting CSS url() value.
// Errors are of type *SyntaxError.
func Render(src []byte, color maybe.Maybe[string], opts Options) (string, error) {
	doc, err := Decode(bytes.NewReader(src))
	if err != nil {
		return "", err
	}
	tags := opts.ColorTags
	if tags == nil {
		tags = DefaultColorTags
	}
	Recolor(doc, color, tags)
	return DataURI(Clean(Encode(doc), opts.StripStyles)), nil
}

// Clean applies the markup clean-up steps of Render: minification, newline
// removal and optionally style stripping, in this order.
func Clean(markup string, stripStyles bool) string {
	markup = Minify(markup)
	markup = StripNewlines(markup)
	if stripStyles {
		markup = StripStyle(markup)
	}
	return strings.TrimSpace(markup)
}
