/*
Package douceuradapter builds cssom stylesheet trees from CSS text,
using the douceur CSS parser.

It furthermore finds <style> elements in HTML parse trees, making it possible
to transform stylesheets embedded in HTML documents.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/svgicon/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'svgicon.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("svgicon.cssom")
}

// Parse parses CSS text into a stylesheet tree.
func Parse(csstext string) (*cssom.Node, error) {
	sheet, err := parser.Parse(csstext)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(sheet), nil
}

// Wrap converts a douceur.css.Stylesheet into a cssom stylesheet tree.
// The douceur stylesheet is not referenced by the result.
func Wrap(sheet *css.Stylesheet) *cssom.Node {
	root := cssom.NewStyleSheet()
	if sheet == nil {
		return root
	}
	for _, r := range sheet.Rules {
		root.Append(convertRule(r))
	}
	tracer().Debugf("wrapped douceur stylesheet with %d top-level rules", root.ChildCount())
	return root
}

func convertRule(r *css.Rule) *cssom.Node {
	if r == nil {
		return nil
	}
	var n *cssom.Node
	switch r.Kind {
	case css.QualifiedRule:
		n = cssom.NewRule(selectorText(r))
	default: // at-rule
		n = cssom.NewAtRule(r.Name, strings.TrimSpace(r.Prelude))
	}
	for _, d := range r.Declarations {
		n.Append(cssom.NewDeclaration(d.Property, d.Value, d.Important))
	}
	for _, sub := range r.Rules { // embedded rules, e.g. for @media
		n.Append(convertRule(sub))
	}
	return n
}

// selectorText returns the prelude of a style rule, which is the selector
// list as written in the source.
func selectorText(r *css.Rule) string {
	if p := strings.TrimSpace(r.Prelude); p != "" {
		return p
	}
	return strings.Join(r.Selectors, ", ")
}

// --- HTML documents --------------------------------------------------------

// ExtractStyleElements visits an HTML parse tree and collects all
// embedded <style> elements, in document order.
func ExtractStyleElements(htmldoc *html.Node) []*html.Node {
	var styles []*html.Node
	var collect func(*html.Node)
	collect = func(h *html.Node) {
		if h.Type == html.ElementNode && h.DataAtom == atom.Style {
			styles = append(styles, h)
			return
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	if htmldoc != nil {
		collect(htmldoc)
	}
	return styles
}

// StyleText returns the text content of a <style> element.
func StyleText(style *html.Node) string {
	var b strings.Builder
	for ch := style.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		}
	}
	return b.String()
}

// ParseStyleElement parses the content of a <style> element into a
// stylesheet tree.
func ParseStyleElement(style *html.Node) (*cssom.Node, error) {
	if style == nil || style.DataAtom != atom.Style {
		return nil, fmt.Errorf("not a <style> element")
	}
	return Parse(StyleText(style))
}

// ReplaceStyleText replaces the content of a <style> element by csstext.
func ReplaceStyleText(style *html.Node, csstext string) {
	for ch := style.FirstChild; ch != nil; {
		next := ch.NextSibling
		style.RemoveChild(ch)
		ch = next
	}
	style.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: csstext,
	})
}
