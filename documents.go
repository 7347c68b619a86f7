package svgicon

import (
	"context"
	"fmt"
	"io"

	"github.com/npillmayer/svgicon/cssom"
	"github.com/npillmayer/svgicon/cssom/douceuradapter"
	"golang.org/x/net/html"
)

func parseCSS(csstext string) (*cssom.Node, error) {
	sheet, err := douceuradapter.Parse(csstext)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsed stylesheet:\n%s", cssom.Dump(sheet))
	return sheet, nil
}

// TransformHTML reads an HTML document, transforms the stylesheets of all
// its <style> elements and writes the resulting document to w.
// Each stylesheet is transformed on its own, with an icon cache of its own.
// Nothing is written if any of the stylesheets fails to transform.
func TransformHTML(ctx context.Context, r io.Reader, w io.Writer, opts Options) (Stats, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Stats{}, fmt.Errorf("cannot parse HTML document: %w", err)
	}
	styles := douceuradapter.ExtractStyleElements(doc)
	results := make([]string, len(styles))
	var total Stats
	for i, style := range styles {
		sheet, err := douceuradapter.ParseStyleElement(style)
		if err != nil {
			return Stats{}, err
		}
		stats, err := Transform(ctx, sheet, opts)
		if err != nil {
			return Stats{}, fmt.Errorf("<style> element #%d: %w", i+1, err)
		}
		total.Markers += stats.Markers
		total.Icons += stats.Icons
		total.Rules += stats.Rules
		total.Warnings = append(total.Warnings, stats.Warnings...)
		results[i] = douceuradapter.CSS(sheet)
	}
	for i, style := range styles {
		douceuradapter.ReplaceStyleText(style, results[i])
	}
	tracer().Debugf("transformed %d <style> elements", len(styles))
	return total, html.Render(w, doc)
}
