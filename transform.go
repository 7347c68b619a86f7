package svgicon

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/npillmayer/svgicon/cssom"
	"github.com/npillmayer/svgicon/cssom/douceuradapter"
	"github.com/npillmayer/svgicon/iconcache"
	"github.com/npillmayer/svgicon/svg"
	"go.uber.org/multierr"
)

// Stats summarize a transformation.
type Stats struct {
	Markers int // marker declarations consumed
	Icons   int // distinct icons rendered
	Rules   int // rules emitted
	// Warnings lists requests which are suspicious, but have been processed,
	// e.g. colors which are not recognized as CSS colors.
	Warnings []string
}

// Transform replaces the marker declarations of a stylesheet by rules
// containing the recolored icons as inline data URIs.
//
// Errors are *FileAccessError, *MarkupParseError or (possibly several,
// combined with multierr) *MalformedMarkerError. In case of an error,
// or if ctx is cancelled, the stylesheet is left unchanged.
func Transform(ctx context.Context, sheet *cssom.Node, opts Options) (Stats, error) {
	return newPass(opts).run(ctx, sheet)
}

// pass is a single transformation of a stylesheet. Every pass uses a
// cache of its own.
type pass struct {
	opts     Options
	cache    *iconcache.Cache
	readFile func(string) ([]byte, error) // nil means os.ReadFile
	markers  []*cssom.Node                // consumed declarations, in tree order
	warnings []string
}

func newPass(opts Options) *pass {
	return &pass{
		opts:  opts.withDefaults(),
		cache: iconcache.New(),
	}
}

func (p *pass) run(ctx context.Context, sheet *cssom.Node) (Stats, error) {
	if sheet == nil {
		return Stats{}, ErrNoStyleSheet
	}
	sourceDir, err := filepath.Abs(p.opts.Path)
	if err != nil {
		return Stats{}, &FileAccessError{Path: p.opts.Path, Err: err}
	}
	r := newRenderer(ctx, p.opts.workers(), svg.Options{
		ColorTags:   p.opts.ColorTags,
		StripStyles: p.opts.StripStyles,
	})
	if p.readFile != nil {
		r.readFile = p.readFile
	}
	// Scan declarations in tree order. Identities are registered in the
	// cache right away, so every icon is rendered exactly once and cache
	// order does not depend on the order in which renderings complete.
	var errs error
	sheet.WalkDeclarations(func(decl *cssom.Node) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !isMarker(decl, p.opts.FunctionName) {
			return nil
		}
		req, err := requestFrom(decl)
		if err != nil {
			errs = multierr.Append(errs, err)
			return nil
		}
		selector := decl.ParentNode().Selector()
		if w := colorWarning(req, selector); w != "" {
			tracer().Infof("%s, using it anyway", w)
			p.warnings = append(p.warnings, w)
		}
		known := p.cache.Has(req.Name, req.Color, req.Media)
		entry := p.cache.Add(req.Name, req.Color, "", selector, req.Media)
		if !known {
			r.Submit(entry, p.iconPath(sourceDir, req.Name))
		}
		p.markers = append(p.markers, decl)
		return nil
	})
	promise := r.Promise()
	if err := promise(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		return Stats{}, errs
	}
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	// all icons are rendered: from here on, the stylesheet is modified
	p.removeMarkers()
	stats := Stats{
		Markers:  len(p.markers),
		Icons:    p.cache.Len(),
		Rules:    EmitRules(sheet, p.cache),
		Warnings: p.warnings,
	}
	tracer().Infof("replaced %d icon declarations by %d rules", stats.Markers, stats.Rules)
	return stats, nil
}

// iconPath is the location of an icon file: source directory, then file
// name prefix directly followed by the icon name and ".svg".
func (p *pass) iconPath(sourceDir, name string) string {
	return sourceDir + string(filepath.Separator) + p.opts.Prefix + name + ".svg"
}

// removeMarkers removes the consumed declarations. Rules left without
// children are removed as well; this does not cascade to enclosing at-rules.
func (p *pass) removeMarkers() {
	for _, decl := range p.markers {
		rule := decl.ParentNode()
		decl.Remove()
		if rule != nil && rule.ChildCount() == 0 && rule.ParentNode() != nil {
			tracer().Debugf("removing empty %s", rule)
			rule.Remove()
		}
	}
}

// TransformCSS parses CSS text, transforms it and returns the resulting
// CSS text.
func TransformCSS(ctx context.Context, csstext string, opts Options) (string, Stats, error) {
	sheet, err := parseCSS(csstext)
	if err != nil {
		return "", Stats{}, err
	}
	stats, err := Transform(ctx, sheet, opts)
	if err != nil {
		return "", Stats{}, err
	}
	return douceuradapter.CSS(sheet), stats, nil
}

func (s Stats) String() string {
	return fmt.Sprintf("%d markers, %d icons, %d rules", s.Markers, s.Icons, s.Rules)
}
