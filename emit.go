package svgicon

import (
	"github.com/npillmayer/svgicon/cssom"
	"github.com/npillmayer/svgicon/iconcache"
)

// BackgroundProperty is the property of emitted icon declarations.
const BackgroundProperty = "background-image"

// EmitRules appends one rule per cache entry to the end of a stylesheet.
// Entries without a media context come first, each as a plain rule.
// Entries with a media context follow, each wrapped into an @media at-rule
// of its own. Within both groups, entries keep the cache's insertion order.
// EmitRules returns the number of rules appended.
func EmitRules(sheet *cssom.Node, cache *iconcache.Cache) int {
	unconditional, conditional := cache.Partition()
	for _, e := range unconditional {
		sheet.Append(iconRule(e))
	}
	for _, e := range conditional {
		media := cssom.NewAtRule("media", e.Media.Query)
		sheet.Append(media.Append(iconRule(e)))
	}
	tracer().Debugf("emitted %d + %d icon rules", len(unconditional), len(conditional))
	return len(unconditional) + len(conditional)
}

func iconRule(e *iconcache.Entry) *cssom.Node {
	decl := cssom.NewDeclaration(BackgroundProperty, e.Code, false)
	return cssom.NewRule(e.Selector()).Append(decl)
}
