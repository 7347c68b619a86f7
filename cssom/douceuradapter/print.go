package douceuradapter

import (
	"io"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/svgicon/cssom"
)

// Unwrap converts a cssom stylesheet tree back into a douceur stylesheet.
//
// Style rules and block at-rules without any content are left out, as
// douceur would print them as statements ("sel;"), which is not valid CSS.
// Dropping them does not change the meaning of a stylesheet.
func Unwrap(sheet *cssom.Node) *css.Stylesheet {
	out := css.NewStylesheet()
	if sheet == nil {
		return out
	}
	for _, ch := range sheet.ChildNodes() {
		if r := unconvertRule(ch, 0); r != nil {
			out.Rules = append(out.Rules, r)
		}
	}
	return out
}

func unconvertRule(n *cssom.Node, level int) *css.Rule {
	var r *css.Rule
	switch n.Type() {
	case cssom.RuleNode:
		r = css.NewRule(css.QualifiedRule)
		r.Prelude = n.Selector()
		r.Selectors = []string{n.Selector()} // printed verbatim
	case cssom.AtRuleNode:
		r = css.NewRule(css.AtRule)
		r.Name = "@" + n.Name()
		r.Prelude = n.Params()
	default:
		return nil
	}
	r.EmbedLevel = level
	for _, ch := range n.ChildNodes() {
		if ch.Type() == cssom.DeclarationNode {
			r.Declarations = append(r.Declarations, &css.Declaration{
				Property:  ch.Property(),
				Value:     ch.Value(),
				Important: ch.Important(),
			})
		} else if sub := unconvertRule(ch, level+1); sub != nil {
			r.Rules = append(r.Rules, sub)
		}
	}
	if len(r.Declarations) == 0 && len(r.Rules) == 0 && (r.Kind == css.QualifiedRule || hasBlock(n)) {
		tracer().Debugf("not printing empty %s", n)
		return nil
	}
	return r
}

// hasBlock is true for at-rules which need a block, i.e. rules nested in
// an at-rule or at-rules douceur parses with a block of rules.
func hasBlock(n *cssom.Node) bool {
	if n.ChildCount() > 0 {
		return true
	}
	r := css.Rule{Kind: css.AtRule, Name: "@" + strings.ToLower(n.Name())}
	return r.EmbedsRules()
}

// CSS returns the CSS text of a stylesheet tree, formatted by douceur.
// Every top-level rule is terminated by a newline.
func CSS(sheet *cssom.Node) string {
	text := Unwrap(sheet).String()
	if text == "" {
		return ""
	}
	return text + "\n"
}

// Print writes the CSS text of a stylesheet tree to w.
func Print(w io.Writer, sheet *cssom.Node) error {
	_, err := io.WriteString(w, CSS(sheet))
	return err
}
