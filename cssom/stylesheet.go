package cssom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/svgicon/tree"
)

// NodeType is the type of a stylesheet node.
type NodeType uint8

// Types of stylesheet nodes.
const (
	StyleSheetNode  NodeType = iota // root of a stylesheet
	RuleNode                        // style rule, e.g. ".a, .b { … }"
	AtRuleNode                      // at-rule, e.g. "@media screen { … }"
	DeclarationNode                 // declaration, e.g. "color: red"
)

func (t NodeType) String() string {
	switch t {
	case StyleSheetNode:
		return "stylesheet"
	case RuleNode:
		return "rule"
	case AtRuleNode:
		return "atrule"
	case DeclarationNode:
		return "decl"
	}
	return "unknown"
}

// Node is a node of a stylesheet tree.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	kind             NodeType
	selector         string // style rules
	name             string // at-rules, without '@'
	params           string // at-rules
	property         string // declarations
	value            string // declarations
	important        bool   // declarations
}

func newNode(kind NodeType) *Node {
	n := &Node{kind: kind}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// NewStyleSheet creates an empty stylesheet, i.e. a root node.
func NewStyleSheet() *Node {
	return newNode(StyleSheetNode)
}

// NewRule creates a style rule for a selector (list).
func NewRule(selector string) *Node {
	n := newNode(RuleNode)
	n.selector = selector
	return n
}

// NewAtRule creates an at-rule. name is expected without a leading '@',
// but one will be stripped if present.
func NewAtRule(name, params string) *Node {
	n := newNode(AtRuleNode)
	n.name = strings.TrimPrefix(name, "@")
	n.params = params
	return n
}

// NewDeclaration creates a declaration "property: value".
func NewDeclaration(property, value string, important bool) *Node {
	n := newNode(DeclarationNode)
	n.property = property
	n.value = value
	n.important = important
	return n
}

// FromTreeNode gets the stylesheet node from a generic tree node.
func FromTreeNode(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Type returns the type of the node.
func (n *Node) Type() NodeType { return n.kind }

// Selector returns the selector text of a style rule.
func (n *Node) Selector() string { return n.selector }

// Selectors splits the selector text of a style rule at commas.
func (n *Node) Selectors() []string {
	return SplitSelectors(n.selector)
}

// Name returns the name of an at-rule, without '@'.
func (n *Node) Name() string { return n.name }

// Params returns the parameter text (prelude) of an at-rule.
func (n *Node) Params() string { return n.params }

// Property returns the property name of a declaration.
func (n *Node) Property() string { return n.property }

// Value returns the value of a declaration.
func (n *Node) Value() string { return n.value }

// Important is true for declarations flagged with "!important".
func (n *Node) Important() bool { return n.important }

// IsMedia is true for @media at-rules.
func (n *Node) IsMedia() bool {
	return n.kind == AtRuleNode && strings.EqualFold(n.name, "media")
}

// ParentNode returns the parent node or nil.
func (n *Node) ParentNode() *Node {
	return FromTreeNode(n.Parent())
}

// ChildNodes returns the children of a node. The slice is a copy.
func (n *Node) ChildNodes() []*Node {
	children := n.Children()
	nodes := make([]*Node, len(children))
	for i, ch := range children {
		nodes[i] = ch.Payload
	}
	return nodes
}

// Declarations returns the declaration children of a node.
func (n *Node) Declarations() []*Node {
	var decls []*Node
	for _, ch := range n.ChildNodes() {
		if ch.kind == DeclarationNode {
			decls = append(decls, ch)
		}
	}
	return decls
}

// Append appends children to a node. It returns the node to allow for chaining.
func (n *Node) Append(children ...*Node) *Node {
	for _, ch := range children {
		if ch != nil {
			n.AddChild(&ch.Node)
		}
	}
	return n
}

// Remove detaches a node from its parent.
func (n *Node) Remove() {
	n.Isolate()
}

// WalkDeclarations calls f for every declaration below n, in tree order.
// f may remove the declaration it is called for, and it may remove
// the declaration's parent. A non-nil error returned by f aborts the walk.
func (n *Node) WalkDeclarations(f func(decl *Node) error) error {
	return n.TopDown(func(tn, parent *tree.Node[*Node], position int) error {
		if tn.Payload.kind == DeclarationNode {
			return f(tn.Payload)
		}
		return nil
	})
}

// MediaAncestors returns the enclosing @media at-rules of a node,
// innermost first.
func (n *Node) MediaAncestors() []*Node {
	isMedia := func(tn *tree.Node[*Node]) bool {
		return tn.Payload.IsMedia()
	}
	ancestors := n.AncestorsWith(isMedia)
	media := make([]*Node, len(ancestors))
	for i, a := range ancestors {
		media[i] = a.Payload
	}
	return media
}

func (n *Node) String() string {
	switch n.kind {
	case StyleSheetNode:
		return fmt.Sprintf("stylesheet(#ch=%d)", n.ChildCount())
	case RuleNode:
		return fmt.Sprintf("rule(%s)", n.selector)
	case AtRuleNode:
		return fmt.Sprintf("@%s(%s)", n.name, n.params)
	case DeclarationNode:
		if n.important {
			return fmt.Sprintf("%s: %s !important", n.property, n.value)
		}
		return fmt.Sprintf("%s: %s", n.property, n.value)
	}
	return "?"
}

// SplitSelectors splits a selector list at commas. Every selector is trimmed
// and empty selectors are dropped. Commas nested in functional pseudo-classes
// are not recognized.
func SplitSelectors(selectorText string) []string {
	parts := strings.Split(selectorText, ",")
	selectors := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			selectors = append(selectors, p)
		}
	}
	return selectors
}
