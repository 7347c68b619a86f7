package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/svgicon/tree"
	"github.com/xlab/treeprint"
)

// NodeType is the type of a markup node.
type NodeType uint8

// Types of markup nodes. Comments and directives do not survive decoding,
// neither does the <?xml …?> declaration.
const (
	DocumentNode NodeType = iota // container for top-level nodes
	ElementNode
	TextNode
	ProcInstNode
)

// Element is a node of a markup tree. Despite its name it may as well
// be a document, text or processing instruction node (see Type).
type Element struct {
	tree.Node[*Element] // we build on top of general purpose tree
	kind                NodeType
	Name                xml.Name   // element name; Space holds the raw prefix
	Attr                []xml.Attr // attributes in source order
	Data                string     // text content or processing instruction
}

func newElement(kind NodeType) *Element {
	e := &Element{kind: kind}
	e.Payload = e // Payload will always reference the node itself
	return e
}

// NewDocument creates an empty document node.
func NewDocument() *Element {
	return newElement(DocumentNode)
}

// NewElement creates an element node. The attributes are copied.
func NewElement(name xml.Name, attr []xml.Attr) *Element {
	e := newElement(ElementNode)
	e.Name = name
	e.Attr = append([]xml.Attr(nil), attr...)
	return e
}

// NewText creates a text node.
func NewText(text string) *Element {
	e := newElement(TextNode)
	e.Data = text
	return e
}

// Type returns the type of the node.
func (e *Element) Type() NodeType { return e.kind }

// Tag returns the local name of an element.
func (e *Element) Tag() string { return e.Name.Local }

// ParentElement returns the parent node or nil.
func (e *Element) ParentElement() *Element {
	if p := e.Parent(); p != nil {
		return p.Payload
	}
	return nil
}

// ChildElements returns the children of a node. The slice is a copy.
func (e *Element) ChildElements() []*Element {
	children := e.Children()
	elems := make([]*Element, len(children))
	for i, ch := range children {
		elems[i] = ch.Payload
	}
	return elems
}

// Append appends children to a node. It returns the node to allow for chaining.
func (e *Element) Append(children ...*Element) *Element {
	for _, ch := range children {
		if ch != nil {
			e.AddChild(&ch.Node)
		}
	}
	return e
}

// SetAttr sets an un-prefixed attribute. An existing attribute keeps its
// position, a new one is appended.
func (e *Element) SetAttr(local, value string) {
	for i, a := range e.Attr {
		if a.Name.Space == "" && a.Name.Local == local {
			e.Attr[i].Value = value
			return
		}
	}
	e.Attr = append(e.Attr, xml.Attr{Name: xml.Name{Local: local}, Value: value})
}

// Walk calls f for every node below and including e, in document order.
func (e *Element) Walk(f func(*Element) error) error {
	return e.TopDown(func(n, parent *tree.Node[*Element], position int) error {
		return f(n.Payload)
	})
}

func (e *Element) String() string {
	switch e.kind {
	case DocumentNode:
		return "#document"
	case TextNode:
		return fmt.Sprintf("#text(%q)", e.Data)
	case ProcInstNode:
		return fmt.Sprintf("<?%s %s?>", e.Name.Local, e.Data)
	}
	return "<" + qname(e.Name) + ">"
}

// --- Decoding --------------------------------------------------------------

// SyntaxError is returned for markup which cannot be decoded.
type SyntaxError struct {
	Line int   // line in the input, if known
	Err  error // underlying error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed markup at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("malformed markup: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Decode reads markup into a tree and returns the document node.
// Namespace prefixes are kept as written (in xml.Name.Space), they are not
// resolved. Comments, directives and the XML declaration are dropped, as is
// whitespace outside of the top-level elements.
//
// Input without any element, or with unbalanced tags, is an error.
func Decode(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)
	doc := NewDocument()
	current := doc
	elementCount := 0
	for {
		token, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, _ := decoder.InputPos()
			return nil, &SyntaxError{Line: line, Err: err}
		}
		switch t := token.(type) {
		case xml.StartElement:
			el := NewElement(t.Name, t.Attr)
			current.Append(el)
			current = el
			elementCount++
		case xml.EndElement:
			if current.kind != ElementNode || current.Name != t.Name {
				line, _ := decoder.InputPos()
				return nil, &SyntaxError{Line: line,
					Err: fmt.Errorf("unexpected end element </%s>", qname(t.Name))}
			}
			current = current.ParentElement()
		case xml.CharData:
			if current == doc && strings.TrimSpace(string(t)) == "" {
				continue
			}
			current.Append(NewText(string(t)))
		case xml.ProcInst:
			if t.Target == "xml" {
				continue
			}
			pi := newElement(ProcInstNode)
			pi.Name = xml.Name{Local: t.Target}
			pi.Data = string(t.Inst)
			current.Append(pi)
		}
	}
	if current != doc {
		return nil, &SyntaxError{Err: fmt.Errorf("unclosed element %s", current)}
	}
	if elementCount == 0 {
		return nil, &SyntaxError{Err: fmt.Errorf("no element found")}
	}
	tracer().Debugf("decoded markup with %d elements", elementCount)
	return doc, nil
}

// --- Encoding --------------------------------------------------------------

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\r", "&#xD;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	`"`, "&quot;",
	"\t", "&#x9;",
	"\n", "&#xA;",
	"\r", "&#xD;",
)

// Encode serializes a markup tree. Elements without children are
// self-closed, attribute values are double-quoted. No whitespace is added.
func Encode(e *Element) string {
	var b strings.Builder
	encode(&b, e)
	return b.String()
}

func encode(b *strings.Builder, e *Element) {
	switch e.kind {
	case DocumentNode:
		for _, ch := range e.ChildElements() {
			encode(b, ch)
		}
	case TextNode:
		textEscaper.WriteString(b, e.Data)
	case ProcInstNode:
		b.WriteString("<?")
		b.WriteString(e.Name.Local)
		if e.Data != "" {
			b.WriteByte(' ')
			b.WriteString(e.Data)
		}
		b.WriteString("?>")
	case ElementNode:
		name := qname(e.Name)
		b.WriteByte('<')
		b.WriteString(name)
		for _, a := range e.Attr {
			b.WriteByte(' ')
			b.WriteString(qname(a.Name))
			b.WriteString(`="`)
			attrEscaper.WriteString(b, a.Value)
			b.WriteByte('"')
		}
		if e.ChildCount() == 0 {
			b.WriteString("/>")
			return
		}
		b.WriteByte('>')
		for _, ch := range e.ChildElements() {
			encode(b, ch)
		}
		b.WriteString("</")
		b.WriteString(name)
		b.WriteByte('>')
	}
}

func qname(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// Dump returns a tree-shaped representation of a markup tree, for debugging.
func Dump(e *Element) string {
	printer := treeprint.New()
	printer.SetValue(e.String())
	for _, ch := range e.ChildElements() {
		dumpElement(printer, ch)
	}
	return printer.String()
}

func dumpElement(printer treeprint.Tree, e *Element) {
	label := e.String()
	if len(e.Attr) > 0 {
		var attrs []string
		for _, a := range e.Attr {
			attrs = append(attrs, qname(a.Name)+"="+a.Value)
		}
		label += " " + strings.Join(attrs, " ")
	}
	if e.ChildCount() == 0 {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	for _, ch := range e.ChildElements() {
		dumpElement(branch, ch)
	}
}
