package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// build a small tree:
//
//	a
//	├── b
//	│   ├── d
//	│   └── e
//	└── c
func buildTree() (a, b, c, d, e *Node[string]) {
	a, b, c = NewNode("a"), NewNode("b"), NewNode("c")
	d, e = NewNode("d"), NewNode("e")
	a.AddChild(b).AddChild(c)
	b.AddChild(d).AddChild(e)
	return
}

func TestAddAndIsolate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgicon.tree")
	defer teardown()
	//
	a, b, c, _, _ := buildTree()
	if a.ChildCount() != 2 {
		t.Fatalf("expected a to have 2 children, has %d", a.ChildCount())
	}
	if b.Parent() != a {
		t.Errorf("expected parent of b to be a, is %v", b.Parent())
	}
	b.Isolate()
	if a.ChildCount() != 1 {
		t.Errorf("expected a to have 1 child after isolating b, has %d", a.ChildCount())
	}
	if ch, ok := a.Child(0); !ok || ch != c {
		t.Errorf("expected c to move up to position 0, is %v", ch)
	}
	if b.Parent() != nil {
		t.Errorf("expected b to be isolated, has parent %v", b.Parent())
	}
}

func TestInsertChildAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgicon.tree")
	defer teardown()
	//
	a, b, c, _, _ := buildTree()
	x := NewNode("x")
	a.InsertChildAt(1, x)
	children := a.Children()
	if len(children) != 3 || children[0] != b || children[1] != x || children[2] != c {
		t.Errorf("expected children [b x c], are %v", children)
	}
	y := NewNode("y")
	a.InsertChildAt(17, y)
	if a.IndexOfChild(y) != 3 {
		t.Errorf("expected y to be appended at position 3, is at %d", a.IndexOfChild(y))
	}
}

func TestAddChildMovesNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgicon.tree")
	defer teardown()
	//
	a, b, c, d, _ := buildTree()
	c.AddChild(d)
	if b.ChildCount() != 1 {
		t.Errorf("expected d to have been removed from b, b has %d children", b.ChildCount())
	}
	if d.Parent() != c || d.Root() != a {
		t.Errorf("expected d to hang below c, parent is %v", d.Parent())
	}
}

func TestTopDownOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgicon.tree")
	defer teardown()
	//
	a, _, _, _, _ := buildTree()
	var visited string
	err := a.TopDown(func(n, parent *Node[string], position int) error {
		visited += n.Payload
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if visited != "abdec" {
		t.Errorf("expected traversal order abdec, is %s", visited)
	}
}

func TestTopDownIsolateWhileWalking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgicon.tree")
	defer teardown()
	//
	a, b, _, _, _ := buildTree()
	var visited string
	a.TopDown(func(n, parent *Node[string], position int) error {
		visited += n.Payload
		if n.Payload == "d" {
			n.Isolate()
		}
		return nil
	})
	if visited != "abdec" {
		t.Errorf("expected isolation not to disturb traversal, visited %s", visited)
	}
	if b.ChildCount() != 1 {
		t.Errorf("expected b to have one child left, has %d", b.ChildCount())
	}
}

func TestTopDownSkipAndAbort(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgicon.tree")
	defer teardown()
	//
	a, _, _, _, _ := buildTree()
	var visited string
	a.TopDown(func(n, parent *Node[string], position int) error {
		visited += n.Payload
		if n.Payload == "b" {
			return SkipChildren
		}
		return nil
	})
	if visited != "abc" {
		t.Errorf("expected children of b to be skipped, visited %s", visited)
	}
	boom := errors.New("boom")
	err := a.TopDown(func(n, parent *Node[string], position int) error {
		if n.Payload == "d" {
			return boom
		}
		return nil
	})
	if err != boom {
		t.Errorf("expected traversal to return error boom, got %v", err)
	}
	if a.TopDown(nil) != ErrInvalidFilter {
		t.Errorf("expected nil action to be rejected")
	}
}

func TestAncestors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgicon.tree")
	defer teardown()
	//
	a, b, _, d, _ := buildTree()
	if anc := d.AncestorWith(Whatever[string]()); anc != b {
		t.Errorf("expected nearest ancestor of d to be b, is %v", anc)
	}
	all := d.AncestorsWith(Whatever[string]())
	if len(all) != 2 || all[0] != b || all[1] != a {
		t.Errorf("expected ancestors [b a], are %v", all)
	}
	if anc := a.AncestorWith(Whatever[string]()); anc != nil {
		t.Errorf("expected root to have no ancestor, has %v", anc)
	}
}

func TestDescendentsWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgicon.tree")
	defer teardown()
	//
	a, _, _, _, _ := buildTree()
	leafs := a.DescendentsWith(NodeIsLeaf[string]())
	var s string
	for _, l := range leafs {
		s += l.Payload
	}
	if s != "dec" {
		t.Errorf("expected leafs d, e, c in tree order, are %s", s)
	}
}
