package browseruse

import (
	"fmt"
	"strings"
)

// NodeKind identifies the type of a node in a document tree.
type NodeKind uint8

// Node kinds. Element nodes carry Tag and Attrs; text and comment nodes
// carry Text.
const (
	KindElement NodeKind = iota
	KindText
	KindComment
	KindDoctype
)

// NodeID identifies a node within a Tree. IDs are dense indices into the
// tree's node arena and are only meaningful for the tree that issued them.
type NodeID int32

// NoNode is the sentinel for "no such node".
const NoNode NodeID = -1

// Attr is a single element attribute. Attribute order is preserved as
// encountered in the source document.
type Attr struct {
	Key string
	Val string
}

// Node is one node in a Tree.
type Node struct {
	Kind     NodeKind
	Tag      string // lowercase tag name, element nodes only
	Attrs    []Attr
	Text     string // text and comment nodes only
	Parent   NodeID
	Children []NodeID
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// Tree is an arena of nodes representing a parsed document. It is built once
// by an adapter (or a test fixture) and treated as immutable afterwards: the
// extraction pipelines are pure functions over it. The first appended node
// is the root and has ID 0.
type Tree struct {
	nodes []Node
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{}
}

// Append adds n as the last child of parent and returns its ID.
// Pass NoNode as parent for the root node.
func (t *Tree) Append(parent NodeID, n Node) NodeID {
	id := NodeID(len(t.nodes))
	n.Parent = parent
	n.Children = nil
	t.nodes = append(t.nodes, n)
	if parent != NoNode {
		p := &t.nodes[parent]
		p.Children = append(p.Children, id)
	}
	return id
}

// AppendElement adds an element node. Convenience for adapters and fixtures.
func (t *Tree) AppendElement(parent NodeID, tag string, attrs ...Attr) NodeID {
	return t.Append(parent, Node{Kind: KindElement, Tag: strings.ToLower(tag), Attrs: attrs})
}

// AppendText adds a text node. Convenience for adapters and fixtures.
func (t *Tree) AppendText(parent NodeID, text string) NodeID {
	return t.Append(parent, Node{Kind: KindText, Text: text})
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Root returns the root node ID, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	if t.Len() == 0 {
		return NoNode
	}
	return 0
}

// Node returns the node with the given ID, or nil if the ID is out of range.
func (t *Tree) Node(id NodeID) *Node {
	if t == nil || id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// ChildElements returns the element children of id in document order.
func (t *Tree) ChildElements(id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	var out []NodeID
	for _, c := range n.Children {
		if cn := t.Node(c); cn != nil && cn.Kind == KindElement {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first node in depth-first document order satisfying pred,
// or NoNode.
func (t *Tree) Find(pred func(id NodeID, n *Node) bool) NodeID {
	if t.Len() == 0 {
		return NoNode
	}
	return t.findFrom(0, pred)
}

func (t *Tree) findFrom(id NodeID, pred func(id NodeID, n *Node) bool) NodeID {
	n := t.Node(id)
	if n == nil {
		return NoNode
	}
	if pred(id, n) {
		return id
	}
	for _, c := range n.Children {
		if found := t.findFrom(c, pred); found != NoNode {
			return found
		}
	}
	return NoNode
}

// FindTag returns the first element with the given tag in document order,
// or NoNode.
func (t *Tree) FindTag(tag string) NodeID {
	tag = strings.ToLower(tag)
	return t.Find(func(_ NodeID, n *Node) bool {
		return n.Kind == KindElement && n.Tag == tag
	})
}

// Path returns a CSS selector path for the node, rooted at the body element
// and using :nth-child positions among element siblings, e.g.
// "body > div:nth-child(2) > a:nth-child(1)". Returns "" when the node is
// not an element or not inside a body.
func (t *Tree) Path(id NodeID) string {
	n := t.Node(id)
	if n == nil || n.Kind != KindElement {
		return ""
	}
	if n.Tag == "body" {
		return "body"
	}

	var segments []string
	for cur := id; ; {
		cn := t.Node(cur)
		if cn == nil || cn.Kind != KindElement {
			return ""
		}
		if cn.Tag == "body" {
			break
		}
		pos := t.elementPosition(cur)
		if pos == 0 {
			return ""
		}
		segments = append(segments, fmt.Sprintf("%s:nth-child(%d)", cn.Tag, pos))
		cur = cn.Parent
		if cur == NoNode {
			return ""
		}
	}

	var b strings.Builder
	b.WriteString("body")
	for i := len(segments) - 1; i >= 0; i-- {
		b.WriteString(" > ")
		b.WriteString(segments[i])
	}
	return b.String()
}

// elementPosition returns the 1-based position of id among its parent's
// element children, or 0 when it has no parent.
func (t *Tree) elementPosition(id NodeID) int {
	n := t.Node(id)
	if n == nil || n.Parent == NoNode {
		return 0
	}
	pos := 0
	for _, sib := range t.Node(n.Parent).Children {
		sn := t.Node(sib)
		if sn == nil || sn.Kind != KindElement {
			continue
		}
		pos++
		if sib == id {
			return pos
		}
	}
	return 0
}
