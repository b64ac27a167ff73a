package extract

import (
	"encoding/json"
	"strings"

	browseruse "github.com/rknoche6/fast-browser-use"
)

// DefaultMaxDepth bounds the snapshot tree depth when the caller does not
// choose one. The body element sits at depth 0.
const DefaultMaxDepth = 10

// snapshotExcluded lists tags whose subtrees carry no content an automation
// consumer can act on. They are skipped outright, never walked.
var snapshotExcluded = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"meta":     true,
	"link":     true,
	"template": true,
	"head":     true,
	"title":    true,
	"base":     true,
}

// Snapshotter produces depth-bounded element snapshots of a document tree.
// Style and geometry lookups go through the injected oracles so the walk
// itself stays free of live-environment dependencies.
type Snapshotter struct {
	// MaxDepth bounds the walk; zero means DefaultMaxDepth.
	MaxDepth int

	// Style resolves computed styles. Nil means derive styles from the
	// markup alone via browseruse.InlineStyleOracle.
	Style browseruse.StyleOracle

	// Geometry resolves rendered bounding boxes. Nil means geometry is
	// unknown and visibility is decided from style alone, with no box
	// recorded. In that mode a node can be Visible with a nil Box, so
	// consumers of static snapshots must not assume visible nodes carry
	// coordinates.
	Geometry browseruse.GeometryOracle
}

// Snapshot walks the tree from its body element and returns the bounded
// ElementNode tree. A tree without a body yields the fallback body node.
func (s *Snapshotter) Snapshot(t *browseruse.Tree) (*browseruse.ElementNode, error) {
	if t.Len() == 0 {
		return browseruse.FallbackBody(), nil
	}
	body := t.FindTag("body")
	if body == browseruse.NoNode {
		return browseruse.FallbackBody(), nil
	}

	maxDepth := s.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	style := s.Style
	if style == nil {
		style = &browseruse.InlineStyleOracle{Tree: t}
	}

	node, err := s.walk(t, style, body, 0, maxDepth)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return browseruse.FallbackBody(), nil
	}
	return node, nil
}

// walk converts one tree node, returning nil when the node is beyond the
// depth bound or excluded by tag.
func (s *Snapshotter) walk(t *browseruse.Tree, style browseruse.StyleOracle, id browseruse.NodeID, depth, maxDepth int) (*browseruse.ElementNode, error) {
	if depth > maxDepth {
		return nil, nil
	}
	n := t.Node(id)
	if n == nil || n.Kind != browseruse.KindElement || snapshotExcluded[n.Tag] {
		return nil, nil
	}

	node := browseruse.NewElementNode(n.Tag)
	for _, a := range n.Attrs {
		node.Attributes[a.Key] = a.Val
	}
	node.Text = directText(t, id)

	cs, err := style.Style(id)
	if err != nil {
		return nil, err
	}
	if !cs.Hidden() {
		if s.Geometry == nil {
			node.Visible = true
		} else {
			box, ok, err := s.Geometry.Box(id)
			if err != nil {
				return nil, err
			}
			if ok && box.HasArea() {
				node.Visible = true
				node.Box = &box
			}
		}
	}

	for _, c := range t.ChildElements(id) {
		child, err := s.walk(t, style, c, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		if child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node, nil
}

// directText joins the node's immediate text children with single spaces,
// trimming each and dropping the empties.
func directText(t *browseruse.Tree, id browseruse.NodeID) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}
	var parts []string
	for _, c := range n.Children {
		cn := t.Node(c)
		if cn == nil || cn.Kind != browseruse.KindText {
			continue
		}
		if s := strings.TrimSpace(cn.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// MarshalSnapshot serializes a snapshot for transport across the automation
// boundary.
func MarshalSnapshot(node *browseruse.ElementNode) ([]byte, error) {
	data, err := json.Marshal(node)
	if err != nil {
		return nil, browseruse.Errorf(browseruse.EUNSERIALIZABLE, "snapshot cannot be serialized: %v", err)
	}
	return data, nil
}
