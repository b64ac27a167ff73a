package extract

import (
	"fmt"
	"strings"

	browseruse "github.com/rknoche6/fast-browser-use"
)

// MaxSelectorText bounds the descriptive text carried by a selector entry.
const MaxSelectorText = 50

// IndexSnapshot classifies every element of a snapshot for interactivity
// and registers a selector for each visible interactive one, writing the
// assigned index back onto the node. The returned map resolves those
// indices for subsequent interaction commands.
func IndexSnapshot(root *browseruse.ElementNode) *browseruse.SelectorMap {
	m := browseruse.NewSelectorMap()
	if root == nil {
		return m
	}
	indexNode(root, "body", m)
	return m
}

func indexNode(node *browseruse.ElementNode, path string, m *browseruse.SelectorMap) {
	if node.ComputeInteractivity() && node.Visible {
		idx := m.Register(browseruse.ElementSelector{
			CSSSelector: buildSelector(node, path),
			TagName:     node.Tag,
			ID:          node.ID(),
			Text:        browseruse.TruncateText(node.Text, MaxSelectorText),
		})
		node.Index = &idx
	}
	for i, c := range node.Children {
		indexNode(c, fmt.Sprintf("%s > %s:nth-child(%d)", path, c.Tag, i+1), m)
	}
}

// buildSelector prefers the element id, then tag qualified by its first
// class, then the positional path.
func buildSelector(node *browseruse.ElementNode, path string) string {
	if id := node.ID(); id != "" {
		return "#" + id
	}
	if classes := strings.Fields(node.Attributes["class"]); len(classes) > 0 {
		return node.Tag + "." + classes[0]
	}
	return path
}
