// Package html adapts serialized page markup into the document tree the
// extraction pipelines consume, using the golang.org/x/net/html parser.
package html

import (
	"strings"

	browseruse "github.com/rknoche6/fast-browser-use"
	xhtml "golang.org/x/net/html"
)

// Parse parses serialized HTML into a document tree. Tag names and
// attribute keys come out lowercase. An empty source or one with no
// elements reports ENODOCUMENT.
func Parse(source string) (*browseruse.Tree, error) {
	if strings.TrimSpace(source) == "" {
		return nil, browseruse.Errorf(browseruse.ENODOCUMENT, "no accessible document")
	}
	doc, err := xhtml.Parse(strings.NewReader(source))
	if err != nil {
		return nil, browseruse.Errorf(browseruse.ENODOCUMENT, "document cannot be parsed: %v", err)
	}

	root := firstElement(doc)
	if root == nil {
		return nil, browseruse.Errorf(browseruse.ENODOCUMENT, "document has no elements")
	}

	tree := browseruse.NewTree()
	convert(tree, browseruse.NoNode, root)
	return tree, nil
}

func firstElement(n *xhtml.Node) *xhtml.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xhtml.ElementNode {
			return c
		}
	}
	return nil
}

func convert(tree *browseruse.Tree, parent browseruse.NodeID, n *xhtml.Node) {
	var id browseruse.NodeID
	switch n.Type {
	case xhtml.ElementNode:
		attrs := make([]browseruse.Attr, 0, len(n.Attr))
		for _, a := range n.Attr {
			attrs = append(attrs, browseruse.Attr{Key: strings.ToLower(a.Key), Val: a.Val})
		}
		id = tree.AppendElement(parent, n.Data, attrs...)
	case xhtml.TextNode:
		tree.AppendText(parent, n.Data)
		return
	case xhtml.CommentNode:
		tree.Append(parent, browseruse.Node{Kind: browseruse.KindComment, Text: n.Data})
		return
	default:
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		convert(tree, id, c)
	}
}
