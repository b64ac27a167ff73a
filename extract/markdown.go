package extract

import (
	"fmt"
	"strings"

	browseruse "github.com/rknoche6/fast-browser-use"
)

// Renderer linearizes the main content of a document tree into markdown.
// Rendering is a total, tag-driven transform: every element kind has a
// fixed rule and unknown tags fall through to the container rule, so no
// input tree can make it fail.
type Renderer struct{}

// Render selects the content root, renders it, and returns the document
// title and the normalized markdown. A nil or empty tree reports
// ENODOCUMENT.
func (r *Renderer) Render(t *browseruse.Tree) (title, content string, err error) {
	if t == nil || t.Len() == 0 {
		return "", "", browseruse.Errorf(browseruse.ENODOCUMENT, "no accessible document")
	}
	title = documentTitle(t)
	root := contentRoot(t)
	content = browseruse.NormalizeMarkdown(renderNode(t, root, ""))
	return title, content, nil
}

// contentRoot picks the subtree to render. First match wins: an article
// element, a main element, an element with ARIA role "main", the body,
// and finally the tree root.
func contentRoot(t *browseruse.Tree) browseruse.NodeID {
	if id := t.FindTag("article"); id != browseruse.NoNode {
		return id
	}
	if id := t.FindTag("main"); id != browseruse.NoNode {
		return id
	}
	id := t.Find(func(_ browseruse.NodeID, n *browseruse.Node) bool {
		if n.Kind != browseruse.KindElement {
			return false
		}
		role, _ := n.Attr("role")
		return role == "main"
	})
	if id != browseruse.NoNode {
		return id
	}
	if id := t.FindTag("body"); id != browseruse.NoNode {
		return id
	}
	return t.Root()
}

// documentTitle returns the flattened text of the first title element.
func documentTitle(t *browseruse.Tree) string {
	id := t.FindTag("title")
	if id == browseruse.NoNode {
		return ""
	}
	return Flatten(t, id)
}

// renderNode renders one node. parentTag is the tag of the enclosing
// element, needed to suppress inline code directly inside a code block.
func renderNode(t *browseruse.Tree, id browseruse.NodeID, parentTag string) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}
	if n.Kind == browseruse.KindText {
		if s := strings.TrimSpace(n.Text); s != "" {
			return s + " "
		}
		return ""
	}
	if n.Kind != browseruse.KindElement {
		return ""
	}

	cls := Classify(n.Tag)
	switch cls.Kind {
	case KindExcluded:
		return ""
	case KindHeading:
		return "\n" + strings.Repeat("#", cls.Level) + " " + Flatten(t, id) + "\n\n"
	case KindParagraph:
		return Flatten(t, id) + "\n\n"
	case KindLineBreak:
		return "\n"
	case KindRule:
		return "\n---\n\n"
	case KindStrong:
		return "**" + Flatten(t, id) + "**"
	case KindEmphasis:
		return "*" + Flatten(t, id) + "*"
	case KindCode:
		if parentTag == "pre" {
			return ""
		}
		return "`" + Flatten(t, id) + "`"
	case KindCodeBlock:
		return renderCodeBlock(t, id)
	case KindLink:
		href, _ := n.Attr("href")
		return "[" + Flatten(t, id) + "](" + href + ")"
	case KindImage:
		alt, _ := n.Attr("alt")
		src, _ := n.Attr("src")
		return "![" + alt + "](" + src + ")"
	case KindList:
		return renderList(t, id, cls.Ordered)
	case KindListItem, KindTableRow, KindTableCell:
		// Emitted only by their enclosing list or table.
		return ""
	case KindBlockquote:
		return renderQuote(t, id)
	case KindTable:
		return renderTable(t, id)
	default:
		var b strings.Builder
		for _, c := range n.Children {
			b.WriteString(renderNode(t, c, n.Tag))
		}
		return b.String()
	}
}

// renderList emits the flattened text of each list-item child on its own
// line, prefixed per list type, with a blank line after the list.
func renderList(t *browseruse.Tree, id browseruse.NodeID, ordered bool) string {
	var b strings.Builder
	item := 0
	for _, c := range t.ChildElements(id) {
		if Classify(t.Node(c).Tag).Kind != KindListItem {
			continue
		}
		item++
		if ordered {
			fmt.Fprintf(&b, "%d. %s\n", item, Flatten(t, c))
		} else {
			b.WriteString("- " + Flatten(t, c) + "\n")
		}
	}
	if item == 0 {
		return ""
	}
	b.WriteString("\n")
	return b.String()
}

// renderQuote prefixes each line of the flattened text with "> ".
func renderQuote(t *browseruse.Tree, id browseruse.NodeID) string {
	text := Flatten(t, id)
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n") + "\n\n"
}

// renderCodeBlock emits a fenced block, preferring the raw text of a nested
// code element over the block's own text.
func renderCodeBlock(t *browseruse.Tree, id browseruse.NodeID) string {
	source := id
	if code := findTagWithin(t, id, "code"); code != browseruse.NoNode {
		source = code
	}
	content := strings.Trim(rawText(t, source), "\n")
	return "```\n" + content + "\n```\n\n"
}

// renderTable walks every row in document order. Cells join as
// "| a | b |"; a separator row follows the first emitted row only when the
// table contains at least one header cell anywhere. Rows without cells are
// skipped and do not count as the first row.
func renderTable(t *browseruse.Tree, id browseruse.NodeID) string {
	var rows []browseruse.NodeID
	collectRows(t, id, &rows)
	if len(rows) == 0 {
		return ""
	}

	hasHeader := findTagWithin(t, id, "th") != browseruse.NoNode

	var b strings.Builder
	wroteFirst := false
	for _, row := range rows {
		var cells []string
		for _, c := range t.ChildElements(row) {
			if Classify(t.Node(c).Tag).Kind == KindTableCell {
				cells = append(cells, Flatten(t, c))
			}
		}
		if len(cells) == 0 {
			continue
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		if !wroteFirst && hasHeader {
			seps := make([]string, len(cells))
			for j := range seps {
				seps[j] = "---"
			}
			b.WriteString("| " + strings.Join(seps, " | ") + " |\n")
		}
		wroteFirst = true
	}
	if b.Len() == 0 {
		return ""
	}
	b.WriteString("\n")
	return b.String()
}

// collectRows gathers tr descendants of id in document order, covering rows
// nested under thead and tbody.
func collectRows(t *browseruse.Tree, id browseruse.NodeID, rows *[]browseruse.NodeID) {
	for _, c := range t.ChildElements(id) {
		n := t.Node(c)
		if n.Tag == "tr" {
			*rows = append(*rows, c)
			continue
		}
		collectRows(t, c, rows)
	}
}

// findTagWithin returns the first element with the given tag strictly
// inside root's subtree, in document order, or NoNode.
func findTagWithin(t *browseruse.Tree, root browseruse.NodeID, tag string) browseruse.NodeID {
	for _, c := range t.Node(root).Children {
		n := t.Node(c)
		if n == nil {
			continue
		}
		if n.Kind == browseruse.KindElement && n.Tag == tag {
			return c
		}
		if found := findTagWithin(t, c, tag); found != browseruse.NoNode {
			return found
		}
	}
	return browseruse.NoNode
}

// flattenSkipped marks subtrees whose text never contributes to flattened
// output.
var flattenSkipped = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
}

// Flatten concatenates all descendant text of a subtree, trimming each text
// node and joining with single spaces. Markup is discarded, which also
// means inline tags nested inside flattening contexts lose their markers.
func Flatten(t *browseruse.Tree, id browseruse.NodeID) string {
	var parts []string
	flatten(t, id, &parts)
	return strings.Join(parts, " ")
}

func flatten(t *browseruse.Tree, id browseruse.NodeID, parts *[]string) {
	n := t.Node(id)
	if n == nil {
		return
	}
	if n.Kind == browseruse.KindText {
		if s := strings.TrimSpace(n.Text); s != "" {
			*parts = append(*parts, s)
		}
		return
	}
	if n.Kind == browseruse.KindElement && flattenSkipped[n.Tag] {
		return
	}
	for _, c := range n.Children {
		flatten(t, c, parts)
	}
}

// rawText concatenates descendant text without per-node trimming,
// preserving the newlines code blocks depend on.
func rawText(t *browseruse.Tree, id browseruse.NodeID) string {
	var b strings.Builder
	var walk func(browseruse.NodeID)
	walk = func(id browseruse.NodeID) {
		n := t.Node(id)
		if n == nil {
			return
		}
		if n.Kind == browseruse.KindText {
			b.WriteString(n.Text)
			return
		}
		if n.Kind == browseruse.KindElement && flattenSkipped[n.Tag] {
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(id)
	return b.String()
}
