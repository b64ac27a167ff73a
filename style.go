package browseruse

import "strings"

// ComputedStyle is the subset of an element's resolved style that decides
// visibility.
type ComputedStyle struct {
	Display    string
	Visibility string
	Opacity    float64
}

// Hidden reports whether the style hides the element outright.
func (s ComputedStyle) Hidden() bool {
	return s.Display == "none" || s.Visibility == "hidden" || s.Opacity == 0
}

// A StyleOracle resolves the computed style of a tree element. Live page
// sessions answer from the browser; offline callers can use
// InlineStyleOracle or a mock.
type StyleOracle interface {
	Style(id NodeID) (ComputedStyle, error)
}

// A GeometryOracle resolves the rendered bounding box of a tree element.
// ok is false when the element does not render (detached, display:none
// subtree, zero layout).
type GeometryOracle interface {
	Box(id NodeID) (BoundingBox, bool, error)
}

// InlineStyleOracle derives styles from the markup alone: style attributes,
// the hidden attribute, and hidden inputs. It knows nothing about
// stylesheets, so it answers "visible" for anything the markup does not
// explicitly hide.
type InlineStyleOracle struct {
	Tree *Tree
}

func (o *InlineStyleOracle) Style(id NodeID) (ComputedStyle, error) {
	n := o.Tree.Node(id)
	if n == nil || n.Kind != KindElement {
		return ComputedStyle{}, Errorf(ENOTFOUND, "no element at node %d", id)
	}

	style, visibilitySet := ownStyle(n)

	// Hiding cascades: a display:none or zero-opacity ancestor hides the
	// whole subtree, and visibility:hidden inherits unless this element
	// declares its own.
	for cur := n.Parent; cur != NoNode; {
		an := o.Tree.Node(cur)
		if an == nil {
			break
		}
		if an.Kind == KindElement {
			as, _ := ownStyle(an)
			if as.Display == "none" {
				style.Display = "none"
				break
			}
			if as.Opacity == 0 {
				style.Opacity = 0
			}
			if as.Visibility == "hidden" && !visibilitySet {
				style.Visibility = "hidden"
			}
		}
		cur = an.Parent
	}
	return style, nil
}

// ownStyle resolves the element's own markup-level style and reports
// whether it explicitly declared a visibility.
func ownStyle(n *Node) (ComputedStyle, bool) {
	style := ComputedStyle{Display: defaultDisplay(n.Tag), Visibility: "visible", Opacity: 1}
	if n.HasAttr("hidden") {
		style.Display = "none"
	}
	if typ, _ := n.Attr("type"); n.Tag == "input" && strings.EqualFold(typ, "hidden") {
		style.Display = "none"
	}
	visibilitySet := false
	if decl, ok := n.Attr("style"); ok {
		visibilitySet = applyInlineStyle(&style, decl)
	}
	return style, visibilitySet
}

func defaultDisplay(tag string) string {
	switch tag {
	case "script", "style", "noscript", "template", "head", "meta", "link", "title", "base":
		return "none"
	default:
		return "block"
	}
}

func applyInlineStyle(style *ComputedStyle, decl string) (visibilitySet bool) {
	for _, part := range strings.Split(decl, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.ToLower(strings.TrimSpace(v))
		switch k {
		case "display":
			style.Display = v
		case "visibility":
			style.Visibility = v
			visibilitySet = true
		case "opacity":
			if v == "0" || v == "0.0" || v == "0%" {
				style.Opacity = 0
			}
		}
	}
	return visibilitySet
}
