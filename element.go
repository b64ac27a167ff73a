package browseruse

import "strings"

// ElementNode is one element in a DOM snapshot: a size- and depth-bounded
// view of the live element tree with visibility, geometry, and interactivity
// metadata. Snapshots are produced fresh per invocation and serialized
// across the automation boundary; they have no identity beyond that.
type ElementNode struct {
	Tag         string            `json:"tag"`
	Attributes  map[string]string `json:"attributes"`
	Text        string            `json:"text,omitempty"`
	Children    []*ElementNode    `json:"children"`
	Visible     bool              `json:"visible"`
	Interactive bool              `json:"interactive"`
	Index       *int              `json:"index,omitempty"`
	Box         *BoundingBox      `json:"box,omitempty"`
}

// BoundingBox is element geometry in viewport coordinates.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// HasArea reports whether the box occupies non-zero rendered area.
func (b BoundingBox) HasArea() bool {
	return b.Width > 0 && b.Height > 0
}

// Area returns the box area in square pixels.
func (b BoundingBox) Area() float64 {
	return b.Width * b.Height
}

// NewElementNode returns an ElementNode with its attribute map and child
// slice allocated, so the zero state serializes as {} and [].
func NewElementNode(tag string) *ElementNode {
	return &ElementNode{
		Tag:        tag,
		Attributes: map[string]string{},
		Children:   []*ElementNode{},
	}
}

// FallbackBody is the snapshot produced when the document has no body
// element: an empty, invisible body node.
func FallbackBody() *ElementNode {
	return NewElementNode("body")
}

// ID returns the element's id attribute, or "".
func (e *ElementNode) ID() string {
	return e.Attributes["id"]
}

// HasClass reports whether the element's class attribute contains name.
func (e *ElementNode) HasClass(name string) bool {
	for _, c := range strings.Fields(e.Attributes["class"]) {
		if c == name {
			return true
		}
	}
	return false
}

// interactiveTags are element types that are interactive by nature.
var interactiveTags = map[string]bool{
	"button":   true,
	"a":        true,
	"input":    true,
	"select":   true,
	"textarea": true,
	"label":    true,
}

// interactiveRoles are ARIA roles that make any element clickable.
var interactiveRoles = map[string]bool{
	"button":   true,
	"link":     true,
	"tab":      true,
	"menuitem": true,
}

// ComputeInteractivity classifies the element as interactive based on its
// tag, inline event handler attributes, and ARIA role, records the result
// in Interactive, and returns it.
func (e *ElementNode) ComputeInteractivity() bool {
	e.Interactive = false

	if interactiveTags[e.Tag] {
		e.Interactive = true
		return true
	}
	if interactiveRoles[e.Attributes["role"]] {
		e.Interactive = true
		return true
	}
	for k := range e.Attributes {
		if strings.HasPrefix(k, "on") {
			e.Interactive = true
			return true
		}
	}
	return false
}
