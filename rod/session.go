package rod

import (
	"context"
	"strconv"

	"github.com/go-rod/rod"
	browseruse "github.com/rknoche6/fast-browser-use"
)

// PageSession is one live, loaded page. It answers the style and geometry
// questions the snapshot pipeline cannot decide from markup alone, resolving
// tree nodes back to live elements by their positional CSS path.
type PageSession struct {
	page   *rod.Page
	cancel context.CancelFunc
	tree   *browseruse.Tree
}

// Page returns the session's final URL, title, and rendered HTML.
func (s *PageSession) Page() (*browseruse.RenderedPage, error) {
	info, err := s.page.Info()
	if err != nil {
		return nil, err
	}
	html, err := s.page.HTML()
	if err != nil {
		return nil, err
	}
	return &browseruse.RenderedPage{
		URL:   info.URL,
		Title: info.Title,
		HTML:  html,
	}, nil
}

// Bind attaches the parsed tree whose node IDs the oracle methods resolve.
// Must be called before Style or Box.
func (s *PageSession) Bind(tree *browseruse.Tree) {
	s.tree = tree
}

var (
	_ browseruse.StyleOracle    = (*PageSession)(nil)
	_ browseruse.GeometryOracle = (*PageSession)(nil)
)

// Style resolves the live computed style of a tree node. Nodes that cannot
// be located in the page report display none rather than failing the walk.
func (s *PageSession) Style(id browseruse.NodeID) (browseruse.ComputedStyle, error) {
	el, ok := s.element(id)
	if !ok {
		return browseruse.ComputedStyle{Display: "none"}, nil
	}

	res, err := el.Eval(`() => {
		const s = window.getComputedStyle(this);
		return {display: s.display, visibility: s.visibility, opacity: s.opacity};
	}`)
	if err != nil {
		return browseruse.ComputedStyle{}, err
	}

	opacity, err := strconv.ParseFloat(res.Value.Get("opacity").Str(), 64)
	if err != nil {
		opacity = 1
	}
	return browseruse.ComputedStyle{
		Display:    res.Value.Get("display").Str(),
		Visibility: res.Value.Get("visibility").Str(),
		Opacity:    opacity,
	}, nil
}

// Box resolves the rendered bounding box of a tree node. ok is false when
// the element cannot be located or does not render.
func (s *PageSession) Box(id browseruse.NodeID) (browseruse.BoundingBox, bool, error) {
	el, ok := s.element(id)
	if !ok {
		return browseruse.BoundingBox{}, false, nil
	}

	shape, err := el.Shape()
	if err != nil {
		return browseruse.BoundingBox{}, false, nil
	}
	box := shape.Box()
	if box == nil {
		return browseruse.BoundingBox{}, false, nil
	}
	return browseruse.BoundingBox{
		X:      box.X,
		Y:      box.Y,
		Width:  box.Width,
		Height: box.Height,
	}, true, nil
}

// element resolves a tree node to its live element by CSS path.
func (s *PageSession) element(id browseruse.NodeID) (*rod.Element, bool) {
	if s.tree == nil {
		return nil, false
	}
	sel := s.tree.Path(id)
	if sel == "" {
		return nil, false
	}
	el, err := s.page.Element(sel)
	if err != nil {
		return nil, false
	}
	return el, true
}

// Close releases the page.
func (s *PageSession) Close() error {
	if s.cancel != nil {
		defer s.cancel()
	}
	return s.page.Close()
}
