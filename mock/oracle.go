package mock

import browseruse "github.com/rknoche6/fast-browser-use"

var (
	_ browseruse.StyleOracle    = (*StyleOracle)(nil)
	_ browseruse.GeometryOracle = (*GeometryOracle)(nil)
)

// StyleOracle is a mock implementation of browseruse.StyleOracle.
type StyleOracle struct {
	StyleFn func(id browseruse.NodeID) (browseruse.ComputedStyle, error)
}

func (o *StyleOracle) Style(id browseruse.NodeID) (browseruse.ComputedStyle, error) {
	return o.StyleFn(id)
}

// GeometryOracle is a mock implementation of browseruse.GeometryOracle.
type GeometryOracle struct {
	BoxFn func(id browseruse.NodeID) (browseruse.BoundingBox, bool, error)
}

func (o *GeometryOracle) Box(id browseruse.NodeID) (browseruse.BoundingBox, bool, error) {
	return o.BoxFn(id)
}
