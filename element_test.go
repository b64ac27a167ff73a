package browseruse_test

import (
	"encoding/json"
	"testing"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewElementNode_SerializesEmptyCollections(t *testing.T) {
	t.Parallel()

	node := browseruse.NewElementNode("div")
	node.Visible = true

	data, err := json.Marshal(node)
	require.NoError(t, err)

	assert.JSONEq(t, `{"tag":"div","attributes":{},"children":[],"visible":true,"interactive":false}`, string(data))
}

func TestElementNode_OptionalFields(t *testing.T) {
	t.Parallel()

	node := browseruse.NewElementNode("a")
	node.Text = "Docs"
	idx := 3
	node.Index = &idx
	node.Box = &browseruse.BoundingBox{X: 10, Y: 20, Width: 100, Height: 16}

	data, err := json.Marshal(node)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Docs", decoded["text"])
	assert.Equal(t, float64(3), decoded["index"])
	box, ok := decoded["box"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(100), box["width"])
}

func TestFallbackBody(t *testing.T) {
	t.Parallel()

	node := browseruse.FallbackBody()

	assert.Equal(t, "body", node.Tag)
	assert.False(t, node.Visible)
	assert.Empty(t, node.Children)
}

func TestBoundingBox_HasArea(t *testing.T) {
	t.Parallel()

	assert.True(t, browseruse.BoundingBox{Width: 1, Height: 1}.HasArea())
	assert.False(t, browseruse.BoundingBox{Width: 0, Height: 10}.HasArea())
	assert.False(t, browseruse.BoundingBox{Width: 10, Height: 0}.HasArea())
}

func TestElementNode_HasClass(t *testing.T) {
	t.Parallel()

	node := browseruse.NewElementNode("div")
	node.Attributes["class"] = "nav  primary sticky"

	assert.True(t, node.HasClass("primary"))
	assert.False(t, node.HasClass("prim"))
}

func TestComputeInteractivity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tag   string
		attrs map[string]string
		want  bool
	}{
		{name: "button tag", tag: "button", want: true},
		{name: "anchor tag", tag: "a", want: true},
		{name: "input tag", tag: "input", want: true},
		{name: "select tag", tag: "select", want: true},
		{name: "textarea tag", tag: "textarea", want: true},
		{name: "label tag", tag: "label", want: true},
		{name: "plain div", tag: "div", want: false},
		{name: "div with click handler", tag: "div", attrs: map[string]string{"onclick": "go()"}, want: true},
		{name: "span with mouseover handler", tag: "span", attrs: map[string]string{"onmouseover": "hi()"}, want: true},
		{name: "div with button role", tag: "div", attrs: map[string]string{"role": "button"}, want: true},
		{name: "span with link role", tag: "span", attrs: map[string]string{"role": "link"}, want: true},
		{name: "div with tab role", tag: "div", attrs: map[string]string{"role": "tab"}, want: true},
		{name: "li with menuitem role", tag: "li", attrs: map[string]string{"role": "menuitem"}, want: true},
		{name: "div with presentation role", tag: "div", attrs: map[string]string{"role": "presentation"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			node := browseruse.NewElementNode(tt.tag)
			for k, v := range tt.attrs {
				node.Attributes[k] = v
			}

			assert.Equal(t, tt.want, node.ComputeInteractivity())
			assert.Equal(t, tt.want, node.Interactive)
		})
	}
}
