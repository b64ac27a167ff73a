package extract_test

import (
	"strings"
	"testing"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/rknoche6/fast-browser-use/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibleElement(tag string) *browseruse.ElementNode {
	n := browseruse.NewElementNode(tag)
	n.Visible = true
	return n
}

func TestIndexSnapshot_AssignsDenseIndices(t *testing.T) {
	t.Parallel()

	body := visibleElement("body")
	button := visibleElement("button")
	button.Attributes["id"] = "login"
	div := visibleElement("div")
	link := visibleElement("a")
	link.Text = "Docs"
	div.Children = append(div.Children, link)
	body.Children = append(body.Children, button, div)

	m := extract.IndexSnapshot(body)

	require.Equal(t, 2, m.Len())
	require.NotNil(t, button.Index)
	require.NotNil(t, link.Index)
	assert.Equal(t, 0, *button.Index)
	assert.Equal(t, 1, *link.Index)
	assert.Nil(t, div.Index)
	assert.Nil(t, body.Index)
}

func TestIndexSnapshot_SkipsInvisibleElements(t *testing.T) {
	t.Parallel()

	body := visibleElement("body")
	hidden := browseruse.NewElementNode("button")
	body.Children = append(body.Children, hidden)

	m := extract.IndexSnapshot(body)

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, hidden.Index)
	assert.True(t, hidden.Interactive, "interactivity is still classified")
}

func TestIndexSnapshot_SelectorPreference(t *testing.T) {
	t.Parallel()

	t.Run("id wins", func(t *testing.T) {
		t.Parallel()

		body := visibleElement("body")
		button := visibleElement("button")
		button.Attributes["id"] = "go"
		button.Attributes["class"] = "primary big"
		body.Children = append(body.Children, button)

		m := extract.IndexSnapshot(body)

		sel, ok := m.Get(0)
		require.True(t, ok)
		assert.Equal(t, "#go", sel.CSSSelector)
		assert.Equal(t, "go", sel.ID)
	})

	t.Run("first class next", func(t *testing.T) {
		t.Parallel()

		body := visibleElement("body")
		button := visibleElement("button")
		button.Attributes["class"] = "primary big"
		body.Children = append(body.Children, button)

		m := extract.IndexSnapshot(body)

		sel, ok := m.Get(0)
		require.True(t, ok)
		assert.Equal(t, "button.primary", sel.CSSSelector)
	})

	t.Run("positional path as last resort", func(t *testing.T) {
		t.Parallel()

		body := visibleElement("body")
		div := visibleElement("div")
		link := visibleElement("a")
		div.Children = append(div.Children, link)
		body.Children = append(body.Children, visibleElement("header"), div)

		m := extract.IndexSnapshot(body)

		sel, ok := m.Get(0)
		require.True(t, ok)
		assert.Equal(t, "body > div:nth-child(2) > a:nth-child(1)", sel.CSSSelector)
	})
}

func TestIndexSnapshot_TruncatesText(t *testing.T) {
	t.Parallel()

	body := visibleElement("body")
	link := visibleElement("a")
	link.Text = strings.Repeat("x", 80)
	body.Children = append(body.Children, link)

	m := extract.IndexSnapshot(body)

	sel, ok := m.Get(0)
	require.True(t, ok)
	assert.Len(t, sel.Text, extract.MaxSelectorText)
	assert.True(t, strings.HasSuffix(sel.Text, "..."))
}

func TestIndexSnapshot_NilRoot(t *testing.T) {
	t.Parallel()

	m := extract.IndexSnapshot(nil)
	assert.Equal(t, 0, m.Len())
}
