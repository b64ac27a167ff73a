package browseruse

// ElementSelector describes how to re-locate one interactive element from
// a snapshot: the selector automation should use, plus enough context to
// disambiguate it in logs and transcripts.
type ElementSelector struct {
	CSSSelector string `json:"css_selector"`
	TagName     string `json:"tag_name"`
	ID          string `json:"id,omitempty"`
	Text        string `json:"text,omitempty"`
}

// SelectorMap assigns dense indices to the interactive elements of a
// snapshot, in the order they were registered. Index N in the serialized
// snapshot refers to the Nth registered selector.
type SelectorMap struct {
	selectors []ElementSelector
}

// NewSelectorMap returns an empty selector map.
func NewSelectorMap() *SelectorMap {
	return &SelectorMap{selectors: []ElementSelector{}}
}

// Register records sel and returns its index.
func (m *SelectorMap) Register(sel ElementSelector) int {
	m.selectors = append(m.selectors, sel)
	return len(m.selectors) - 1
}

// Get returns the selector registered at index, or false if the index is
// out of range.
func (m *SelectorMap) Get(index int) (ElementSelector, bool) {
	if index < 0 || index >= len(m.selectors) {
		return ElementSelector{}, false
	}
	return m.selectors[index], true
}

// Len returns the number of registered selectors.
func (m *SelectorMap) Len() int {
	return len(m.selectors)
}

// Selectors returns the registered selectors in index order. The returned
// slice is shared with the map and must not be modified.
func (m *SelectorMap) Selectors() []ElementSelector {
	return m.selectors
}

// FindByCSSSelector returns the index of the first selector whose
// CSSSelector equals sel, or -1.
func (m *SelectorMap) FindByCSSSelector(sel string) int {
	for i, s := range m.selectors {
		if s.CSSSelector == sel {
			return i
		}
	}
	return -1
}

// FindByID returns the index of the first selector whose element id equals
// id, or -1.
func (m *SelectorMap) FindByID(id string) int {
	if id == "" {
		return -1
	}
	for i, s := range m.selectors {
		if s.ID == id {
			return i
		}
	}
	return -1
}
