// Package bloom provides URL deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// URLSet tracks which URLs have already been visited. Membership answers
// may report false positives but never false negatives, so a URL is never
// captured twice at the cost of occasionally skipping a fresh one.
type URLSet struct {
	f *bloom.BloomFilter
}

// NewURLSet creates a set sized for n expected URLs with the given false
// positive rate.
func NewURLSet(n uint, fpRate float64) *URLSet {
	return &URLSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as visited.
func (s *URLSet) Add(url string) {
	s.f.AddString(url)
}

// Seen returns true if the URL was probably added before.
func (s *URLSet) Seen(url string) bool {
	return s.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the set.
func (s *URLSet) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
