// Package bloom provides a trigram Bloom-filter prefilter for substring
// search, so queries can skip scanning document bodies that cannot match.
package bloom

import (
	"strings"
	"unicode"

	"github.com/bits-and-blooms/bloom/v3"
)

// falsePositiveRate sizes the underlying filter. False positives only cost
// a redundant body scan, so a loose rate keeps the filters small.
const falsePositiveRate = 0.01

// TrigramFilter records which case-folded rune trigrams occur in a body of
// text. If any trigram of a query is absent, the text cannot contain the
// query as a substring.
type TrigramFilter struct {
	f *bloom.BloomFilter
}

// NewTrigramFilter builds a filter over all trigrams of text.
func NewTrigramFilter(text string) *TrigramFilter {
	runes := fold(text)

	n := len(runes)
	if n < 16 {
		n = 16
	}
	f := bloom.NewWithEstimates(uint(n), falsePositiveRate)
	for i := 0; i+3 <= len(runes); i++ {
		f.AddString(string(runes[i : i+3]))
	}

	return &TrigramFilter{f: f}
}

// MayContain returns true if text might contain query as a substring.
// False positives are possible; false negatives are not. Queries shorter
// than a trigram always return true.
func (t *TrigramFilter) MayContain(query string) bool {
	runes := fold(query)
	if len(runes) < 3 {
		return true
	}
	for i := 0; i+3 <= len(runes); i++ {
		if !t.f.TestString(string(runes[i : i+3])) {
			return false
		}
	}
	return true
}

func fold(s string) []rune {
	return []rune(strings.Map(unicode.ToLower, s))
}
