package docsite

import (
	"strconv"
	"strings"
	"unicode"
)

// Slugify converts heading text into a URL- and DOM-safe identifier:
// lowercase, with runs of non-alphanumeric characters collapsed to a
// single hyphen and leading/trailing hyphens trimmed.
func Slugify(text string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen && sb.Len() > 0 {
			sb.WriteRune('-')
			prevHyphen = true
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// Slugger assigns unique heading ids within a single document. Duplicate
// slugs receive numeric suffixes in document order: the second "Overview"
// becomes "overview-2", the third "overview-3".
//
// This is the one canonical slug-and-disambiguate implementation; both the
// heading-id post-processor and outline extraction go through it so the
// same heading always gets the same id regardless of the rendering path.
type Slugger struct {
	used map[string]bool
	next map[string]int
}

// NewSlugger returns a Slugger with no ids assigned.
func NewSlugger() *Slugger {
	return &Slugger{
		used: make(map[string]bool),
		next: make(map[string]int),
	}
}

// Slug returns the unique id for the given heading text.
func (s *Slugger) Slug(text string) string {
	base := Slugify(text)
	if base == "" {
		base = "heading"
	}
	if !s.used[base] {
		s.used[base] = true
		return base
	}

	n := s.next[base]
	if n < 2 {
		n = 2
	}
	for {
		candidate := base + "-" + strconv.Itoa(n)
		n++
		if !s.used[candidate] {
			s.used[candidate] = true
			s.next[base] = n
			return candidate
		}
	}
}

// Reserve marks an id as taken so Slug never produces it. Used for
// headings that already carry an explicit id attribute.
func (s *Slugger) Reserve(id string) {
	s.used[id] = true
}
