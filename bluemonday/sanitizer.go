// Package bluemonday sanitizes rendered HTML using the bluemonday library.
package bluemonday

import (
	"github.com/fwojciec/docsite"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements docsite.Sanitizer at compile time.
var _ docsite.Sanitizer = (*Sanitizer)(nil)

// Sanitizer strips script-executing constructs from HTML before it is
// trusted for direct DOM insertion.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a new Sanitizer based on the UGC policy, extended
// to keep the class attribute goldmark emits on fenced code blocks.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("code", "pre")
	return &Sanitizer{policy: policy}
}

// Sanitize returns html with scripts, event handlers and other executable
// constructs removed.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
