package docsite

import "context"

// Document is a fetched and rendered markdown document. Once produced for
// a route it is immutable for the rest of the session: documents are static
// assets and are never re-fetched.
type Document struct {
	Route       string    `json:"route"`
	RawMarkdown string    `json:"-"`
	HTML        string    `json:"html"`
	PlainText   string    `json:"plainText"`
	Headings    []Heading `json:"headings"`
	ContentHash string    `json:"contentHash"`
}

// Heading is a single entry in a document's outline. ID is unique within
// the document and stable across repeated renders.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"` // 1..4
}

// Source retrieves raw site assets by route. ReadDocument resolves a route
// to <docs-base>/<route>.md; ReadNavigation reads the navigation tree
// produced by the external build step.
// Returns ENOTFOUND if the asset does not exist.
type Source interface {
	ReadDocument(ctx context.Context, route string) (string, error)
	ReadNavigation(ctx context.Context) (string, error)
}

// Converter converts raw markdown into HTML. Malformed markdown degrades
// to best-effort HTML rather than erroring.
type Converter interface {
	Convert(markdown string) (string, error)
}

// Sanitizer strips script-executing constructs from HTML so the result can
// be trusted for direct DOM insertion.
type Sanitizer interface {
	Sanitize(html string) string
}

// Processed is the result of post-processing sanitized HTML.
type Processed struct {
	// HTML with an id attribute on every heading at levels 1-4.
	HTML string

	// PlainText is the document text with all tags stripped and
	// whitespace normalized.
	PlainText string

	// Headings lists the level 1-4 headings in document order.
	Headings []Heading
}

// Processor post-processes rendered HTML: assigns unique heading ids and
// derives the plain text used for search.
type Processor interface {
	Process(html string) (*Processed, error)
}

// Renderer produces rendered documents by route.
// Returns ENOTFOUND if the document does not exist and EDECODE if its
// content cannot be read as text.
type Renderer interface {
	Render(ctx context.Context, route string) (*Document, error)
}
