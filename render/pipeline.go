// Package render implements the markdown fetch/parse/cache pipeline and
// the document viewer that publishes rendered HTML to the UI.
package render

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsite"
	"golang.org/x/sync/singleflight"
)

// Ensure Pipeline implements docsite.Renderer at compile time.
var _ docsite.Renderer = (*Pipeline)(nil)

// Pipeline renders documents by route: fetch raw markdown, convert to
// HTML, sanitize, assign heading ids, derive plain text. Results are
// memoized per route for the lifetime of the session and concurrent
// renders of the same route are collapsed into a single fetch.
//
// Failures are not cached; a failed route is re-fetched on the next call.
type Pipeline struct {
	source    docsite.Source
	converter docsite.Converter
	sanitizer docsite.Sanitizer
	processor docsite.Processor

	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]*docsite.Document
}

// NewPipeline creates a new Pipeline.
func NewPipeline(source docsite.Source, converter docsite.Converter, sanitizer docsite.Sanitizer, processor docsite.Processor) *Pipeline {
	return &Pipeline{
		source:    source,
		converter: converter,
		sanitizer: sanitizer,
		processor: processor,
		cache:     make(map[string]*docsite.Document),
	}
}

// Render returns the rendered document for a route, fetching and parsing
// it on first use. Returns ENOTFOUND if the document does not exist and
// EDECODE if its content cannot be read as text.
func (p *Pipeline) Render(ctx context.Context, route string) (*docsite.Document, error) {
	if doc := p.cached(route); doc != nil {
		return doc, nil
	}

	v, err, _ := p.group.Do(route, func() (any, error) {
		// A concurrent caller may have populated the cache while this
		// caller waited on the group.
		if doc := p.cached(route); doc != nil {
			return doc, nil
		}
		return p.render(ctx, route)
	})
	if err != nil {
		return nil, err
	}
	return v.(*docsite.Document), nil
}

func (p *Pipeline) render(ctx context.Context, route string) (*docsite.Document, error) {
	raw, err := p.source.ReadDocument(ctx, route)
	if err != nil {
		return nil, err
	}
	if !utf8.ValidString(raw) {
		return nil, docsite.Errorf(docsite.EDECODE, "document %q cannot be decoded as text", route)
	}

	converted, err := p.converter.Convert(raw)
	if err != nil {
		return nil, err
	}

	processed, err := p.processor.Process(p.sanitizer.Sanitize(converted))
	if err != nil {
		return nil, err
	}

	doc := &docsite.Document{
		Route:       route,
		RawMarkdown: raw,
		HTML:        processed.HTML,
		PlainText:   processed.PlainText,
		Headings:    processed.Headings,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(raw)),
	}

	p.mu.Lock()
	p.cache[route] = doc
	p.mu.Unlock()

	return doc, nil
}

func (p *Pipeline) cached(route string) *docsite.Document {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cache[route]
}
