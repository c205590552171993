// Package search implements the lazily built substring search index over
// navigation titles and rendered document bodies.
package search

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/bloom"
	"golang.org/x/sync/errgroup"
)

// MaxSnippets is the maximum number of content snippets per result.
const MaxSnippets = 3

// primeConcurrency bounds parallel renders during eager index builds.
const primeConcurrency = 4

// Ensure Index implements docsite.Searcher at compile time.
var _ docsite.Searcher = (*Index)(nil)

// Index searches the leaf set of a navigation tree. Titles come straight
// from the tree; body text is pulled through the renderer on the first
// query that needs it and never re-fetched afterwards. A document whose
// body cannot be fetched is skipped for the rest of the session and
// excluded from results; the query still succeeds for all other documents.
type Index struct {
	tree     *docsite.NavTree
	renderer docsite.Renderer

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	text    string // original case, for snippets
	lower   string
	filter  *bloom.TrigramFilter
	skipped bool
}

// NewIndex creates a new Index over the tree's leaves.
func NewIndex(tree *docsite.NavTree, renderer docsite.Renderer) *Index {
	return &Index{
		tree:     tree,
		renderer: renderer,
		entries:  make(map[string]*entry),
	}
}

// Prime eagerly indexes all document bodies, trading startup latency for
// search latency. Individual document failures are swallowed; the
// returned error is only ever the context's.
func (ix *Index) Prime(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(primeConcurrency)

	for _, leaf := range ix.tree.Leaves() {
		leaf := leaf
		g.Go(func() error {
			ix.body(ctx, leaf.Route)
			return ctx.Err()
		})
	}

	return g.Wait()
}

// Search runs a case-insensitive substring query over titles and bodies.
// Results rank by tier (both > title > content) and keep navigation order
// within a tier. An empty or whitespace-only query returns no results.
func (ix *Index) Search(ctx context.Context, query string) ([]docsite.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	q := strings.ToLower(query)

	var both, title, content []docsite.SearchResult
	for _, leaf := range ix.tree.Leaves() {
		titleMatch := strings.Contains(strings.ToLower(leaf.Label), q)

		e := ix.body(ctx, leaf.Route)
		if e.skipped {
			continue
		}

		bodyMatch := false
		if e.filter.MayContain(q) {
			bodyMatch = strings.Contains(e.lower, q)
		}
		if !titleMatch && !bodyMatch {
			continue
		}

		res := docsite.SearchResult{
			Route:      leaf.Route,
			Label:      leaf.Label,
			Breadcrumb: ix.breadcrumb(leaf),
		}
		if bodyMatch {
			res.ContentMatches = docsite.ExtractSnippets(e.text, query, MaxSnippets)
		}

		switch {
		case titleMatch && bodyMatch:
			res.MatchType = docsite.MatchBoth
			both = append(both, res)
		case titleMatch:
			res.MatchType = docsite.MatchTitle
			title = append(title, res)
		default:
			res.MatchType = docsite.MatchContent
			content = append(content, res)
		}
	}

	return append(append(both, title...), content...), nil
}

// body returns the indexed entry for a route, rendering the document on
// first use. Fetch or decode failures mark the route skipped; failures are
// not retried within the session. A failure caused by the caller's context
// says nothing about the document, so it is not cached: the route stays
// unindexed and the next query retries it.
func (ix *Index) body(ctx context.Context, route string) *entry {
	ix.mu.Lock()
	if e, ok := ix.entries[route]; ok {
		ix.mu.Unlock()
		return e
	}
	ix.mu.Unlock()

	// The renderer deduplicates concurrent fetches per route, so indexing
	// outside the lock at worst races to store identical entries.
	e := &entry{}
	doc, err := ix.renderer.Render(ctx, route)
	switch {
	case err != nil && contextErr(ctx, err):
		e.skipped = true
		return e
	case err != nil:
		e.skipped = true
	default:
		e.text = doc.PlainText
		e.lower = strings.ToLower(doc.PlainText)
		e.filter = bloom.NewTrigramFilter(doc.PlainText)
	}

	ix.mu.Lock()
	ix.entries[route] = e
	ix.mu.Unlock()
	return e
}

// contextErr reports whether a render failure was caused by the caller's
// context rather than by the document itself.
func contextErr(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (ix *Index) breadcrumb(leaf *docsite.NavNode) string {
	trail := append(ix.tree.Breadcrumb(leaf.Route), leaf.Label)
	return strings.Join(trail, " > ")
}
