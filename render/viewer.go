package render

import (
	"context"
	"sync"

	"github.com/fwojciec/docsite"
)

// Viewer ties navigation, rendering and the table of contents together
// for the document view. Opening a route updates navigation state
// synchronously, renders asynchronously, and publishes the result only if
// the route is still active when the render completes: a newer navigation
// supersedes an older one's effect on the view.
//
// The Viewer owns the scroll subscription for the open document. It is
// acquired when a document is published and released on every exit path
// that replaces or tears down the view: a successful navigation away, or
// Close. A failed navigation leaves the previous document published, so
// its subscription stays alive.
type Viewer struct {
	tree     *docsite.NavTree
	renderer docsite.Renderer
	spy      *docsite.ScrollSpy
	scroll   docsite.ScrollSource

	mu      sync.Mutex
	html    string
	release func()
}

// NewViewer creates a new Viewer. scroll may be nil when no scroll events
// are available (e.g. CLI rendering).
func NewViewer(tree *docsite.NavTree, renderer docsite.Renderer, spy *docsite.ScrollSpy, scroll docsite.ScrollSource) *Viewer {
	return &Viewer{
		tree:     tree,
		renderer: renderer,
		spy:      spy,
		scroll:   scroll,
	}
}

// Open navigates to a route and renders its document. The active route is
// set before the fetch starts, so navigation state always observes the
// route update first. If the user navigates elsewhere while the fetch is
// pending the completed result is discarded rather than applied to the
// now-stale view.
func (v *Viewer) Open(ctx context.Context, route string) error {
	v.tree.SetActiveRoute(route)

	doc, err := v.renderer.Render(ctx, route)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.tree.ActiveRoute() != route {
		// Superseded by a newer navigation; its Open publishes instead.
		return nil
	}

	v.releaseLocked()
	v.html = doc.HTML
	v.spy.SetHeadings(doc.Headings)
	if v.scroll != nil {
		v.release = v.scroll.Subscribe(v.spy.Observe)
	}
	return nil
}

// HTML returns the published HTML of the open document, or "" if none.
func (v *Viewer) HTML() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.html
}

// Close tears down the view: the scroll subscription is released and the
// outline cleared.
func (v *Viewer) Close() {
	v.mu.Lock()
	v.releaseLocked()
	v.html = ""
	v.mu.Unlock()
	v.spy.SetHeadings(nil)
}

func (v *Viewer) releaseLocked() {
	if v.release != nil {
		v.release()
		v.release = nil
	}
}
