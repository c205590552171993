package docsite

import (
	"encoding/json"
	"io"
	"sync"
)

// NavNode is a node in the navigation tree: either a leaf document (has a
// route) or a folder (has children). A node carrying both is treated as a
// folder.
type NavNode struct {
	Label    string     `json:"label"`
	Route    string     `json:"route,omitempty"`
	Children []*NavNode `json:"children,omitempty"`
	Expanded bool       `json:"-"`
}

// IsFolder reports whether the node groups other nodes.
func (n *NavNode) IsFolder() bool {
	return len(n.Children) > 0
}

// IsLeaf reports whether the node represents a single document.
func (n *NavNode) IsLeaf() bool {
	return !n.IsFolder() && n.Route != ""
}

// DecodeNav decodes a navigation tree produced by the external build step.
func DecodeNav(r io.Reader) ([]*NavNode, error) {
	var nodes []*NavNode
	if err := json.NewDecoder(r).Decode(&nodes); err != nil {
		return nil, Errorf(EINVALID, "malformed navigation tree: %v", err)
	}
	return nodes, nil
}

// NavTree holds the navigation tree, its expansion state, and the route of
// the currently active document. Subscribers are notified after every state
// change.
//
// The tree is loaded once at startup and mutated only through Toggle and
// SetActiveRoute. Route values are expected to be unique across leaves; if
// two leaves share a route the first in document order wins.
type NavTree struct {
	mu     sync.Mutex
	roots  []*NavNode
	active string
	subs   map[int]func()
	nextID int
}

// NewNavTree returns an empty NavTree.
func NewNavTree() *NavTree {
	return &NavTree{subs: make(map[int]func())}
}

// Load replaces the tree. All folders start collapsed except ancestors of
// the active route, which are expanded so the active document is visible
// without user action.
func (t *NavTree) Load(roots []*NavNode) {
	t.mu.Lock()
	t.roots = roots
	for _, n := range roots {
		collapseAll(n)
	}
	if t.active != "" {
		expandPath(t.roots, t.active)
	}
	t.mu.Unlock()
	t.notify()
}

// Roots returns the top-level nodes of the tree.
func (t *NavTree) Roots() []*NavNode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.roots
}

// ActiveRoute returns the route of the currently active document, or ""
// if none is active.
func (t *NavTree) ActiveRoute() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Toggle flips the expansion state of a folder node. Leaves are unaffected,
// as are all other folders: multiple folders may be open at once.
func (t *NavTree) Toggle(n *NavNode) {
	t.mu.Lock()
	if !n.IsFolder() {
		t.mu.Unlock()
		return
	}
	n.Expanded = !n.Expanded
	t.mu.Unlock()
	t.notify()
}

// SetActiveRoute marks route as the active document and expands every
// folder on the path to the first leaf with that route. Already-expanded
// folders and unrelated folders keep their state.
func (t *NavTree) SetActiveRoute(route string) {
	t.mu.Lock()
	t.active = route
	expandPath(t.roots, route)
	t.mu.Unlock()
	t.notify()
}

// HasActiveChild reports whether some descendant leaf of n carries the
// active route. Used for highlighting ancestor folders; it never mutates
// expansion state.
func (t *NavTree) HasActiveChild(n *NavNode) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == "" {
		return false
	}
	return containsRoute(n, t.active)
}

// Leaves returns all leaf nodes in document order.
func (t *NavTree) Leaves() []*NavNode {
	t.mu.Lock()
	defer t.mu.Unlock()
	var leaves []*NavNode
	var walk func(nodes []*NavNode)
	walk = func(nodes []*NavNode) {
		for _, n := range nodes {
			if n.IsFolder() {
				walk(n.Children)
				continue
			}
			if n.IsLeaf() {
				leaves = append(leaves, n)
			}
		}
	}
	walk(t.roots)
	return leaves
}

// Breadcrumb returns the labels of the ancestor folders of the first leaf
// with the given route, in root-to-leaf order, excluding the leaf itself.
// Returns nil if no leaf carries the route.
func (t *NavTree) Breadcrumb(route string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var trail []string
	var walk func(nodes []*NavNode, ancestors []string) bool
	walk = func(nodes []*NavNode, ancestors []string) bool {
		for _, n := range nodes {
			if n.IsFolder() {
				if walk(n.Children, append(ancestors, n.Label)) {
					return true
				}
				continue
			}
			if n.IsLeaf() && n.Route == route {
				trail = append([]string(nil), ancestors...)
				return true
			}
		}
		return false
	}
	walk(t.roots, nil)
	return trail
}

// Subscribe registers fn to be called after every tree state change.
// The returned function removes the subscription.
func (t *NavTree) Subscribe(fn func()) func() {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	t.mu.Unlock()
	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

func (t *NavTree) notify() {
	t.mu.Lock()
	fns := make([]func(), 0, len(t.subs))
	for _, fn := range t.subs {
		fns = append(fns, fn)
	}
	t.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func collapseAll(n *NavNode) {
	n.Expanded = false
	for _, c := range n.Children {
		collapseAll(c)
	}
}

// expandPath expands every folder on the path to the first leaf with the
// given route. Single depth-first traversal; each node is visited at most
// once.
func expandPath(nodes []*NavNode, route string) bool {
	for _, n := range nodes {
		if n.IsFolder() {
			if expandPath(n.Children, route) {
				n.Expanded = true
				return true
			}
			continue
		}
		if n.IsLeaf() && n.Route == route {
			return true
		}
	}
	return false
}

func containsRoute(n *NavNode, route string) bool {
	if n.IsFolder() {
		for _, c := range n.Children {
			if containsRoute(c, route) {
				return true
			}
		}
		return false
	}
	return n.IsLeaf() && n.Route == route
}
