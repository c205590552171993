package docsite

import "sync"

// DefaultSpyThreshold is the viewport offset, in pixels, below which a
// heading counts as "passed" by the reader.
const DefaultSpyThreshold = 100.0

// MaxTocLevel is the deepest heading level that participates in the table
// of contents. Deeper headings are ignored for extraction and navigation.
const MaxTocLevel = 4

// ScrollSource delivers viewport offset updates for the open document.
// Offsets are keyed by heading id and measured from the top of the
// viewport. The returned function releases the subscription.
type ScrollSource interface {
	Subscribe(fn func(offsets map[string]float64)) func()
}

// ScrollSpy keeps a table of contents synchronized with the reading
// position. It holds the outline of the current document and marks one
// heading active: the last one whose viewport offset is at or above the
// threshold line.
type ScrollSpy struct {
	mu        sync.Mutex
	threshold float64
	scrollFn  func(id string)
	items     []Heading
	activeID  string
	subs      map[int]func(activeID string)
	nextID    int
}

// SpyOption configures a ScrollSpy.
type SpyOption func(*ScrollSpy)

// WithThreshold sets the activation threshold in pixels.
// Defaults to DefaultSpyThreshold.
func WithThreshold(px float64) SpyOption {
	return func(s *ScrollSpy) {
		s.threshold = px
	}
}

// WithScrollFunc sets the callback invoked by ScrollTo to request that the
// UI scroll the target heading near the top of the content area.
func WithScrollFunc(fn func(id string)) SpyOption {
	return func(s *ScrollSpy) {
		s.scrollFn = fn
	}
}

// NewScrollSpy returns an empty ScrollSpy.
func NewScrollSpy(opts ...SpyOption) *ScrollSpy {
	s := &ScrollSpy{
		threshold: DefaultSpyThreshold,
		subs:      make(map[int]func(string)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetHeadings replaces the outline when a new document is rendered and
// resets the active heading. Headings deeper than MaxTocLevel are dropped.
func (s *ScrollSpy) SetHeadings(items []Heading) {
	s.mu.Lock()
	filtered := make([]Heading, 0, len(items))
	for _, h := range items {
		if h.Level >= 1 && h.Level <= MaxTocLevel {
			filtered = append(filtered, h)
		}
	}
	s.items = filtered
	changed := s.activeID != ""
	s.activeID = ""
	s.mu.Unlock()
	if changed {
		s.notify("")
	}
}

// Items returns the current outline in document order.
func (s *ScrollSpy) Items() []Heading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// ActiveID returns the id of the active heading, or "" if none.
func (s *ScrollSpy) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// ScrollTo requests a scroll to the given heading and marks it active
// immediately, without waiting for the scroll to complete.
func (s *ScrollSpy) ScrollTo(id string) {
	s.mu.Lock()
	scrollFn := s.scrollFn
	changed := s.activeID != id
	s.activeID = id
	s.mu.Unlock()

	if scrollFn != nil {
		scrollFn(id)
	}
	if changed {
		s.notify(id)
	}
}

// Observe recomputes the active heading from current viewport offsets.
// The active heading is the last one, in outline order, whose offset is at
// most the threshold; if none qualifies the first heading is active. This
// yields "the heading the reader is currently under" rather than the
// nearest heading, which matters near the top of a long document.
func (s *ScrollSpy) Observe(offsets map[string]float64) {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return
	}

	active := s.items[0].ID
	for _, h := range s.items {
		off, ok := offsets[h.ID]
		if ok && off <= s.threshold {
			active = h.ID
		}
	}

	changed := s.activeID != active
	s.activeID = active
	s.mu.Unlock()

	if changed {
		s.notify(active)
	}
}

// Subscribe registers fn to be called whenever the active heading changes.
// The returned function removes the subscription.
func (s *ScrollSpy) Subscribe(fn func(activeID string)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *ScrollSpy) notify(activeID string) {
	s.mu.Lock()
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(activeID)
	}
}
