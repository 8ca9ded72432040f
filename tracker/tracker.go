package tracker

import (
	"fmt"
	"sync"
	"time"
)

// Tracker bundles a Store and FrameMatcher for one tracking session behind a
// single mutex, so a renderer never sees a partially reconciled frame.
// Create one Tracker per video stream.
type Tracker struct {
	store   *Store
	matcher *FrameMatcher
	trail   *Trail
	mu      sync.Mutex
}

// NewTracker returns a Tracker using cfg for matching, labeler for naming new
// identities and a trail history of trailSize points per identity (0
// disables trail history)
func NewTracker(cfg Config, labeler Labeler, trailSize int,
	observers ...Observer) (*Tracker, error) {

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tracker config: %w", err)
	}

	if labeler == nil {
		return nil, fmt.Errorf("tracker requires a labeler: %w", ErrEmptyCatalog)
	}

	return &Tracker{
		store:   NewStore(labeler),
		matcher: NewFrameMatcher(cfg, observers...),
		trail:   NewTrail(trailSize),
	}, nil
}

// Update reconciles one frame of detections taken at time now
func (t *Tracker) Update(detections []Rect, now time.Time) (Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	res, err := t.matcher.Reconcile(t.store, detections, now)

	if err != nil {
		return res, err
	}

	for _, id := range res.Matched {
		if ident, ok := t.store.Get(id); ok {
			t.trail.Add(ident)
		}
	}

	for _, ident := range res.Expired {
		t.trail.Remove(ident.ID)
	}

	return res, nil
}

// Snapshot returns the identities to render, ordered by ID
func (t *Tracker) Snapshot() []Identity {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.store.Snapshot()
}

// Len returns the number of identities currently tracked
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.store.Len()
}

// Reset clears the tracked identities and trail history.  No events are
// emitted for the identities dropped.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.store.Reset()
	t.trail.Reset()
}

// Trail returns the center point history of the tracked identities
func (t *Tracker) Trail() *Trail {
	return t.trail
}

// Config returns the matcher settings
func (t *Tracker) Config() Config {
	return t.matcher.Config()
}
