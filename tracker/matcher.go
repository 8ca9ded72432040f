package tracker

import (
	"fmt"
	"time"
)

// Result summarises the outcome of reconciling one frame
type Result struct {
	// Matched lists the identities touched or created this frame in the
	// order they were first claimed
	Matched []ID
	// Created lists identities created this frame
	Created []Identity
	// Expired lists identities removed this frame, ordered by ID
	Expired []Identity
}

// FrameMatcher reconciles each frame's detections with a Store using greedy
// nearest-centroid assignment.  Detections are processed in the order given
// and the first detection wins a contested identity, there is no global
// optimisation and no motion prediction.
type FrameMatcher struct {
	cfg       Config
	observers []Observer
}

// NewFrameMatcher returns a FrameMatcher using cfg.  Observers are notified
// of appeared/left events once each frame is reconciled.
func NewFrameMatcher(cfg Config, observers ...Observer) *FrameMatcher {

	m := &FrameMatcher{
		cfg: cfg,
	}

	for _, o := range observers {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}

	return m
}

// Config returns the matcher settings
func (m *FrameMatcher) Config() Config {
	return m.cfg
}

// Reconcile matches detections against the identities in store, creating new
// identities for unmatched detections and expiring identities absent for
// longer than the absence window.  An error is only returned if the store
// rejects an update, which indicates a bug.
func (m *FrameMatcher) Reconcile(store *Store, detections []Rect,
	now time.Time) (Result, error) {

	var res Result

	// candidates are the identities as they were at the start of the frame,
	// identities created during this frame are never candidates
	candidates := store.Snapshot()
	matched := make(map[ID]struct{}, len(detections))

	for _, det := range detections {

		id, ok := m.closest(det, candidates, matched)

		if ok {
			if err := store.Touch(id, det, now); err != nil {
				return res, fmt.Errorf("error reconciling detection: %w", err)
			}

		} else {
			ident := store.Create(det, now)
			id = ident.ID
			res.Created = append(res.Created, ident)
		}

		if _, seen := matched[id]; !seen {
			matched[id] = struct{}{}
			res.Matched = append(res.Matched, id)
		}
	}

	res.Expired = store.ExpireOlderThan(now, m.cfg.MaxAbsence, matched)

	m.notify(res, now)

	return res, nil
}

// closest finds the candidate nearest to det whose distance is under the
// max distance threshold.  Candidates are scanned in ID order and only a
// strictly smaller distance replaces the best, so ties go to the oldest
// identity.
func (m *FrameMatcher) closest(det Rect, candidates []Identity,
	matched map[ID]struct{}) (ID, bool) {

	var bestID ID
	found := false
	minDist := m.cfg.MaxDistance

	for _, cand := range candidates {

		if m.cfg.Matching == MatchExclusive {
			if _, claimed := matched[cand.ID]; claimed {
				continue
			}
		}

		dist := det.Distance(cand.Position)

		if dist < minDist {
			minDist = dist
			bestID = cand.ID
			found = true
		}
	}

	return bestID, found
}

// notify sends appeared and left events to all observers
func (m *FrameMatcher) notify(res Result, now time.Time) {

	if len(m.observers) == 0 {
		return
	}

	for _, ident := range res.Created {
		m.emit(Event{Kind: Appeared, Identity: ident, At: now})
	}

	for _, ident := range res.Expired {
		m.emit(Event{Kind: Left, Identity: ident, At: now})
	}
}

func (m *FrameMatcher) emit(ev Event) {
	for _, o := range m.observers {
		o.Notify(ev)
	}
}
