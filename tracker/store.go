package tracker

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrNotFound is returned when an operation references an identity that is
// not in the store.  Within the matcher it indicates a logic bug.
var ErrNotFound = errors.New("identity not found")

// Store owns the mapping of identity ID to Identity for one tracking session.
// It is not safe for concurrent use, wrap it in a Tracker for that.
type Store struct {
	// identities currently alive
	identities map[ID]*Identity
	// ids allocates identity IDs
	ids *IDGenerator
	// labeler picks the label given to new identities
	labeler Labeler
}

// NewStore returns an empty Store that labels new identities with labeler
func NewStore(labeler Labeler) *Store {
	return &Store{
		identities: make(map[ID]*Identity),
		ids:        NewIDGenerator(),
		labeler:    labeler,
	}
}

// Create allocates a new identity at the given position, picks its label and
// inserts it into the store
func (s *Store) Create(pos Rect, now time.Time) Identity {

	ident := &Identity{
		ID:        s.ids.GetNext(),
		Label:     s.labeler.Next(),
		FirstSeen: now,
		LastSeen:  now,
		Position:  pos,
	}

	s.identities[ident.ID] = ident

	return *ident
}

// Touch records that identity id was matched at pos at time now.  The label
// is left untouched and LastSeen never moves backwards.
func (s *Store) Touch(id ID, pos Rect, now time.Time) error {

	ident, ok := s.identities[id]

	if !ok {
		return fmt.Errorf("touch %s: %w", id, ErrNotFound)
	}

	ident.Position = pos

	if now.After(ident.LastSeen) {
		ident.LastSeen = now
	}

	return nil
}

// ExpireOlderThan removes and returns every identity that is not in matched
// and has gone unseen for longer than maxAbsence at now.  The returned
// identities are ordered by ID.
func (s *Store) ExpireOlderThan(now time.Time, maxAbsence time.Duration,
	matched map[ID]struct{}) []Identity {

	// collect first, then delete
	var expired []Identity

	for id, ident := range s.identities {
		if _, ok := matched[id]; ok {
			continue
		}

		if ident.Absent(now) > maxAbsence {
			expired = append(expired, *ident)
		}
	}

	sortByID(expired)

	for _, ident := range expired {
		delete(s.identities, ident.ID)
	}

	return expired
}

// Remove deletes a single identity and returns its final state
func (s *Store) Remove(id ID) (Identity, error) {

	ident, ok := s.identities[id]

	if !ok {
		return Identity{}, fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}

	delete(s.identities, id)

	return *ident, nil
}

// Get returns a copy of the identity with the given id
func (s *Store) Get(id ID) (Identity, bool) {

	ident, ok := s.identities[id]

	if !ok {
		return Identity{}, false
	}

	return *ident, true
}

// Len returns the number of identities alive
func (s *Store) Len() int {
	return len(s.identities)
}

// Reset removes all identities.  The ID counter keeps counting so IDs are
// never handed out twice.
func (s *Store) Reset() {
	s.identities = make(map[ID]*Identity)
}

// Snapshot returns a copy of all identities ordered by ID, which is also the
// order they were created in
func (s *Store) Snapshot() []Identity {

	snap := make([]Identity, 0, len(s.identities))

	for _, ident := range s.identities {
		snap = append(snap, *ident)
	}

	sortByID(snap)

	return snap
}

// sortByID orders identities by ascending ID
func sortByID(idents []Identity) {
	sort.Slice(idents, func(i, j int) bool {
		return idents[i].ID < idents[j].ID
	})
}
