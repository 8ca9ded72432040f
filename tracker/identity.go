package tracker

import "time"

// Identity represents one physical face tracked across consecutive frames
type Identity struct {
	// ID is the unique token of this identity, never reused
	ID ID
	// Label is chosen once at creation and never changes
	Label string
	// FirstSeen is the time the identity was created
	FirstSeen time.Time
	// LastSeen is the time of the most recent frame the identity was
	// matched to a detection
	LastSeen time.Time
	// Position is the rectangle from the most recent match
	Position Rect
}

// Absent returns how long the identity has gone unmatched at now
func (i Identity) Absent(now time.Time) time.Duration {
	return now.Sub(i.LastSeen)
}

// Dwell returns how long the identity has been tracked up to its last match
func (i Identity) Dwell() time.Duration {
	return i.LastSeen.Sub(i.FirstSeen)
}
