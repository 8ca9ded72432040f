package tracker

import (
	"fmt"
	"strings"
	"time"
)

// MatchMode selects how identities already claimed earlier in the same frame
// are treated by later detections
type MatchMode int

const (
	// MatchLegacy matches every detection against the identities as they
	// were at the start of the frame.  Two detections may claim the same
	// identity, in which case the later one overwrites the earlier update.
	MatchLegacy MatchMode = 0
	// MatchExclusive removes an identity from consideration once a detection
	// has claimed it in the current frame
	MatchExclusive MatchMode = 1
)

// String returns the config name of the match mode
func (m MatchMode) String() string {
	switch m {
	case MatchLegacy:
		return "legacy"
	case MatchExclusive:
		return "exclusive"
	}

	return fmt.Sprintf("MatchMode(%d)", int(m))
}

// ParseMatchMode converts a config string into a MatchMode.  An empty string
// selects MatchLegacy.
func ParseMatchMode(s string) (MatchMode, error) {

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return MatchLegacy, nil
	case "exclusive":
		return MatchExclusive, nil
	}

	return MatchLegacy, fmt.Errorf("unknown match mode %q, use 'legacy' or 'exclusive'", s)
}

const (
	// DefaultMaxDistance is the default center distance in pixels under
	// which a detection is matched to an identity
	DefaultMaxDistance = 100.0
	// DefaultMaxAbsence is the default time an identity may go unmatched
	// before it is expired
	DefaultMaxAbsence = 2 * time.Second
)

// Config holds the tunables of the FrameMatcher
type Config struct {
	// MaxDistance is the exclusive upper bound of the center distance for a
	// detection to match an existing identity
	MaxDistance float64
	// MaxAbsence is the absence window measured in wall clock time
	MaxAbsence time.Duration
	// Matching selects the same-frame exclusion behaviour
	Matching MatchMode
}

// DefaultConfig returns default matcher settings
func DefaultConfig() Config {
	return Config{
		MaxDistance: DefaultMaxDistance,
		MaxAbsence:  DefaultMaxAbsence,
		Matching:    MatchLegacy,
	}
}

// Validate checks the config values are usable
func (c Config) Validate() error {

	if c.MaxDistance <= 0 {
		return fmt.Errorf("max distance must be positive, got %v", c.MaxDistance)
	}

	if c.MaxAbsence <= 0 {
		return fmt.Errorf("max absence must be positive, got %v", c.MaxAbsence)
	}

	if c.Matching != MatchLegacy && c.Matching != MatchExclusive {
		return fmt.Errorf("unknown match mode %v", c.Matching)
	}

	return nil
}
