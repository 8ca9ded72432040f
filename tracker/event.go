package tracker

import "time"

// EventKind distinguishes the notifications emitted by the FrameMatcher
type EventKind int

const (
	// Appeared is emitted when a new identity is created
	Appeared EventKind = 1
	// Left is emitted when an identity is expired
	Left EventKind = 2
)

// String returns a human readable name of the event kind
func (k EventKind) String() string {
	switch k {
	case Appeared:
		return "appeared"
	case Left:
		return "left"
	}

	return "unknown"
}

// Event is an observational notification about an identity's lifecycle.
// Events never feed back into tracker state.
type Event struct {
	Kind     EventKind
	Identity Identity
	// At is the frame time the event happened on
	At time.Time
}

// Observer receives lifecycle events after a reconciliation has finished
// mutating the store
type Observer interface {
	Notify(ev Event)
}

// ObserverFunc adapts a plain function to the Observer interface
type ObserverFunc func(ev Event)

// Notify calls f(ev)
func (f ObserverFunc) Notify(ev Event) {
	f(ev)
}
