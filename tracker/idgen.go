package tracker

import (
	"fmt"
	"sync"
)

// ID is the unique token assigned to an Identity
type ID int64

// String renders the ID in the face_<n> form used in logs
func (id ID) String() string {
	return fmt.Sprintf("face_%d", int64(id))
}

// IDGenerator is a struct to hold a counter for generating the next
// incremental ID number
type IDGenerator struct {
	id int64
	sync.Mutex
}

// NewIDGenerator returns a generator whose first ID is 1
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// GetNext returns the next incremental ID.  IDs are never reused.
func (g *IDGenerator) GetNext() ID {
	g.Lock()
	defer g.Unlock()
	g.id++
	return ID(g.id)
}
