package tracker

import "sync"

// Point represents the x,y coordinates of the center of an identity's
// bounding box
type Point struct {
	X, Y int
}

// Track represents a track history
type Track struct {
	points []Point
}

// Trail keeps a history of identity center points used for drawing a trail
type Trail struct {
	// size is the maximum number of most recent points to keep in history
	size int
	// history of tracked points
	history map[ID]*Track
	sync.Mutex
}

// NewTrail returns a new trail history instance.  Size is the maximum length
// of the trail kept for each identity.
func NewTrail(size int) *Trail {
	return &Trail{
		size:    size,
		history: make(map[ID]*Track),
	}
}

// Reset clears all history
func (t *Trail) Reset() {
	t.Lock()
	defer t.Unlock()

	t.history = make(map[ID]*Track)
}

// Add appends the identity's current center point to its history
func (t *Trail) Add(ident Identity) {
	t.Lock()
	defer t.Unlock()

	if t.size <= 0 {
		return
	}

	track, exists := t.history[ident.ID]

	if !exists {
		track = &Track{}
		t.history[ident.ID] = track
	}

	x, y := ident.Position.Center()

	track.points = append(track.points, Point{
		X: int(x),
		Y: int(y),
	})

	// drop oldest point once history is exceeded
	if len(track.points) > t.size {
		track.points = track.points[1:]
	}
}

// Remove drops the history of an identity
func (t *Trail) Remove(id ID) {
	t.Lock()
	defer t.Unlock()

	delete(t.history, id)
}

// GetPoints gets a copy of the point history for a specific identity
func (t *Trail) GetPoints(id ID) []Point {
	t.Lock()
	defer t.Unlock()

	track, exists := t.history[id]

	if !exists {
		return nil
	}

	points := make([]Point, len(track.points))
	copy(points, track.points)

	return points
}
