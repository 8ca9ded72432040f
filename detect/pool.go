package detect

import (
	"sync"

	"github.com/facetag/go-facetag/tracker"
	"gocv.io/x/gocv"
)

// Pool is a simple pool of cascade detectors so several video streams can run
// detection in parallel
type Pool struct {
	// pool of detectors
	detectors chan *Cascade
	// size of pool
	size  int
	close sync.Once
}

// NewPool creates a new pool of size detectors all loaded with params
func NewPool(size int, params CascadeParams) (*Pool, error) {
	p := &Pool{
		detectors: make(chan *Cascade, size),
		size:      size,
	}

	for i := 0; i < size; i++ {
		c, err := NewCascade(params)

		if err != nil {
			// close any instances that may have been created before receiving
			// the error
			p.Close()
			return nil, err
		}

		// attach to pool
		p.Return(c)
	}

	return p, nil
}

// Get a detector from the pool, blocking until one is free
func (p *Pool) Get() *Cascade {
	return <-p.detectors
}

// Return a detector to the pool
func (p *Pool) Return(c *Cascade) {
	select {
	case p.detectors <- c:
	default:
		// pool is full
	}
}

// Size returns the number of detectors in the pool
func (p *Pool) Size() int {
	return p.size
}

// Detect borrows a detector from the pool for one frame
func (p *Pool) Detect(img gocv.Mat) ([]tracker.Rect, error) {
	c := p.Get()
	defer p.Return(c)

	return c.Detect(img)
}

// Close the pool and all detectors in it.  Detectors still borrowed are
// not closed.
func (p *Pool) Close() {
	p.close.Do(func() {
		for {
			select {
			case next := <-p.detectors:
				_ = next.Close()
			default:
				return
			}
		}
	})
}
