package detect

import (
	"math/rand"
	"sync"

	"github.com/facetag/go-facetag/tracker"
	"gocv.io/x/gocv"
)

// Simulated is a stand in detector for demos and testing without a face
// cascade.  On each frame it reports, with probability Chance, a single face
// 80-120px in size at a random position inside the frame.
type Simulated struct {
	// Chance is the probability of a face being reported on a frame
	Chance float64
	rnd    *rand.Rand
	mu     sync.Mutex
}

// NewSimulated returns a Simulated detector with a 20% detection chance
func NewSimulated(src rand.Source) *Simulated {

	if src == nil {
		src = rand.NewSource(rand.Int63())
	}

	return &Simulated{
		Chance: 0.2,
		rnd:    rand.New(src),
	}
}

// Detect implements Detector
func (s *Simulated) Detect(img gocv.Mat) ([]tracker.Rect, error) {
	return s.Faces(img.Cols(), img.Rows()), nil
}

// Faces returns the simulated faces for a frame of the given size
func (s *Simulated) Faces(width, height int) []tracker.Rect {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width < 100 || height < 100 {
		return nil
	}

	if s.rnd.Float64() >= s.Chance {
		return nil
	}

	return []tracker.Rect{
		tracker.NewRect(
			s.rnd.Float64()*float64(width-100),
			s.rnd.Float64()*float64(height-100),
			80+s.rnd.Float64()*40,
			80+s.rnd.Float64()*40,
		),
	}
}
