package detect

import (
	"errors"
	"image"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/facetag/go-facetag/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRectsKeepsOrder(t *testing.T) {
	t.Parallel()

	faces := []image.Rectangle{
		image.Rect(100, 50, 160, 110),
		image.Rect(10, 10, 60, 60),
	}

	rects := ToRects(faces)

	require.Len(t, rects, 2)
	assert.Equal(t, tracker.NewRect(100, 50, 60, 60), rects[0])
	assert.Equal(t, tracker.NewRect(10, 10, 50, 50), rects[1])
	assert.Empty(t, ToRects(nil))
}

func TestNewCascadeMissingFile(t *testing.T) {
	t.Parallel()

	params := DefaultCascadeParams()
	params.File = filepath.Join(t.TempDir(), "missing.xml")

	c, err := NewCascade(params)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrCascadeLoad))

	p, err := NewPool(2, params)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrCascadeLoad)
}

func TestSimulatedFaces(t *testing.T) {
	t.Parallel()

	s := NewSimulated(rand.NewSource(7))

	hits := 0
	for i := 0; i < 1000; i++ {
		faces := s.Faces(640, 480)
		if len(faces) == 0 {
			continue
		}

		hits++
		require.Len(t, faces, 1)
		f := faces[0]
		assert.GreaterOrEqual(t, f.X, 0.0)
		assert.GreaterOrEqual(t, f.Y, 0.0)
		assert.LessOrEqual(t, f.X, 540.0)
		assert.LessOrEqual(t, f.Y, 380.0)
		assert.True(t, f.Width >= 80 && f.Width <= 120)
		assert.True(t, f.Height >= 80 && f.Height <= 120)
	}

	// roughly one frame in five
	assert.InDelta(t, 200, hits, 60)
}

func TestSimulatedTinyFrame(t *testing.T) {
	t.Parallel()

	s := NewSimulated(rand.NewSource(1))
	s.Chance = 1

	assert.Nil(t, s.Faces(50, 50))
	assert.Len(t, s.Faces(200, 200), 1)
}
