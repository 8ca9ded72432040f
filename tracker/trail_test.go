package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrailHistoryLimit(t *testing.T) {
	t.Parallel()

	trail := NewTrail(2)
	ident := Identity{ID: 7, Position: NewRect(0, 0, 10, 10)}

	trail.Add(ident)
	ident.Position = NewRect(10, 0, 10, 10)
	trail.Add(ident)
	ident.Position = NewRect(20, 0, 10, 10)
	trail.Add(ident)

	assert.Equal(t, []Point{{15, 5}, {25, 5}}, trail.GetPoints(7))
	assert.Nil(t, trail.GetPoints(8))

	trail.Remove(7)
	assert.Nil(t, trail.GetPoints(7))
}

func TestTrailDisabled(t *testing.T) {
	t.Parallel()

	trail := NewTrail(0)
	trail.Add(Identity{ID: 1, Position: NewRect(0, 0, 10, 10)})
	assert.Nil(t, trail.GetPoints(1))
}

func TestTrailReset(t *testing.T) {
	t.Parallel()

	trail := NewTrail(5)
	trail.Add(Identity{ID: 1, Position: NewRect(0, 0, 10, 10)})
	trail.Reset()
	assert.Nil(t, trail.GetPoints(1))
}
