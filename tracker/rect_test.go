package tracker

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectCenter(t *testing.T) {
	t.Parallel()

	x, y := NewRect(10, 10, 50, 50).Center()
	assert.Equal(t, 35.0, x)
	assert.Equal(t, 35.0, y)

	// odd sizes keep the half pixel
	x, y = NewRect(0, 0, 5, 3).Center()
	assert.Equal(t, 2.5, x)
	assert.Equal(t, 1.5, y)
}

func TestRectDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Rect
		want float64
	}{
		{"same rect", NewRect(10, 10, 50, 50), NewRect(10, 10, 50, 50), 0},
		{"moved 3-4-5", NewRect(0, 0, 10, 10), NewRect(3, 4, 10, 10), 5},
		{"scenario move", NewRect(10, 10, 50, 50), NewRect(12, 11, 50, 50), 2.23606797749979},
		{"size ignored", NewRect(0, 0, 10, 10), NewRect(-5, -5, 20, 20), 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, tt.a.Distance(tt.b), 1e-9)
			assert.InDelta(t, tt.want, tt.b.Distance(tt.a), 1e-9)
		})
	}
}

func TestRectImageConversion(t *testing.T) {
	t.Parallel()

	ir := image.Rect(10, 20, 60, 100)
	r := RectFromImage(ir)

	assert.Equal(t, NewRect(10, 20, 50, 80), r)
	assert.Equal(t, 60.0, r.BRX())
	assert.Equal(t, 100.0, r.BRY())
	assert.Equal(t, ir, r.Image())
}
