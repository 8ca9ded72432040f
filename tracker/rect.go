package tracker

import (
	"image"

	"gonum.org/v1/gonum/floats"
)

// Rect represents an axis aligned bounding box in pixel coordinates with
// (x, y) being the top left corner
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect creates a new Rect with given coordinates
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// RectFromImage converts an image.Rectangle as returned by gocv detectors
// into a Rect
func RectFromImage(r image.Rectangle) Rect {
	return NewRect(float64(r.Min.X), float64(r.Min.Y),
		float64(r.Dx()), float64(r.Dy()))
}

// Image converts the rectangle back to an image.Rectangle for drawing
func (r Rect) Image() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.BRX()), int(r.BRY()))
}

// BRX returns the bottom-right x coordinate of the rectangle
func (r Rect) BRX() float64 {
	return r.X + r.Width
}

// BRY returns the bottom-right y coordinate of the rectangle
func (r Rect) BRY() float64 {
	return r.Y + r.Height
}

// Center returns the geometric center point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Distance returns the Euclidean distance in pixels between the center of
// this rectangle and the center of other.  Rectangle size plays no part.
func (r Rect) Distance(other Rect) float64 {
	ax, ay := r.Center()
	bx, by := other.Center()

	return floats.Distance([]float64{ax, ay}, []float64{bx, by}, 2)
}
