package render

import (
	"gocv.io/x/gocv"
	"image/color"
)

// Font defines the parameters for rendering text on an image using GoCV's
// built in Hershey fonts
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Background is the color of the filled box drawn behind the text
	Background color.RGBA
}

// DefaultFont returns default font settings, red text on black
func DefaultFont() Font {
	return Font{
		Face:       gocv.FontHersheySimplex,
		Scale:      0.6,
		Color:      Red,
		Thickness:  2,
		LineType:   gocv.LineAA,
		Background: Black,
	}
}

// StatusFont returns the font used for the status banner
func StatusFont() Font {
	return Font{
		Face:       gocv.FontHersheySimplex,
		Scale:      0.5,
		Color:      Pink,
		Thickness:  1,
		LineType:   gocv.LineAA,
		Background: Black,
	}
}
