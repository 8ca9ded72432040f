package render

import (
	"image"
	"image/color"

	"github.com/facetag/go-facetag/tracker"
	"gocv.io/x/gocv"
)

// BoxStyle defines how identity boxes and their labels are laid out
type BoxStyle struct {
	// Color of the box outline
	Color color.RGBA
	// Thickness of the box outline
	Thickness int
	// Gap is the distance from the top of the box to the label baseline
	Gap int
	// BelowGap is the distance from the bottom of the box to the label
	// baseline when the label is moved under the box
	BelowGap int
	// MinBaseline is the smallest baseline y coordinate allowed above the
	// box, any closer to the top edge and the label goes below the box
	MinBaseline int
	// Pad is the padding around the text inside the label background
	Pad int
}

// DefaultBoxStyle returns default box settings
func DefaultBoxStyle() BoxStyle {
	return BoxStyle{
		Color:       Red,
		Thickness:   2,
		Gap:         10,
		BelowGap:    25,
		MinBaseline: 20,
		Pad:         3,
	}
}

// LabelPlacement calculates where a label with the given text size goes for
// box.  The text is centered horizontally on the box and sits above it,
// unless that is too close to the top of the image in which case it goes
// below.
func LabelPlacement(box image.Rectangle, textSize image.Point,
	style BoxStyle) (origin image.Point, background image.Rectangle) {

	x := box.Min.X + (box.Dx()-textSize.X)/2
	y := box.Min.Y - style.Gap

	if y < style.MinBaseline {
		y = box.Max.Y + style.BelowGap
	}

	origin = image.Pt(x, y)
	background = image.Rect(x-style.Pad, y-textSize.Y-style.Pad,
		x+textSize.X+style.Pad, y+style.Pad)

	return origin, background
}

// IdentityBoxes renders a box around each tracked identity with its label.
// Boxes are drawn first so that labels are the top most layer.
func IdentityBoxes(img *gocv.Mat, idents []tracker.Identity, style BoxStyle,
	text TextDrawer) error {

	// keep a record of all box labels for later rendering
	labels := make([]Label, 0, len(idents))

	for _, ident := range idents {

		rect := ident.Position.Image()
		gocv.Rectangle(img, rect, style.Color, style.Thickness)

		origin, bg := LabelPlacement(rect, text.Measure(ident.Label), style)

		labels = append(labels, Label{
			Text:       ident.Label,
			Origin:     origin,
			Background: bg,
		})
	}

	for _, l := range labels {
		if err := text.DrawLabel(img, l); err != nil {
			return err
		}
	}

	return nil
}
