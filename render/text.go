package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Label is a piece of text placed on the image with a filled background
type Label struct {
	Text string
	// Origin is the left end of the text baseline
	Origin image.Point
	// Background is the filled box behind the text
	Background image.Rectangle
}

// TextDrawer measures and draws label text
type TextDrawer interface {
	// Measure returns the text width and its height above the baseline
	Measure(text string) image.Point
	// DrawLabel draws the label background and text on img
	DrawLabel(img *gocv.Mat, l Label) error
}

// HersheyText draws text with GoCV's Hershey fonts, which only cover ASCII
type HersheyText struct {
	Font Font
}

// NewHersheyText returns a HersheyText drawer using font f
func NewHersheyText(f Font) *HersheyText {
	return &HersheyText{Font: f}
}

// Measure implements TextDrawer
func (h *HersheyText) Measure(text string) image.Point {
	return gocv.GetTextSize(text, h.Font.Face, h.Font.Scale, h.Font.Thickness)
}

// DrawLabel implements TextDrawer
func (h *HersheyText) DrawLabel(img *gocv.Mat, l Label) error {

	gocv.Rectangle(img, l.Background, h.Font.Background, -1)

	gocv.PutTextWithParams(img, l.Text, l.Origin,
		h.Font.Face, h.Font.Scale, h.Font.Color, h.Font.Thickness,
		h.Font.LineType, false)

	return nil
}

// TrueTypeText draws text with a TrueType/OpenType font so labels containing
// non ASCII characters (eg: "güzel", "şaşkın") render correctly
type TrueTypeText struct {
	face       font.Face
	color      color.RGBA
	background color.RGBA
}

// NewTrueTypeText loads the font file and creates a face of the given point
// size
func NewTrueTypeText(fontPath string, size float64, fg, bg color.RGBA) (*TrueTypeText, error) {

	fontBytes, err := os.ReadFile(fontPath)

	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	f, err := opentype.Parse(fontBytes)

	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create type face: %w", err)
	}

	return &TrueTypeText{
		face:       face,
		color:      fg,
		background: bg,
	}, nil
}

// Measure implements TextDrawer
func (t *TrueTypeText) Measure(text string) image.Point {
	return image.Pt(
		font.MeasureString(t.face, text).Ceil(),
		t.face.Metrics().Ascent.Ceil(),
	)
}

// DrawLabel implements TextDrawer.  The label is rasterised into a patch the
// size of its background which is then copied over the image region.
func (t *TrueTypeText) DrawLabel(img *gocv.Mat, l Label) error {

	bounds := l.Background.Intersect(image.Rect(0, 0, img.Cols(), img.Rows()))

	if bounds.Empty() {
		return nil
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(t.background), image.Point{}, draw.Src)

	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(t.color),
		Face: t.face,
		Dot: fixed.Point26_6{
			X: fixed.I(l.Origin.X - bounds.Min.X),
			Y: fixed.I(l.Origin.Y - bounds.Min.Y),
		},
	}
	dr.DrawString(l.Text)

	patch, err := gocv.NewMatFromBytes(bounds.Dy(), bounds.Dx(), gocv.MatTypeCV8UC4, rgba.Pix)

	if err != nil {
		return fmt.Errorf("error creating Mat from RGBA: %w", err)
	}

	defer patch.Close()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(patch, &bgr, gocv.ColorRGBAToBGR)

	region := img.Region(bounds)
	defer region.Close()
	bgr.CopyTo(&region)

	return nil
}

// Close releases the font face
func (t *TrueTypeText) Close() error {
	return t.face.Close()
}
