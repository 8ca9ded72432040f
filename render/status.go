package render

import (
	"fmt"
	"image"
	"time"

	"gocv.io/x/gocv"
)

// Stats are the per frame numbers shown in the status banner
type Stats struct {
	Faces     int
	FPS       float64
	Detect    time.Duration
	Track     time.Duration
	Render    time.Duration
	FrameTime time.Duration
}

// StatusText formats stats as a single banner line
func StatusText(s Stats) string {
	return fmt.Sprintf("Tracking %d faces, FPS: %.1f, Detect: %.1fms, Track: %.2fms, Render: %.1fms",
		s.Faces, s.FPS, ms(s.Detect), ms(s.Track), ms(s.Render))
}

// Status blanks out a banner across the top of the image and writes text on it
func Status(img *gocv.Mat, text string, f Font) {

	size := gocv.GetTextSize(text, f.Face, f.Scale, f.Thickness)
	height := size.Y + 10

	gocv.Rectangle(img, image.Rect(0, 0, img.Cols(), height), f.Background, -1)

	gocv.PutTextWithParams(img, text, image.Pt(4, size.Y+4),
		f.Face, f.Scale, f.Color, f.Thickness, f.LineType, false)
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
