package detect

import (
	"errors"
	"fmt"
	"image"

	"github.com/facetag/go-facetag/tracker"
	"gocv.io/x/gocv"
)

// ErrCascadeLoad is returned when the cascade classifier file can not be read
var ErrCascadeLoad = errors.New("error loading cascade classifier")

// cascadeScaleImage is OpenCV's CASCADE_SCALE_IMAGE flag
const cascadeScaleImage = 2

// Detector finds faces in a video frame.  The order of the returned
// rectangles decides which face wins a contested identity in the tracker.
type Detector interface {
	Detect(img gocv.Mat) ([]tracker.Rect, error)
}

// CascadeParams holds the Haar cascade detection settings
type CascadeParams struct {
	// File is the path to the cascade XML, eg: haarcascade_frontalface_default.xml
	File string
	// ScaleFactor is how much the image is reduced at each scale
	ScaleFactor float64
	// MinNeighbors is the number of neighbours a candidate needs to be kept
	MinNeighbors int
	// MinSize is the smallest face size in pixels
	MinSize image.Point
}

// DefaultCascadeParams returns the frontal face detection settings
func DefaultCascadeParams() CascadeParams {
	return CascadeParams{
		File:         "haarcascade_frontalface_default.xml",
		ScaleFactor:  1.1,
		MinNeighbors: 5,
		MinSize:      image.Pt(30, 30),
	}
}

// Cascade is a Haar cascade face detector.  A Cascade is not safe for use by
// multiple goroutines, use a Pool for that.
type Cascade struct {
	classifier gocv.CascadeClassifier
	params     CascadeParams
	gray       gocv.Mat
}

// NewCascade loads the cascade classifier described by params
func NewCascade(params CascadeParams) (*Cascade, error) {

	classifier := gocv.NewCascadeClassifier()

	if !classifier.Load(params.File) {
		classifier.Close()
		return nil, fmt.Errorf("%w: %s", ErrCascadeLoad, params.File)
	}

	return &Cascade{
		classifier: classifier,
		params:     params,
		gray:       gocv.NewMat(),
	}, nil
}

// Detect converts the BGR frame to grayscale and returns the faces found
func (c *Cascade) Detect(img gocv.Mat) ([]tracker.Rect, error) {

	if img.Empty() {
		return nil, nil
	}

	src := img

	if img.Channels() > 1 {
		gocv.CvtColor(img, &c.gray, gocv.ColorBGRToGray)
		src = c.gray
	}

	faces := c.classifier.DetectMultiScaleWithParams(src,
		c.params.ScaleFactor, c.params.MinNeighbors, cascadeScaleImage,
		c.params.MinSize, image.Point{})

	return ToRects(faces), nil
}

// Close frees the classifier and working buffers
func (c *Cascade) Close() error {
	c.gray.Close()
	return c.classifier.Close()
}

// ToRects converts gocv detection rectangles into tracker rectangles keeping
// their order
func ToRects(faces []image.Rectangle) []tracker.Rect {

	rects := make([]tracker.Rect, 0, len(faces))

	for _, f := range faces {
		rects = append(rects, tracker.RectFromImage(f))
	}

	return rects
}
