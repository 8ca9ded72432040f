package facetag

import (
	"context"
	"errors"
	"fmt"

	"github.com/facetag/go-facetag/detect"
	"github.com/facetag/go-facetag/internal/timeutil"
	"github.com/facetag/go-facetag/render"
	"github.com/facetag/go-facetag/tracker"
	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

var (
	// ErrSourceClosed is returned by Run when the frame source stops
	// producing frames
	ErrSourceClosed = errors.New("frame source closed")
	// ErrDetect wraps errors returned by the detector for a single frame
	ErrDetect = errors.New("face detection failed")
)

// FrameSource produces video frames, it is satisfied by *gocv.VideoCapture
type FrameSource interface {
	Read(m *gocv.Mat) bool
}

// Display shows annotated frames and reports key presses, it is satisfied
// by *gocv.Window
type Display interface {
	IMShow(img gocv.Mat)
	WaitKey(delay int) int
}

// Options controls how a Session annotates frames
type Options struct {
	// Mirror flips each frame horizontally before detection
	Mirror bool
	// Trail draws the movement history of each face
	Trail bool
	// Status draws the banner with face count and timings
	Status bool
	// QuitKey is the key that stops Run, 0 disables it
	QuitKey int
	// Text draws the labels, defaults to Hershey text
	Text       render.TextDrawer
	Box        render.BoxStyle
	TrailStyle render.TrailStyle
	StatusFont render.Font
}

// DefaultOptions returns the default annotation settings
func DefaultOptions() Options {
	return Options{
		Mirror:     true,
		Status:     true,
		QuitKey:    'q',
		Text:       render.NewHersheyText(render.DefaultFont()),
		Box:        render.DefaultBoxStyle(),
		TrailStyle: render.DefaultTrailStyle(),
		StatusFont: render.StatusFont(),
	}
}

// Session processes one video stream.  Frames are handled one at a time:
// capture, detect, reconcile, render, display.
type Session struct {
	tracker  *tracker.Tracker
	detector detect.Detector
	clock    timeutil.Clock
	log      logrus.FieldLogger
	opts     Options
	fps      fpsCounter
}

// NewSession creates a Session tracking faces found by det in trk
func NewSession(trk *tracker.Tracker, det detect.Detector, clock timeutil.Clock,
	log logrus.FieldLogger, opts Options) *Session {

	if clock == nil {
		clock = timeutil.RealClock{}
	}

	if opts.Text == nil {
		opts.Text = render.NewHersheyText(render.DefaultFont())
	}

	return &Session{
		tracker:  trk,
		detector: det,
		clock:    clock,
		log:      log,
		opts:     opts,
	}
}

// Tracker returns the session's tracker
func (s *Session) Tracker() *tracker.Tracker {
	return s.tracker
}

// ProcessFrame detects and tracks faces in img and annotates it in place.
// When detection fails the frame is left unannotated, the tracker is not
// updated and an error wrapping ErrDetect is returned.
func (s *Session) ProcessFrame(img *gocv.Mat) (tracker.Result, Timing, error) {

	timing := Timing{
		ProcessStart: s.clock.Now(),
	}

	if s.opts.Mirror {
		gocv.Flip(*img, img, 1)
	}

	timing.DetectStart = s.clock.Now()
	faces, err := s.detector.Detect(*img)
	timing.DetectEnd = s.clock.Now()

	if err != nil {
		return tracker.Result{}, timing, fmt.Errorf("%w: %w", ErrDetect, err)
	}

	timing.TrackerStart = s.clock.Now()
	res, err := s.tracker.Update(faces, timing.TrackerStart)
	timing.TrackerEnd = s.clock.Now()

	if err != nil {
		return res, timing, err
	}

	timing.RenderingStart = s.clock.Now()

	snapshot := s.tracker.Snapshot()

	if s.opts.Trail {
		render.Trail(img, snapshot, s.tracker.Trail(), s.opts.TrailStyle)
	}

	if err := render.IdentityBoxes(img, snapshot, s.opts.Box, s.opts.Text); err != nil {
		return res, timing, fmt.Errorf("error rendering labels: %w", err)
	}

	timing.ProcessEnd = s.clock.Now()

	if s.opts.Status {
		fps := s.fps.tick(timing.ProcessEnd)
		render.Status(img, render.StatusText(timing.Stats(len(snapshot), fps)),
			s.opts.StatusFont)
	}

	return res, timing, nil
}

// Run reads frames from src until ctx is cancelled, the quit key is pressed
// on disp or src stops producing frames, in which case ErrSourceClosed is
// returned.  disp may be nil for headless operation.
func (s *Session) Run(ctx context.Context, src FrameSource, disp Display) error {

	img := gocv.NewMat()
	defer img.Close()

	s.log.Info("Face tracker started")
	defer s.log.Info("Face tracker stopped")

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Tracking interrupted")
			return nil
		default:
		}

		if ok := src.Read(&img); !ok {
			return ErrSourceClosed
		}

		if img.Empty() {
			continue
		}

		_, _, err := s.ProcessFrame(&img)

		if err != nil {
			if !errors.Is(err, ErrDetect) {
				return err
			}

			s.log.WithError(err).Warn("Skipping frame")
		}

		if disp == nil {
			continue
		}

		disp.IMShow(img)

		if key := disp.WaitKey(1); s.opts.QuitKey != 0 && key&0xFF == s.opts.QuitKey {
			return nil
		}
	}
}
