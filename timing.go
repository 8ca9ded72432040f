package facetag

import (
	"time"

	"github.com/facetag/go-facetag/render"
)

// Timing is a struct to hold timers used for finding execution time
// for various parts of processing a frame
type Timing struct {
	ProcessStart   time.Time
	DetectStart    time.Time
	DetectEnd      time.Time
	TrackerStart   time.Time
	TrackerEnd     time.Time
	RenderingStart time.Time
	ProcessEnd     time.Time
}

// Stats converts the timers into banner stats
func (t Timing) Stats(faces int, fps float64) render.Stats {
	return render.Stats{
		Faces:     faces,
		FPS:       fps,
		Detect:    t.DetectEnd.Sub(t.DetectStart),
		Track:     t.TrackerEnd.Sub(t.TrackerStart),
		Render:    t.ProcessEnd.Sub(t.RenderingStart),
		FrameTime: t.ProcessEnd.Sub(t.ProcessStart),
	}
}

// fpsCounter calculates frames per second averaged over one second windows
type fpsCounter struct {
	frames int
	start  time.Time
	fps    float64
}

// tick records a frame shown at now and returns the current FPS
func (f *fpsCounter) tick(now time.Time) float64 {

	if f.start.IsZero() {
		f.start = now
	}

	f.frames++
	elapsed := now.Sub(f.start).Seconds()

	if elapsed >= 1.0 {
		f.fps = float64(f.frames) / elapsed
		f.frames = 0
		f.start = now
	}

	return f.fps
}
