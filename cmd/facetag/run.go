package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	facetag "github.com/facetag/go-facetag"
	"github.com/facetag/go-facetag/internal/config"
	"github.com/facetag/go-facetag/internal/log"
	"github.com/facetag/go-facetag/internal/timeutil"
	"github.com/spf13/cobra"
	"gocv.io/x/gocv"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Track faces from a camera in a desktop window",
	Long: `Open the camera (or a video file) and show the stream in a window with a
box and label drawn around every tracked face.  Press 'q' to quit.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("device", -1, "Camera device id (overrides config)")
	runCmd.Flags().String("video", "", "Video file to read instead of a camera")
}

func runRun(cmd *cobra.Command, args []string) error {

	cfg, err := loadConfig()

	if err != nil {
		return err
	}

	if dev, _ := cmd.Flags().GetInt("device"); dev >= 0 {
		cfg.Camera.Device = dev
	}

	if video, _ := cmd.Flags().GetString("video"); video != "" {
		cfg.Camera.File = video
	}

	logger, err := newLogger(cfg)

	if err != nil {
		return err
	}

	entry := log.WithSession(logger)

	labeler, err := newLabeler(cfg)

	if err != nil {
		return err
	}

	trk, err := newTracker(cfg, labeler, entry)

	if err != nil {
		return err
	}

	det, closeDet, err := newDetector(cfg, 1)

	if err != nil {
		return err
	}

	defer closeDet()

	opts, closeOpts, err := newOptions(cfg)

	if err != nil {
		return err
	}

	defer closeOpts()

	capture, err := openCapture(cfg.Camera)

	if err != nil {
		return err
	}

	defer capture.Close()

	window := gocv.NewWindow("facetag")
	defer window.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entry.WithField("matching", cfg.Tracker.Matching).
		WithField("max_distance", cfg.Tracker.MaxDistance).
		WithField("max_absence", cfg.Tracker.MaxAbsence.String()).
		Info("Press 'q' to quit")

	session := facetag.NewSession(trk, det, timeutil.RealClock{}, entry, opts)
	err = session.Run(ctx, capture, window)

	if errors.Is(err, facetag.ErrSourceClosed) {
		entry.Warn("Could not read frame, camera or video ended")
		return nil
	}

	return err
}

// openCapture opens the video file or camera device in cfg and applies the
// capture settings
func openCapture(cfg config.CameraConfig) (*gocv.VideoCapture, error) {

	var source interface{} = cfg.Device

	if cfg.File != "" {
		source = cfg.File
	}

	capture, err := gocv.OpenVideoCapture(source)

	if err != nil {
		return nil, fmt.Errorf("error opening video capture: %w", err)
	}

	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("could not open camera %v", source)
	}

	if cfg.File == "" {
		capture.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
		capture.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
		capture.Set(gocv.VideoCaptureFPS, float64(cfg.FPS))
		capture.Set(gocv.VideoCaptureBufferSize, 1)
	}

	return capture, nil
}
