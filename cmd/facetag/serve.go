package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	facetag "github.com/facetag/go-facetag"
	"github.com/facetag/go-facetag/detect"
	"github.com/facetag/go-facetag/internal/config"
	"github.com/facetag/go-facetag/internal/log"
	"github.com/facetag/go-facetag/internal/timeutil"
	"github.com/facetag/go-facetag/tracker"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gocv.io/x/gocv"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Stream a labelled video to browsers over HTTP",
	Long: `Buffer a video file into memory and stream it as MJPEG at the camera FPS.
Every browser connection gets its own tracker so labels are independent per
viewer, while face detection runs on a shared pool of cascade classifiers.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("video", "", "Video file to stream (overrides config)")
	serveCmd.Flags().String("addr", "", "HTTP address to listen on, format address:port")
}

// streamServer holds the state shared by all stream clients
type streamServer struct {
	cfg      *config.Config
	log      *logrus.Logger
	labeler  tracker.Labeler
	detector detect.Detector
	// vidBuffer buffers the video frames into memory
	vidBuffer []gocv.Mat
	interval  time.Duration
}

func runServe(cmd *cobra.Command, args []string) error {

	cfg, err := loadConfig()

	if err != nil {
		return err
	}

	if video, _ := cmd.Flags().GetString("video"); video != "" {
		cfg.Camera.File = video
	}

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.HTTP.Addr = addr
	}

	if cfg.Camera.File == "" {
		return fmt.Errorf("serve needs a video file, use --video or camera.file")
	}

	logger, err := newLogger(cfg)

	if err != nil {
		return err
	}

	labeler, err := newLabeler(cfg)

	if err != nil {
		return err
	}

	det, closeDet, err := newDetector(cfg, cfg.Detector.PoolSize)

	if err != nil {
		return err
	}

	defer closeDet()

	srv := &streamServer{
		cfg:      cfg,
		log:      logger,
		labeler:  labeler,
		detector: det,
		interval: time.Duration(float64(time.Second) / float64(cfg.Camera.FPS)),
	}

	if err := srv.bufferVideo(cfg.Camera.File); err != nil {
		return fmt.Errorf("error buffering video: %w", err)
	}

	defer srv.close()

	mux := http.NewServeMux()
	mux.HandleFunc("/stream", srv.Stream)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Open browser and view video at http://%s/stream", cfg.HTTP.Addr)

	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// bufferVideo reads in the video frames and saves them to a buffer
func (s *streamServer) bufferVideo(vidFile string) error {

	video, err := gocv.VideoCaptureFile(vidFile)

	if err != nil {
		return err
	}

	defer video.Close()

	for {
		img := gocv.NewMat()

		// read the next frame from the video
		if ok := video.Read(&img); !ok {
			img.Close()
			break
		}

		if img.Empty() {
			img.Close()
			continue
		}

		s.vidBuffer = append(s.vidBuffer, img)
	}

	if len(s.vidBuffer) == 0 {
		return fmt.Errorf("no frames in %s", vidFile)
	}

	s.log.Infof("Buffered %d frames from %s", len(s.vidBuffer), vidFile)

	return nil
}

func (s *streamServer) close() {
	for _, img := range s.vidBuffer {
		img.Close()
	}
}

// Stream is the HTTP handler function used to stream video frames to browser
func (s *streamServer) Stream(w http.ResponseWriter, r *http.Request) {

	entry := log.WithSession(s.log).WithField("remote", r.RemoteAddr)
	entry.Info("New client connection established")

	// a tracker per stream as it keeps the identities seen by this viewer
	trk, err := newTracker(s.cfg, s.labeler, entry)

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	opts, closeOpts, err := newOptions(s.cfg)

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	defer closeOpts()

	session := facetag.NewSession(trk, s.detector, timeutil.RealClock{}, entry, opts)

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")

	img := gocv.NewMat()
	defer img.Close()

	// pointer to position in video buffer
	frameNum := -1

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			entry.Info("Client disconnected")
			return

		case <-ticker.C:
			frameNum++

			if frameNum > len(s.vidBuffer)-1 {
				// last frame reached so loop back to start of video and
				// forget everyone seen
				frameNum = 0
				trk.Reset()
			}

			s.vidBuffer[frameNum].CopyTo(&img)

			if _, _, err := session.ProcessFrame(&img); err != nil {
				if !errors.Is(err, facetag.ErrDetect) {
					entry.WithError(err).Error("Error processing frame")
					return
				}
				entry.WithError(err).Warn("Skipping frame")
			}

			if err := writeJPEG(w, img); err != nil {
				entry.WithError(err).Warn("Error writing frame")
				return
			}
		}
	}
}

// writeJPEG encodes img and writes it as one multipart frame
func writeJPEG(w http.ResponseWriter, img gocv.Mat) error {

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, img)

	if err != nil {
		return err
	}

	defer buf.Close()

	if _, err := w.Write([]byte("--frame\r\nContent-Type: image/jpeg\r\n\r\n")); err != nil {
		return err
	}

	if _, err := w.Write(buf.GetBytes()); err != nil {
		return err
	}

	if _, err := w.Write([]byte("\r\n")); err != nil {
		return err
	}

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	return nil
}
