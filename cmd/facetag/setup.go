package main

import (
	"fmt"
	"image"
	"math/rand"

	facetag "github.com/facetag/go-facetag"
	"github.com/facetag/go-facetag/detect"
	"github.com/facetag/go-facetag/internal/config"
	"github.com/facetag/go-facetag/internal/log"
	"github.com/facetag/go-facetag/render"
	"github.com/facetag/go-facetag/tracker"
	"github.com/sirupsen/logrus"
)

// loadConfig loads the configuration file and applies command line overrides
func loadConfig() (*config.Config, error) {

	cfg, err := config.Load(cfgFile)

	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	return cfg, nil
}

// newLogger creates the process logger from the log config section
func newLogger(cfg *config.Config) (*logrus.Logger, error) {
	return log.New(log.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
}

// catalog resolves the label catalog, a label file wins over an inline list
// and the built in catalog is used when neither is given
func catalog(cfg *config.Config) ([]string, error) {

	switch {
	case cfg.Labels.File != "":
		return facetag.LoadLabels(cfg.Labels.File)
	case len(cfg.Labels.Catalog) > 0:
		return cfg.Labels.Catalog, nil
	}

	return tracker.DefaultCatalog, nil
}

// newLabeler creates the random label policy
func newLabeler(cfg *config.Config) (*tracker.RandomLabeler, error) {

	labels, err := catalog(cfg)

	if err != nil {
		return nil, err
	}

	var src rand.Source

	if cfg.Labels.Seed != 0 {
		src = rand.NewSource(cfg.Labels.Seed)
	}

	return tracker.NewRandomLabeler(labels, src)
}

// newTracker creates a tracker for one video stream whose appeared/left
// events are written to entry
func newTracker(cfg *config.Config, labeler tracker.Labeler,
	entry logrus.FieldLogger) (*tracker.Tracker, error) {

	matcherCfg, err := cfg.Tracker.Matcher()

	if err != nil {
		return nil, err
	}

	return tracker.NewTracker(matcherCfg, labeler, cfg.Tracker.TrailLength,
		log.NewEventObserver(entry))
}

// cascadeParams converts the detector config section
func cascadeParams(cfg *config.Config) detect.CascadeParams {
	return detect.CascadeParams{
		File:         cfg.Detector.Cascade,
		ScaleFactor:  cfg.Detector.ScaleFactor,
		MinNeighbors: cfg.Detector.MinNeighbors,
		MinSize:      image.Pt(cfg.Detector.MinSize, cfg.Detector.MinSize),
	}
}

// newDetector creates the configured detector with the given number of
// cascade classifiers.  The returned close function frees it.
func newDetector(cfg *config.Config, size int) (detect.Detector, func(), error) {

	if cfg.Detector.Kind == "simulated" {
		var src rand.Source
		if cfg.Labels.Seed != 0 {
			src = rand.NewSource(cfg.Labels.Seed)
		}
		return detect.NewSimulated(src), func() {}, nil
	}

	pool, err := detect.NewPool(size, cascadeParams(cfg))

	if err != nil {
		return nil, nil, err
	}

	return pool, pool.Close, nil
}

// newOptions creates the session annotation options.  A TrueType font is
// loaded when one is configured, its close function must be called when the
// session is done.
func newOptions(cfg *config.Config) (facetag.Options, func(), error) {

	opts := facetag.DefaultOptions()
	opts.Mirror = cfg.Camera.Mirror
	opts.Trail = cfg.Render.Trail
	opts.Status = cfg.Render.Status

	if cfg.Render.FontFile == "" {
		return opts, func() {}, nil
	}

	font := render.DefaultFont()
	ttf, err := render.NewTrueTypeText(cfg.Render.FontFile, cfg.Render.FontSize,
		font.Color, font.Background)

	if err != nil {
		return opts, nil, fmt.Errorf("error loading label font: %w", err)
	}

	opts.Text = ttf

	return opts, func() { _ = ttf.Close() }, nil
}
