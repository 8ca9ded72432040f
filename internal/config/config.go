package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/facetag/go-facetag/tracker"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when the configuration fails validation
var ErrInvalid = errors.New("invalid configuration")

// Config is the configuration record for a facetag process
type Config struct {
	Tracker  TrackerConfig  `yaml:"tracker"`
	Labels   LabelsConfig   `yaml:"labels"`
	Camera   CameraConfig   `yaml:"camera"`
	Detector DetectorConfig `yaml:"detector"`
	Render   RenderConfig   `yaml:"render"`
	Log      LogConfig      `yaml:"log"`
	HTTP     HTTPConfig     `yaml:"http"`
}

type TrackerConfig struct {
	MaxDistance float64       `yaml:"max_distance"`
	MaxAbsence  time.Duration `yaml:"max_absence"`
	Matching    string        `yaml:"matching"` // legacy or exclusive
	TrailLength int           `yaml:"trail_length"`
}

// LabelsConfig selects the label catalog.  File takes precedence over
// Catalog, and the built in catalog is used when both are empty.
type LabelsConfig struct {
	Catalog []string `yaml:"catalog"`
	File    string   `yaml:"file"`
	Seed    int64    `yaml:"seed"` // 0 picks a random seed
}

type CameraConfig struct {
	Device int    `yaml:"device"`
	File   string `yaml:"file"` // video file used instead of the device when set
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Mirror bool   `yaml:"mirror"`
}

type DetectorConfig struct {
	Kind         string  `yaml:"kind"` // cascade or simulated
	Cascade      string  `yaml:"cascade"`
	ScaleFactor  float64 `yaml:"scale_factor"`
	MinNeighbors int     `yaml:"min_neighbors"`
	MinSize      int     `yaml:"min_size"`
	PoolSize     int     `yaml:"pool_size"`
}

type RenderConfig struct {
	FontFile string  `yaml:"font_file"` // TrueType font for non ASCII labels
	FontSize float64 `yaml:"font_size"`
	Trail    bool    `yaml:"trail"`
	Status   bool    `yaml:"status"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Tracker: TrackerConfig{
			MaxDistance: tracker.DefaultMaxDistance,
			MaxAbsence:  tracker.DefaultMaxAbsence,
			Matching:    tracker.MatchLegacy.String(),
			TrailLength: 30,
		},
		Camera: CameraConfig{
			Device: 0,
			Width:  640,
			Height: 480,
			FPS:    30,
			Mirror: true,
		},
		Detector: DetectorConfig{
			Kind:         "cascade",
			Cascade:      "haarcascade_frontalface_default.xml",
			ScaleFactor:  1.1,
			MinNeighbors: 5,
			MinSize:      30,
			PoolSize:     2,
		},
		Render: RenderConfig{
			FontSize: 18,
			Status:   true,
		},
		Log: LogConfig{
			Level: "info",
		},
		HTTP: HTTPConfig{
			Addr: "localhost:8080",
		},
	}
}

// Load reads the YAML file at path (optional, may be empty) over the
// defaults, applies FACETAG_* environment overrides and validates the result
func Load(path string) (*Config, error) {

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)

		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// lookupFunc matches the signature of os.LookupEnv
type lookupFunc func(key string) (string, bool)

// applyEnv overrides config values from environment variables
func (c *Config) applyEnv(lookup lookupFunc) error {

	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}

	if v, ok := lookup("FACETAG_MAX_DISTANCE"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("FACETAG_MAX_DISTANCE: %w", err))
		} else {
			c.Tracker.MaxDistance = f
		}
	}

	if v, ok := lookup("FACETAG_MAX_ABSENCE"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("FACETAG_MAX_ABSENCE: %w", err))
		} else {
			c.Tracker.MaxAbsence = d
		}
	}

	if v, ok := lookup("FACETAG_MIRROR"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("FACETAG_MIRROR: %w", err))
		} else {
			c.Camera.Mirror = b
		}
	}

	str("FACETAG_MATCHING", &c.Tracker.Matching)
	str("FACETAG_LABELS_FILE", &c.Labels.File)
	str("FACETAG_VIDEO_FILE", &c.Camera.File)
	str("FACETAG_DETECTOR", &c.Detector.Kind)
	str("FACETAG_CASCADE", &c.Detector.Cascade)
	str("FACETAG_FONT_FILE", &c.Render.FontFile)
	str("FACETAG_LOG_LEVEL", &c.Log.Level)
	str("FACETAG_LOG_FILE", &c.Log.File)
	str("FACETAG_HTTP_ADDR", &c.HTTP.Addr)
	num("FACETAG_CAMERA_DEVICE", &c.Camera.Device)
	num("FACETAG_POOL_SIZE", &c.Detector.PoolSize)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}

// Validate reports every problem found in the configuration
func (c *Config) Validate() error {

	var errs []error

	if _, err := c.Tracker.Matcher(); err != nil {
		errs = append(errs, err)
	}

	if c.Tracker.TrailLength < 0 {
		errs = append(errs, fmt.Errorf("tracker.trail_length must not be negative"))
	}

	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		errs = append(errs, fmt.Errorf("camera size must be positive, got %dx%d",
			c.Camera.Width, c.Camera.Height))
	}

	if c.Camera.FPS <= 0 {
		errs = append(errs, fmt.Errorf("camera.fps must be positive"))
	}

	switch c.Detector.Kind {
	case "cascade":
		if c.Detector.Cascade == "" {
			errs = append(errs, fmt.Errorf("detector.cascade file is required"))
		}
		if c.Detector.ScaleFactor <= 1 {
			errs = append(errs, fmt.Errorf("detector.scale_factor must be greater than 1"))
		}
	case "simulated":
	default:
		errs = append(errs, fmt.Errorf("unknown detector kind %q, use 'cascade' or 'simulated'",
			c.Detector.Kind))
	}

	if c.Detector.PoolSize <= 0 {
		errs = append(errs, fmt.Errorf("detector.pool_size must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}

// Matcher converts the tracker section into the tracker package's config
func (t TrackerConfig) Matcher() (tracker.Config, error) {

	mode, err := tracker.ParseMatchMode(t.Matching)

	if err != nil {
		return tracker.Config{}, err
	}

	cfg := tracker.Config{
		MaxDistance: t.MaxDistance,
		MaxAbsence:  t.MaxAbsence,
		Matching:    mode,
	}

	return cfg, cfg.Validate()
}
