package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/facetag/go-facetag/detect"
	"github.com/facetag/go-facetag/internal/config"
	"github.com/facetag/go-facetag/tracker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "labels.txt")
	require.NoError(t, os.WriteFile(file, []byte("Mavi\n# comment\n\nYesil\n"), 0o644))

	tests := []struct {
		name   string
		labels config.LabelsConfig
		want   []string
	}{
		{name: "default", want: tracker.DefaultCatalog},
		{name: "inline", labels: config.LabelsConfig{Catalog: []string{"A", "B"}}, want: []string{"A", "B"}},
		{name: "file wins", labels: config.LabelsConfig{File: file, Catalog: []string{"A"}}, want: []string{"Mavi", "Yesil"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Labels = tt.labels

			got, err := catalog(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLabelerSeeded(t *testing.T) {
	cfg := config.Default()
	cfg.Labels.Catalog = []string{"A", "B", "C"}
	cfg.Labels.Seed = 42

	a, err := newLabeler(cfg)
	require.NoError(t, err)
	b, err := newLabeler(cfg)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestNewTrackerUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Tracker.MaxDistance = 50
	cfg.Tracker.MaxAbsence = 3 * time.Second
	cfg.Tracker.Matching = "exclusive"

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	trk, err := newTracker(cfg, tracker.LabelerFunc(func() string { return "x" }), logger)
	require.NoError(t, err)

	got := trk.Config()
	assert.Equal(t, 50.0, got.MaxDistance)
	assert.Equal(t, 3*time.Second, got.MaxAbsence)
	assert.Equal(t, tracker.MatchExclusive, got.Matching)
}

func TestNewDetectorSimulated(t *testing.T) {
	cfg := config.Default()
	cfg.Detector.Kind = "simulated"

	det, closeDet, err := newDetector(cfg, 1)
	require.NoError(t, err)
	defer closeDet()

	_, ok := det.(*detect.Simulated)
	assert.True(t, ok)
}

func TestNewOptionsWithoutFont(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Mirror = false
	cfg.Render.Trail = true

	opts, closeOpts, err := newOptions(cfg)
	require.NoError(t, err)
	defer closeOpts()

	assert.False(t, opts.Mirror)
	assert.True(t, opts.Trail)
	assert.NotNil(t, opts.Text)
}

func TestNewOptionsMissingFont(t *testing.T) {
	cfg := config.Default()
	cfg.Render.FontFile = filepath.Join(t.TempDir(), "missing.ttf")

	_, _, err := newOptions(cfg)
	assert.Error(t, err)
}

func TestLabelsCommand(t *testing.T) {
	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"labels"})
	t.Setenv("FACETAG_LABELS_FILE", "")

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "37 labels")
	assert.Contains(t, out.String(), "mutlu")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "facetag dev")
}
