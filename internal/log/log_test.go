package log

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/facetag/go-facetag/tracker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()

	logger, err := New(Options{Level: "debug", Output: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger, err = New(Options{Output: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	_, err = New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNewWritesFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "facetag.log")
	var buf bytes.Buffer

	logger, err := New(Options{File: file, Output: &buf, NoColors: true})
	require.NoError(t, err)

	logger.Info("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.FileExists(t, file)
}

func TestWithSession(t *testing.T) {
	t.Parallel()

	logger, err := New(Options{Output: &bytes.Buffer{}})
	require.NoError(t, err)

	a := WithSession(logger)
	b := WithSession(logger)

	assert.NotEmpty(t, a.Data[SessionKey])
	assert.NotEqual(t, a.Data[SessionKey], b.Data[SessionKey])
}

func TestEventObserver(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf, NoColors: true})
	require.NoError(t, err)

	obs := NewEventObserver(logger)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ident := tracker.Identity{
		ID:        3,
		Label:     "neseli",
		FirstSeen: now,
		LastSeen:  now.Add(4 * time.Second),
	}

	obs.Notify(tracker.Event{Kind: tracker.Appeared, Identity: ident, At: now})
	obs.Notify(tracker.Event{Kind: tracker.Left, Identity: ident, At: now.Add(7 * time.Second)})

	out := buf.String()
	assert.Contains(t, out, "New person: neseli")
	assert.Contains(t, out, "Person left: neseli")
	assert.Contains(t, out, "face_3")
	assert.Contains(t, out, "4s")
}
