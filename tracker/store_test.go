package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqLabeler hands out labels from a fixed list in order, wrapping around
func seqLabeler(labels ...string) Labeler {
	i := 0
	return LabelerFunc(func() string {
		l := labels[i%len(labels)]
		i++
		return l
	})
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestStoreCreate(t *testing.T) {
	t.Parallel()

	s := NewStore(seqLabeler("tatli", "mutlu"))

	a := s.Create(NewRect(10, 10, 50, 50), t0)
	b := s.Create(NewRect(200, 10, 50, 50), t0.Add(time.Second))

	assert.Equal(t, ID(1), a.ID)
	assert.Equal(t, ID(2), b.ID)
	assert.Equal(t, "tatli", a.Label)
	assert.Equal(t, "mutlu", b.Label)
	assert.Equal(t, t0, a.FirstSeen)
	assert.Equal(t, t0, a.LastSeen)
	assert.Equal(t, 2, s.Len())

	got, ok := s.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, a, got)
}

func TestStoreTouch(t *testing.T) {
	t.Parallel()

	t.Run("updates position and last seen but not label", func(t *testing.T) {
		t.Parallel()
		s := NewStore(seqLabeler("cesur", "korkak"))
		a := s.Create(NewRect(10, 10, 50, 50), t0)

		for i := 1; i <= 100; i++ {
			err := s.Touch(a.ID, NewRect(float64(10+i), 10, 50, 50),
				t0.Add(time.Duration(i)*100*time.Millisecond))
			require.NoError(t, err)
		}

		got, ok := s.Get(a.ID)
		require.True(t, ok)
		assert.Equal(t, "cesur", got.Label)
		assert.Equal(t, NewRect(110, 10, 50, 50), got.Position)
		assert.Equal(t, t0.Add(10*time.Second), got.LastSeen)
		assert.Equal(t, t0, got.FirstSeen)
	})

	t.Run("last seen never moves backwards", func(t *testing.T) {
		t.Parallel()
		s := NewStore(seqLabeler("sakin"))
		a := s.Create(NewRect(0, 0, 10, 10), t0.Add(time.Second))

		require.NoError(t, s.Touch(a.ID, NewRect(5, 5, 10, 10), t0))

		got, _ := s.Get(a.ID)
		assert.Equal(t, t0.Add(time.Second), got.LastSeen)
		assert.Equal(t, NewRect(5, 5, 10, 10), got.Position)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		t.Parallel()
		s := NewStore(seqLabeler("sakin"))

		err := s.Touch(ID(42), NewRect(0, 0, 10, 10), t0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Contains(t, err.Error(), "face_42")
	})
}

func TestStoreExpireOlderThan(t *testing.T) {
	t.Parallel()

	s := NewStore(seqLabeler("a", "b", "c"))
	a := s.Create(NewRect(0, 0, 10, 10), t0)
	b := s.Create(NewRect(100, 0, 10, 10), t0)
	c := s.Create(NewRect(200, 0, 10, 10), t0.Add(time.Second))

	// b is stale but matched this pass so it must survive
	matched := map[ID]struct{}{b.ID: {}}

	expired := s.ExpireOlderThan(t0.Add(2500*time.Millisecond), 2*time.Second, matched)

	require.Len(t, expired, 1)
	assert.Equal(t, a.ID, expired[0].ID)
	assert.Equal(t, "a", expired[0].Label)

	_, ok := s.Get(a.ID)
	assert.False(t, ok)
	_, ok = s.Get(b.ID)
	assert.True(t, ok)
	_, ok = s.Get(c.ID)
	assert.True(t, ok)
}

func TestStoreExpireBoundary(t *testing.T) {
	t.Parallel()

	const eps = time.Millisecond
	maxAbsence := 2 * time.Second

	tests := []struct {
		name    string
		elapsed time.Duration
		expire  bool
	}{
		{"just under window", maxAbsence - eps, false},
		{"exactly window", maxAbsence, false},
		{"just over window", maxAbsence + eps, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewStore(seqLabeler("yorgun"))
			s.Create(NewRect(0, 0, 10, 10), t0)

			expired := s.ExpireOlderThan(t0.Add(tt.elapsed), maxAbsence, nil)

			if tt.expire {
				assert.Len(t, expired, 1)
				assert.Equal(t, 0, s.Len())
			} else {
				assert.Empty(t, expired)
				assert.Equal(t, 1, s.Len())
			}
		})
	}
}

func TestStoreRemoveAndReset(t *testing.T) {
	t.Parallel()

	s := NewStore(seqLabeler("x"))
	a := s.Create(NewRect(0, 0, 10, 10), t0)
	s.Create(NewRect(50, 0, 10, 10), t0)

	removed, err := s.Remove(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, removed.ID)

	_, err = s.Remove(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	s.Reset()
	assert.Equal(t, 0, s.Len())

	// ids are never reused after a reset
	c := s.Create(NewRect(0, 0, 10, 10), t0)
	assert.Equal(t, ID(3), c.ID)
}

func TestStoreSnapshotOrdered(t *testing.T) {
	t.Parallel()

	s := NewStore(seqLabeler("x"))
	for i := 0; i < 20; i++ {
		s.Create(NewRect(float64(i*10), 0, 10, 10), t0)
	}

	snap := s.Snapshot()
	require.Len(t, snap, 20)

	for i := 1; i < len(snap); i++ {
		assert.Less(t, snap[i-1].ID, snap[i].ID)
	}

	// mutating the snapshot does not touch the store
	snap[0].Label = "changed"
	got, _ := s.Get(snap[0].ID)
	assert.Equal(t, "x", got.Label)
}
