package tracker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandomLabelerEmpty(t *testing.T) {
	t.Parallel()

	l, err := NewRandomLabeler(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
	assert.Nil(t, l)
}

func TestRandomLabelerPicksFromCatalog(t *testing.T) {
	t.Parallel()

	catalog := []string{"tatli", "mutlu", "sakin"}
	l, err := NewRandomLabeler(catalog, rand.NewSource(1))
	require.NoError(t, err)

	seen := make(map[string]int)
	for i := 0; i < 3000; i++ {
		seen[l.Next()]++
	}

	// every entry is picked and nothing outside the catalog appears
	assert.Len(t, seen, len(catalog))
	for _, label := range catalog {
		assert.Greater(t, seen[label], 800, label)
	}
}

func TestRandomLabelerDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a, err := NewRandomLabeler(DefaultCatalog, rand.NewSource(42))
	require.NoError(t, err)
	b, err := NewRandomLabeler(DefaultCatalog, rand.NewSource(42))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestRandomLabelerCopiesCatalog(t *testing.T) {
	t.Parallel()

	catalog := []string{"one"}
	l, err := NewRandomLabeler(catalog, rand.NewSource(1))
	require.NoError(t, err)

	catalog[0] = "changed"
	assert.Equal(t, "one", l.Next())
	assert.Equal(t, []string{"one"}, l.Catalog())
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	assert.Len(t, DefaultCatalog, 37)
	for _, label := range DefaultCatalog {
		assert.NotEmpty(t, label)
	}
}
