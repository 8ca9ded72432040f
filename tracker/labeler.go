package tracker

import (
	"errors"
	"math/rand"
	"sync"
)

// ErrEmptyCatalog is returned when a label catalog has no entries to pick from
var ErrEmptyCatalog = errors.New("label catalog is empty")

// DefaultCatalog is the built in list of (ASCII spelt) Turkish adjectives
// used to label faces
var DefaultCatalog = []string{
	"tatli", "mutlu", "sarhos", "guzel", "yakisikli", "sirin",
	"neseli", "uzgun", "yorgun", "enerjik", "sakin", "heyecanli",
	"kizgin", "saskin", "gururlu", "utangac", "cesur", "korkak",
	"akilli", "aptal", "comert", "cimri", "dostane", "dusmanca",
	"sicak", "soguk", "genc", "yasli", "guclu", "zayif", "komik",
	"ciddi", "rahat", "gergin", "ozguvenli", "cekingen", "sosyal",
}

// Labeler is the label generation policy called once when an Identity is
// created
type Labeler interface {
	Next() string
}

// LabelerFunc adapts a plain function to the Labeler interface
type LabelerFunc func() string

// Next calls f()
func (f LabelerFunc) Next() string {
	return f()
}

// RandomLabeler selects a label uniformly at random from its catalog.  Picks
// are independent so two live identities may share the same label.
type RandomLabeler struct {
	catalog []string
	rnd     *rand.Rand
	mu      sync.Mutex
}

// NewRandomLabeler returns a RandomLabeler over a copy of catalog.  If src is
// nil a time independent default source is used.
func NewRandomLabeler(catalog []string, src rand.Source) (*RandomLabeler, error) {

	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	if src == nil {
		src = rand.NewSource(rand.Int63())
	}

	c := make([]string, len(catalog))
	copy(c, catalog)

	return &RandomLabeler{
		catalog: c,
		rnd:     rand.New(src),
	}, nil
}

// Next returns a random label from the catalog
func (l *RandomLabeler) Next() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.catalog[l.rnd.Intn(len(l.catalog))]
}

// Catalog returns a copy of the labels this labeler picks from
func (l *RandomLabeler) Catalog() []string {
	c := make([]string, len(l.catalog))
	copy(c, l.catalog)
	return c
}
