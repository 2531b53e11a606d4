// Package demo provides a stand-in vision provider that answers with a
// pseudo-random sample of fixed product names, so the tool can be tried
// without an API key.
package demo

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/mercalabs/shelfscan/internal/vision"
)

var sampleProducts = []string{
	"Leche Entera",
	"Galletas Maria",
	"Jugo de Naranja",
	"Yogur Natural",
	"Pasta de Dientes",
}

// Demo is a vision provider that never calls a model. It is safe for
// concurrent use; the web surface calls it from request goroutines.
type Demo struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a demo provider seeded from the clock.
func New() *Demo {
	return &Demo{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// ExtractText ignores the image and returns 3 to 5 sample product names
// in the plain comma-separated format.
func (d *Demo) ExtractText(_ context.Context, _ vision.Config) (string, error) {
	d.mu.Lock()
	count := 3 + d.rng.Intn(3)
	if count > len(sampleProducts) {
		count = len(sampleProducts)
	}
	picks := d.rng.Perm(len(sampleProducts))[:count]
	d.mu.Unlock()
	names := make([]string, 0, count)
	for _, i := range picks {
		names = append(names, sampleProducts[i])
	}

	return strings.Join(names, ", "), nil
}
