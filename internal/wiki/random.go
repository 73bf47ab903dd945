// ABOUTME: Random article selection with an injectable source
// ABOUTME: Tests supply a seeded or stub Picker instead of process-wide randomness

package wiki

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// lockedPicker guards a *rand.Rand, which is not safe for concurrent use.
type lockedPicker struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (p *lockedPicker) IntN(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.r.IntN(n)
}

// NewPicker returns a concurrency-safe Picker seeded from the current time.
func NewPicker() Picker {
	seed := uint64(time.Now().UnixNano())
	return NewSeededPicker(seed)
}

// NewSeededPicker returns a deterministic, concurrency-safe Picker for the given seed.
func NewSeededPicker(seed uint64) Picker {
	return &lockedPicker{r: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// Random returns a uniformly chosen article name, or ErrEmptyStore when there
// are no articles.
func (s *Service) Random(ctx context.Context) (string, error) {
	names, err := s.Index(ctx)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrEmptyStore
	}
	return names[s.picker.IntN(len(names))], nil
}
