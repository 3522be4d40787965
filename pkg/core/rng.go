package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Alive reports true with probability density. Densities at or below 0 are
// never alive and at or above 1 always alive.
func (r *RNG) Alive(density float64) bool {
	return r.r.Float64() < density
}

// FillBinary seeds every cell of t as alive with probability density.
func FillBinary(r *RNG, t *StateTexture, density float64) {
	cells := t.Cells()
	for i := range cells {
		cells[i] = Dead
		if r.Alive(density) {
			cells[i] = Alive
		}
	}
}
