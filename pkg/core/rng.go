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

// Percent reports true with probability p/100.
func (r *RNG) Percent(p int) bool {
	if p <= 0 {
		return false
	}
	if p >= 100 {
		return true
	}
	return r.r.IntN(100) < p
}

// Fill sets every cell of g alive with probability density/100.
func (r *RNG) Fill(g *Grid, density int) {
	cells := g.Cells()
	for i := range cells {
		cells[i] = Dead
		if r.Percent(density) {
			cells[i] = Alive
		}
	}
}
