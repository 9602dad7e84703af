package park

import "math"

// RNG is the world's single xorshift64 stream. Every random decision in the
// simulation draws from this one generator so a seed fully determines a run.
type RNG struct {
	state uint64
}

func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return &RNG{state: seed}
}

// Float64 returns the next value in [0, 1).
func (r *RNG) Float64() float64 {
	s := r.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	r.state = s
	f := float64(s) / float64(math.MaxUint64)
	if f >= 1.0 {
		f = math.Nextafter(1.0, 0)
	}
	return f
}

// IntN returns a value in [0, n). n must be positive.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Range returns a value in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// State exposes the raw generator state for digests.
func (r *RNG) State() uint64 { return r.state }
