package transfer

import "math/rand/v2"

// Policy selects how source values are generated.
type Policy string

const (
	// PolicyMixed draws a random mix of whole and fractional values,
	// each in [1, 100).
	PolicyMixed Policy = "mixed"
	// PolicyIntegers draws whole values in [1, 100].
	PolicyIntegers Policy = "integers"
	// PolicyReals draws fractional values in [0, 100).
	PolicyReals Policy = "reals"
)

// Valid reports whether p names a known policy.
func (p Policy) Valid() bool {
	switch p {
	case PolicyMixed, PolicyIntegers, PolicyReals:
		return true
	}
	return false
}

// Generate builds an immutable source sequence of n values under the
// given policy. The same seed always yields the same sequence.
func Generate(p Policy, n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]float64, n)
	for i := range out {
		switch p {
		case PolicyIntegers:
			out[i] = float64(rng.IntN(100) + 1)
		case PolicyReals:
			out[i] = rng.Float64() * 100
		default: // PolicyMixed
			if rng.IntN(2) == 0 {
				out[i] = float64(rng.IntN(100) + 1)
			} else {
				out[i] = rng.Float64() * 100
			}
		}
	}
	return out
}
