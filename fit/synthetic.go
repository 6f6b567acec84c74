package fit

import "math/rand"

// Synthetic returns n samples with x uniform in [0, 2) and
// y = b + w·x + noise·N(0,1), reproducible for a given seed.
// Returns nil slices when n <= 0.
func Synthetic(n int, w, b, noise float64, seed int64) (xs, ys []float64) {
	if n <= 0 {
		return nil, nil
	}
	rng := rand.New(rand.NewSource(seed))
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		xs[i] = 2 * rng.Float64()
		ys[i] = b + w*xs[i] + noise*rng.NormFloat64()
	}

	return xs, ys
}
