package sampling

import (
	"math"
	"math/rand"

	"github.com/cognicore/gsdmm/pkg/gsdmm/internalerr"
)

// Categorical draws indices from discrete distributions using a single
// sequential random source. Weights need not be normalized.
type Categorical struct {
	rng *rand.Rand
}

// New creates a sampler backed by the given source.
func New(rng *rand.Rand) *Categorical {
	return &Categorical{rng: rng}
}

// Draw returns one index chosen with probability proportional to its
// weight. A weight vector whose sum is not strictly positive and finite
// (all-zero, negative, NaN, or infinite) cannot be normalized and yields
// ErrNumericUnderflow.
func (c *Categorical) Draw(weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, internalerr.ErrInvalidInput
	}
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if !(sum > 0) || math.IsInf(sum, 1) {
		return 0, internalerr.ErrNumericUnderflow
	}
	u := c.rng.Float64() * sum
	var cum float64
	for i, w := range weights {
		cum += w
		if u < cum {
			return i, nil
		}
	}
	// u landed on the top of the cumulative range after rounding.
	return len(weights) - 1, nil
}

// Uniform draws an index from the uniform distribution over [0, k).
// It goes through Draw so initialization and sweeps consume the source
// the same way.
func (c *Categorical) Uniform(k int) (int, error) {
	weights := make([]float64, k)
	for i := range weights {
		weights[i] = 1.0 / float64(k)
	}
	return c.Draw(weights)
}
