// Package spatial implements blue-noise point placement for instance
// generation: uniform rejection sampling in the unit square under a
// minimum pairwise-distance constraint, with bounded retries so that an
// infeasible density surfaces as an error instead of a hang.
package spatial

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrInfeasibleDensity indicates that the minimum-distance constraint
// cannot be satisfied for the requested point count in the unit square.
// Callers branch on it with errors.Is.
var ErrInfeasibleDensity = errors.New("spatial: infeasible density")

// DefaultMaxAttempts is the number of candidate draws allowed per point
// before sampling gives up.
const DefaultMaxAttempts = 10000

// Sampler draws points in [0,1)×[0,1) keeping every pair of points at
// least MinDistance apart. All randomness comes from the supplied source,
// so a fixed seed reproduces the exact point sequence.
type Sampler struct {
	MinDistance float64
	MaxAttempts int
	rng         *rand.Rand
}

// NewSampler creates a sampler with the given separation constraint and
// random source. A zero MaxAttempts means DefaultMaxAttempts.
func NewSampler(minDistance float64, rng *rand.Rand) *Sampler {
	return &Sampler{
		MinDistance: minDistance,
		MaxAttempts: DefaultMaxAttempts,
		rng:         rng,
	}
}

// Sample returns count new points, each at distance >= MinDistance from
// every point in existing and from every previously accepted point. The
// returned slice holds only the new points, in acceptance order.
func (s *Sampler) Sample(count int, existing []r2.Vec) ([]r2.Vec, error) {
	accepted := make([]r2.Vec, 0, count)
	for len(accepted) < count {
		p, err := s.sampleOne(existing, accepted)
		if err != nil {
			return nil, fmt.Errorf("point %d of %d: %w", len(accepted), count, err)
		}
		accepted = append(accepted, p)
	}
	return accepted, nil
}

// SampleOne returns a single new point at distance >= MinDistance from
// every point in existing. Used by connectivity repair to relocate one
// node at a time.
func (s *Sampler) SampleOne(existing []r2.Vec) (r2.Vec, error) {
	return s.sampleOne(existing, nil)
}

func (s *Sampler) sampleOne(existing, accepted []r2.Vec) (r2.Vec, error) {
	maxAttempts := s.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := r2.Vec{X: s.rng.Float64(), Y: s.rng.Float64()}
		if s.clear(candidate, existing) && s.clear(candidate, accepted) {
			return candidate, nil
		}
	}
	return r2.Vec{}, fmt.Errorf("no admissible point after %d attempts at min distance %g: %w",
		maxAttempts, s.MinDistance, ErrInfeasibleDensity)
}

// clear reports whether candidate keeps the separation constraint
// against every point in pts.
func (s *Sampler) clear(candidate r2.Vec, pts []r2.Vec) bool {
	for _, p := range pts {
		if Distance(candidate, p) < s.MinDistance {
			return false
		}
	}
	return true
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}
