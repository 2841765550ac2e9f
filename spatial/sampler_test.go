package spatial

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestSampleRespectsMinimumDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewSampler(0.05, rng)

	pts, err := s.Sample(40, nil)
	require.NoError(t, err)
	require.Len(t, pts, 40)

	for i := range pts {
		assert.GreaterOrEqual(t, pts[i].X, 0.0)
		assert.Less(t, pts[i].X, 1.0)
		assert.GreaterOrEqual(t, pts[i].Y, 0.0)
		assert.Less(t, pts[i].Y, 1.0)
		for j := i + 1; j < len(pts); j++ {
			assert.GreaterOrEqual(t, Distance(pts[i], pts[j]), s.MinDistance,
				"points %d and %d too close", i, j)
		}
	}
}

func TestSampleRespectsExistingPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSampler(0.1, rng)

	existing := []r2.Vec{{X: 0.5, Y: 0.5}, {X: 0.25, Y: 0.75}}
	pts, err := s.Sample(10, existing)
	require.NoError(t, err)

	for _, p := range pts {
		for _, e := range existing {
			assert.GreaterOrEqual(t, Distance(p, e), s.MinDistance)
		}
	}
}

func TestSampleOneRespectsExistingPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := NewSampler(0.2, rng)

	existing := []r2.Vec{{X: 0.1, Y: 0.1}, {X: 0.9, Y: 0.9}}
	p, err := s.SampleOne(existing)
	require.NoError(t, err)
	for _, e := range existing {
		assert.GreaterOrEqual(t, Distance(p, e), s.MinDistance)
	}
}

func TestSampleInfeasibleDensityFails(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewSampler(0.9, rng)
	s.MaxAttempts = 200

	// At most a handful of points fit 0.9 apart in the unit square;
	// asking for twenty must hit the attempt cap instead of spinning.
	_, err := s.Sample(20, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInfeasibleDensity), "got %v", err)
}

func TestSampleDeterministicForFixedSeed(t *testing.T) {
	first, err := NewSampler(0.03, rand.New(rand.NewSource(99))).Sample(25, nil)
	require.NoError(t, err)
	second, err := NewSampler(0.03, rand.New(rand.NewSource(99))).Sample(25, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDistance(t *testing.T) {
	a := r2.Vec{X: 0, Y: 0}
	b := r2.Vec{X: 3, Y: 4}
	assert.InDelta(t, 5.0, Distance(a, b), 1e-12)
	assert.InDelta(t, 5.0, Distance(b, a), 1e-12)
	assert.Zero(t, Distance(a, a))
}
