package suite

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deqp-tools/dsim/internal/errors"
)

func buildSuite(t *testing.T, names []string) *Suite {
	t.Helper()
	s := New(".")
	for _, name := range names {
		_, err := s.Put(name)
		require.NoError(t, err)
	}
	return s
}

func TestSamplerEmptySuite(t *testing.T) {
	_, err := NewSampler(New("."))
	assert.ErrorIs(t, err, errors.ErrEmptySuite)
}

func TestSamplerDeterministic(t *testing.T) {
	names := []string{"a.x", "a.y", "b.x", "b.y", "c.z"}

	sample := func() []string {
		s := buildSuite(t, names)
		sampler, err := NewSampler(s)
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(42))

		out := make([]string, 0, 10)
		for i := 0; i < 10; i++ {
			out = append(out, s.Name(sampler.Sample(s, rng)))
		}
		return out
	}

	assert.Equal(t, sample(), sample(), "same seed must give the same sequence")
}

func TestSamplerCoversSuite(t *testing.T) {
	var names []string
	for g := 0; g < 4; g++ {
		for i := 0; i < 5; i++ {
			names = append(names, fmt.Sprintf("group%d.test%d", g, i))
		}
	}
	s := buildSuite(t, names)
	sampler, err := NewSampler(s)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	seen := make(map[string]int)
	for i := 0; i < 1000; i++ {
		seen[s.Name(sampler.Sample(s, rng))]++
	}

	// The power-of-two-choices balancing should hit every test in a
	// small uniform suite well before 1000 draws.
	assert.Len(t, seen, len(names))
}

func TestSamplerBalancesCartesianProducts(t *testing.T) {
	// A two-dimensional product group whose tests share all their name
	// components, plus one test with unique components. Uniqueness
	// weighting must keep the lone test from being starved.
	var names []string
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			names = append(names, fmt.Sprintf("big.dim%d.dim%d", i, j))
		}
	}
	names = append(names, "small.only")

	s := buildSuite(t, names)
	sampler, err := NewSampler(s)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(7))

	counts := make(map[string]int)
	const draws = 500
	for i := 0; i < draws; i++ {
		counts[s.Name(sampler.Sample(s, rng))]++
	}

	// The count-first choice criterion keeps absolute sample counts close
	// to uniform even across very different weights, so the lone test is
	// not drawn in proportion to its weight. Its full 1.0 weight (the
	// product tests share all their "dimN" components and sit far below
	// that) still tips every tie its way, which must show up as an edge
	// over the product tests' average.
	small := counts["small.only"]
	bigMean := float64(draws-small) / float64(len(names)-1)
	assert.Greater(t, float64(small), bigMean,
		"the uniquely named test must be drawn more often than a product test")
}

func TestSamplerValidRefs(t *testing.T) {
	s := buildSuite(t, []string{"a.b", "a.c", "d.e"})
	sampler, err := NewSampler(s)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		ref := sampler.Sample(s, rng)
		name := s.Name(ref)
		_, err := s.Put(name)
		assert.NoError(t, err, "sampled name must already be in the suite")
	}
	assert.Equal(t, 3, s.Len(), "sampling must not grow the suite")
}
