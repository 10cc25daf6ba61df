package suite

import (
	"math"
	"math/rand"
	"sort"

	"github.com/deqp-tools/dsim/internal/errors"
)

type weightAndCount struct {
	weight  uint64
	sampled uint64
}

// lessThan compares sampled counts relative to weight. Cross-multiplied in
// float64 to avoid overflow on large counts.
func (w weightAndCount) lessThan(rhs weightAndCount) bool {
	return float64(w.sampled)*float64(rhs.weight) <
		float64(rhs.sampled)*float64(w.weight)
}

// Sampler draws tests from a suite at random, weighted by how "unique" each
// test's name components are. Tests inside high-dimensional Cartesian
// products (many tests sharing the same components) get relatively less
// weight, so sampling spreads across distinct areas of the suite instead of
// drowning in the largest product group.
type Sampler struct {
	// cumWeights[i] is the sum of weights of tests 0..i.
	cumWeights []uint64
	testCounts []uint32
	names      []weightAndCount
}

// NewSampler creates a sampler for the given suite with uniqueness-based
// test weights.
func NewSampler(s *Suite) (*Sampler, error) {
	if s.Len() == 0 {
		return nil, errors.ErrEmptySuite
	}

	nameFrequency := make([]uint32, s.names.count()+1)
	for i := range s.tests {
		for _, idx := range s.nameIndices(TestRef{id: int32(i)}) {
			nameFrequency[idx]++
		}
	}

	weights := make([]uint64, s.Len())
	for i := range s.tests {
		var weight float64
		for _, idx := range s.nameIndices(TestRef{id: int32(i)}) {
			weight += 1.0 / float64(nameFrequency[idx])
		}
		weight = math.Min(weight, 1.0)
		weights[i] = uint64(weight * float64(uint64(1)<<32))
	}

	return newSamplerWithWeights(s, weights)
}

// newSamplerWithWeights finalizes a sampler from per-test weights. Name
// weights are derived from the test weights; the sampled distribution
// follows the test weights, with history-dependent balancing on top.
func newSamplerWithWeights(s *Suite, weights []uint64) (*Sampler, error) {
	names := make([]weightAndCount, s.names.count()+1)
	var accum uint64
	for i, w := range weights {
		for _, idx := range s.nameIndices(TestRef{id: int32(i)}) {
			names[idx].weight += w
		}
		if accum+w < accum {
			return nil, errors.New("test suite sampling weights overflow")
		}
		accum += w
		weights[i] = accum
	}
	if accum == 0 {
		return nil, errors.New("test suite sampling weights are all zero")
	}

	return &Sampler{
		cumWeights: weights,
		testCounts: make([]uint32, s.Len()),
		names:      names,
	}, nil
}

func (sp *Sampler) sampleCore(rng *rand.Rand) TestRef {
	total := sp.cumWeights[len(sp.cumWeights)-1]
	r := uint64(rng.Int63n(int64(total)))
	id := sort.Search(len(sp.cumWeights), func(i int) bool {
		return sp.cumWeights[i] > r
	})
	return TestRef{id: int32(id)}
}

// Sample draws one test using the power of two random choices: two tests
// are sampled according to the weights and the one picked least often so
// far wins. Ties fall to the test owning the name component that was
// sampled least frequently relative to its weight. This limits long-term
// variance in how often each test and each name component is picked, which
// spreads tests more effectively when hunting regressions.
func (sp *Sampler) Sample(s *Suite, rng *rand.Rand) TestRef {
	sample1 := sp.sampleCore(rng)
	sample2 := sp.sampleCore(rng)

	count1 := sp.testCounts[sample1.id]
	count2 := sp.testCounts[sample2.id]

	var sample TestRef
	switch {
	case count1 < count2:
		sample = sample1
	case count2 < count1:
		sample = sample2
	default:
		leastFrequent := weightAndCount{weight: 0, sampled: math.MaxUint64}
		for _, idx := range s.nameIndices(sample1) {
			if sp.names[idx].lessThan(leastFrequent) {
				leastFrequent = sp.names[idx]
			}
		}
		take2 := false
		for _, idx := range s.nameIndices(sample2) {
			if sp.names[idx].lessThan(leastFrequent) {
				take2 = true
				break
			}
		}
		if take2 {
			sample = sample2
		} else {
			sample = sample1
		}
	}

	sp.testCounts[sample.id]++
	for _, idx := range s.nameIndices(sample) {
		sp.names[idx].sampled++
	}
	return sample
}
