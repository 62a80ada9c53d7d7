// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package randf_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/randf"
)

func TestFoldSamplerDrawsFromDomain(t *testing.T) {
	src := rand.New(rand.NewPCG(1, 9))
	v := randf.Range(uint8(10), uint8(20))

	f := randf.Fold(randf.Sampler(uint8(0)), src, v,
		func(_, r uint8) uint8 { return r },
	)

	require.Equal(t, 1, f.Len())
	require.GreaterOrEqual(t, f.Value(), uint8(10))
	require.LessOrEqual(t, f.Value(), uint8(20))
}

func TestFoldSamplerDeterministicUnderSeed(t *testing.T) {
	run := func() uint8 {
		src := rand.New(rand.NewPCG(42, 0))
		f := randf.Sampler(uint8(0))
		f = randf.Fold(f, src, randf.Uint8(), func(s, r uint8) uint8 { return s + r })
		f = randf.Fold(f, src, randf.Bool(), func(s uint8, b bool) uint8 {
			if b {
				return s % 3
			}
			return s
		})
		return f.Value()
	}

	require.Equal(t, run(), run(), "same seed, same transition sequence, same output")
}

func TestFoldPopulationKeepsSizeAndBound(t *testing.T) {
	src := rand.New(rand.NewPCG(8, 4))

	f := randf.PopulationSampler(uint8(0), 37)
	for range 5 {
		f = randf.Fold(f, src, randf.Bool(), func(s uint8, b bool) uint8 {
			if b {
				return s + 1
			}
			return s
		})
	}

	require.Equal(t, 37, f.Len(), "population never grows or shrinks")
	require.Equal(t, 37, f.Bound())
	for _, s := range f.Slice() {
		require.LessOrEqual(t, s, uint8(5), "each member advanced by at most one per step")
	}
}

func TestFoldPopulationDrawsIndependently(t *testing.T) {
	src := rand.New(rand.NewPCG(8, 4))

	f := randf.Fold(randf.PopulationSampler(uint8(0), 100), src, randf.Uint8(),
		func(_, r uint8) uint8 { return r },
	)

	distinct := map[uint8]bool{}
	for _, s := range f.Slice() {
		distinct[s] = true
	}
	require.Greater(t, len(distinct), 1, "members draw fresh samples, not one shared draw")
}

func TestFoldEnumeratorBoolCompleteness(t *testing.T) {
	combine := func(s uint8, b bool) uint8 {
		if b {
			return s * 2
		}
		return s + 1
	}

	f := randf.Fold(randf.Enumerator(uint8(5)), nil, randf.Bool(), combine)

	require.Equal(t, []uint8{combine(5, false), combine(5, true)}, f.Slice())
}

func TestFoldEnumeratorCartesianExpansion(t *testing.T) {
	f := randf.Enumerator(uint8(0))
	f = randf.Fold(f, nil, randf.Range(uint8(0), uint8(4)), func(s, r uint8) uint8 { return s + r })
	f = randf.Fold(f, nil, randf.Range(uint8(0), uint8(2)), func(s, r uint8) uint8 { return s * r })

	require.Equal(t, 15, f.Len(), "5 states times a 3-value domain")
}

func TestFoldUniqueEnumeratorCollapses(t *testing.T) {
	f := randf.Fold(randf.UniqueEnumerator(uint8(0)), nil, randf.Uint8(),
		func(_, r uint8) uint8 { return r % 4 },
	)

	require.Equal(t, map[uint8]struct{}{0: {}, 1: {}, 2: {}, 3: {}}, f.Set())
}

func TestFoldCounterConservation(t *testing.T) {
	f := randf.Counter(uint8(0))
	f = randf.Fold(f, nil, randf.Uint8(), func(s, r uint8) uint8 { return s + r })
	f = randf.Fold(f, nil, randf.Bool(), func(s uint8, b bool) uint8 {
		if b {
			return s % 3
		}
		return s
	})

	var total uint64
	for _, n := range f.Counts() {
		total += n
	}
	require.Equal(t, uint64(256*2), total, "sum of counts equals the product of domain sizes")
}

func TestFoldCounterMergesCollidingKeys(t *testing.T) {
	f := randf.Fold(randf.Counter(uint8(0)), nil, randf.Uint8(),
		func(_, r uint8) uint8 { return r % 4 },
	)

	require.Equal(t, map[uint8]uint64{0: 64, 1: 64, 2: 64, 3: 64}, f.Counts())
}

func TestFoldCounterKeysMatchUniqueEnumerator(t *testing.T) {
	step := func(f randf.Outcomes[uint8]) randf.Outcomes[uint8] {
		f = randf.Fold(f, nil, randf.Range(uint8(0), uint8(9)), func(s, r uint8) uint8 { return s + r })
		return randf.Fold(f, nil, randf.Bool(), func(s uint8, b bool) uint8 {
			if b {
				return s / 2
			}
			return s
		})
	}

	counted := step(randf.Counter(uint8(100)))
	unique := step(randf.UniqueEnumerator(uint8(100)))

	require.Equal(t, unique.Len(), counted.Len())
	for k := range counted.Counts() {
		require.Contains(t, unique.Set(), k)
	}
}

func TestFoldUniqueMatchesDistinctEnumerator(t *testing.T) {
	step := func(f randf.Outcomes[uint8]) randf.Outcomes[uint8] {
		f = randf.Fold(f, nil, randf.Uint8(), func(s, r uint8) uint8 { return s + r })
		return randf.Fold(f, nil, randf.Bool(), func(s uint8, b bool) uint8 {
			if b {
				return s % 3
			}
			return s
		})
	}

	enumerated := step(randf.Enumerator(uint8(0)))
	unique := step(randf.UniqueEnumerator(uint8(0)))

	distinct := map[uint8]struct{}{}
	for _, s := range enumerated.Slice() {
		distinct[s] = struct{}{}
	}
	require.Equal(t, distinct, unique.Set())
}

func TestMapSampler(t *testing.T) {
	f := randf.Map(randf.Sampler(uint8(7)), func(s uint8) uint16 { return uint16(s) * 100 })

	require.Equal(t, uint16(700), f.Value())
	require.Equal(t, randf.KindSampler, f.Kind())
}

func TestMapEnumerator(t *testing.T) {
	f := randf.Fold(randf.Enumerator(uint8(0)), nil, randf.Range(uint8(1), uint8(3)),
		func(_, r uint8) uint8 { return r },
	)
	f = randf.Map(f, func(s uint8) uint8 { return s * 10 })

	require.Equal(t, []uint8{10, 20, 30}, f.Slice())
}

func TestMapPopulationKeepsBound(t *testing.T) {
	f := randf.Map(randf.PopulationSampler(uint8(3), 8), func(s uint8) uint8 { return s + 1 })

	require.Equal(t, 8, f.Len())
	require.Equal(t, 8, f.Bound())
	for _, s := range f.Slice() {
		require.Equal(t, uint8(4), s)
	}
}

func TestMapUniqueCollapses(t *testing.T) {
	f := randf.Fold(randf.UniqueEnumerator(uint8(0)), nil, randf.Range(uint8(0), uint8(7)),
		func(_, r uint8) uint8 { return r },
	)
	f = randf.Map(f, func(s uint8) uint8 { return s % 2 })

	require.Equal(t, map[uint8]struct{}{0: {}, 1: {}}, f.Set())
}

func TestMapCounterMergesCounts(t *testing.T) {
	f := randf.Fold(randf.Counter(uint8(0)), nil, randf.Range(uint8(0), uint8(7)),
		func(_, r uint8) uint8 { return r },
	)
	f = randf.Map(f, func(s uint8) uint8 { return s % 2 })

	require.Equal(t, map[uint8]uint64{0: 4, 1: 4}, f.Counts())
}
