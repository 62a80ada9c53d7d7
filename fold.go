// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package randf

// Fold advances a random process by one step: it combines every live
// state of f with one draw of the variable v, under the strategy f was
// built with.
//
//   - Sampler: one uniform sample, combine applied once. O(1); the
//     returned container carries only the new state and allocates
//     nothing.
//   - PopulationSampler: each member advances with its own fresh,
//     independent sample. The population size is unchanged.
//   - Enumerator: full Cartesian expansion — combine(s, r) for every
//     live s and every r in v's domain, duplicates retained. k live
//     states and an m-value domain produce k×m states.
//   - UniqueEnumerator: same expansion, equal results collapsed.
//   - Counter: same expansion with exact multiplicities — each input
//     count propagates to the output key, summing on collision. The sum
//     of all counts grows by exactly a factor of m per step.
//
// combine must be pure: the enumerating strategies call it once per
// (state, draw) pair and any hidden state would desynchronize the
// interpretations. The input container is not modified.
//
// src is consumed only by the sampling strategies; it may be nil when f
// was built with an enumerating strategy.
func Fold[A, B comparable, R any](f Outcomes[A], src Source, v Variable[R], combine func(A, R) B) Outcomes[B] {
	switch f.kind {
	case KindSampler:
		return Outcomes[B]{kind: KindSampler, single: combine(f.single, v.Sample(src))}
	case KindPopulationSampler:
		many := make([]B, len(f.many))
		for i, a := range f.many {
			many[i] = combine(a, v.Sample(src))
		}
		return Outcomes[B]{kind: KindPopulationSampler, many: many, bound: f.bound}
	case KindEnumerator:
		domain := v.Domain()
		many := make([]B, 0, len(f.many)*len(domain))
		for _, a := range f.many {
			for _, r := range domain {
				many = append(many, combine(a, r))
			}
		}
		return Outcomes[B]{kind: KindEnumerator, many: many}
	case KindUniqueEnumerator:
		domain := v.Domain()
		set := make(map[B]struct{}, len(f.set)*len(domain))
		for a := range f.set {
			for _, r := range domain {
				set[combine(a, r)] = struct{}{}
			}
		}
		return Outcomes[B]{kind: KindUniqueEnumerator, set: set}
	case KindCounter:
		domain := v.Domain()
		// Distinct output keys are bounded by len(counts)×len(domain);
		// sizing up front avoids rehashing during the expansion.
		counts := make(map[B]uint64, len(f.counts)*len(domain))
		for a, n := range f.counts {
			for _, r := range domain {
				counts[combine(a, r)] += n
			}
		}
		return Outcomes[B]{kind: KindCounter, counts: counts}
	}
	panic("randf: unknown strategy kind")
}

// Map applies a pure transform to every live state, consuming no
// randomness. It is equivalent to a Fold over a single-value domain but
// avoids the Variable plumbing and the sample draw.
//
// Under UniqueEnumerator and Counter a non-injective transform shrinks
// the container: equal results collapse, and Counter sums their counts.
func Map[A, B comparable](f Outcomes[A], transform func(A) B) Outcomes[B] {
	switch f.kind {
	case KindSampler:
		return Outcomes[B]{kind: KindSampler, single: transform(f.single)}
	case KindPopulationSampler, KindEnumerator:
		many := make([]B, len(f.many))
		for i, a := range f.many {
			many[i] = transform(a)
		}
		return Outcomes[B]{kind: f.kind, many: many, bound: f.bound}
	case KindUniqueEnumerator:
		set := make(map[B]struct{}, len(f.set))
		for a := range f.set {
			set[transform(a)] = struct{}{}
		}
		return Outcomes[B]{kind: KindUniqueEnumerator, set: set}
	case KindCounter:
		counts := make(map[B]uint64, len(f.counts))
		for a, n := range f.counts {
			counts[transform(a)] += n
		}
		return Outcomes[B]{kind: KindCounter, counts: counts}
	}
	panic("randf: unknown strategy kind")
}
