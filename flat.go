// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package randf

// FoldFlat collapses one level of container nesting: combine maps each
// live state to a whole Outcomes container, and the inner containers
// merge into a single one. No randomness is consumed at this call — any
// randomness is assumed already folded into the inner containers by
// combine.
//
// This is the branching primitive: it expresses transitions where
// different states follow structurally different continuations (one
// state takes a further random sub-process, another is already final),
// which cannot be factored through a single [Fold] draw. Structurally it
// is a monadic bind specialized per container shape:
//
//   - Sampler: direct substitution of the single inner container.
//   - PopulationSampler: inner populations concatenate; if the result
//     exceeds the outer bound it is truncated to the first bound
//     members. The truncation is deterministic because flattening
//     consumes no randomness.
//   - Enumerator: inner expansions concatenate. Children of unequal
//     length skew relative multiplicities in the concatenation; use
//     Counter when multiplicities matter.
//   - UniqueEnumerator: inner sets union.
//   - Counter: each inner count is weighted by its outer state's count,
//     summing on collision. This collapse is exact.
//
// Every inner container must be built with the same strategy as f (and
// faces the same bound, for PopulationSampler); a mismatch silently
// changes combinatorial behavior, so it panics instead.
func FoldFlat[A, B comparable](f Outcomes[A], combine func(A) Outcomes[B]) Outcomes[B] {
	switch f.kind {
	case KindSampler:
		inner := combine(f.single)
		mustSameKind(f.kind, inner.kind)
		return inner
	case KindPopulationSampler:
		many := make([]B, 0, f.bound)
		for _, a := range f.many {
			inner := combine(a)
			mustSameKind(f.kind, inner.kind)
			many = append(many, inner.many...)
		}
		if len(many) > f.bound {
			many = many[:f.bound]
		}
		return Outcomes[B]{kind: KindPopulationSampler, many: many, bound: f.bound}
	case KindEnumerator:
		many := make([]B, 0, len(f.many))
		for _, a := range f.many {
			inner := combine(a)
			mustSameKind(f.kind, inner.kind)
			many = append(many, inner.many...)
		}
		return Outcomes[B]{kind: KindEnumerator, many: many}
	case KindUniqueEnumerator:
		set := make(map[B]struct{}, len(f.set))
		for a := range f.set {
			inner := combine(a)
			mustSameKind(f.kind, inner.kind)
			for b := range inner.set {
				set[b] = struct{}{}
			}
		}
		return Outcomes[B]{kind: KindUniqueEnumerator, set: set}
	case KindCounter:
		counts := make(map[B]uint64, len(f.counts))
		for a, n := range f.counts {
			inner := combine(a)
			mustSameKind(f.kind, inner.kind)
			for b, m := range inner.counts {
				counts[b] += n * m
			}
		}
		return Outcomes[B]{kind: KindCounter, counts: counts}
	}
	panic("randf: unknown strategy kind")
}

func mustSameKind(outer, inner Kind) {
	if outer != inner {
		panic("randf: FoldFlat inner outcomes are " + inner.String() + ", outer is " + outer.String())
	}
}
