// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package randf

import "golang.org/x/exp/constraints"

// Range returns the Variable over the inclusive interval [lo, hi].
// Panics if lo > hi; an inverted range is a caller contract violation,
// not a recoverable condition.
//
// Range places no width limit on R, so it is also the opt-in path for
// folding over a bounded slice of a type whose full domain would be
// intractable (e.g. a 48-bit window of uint64 values still enumerates
// 2^48 elements; keep spans small under enumerating strategies).
func Range[R constraints.Integer](lo, hi R) Variable[R] {
	if lo > hi {
		panic("randf: inverted range bounds")
	}
	return rangeVariable[R]{lo: lo, hi: hi}
}

type rangeVariable[R constraints.Integer] struct {
	lo, hi R
}

func (v rangeVariable[R]) Sample(src Source) R {
	// Two's-complement subtraction makes the span correct for signed
	// bounds as well; span 0 means the range covers all 2^64 values.
	span := uint64(v.hi) - uint64(v.lo) + 1
	if span == 0 {
		return R(src.Uint64())
	}
	return v.lo + R(uint64n(src, span))
}

func (v rangeVariable[R]) Domain() []R {
	vs := make([]R, 0, uint64(v.hi)-uint64(v.lo)+1)
	for r := v.lo; ; r++ {
		vs = append(vs, r)
		if r == v.hi {
			return vs
		}
	}
}
