// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package randf

import "math/bits"

// Source supplies raw uniform random bits.
//
// It is the subset of math/rand/v2's Source interface this package
// consumes, so both a raw generator (e.g. rand.NewPCG) and a *rand.Rand
// satisfy it. A Source is borrowed for the duration of a single call and
// never retained.
//
// Enumerating strategies realize a draw as the whole domain instead of a
// sample and never consult the Source; callers folding only under those
// strategies may pass nil.
type Source interface {
	Uint64() uint64
}

// uint64n returns a uniform value in [0, n) drawn from src, using
// Lemire's multiply-shift reduction with rejection to avoid modulo bias.
// n must be nonzero.
func uint64n(src Source, n uint64) uint64 {
	if n&(n-1) == 0 {
		return src.Uint64() & (n - 1)
	}
	thresh := -n % n
	for {
		hi, lo := bits.Mul64(src.Uint64(), n)
		if lo >= thresh {
			return hi
		}
	}
}
