// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package randf evaluates random processes under interchangeable
// strategies: write the transition logic once, then draw one concrete
// outcome, advance a bounded population, enumerate every reachable
// outcome, enumerate every distinct outcome, or compute the full outcome
// distribution — all from the same code.
//
// A motivating problem is the duplication between these two functions
// modelling the same process:
//
//	func nextState(src randf.Source, s uint8) uint8 {
//		s += uint8(src.Uint64())
//		if src.Uint64()&1 == 1 {
//			s %= 3
//		}
//		return s
//	}
//
//	func nextStates(s uint8) []uint8 {
//		var out []uint8
//		for r := 0; r < 256; r++ {
//			out = append(out, s+uint8(r))
//		}
//		for _, v := range out[:256] {
//			out = append(out, v%3)
//		}
//		return out
//	}
//
// With randf the process is written once, and the container it starts
// from selects the interpretation:
//
//	func next(f randf.Outcomes[uint8], src randf.Source) randf.Outcomes[uint8] {
//		f = randf.Fold(f, src, randf.Uint8(), func(s, r uint8) uint8 { return s + r })
//		return randf.Fold(f, src, randf.Bool(), func(s uint8, b bool) uint8 {
//			if b {
//				return s % 3
//			}
//			return s
//		})
//	}
//
//	one := next(randf.Sampler(uint8(0)), src)      // a single concrete run
//	all := next(randf.Enumerator(uint8(0)), nil)   // all 512 reachable states
//	dist := next(randf.Counter(uint8(0)), nil)     // the full distribution
//
// # Strategies
//
// The strategy is fixed when the initial state is lifted and determines
// the container shape and the cost model:
//
//   - [Sampler]: a single live state; each step draws one sample. O(1)
//     per step and allocation-free.
//   - [PopulationSampler]: n independent runs of the process; each step
//     advances every member with its own fresh draw. Monte-Carlo style
//     exploration at fixed cost.
//   - [Enumerator]: every reachable state, duplicates retained; each
//     step expands the container by the full domain.
//   - [UniqueEnumerator]: every distinct reachable state.
//   - [Counter]: every distinct reachable state with the exact number
//     of draw combinations reaching it — the outcome distribution.
//
// The strategies form three capability tiers by what they demand of the
// runtime: [Sampler] needs no dynamic allocation at all, so it suits
// hot paths and constrained environments; [PopulationSampler] and
// [Enumerator] need slice allocation; [UniqueEnumerator] and [Counter]
// additionally need hash lookup on the state type (hence the comparable
// constraint on [Outcomes]).
//
// # Operations
//
//   - [Fold]: advance every live state by one random draw
//   - [Map]: pure transform of every live state, no randomness
//   - [FoldFlat]: collapse one level of nesting for branching steps
//
// # Random Variables
//
// A draw is described by a [Variable]: how to sample one value uniformly
// and how to enumerate the whole domain.
//
//   - [Bool], [Uint8], [Uint16]: full built-in domains
//   - [Range]: an inclusive integer sub-range (panics on inverted bounds)
//
// Types up to 16 bits are built in because enumerating strategies
// materialize the whole domain each step. Wider or composite types opt
// in by implementing [Variable]; the enumeration order must be
// deterministic and Sample must be uniform over exactly the enumerated
// domain.
//
// Entropy comes from a [Source] (satisfied by math/rand/v2 generators),
// borrowed per call and consumed only by the sampling strategies.
//
// # Hazards
//
// Enumerator, UniqueEnumerator, and Counter are exact and therefore
// multiplicative: k live states folded over an m-value domain produce
// up to k×m states. The library enforces no growth bound; bounding
// process length and per-step domain size is the caller's
// responsibility. Swapping a Sampler lift for an Enumerator lift turns
// an O(1) step into an O(2^16) one with no other visible change in the
// calling code — that is the point, and the hazard.
//
// There are no recoverable errors: inverted ranges, shape-mismatched
// accessors, and strategy-mismatched FoldFlat calls are caller contract
// violations and panic.
package randf
