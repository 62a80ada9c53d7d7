// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package randf

// Kind identifies the evaluation strategy an [Outcomes] container was
// built with. The strategy is fixed at construction and determines both
// the container shape and the semantics of every later [Fold], [Map],
// and [FoldFlat].
type Kind uint8

const (
	// KindSampler carries a single live state and realizes each draw
	// as one uniform sample.
	KindSampler Kind = iota
	// KindPopulationSampler carries a bounded population of
	// independent runs, each advanced by its own fresh sample.
	KindPopulationSampler
	// KindEnumerator carries every reachable state, duplicates
	// retained, and realizes each draw as the whole domain.
	KindEnumerator
	// KindUniqueEnumerator carries every distinct reachable state.
	KindUniqueEnumerator
	// KindCounter carries the full frequency distribution: each
	// reachable state mapped to the exact number of draw combinations
	// producing it.
	KindCounter
)

// String returns the strategy name.
func (k Kind) String() string {
	switch k {
	case KindSampler:
		return "Sampler"
	case KindPopulationSampler:
		return "PopulationSampler"
	case KindEnumerator:
		return "Enumerator"
	case KindUniqueEnumerator:
		return "UniqueEnumerator"
	case KindCounter:
		return "Counter"
	}
	return "Kind(" + string('0'+byte(k)) + ")"
}

// Outcomes is the strategy-specific container holding the live states of
// a random process. Exactly one shape field is populated, selected by
// kind. An Outcomes value is never mutated by this package; every
// operation returns a fresh container.
//
// T must be comparable so that deduplicating and counting strategies can
// use it as a map key.
type Outcomes[T comparable] struct {
	kind   Kind
	single T              // KindSampler
	many   []T            // KindPopulationSampler, KindEnumerator
	set    map[T]struct{} // KindUniqueEnumerator
	counts map[T]uint64   // KindCounter
	bound  int            // KindPopulationSampler: population bound
}

// Sampler lifts v into a single-sample container: one concrete run of
// the process, evaluated with no collection overhead.
func Sampler[T comparable](v T) Outcomes[T] {
	return Outcomes[T]{kind: KindSampler, single: v}
}

// PopulationSampler lifts v into a population of n independent runs,
// all starting from v. n bounds the population at every step; it never
// grows. Panics if n is not positive.
func PopulationSampler[T comparable](v T, n int) Outcomes[T] {
	if n <= 0 {
		panic("randf: non-positive population bound")
	}
	many := make([]T, n)
	for i := range many {
		many[i] = v
	}
	return Outcomes[T]{kind: KindPopulationSampler, many: many, bound: n}
}

// Enumerator lifts v into an exhaustive container that will hold every
// reachable state, duplicates retained. Each fold step multiplies the
// container size by the domain size; see the package hazards note.
func Enumerator[T comparable](v T) Outcomes[T] {
	return Outcomes[T]{kind: KindEnumerator, many: []T{v}}
}

// UniqueEnumerator lifts v into an exhaustive container that collapses
// equal states, holding each reachable state exactly once.
func UniqueEnumerator[T comparable](v T) Outcomes[T] {
	return Outcomes[T]{kind: KindUniqueEnumerator, set: map[T]struct{}{v: {}}}
}

// Counter lifts v into a frequency-distribution container mapping each
// reachable state to the exact number of draw combinations producing it.
func Counter[T comparable](v T) Outcomes[T] {
	return Outcomes[T]{kind: KindCounter, counts: map[T]uint64{v: 1}}
}

// Kind returns the strategy the container was built with.
func (o Outcomes[T]) Kind() Kind { return o.kind }

// Len returns the number of live states: always 1 for Sampler, the
// population size for PopulationSampler, the expansion size for
// Enumerator, and the number of distinct states for UniqueEnumerator
// and Counter.
func (o Outcomes[T]) Len() int {
	switch o.kind {
	case KindSampler:
		return 1
	case KindUniqueEnumerator:
		return len(o.set)
	case KindCounter:
		return len(o.counts)
	}
	return len(o.many)
}

// Bound returns the population bound of a PopulationSampler container
// and 0 for every other strategy.
func (o Outcomes[T]) Bound() int { return o.bound }

// Value returns the single live state of a Sampler container.
// Panics for any other strategy.
func (o Outcomes[T]) Value() T {
	if o.kind != KindSampler {
		panic("randf: Value on " + o.kind.String() + " outcomes")
	}
	return o.single
}

// Slice returns the live states of a PopulationSampler or Enumerator
// container. The slice is owned by the container; callers must not
// modify it. Panics for any other strategy.
func (o Outcomes[T]) Slice() []T {
	if o.kind != KindPopulationSampler && o.kind != KindEnumerator {
		panic("randf: Slice on " + o.kind.String() + " outcomes")
	}
	return o.many
}

// Set returns the distinct live states of a UniqueEnumerator container.
// The map is owned by the container; callers must not modify it.
// Panics for any other strategy.
func (o Outcomes[T]) Set() map[T]struct{} {
	if o.kind != KindUniqueEnumerator {
		panic("randf: Set on " + o.kind.String() + " outcomes")
	}
	return o.set
}

// Counts returns the frequency distribution of a Counter container.
// The map is owned by the container; callers must not modify it.
// Panics for any other strategy.
func (o Outcomes[T]) Counts() map[T]uint64 {
	if o.kind != KindCounter {
		panic("randf: Counts on " + o.kind.String() + " outcomes")
	}
	return o.counts
}
