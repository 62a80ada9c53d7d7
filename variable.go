// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package randf

// Variable describes how a draw of type R is realized by an evaluation
// strategy: sampling strategies call Sample once per live state, while
// enumerating strategies expand every value returned by Domain.
//
// Sample must draw uniformly over exactly the values Domain returns; a
// non-uniform Sample or a non-exhaustive Domain is a logic error that
// silently skews every strategy, not a detectable failure.
//
// Only [Bool], [Uint8], [Uint16], and bounded [Range] variables are
// provided, because enumerating strategies materialize the whole domain
// per fold step and 2^16 values is the practical ceiling. Wider or
// composite types opt in by implementing Variable themselves, accepting
// the tractability tradeoff.
type Variable[R any] interface {
	// Sample draws one value uniformly from the domain, consuming
	// entropy from src.
	Sample(src Source) R

	// Domain returns every value of the domain exactly once, in
	// ascending order. Repeated calls return equal sequences.
	Domain() []R
}

// Bool returns the Variable over both boolean values.
// Domain order is false, true.
func Bool() Variable[bool] { return boolVariable{} }

type boolVariable struct{}

func (boolVariable) Sample(src Source) bool { return src.Uint64()&1 == 1 }

func (boolVariable) Domain() []bool { return []bool{false, true} }

// Uint8 returns the Variable over all 256 uint8 values.
func Uint8() Variable[uint8] { return uint8Variable{} }

type uint8Variable struct{}

func (uint8Variable) Sample(src Source) uint8 { return uint8(src.Uint64()) }

func (uint8Variable) Domain() []uint8 {
	vs := make([]uint8, 1<<8)
	for i := range vs {
		vs[i] = uint8(i)
	}
	return vs
}

// Uint16 returns the Variable over all 65536 uint16 values.
func Uint16() Variable[uint16] { return uint16Variable{} }

type uint16Variable struct{}

func (uint16Variable) Sample(src Source) uint16 { return uint16(src.Uint64()) }

func (uint16Variable) Domain() []uint16 {
	vs := make([]uint16, 1<<16)
	for i := range vs {
		vs[i] = uint16(i)
	}
	return vs
}
