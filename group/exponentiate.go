package group

import (
	"github.com/f3rmion/cyclic/unsigned"
)

// DoubleAndAdd returns g operated with itself exponent times.
//
// The exponent is consumed from its least significant bit; the loop stops
// once the remaining exponent is zero. The number of iterations and group
// operations therefore depends on the exponent's value. Do not use it with
// secret exponents.
func DoubleAndAdd[E Element[E], T unsigned.Integer[T]](g E, exponent T) E {
	var t T
	zero, one := t.FromUint64(0), t.FromUint64(1)

	result := g.NeutralElement()
	base := g
	for !exponent.Equal(zero) {
		if exponent.And(one).Equal(one) {
			result = result.OperateWith(base)
		}
		exponent = exponent.Rsh(1)
		base = base.OperateWith(base)
	}
	return result
}

// MontgomeryLadder returns g operated with itself exponent times.
//
// The ladder runs exactly exponent.Bits() steps, from the most significant
// bit to the least significant one, whatever the exponent's value. Each step
// performs two conditional swaps keyed on the current bit and two group
// operations. The ladder state (r0, r1) keeps r1 = r0 + g.
func MontgomeryLadder[E Selectable[E], T unsigned.Integer[T]](g E, exponent T) E {
	r0 := g.NeutralElement()
	r1 := g

	for i := exponent.Bits() - 1; i >= 0; i-- {
		bit := unsigned.Bit(exponent, i)

		ConditionalSwap(&r0, &r1, bit)
		r1 = r0.OperateWith(r1)
		r0 = r0.OperateWith(r0)
		ConditionalSwap(&r0, &r1, bit)
	}
	return r0
}

// Exponentiator is an exponentiation algorithm for elements of type E and
// exponents of type T.
type Exponentiator[E any, T unsigned.Integer[T]] func(g E, exponent T) E

// VariableTime returns DoubleAndAdd as an Exponentiator.
func VariableTime[E Element[E], T unsigned.Integer[T]]() Exponentiator[E, T] {
	return DoubleAndAdd[E, T]
}

// ConstantTime returns MontgomeryLadder as an Exponentiator.
func ConstantTime[E Selectable[E], T unsigned.Integer[T]]() Exponentiator[E, T] {
	return MontgomeryLadder[E, T]
}

// Apply runs the algorithm on every element with the exponent at the same
// index and returns the results. It panics if the lengths differ.
func (x Exponentiator[E, T]) Apply(elems []E, exponents []T) []E {
	if len(elems) != len(exponents) {
		panic("group: elements and exponents have different lengths")
	}
	out := make([]E, len(elems))
	for i := range elems {
		out[i] = x(elems[i], exponents[i])
	}
	return out
}
