package group

import (
	"math/big"
)

// Element is the contract of an element of a group with element type E.
// The set of values of E together with OperateWith must form a group:
// OperateWith is closed and associative, NeutralElement is a two-sided
// identity, and Neg returns a two-sided inverse.
//
// All methods are total. Malformed elements are the responsibility of the
// constructors of the concrete type.
//
// Example usage:
//
//	e := g.NeutralElement()
//	sum := g.OperateWith(h)
//	ok := g.OperateWith(g.Neg()).Equal(e) // true
type Element[E any] interface {
	// NeutralElement returns the identity of the receiver's group.
	NeutralElement() E
	// OperateWith returns the receiver operated with other.
	OperateWith(other E) E
	// Neg returns the inverse of the receiver.
	Neg() E
	// Equal reports whether the receiver equals other.
	Equal(other E) bool
}

// Selectable is implemented by element types that can be used with the
// constant-time ladder.
type Selectable[E any] interface {
	Element[E]
	// ConditionalSelect returns a if c == 0 and b if c == 1. It must not
	// branch on c or access memory depending on c. c MUST be 0 or 1.
	ConditionalSelect(a, b E, c int) E
}

// NeutralChecker may be implemented to provide a faster identity test than
// comparing with NeutralElement. It must agree with that comparison.
type NeutralChecker interface {
	IsNeutralElement() bool
}

// ScalarMultiplier may be implemented by element types with a dedicated
// exponentiation routine, such as a windowed curve scalar multiplication.
// MultiplyBig receives a non-negative k and must return exactly the element
// DoubleAndAdd computes for the same exponent.
//
// Overrides are honoured by OperateWithSelf in the default build only.
type ScalarMultiplier[E any] interface {
	MultiplyBig(k *big.Int) E
}

// IsNeutralElement reports whether g is the identity of its group.
func IsNeutralElement[E Element[E]](g E) bool {
	if c, ok := any(g).(NeutralChecker); ok {
		return c.IsNeutralElement()
	}
	return g.Equal(g.NeutralElement())
}

// Sub returns a operated with the inverse of b.
func Sub[E Element[E]](a, b E) E {
	return a.OperateWith(b.Neg())
}

// ConditionalSwap exchanges *a and *b if c == 1 and leaves them unchanged if
// c == 0, using two calls to ConditionalSelect.
func ConditionalSwap[E Selectable[E]](a, b *E, c int) {
	x, y := *a, *b
	*a = x.ConditionalSelect(x, y, c)
	*b = x.ConditionalSelect(y, x, c)
}
