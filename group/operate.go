//go:build !constanttime && !winter_compatibility && !winter_math && !miden_core

package group

import (
	"github.com/f3rmion/cyclic/unsigned"
)

// Algorithm names the exponentiation algorithm selected by OperateWithSelf.
const Algorithm = "double-and-add"

// Compatible reports whether an external compatibility mode is enabled.
const Compatible = false

// Group is the contract every group type must satisfy in this build.
type Group[E any] interface {
	Element[E]
}

// OperateWithSelf returns g operated with itself exponent times.
//
// In this build it uses the element's ScalarMultiplier override when
// present and DoubleAndAdd otherwise. It runs in variable time.
func OperateWithSelf[E Group[E], T unsigned.Integer[T]](g E, exponent T) E {
	if m, ok := any(g).(ScalarMultiplier[E]); ok {
		return m.MultiplyBig(unsigned.BigInt(exponent))
	}
	return DoubleAndAdd(g, exponent)
}
