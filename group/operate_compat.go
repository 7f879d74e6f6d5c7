//go:build !constanttime && (winter_compatibility || winter_math || miden_core)

package group

import (
	"github.com/f3rmion/cyclic/unsigned"
)

// Algorithm names the exponentiation algorithm selected by OperateWithSelf.
const Algorithm = "double-and-add"

// Compatible reports whether an external compatibility mode is enabled.
const Compatible = true

// Group is the contract every group type must satisfy in this build.
type Group[E any] interface {
	Element[E]
}

// OperateWithSelf returns g operated with itself exponent times.
//
// Compatibility builds always run the generic DoubleAndAdd so results
// follow the reference implementation step for step. ScalarMultiplier
// overrides are ignored.
func OperateWithSelf[E Group[E], T unsigned.Integer[T]](g E, exponent T) E {
	return DoubleAndAdd(g, exponent)
}
