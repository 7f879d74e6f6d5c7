//go:build constanttime && !winter_compatibility && !winter_math && !miden_core

package group

import (
	"github.com/f3rmion/cyclic/unsigned"
)

// Algorithm names the exponentiation algorithm selected by OperateWithSelf.
const Algorithm = "montgomery-ladder"

// Compatible reports whether an external compatibility mode is enabled.
const Compatible = false

// Group is the contract every group type must satisfy in this build.
// Constant-time builds require the conditional select capability.
type Group[E any] interface {
	Selectable[E]
}

// OperateWithSelf returns g operated with itself exponent times.
//
// In this build it always runs MontgomeryLadder, for exactly exponent.Bits()
// steps. ScalarMultiplier overrides are ignored.
func OperateWithSelf[E Group[E], T unsigned.Integer[T]](g E, exponent T) E {
	return MontgomeryLadder(g, exponent)
}
