// Package field provides the additive and multiplicative groups of the
// BN254 scalar field as implementations of [group.Selectable].
//
// The field arithmetic is provided by gnark-crypto; this package only adapts
// it to the group contract:
//
//	a := field.NewAdditive(7)
//	b := group.OperateWithSelf(a, unsigned.U64(3)) // 21
//
//	m, _ := field.MultiplicativeFromUint64(5)
//	p := group.OperateWithSelf(m, unsigned.U64(3)) // 125
//
// Both types implement [group.ScalarMultiplier], so default builds use a
// field multiplication (additive group) or fr.Element.Exp (multiplicative
// group) instead of the generic double-and-add loop.
//
// # Security
//
// Select is constant time in gnark-crypto. Field multiplication and addition
// do not branch on operand values, but Inverse and Exp are not guaranteed to
// be constant time.
package field
