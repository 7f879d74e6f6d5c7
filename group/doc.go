// Package group defines the contract satisfied by every algebraic group in
// this module and the exponentiation algorithms built on top of it.
//
// A group is described by its element type E. The package provides two
// interfaces:
//
//   - [Element]: identity, group operation, inverse and equality
//   - [Selectable]: an optional extension adding a data-independent
//     conditional select, required by the constant-time ladder
//
// Operations are written in a notation-neutral way. For an additive group
// OperateWith is addition and OperateWithSelf is scalar multiplication; for a
// multiplicative group they are multiplication and exponentiation.
//
// # Value Semantics
//
// Elements are values. OperateWith, Neg and ConditionalSelect return new
// elements and never modify their receiver or arguments, so copying an
// element with plain assignment is always safe:
//
//	// Compute a + b - c
//	r := a.OperateWith(b).OperateWith(c.Neg())
//
// NeutralElement is called on any element of the group and returns that
// group's identity. It must not depend on the receiver's value.
//
// # Exponentiation
//
// [OperateWithSelf] applies the group operation of an element with itself a
// given number of times. The exponent is any [unsigned.Integer]:
//
//	p5 := group.OperateWithSelf(p, unsigned.U64(5))
//
// Two algorithms are available and always compiled:
//
//   - [DoubleAndAdd]: variable time, consumes the exponent from its least
//     significant bit and stops at its highest set bit
//   - [MontgomeryLadder]: constant time, runs exactly Bits() steps from the
//     most significant bit using conditional swaps
//
// # Build Tags
//
// OperateWithSelf selects the algorithm at build time:
//
//	go build                         # DoubleAndAdd, dedicated overrides allowed
//	go build -tags constanttime      # MontgomeryLadder, every Group must be Selectable
//	go build -tags winter_compatibility  # DoubleAndAdd only, overrides ignored
//
// The compatibility tags (winter_compatibility, winter_math, miden_core)
// reproduce the plain double-and-add output of an external reference and
// cannot be combined with constanttime. Doing so fails to compile.
//
// # Security Considerations
//
// DoubleAndAdd leaks the bit length and Hamming weight of the exponent
// through timing and must not be used with secret exponents.
//
// MontgomeryLadder only removes the exponent-dependent control flow of the
// ladder itself. The end-to-end property additionally requires that
// ConditionalSelect is a genuine masked select and that OperateWith has no
// secret-dependent branches, down to the field arithmetic. Neither can be
// checked from outputs; audit the concrete group with constant-time tooling.
package group
