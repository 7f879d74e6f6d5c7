// Package unsigned defines the fixed-width unsigned integer types accepted as
// exponents by the group package.
//
// The capability set is small and closed:
//
//   - [Integer.FromUint64]: conversion from a small literal
//   - [Integer.And], [Integer.Or], [Integer.Lsh], [Integer.Rsh]: bitwise operations
//   - [Integer.Equal]: equality
//   - [Integer.Bits]: the declared width of the type
//   - [Integer.Uint64]: the low 64 bits, used to turn an extracted bit into a selector
//
// Every exponent type is a value type and every operation returns a new
// value. The declared width is a property of the type, not of the value:
// U64(1).Bits() is 64.
//
// # Widths
//
// The package provides [U8], [U16], [U32], [U64] and [Uint] over the native
// integer types, [U128] as a two-limb value and [U256] on top of
// github.com/holiman/uint256:
//
//	e := unsigned.U64(5)
//	w := unsigned.Width[unsigned.U256]() // 256
//
//	wide, err := unsigned.ParseU256("0xffffffffffffffffffffffffffffffff")
//
// Generic code constrained on [Integer] is instantiated once per width, so the
// width is known without dynamic dispatch.
package unsigned
