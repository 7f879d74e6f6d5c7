package unsigned

import (
	"math/big"
	"math/bits"
)

// Integer is the capability set of an unsigned exponent type T.
//
// Implementations are value types. Methods never modify the receiver and
// FromUint64 and Bits must not depend on the receiver's value, so they can be
// called on the zero value of T.
type Integer[T any] interface {
	// FromUint64 returns v converted to T, truncated to the width of T.
	FromUint64(v uint64) T
	// And returns the bitwise AND of the receiver and y.
	And(y T) T
	// Or returns the bitwise OR of the receiver and y.
	Or(y T) T
	// Lsh returns the receiver shifted left by n bits.
	Lsh(n uint) T
	// Rsh returns the receiver shifted right by n bits.
	Rsh(n uint) T
	// Equal reports whether the receiver equals y.
	Equal(y T) bool
	// Bits returns the declared bit width of T.
	Bits() int
	// Uint64 returns the low 64 bits of the receiver.
	Uint64() uint64
}

// Width returns the declared bit width of T.
func Width[T Integer[T]]() int {
	var zero T
	return zero.Bits()
}

// Bit returns bit i of x as 0 or 1. The bit is extracted with a shift and a
// mask; no branch depends on its value.
func Bit[T Integer[T]](x T, i int) int {
	var zero T
	return int(x.Rsh(uint(i)).And(zero.FromUint64(1)).Uint64())
}

// IsZero reports whether x is zero.
func IsZero[T Integer[T]](x T) bool {
	var zero T
	return x.Equal(zero.FromUint64(0))
}

// BigInt returns x as a non-negative big.Int.
func BigInt[T Integer[T]](x T) *big.Int {
	n := new(big.Int)
	limb := new(big.Int)
	for off := 0; off < x.Bits(); off += 64 {
		limb.SetUint64(x.Rsh(uint(off)).Uint64())
		n.Or(n, limb.Lsh(limb, uint(off)))
	}
	return n
}

// U8 is an 8-bit exponent.
type U8 uint8

// The methods of U8 implement Integer[U8] with the native operators.
func (U8) FromUint64(v uint64) U8 { return U8(v) }
func (x U8) And(y U8) U8          { return x & y }
func (x U8) Or(y U8) U8           { return x | y }
func (x U8) Lsh(n uint) U8        { return x << n }
func (x U8) Rsh(n uint) U8        { return x >> n }
func (x U8) Equal(y U8) bool      { return x == y }
func (U8) Bits() int              { return 8 }
func (x U8) Uint64() uint64       { return uint64(x) }

// U16 is a 16-bit exponent.
type U16 uint16

// The methods of U16 implement Integer[U16] with the native operators.
func (U16) FromUint64(v uint64) U16 { return U16(v) }
func (x U16) And(y U16) U16         { return x & y }
func (x U16) Or(y U16) U16          { return x | y }
func (x U16) Lsh(n uint) U16        { return x << n }
func (x U16) Rsh(n uint) U16        { return x >> n }
func (x U16) Equal(y U16) bool      { return x == y }
func (U16) Bits() int               { return 16 }
func (x U16) Uint64() uint64        { return uint64(x) }

// U32 is a 32-bit exponent.
type U32 uint32

// The methods of U32 implement Integer[U32] with the native operators.
func (U32) FromUint64(v uint64) U32 { return U32(v) }
func (x U32) And(y U32) U32         { return x & y }
func (x U32) Or(y U32) U32          { return x | y }
func (x U32) Lsh(n uint) U32        { return x << n }
func (x U32) Rsh(n uint) U32        { return x >> n }
func (x U32) Equal(y U32) bool      { return x == y }
func (U32) Bits() int               { return 32 }
func (x U32) Uint64() uint64        { return uint64(x) }

// U64 is a 64-bit exponent.
type U64 uint64

// The methods of U64 implement Integer[U64] with the native operators.
func (U64) FromUint64(v uint64) U64 { return U64(v) }
func (x U64) And(y U64) U64         { return x & y }
func (x U64) Or(y U64) U64          { return x | y }
func (x U64) Lsh(n uint) U64        { return x << n }
func (x U64) Rsh(n uint) U64        { return x >> n }
func (x U64) Equal(y U64) bool      { return x == y }
func (U64) Bits() int               { return 64 }
func (x U64) Uint64() uint64        { return uint64(x) }

// Uint is an exponent with the platform's native word size.
type Uint uint

// The methods of Uint implement Integer[Uint] with the native operators.
func (Uint) FromUint64(v uint64) Uint { return Uint(v) }
func (x Uint) And(y Uint) Uint        { return x & y }
func (x Uint) Or(y Uint) Uint         { return x | y }
func (x Uint) Lsh(n uint) Uint        { return x << n }
func (x Uint) Rsh(n uint) Uint        { return x >> n }
func (x Uint) Equal(y Uint) bool      { return x == y }
func (Uint) Bits() int                { return bits.UintSize }
func (x Uint) Uint64() uint64         { return uint64(x) }
