package grouptest

import (
	"fmt"
	"math/bits"
)

// Zn is an element of the additive group of integers modulo n.
// The zero value is not a valid element; use NewZn.
type Zn struct {
	v, n uint64
}

// NewZn returns v mod n as an element of Z/nZ. It panics if n is zero.
func NewZn(v, n uint64) Zn {
	if n == 0 {
		panic("grouptest: zero modulus")
	}
	return Zn{v: v % n, n: n}
}

// Value returns the canonical representative in [0, n).
func (z Zn) Value() uint64 { return z.v }

// Modulus returns n.
func (z Zn) Modulus() uint64 { return z.n }

// NeutralElement returns 0 mod n.
func (z Zn) NeutralElement() Zn { return Zn{n: z.n} }

// OperateWith returns z + o mod n. Both operands must share the modulus.
func (z Zn) OperateWith(o Zn) Zn {
	s, carry := bits.Add64(z.v, o.v, 0)
	d, borrow := bits.Sub64(s, z.n, 0)
	// Reduce when the sum overflowed or is at least n.
	mask := -(carry | (borrow ^ 1))
	return Zn{v: s ^ (mask & (s ^ d)), n: z.n}
}

// Neg returns -z mod n.
func (z Zn) Neg() Zn { return Zn{v: (z.n - z.v) % z.n, n: z.n} }

// Equal reports whether z and o are the same residue of the same modulus.
func (z Zn) Equal(o Zn) bool { return z == o }

// IsNeutralElement reports whether z is 0 mod n.
func (z Zn) IsNeutralElement() bool { return z.v == 0 }

// ConditionalSelect returns a if c == 0 and b if c == 1, by masking.
func (Zn) ConditionalSelect(a, b Zn, c int) Zn {
	mask := -uint64(c & 1)
	return Zn{
		v: a.v ^ (mask & (a.v ^ b.v)),
		n: a.n ^ (mask & (a.n ^ b.n)),
	}
}

func (z Zn) String() string { return fmt.Sprintf("%d (mod %d)", z.v, z.n) }
