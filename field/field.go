package field

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/f3rmion/cyclic/group"
)

// ErrZero is returned when zero is used as an element of the multiplicative group.
var ErrZero = errors.New("field: zero is not in the multiplicative group")

var (
	_ group.Selectable[Additive]       = Additive{}
	_ group.Selectable[Multiplicative] = Multiplicative{}

	_ group.ScalarMultiplier[Additive]       = Additive{}
	_ group.ScalarMultiplier[Multiplicative] = Multiplicative{}
)

// Additive is an element of the additive group of the BN254 scalar field.
// The zero value is the neutral element.
type Additive struct {
	e fr.Element
}

// NewAdditive returns v as an element of the additive group.
func NewAdditive(v uint64) Additive {
	var a Additive
	a.e.SetUint64(v)
	return a
}

// AdditiveFrom wraps a field element.
func AdditiveFrom(e fr.Element) Additive {
	return Additive{e: e}
}

// AdditiveFromBig returns b reduced modulo the field order.
func AdditiveFromBig(b *big.Int) Additive {
	var a Additive
	a.e.SetBigInt(b)
	return a
}

// Element returns the underlying field element.
func (a Additive) Element() fr.Element { return a.e }

// NeutralElement returns zero.
func (Additive) NeutralElement() Additive { return Additive{} }

// OperateWith returns a + b.
func (a Additive) OperateWith(b Additive) Additive {
	var r Additive
	r.e.Add(&a.e, &b.e)
	return r
}

// Neg returns -a.
func (a Additive) Neg() Additive {
	var r Additive
	r.e.Neg(&a.e)
	return r
}

// Equal reports whether a and b are the same field element.
func (a Additive) Equal(b Additive) bool { return a.e.Equal(&b.e) }

// IsNeutralElement reports whether a is zero.
func (a Additive) IsNeutralElement() bool { return a.e.IsZero() }

// ConditionalSelect returns x if c == 0 and y if c == 1, using the
// constant-time Select of gnark-crypto.
func (Additive) ConditionalSelect(x, y Additive, c int) Additive {
	var r Additive
	r.e.Select(c, &x.e, &y.e)
	return r
}

// MultiplyBig returns k*a with a single field multiplication.
func (a Additive) MultiplyBig(k *big.Int) Additive {
	var r, kk Additive
	kk.e.SetBigInt(k)
	r.e.Mul(&a.e, &kk.e)
	return r
}

func (a Additive) String() string { return a.e.String() }

// Multiplicative is an element of the multiplicative group of the BN254
// scalar field. Values are never zero; the zero value of the type is not a
// valid element, use One or NewMultiplicative.
type Multiplicative struct {
	e fr.Element
}

// One returns the neutral element of the multiplicative group.
func One() Multiplicative {
	var m Multiplicative
	m.e.SetOne()
	return m
}

// NewMultiplicative wraps a non-zero field element.
// Returns ErrZero if e is zero.
func NewMultiplicative(e fr.Element) (Multiplicative, error) {
	if e.IsZero() {
		return Multiplicative{}, ErrZero
	}
	return Multiplicative{e: e}, nil
}

// MultiplicativeFromUint64 returns v as an element of the multiplicative group.
// Returns ErrZero if v is a multiple of the field order.
func MultiplicativeFromUint64(v uint64) (Multiplicative, error) {
	var e fr.Element
	e.SetUint64(v)
	return NewMultiplicative(e)
}

// Element returns the underlying field element.
func (m Multiplicative) Element() fr.Element { return m.e }

// NeutralElement returns one.
func (Multiplicative) NeutralElement() Multiplicative { return One() }

// OperateWith returns m * o.
func (m Multiplicative) OperateWith(o Multiplicative) Multiplicative {
	var r Multiplicative
	r.e.Mul(&m.e, &o.e)
	return r
}

// Neg returns the multiplicative inverse of m.
func (m Multiplicative) Neg() Multiplicative {
	var r Multiplicative
	r.e.Inverse(&m.e)
	return r
}

// Equal reports whether m and o are the same field element.
func (m Multiplicative) Equal(o Multiplicative) bool { return m.e.Equal(&o.e) }

// IsNeutralElement reports whether m is one.
func (m Multiplicative) IsNeutralElement() bool { return m.e.IsOne() }

// ConditionalSelect returns x if c == 0 and y if c == 1.
func (Multiplicative) ConditionalSelect(x, y Multiplicative, c int) Multiplicative {
	var r Multiplicative
	r.e.Select(c, &x.e, &y.e)
	return r
}

// MultiplyBig returns m^k using the field's exponentiation.
func (m Multiplicative) MultiplyBig(k *big.Int) Multiplicative {
	var r Multiplicative
	r.e.Exp(m.e, k)
	return r
}

func (m Multiplicative) String() string { return m.e.String() }

// Order returns the order of the scalar field.
func Order() *big.Int {
	return fr.Modulus()
}
