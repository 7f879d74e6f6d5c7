package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"

	"github.com/f3rmion/cyclic/group"
)

var (
	_ group.Selectable[BabyJubjub]       = BabyJubjub{}
	_ group.ScalarMultiplier[BabyJubjub] = BabyJubjub{}
)

// bjjOrder is the Baby Jubjub subgroup order.
// This is distinct from the BN254 scalar field order (Fr).
var bjjOrder *big.Int

func init() {
	curve := twistededwards.GetEdwardsCurve()
	bjjOrder = new(big.Int).Set(&curve.Order)
}

// BabyJubjub is a point on the Baby Jubjub curve under point addition.
//
// Points are represented in affine coordinates (x, y) on the twisted
// Edwards curve. The identity element is (0, 1). The zero value of the type
// is not a valid point; use BabyJubjubIdentity or BabyJubjubGenerator.
type BabyJubjub struct {
	p twistededwards.PointAffine
}

// BabyJubjubIdentity returns the identity element (0, 1).
func BabyJubjubIdentity() BabyJubjub {
	var q BabyJubjub
	q.p.X.SetZero()
	q.p.Y.SetOne()
	return q
}

// BabyJubjubGenerator returns the standard base point of the prime-order
// subgroup.
func BabyJubjubGenerator() BabyJubjub {
	return BabyJubjub{p: twistededwards.GetEdwardsCurve().Base}
}

// BabyJubjubFromAffine wraps an affine point. The point is not validated.
func BabyJubjubFromAffine(p twistededwards.PointAffine) BabyJubjub {
	return BabyJubjub{p: p}
}

// BabyJubjubOrder returns the order of the prime-order subgroup.
func BabyJubjubOrder() *big.Int {
	return new(big.Int).Set(bjjOrder)
}

// Affine returns the underlying affine point.
func (q BabyJubjub) Affine() twistededwards.PointAffine { return q.p }

// NeutralElement returns the identity (0, 1).
func (BabyJubjub) NeutralElement() BabyJubjub { return BabyJubjubIdentity() }

// OperateWith returns q + o.
func (q BabyJubjub) OperateWith(o BabyJubjub) BabyJubjub {
	var r BabyJubjub
	r.p.Add(&q.p, &o.p)
	return r
}

// Neg returns -q.
func (q BabyJubjub) Neg() BabyJubjub {
	var r BabyJubjub
	r.p.Neg(&q.p)
	return r
}

// Equal reports whether q and o represent the same curve point.
func (q BabyJubjub) Equal(o BabyJubjub) bool { return q.p.Equal(&o.p) }

// IsNeutralElement reports whether q is the identity element (0, 1).
func (q BabyJubjub) IsNeutralElement() bool { return q.p.IsZero() }

// ConditionalSelect returns a if c == 0 and b if c == 1, selecting each
// coordinate in constant time.
func (BabyJubjub) ConditionalSelect(a, b BabyJubjub, c int) BabyJubjub {
	var r BabyJubjub
	r.p.X.Select(c, &a.p.X, &b.p.X)
	r.p.Y.Select(c, &a.p.Y, &b.p.Y)
	return r
}

// MultiplyBig returns k*q using gnark-crypto's scalar multiplication.
func (q BabyJubjub) MultiplyBig(k *big.Int) BabyJubjub {
	var r BabyJubjub
	r.p.ScalarMultiplication(&q.p, k)
	return r
}

func (q BabyJubjub) String() string {
	return "(" + q.p.X.String() + ", " + q.p.Y.String() + ")"
}
