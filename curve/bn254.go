package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/f3rmion/cyclic/group"
)

var (
	_ group.Selectable[G1]       = G1{}
	_ group.ScalarMultiplier[G1] = G1{}
)

// G1 is a point of the BN254 G1 group in Jacobian coordinates.
// The point at infinity has Z = 0; the zero value of the type is the point at
// infinity.
type G1 struct {
	p bn254.G1Jac
}

// G1Generator returns the standard G1 generator.
func G1Generator() G1 {
	g1, _, _, _ := bn254.Generators()
	return G1{p: g1}
}

// G1FromAffine converts an affine point.
func G1FromAffine(a *bn254.G1Affine) G1 {
	var q G1
	q.p.FromAffine(a)
	return q
}

// G1Order returns the order of G1, the BN254 scalar field order.
func G1Order() *big.Int { return fr.Modulus() }

// Jacobian returns the underlying point.
func (q G1) Jacobian() bn254.G1Jac { return q.p }

// Affine returns q in affine coordinates.
func (q G1) Affine() bn254.G1Affine {
	var a bn254.G1Affine
	a.FromJacobian(&q.p)
	return a
}

// NeutralElement returns the point at infinity (1, 1, 0).
func (G1) NeutralElement() G1 {
	var r G1
	r.p.X.SetOne()
	r.p.Y.SetOne()
	r.p.Z.SetZero()
	return r
}

// OperateWith returns q + o.
func (q G1) OperateWith(o G1) G1 {
	r := G1{p: q.p}
	r.p.AddAssign(&o.p)
	return r
}

// Neg returns -q.
func (q G1) Neg() G1 {
	var r G1
	r.p.Neg(&q.p)
	return r
}

// Equal reports whether q and o represent the same point.
func (q G1) Equal(o G1) bool { return q.p.Equal(&o.p) }

// IsNeutralElement reports whether q is the point at infinity.
func (q G1) IsNeutralElement() bool { return q.p.Z.IsZero() }

// ConditionalSelect returns a if c == 0 and b if c == 1, selecting each
// Jacobian coordinate in constant time.
func (G1) ConditionalSelect(a, b G1, c int) G1 {
	var r G1
	r.p.X.Select(c, &a.p.X, &b.p.X)
	r.p.Y.Select(c, &a.p.Y, &b.p.Y)
	r.p.Z.Select(c, &a.p.Z, &b.p.Z)
	return r
}

// MultiplyBig returns k*q using gnark-crypto's GLV scalar multiplication.
func (q G1) MultiplyBig(k *big.Int) G1 {
	var r G1
	r.p.ScalarMultiplication(&q.p, k)
	return r
}

func (q G1) String() string {
	a := q.Affine()
	return a.String()
}
